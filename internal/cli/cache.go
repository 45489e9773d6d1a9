package cli

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/glorpus-work/wallers/internal/logger"
	"github.com/glorpus-work/wallers/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the image cache",
		Long:  "List, clean, show information about, and locate the image cache",
	}

	cmd.AddCommand(
		newCacheListCmd(),
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached images",
		Long:  "List the cached images, newest first",
		Args:  cobra.NoArgs,
		RunE:  runCacheList,
	}
}

func newCacheCleanCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the image cache",
		Long: `Remove stale partial downloads from the cache.

With --all every cached image is removed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClean(cmd, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove all cached images")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display information about the image cache",
		Args:  cobra.NoArgs,
		RunE:  runCacheInfo,
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		Long:  "Display the path to the cache directory",
		Args:  cobra.NoArgs,
		RunE:  runCacheDir,
	}
}

func runCacheList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	entries, err := newCacheManager(cfg).Entries()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No cached images")
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ModTime.After(entries[j].ModTime)
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Key,
			humanize.Bytes(uint64(e.Size)),
			e.ModTime.Format(TimeFormat),
		})
	}

	_, _ = fmt.Fprintln(out, renderTable([]string{"KEY", "SIZE", "MODIFIED"}, rows, 1))
	return nil
}

func runCacheClean(cmd *cobra.Command, all bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	manager := newCacheManager(cfg)
	unlock, err := manager.Lock()
	if err != nil {
		return err
	}
	defer releaseLock(unlock)

	msg, err := cache.NewOperation(manager).Clean(all)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runCacheInfo(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	info, err := cache.NewOperation(newCacheManager(cfg)).GetInfo()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), info)
	return nil
}

func runCacheDir(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cache.NewOperation(newCacheManager(cfg)).GetDirectory())
	return nil
}

func releaseLock(unlock func() error) {
	if err := unlock(); err != nil {
		logger.Warn("Failed to release cache lock", logger.Fields{"error": err})
	}
}
