package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/wallers/internal/cli"
)

var (
	configPath string
	verbose    bool
	noColor    bool
	imageDir   string
	urlFile    string
	dryRun     bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallers",
		Short: "Set a random wallpaper from a URL list or the local cache",
		Long: `wallers picks an image and sets it as the desktop wallpaper.

The image is either one already in the cache directory or a URL from the URL
file, downloaded into the cache under the SHA-256 of the URL. When a download
fails a cached image is used instead.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         cli.RunWallpaper,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVarP(&imageDir, "imagedir", "d", "", "image cache directory (default: user cache dir)")

	// Run flags
	cmd.Flags().StringVarP(&urlFile, "urlfile", "u", "", "file with one image URL per line")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the chosen image without downloading or setting it")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.ImageDir = &imageDir
	cli.URLFile = &urlFile
	cli.DryRun = &dryRun

	// Add subcommands
	cmd.AddCommand(
		cli.NewCacheCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
