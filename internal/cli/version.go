package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build metadata, overridable with -ldflags "-X".
var (
	Version   = "0.1.0"
	BuildDate = ""
	GitCommit = ""
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the wallers version, the commit it was built from and the Go toolchain",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			commit, date := buildStamp()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "wallers version %s\n", Version)
			_, _ = fmt.Fprintf(out, "Git commit: %s\n", commit)
			_, _ = fmt.Fprintf(out, "Build date: %s\n", date)
			_, _ = fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

// buildStamp prefers the linker-provided values and falls back to the VCS
// settings the go command embeds.
func buildStamp() (commit, date string) {
	commit, date = GitCommit, BuildDate
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && date == "":
				date = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if date == "" {
		date = "unknown"
	}
	return commit, date
}
