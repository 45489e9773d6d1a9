package wallpaper

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/glorpus-work/wallers/pkg/errors"
)

// CommandSetter sets the wallpaper by running a helper program such as feh.
type CommandSetter struct {
	Program string
	Args    []string
}

// NewCommandSetter creates a setter that runs program with args.
func NewCommandSetter(program string, args ...string) *CommandSetter {
	return &CommandSetter{Program: program, Args: args}
}

// Set runs the helper with the absolute image path. Every PathPlaceholder
// in the arguments is replaced by the path; without one, the path is
// appended as the last argument.
func (c *CommandSetter) Set(ctx context.Context, path string) error {
	if c.Program == "" {
		return errors.ErrNoHelperProgram
	}
	abs, err := absPath(path)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Program, buildArgs(c.Args, abs)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return fmt.Errorf("%w: %s: %w", errors.ErrWallpaperSet, c.Program, err)
		}
		return fmt.Errorf("%w: %s: %w: %s", errors.ErrWallpaperSet, c.Program, err, msg)
	}
	return nil
}

func buildArgs(args []string, path string) []string {
	out := make([]string, 0, len(args)+1)
	substituted := false
	for _, arg := range args {
		if strings.Contains(arg, PathPlaceholder) {
			arg = strings.ReplaceAll(arg, PathPlaceholder, path)
			substituted = true
		}
		out = append(out, arg)
	}
	if !substituted {
		out = append(out, path)
	}
	return out
}
