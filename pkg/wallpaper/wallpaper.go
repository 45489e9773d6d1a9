// Package wallpaper applies an image file as the desktop background.
//
// Each platform has a default Setter: a native API call on Windows, an
// external helper program elsewhere. Configuring a helper program always
// selects the helper, on every platform.
package wallpaper

import (
	"context"
	"path/filepath"

	"github.com/glorpus-work/wallers/pkg/errors"
)

// PathPlaceholder is replaced by the image path in helper arguments.
const PathPlaceholder = "{path}"

// Setter applies an image as the desktop wallpaper.
type Setter interface {
	Set(ctx context.Context, path string) error
}

// Options select and configure a Setter.
type Options struct {
	// Helper is an external program that sets the wallpaper.
	Helper string
	// Args are passed to Helper; see PathPlaceholder.
	Args []string
	// Use32Bit selects the ANSI variant of the native Windows call.
	Use32Bit bool
}

// New returns the Setter described by opts.
func New(opts Options) (Setter, error) {
	if opts.Helper != "" {
		return NewCommandSetter(opts.Helper, opts.Args...), nil
	}
	return defaultSetter(opts)
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(errors.ErrWallpaperSet, "resolve %s: %v", path, err)
	}
	return abs, nil
}
