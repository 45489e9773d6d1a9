//go:build !windows && !darwin

package wallpaper

// DefaultHelper is the helper program used when none is configured.
const DefaultHelper = "feh"

func defaultSetter(Options) (Setter, error) {
	return NewCommandSetter(DefaultHelper, "--bg-fill"), nil
}
