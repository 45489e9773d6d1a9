//go:build darwin

package wallpaper

// DefaultHelper is the helper program used when none is configured.
const DefaultHelper = "osascript"

// The path is passed as a script argument so it never needs AppleScript quoting.
func defaultSetter(Options) (Setter, error) {
	return NewCommandSetter(DefaultHelper,
		"-e", "on run argv",
		"-e", `tell application "System Events" to tell every desktop to set picture to (item 1 of argv)`,
		"-e", "end run",
	), nil
}
