package fsutil

// File and directory permission constants used when wallers creates files.
const (
	// Default file modes.
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	FileModeSecure  = 0o640 // -rw-r-----: Config files

	// Directory modes.
	DirModeDefault = 0o755 // drwxr-xr-x: Default for directories
	DirModeSecure  = 0o750 // drwxr-x---: Config directory

	// DownloadExt is the extension of a file that is still being downloaded.
	DownloadExt = ".download"
)
