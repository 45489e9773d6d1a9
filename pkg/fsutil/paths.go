package fsutil

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// AppName is the name of the application used in paths
	AppName = "wallers"
)

// GetCacheDir returns the platform-specific cache directory for the application
// On Linux: ~/.cache/wallers/
// On macOS: ~/Library/Caches/wallers/
// On Windows: %LocalAppData%\wallers\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetImageDir returns the default image cache directory.
// Format: <cache_dir>/images/
func GetImageDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "images"), nil
}

// ExpandPath expands a leading ~ and makes path absolute.
// An empty path is returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
