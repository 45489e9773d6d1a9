package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exists reports whether anything is present at path.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ReplaceExt returns path with its extension replaced by ext.
// A path without an extension simply gets ext appended.
func ReplaceExt(path, ext string) string {
	base := filepath.Base(path)
	if trimmed := strings.TrimSuffix(base, filepath.Ext(base)); trimmed != "" {
		base = trimmed
	}
	return filepath.Join(filepath.Dir(path), base+ext)
}

// DownloadPath returns the in-progress download path for dst.
func DownloadPath(dst string) string {
	return ReplaceExt(dst, DownloadExt)
}

// IsDownloadPath reports whether name is an in-progress download.
func IsDownloadPath(name string) bool {
	return strings.HasSuffix(name, DownloadExt)
}

// AtomicRename renames src onto dst. Both must live in the same directory so
// that readers of dst never observe a partially written file.
func AtomicRename(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("source and destination paths cannot be empty")
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", src, dst, err)
	}
	return nil
}
