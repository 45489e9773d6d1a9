package cache

import (
	"os"
	"unicode/utf8"

	"github.com/glorpus-work/wallers/pkg/errors"
	"github.com/glorpus-work/wallers/pkg/fsutil"
)

// LockFileName is the name of the lock file kept inside the cache directory.
const LockFileName = ".wallers.lock"

// ListEntries returns the names of the cache entries in dir, creating dir and
// any missing parents first. The order of the result is unspecified.
//
// In-progress downloads and the lock file are not entries. A name that is not
// valid UTF-8 aborts the listing with ErrUninterpretableFilename.
func ListEntries(dir string) ([]string, error) {
	dirEntries, err := readEntries(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// readEntries creates dir if needed and returns the children that are cache
// entries.
func readEntries(dir string) ([]os.DirEntry, error) {
	if dir == "" {
		return nil, errors.WrapKind(errors.ErrIO, errors.ErrCacheDirectory, "list cache entries")
	}
	if err := fsutil.EnsureDir(dir); err != nil {
		return nil, errors.IOf(err, "create cache directory %s", dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.IOf(err, "read cache directory %s", dir)
	}

	entries := make([]os.DirEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		name := entry.Name()
		if !utf8.ValidString(name) {
			return nil, errors.IOf(errors.ErrUninterpretableFilename, "read cache directory %s: %q", dir, name)
		}
		if isEntryName(name) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func isEntryName(name string) bool {
	return name != LockFileName && !fsutil.IsDownloadPath(name)
}
