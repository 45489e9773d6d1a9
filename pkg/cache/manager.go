package cache

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/glorpus-work/wallers/pkg/errors"
	"github.com/glorpus-work/wallers/pkg/fsutil"
)

// DefaultManager implements the Manager interface over a flat directory of
// images named by their cache key.
type DefaultManager struct {
	directory string
}

// NewManager creates a new cache manager.
func NewManager(directory string) *DefaultManager {
	return &DefaultManager{
		directory: directory,
	}
}

// NewDefaultManager creates a new cache manager with the default image directory.
func NewDefaultManager() (*DefaultManager, error) {
	imageDir, err := fsutil.GetImageDir()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user cache directory")
	}
	return NewManager(imageDir), nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// List returns the cache keys present on disk.
func (cm *DefaultManager) List() ([]string, error) {
	return ListEntries(cm.directory)
}

// Entries returns every cache entry with its size and modification time.
// Symlinks are described by themselves and not by their targets.
func (cm *DefaultManager) Entries() ([]Entry, error) {
	dirEntries, err := readEntries(cm.directory)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		info, err := dirEntry.Info()
		if err != nil {
			return nil, errors.IOf(err, "stat cache entry %s", dirEntry.Name())
		}
		entries = append(entries, Entry{Key: dirEntry.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	return entries, nil
}

// Lock takes an exclusive lock on the cache directory so two runs never
// download into the same temp file. It fails fast with ErrCacheLocked when
// another process holds the lock. The returned function releases it.
func (cm *DefaultManager) Lock() (func() error, error) {
	if cm.directory == "" {
		return nil, errors.ErrCacheDirectory
	}
	if err := fsutil.EnsureDir(cm.directory); err != nil {
		return nil, errors.IOf(err, "create cache directory %s", cm.directory)
	}

	fileLock := flock.New(filepath.Join(cm.directory, LockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, errors.IOf(err, "lock cache directory %s", cm.directory)
	}
	if !locked {
		return nil, errors.ErrCacheLocked
	}
	return fileLock.Unlock, nil
}

// Clean removes cached files according to the specified options.
// Entries are removed only when All is set. Stale downloads are removed when
// either option is set.
func (cm *DefaultManager) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}

	dirEntries, err := os.ReadDir(cm.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, errors.Wrap(errors.ErrCacheClean, err.Error())
	}

	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if name == LockFileName || dirEntry.IsDir() {
			continue
		}
		download := fsutil.IsDownloadPath(name)
		if !options.All && !(download && options.Downloads) {
			continue
		}

		info, err := dirEntry.Info()
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCacheClean, "stat %s: %v", name, err)
		}
		if err := os.Remove(filepath.Join(cm.directory, name)); err != nil {
			return nil, errors.Wrapf(errors.ErrCacheClean, "remove %s: %v", name, err)
		}

		result.TotalFreed += info.Size()
		if download {
			result.DownloadsRemoved++
		} else {
			result.EntriesRemoved++
		}
	}

	return result, nil
}

// GetInfo returns information about the cache. Entries are counted the way
// ListEntries reports them.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{Directory: cm.directory}

	dirEntries, err := os.ReadDir(cm.directory)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return nil, errors.IOf(err, "read cache directory %s", cm.directory)
	}

	for _, dirEntry := range dirEntries {
		name := dirEntry.Name()
		if name == LockFileName {
			continue
		}
		fileInfo, err := dirEntry.Info()
		if err != nil {
			return nil, errors.IOf(err, "stat %s", name)
		}
		if fsutil.IsDownloadPath(name) {
			info.StaleDownloads++
			info.StaleSize += fileInfo.Size()
			continue
		}
		info.Entries++
		info.TotalSize += fileInfo.Size()
		if fileInfo.ModTime().After(info.Newest) {
			info.Newest = fileInfo.ModTime()
		}
	}

	return info, nil
}
