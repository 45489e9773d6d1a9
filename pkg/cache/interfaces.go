package cache

import "time"

// Manager defines the interface for cache management operations.
type Manager interface {
	List() ([]string, error)
	Entries() ([]Entry, error)
	Lock() (func() error, error)
	Clean(options CleanOptions) (*CleanResult, error)
	GetInfo() (*Info, error)
	GetDirectory() string
}

// Entry describes a single cached image.
type Entry struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// CleanOptions specifies what to clean from the cache.
type CleanOptions struct {
	// All removes every entry as well as stale downloads.
	All bool
	// Downloads removes leftover in-progress downloads.
	Downloads bool
}

// CleanResult contains information about what was cleaned.
type CleanResult struct {
	TotalFreed       int64
	EntriesRemoved   int
	DownloadsRemoved int
}

// Info represents cache information.
type Info struct {
	Directory      string
	TotalSize      int64
	Entries        int
	StaleDownloads int
	StaleSize      int64
	Newest         time.Time
}
