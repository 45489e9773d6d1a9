package cache

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/glorpus-work/wallers/internal/logger"
)

// Operation renders cache maintenance results for the command line.
type Operation struct {
	manager Manager
}

// NewOperation creates a new cache operation instance.
func NewOperation(manager Manager) *Operation {
	return &Operation{
		manager: manager,
	}
}

// Clean cleans the cache and returns a human-readable summary.
func (op *Operation) Clean(all bool) (string, error) {
	options := CleanOptions{All: all, Downloads: true}

	logger.Debug("Cleaning cache", logger.Fields{
		"directory": op.manager.GetDirectory(),
		"all":       options.All,
	})

	result, err := op.manager.Clean(options)
	if err != nil {
		return "", fmt.Errorf("failed to clean cache: %w", err)
	}

	if result.EntriesRemoved == 0 && result.DownloadsRemoved == 0 {
		return "No files were removed from the cache.", nil
	}

	msg := fmt.Sprintf("Successfully cleaned cache. Freed %s of disk space.", humanize.Bytes(uint64(result.TotalFreed)))
	if result.EntriesRemoved > 0 {
		msg += fmt.Sprintf("\n- Images: %d", result.EntriesRemoved)
	}
	if result.DownloadsRemoved > 0 {
		msg += fmt.Sprintf("\n- Stale downloads: %d", result.DownloadsRemoved)
	}
	return msg, nil
}

// GetInfo returns information about the cache as text.
func (op *Operation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	newest := "never"
	if !info.Newest.IsZero() {
		newest = fmt.Sprintf("%s (%s)", info.Newest.Format(time.RFC1123), humanize.Time(info.Newest))
	}

	return fmt.Sprintf(`Cache Information:
  Directory:       %s
  Images:          %d (%s)
  Stale downloads: %d (%s)
  Newest image:    %s`,
		info.Directory,
		info.Entries,
		humanize.Bytes(uint64(info.TotalSize)),
		info.StaleDownloads,
		humanize.Bytes(uint64(info.StaleSize)),
		newest,
	), nil
}

// GetDirectory returns the cache directory path.
func (op *Operation) GetDirectory() string {
	return op.manager.GetDirectory()
}
