package download

import (
	"context"
	"os"

	"github.com/glorpus-work/wallers/pkg/errors"
	"github.com/glorpus-work/wallers/pkg/fsutil"
)

// Fetcher downloads a URL into a destination path. The bytes are written to a
// sibling ".download" file first and renamed onto the destination only once
// the transfer completed, so the destination never holds a partial file.
//
// There is no retry: one failed attempt is reported as is.
type Fetcher struct {
	transport Transport
}

// NewFetcher creates a fetcher on top of transport.
func NewFetcher(transport Transport) *Fetcher {
	return &Fetcher{transport: transport}
}

// Fetch downloads url to dst. The temp file is removed when anything fails.
func (f *Fetcher) Fetch(ctx context.Context, url, dst string) error {
	if url == "" {
		return errors.WrapKind(errors.ErrIO, errors.ErrEmptyURL, "fetch")
	}
	if err := fsutil.EnsureFileDir(dst); err != nil {
		return errors.IO(err, "could not create download dir")
	}

	tmpPath := fsutil.DownloadPath(dst)
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.IO(err, "could not create temp file")
	}

	if err := f.writeTemp(ctx, url, tmp); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := fsutil.AtomicRename(tmpPath, dst); err != nil {
		_ = os.Remove(tmpPath)
		return errors.IO(err, "could not finalize file")
	}
	return nil
}

func (f *Fetcher) writeTemp(ctx context.Context, url string, tmp *os.File) error {
	if err := f.transport.Download(ctx, url, tmp); err != nil {
		_ = tmp.Close()
		return errors.IOf(err, "download %s", url)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.IO(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		return errors.IO(err, "could not close file")
	}
	return nil
}
