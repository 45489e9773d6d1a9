//go:generate mockgen -destination=mocks/download.go . Transport

package download

import (
	"context"
	"io"
)

// Transport moves the bytes behind a URL into a writer. It reports failure
// for anything short of a complete, successful transfer.
type Transport interface {
	Download(ctx context.Context, url string, w io.Writer) error
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, url string, w io.Writer) error

// Download calls f(ctx, url, w).
func (f TransportFunc) Download(ctx context.Context, url string, w io.Writer) error {
	return f(ctx, url, w)
}
