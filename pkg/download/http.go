package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/glorpus-work/wallers/pkg/errors"
)

const (
	// DefaultTimeout bounds a whole transfer so a hung server cannot block a run forever.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "wallers/1.0"
)

// HTTPTransport is a Transport backed by net/http.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// NewHTTPTransport creates a transport with the given timeout and user agent.
// A zero timeout means DefaultTimeout.
func NewHTTPTransport(timeout time.Duration, userAgent string) *HTTPTransport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPTransport{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Download performs a GET request and streams the response body into w.
// Any status outside 2xx is a failure.
func (t *HTTPTransport) Download(ctx context.Context, url string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return errors.WrapKind(errors.ErrDownloadFailed, err, "failed to create request")
	}
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.WrapKind(errors.ErrDownloadFailed, err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errors.ErrDownloadFailed)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.WrapKind(errors.ErrDownloadFailed, err, "failed to read response body")
	}
	return nil
}
