package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/wallers/pkg/errors"
)

func TestNewHTTPTransport(t *testing.T) {
	tests := []struct {
		name            string
		timeout         time.Duration
		userAgent       string
		expectedTimeout time.Duration
		expectedUA      string
	}{
		{
			name:            "defaults",
			expectedTimeout: DefaultTimeout,
			expectedUA:      DefaultUserAgent,
		},
		{
			name:            "custom values",
			timeout:         2 * time.Second,
			userAgent:       "test-agent/1.0",
			expectedTimeout: 2 * time.Second,
			expectedUA:      "test-agent/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewHTTPTransport(tt.timeout, tt.userAgent)
			require.NotNil(t, tr)
			assert.Equal(t, tt.expectedTimeout, tr.client.Timeout)
			assert.Equal(t, tt.expectedUA, tr.userAgent)
		})
	}
}

func TestHTTPTransport_Download(t *testing.T) {
	tests := []struct {
		name           string
		handler        http.HandlerFunc
		expectError    bool
		expectErrorMsg string
		expectBody     string
	}{
		{
			name: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("User-Agent") != "test" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte("image bytes"))
			},
			expectBody: "image bytes",
		},
		{
			name: "other 2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNonAuthoritativeInfo)
				_, _ = w.Write([]byte("proxied"))
			},
			expectBody: "proxied",
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectError:    true,
			expectErrorMsg: "unexpected status code: 404",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectError:    true,
			expectErrorMsg: "unexpected status code: 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			var buf bytes.Buffer
			err := NewHTTPTransport(time.Second, "test").Download(context.Background(), server.URL, &buf)
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrDownloadFailed)
				assert.Contains(t, err.Error(), tt.expectErrorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectBody, buf.String())
		})
	}
}

func TestHTTPTransport_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	err := NewHTTPTransport(time.Second, "").Download(context.Background(), url, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestHTTPTransport_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	err := NewHTTPTransport(50*time.Millisecond, "").Download(context.Background(), server.URL, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestHTTPTransport_InvalidURL(t *testing.T) {
	err := NewHTTPTransport(time.Second, "").Download(context.Background(), "://bad", &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}
