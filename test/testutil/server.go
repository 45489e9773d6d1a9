// Package testutil holds helpers shared by the end-to-end tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// ImageServer serves fixed image bodies by path. Every other path is a 404.
type ImageServer struct {
	*httptest.Server
	requests atomic.Int64
}

// NewImageServer starts a server for images and stops it when the test ends.
func NewImageServer(t *testing.T, images map[string][]byte) *ImageServer {
	t.Helper()

	s := &ImageServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		body, ok := images[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(body)
	}))
	t.Cleanup(s.Close)

	return s
}

// Requests returns how many requests the server has handled.
func (s *ImageServer) Requests() int64 {
	return s.requests.Load()
}
