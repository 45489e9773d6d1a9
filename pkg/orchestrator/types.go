//go:generate mockgen -destination=./mocks/orchestrator.go . Chooser,Fetcher,Setter

package orchestrator

import (
	"context"

	"github.com/glorpus-work/wallers/pkg/selector"
)

// Chooser picks the candidates for a run.
type Chooser interface {
	Select(entries, urls []string) selector.Selection
}

// Fetcher downloads a URL to a destination path.
type Fetcher interface {
	Fetch(ctx context.Context, url, dst string) error
}

// Setter applies an image as the desktop wallpaper.
type Setter interface {
	Set(ctx context.Context, path string) error
}

// Orchestrator ties the Chooser, Fetcher and Setter together for a run.
type Orchestrator struct {
	Chooser Chooser
	DL      Fetcher
	Setter  Setter
	Hooks   Hooks // Hooks for progress and event notifications
}

// Phases reported through Hooks.
const (
	PhaseSelecting   = "selecting"
	PhaseDownloading = "downloading"
	PhaseFallback    = "fallback"
	PhaseSetting     = "setting"
	PhaseDone        = "done"
)

// Event represents a simple progress notification.
type Event struct {
	Phase string
	Msg   string
	Path  string
	Err   error // the swallowed fetch error on PhaseFallback and on a give-up PhaseDone
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Outcome names the branch a run ended in.
type Outcome string

// Run outcomes.
const (
	OutcomeLocal      Outcome = "local"      // the cached image was preferred
	OutcomeCacheHit   Outcome = "cache-hit"  // the remote URL was already cached
	OutcomeDownloaded Outcome = "downloaded" // the remote URL was fetched
	OutcomeFallback   Outcome = "fallback"   // the fetch failed, the cached image was used
	OutcomeNone       Outcome = "none"       // nothing was set
)

// Options control orchestrator execution.
type Options struct {
	CacheDir string
	// DryRun resolves the decision without fetching or setting anything.
	DryRun bool
}

// Result describes what a run did.
type Result struct {
	Outcome   Outcome
	Path      string // the path handed to the Setter; empty for OutcomeNone
	Selection selector.Selection
	FetchErr  error // set when a fetch failed and was recovered from or given up on
}
