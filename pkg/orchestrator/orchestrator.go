package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/glorpus-work/wallers/pkg/cache"
	"github.com/glorpus-work/wallers/pkg/errors"
	"github.com/glorpus-work/wallers/pkg/fsutil"
)

// New constructs an Orchestrator. Hooks can be empty if no event handling is needed.
func New(chooser Chooser, dl Fetcher, setter Setter, hooks Hooks) *Orchestrator {
	return &Orchestrator{
		Chooser: chooser,
		DL:      dl,
		Setter:  setter,
		Hooks:   hooks,
	}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Run decides which image to show and hands it to the Setter at most once.
//
// The cached entry wins when the selection prefers it. Otherwise the remote
// URL is used: straight from the cache when its key is present, or after a
// fetch. A failed fetch falls back to the cached entry; with no cached entry
// the run ends without an error and without setting anything. Every other
// error is returned.
func (o *Orchestrator) Run(ctx context.Context, entries, urls []string, opts Options) (*Result, error) {
	if o.Chooser == nil {
		return nil, fmt.Errorf("chooser is not configured")
	}
	if opts.CacheDir == "" {
		return nil, errors.ErrCacheDirectory
	}

	emit(o.Hooks, Event{Phase: PhaseSelecting, Msg: fmt.Sprintf("%d cached, %d remote", len(entries), len(urls))})
	sel := o.Chooser.Select(entries, urls)
	result := &Result{Outcome: OutcomeNone, Selection: sel}
	localPath := filepath.Join(opts.CacheDir, sel.Local)

	if sel.PreferLocal && sel.HasLocal {
		return o.finish(ctx, result, OutcomeLocal, localPath, opts)
	}

	if !sel.HasRemote {
		emit(o.Hooks, Event{Phase: PhaseDone, Msg: "nothing to choose from"})
		return result, nil
	}

	target := filepath.Join(opts.CacheDir, cache.Key(sel.Remote))
	cached, err := fsutil.Exists(target)
	if err != nil {
		return nil, errors.IOf(err, "stat %s", target)
	}
	if cached {
		return o.finish(ctx, result, OutcomeCacheHit, target, opts)
	}

	if opts.DryRun {
		return o.finish(ctx, result, OutcomeDownloaded, target, opts)
	}
	if o.DL == nil {
		return nil, fmt.Errorf("download manager is not configured")
	}

	emit(o.Hooks, Event{Phase: PhaseDownloading, Msg: sel.Remote, Path: target})
	if err := o.DL.Fetch(ctx, sel.Remote, target); err != nil {
		result.FetchErr = err
		if !sel.HasLocal {
			emit(o.Hooks, Event{Phase: PhaseDone, Msg: "download failed and no cached image to fall back to", Err: err})
			return result, nil
		}
		emit(o.Hooks, Event{Phase: PhaseFallback, Msg: sel.Remote, Path: localPath, Err: err})
		return o.finish(ctx, result, OutcomeFallback, localPath, opts)
	}

	return o.finish(ctx, result, OutcomeDownloaded, target, opts)
}

func (o *Orchestrator) finish(ctx context.Context, result *Result, outcome Outcome, path string, opts Options) (*Result, error) {
	result.Outcome = outcome
	result.Path = path

	if opts.DryRun {
		emit(o.Hooks, Event{Phase: PhaseDone, Msg: "dry-run", Path: path})
		return result, nil
	}
	if o.Setter == nil {
		return nil, fmt.Errorf("wallpaper setter is not configured")
	}

	emit(o.Hooks, Event{Phase: PhaseSetting, Msg: string(outcome), Path: path})
	if err := o.Setter.Set(ctx, path); err != nil {
		return nil, err
	}
	emit(o.Hooks, Event{Phase: PhaseDone, Msg: string(outcome), Path: path})
	return result, nil
}
