package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/wallers/pkg/cache"
	"github.com/glorpus-work/wallers/pkg/download"
	"github.com/glorpus-work/wallers/pkg/errors"
	ocmocks "github.com/glorpus-work/wallers/pkg/orchestrator/mocks"
	"github.com/glorpus-work/wallers/pkg/selector"
)

var errFetch = fmt.Errorf("connection refused: %w", errors.ErrDownloadFailed)

func chooserReturning(ctrl *gomock.Controller, sel selector.Selection) *ocmocks.MockChooser {
	chooser := ocmocks.NewMockChooser(ctrl)
	chooser.EXPECT().Select(gomock.Any(), gomock.Any()).Return(sel).Times(1)
	return chooser
}

func TestRun_PreferLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()

	chooser := chooserReturning(ctrl, selector.Selection{
		Local: "deadbeef", HasLocal: true,
		Remote: "http://x", HasRemote: true,
		PreferLocal: true,
	})
	dl := ocmocks.NewMockFetcher(ctrl)
	setter := ocmocks.NewMockSetter(ctrl)
	setter.EXPECT().Set(gomock.Any(), filepath.Join(cacheDir, "deadbeef")).Return(nil).Times(1)

	result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), []string{"deadbeef"}, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeLocal, result.Outcome)
	assert.Equal(t, filepath.Join(cacheDir, "deadbeef"), result.Path)
}

func TestRun_PreferLocalWithoutLocalUsesRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()
	target := filepath.Join(cacheDir, cache.Key("http://x"))

	chooser := chooserReturning(ctrl, selector.Selection{Remote: "http://x", HasRemote: true, PreferLocal: true})
	dl := ocmocks.NewMockFetcher(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), "http://x", target).Return(nil).Times(1)
	setter := ocmocks.NewMockSetter(ctrl)
	setter.EXPECT().Set(gomock.Any(), target).Return(nil).Times(1)

	result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), nil, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDownloaded, result.Outcome)
}

func TestRun_FetchFailsWithoutLocalIsSilentNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()

	// Weight 0 forces the remote branch.
	chooser := &selector.Selector{Weight: 0}
	dl := ocmocks.NewMockFetcher(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), "http://x", filepath.Join(cacheDir, cache.Key("http://x"))).Return(errFetch).Times(1)
	setter := ocmocks.NewMockSetter(ctrl)

	var events []Event
	hooks := Hooks{OnEvent: func(e Event) { events = append(events, e) }}

	result, err := New(chooser, dl, setter, hooks).Run(context.Background(), []string{}, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, result.Outcome)
	assert.Empty(t, result.Path)
	assert.ErrorIs(t, result.FetchErr, errors.ErrDownloadFailed)

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, PhaseDone, last.Phase)
	assert.ErrorIs(t, last.Err, errors.ErrDownloadFailed)
}

func TestRun_FetchFailsFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()

	chooser := &selector.Selector{Weight: 0}
	dl := ocmocks.NewMockFetcher(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), "http://x", gomock.Any()).Return(errFetch).Times(1)
	setter := ocmocks.NewMockSetter(ctrl)
	setter.EXPECT().Set(gomock.Any(), filepath.Join(cacheDir, "deadbeef")).Return(nil).Times(1)

	var phases []string
	hooks := Hooks{OnEvent: func(e Event) { phases = append(phases, e.Phase) }}

	result, err := New(chooser, dl, setter, hooks).Run(context.Background(), []string{"deadbeef"}, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeFallback, result.Outcome)
	assert.Equal(t, filepath.Join(cacheDir, "deadbeef"), result.Path)
	assert.ErrorIs(t, result.FetchErr, errors.ErrDownloadFailed)
	assert.Equal(t, []string{PhaseSelecting, PhaseDownloading, PhaseFallback, PhaseSetting, PhaseDone}, phases)
}

func TestRun_CacheHitSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()
	target := filepath.Join(cacheDir, cache.Key("http://x"))
	require.NoError(t, os.WriteFile(target, []byte("jpeg"), 0o644))

	chooser := chooserReturning(ctrl, selector.Selection{Remote: "http://x", HasRemote: true})
	dl := ocmocks.NewMockFetcher(ctrl) // no expectations: any Fetch call fails the test
	setter := ocmocks.NewMockSetter(ctrl)
	setter.EXPECT().Set(gomock.Any(), target).Return(nil).Times(1)

	result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), nil, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCacheHit, result.Outcome)
	assert.Equal(t, target, result.Path)
}

func TestRun_DownloadSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()
	target := filepath.Join(cacheDir, cache.Key("http://x"))

	chooser := chooserReturning(ctrl, selector.Selection{Local: "deadbeef", HasLocal: true, Remote: "http://x", HasRemote: true})
	dl := ocmocks.NewMockFetcher(ctrl)
	setter := ocmocks.NewMockSetter(ctrl)
	gomock.InOrder(
		dl.EXPECT().Fetch(gomock.Any(), "http://x", target).Return(nil),
		setter.EXPECT().Set(gomock.Any(), target).Return(nil),
	)

	result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), []string{"deadbeef"}, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDownloaded, result.Outcome)
	assert.NoError(t, result.FetchErr)
}

func TestRun_NothingToChoose(t *testing.T) {
	ctrl := gomock.NewController(t)

	chooser := &selector.Selector{Weight: selector.DefaultPreferLocalWeight}
	dl := ocmocks.NewMockFetcher(ctrl)
	setter := ocmocks.NewMockSetter(ctrl)

	result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), nil, nil, Options{CacheDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, result.Outcome)
}

func TestRun_SetterErrorPropagates(t *testing.T) {
	errSet := fmt.Errorf("no display: %w", errors.ErrWallpaperSet)

	tests := []struct {
		name      string
		sel       selector.Selection
		fetchErr  error
		wantFetch bool
	}{
		{
			name: "local branch",
			sel:  selector.Selection{Local: "deadbeef", HasLocal: true, PreferLocal: true},
		},
		{
			name:      "downloaded branch",
			sel:       selector.Selection{Remote: "http://x", HasRemote: true},
			wantFetch: true,
		},
		{
			name:      "fallback branch",
			sel:       selector.Selection{Local: "deadbeef", HasLocal: true, Remote: "http://x", HasRemote: true},
			fetchErr:  errFetch,
			wantFetch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chooser := chooserReturning(ctrl, tt.sel)
			dl := ocmocks.NewMockFetcher(ctrl)
			if tt.wantFetch {
				dl.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.fetchErr).Times(1)
			}
			setter := ocmocks.NewMockSetter(ctrl)
			setter.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errSet).Times(1)

			result, err := New(chooser, dl, setter, Hooks{}).Run(context.Background(), nil, nil, Options{CacheDir: t.TempDir()})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, errors.ErrWallpaperSet)
		})
	}
}

func TestRun_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()
	target := filepath.Join(cacheDir, cache.Key("http://x"))

	chooser := chooserReturning(ctrl, selector.Selection{Local: "deadbeef", HasLocal: true, Remote: "http://x", HasRemote: true})
	dl := ocmocks.NewMockFetcher(ctrl)
	setter := ocmocks.NewMockSetter(ctrl)

	var phases []string
	hooks := Hooks{OnEvent: func(e Event) { phases = append(phases, e.Phase) }}

	result, err := New(chooser, dl, setter, hooks).Run(context.Background(), []string{"deadbeef"}, []string{"http://x"}, Options{CacheDir: cacheDir, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDownloaded, result.Outcome)
	assert.Equal(t, target, result.Path)
	assert.NoFileExists(t, target)
	assert.Equal(t, []string{PhaseSelecting, PhaseDone}, phases)
}

func TestRun_NotConfigured(t *testing.T) {
	ctx := context.Background()

	t.Run("no chooser", func(t *testing.T) {
		_, err := (&Orchestrator{}).Run(ctx, nil, nil, Options{CacheDir: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("no cache dir", func(t *testing.T) {
		_, err := New(selector.New(0), nil, nil, Hooks{}).Run(ctx, nil, nil, Options{})
		assert.ErrorIs(t, err, errors.ErrCacheDirectory)
	})

	t.Run("no fetcher", func(t *testing.T) {
		_, err := New(selector.New(0), nil, nil, Hooks{}).Run(ctx, nil, []string{"http://x"}, Options{CacheDir: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("no setter", func(t *testing.T) {
		_, err := New(selector.New(1), nil, nil, Hooks{}).Run(ctx, []string{"deadbeef"}, nil, Options{CacheDir: t.TempDir()})
		assert.Error(t, err)
	})
}

func TestRun_CachedURLIsFetchedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheDir := t.TempDir()

	var transfers atomic.Int32
	transport := download.TransportFunc(func(_ context.Context, _ string, w io.Writer) error {
		transfers.Add(1)
		_, err := w.Write([]byte("jpeg"))
		return err
	})
	setter := ocmocks.NewMockSetter(ctrl)
	setter.EXPECT().Set(gomock.Any(), filepath.Join(cacheDir, cache.Key("http://x"))).Return(nil).Times(2)

	orch := New(selector.New(0), download.NewFetcher(transport), setter, Hooks{})

	first, err := orch.Run(context.Background(), nil, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeDownloaded, first.Outcome)

	entries, err := cache.ListEntries(cacheDir)
	require.NoError(t, err)

	second, err := orch.Run(context.Background(), entries, []string{"http://x"}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCacheHit, second.Outcome)
	assert.Equal(t, int32(1), transfers.Load())
}
