package cli

import (
	"github.com/spf13/cobra"

	"github.com/glorpus-work/wallers/internal/logger"
	"github.com/glorpus-work/wallers/pkg/config"
	"github.com/glorpus-work/wallers/pkg/download"
	"github.com/glorpus-work/wallers/pkg/orchestrator"
	"github.com/glorpus-work/wallers/pkg/selector"
	"github.com/glorpus-work/wallers/pkg/urls"
	"github.com/glorpus-work/wallers/pkg/wallpaper"
)

// These variables will be set by the main package
var (
	URLFile *string
	DryRun  *bool
)

// RunWallpaper picks an image and sets it as the wallpaper.
func RunWallpaper(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if URLFile != nil && *URLFile != "" {
		cfg.Settings.URLFile = *URLFile
		if err := cfg.ResolvePaths(); err != nil {
			return err
		}
	}
	setupLogger(cfg)

	urlList, err := urls.LoadFile(cfg.Settings.URLFile)
	if err != nil {
		return err
	}

	manager := newCacheManager(cfg)
	unlock, err := manager.Lock()
	if err != nil {
		return err
	}
	defer releaseLock(unlock)

	entries, err := manager.List()
	if err != nil {
		return err
	}
	logger.Debug("Candidates loaded", logger.Fields{"cached": len(entries), "urls": len(urlList)})

	orch, err := newOrchestrator(cfg)
	if err != nil {
		return err
	}

	result, err := orch.Run(cmd.Context(), entries, urlList, orchestrator.Options{
		CacheDir: manager.GetDirectory(),
		DryRun:   DryRun != nil && *DryRun,
	})
	if err != nil {
		return err
	}

	if result.Outcome == orchestrator.OutcomeNone {
		logger.Info("No wallpaper was set")
		return nil
	}
	if DryRun != nil && *DryRun {
		logger.Info("Would set wallpaper", logger.Fields{"path": result.Path, "outcome": result.Outcome})
		return nil
	}
	logger.Success("Wallpaper set", logger.Fields{"path": result.Path, "outcome": result.Outcome})
	return nil
}

func newOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	setter, err := wallpaper.New(cfg.WallpaperOptions())
	if err != nil {
		return nil, err
	}

	transport := download.NewHTTPTransport(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)

	return orchestrator.New(
		selector.New(cfg.Settings.PreferLocalWeight),
		download.NewFetcher(transport),
		setter,
		orchestrator.Hooks{OnEvent: logEvent},
	), nil
}

func logEvent(e orchestrator.Event) {
	fields := logger.Fields{"phase": e.Phase}
	if e.Path != "" {
		fields["path"] = e.Path
	}

	switch {
	case e.Phase == orchestrator.PhaseFallback:
		fields["url"] = e.Msg
		fields["error"] = e.Err
		logger.Warn("Download failed, falling back to a cached image", fields)
	case e.Err != nil:
		fields["error"] = e.Err
		logger.Warn(e.Msg, fields)
	case e.Phase == orchestrator.PhaseDownloading:
		fields["url"] = e.Msg
		logger.Info("Downloading", fields)
	default:
		logger.Debug(e.Msg, fields)
	}
}
