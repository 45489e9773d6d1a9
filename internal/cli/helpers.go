package cli

import (
	"fmt"

	"github.com/glorpus-work/wallers/internal/logger"
	"github.com/glorpus-work/wallers/pkg/cache"
	"github.com/glorpus-work/wallers/pkg/config"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
	ImageDir   *string
)

// loadConfig loads the configuration, applies the global flag overrides and
// resolves the paths it contains.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if ImageDir != nil && *ImageDir != "" {
		cfg.Settings.ImageDir = *ImageDir
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	if err := cfg.ResolvePaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogger initializes the logger from the config and the --no-color flag.
func setupLogger(cfg *config.Config) {
	noColor := NoColor != nil && *NoColor
	logger.InitLogger(cfg.Settings.LogLevel, noColor)
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes LoadConfig and SaveConfig fail with ErrEmptyConfigPath
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}

func newCacheManager(cfg *config.Config) *cache.DefaultManager {
	return cache.NewManager(cfg.Settings.ImageDir)
}
