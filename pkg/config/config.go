// Package config provides configuration management for wallers.
// It handles loading, validating and saving the YAML configuration file that
// supplies defaults for the command line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/wallers/pkg/download"
	"github.com/glorpus-work/wallers/pkg/errors"
	"github.com/glorpus-work/wallers/pkg/fsutil"
	"github.com/glorpus-work/wallers/pkg/selector"
	"github.com/glorpus-work/wallers/pkg/wallpaper"
)

// Config represents the application configuration.
type Config struct {
	Settings  Settings        `yaml:"settings"`
	Wallpaper WallpaperConfig `yaml:"wallpaper"`
}

// Settings represents general application settings.
type Settings struct {
	// Input and cache locations. A leading ~ is expanded.
	URLFile  string `yaml:"url_file,omitempty"`
	ImageDir string `yaml:"image_dir,omitempty"`

	// PreferLocalWeight is the probability of showing a cached image
	// instead of trying a remote one.
	PreferLocalWeight float64 `yaml:"prefer_local_weight"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent,omitempty"`

	// Output settings
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// WallpaperConfig configures how the wallpaper is applied.
type WallpaperConfig struct {
	// Helper overrides the platform default with an external program.
	Helper string   `yaml:"helper,omitempty"`
	Args   []string `yaml:"args,omitempty"`
	// Use32Bit selects the ANSI system call on Windows.
	Use32Bit bool `yaml:"use_32bit,omitempty"`
}

// YAMLIndent is the number of spaces to use for YAML indentation.
const YAMLIndent = 2

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	imageDir, err := fsutil.GetImageDir()
	if err != nil {
		// Fallback to a directory next to the binary's working dir
		imageDir = filepath.Join(".", fsutil.AppName, "images")
	}

	return &Config{
		Settings: Settings{
			ImageDir:          imageDir,
			PreferLocalWeight: selector.DefaultPreferLocalWeight,
			HTTPTimeout:       download.DefaultTimeout,
			UserAgent:         download.DefaultUserAgent,
			LogLevel:          "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := fsutil.ExpandPath(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader. Keys missing
// from the document keep their default values.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", errors.ErrConfig, errors.ErrConfigParse, err.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves configuration to a file atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := fsutil.ExpandPath(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeSecure); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeSecure)
	if err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)

	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	_ = encoder.Close()
	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}

	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid. Every failure wraps
// ErrConfig and ErrConfigValidation.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateSettings(c.Settings); err != nil {
		return fmt.Errorf("%w: %w: %w", errors.ErrConfig, errors.ErrConfigValidation, err)
	}
	return nil
}

func validateSettings(s Settings) error {
	if s.ImageDir == "" {
		return errors.ErrImageDirRequired
	}
	// NaN fails both comparisons.
	if !(s.PreferLocalWeight >= 0 && s.PreferLocalWeight <= 1) {
		return fmt.Errorf("%w: got %v", errors.ErrPreferLocalWeight, s.PreferLocalWeight)
	}
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeout
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(s.LogLevel)] {
		return errors.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	return nil
}

// ResolvePaths expands ~ and makes the URL file and image directory absolute.
func (c *Config) ResolvePaths() error {
	urlFile, err := fsutil.ExpandPath(c.Settings.URLFile)
	if err != nil {
		return errors.Wrapf(errors.ErrConfig, "url_file %q: %v", c.Settings.URLFile, err)
	}
	imageDir, err := fsutil.ExpandPath(c.Settings.ImageDir)
	if err != nil {
		return errors.Wrapf(errors.ErrConfig, "image_dir %q: %v", c.Settings.ImageDir, err)
	}
	c.Settings.URLFile = urlFile
	c.Settings.ImageDir = imageDir
	return nil
}

// WallpaperOptions returns the options for building a wallpaper.Setter.
func (c *Config) WallpaperOptions() wallpaper.Options {
	return wallpaper.Options{
		Helper:   c.Wallpaper.Helper,
		Args:     c.Wallpaper.Args,
		Use32Bit: c.Wallpaper.Use32Bit,
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}
