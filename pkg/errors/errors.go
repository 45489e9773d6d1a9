// Package errors holds the sentinel errors shared across wallers and small
// helpers for wrapping them with context.
package errors

import "fmt"

// Error kinds. Every failure surfaced by the core wraps one of these.
var (
	ErrIO     = fmt.Errorf("i/o error")
	ErrConfig = fmt.Errorf("configuration error")
)

// Common error types.
var (
	// Cache errors.
	ErrUninterpretableFilename = fmt.Errorf("uninterpretable filename")
	ErrCacheDirectory          = fmt.Errorf("cache directory cannot be empty")
	ErrCacheLocked             = fmt.Errorf("cache directory is locked by another run")
	ErrCacheClean              = fmt.Errorf("failed to clean cache")

	// Download errors.
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrEmptyURL       = fmt.Errorf("url cannot be empty")

	// Wallpaper errors.
	ErrWallpaperSet    = fmt.Errorf("failed to set wallpaper")
	ErrNoHelperProgram = fmt.Errorf("no wallpaper helper program configured")

	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename config file")
	ErrConfigFileExists  = fmt.Errorf("config file already exists")

	ErrURLFileRequired   = fmt.Errorf("url file is required")
	ErrImageDirRequired  = fmt.Errorf("image directory is required")
	ErrHTTPTimeout       = fmt.Errorf("http timeout cannot be negative")
	ErrPreferLocalWeight = fmt.Errorf("prefer_local_weight must be between 0 and 1")
	ErrInvalidLogLevel   = fmt.Errorf("invalid log level")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// WrapKind wraps err with context and tags it with kind, so that both
// errors.Is(result, kind) and errors.Is(result, err) hold.
func WrapKind(kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", msg, kind, err)
}

// IO tags err as an I/O failure.
func IO(err error, msg string) error {
	return WrapKind(ErrIO, err, msg)
}

// IOf tags err as an I/O failure with formatted context.
func IOf(err error, format string, args ...interface{}) error {
	return WrapKind(ErrIO, err, fmt.Sprintf(format, args...))
}

// ErrInvalidLogLevelWithDetails returns an error for an unknown log level.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: %q (valid: debug, info, warn, error)", ErrInvalidLogLevel, level)
}
