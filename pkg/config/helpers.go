package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Keys lists the configuration keys understood by SetValue and GetValue.
var Keys = []string{
	"url_file",
	"image_dir",
	"prefer_local_weight",
	"http_timeout",
	"user_agent",
	"log_level",
	"wallpaper.helper",
	"wallpaper.args",
	"wallpaper.use_32bit",
}

// SetValue sets a configuration value by key and validates the result.
// wallpaper.args takes a space separated list.
func (c *Config) SetValue(key, value string) error {
	updated := *c
	switch key {
	case "url_file":
		updated.Settings.URLFile = value
	case "image_dir":
		updated.Settings.ImageDir = value
	case "prefer_local_weight":
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %s", key, value)
		}
		updated.Settings.PreferLocalWeight = weight
	case "http_timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %s", key, value)
		}
		updated.Settings.HTTPTimeout = timeout
	case "user_agent":
		updated.Settings.UserAgent = value
	case "log_level":
		updated.Settings.LogLevel = strings.ToLower(value)
	case "wallpaper.helper":
		updated.Wallpaper.Helper = value
	case "wallpaper.args":
		updated.Wallpaper.Args = strings.Fields(value)
	case "wallpaper.use_32bit":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %s", key, value)
		}
		updated.Wallpaper.Use32Bit = boolVal
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	if err := updated.Validate(); err != nil {
		return err
	}
	*c = updated
	return nil
}

// GetValue returns the value of key as a string.
func (c *Config) GetValue(key string) (string, error) {
	values := c.ToMap()
	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
	return value, nil
}

// ToMap renders every key as a string. This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	return map[string]string{
		"url_file":            c.Settings.URLFile,
		"image_dir":           c.Settings.ImageDir,
		"prefer_local_weight": strconv.FormatFloat(c.Settings.PreferLocalWeight, 'f', -1, 64),
		"http_timeout":        c.Settings.HTTPTimeout.String(),
		"user_agent":          c.Settings.UserAgent,
		"log_level":           c.Settings.LogLevel,
		"wallpaper.helper":    c.Wallpaper.Helper,
		"wallpaper.args":      strings.Join(c.Wallpaper.Args, " "),
		"wallpaper.use_32bit": strconv.FormatBool(c.Wallpaper.Use32Bit),
	}
}
