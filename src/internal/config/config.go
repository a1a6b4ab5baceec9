// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable consulted when no config path is given.
const EnvConfigFile = "CHECK_OPENSSL_CA_CONFIG_FILE"

const (
	// DefaultWarningDays is the width of the WARNING window in days.
	DefaultWarningDays = 30
	// DefaultExpiredWindowDays is how long after expiry a certificate is still reported.
	DefaultExpiredWindowDays = 30
)

// Log formats accepted in the log section.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// ErrLogFormat indicates an unsupported log format.
var ErrLogFormat = errors.New("config: unsupported log format")

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json and anything unrecognized)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config holds the settings of a check run.
//
// Values come from hardcoded defaults, then an optional JSON or YAML file.
// Command-line flags are applied on top by the caller.
type Config struct {
	// Thresholds: classification windows
	Thresholds struct {
		// WarningDays: certificates expiring within this many days are WARNING
		WarningDays int `json:"warningDays" yaml:"warningDays"`
		// ExpiredWindowDays: certificates expired for fewer days than this are CRITICAL
		ExpiredWindowDays int `json:"expiredWindowDays" yaml:"expiredWindowDays"`
	} `json:"thresholds" yaml:"thresholds"`

	// Output: what is written besides the status line
	Output struct {
		// Long: append a markdown table of reported certificates
		Long bool `json:"long" yaml:"long"`
		// Verbose: trace skipped and overwritten records on stderr
		Verbose bool `json:"verbose" yaml:"verbose"`
	} `json:"output" yaml:"output"`

	// Log: diagnostics settings
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config carrying the built-in defaults.
func Default() *Config {
	c := &Config{}
	c.Thresholds.WarningDays = DefaultWarningDays
	c.Thresholds.ExpiredWindowDays = DefaultExpiredWindowDays
	c.Log.Format = LogFormatText
	return c
}

// detectFormat determines the configuration file format based on file extension.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into c according to f.
func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load builds a Config from defaults and an optional file.
//
// Configuration Priority:
//  1. Default values are set
//  2. [EnvConfigFile] is checked if path is empty
//  3. File values override defaults (format detected from the extension)
//  4. Non-positive thresholds fall back to their defaults
//
// A path that cannot be read or parsed is an error; no file at all is not.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate resets non-positive thresholds to their defaults, normalizes the
// log format, and rejects formats it does not know.
func (c *Config) Validate() error {
	if c.Thresholds.WarningDays <= 0 {
		c.Thresholds.WarningDays = DefaultWarningDays
	}
	if c.Thresholds.ExpiredWindowDays <= 0 {
		c.Thresholds.ExpiredWindowDays = DefaultExpiredWindowDays
	}

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "":
		c.Log.Format = LogFormatText
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrLogFormat, c.Log.Format)
	}
	return nil
}
