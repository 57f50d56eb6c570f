// SPDX-License-Identifier: EPL-2.0

// Package config loads the feature-toggle configuration: which backends
// to build the fallback chain from, whether hotplug monitoring and format
// conversion run, and the declared sets of supported sample rates and
// buffer sizes used to validate stream configurations early.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audiocore/audio"
)

// Config represents the audio core configuration.
type Config struct {
	// Backends toggles each native backend in the fallback chain. The
	// silent fallback cannot be disabled; it terminates the chain.
	Backends struct {
		Miniaudio bool `yaml:"miniaudio"`
	} `yaml:"backends"`

	// Hotplug enables device-change monitoring.
	Hotplug bool `yaml:"hotplug"`

	// Conversion enables the format/rate/channel conversion pipeline for
	// streams whose configuration differs from the device's native one.
	Conversion bool `yaml:"conversion"`

	// SampleRates declares the rates accepted at configuration time.
	// Empty means any positive rate (device capabilities still apply at
	// bind time).
	SampleRates []uint32 `yaml:"sample_rates"`

	// BufferSizes declares the period sizes (in frames) accepted at
	// configuration time. Empty means any positive size.
	BufferSizes []int `yaml:"buffer_sizes"`

	// Device selects a device id. Empty string means the default device.
	Device string `yaml:"device"`
}

// DefaultConfig returns a configuration with every subsystem enabled and
// no declared rate or buffer-size restrictions.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Backends.Miniaudio = true
	cfg.Hotplug = true
	cfg.Conversion = true
	cfg.Device = ""

	return cfg
}

// Load loads configuration from file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadWithFallback attempts to load configuration from multiple locations.
// Priority: explicit path > ~/.audiocorerc > /etc/audiocore/config.yaml.
// When no file is found, defaults are returned.
func LoadWithFallback(explicitPath string) (*Config, error) {
	if explicitPath != "" {
		return Load(explicitPath)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(homeDir, ".audiocorerc")
		if _, err := os.Stat(userConfigPath); err == nil {
			cfg, err := Load(userConfigPath)
			if err == nil {
				return cfg, nil
			}
		}
	}

	systemConfigPath := "/etc/audiocore/config.yaml"
	if _, err := os.Stat(systemConfigPath); err == nil {
		cfg, err := Load(systemConfigPath)
		if err == nil {
			return cfg, nil
		}
	}

	return DefaultConfig(), nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate rejects malformed declared sets early, before any backend is
// probed.
func (c *Config) Validate() error {
	for _, rate := range c.SampleRates {
		if rate == 0 {
			return audio.NewError(audio.ErrInvalidConfig, "declared sample rate must be positive")
		}
	}
	for _, size := range c.BufferSizes {
		if size <= 0 {
			return audio.NewError(audio.ErrInvalidConfig,
				fmt.Sprintf("declared buffer size must be positive, got %d", size))
		}
	}
	return nil
}

// Allows reports whether cfg passes the declared rate and buffer-size
// sets. Empty sets allow anything the device later accepts.
func (c *Config) Allows(cfg audio.Config) bool {
	if len(c.SampleRates) > 0 {
		found := false
		for _, rate := range c.SampleRates {
			if rate == cfg.SampleRate {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(c.BufferSizes) > 0 {
		found := false
		for _, size := range c.BufferSizes {
			if size == cfg.BufferSize {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
