// Package config loads the win7notify host configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/win7notify"
)

// Config is the host configuration, loaded from
// <user config dir>/win7notify/config.toml.
type Config struct {
	Notification NotificationConfig `toml:"notification"`
	Sound        SoundConfig        `toml:"sound"`
	Log          LogConfig          `toml:"log"`
}

// NotificationConfig holds defaults applied to every notification.
type NotificationConfig struct {
	AppName string             `toml:"app_name"` // empty = executable name
	Timeout win7notify.Timeout `toml:"timeout"`  // "default", "never", "5s" or "5000"
}

// SoundConfig selects the alert sound.
type SoundConfig struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`   // wav, ogg or mp3; empty = system sound
	Volume  int    `toml:"volume"` // 0-100
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Notification: NotificationConfig{
			Timeout: win7notify.TimeoutDefault,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  80,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Path returns the default config file path.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "win7notify", "config.toml"), nil
}

func resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	p, err := Path()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return p, nil
}

// Load reads the config at path, or at Path() when path is empty. A missing
// file yields the defaults.
func Load(path string) (*Config, error) {
	path, err := resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// start with defaults, then overlay with file contents
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes c to path, or to Path() when path is empty.
func (c *Config) Save(path string) error {
	path, err := resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// write atomically via temp file
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Sound.Volume < 0 || c.Sound.Volume > 100 {
		return fmt.Errorf("volume must be between 0 and 100, got %d", c.Sound.Volume)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("invalid log level %q, must be one of: debug, info, warn, error", l.Level)
	}
	return level, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
