// Package config resolves server settings from defaults, an optional TOML
// file and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultListen binds every interface on the port the front-end expects.
const DefaultListen = "0.0.0.0:5000"

// Config is the fully resolved process configuration.
type Config struct {
	Listen            string
	Debug             bool
	LogFile           string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// Default returns the built-in configuration. Debug is on.
func Default() Config {
	return Config{
		Listen:            DefaultListen,
		Debug:             true,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// FileConfig represents the TOML configuration file. Unset keys keep the
// value they had before the file was applied.
type FileConfig struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig maps the [server] table. Durations use time.ParseDuration syntax.
type ServerConfig struct {
	Listen            *string `toml:"listen"`
	Debug             *bool   `toml:"debug"`
	ReadTimeout       *string `toml:"read-timeout"`
	ReadHeaderTimeout *string `toml:"read-header-timeout"`
	WriteTimeout      *string `toml:"write-timeout"`
	IdleTimeout       *string `toml:"idle-timeout"`
	ShutdownTimeout   *string `toml:"shutdown-timeout"`
}

// LogConfig maps the [log] table.
type LogConfig struct {
	File *string `toml:"file"`
}

// LoadFile reads a TOML config from path. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, errors.New("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

// Apply overlays the values set in fc onto c.
func (c *Config) Apply(fc FileConfig) error {
	s := fc.Server
	if s.Listen != nil {
		c.Listen = *s.Listen
	}
	if s.Debug != nil {
		c.Debug = *s.Debug
	}
	durations := []struct {
		key string
		src *string
		dst *time.Duration
	}{
		{"read-timeout", s.ReadTimeout, &c.ReadTimeout},
		{"read-header-timeout", s.ReadHeaderTimeout, &c.ReadHeaderTimeout},
		{"write-timeout", s.WriteTimeout, &c.WriteTimeout},
		{"idle-timeout", s.IdleTimeout, &c.IdleTimeout},
		{"shutdown-timeout", s.ShutdownTimeout, &c.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		v, err := time.ParseDuration(*d.src)
		if err != nil {
			return fmt.Errorf("server.%s: %w", d.key, err)
		}
		*d.dst = v
	}
	if fc.Log.File != nil {
		c.LogFile = *fc.Log.File
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address is empty")
	}
	for name, d := range map[string]time.Duration{
		"read-timeout":        c.ReadTimeout,
		"read-header-timeout": c.ReadHeaderTimeout,
		"write-timeout":       c.WriteTimeout,
		"idle-timeout":        c.IdleTimeout,
		"shutdown-timeout":    c.ShutdownTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s must be >= 0, got %s", name, d)
		}
	}
	return nil
}

// Load resolves defaults overlaid with the file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Apply(fc); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
