// Package config loads procsweep settings from defaults, an optional YAML
// file, PROCSWEEP_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"procsweep/internal/logging"
	"procsweep/internal/session"
)

// EnvPrefix is prepended to every environment variable, e.g.
// PROCSWEEP_REFRESH_INTERVAL for refresh.interval
const EnvPrefix = "PROCSWEEP"

// Config represents the complete procsweep configuration
type Config struct {
	Refresh RefreshConfig `mapstructure:"refresh"`
	Message MessageConfig `mapstructure:"message"`
	Sort    SortConfig    `mapstructure:"sort"`
	Log     LogConfig     `mapstructure:"log"`
	// Filter is the search query active at startup
	Filter string `mapstructure:"filter"`
}

// RefreshConfig controls how often the process list is re-sampled
type RefreshConfig struct {
	// Interval is the minimum time between two process snapshots (default: 2s)
	Interval time.Duration `mapstructure:"interval"`
	// PollInterval is how long the loop waits for a key before re-checking
	// refresh and message expiry (default: 100ms)
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// CollectorTimeout bounds a single snapshot or terminate call, 0 = no bound
	CollectorTimeout time.Duration `mapstructure:"collector_timeout"`
}

// MessageConfig controls status messages
type MessageConfig struct {
	// TTL is how long a status message stays on screen (default: 3s)
	TTL time.Duration `mapstructure:"ttl"`
}

// SortConfig sets the initial sort order
type SortConfig struct {
	// Column is one of "pid", "name", "memory" (default: "pid")
	Column string `mapstructure:"column"`
	// Descending starts with the inverse order
	Descending bool `mapstructure:"descending"`
}

// LogConfig controls the debug log
type LogConfig struct {
	// File is where logs are appended; empty disables logging
	File string `mapstructure:"file"`
	// Level is one of debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Refresh: RefreshConfig{
			Interval:     session.DefaultRefreshInterval,
			PollInterval: 100 * time.Millisecond,
		},
		Message: MessageConfig{
			TTL: session.DefaultMessageTTL,
		},
		Sort: SortConfig{
			Column: "pid",
		},
		Log: LogConfig{
			Level: logging.LevelInfo,
		},
	}
}

// SetDefaults registers every default on v so that env vars and Unmarshal
// see the full key set even without a config file
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("refresh.interval", d.Refresh.Interval)
	v.SetDefault("refresh.poll_interval", d.Refresh.PollInterval)
	v.SetDefault("refresh.collector_timeout", d.Refresh.CollectorTimeout)
	v.SetDefault("message.ttl", d.Message.TTL)
	v.SetDefault("sort.column", d.Sort.Column)
	v.SetDefault("sort.descending", d.Sort.Descending)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("filter", d.Filter)
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "procsweep")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "procsweep")
}

// NewViper returns a viper instance with defaults, env binding and config
// file lookup set up. cfgFile overrides the search path when non-empty.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (if any) and decodes v into a validated Config.
// A missing file in the search path is not an error; a missing file that was
// named explicitly is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the dashboard cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Refresh.Interval <= 0 {
		errs = append(errs, fmt.Errorf("refresh.interval must be positive, got %s", c.Refresh.Interval))
	}
	if c.Refresh.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("refresh.poll_interval must be positive, got %s", c.Refresh.PollInterval))
	} else if c.Refresh.Interval > 0 && c.Refresh.PollInterval > c.Refresh.Interval {
		errs = append(errs, fmt.Errorf("refresh.poll_interval (%s) must not exceed refresh.interval (%s)",
			c.Refresh.PollInterval, c.Refresh.Interval))
	}
	if c.Refresh.CollectorTimeout < 0 {
		errs = append(errs, fmt.Errorf("refresh.collector_timeout must not be negative, got %s", c.Refresh.CollectorTimeout))
	}
	if c.Message.TTL <= 0 {
		errs = append(errs, fmt.Errorf("message.ttl must be positive, got %s", c.Message.TTL))
	}
	if _, err := session.ParseSortColumn(c.Sort.Column); err != nil {
		errs = append(errs, fmt.Errorf("sort.column: %w", err))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// SessionOptions converts the configuration into session options.
// Call Validate first; an unknown sort column falls back to pid.
func (c *Config) SessionOptions() session.Options {
	col, _ := session.ParseSortColumn(c.Sort.Column)
	return session.Options{
		RefreshInterval: c.Refresh.Interval,
		MessageTTL:      c.Message.TTL,
		SortColumn:      col,
		Descending:      c.Sort.Descending,
		Query:           c.Filter,
	}
}
