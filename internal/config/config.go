// Package config handles loading the rtd configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/rtd/internal/paths"
)

// Environment variables that override configuration values.
const (
	FileEnvVar     = "RTD_FILE"
	LogLevelEnvVar = "RTD_LOG_LEVEL"
)

// Defaults used when a value is not configured.
const (
	DefaultColor      = "auto"
	DefaultTimeFormat = "2006-01-02 15:04:05"
	DefaultWidth      = 80
	DefaultLogLevel   = "warn"
)

// Config represents the config.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
}

// Store contains task file configuration.
type Store struct {
	// Path overrides the task file location. A leading "~/" is expanded.
	Path string `toml:"path"`
}

// Display contains output configuration.
type Display struct {
	// Color is one of auto, always, never.
	Color string `toml:"color"`

	// TimeFormat is a Go time layout used for timestamps.
	TimeFormat string `toml:"time-format"`

	// Width is the column at which task names wrap.
	Width int `toml:"width"`
}

// Log contains logging configuration.
type Log struct {
	// Level is a logrus level name such as debug, info or warn.
	Level string `toml:"level"`
}

// Load loads the global configuration file and applies environment
// overrides. Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	path, err := paths.DefaultConfigPath()
	if err != nil {
		// Without a home directory there is no config file to read.
		path = ""
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path and applies environment overrides.
// An empty path loads the defaults.
func LoadFile(path string) (*Config, error) {
	cfg, meta, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	merged := withDefaults(cfg, meta)
	if err := merged.applyEnv(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	if path == "" {
		return &Config{}, toml.MetaData{}, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func withDefaults(cfg *Config, meta toml.MetaData) *Config {
	if cfg == nil {
		cfg = &Config{}
	}

	merged := Config{}
	merged.Store.Path = mergeString(meta.IsDefined("store", "path"), cfg.Store.Path, "")
	merged.Display.Color = strings.ToLower(mergeString(meta.IsDefined("display", "color"), cfg.Display.Color, DefaultColor))
	merged.Display.TimeFormat = mergeString(meta.IsDefined("display", "time-format"), cfg.Display.TimeFormat, DefaultTimeFormat)
	merged.Log.Level = strings.ToLower(mergeString(meta.IsDefined("log", "level"), cfg.Log.Level, DefaultLogLevel))

	merged.Display.Width = DefaultWidth
	if meta.IsDefined("display", "width") && cfg.Display.Width > 0 {
		merged.Display.Width = cfg.Display.Width
	}

	return &merged
}

func (cfg *Config) applyEnv() error {
	if value := strings.TrimSpace(os.Getenv(FileEnvVar)); value != "" {
		cfg.Store.Path = value
	}
	if value := strings.TrimSpace(os.Getenv(LogLevelEnvVar)); value != "" {
		cfg.Log.Level = strings.ToLower(value)
	}

	if cfg.Store.Path != "" {
		expanded, err := paths.ExpandHome(cfg.Store.Path)
		if err != nil {
			return err
		}
		cfg.Store.Path = expanded
	}
	return nil
}

func mergeString(defined bool, value, fallback string) string {
	if !defined {
		return fallback
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
