package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/kestrel/internal/config/loader"
)

// Config is the complete editor configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Cursor  CursorConfig  `toml:"cursor" yaml:"cursor"`

	// Path is the file the configuration was read from, empty if none.
	Path string `toml:"-" yaml:"-"`
}

// LoggingConfig configures the session log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File is the log destination. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// CursorConfig selects the cursor shape per mode.
type CursorConfig struct {
	Normal string `toml:"normal" yaml:"normal"`
	Insert string `toml:"insert" yaml:"insert"`
}

// Setting paths accepted by Set.
const (
	PathLogLevel     = "logging.level"
	PathLogFile      = "logging.file"
	PathCursorNormal = "cursor.normal"
	PathCursorInsert = "cursor.insert"
)

// EnvMapping maps environment variables to setting paths.
var EnvMapping = map[string]string{
	"KESTREL_LOG_LEVEL":     PathLogLevel,
	"KESTREL_LOG_FILE":      PathLogFile,
	"KESTREL_CURSOR_NORMAL": PathCursorNormal,
	"KESTREL_CURSOR_INSERT": PathCursorInsert,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Cursor:  CursorConfig{Normal: "block", Insert: "bar"},
	}
}

// Set assigns a setting by path.
func (c *Config) Set(path, value string) error {
	switch path {
	case PathLogLevel:
		c.Logging.Level = value
	case PathLogFile:
		c.Logging.File = value
	case PathCursorNormal:
		c.Cursor.Normal = value
	case PathCursorInsert:
		c.Cursor.Insert = value
	default:
		return fmt.Errorf("%s: %w", path, ErrSettingNotFound)
	}
	return nil
}

// DefaultPath returns the default config file location,
// <user config dir>/kestrel/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kestrel", "config.toml"), nil
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	path      string
	lookup    loader.LookupFunc
	overrides map[string]string
}

// WithFS loads the config file from fs instead of the OS file system.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithPath loads the config from path instead of DefaultPath.
// The file must exist.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithEnvLookup replaces os.LookupEnv for environment overrides.
func WithEnvLookup(lookup loader.LookupFunc) Option {
	return func(o *options) { o.lookup = lookup }
}

// WithOverrides applies settings (path to value) after the environment,
// typically from command-line flags.
func WithOverrides(overrides map[string]string) Option {
	return func(o *options) { o.overrides = overrides }
}

// Load resolves the configuration from defaults, file, environment and
// overrides, then validates it.
func Load(opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS()}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()

	path := o.path
	explicit := path != ""
	if !explicit {
		// No resolvable config dir means no default file.
		path, _ = DefaultPath()
	}
	if path != "" {
		found, err := loader.NewFileLoaderWithFS(o.fs, path).Load(cfg)
		if err != nil {
			return nil, err
		}
		switch {
		case found:
			cfg.Path = path
		case explicit:
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
	}

	for _, s := range loader.NewEnvLoaderWithLookup(EnvMapping, o.lookup).Load() {
		if err := cfg.Set(s.Path, s.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Env, err)
		}
	}

	for path, value := range o.overrides {
		if err := cfg.Set(path, value); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
