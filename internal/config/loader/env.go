package loader

import (
	"os"
	"sort"
)

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLoader loads configuration overrides from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	lookup  LookupFunc
}

// NewEnvLoader creates a loader over the process environment.
// mapping maps variable names (e.g., "KESTREL_LOG_LEVEL") to setting
// paths (e.g., "logging.level").
func NewEnvLoader(mapping map[string]string) *EnvLoader {
	return NewEnvLoaderWithLookup(mapping, os.LookupEnv)
}

// NewEnvLoaderWithLookup creates a loader with a custom lookup function.
func NewEnvLoaderWithLookup(mapping map[string]string, lookup LookupFunc) *EnvLoader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvLoader{mapping: mapping, lookup: lookup}
}

// Setting is one override read from the environment.
type Setting struct {
	Env   string
	Path  string
	Value string
}

// Load returns the overrides that are set, ordered by variable name.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() []Setting {
	names := make([]string, 0, len(l.mapping))
	for env := range l.mapping {
		names = append(names, env)
	}
	sort.Strings(names)

	var settings []Setting
	for _, env := range names {
		if val, ok := l.lookup(env); ok {
			settings = append(settings, Setting{Env: env, Path: l.mapping[env], Value: val})
		}
	}
	return settings
}
