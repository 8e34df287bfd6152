package config

import (
	"errors"
	"slices"
	"strings"
)

var (
	logLevels    = []string{"debug", "info", "warn", "warning", "error"}
	cursorShapes = []string{"block", "bar", "underline"}
)

// Validate checks every setting and joins all failures.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, &ValidationError{
			Path:    PathLogLevel,
			Message: "must be one of " + strings.Join(logLevels, ", "),
			Value:   c.Logging.Level,
		})
	}

	for _, s := range []struct {
		path, value string
	}{
		{PathCursorNormal, c.Cursor.Normal},
		{PathCursorInsert, c.Cursor.Insert},
	} {
		if !slices.Contains(cursorShapes, strings.ToLower(s.value)) {
			errs = append(errs, &ValidationError{
				Path:    s.path,
				Message: "must be one of " + strings.Join(cursorShapes, ", "),
				Value:   s.value,
			})
		}
	}

	return errors.Join(errs...)
}
