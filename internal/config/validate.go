// internal/config/validate.go
package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validOverwriteModes = map[string]bool{
	"always": true, "never": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if !validOverwriteModes[c.Output.Overwrite] {
		errs = append(errs, fmt.Sprintf("output.overwrite: must be always or never; got %q", c.Output.Overwrite))
	}

	if c.History.Path != "" {
		if info, err := os.Stat(c.History.Path); err == nil && info.IsDir() {
			errs = append(errs, fmt.Sprintf("history.path: %q is a directory, must name a file", c.History.Path))
		}
	}

	return errs
}
