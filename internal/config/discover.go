// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./kconfmerge.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "kconfmerge", "config.toml")
}

// DefaultHistoryPath returns the XDG-compliant default location of the
// run history database.
func DefaultHistoryPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./kconfmerge-history.db"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "kconfmerge", "history.db")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. KCONFMERGE_CONFIG environment variable
//  2. ./kconfmerge.toml (current directory)
//  3. $XDG_CONFIG_HOME/kconfmerge/config.toml
//  4. /etc/kconfmerge/config.toml
func Discover() (string, error) {
	// 1. Check KCONFMERGE_CONFIG env var
	if envPath := os.Getenv("KCONFMERGE_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("KCONFMERGE_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	// Build search paths
	paths := []string{
		"./kconfmerge.toml",
		DefaultPath(),
		"/etc/kconfmerge/config.toml",
	}

	// 2-4. Check each path
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
