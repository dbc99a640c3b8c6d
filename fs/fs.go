// Package fs resolves the filesystem paths diffpager uses.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultConfigPath returns the default config file location.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to
// ~/.config/diffpager/config.yaml.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffpager", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "diffpager", "config.yaml")
}

// DefaultLogPath returns the debug log location.
// Uses XDG_STATE_HOME if set, otherwise falls back to
// ~/.local/state/diffpager/debug.log.
func DefaultLogPath() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffpager", "debug.log")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "diffpager", "debug.log")
}
