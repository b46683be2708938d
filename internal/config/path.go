// Package config loads roofline configuration through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigDir is where roofline looks for config.yaml when --config is not given.
const DefaultConfigDir = "~/.config/roofline"

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// SearchPaths returns the directories searched for config.yaml, in order.
func SearchPaths() []string {
	return []string{ExpandPath(DefaultConfigDir), "."}
}
