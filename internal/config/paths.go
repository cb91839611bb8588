package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names an explicit configuration file.
const EnvConfig = "SPACERUN_CONFIG"

// CandidateFileNames are probed in order inside the configuration directory.
var CandidateFileNames = []string{
	"config.json",
	"config.jsonc",
	"config.yaml",
	"config.yml",
	"config.toml",
}

// ErrConfigNotFound is returned when no configuration file exists.
var ErrConfigNotFound = errors.New("configuration file not found")

// ConfigDir returns $XDG_CONFIG_HOME/spacerun, or ~/.config/spacerun.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "spacerun")
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(ExpandPath(configHome), "spacerun")
}

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// FindConfigFile returns explicit when set, otherwise the first candidate
// present in dir.
func FindConfigFile(explicit, dir string) (string, error) {
	if explicit != "" {
		path := ExpandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	for _, name := range CandidateFileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w in %s (tried %s)", ErrConfigNotFound, dir, strings.Join(CandidateFileNames, ", "))
}
