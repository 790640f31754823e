// ABOUTME: Standard filesystem paths for overlaycast configuration and state
// ABOUTME: Global settings under the user config dir, project settings in .overlaycast.yaml

package config

import (
	"os"
	"path/filepath"
)

const (
	appName           = "overlaycast"
	projectConfigName = ".overlaycast.yaml"
	dotEnvName        = ".env"
)

// GlobalDir returns the user-global config directory (~/.config/overlaycast).
func GlobalDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(dir, appName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(projectRoot, projectConfigName)
}

// StateDir returns $XDG_STATE_HOME/overlaycast, defaulting to ~/.local/state.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

// DefaultLogFile is where the interactive UI writes its log.
func DefaultLogFile() string {
	return filepath.Join(StateDir(), appName+".log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
