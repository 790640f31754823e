// ABOUTME: Environment handling: .env loading, OVERLAYCAST_* overrides, and ${VAR} expansion
// ABOUTME: Existing process environment always wins over .env values

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIBaseURL    = "OVERLAYCAST_API_BASE_URL"
	EnvMediaURL      = "OVERLAYCAST_MEDIA_URL"
	EnvLogLevel      = "OVERLAYCAST_LOG_LEVEL"
	EnvSurfaceErrors = "OVERLAYCAST_SURFACE_ERRORS"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// LoadDotEnv loads projectRoot/.env into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(projectRoot string) error {
	path := filepath.Join(projectRoot, dotEnvName)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv applies OVERLAYCAST_* overrides read through getenv.
func ApplyEnv(s *Settings, getenv func(string) string) error {
	if v := getenv(EnvAPIBaseURL); v != "" {
		s.API.BaseURL = v
	}
	if v := getenv(EnvMediaURL); v != "" {
		s.Media.BaseURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		s.Log.Level = v
	}
	if v := getenv(EnvSurfaceErrors); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSurfaceErrors, err)
		}
		s.SetSurfaceBackgroundFailures(on)
	}
	return nil
}

// resolveEnvVars expands ${VAR} patterns in string fields of Settings.
func resolveEnvVars(s *Settings) {
	s.API.Origin = expandEnv(s.API.Origin)
	s.API.BasePath = expandEnv(s.API.BasePath)
	s.API.BaseURL = expandEnv(s.API.BaseURL)
	s.Media.BaseURL = expandEnv(s.Media.BaseURL)
	s.Log.File = expandEnv(s.Log.File)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
