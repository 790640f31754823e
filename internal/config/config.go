// ABOUTME: Settings loading with global + project YAML merge, env overrides, and defaults
// ABOUTME: Resolves the API base URL from origin + base path unless a full URL is given

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultOrigin     = "http://localhost:5173"
	DefaultBasePath   = "/api"
	DefaultMediaURL   = "http://localhost:5000"
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
	DefaultLogLevel   = "info"
)

// Settings holds the merged configuration.
type Settings struct {
	API      API      `yaml:"api,omitempty"`
	Media    Media    `yaml:"media,omitempty"`
	Viewport Viewport `yaml:"viewport,omitempty"`
	Errors   Errors   `yaml:"errors,omitempty"`
	Log      Log      `yaml:"log,omitempty"`
}

// API locates the overlay backend.
type API struct {
	Origin   string `yaml:"origin,omitempty"`
	BasePath string `yaml:"base_path,omitempty"`
	// BaseURL replaces Origin+BasePath when set.
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// Media locates the stream transcoding backend.
type Media struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// Viewport maps pixel geometry onto terminal cells.
type Viewport struct {
	CellWidth  int `yaml:"cell_width,omitempty"`
	CellHeight int `yaml:"cell_height,omitempty"`
}

// Errors is the error surfacing policy.
type Errors struct {
	SurfaceBackgroundFailures *bool `yaml:"surface_background_failures,omitempty"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	off := false
	return &Settings{
		API:      API{Origin: DefaultOrigin, BasePath: DefaultBasePath},
		Media:    Media{BaseURL: DefaultMediaURL},
		Viewport: Viewport{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight},
		Errors:   Errors{SurfaceBackgroundFailures: &off},
		Log:      Log{Level: DefaultLogLevel, File: DefaultLogFile()},
	}
}

// Load reads .env from projectRoot, merges global and project settings
// files over the defaults, then applies environment overrides.
// Project settings override global settings; extra files override both.
func Load(projectRoot string, extra ...string) (*Settings, error) {
	if err := LoadDotEnv(projectRoot); err != nil {
		return nil, err
	}
	paths := append([]string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}, extra...)
	s, err := LoadFiles(paths...)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(s, os.Getenv); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadFiles merges the given settings files over the defaults. Missing
// files are skipped.
func LoadFiles(paths ...string) (*Settings, error) {
	merged := Defaults()
	for _, path := range paths {
		s, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		resolveEnvVars(s)
		merged = merge(merged, s)
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero values of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}
	result := *base

	setString(&result.API.Origin, over.API.Origin)
	setString(&result.API.BasePath, over.API.BasePath)
	setString(&result.API.BaseURL, over.API.BaseURL)
	if over.API.Timeout != 0 {
		result.API.Timeout = over.API.Timeout
	}
	setString(&result.Media.BaseURL, over.Media.BaseURL)
	if over.Viewport.CellWidth > 0 {
		result.Viewport.CellWidth = over.Viewport.CellWidth
	}
	if over.Viewport.CellHeight > 0 {
		result.Viewport.CellHeight = over.Viewport.CellHeight
	}
	if over.Errors.SurfaceBackgroundFailures != nil {
		v := *over.Errors.SurfaceBackgroundFailures
		result.Errors.SurfaceBackgroundFailures = &v
	}
	setString(&result.Log.Level, over.Log.Level)
	setString(&result.Log.File, over.Log.File)
	return &result
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// APIBaseURL is the URL overlay paths are appended to.
func (s *Settings) APIBaseURL() string {
	if s.API.BaseURL != "" {
		return strings.TrimRight(s.API.BaseURL, "/")
	}
	base := strings.TrimRight(s.API.Origin, "/")
	path := strings.Trim(s.API.BasePath, "/")
	if path == "" {
		return base
	}
	return base + "/" + path
}

// SurfaceBackgroundFailures reports the error banner policy.
func (s *Settings) SurfaceBackgroundFailures() bool {
	return s.Errors.SurfaceBackgroundFailures != nil && *s.Errors.SurfaceBackgroundFailures
}

// SetSurfaceBackgroundFailures overrides the error banner policy.
func (s *Settings) SetSurfaceBackgroundFailures(on bool) {
	s.Errors.SurfaceBackgroundFailures = &on
}

// Validate checks values that have no sensible fallback.
func (s *Settings) Validate() error {
	if s.Viewport.CellWidth <= 0 || s.Viewport.CellHeight <= 0 {
		return fmt.Errorf("viewport cell size must be positive, got %dx%d", s.Viewport.CellWidth, s.Viewport.CellHeight)
	}
	if s.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", s.API.Timeout)
	}
	if s.APIBaseURL() == "" {
		return errors.New("api base URL is empty")
	}
	return nil
}
