// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskmd/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workspaceRoot string // Workspace root holding .taskmd.toml
	globalConfDir string // Global config directory (e.g., ~/.config/taskmd)
}

// NewLoader creates a new Loader.
func NewLoader(workspaceRoot string) *Loader {
	return &Loader{
		workspaceRoot: workspaceRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workspaceRoot, globalConfDir string) *Loader {
	return &Loader{
		workspaceRoot: workspaceRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskmd")
}

// Load returns the merged configuration (workspace + global).
// Workspace config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	var global, workspace *domain.Config
	var err error

	if l.globalConfDir != "" {
		global, err = l.loadFile(filepath.Join(l.globalConfDir, domain.GlobalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	workspace, err = l.loadFile(filepath.Join(l.workspaceRoot, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- workspace (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if workspace != nil {
		base = mergeConfigs(base, workspace)
	}

	return base, nil
}

// loadFile reads and parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of overlay onto base.
func mergeConfigs(base, overlay *domain.Config) *domain.Config {
	merged := *base
	if overlay.File != "" {
		merged.File = overlay.File
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return &merged
}
