// Package config loads the generator configuration from YAML.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/SargeyWargey/documentation-generator-sub000/internal/domain"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/pkg/filesystem"
	"github.com/SargeyWargey/documentation-generator-sub000/internal/ports"
)

// FileLoader loads YAML configuration from ~/.docgen/config.yaml
// (overridable via DOCGEN_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. On first run the default
// configuration is written to disk so users have a file to edit.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("DOCGEN_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".docgen", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	home := filesystem.UserHomeDir()
	return domain.Config{
		ConfigFormatVersion: "1",
		Commands: domain.CommandSettings{
			CommandsDir:      filepath.Join(home, ".claude", "commands"),
			OutputDir:        filepath.Join(home, ".docgen", "output"),
			TempDir:          filepath.Join(home, ".docgen", "tmp"),
			CommandTimeoutMS: domain.DefaultCommandTimeoutMS,
			PollIntervalMS:   domain.DefaultPollIntervalMS,
			CommandFileMode:  "0600",
		},
		Templates: domain.TemplateSettings{
			TemplatesDir: filepath.Join(home, ".docgen", "templates"),
		},
		History: domain.HistorySettings{
			Backend: "sqlite",
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	defaults := defaultConfig()
	if cfg.Commands.CommandsDir == "" {
		cfg.Commands.CommandsDir = defaults.Commands.CommandsDir
	}
	if cfg.Commands.OutputDir == "" {
		cfg.Commands.OutputDir = defaults.Commands.OutputDir
	}
	if cfg.Commands.TempDir == "" {
		cfg.Commands.TempDir = defaults.Commands.TempDir
	}
	if cfg.Commands.CommandTimeoutMS == 0 {
		cfg.Commands.CommandTimeoutMS = defaults.Commands.CommandTimeoutMS
	}
	if cfg.Commands.PollIntervalMS == 0 {
		cfg.Commands.PollIntervalMS = defaults.Commands.PollIntervalMS
	}
	if cfg.Commands.CommandFileMode == "" {
		cfg.Commands.CommandFileMode = defaults.Commands.CommandFileMode
	}
	if cfg.Templates.TemplatesDir == "" {
		cfg.Templates.TemplatesDir = defaults.Templates.TemplatesDir
	}
	if cfg.History.Backend == "" {
		cfg.History.Backend = defaults.History.Backend
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
