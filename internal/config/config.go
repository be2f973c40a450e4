package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thomaskoefod/devarticles/internal/source"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

type Config struct {
	Data DataConfig `yaml:"data"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

type DataConfig struct {
	// Path of the snapshot file. Empty means the embedded snapshot.
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

type UIConfig struct {
	Title        string `yaml:"title"`
	DefaultSort  string `yaml:"default_sort"`
	GlamourStyle string `yaml:"glamour_style"`
	Labels       Labels `yaml:"labels"`
}

// Labels are the user-visible strings of the list view.
type Labels struct {
	SearchPlaceholder string            `yaml:"search_placeholder"`
	SortOptions       map[string]string `yaml:"sort_options"`
	CurrentYearOnly   string            `yaml:"current_year_only"`
	NoResults         string            `yaml:"no_results"`
	LikeButton        string            `yaml:"like_button"`
	InvalidDate       string            `yaml:"invalid_date"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SortLabel returns the display label for o, falling back to its value
func (l Labels) SortLabel(o models.SortOption) string {
	if s, ok := l.SortOptions[string(o)]; ok && s != "" {
		return s
	}
	return string(o)
}

// SortOption parses the configured default sort
func (u *UIConfig) SortOption() (models.SortOption, error) {
	return models.ParseSortOption(u.DefaultSort)
}

// SnapshotFormat parses the configured data format
func (d *DataConfig) SnapshotFormat() (source.Format, error) {
	return source.ParseFormat(d.Format)
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file at
// path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the values that are parsed later on
func (c *Config) Validate() error {
	if _, err := c.UI.SortOption(); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if _, err := c.Data.SnapshotFormat(); err != nil {
		return fmt.Errorf("data.format: %w", err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

func (c *Config) applyDefaults() {
	// Expand home directory in paths
	if c.Data.Path != "" {
		c.Data.Path = expandPath(c.Data.Path)
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}

	if c.UI.Title == "" {
		c.UI.Title = "dev articles"
	}
	if c.UI.DefaultSort == "" {
		c.UI.DefaultSort = string(models.DefaultSort)
	}
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = "dark"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	l := &c.UI.Labels
	if l.SearchPlaceholder == "" {
		l.SearchPlaceholder = "Nach Autoren oder Titeln suchen..."
	}
	if l.CurrentYearOnly == "" {
		l.CurrentYearOnly = "Nur aktuelles Jahr"
	}
	if l.NoResults == "" {
		l.NoResults = "Keine Karten gefunden."
	}
	if l.LikeButton == "" {
		l.LikeButton = "LIKE"
	}
	if l.InvalidDate == "" {
		l.InvalidDate = "Ungültiges Datum"
	}

	defaults := map[models.SortOption]string{
		models.SortAuthorAsc:  "Autor (A-Z)",
		models.SortAuthorDesc: "Autor (Z-A)",
		models.SortDateAsc:    "Datum (älteste zuerst)",
		models.SortDateDesc:   "Datum (neueste zuerst)",
	}
	if l.SortOptions == nil {
		l.SortOptions = map[string]string{}
	}
	for o, label := range defaults {
		if l.SortOptions[string(o)] == "" {
			l.SortOptions[string(o)] = label
		}
	}
}

// Save writes configuration to file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "devarticles", "config.yaml")
}
