package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomaskoefod/devarticles/internal/source"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "dev articles", cfg.UI.Title)
	assert.Equal(t, "date-desc", cfg.UI.DefaultSort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Data.Path)

	l := cfg.UI.Labels
	assert.Equal(t, "Nach Autoren oder Titeln suchen...", l.SearchPlaceholder)
	assert.Equal(t, "Nur aktuelles Jahr", l.CurrentYearOnly)
	assert.Equal(t, "Keine Karten gefunden.", l.NoResults)
	assert.Equal(t, "Autor (A-Z)", l.SortLabel(models.SortAuthorAsc))
	assert.Equal(t, "Autor (Z-A)", l.SortLabel(models.SortAuthorDesc))
	assert.Equal(t, "Datum (älteste zuerst)", l.SortLabel(models.SortDateAsc))
	assert.Equal(t, "Datum (neueste zuerst)", l.SortLabel(models.SortDateDesc))

	require.NoError(t, cfg.Validate())
}

func TestLoadMergesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  path: /tmp/cards.db
ui:
  title: Artikel
  default_sort: author-asc
  labels:
    no_results: Nothing here.
    sort_options:
      author-asc: Author (A-Z)
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cards.db", cfg.Data.Path)
	assert.Equal(t, "Artikel", cfg.UI.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Nothing here.", cfg.UI.Labels.NoResults)
	assert.Equal(t, "Author (A-Z)", cfg.UI.Labels.SortLabel(models.SortAuthorAsc))
	assert.Equal(t, "Autor (Z-A)", cfg.UI.Labels.SortLabel(models.SortAuthorDesc))

	sort, err := cfg.UI.SortOption()
	require.NoError(t, err)
	assert.Equal(t, models.SortAuthorAsc, sort)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"sort":   "ui:\n  default_sort: likes\n",
		"format": "data:\n  format: csv\n",
		"level":  "log:\n  level: loud\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(writeConfig(t, "ui:\n  default_sort: likes\n"))
	assert.ErrorIs(t, err, models.ErrInvalidSortOption)

	_, err = Load(writeConfig(t, "data:\n  format: csv\n"))
	assert.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "ui: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Data.Path = "/srv/articles.json"
	cfg.Data.Format = "json"
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data/cards.db"), expandPath("~/data/cards.db"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "", expandPath(""))
}

func TestSortLabelFallback(t *testing.T) {
	var l Labels
	assert.Equal(t, "date-asc", l.SortLabel(models.SortDateAsc))
}
