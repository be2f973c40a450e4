package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/internal/source"
)

func setupCmdTest(t *testing.T) *bytes.Buffer {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfgFile = ""
	dataPath = ""
	dataFormat = ""
	verbose = false
	forceInit = false
	cfg = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	return buf
}

func TestSnapshotCommandWritesEmbeddedCards(t *testing.T) {
	buf := setupCmdTest(t)
	out := filepath.Join(t.TempDir(), "cards.db")

	rootCmd.SetArgs([]string{"snapshot", out})
	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "wrote 8 cards to "+out)

	cards, err := source.LoadSQLite(out)
	require.NoError(t, err)
	assert.Len(t, cards, 8)
}

func TestSnapshotCommandReadsDataFlag(t *testing.T) {
	buf := setupCmdTest(t)
	out := filepath.Join(t.TempDir(), "cards.db")

	rootCmd.SetArgs([]string{"--data", filepath.Join("..", "..", "internal", "source", "testdata", "articles.json"), "snapshot", out})
	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "wrote 3 cards")
}

func TestSnapshotCommandRejectsUnknownFormat(t *testing.T) {
	setupCmdTest(t)

	rootCmd.SetArgs([]string{"--format", "csv", "snapshot", filepath.Join(t.TempDir(), "x.db")})
	err := Execute()
	assert.ErrorIs(t, err, source.ErrUnknownFormat)
}

func TestSnapshotCommandMissingData(t *testing.T) {
	setupCmdTest(t)

	rootCmd.SetArgs([]string{"--data", filepath.Join(t.TempDir(), "missing.json"), "snapshot", filepath.Join(t.TempDir(), "x.db")})
	err := Execute()
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestConfigInit(t *testing.T) {
	buf := setupCmdTest(t)
	path := filepath.Join(t.TempDir(), "devarticles", "config.yaml")

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "wrote default config to "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	err = Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	rootCmd.SetArgs([]string{"config", "init", "--config", path, "--force"})
	assert.NoError(t, Execute())
}

func TestConfigShowAppliesFlags(t *testing.T) {
	buf := setupCmdTest(t)

	rootCmd.SetArgs([]string{"config", "show", "--format", "sqlite"})
	require.NoError(t, Execute())
	assert.Contains(t, buf.String(), "default_sort: date-desc")
	assert.Contains(t, buf.String(), "format: sqlite")
}

func TestConfigLoadErrorSurfaces(t *testing.T) {
	setupCmdTest(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  default_sort: likes\n"), 0644))

	rootCmd.SetArgs([]string{"--config", path, "snapshot", filepath.Join(t.TempDir(), "x.db")})
	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestVersionShort(t *testing.T) {
	buf := setupCmdTest(t)

	rootCmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, Execute())
	assert.Equal(t, "dev\n", buf.String())
}
