// Package source reads the static card snapshot the application starts from.
package source

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/thomaskoefod/devarticles/pkg/models"
)

var (
	ErrDuplicateID    = errors.New("duplicate card id")
	ErrMissingPayload = errors.New("payload missing")
	ErrNotFound       = errors.New("snapshot not found")
	ErrUnknownFormat  = errors.New("unknown snapshot format")
)

type Format string

const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatSQLite Format = "sqlite"
	FormatFeed   Format = "feed"
)

//go:embed data/articles.json
var defaultSnapshot []byte

// ParseFormat accepts the names used in config files and flags.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatJSON, FormatSQLite, FormatFeed:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// DetectFormat guesses the snapshot format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".xml", ".rss", ".atom":
		return FormatFeed, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads the snapshot at path. An empty path yields the embedded
// default snapshot. FormatAuto picks the reader by file extension.
func Load(path string, format Format, logger *slog.Logger) ([]models.Card, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if path == "" {
		logger.Debug("loading embedded snapshot")
		cards, err := readJSON(bytes.NewReader(defaultSnapshot), logger)
		if err != nil {
			return nil, fmt.Errorf("reading embedded snapshot: %w", err)
		}
		if err := validate(cards); err != nil {
			return nil, err
		}
		return cards, nil
	}

	if format == FormatAuto {
		f, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = f
	}

	logger.Debug("loading snapshot", "path", path, "format", format)

	var (
		cards []models.Card
		err   error
	)
	switch format {
	case FormatJSON:
		cards, err = LoadJSONFile(path, logger)
	case FormatSQLite:
		cards, err = LoadSQLite(path)
	case FormatFeed:
		cards, err = LoadFeedFile(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(cards); err != nil {
		return nil, err
	}

	logger.Info("snapshot loaded", "path", path, "cards", len(cards))
	return cards, nil
}

func validate(cards []models.Card) error {
	seen := make(map[int64]struct{}, len(cards))
	for _, c := range cards {
		if _, ok := seen[c.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}
