package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/thomaskoefod/devarticles/pkg/models"
)

// DecodePayload decodes the {"payload": {"data": [...]}} bootstrap shape.
func DecodePayload(r io.Reader) (*models.APIResponse, error) {
	var resp models.APIResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	if resp.Payload == nil {
		return nil, ErrMissingPayload
	}
	return &resp, nil
}

// LoadJSONFile reads a JSON payload from disk
func LoadJSONFile(path string, logger *slog.Logger) ([]models.Card, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	return readJSON(f, logger)
}

func readJSON(r io.Reader, logger *slog.Logger) ([]models.Card, error) {
	resp, err := DecodePayload(r)
	if err != nil {
		return nil, err
	}

	if m := resp.Message; m != nil {
		logger.Debug("payload message", "status", m.Status, "code", m.Code, "text", m.Text)
	}

	cards := resp.Payload.Data
	if cards == nil {
		cards = []models.Card{}
	}
	return cards, nil
}
