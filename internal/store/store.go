// Package store holds the canonical, in-memory card collection.
package store

import (
	"io"
	"log/slog"
	"slices"

	"github.com/thomaskoefod/devarticles/pkg/models"
)

// Store owns the loaded cards. It is not safe for concurrent use; the
// bubbletea update loop is its only writer.
type Store struct {
	cards   []models.Card
	index   map[int64]int
	version uint64
	logger  *slog.Logger
}

// New creates a store from a copy of cards. A later duplicate ID shadows
// the earlier one for lookups; sources reject duplicates before this point.
func New(cards []models.Card, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Store{
		cards:  slices.Clone(cards),
		index:  make(map[int64]int, len(cards)),
		logger: logger,
	}
	for i, c := range s.cards {
		s.index[c.ID] = i
	}

	logger.Debug("store loaded", "cards", len(s.cards))
	return s
}

// All returns the cards in load order. The slice is a copy.
func (s *Store) All() []models.Card {
	return slices.Clone(s.cards)
}

// Get retrieves a single card by id
func (s *Store) Get(id int64) (models.Card, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Card{}, false
	}
	return s.cards[i], true
}

func (s *Store) Len() int {
	return len(s.cards)
}

// Version increases on every change made through SetLikes.
func (s *Store) Version() uint64 {
	return s.version
}

// SetLikes replaces the like count of the card with the given id.
// Unknown ids are ignored and reported as false.
func (s *Store) SetLikes(id int64, likes int) bool {
	i, ok := s.index[id]
	if !ok {
		s.logger.Debug("set likes on unknown card", "id", id)
		return false
	}

	card := s.cards[i]
	card.Likes = likes
	s.cards[i] = card
	s.version++

	s.logger.Debug("likes updated", "id", id, "likes", likes)
	return true
}
