// Package view computes the visible, ordered subset of cards.
//
// Everything here is a pure computation over its arguments: inputs are
// never modified and every call returns a fresh slice.
package view

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thomaskoefod/devarticles/pkg/models"
)

// Params are the user-controlled inputs of the derived view.
type Params struct {
	Search          string
	Sort            models.SortOption
	CurrentYearOnly bool
}

// DefaultParams is the initial view: no search, newest first, all years.
func DefaultParams() Params {
	return Params{Sort: models.DefaultSort}
}

// Engine applies Params to a card collection. The collator it holds is
// not safe for concurrent use, so neither is the Engine.
type Engine struct {
	collator *collate.Collator
	now      func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now as the source of the current year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLanguage sets the locale used to compare author names.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.collator = collate.New(tag)
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		collator: collate.New(language.German),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply runs search filter, year filter and sort, in that order.
func (e *Engine) Apply(cards []models.Card, p Params) []models.Card {
	out := Filter(cards, p.Search)
	if p.CurrentYearOnly {
		out = FilterYear(out, e.now())
	}
	return e.Sort(out, p.Sort)
}

// Filter keeps cards whose author or title contains search, ignoring case.
// An empty search keeps everything.
func Filter(cards []models.Card, search string) []models.Card {
	if search == "" {
		return slices.Clone(cards)
	}

	needle := strings.ToLower(search)
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Author), needle) ||
			strings.Contains(strings.ToLower(c.Title), needle) {
			out = append(out, c)
		}
	}
	return out
}

// FilterYear keeps cards added in the calendar year of now, evaluated in
// now's location. Cards with unparseable dates are dropped.
func FilterYear(cards []models.Card, now time.Time) []models.Card {
	year := now.Year()
	out := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		t, ok := ParseDate(c.DateAdded)
		if !ok {
			continue
		}
		if t.In(now.Location()).Year() == year {
			out = append(out, c)
		}
	}
	return out
}

type dated struct {
	card models.Card
	at   time.Time
	ok   bool
}

// Sort returns a stably sorted copy of cards. Cards with unparseable dates
// go last in both date orders. Unknown options keep the input order.
func (e *Engine) Sort(cards []models.Card, opt models.SortOption) []models.Card {
	out := slices.Clone(cards)
	if out == nil {
		out = []models.Card{}
	}

	switch opt {
	case models.SortAuthorAsc:
		slices.SortStableFunc(out, func(a, b models.Card) int {
			return e.collator.CompareString(a.Author, b.Author)
		})
	case models.SortAuthorDesc:
		slices.SortStableFunc(out, func(a, b models.Card) int {
			return e.collator.CompareString(b.Author, a.Author)
		})
	case models.SortDateAsc, models.SortDateDesc:
		out = sortByDate(out, opt == models.SortDateDesc)
	}
	return out
}

func sortByDate(cards []models.Card, desc bool) []models.Card {
	keyed := make([]dated, len(cards))
	for i, c := range cards {
		t, ok := ParseDate(c.DateAdded)
		keyed[i] = dated{card: c, at: t, ok: ok}
	}

	slices.SortStableFunc(keyed, func(a, b dated) int {
		switch {
		case !a.ok && !b.ok:
			return 0
		case !a.ok:
			return 1
		case !b.ok:
			return -1
		}
		if desc {
			return b.at.Compare(a.at)
		}
		return a.at.Compare(b.at)
	})

	for i, k := range keyed {
		cards[i] = k.card
	}
	return cards
}
