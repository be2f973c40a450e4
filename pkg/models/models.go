package models

import (
	"errors"
	"fmt"
)

var ErrInvalidSortOption = errors.New("invalid sort option")

type Images struct {
	Portrait  []string `json:"portrait"`
	Landscape []string `json:"landscape"`
}

// Card is a single article record as delivered by a snapshot.
// DateAdded is kept verbatim and parsed on use.
type Card struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	DateAdded string `json:"dateAdded"`
	Images    Images `json:"images"`
	Likes     int    `json:"likes"`
}

type Message struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Text   string `json:"text"`
}

type Payload struct {
	Data []Card `json:"data"`
}

// APIResponse is the bootstrap payload shape. Only Payload is required.
type APIResponse struct {
	Message *Message `json:"message,omitempty"`
	Payload *Payload `json:"payload"`
}

type SortOption string

const (
	SortAuthorAsc  SortOption = "author-asc"
	SortAuthorDesc SortOption = "author-desc"
	SortDateAsc    SortOption = "date-asc"
	SortDateDesc   SortOption = "date-desc"
)

// DefaultSort is the ordering used when nothing else was chosen.
const DefaultSort = SortDateDesc

// SortOptions lists every option in the order the selector presents them.
var SortOptions = []SortOption{SortAuthorAsc, SortAuthorDesc, SortDateAsc, SortDateDesc}

// ParseSortOption validates s against the known options
func ParseSortOption(s string) (SortOption, error) {
	for _, o := range SortOptions {
		if string(o) == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOption, s)
}

// Index returns the position of o in SortOptions, or -1.
func (o SortOption) Index() int {
	for i, opt := range SortOptions {
		if opt == o {
			return i
		}
	}
	return -1
}
