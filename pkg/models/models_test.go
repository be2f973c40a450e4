package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOption(t *testing.T) {
	for _, o := range SortOptions {
		got, err := ParseSortOption(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := ParseSortOption("likes-desc")
	assert.ErrorIs(t, err, ErrInvalidSortOption)
}

func TestSortOptionsOrder(t *testing.T) {
	assert.Equal(t, []SortOption{"author-asc", "author-desc", "date-asc", "date-desc"}, SortOptions)
	assert.Equal(t, 3, DefaultSort.Index())
	assert.Equal(t, -1, SortOption("nope").Index())
}
