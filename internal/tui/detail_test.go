package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

func TestCardMarkdown(t *testing.T) {
	labels := config.Default().UI.Labels
	card := fixture()[0]
	toggle := NewLikeToggle(card)

	md := CardMarkdown(card, toggle, labels, time.UTC)
	assert.Contains(t, md, "# React Best Practices\n")
	assert.Contains(t, md, "**John Doe** · 15. Januar 2025")
	assert.Contains(t, md, "♥ 42\n")
	assert.Contains(t, md, "- Querformat: landscape1.jpg")
	assert.Contains(t, md, "- Hochformat: portrait1.jpg")

	toggle.Toggle(nil)
	assert.Contains(t, CardMarkdown(card, toggle, labels, time.UTC), "♥ 43 (LIKE)")
}

func TestCardMarkdownEscapesTitle(t *testing.T) {
	card := models.Card{ID: 4, Author: "snake_case", Title: "C# *really* fast", DateAdded: "2025-01-01"}

	md := CardMarkdown(card, NewLikeToggle(card), config.Default().UI.Labels, time.UTC)
	assert.Contains(t, md, `# C\# \*really\* fast`)
	assert.Contains(t, md, `**snake\_case**`)
	assert.NotContains(t, md, "Bilder")
}

func TestDetailRenderer(t *testing.T) {
	d, err := NewDetailRenderer("notty", 60)
	require.NoError(t, err)

	card := fixture()[1]
	out, err := d.Render(card, NewLikeToggle(card), config.Default().UI.Labels, time.UTC)
	require.NoError(t, err)
	assert.Contains(t, out, "TypeScript Tips")
	assert.Contains(t, out, "20. Juni 2024")

	require.NoError(t, d.SetWidth(90))
	assert.Equal(t, 90, d.width)
}

func TestDetailRendererUnknownStyle(t *testing.T) {
	_, err := NewDetailRenderer("no-such-style", 60)
	assert.Error(t, err)
}
