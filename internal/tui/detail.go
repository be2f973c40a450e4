package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

// DetailRenderer turns a card into terminal markdown.
type DetailRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func NewDetailRenderer(style string, width int) (*DetailRenderer, error) {
	d := &DetailRenderer{style: style}
	if err := d.SetWidth(width); err != nil {
		return nil, err
	}
	return d, nil
}

// SetWidth rebuilds the renderer for a new word-wrap width.
func (d *DetailRenderer) SetWidth(width int) error {
	width = max(20, width)
	if d.renderer != nil && width == d.width {
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(d.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	d.renderer = r
	d.width = width
	return nil
}

func (d *DetailRenderer) Render(card models.Card, toggle LikeToggle, labels config.Labels, loc *time.Location) (string, error) {
	out, err := d.renderer.Render(CardMarkdown(card, toggle, labels, loc))
	if err != nil {
		return "", fmt.Errorf("rendering card %d: %w", card.ID, err)
	}
	return out, nil
}

// CardMarkdown formats a card as a markdown document.
func CardMarkdown(card models.Card, toggle LikeToggle, labels config.Labels, loc *time.Location) string {
	var s strings.Builder

	fmt.Fprintf(&s, "# %s\n\n", markdownEscaper.Replace(card.Title))
	fmt.Fprintf(&s, "**%s** · %s\n\n",
		markdownEscaper.Replace(card.Author),
		FormatDate(card.DateAdded, loc, labels.InvalidDate))

	likes := fmt.Sprintf("♥ %d", toggle.Likes())
	if toggle.Liked() {
		likes += " (" + labels.LikeButton + ")"
	}
	s.WriteString(likes)
	s.WriteString("\n")

	if len(card.Images.Landscape) > 0 || len(card.Images.Portrait) > 0 {
		s.WriteString("\n## Bilder\n\n")
		for _, u := range card.Images.Landscape {
			fmt.Fprintf(&s, "- Querformat: %s\n", u)
		}
		for _, u := range card.Images.Portrait {
			fmt.Fprintf(&s, "- Hochformat: %s\n", u)
		}
	}

	return s.String()
}
