package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

const (
	// border plus the four content lines of a card
	cardHeight  = 6
	cardSpacing = 1
)

type cardItem struct {
	card   models.Card
	toggle LikeToggle
}

func (i cardItem) FilterValue() string {
	return i.card.Author + " " + i.card.Title
}

var _ list.Item = cardItem{}

// cardDelegate draws one bordered card per list item.
type cardDelegate struct {
	labels config.Labels
	loc    *time.Location
	width  int
	// active is set while the card list has keyboard focus
	active bool
}

func (d cardDelegate) Height() int {
	return cardHeight
}

func (d cardDelegate) Spacing() int {
	return cardSpacing
}

func (d cardDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(cardItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderCard(ci, d.active && index == m.Index()))
}

func (d cardDelegate) renderCard(ci cardItem, selected bool) string {
	inner := max(10, d.width-4)
	clip := lipgloss.NewStyle().MaxWidth(inner)

	header := avatarStyle.Render(Initials(ci.card.Author)) + " " + authorStyle.Render(ci.card.Author)
	date := dateStyle.Render(FormatDate(ci.card.DateAdded, d.loc, d.labels.InvalidDate))
	title := cardTitleStyle.Render(ci.card.Title)

	button := likeButtonStyle.Render("[ " + d.labels.LikeButton + " ]")
	if ci.toggle.Liked() {
		button = activeLikeButtonStyle.Render("[ " + d.labels.LikeButton + " ]")
	}
	footer := button + "  " + likesStyle.Render(fmt.Sprintf("♥ %d", ci.toggle.Likes()))
	if selected {
		footer += "  " + helpStyle.Render("(space: "+ci.toggle.Label()+")")
	}

	lines := []string{
		clip.Render(header),
		clip.Render(date),
		clip.Render(title),
		clip.Render(footer),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}
