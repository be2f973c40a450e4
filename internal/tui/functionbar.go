package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/internal/view"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

// control identifies which part of the list view receives keys.
type control int

const (
	controlCards control = iota
	controlSearch
	controlSort
	controlYear
)

var focusOrder = []control{controlSearch, controlSort, controlYear, controlCards}

func (c control) next() control {
	for i, f := range focusOrder {
		if f == c {
			return focusOrder[(i+1)%len(focusOrder)]
		}
	}
	return controlCards
}

func (c control) prev() control {
	for i, f := range focusOrder {
		if f == c {
			return focusOrder[(i+len(focusOrder)-1)%len(focusOrder)]
		}
	}
	return controlCards
}

// Event is a user edit of one view parameter.
type Event interface {
	Apply(view.Params) view.Params
}

type SearchChanged struct{ Value string }

func (e SearchChanged) Apply(p view.Params) view.Params {
	p.Search = e.Value
	return p
}

type SortChanged struct{ Option models.SortOption }

func (e SortChanged) Apply(p view.Params) view.Params {
	p.Sort = e.Option
	return p
}

type YearFilterChanged struct{ Checked bool }

func (e YearFilterChanged) Apply(p view.Params) view.Params {
	p.CurrentYearOnly = e.Checked
	return p
}

// FunctionBar renders the search field, sort selector and year checkbox.
// The parameter values themselves live in the owning Model; the bar only
// turns key presses into Events.
type FunctionBar struct {
	input  textinput.Model
	labels config.Labels
	keys   keyMap
	focus  control
}

func NewFunctionBar(labels config.Labels, keys keyMap) FunctionBar {
	ti := textinput.New()
	ti.Placeholder = labels.SearchPlaceholder
	ti.Prompt = "/ "
	ti.CharLimit = 200

	return FunctionBar{
		input:  ti,
		labels: labels,
		keys:   keys,
	}
}

// Focus moves keyboard focus to c. Focusing anything but the search
// field blurs it.
func (b *FunctionBar) Focus(c control) tea.Cmd {
	b.focus = c
	if c == controlSearch {
		return b.input.Focus()
	}
	b.input.Blur()
	return nil
}

func (b FunctionBar) Focused() control {
	return b.focus
}

func (b *FunctionBar) SetWidth(w int) {
	b.input.Width = max(10, w-len(b.input.Prompt)-1)
}

// Update handles msg for the focused control and reports the resulting
// parameter change, if any.
func (b FunctionBar) Update(msg tea.Msg, p view.Params) (FunctionBar, Event, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	switch b.focus {
	case controlSearch:
		if b.input.Value() != p.Search {
			b.input.SetValue(p.Search)
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		if v := b.input.Value(); v != p.Search {
			return b, SearchChanged{Value: v}, cmd
		}
		return b, nil, cmd

	case controlSort:
		if !isKey {
			return b, nil, nil
		}
		i := max(0, p.Sort.Index())
		switch {
		case key.Matches(keyMsg, b.keys.SortPrev):
			if i > 0 {
				i--
			}
		case keyMsg.String() == "enter" || keyMsg.String() == " ":
			i = (i + 1) % len(models.SortOptions)
		case key.Matches(keyMsg, b.keys.SortNext):
			if i < len(models.SortOptions)-1 {
				i++
			}
		}
		if opt := models.SortOptions[i]; opt != p.Sort {
			return b, SortChanged{Option: opt}, nil
		}
		return b, nil, nil

	case controlYear:
		if isKey && key.Matches(keyMsg, b.keys.ToggleYear) {
			return b, YearFilterChanged{Checked: !p.CurrentYearOnly}, nil
		}
	}

	return b, nil, nil
}

func (b FunctionBar) View(p view.Params) string {
	if b.input.Value() != p.Search {
		b.input.SetValue(p.Search)
	}

	search := b.input.View()

	sortText := "‹ " + b.labels.SortLabel(p.Sort) + " ›"
	if b.focus == controlSort {
		sortText = focusedControlStyle.Render(sortText)
	} else {
		sortText = controlStyle.Render(sortText)
	}

	box := "[ ]"
	if p.CurrentYearOnly {
		box = "[x]"
	}
	year := box + " " + b.labels.CurrentYearOnly
	if b.focus == controlYear {
		year = focusedControlStyle.Render(year)
	} else {
		year = controlStyle.Render(year)
	}

	var s strings.Builder
	s.WriteString(search)
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sortText, "   ", year))
	return s.String()
}
