package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Like       key.Binding
	Open       key.Binding
	Back       key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Search     key.Binding
	SortPrev   key.Binding
	SortNext   key.Binding
	ToggleYear key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Like: key.NewBinding(
			key.WithKeys(" ", "l"),
			key.WithHelp("space/l", "like"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		SortPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous sort"),
		),
		SortNext: key.NewBinding(
			key.WithKeys("right", "l", "enter", " "),
			key.WithHelp("→/l", "next sort"),
		),
		ToggleYear: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "toggle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Like, k.Open, k.Search, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Like, k.Open},
		{k.NextFocus, k.PrevFocus, k.Search, k.Back},
		{k.SortPrev, k.SortNext, k.ToggleYear},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// helpFor returns the short help shown while the given control has focus.
func (k keyMap) helpFor(c control) []key.Binding {
	switch c {
	case controlSearch:
		return []key.Binding{k.NextFocus, k.Back, k.ForceQuit}
	case controlSort:
		return []key.Binding{k.SortPrev, k.SortNext, k.NextFocus, k.Back, k.Quit}
	case controlYear:
		return []key.Binding{k.ToggleYear, k.NextFocus, k.Back, k.Quit}
	}
	return k.ShortHelp()
}
