package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thomaskoefod/devarticles/internal/config"
	"github.com/thomaskoefod/devarticles/internal/store"
	"github.com/thomaskoefod/devarticles/internal/view"
	"github.com/thomaskoefod/devarticles/pkg/models"
)

type View int

const (
	ViewCardList View = iota
	ViewCardDetail
	ViewHelp
)

const (
	defaultWidth  = 80
	defaultHeight = 40
	maxCardWidth  = 72
	// header, function bar and footer lines around the card list
	chromeHeight = 8
)

type Model struct {
	cfg    *config.Config
	store  *store.Store
	engine *view.Engine
	logger *slog.Logger
	loc    *time.Location
	keys   keyMap
	help   help.Model

	view     View
	prevView View
	params   view.Params
	visible  []models.Card
	toggles  map[int64]*LikeToggle
	bar      FunctionBar
	list     list.Model

	detail   *DetailRenderer
	detailID int64
	viewport viewport.Model

	width  int
	height int
	err    error
}

type errorMsg struct {
	err error
}

type Option func(*Model)

// WithClock sets the clock the current-year filter reads.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.engine = view.NewEngine(view.WithClock(now))
	}
}

// WithLocation sets the zone dates are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(m *Model) {
		m.loc = loc
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

func New(cfg *config.Config, st *store.Store, opts ...Option) (Model, error) {
	sortOpt, err := cfg.UI.SortOption()
	if err != nil {
		return Model{}, err
	}

	detail, err := NewDetailRenderer(cfg.UI.GlamourStyle, defaultWidth-4)
	if err != nil {
		return Model{}, err
	}

	keys := newKeyMap()
	m := Model{
		cfg:      cfg,
		store:    st,
		engine:   view.NewEngine(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		loc:      time.Local,
		keys:     keys,
		help:     help.New(),
		view:     ViewCardList,
		params:   view.Params{Search: "", Sort: sortOpt},
		toggles:  map[int64]*LikeToggle{},
		bar:      NewFunctionBar(cfg.UI.Labels, keys),
		detail:   detail,
		viewport: viewport.New(defaultWidth, defaultHeight-2),
	}
	for _, opt := range opts {
		opt(&m)
	}

	l := list.New(nil, m.delegate(), defaultWidth, defaultHeight-chromeHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	m.list = l

	m.resize(defaultWidth, defaultHeight)
	m.refresh()

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Visible returns the cards currently shown, in display order.
func (m Model) Visible() []models.Card {
	return append([]models.Card(nil), m.visible...)
}

func (m Model) Params() view.Params {
	return m.params
}

func (m Model) CurrentView() View {
	return m.view
}

// LikeState returns the like control of a visible card.
func (m Model) LikeState(id int64) (LikeToggle, bool) {
	t, ok := m.toggles[id]
	if !ok {
		return LikeToggle{}, false
	}
	return *t, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case errorMsg:
		m.err = msg.err
		return m, nil
	}

	if m.view == ViewCardList && m.bar.Focused() == controlSearch {
		return m.updateBar(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.view {
	case ViewCardList:
		return m.handleListKeys(msg)
	case ViewCardDetail:
		return m.handleDetailKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	focus := m.bar.Focused()

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		return m, m.setFocus(focus.next())
	case key.Matches(msg, m.keys.PrevFocus):
		return m, m.setFocus(focus.prev())
	}

	if focus == controlSearch {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			return m, m.setFocus(controlCards)
		}
		return m.updateBar(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.prevView = m.view
		m.view = ViewHelp
		return m, nil
	case key.Matches(msg, m.keys.Search):
		return m, m.setFocus(controlSearch)
	}

	if focus != controlCards {
		if key.Matches(msg, m.keys.Back) {
			return m, m.setFocus(controlCards)
		}
		return m.updateBar(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Like):
		if i, ok := m.list.SelectedItem().(cardItem); ok {
			m.toggleLike(i.card.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if i, ok := m.list.SelectedItem().(cardItem); ok {
			return m, m.openDetail(i.card.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.view = ViewCardList
		return m, nil

	case key.Matches(msg, m.keys.Like):
		m.toggleLike(m.detailID)
		return m, m.renderDetailContent()

	case key.Matches(msg, m.keys.Help):
		m.prevView = m.view
		m.view = ViewHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.view = m.prevView
	}
	return m, nil
}

func (m Model) updateBar(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		ev  Event
		cmd tea.Cmd
	)
	m.bar, ev, cmd = m.bar.Update(msg, m.params)
	if ev != nil {
		m.applyEvent(ev)
	}
	return m, cmd
}

func (m *Model) applyEvent(ev Event) {
	m.params = ev.Apply(m.params)
	m.logger.Debug("view params changed",
		"search", m.params.Search,
		"sort", m.params.Sort,
		"current_year_only", m.params.CurrentYearOnly)
	m.refresh()
	m.list.ResetSelected()
}

// refresh recomputes the visible cards from the store. Like controls of
// cards that left the view are dropped.
func (m *Model) refresh() {
	m.visible = m.engine.Apply(m.store.All(), m.params)

	toggles := make(map[int64]*LikeToggle, len(m.visible))
	items := make([]list.Item, len(m.visible))
	for i, c := range m.visible {
		t, ok := m.toggles[c.ID]
		if !ok {
			nt := NewLikeToggle(c)
			t = &nt
		}
		toggles[c.ID] = t
		items[i] = cardItem{card: c, toggle: *t}
	}
	m.toggles = toggles
	m.list.SetItems(items)

	m.logger.Debug("view recomputed",
		"visible", len(m.visible),
		"total", m.store.Len(),
		"version", m.store.Version())
}

func (m *Model) toggleLike(id int64) {
	t, ok := m.toggles[id]
	if !ok {
		return
	}
	likes := t.Toggle(func(id int64, likes int) {
		m.store.SetLikes(id, likes)
	})
	m.logger.Info("like toggled", "id", id, "liked", t.Liked(), "likes", likes)
	m.refresh()
}

func (m *Model) openDetail(id int64) tea.Cmd {
	m.detailID = id
	m.view = ViewCardDetail
	cmd := m.renderDetailContent()
	m.viewport.GotoTop()
	return cmd
}

func (m *Model) renderDetailContent() tea.Cmd {
	card, ok := m.store.Get(m.detailID)
	if !ok {
		return nil
	}
	toggle, ok := m.LikeState(m.detailID)
	if !ok {
		toggle = NewLikeToggle(card)
	}

	out, err := m.detail.Render(card, toggle, m.cfg.UI.Labels, m.loc)
	if err != nil {
		m.logger.Error("rendering card failed", "id", card.ID, "error", err)
		return func() tea.Msg { return errorMsg{err} }
	}
	m.viewport.SetContent(out)
	return nil
}

func (m *Model) setFocus(c control) tea.Cmd {
	cmd := m.bar.Focus(c)
	m.list.SetDelegate(m.delegate())
	return cmd
}

func (m Model) delegate() cardDelegate {
	return cardDelegate{
		labels: m.cfg.UI.Labels,
		loc:    m.loc,
		width:  min(m.width, maxCardWidth),
		active: m.bar.Focused() == controlCards,
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.bar.SetWidth(min(width, maxCardWidth))
	m.help.Width = width
	m.list.SetDelegate(m.delegate())
	m.list.SetSize(width, max(cardHeight+cardSpacing, height-chromeHeight))

	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
	if err := m.detail.SetWidth(width - 4); err != nil {
		m.err = err
		return
	}
	if m.view == ViewCardDetail {
		m.renderDetailContent()
	}
}

func (m Model) View() string {
	switch m.view {
	case ViewCardList:
		return m.renderList()
	case ViewCardDetail:
		return m.renderDetail()
	case ViewHelp:
		return m.renderHelp()
	}
	return ""
}

func (m Model) renderList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.cfg.UI.Title))
	s.WriteString("\n")
	s.WriteString(m.bar.View(m.params))
	s.WriteString("\n\n")

	if len(m.visible) == 0 {
		s.WriteString(emptyStyle.Render(m.cfg.UI.Labels.NoResults))
	} else {
		s.WriteString(m.list.View())
	}
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	s.WriteString("\n")
	s.WriteString(m.help.ShortHelpView(m.keys.helpFor(m.bar.Focused())))

	return s.String()
}

func (m Model) renderDetail() string {
	var s strings.Builder

	s.WriteString(m.viewport.View())
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n")
	}

	s.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Like, m.keys.Back, m.keys.Help, m.keys.Quit}))

	return s.String()
}

func (m Model) renderHelp() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(m.cfg.UI.Title + " - Keyboard Shortcuts"))
	s.WriteString("\n")
	s.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press ? or esc to close help"))

	return s.String()
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
