package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/mwhite7112/woodpantry-dashboard/internal/catalog"
	"github.com/mwhite7112/woodpantry-dashboard/internal/matcher"
	"github.com/mwhite7112/woodpantry-dashboard/internal/pantry"
)

// viewMode determines which screen is active.
type viewMode int

const (
	modeBrowse viewMode = iota
	modeDetail
)

// Model is the dashboard state. All mutation happens through discrete key
// events in Update; every pantry change re-ranks the whole catalog
// synchronously.
type Model struct {
	width  int
	height int

	input    textinput.Model
	pantry   *pantry.Set
	recipes  []catalog.Recipe
	matcher  *matcher.Matcher
	results  []matcher.Result
	cursor   int
	mode     viewMode
	renderer *glamour.TermRenderer

	styles Styles
	logger *zap.Logger
}

// New builds the dashboard over a loaded catalog and configured matcher.
func New(recipes []catalog.Recipe, m *matcher.Matcher, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Type an ingredient, press enter to add..."
	ti.CharLimit = 60
	ti.Width = 44
	ti.Focus()

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	model := Model{
		input:    ti,
		pantry:   pantry.New(),
		recipes:  recipes,
		matcher:  m,
		renderer: renderer,
		styles:   DefaultStyles(),
		logger:   logger,
	}
	model.rescore()
	return model
}

// rescore re-ranks the entire catalog against the current pantry and
// clamps the cursor to the new result count.
func (m *Model) rescore() {
	m.results = m.matcher.Rank(m.pantry.Items(), m.recipes)
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.logger.Debug("catalog re-ranked",
		zap.Int("pantry_items", m.pantry.Len()),
		zap.Int("results", len(m.results)),
	)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		wrap := msg.Width - 4
		if wrap > 100 {
			wrap = 100
		}
		if wrap > 20 {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(wrap),
			)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeDetail {
			return m.updateDetail(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "q":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// First esc clears a half-typed entry, second esc quits.
		if m.input.Value() != "" {
			m.input.SetValue("")
			return m, nil
		}
		return m, tea.Quit

	case "enter":
		if m.input.Value() != "" {
			// Blank entries are dropped, never matched.
			if value := strings.TrimSpace(m.input.Value()); value != "" && m.pantry.Add(value) {
				m.logger.Info("ingredient added", zap.String("name", pantry.Normalize(value)))
				m.rescore()
			}
			m.input.SetValue("")
			return m, nil
		}
		if len(m.results) > 0 {
			m.mode = modeDetail
		}
		return m, nil

	case "backspace":
		if m.input.Value() == "" {
			if removed, ok := m.pantry.RemoveLast(); ok {
				m.logger.Info("ingredient removed", zap.String("name", removed))
				m.rescore()
			}
			return m, nil
		}

	case "ctrl+l":
		m.pantry.Clear()
		m.logger.Info("pantry cleared")
		m.rescore()
		return m, nil

	case "tab":
		m.matcher.SetHideUnmatched(!m.matcher.HideUnmatched())
		m.rescore()
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Every keystroke re-runs the full ranking pass; nothing is cached
	// between edits.
	m.rescore()
	return m, cmd
}

// Results exposes the current ranking for inspection.
func (m Model) Results() []matcher.Result {
	return m.results
}

// Pantry exposes the current ingredient set for inspection.
func (m Model) Pantry() []string {
	return m.pantry.Items()
}
