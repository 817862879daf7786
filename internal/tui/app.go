package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/drop"
	"github.com/1broseidon/bgdrop/internal/platform"
	"github.com/1broseidon/bgdrop/internal/session"
)

// model is the root bubbletea model: command log on top, one panel per display below.
type model struct {
	session *session.Session
	panels  []panel
	focus   int

	log  viewport.Model
	help help.Model
	keys keyMap

	width  int
	height int
}

func newModel(displays []platform.Display, s *session.Session) model {
	m := model{
		session: s,
		panels:  make([]panel, 0, len(displays)),
		log:     viewport.New(0, 0),
		help:    help.New(),
		keys:    defaultKeyMap(),
	}
	// One panel per session display; a repeated output name shares the first panel.
	seen := make(map[string]bool, len(displays))
	for _, d := range displays {
		st, ok := s.State(d.Name)
		if !ok || seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		m.panels = append(m.panels, newPanel(d, st.Mode, s))
	}
	m.refreshLog()
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		// Dragging files onto the terminal arrives as a bracketed paste.
		if msg.Paste {
			if p := m.focused(); p != nil && p.drop(drop.Paths(string(msg.Runes))) {
				m.refreshLog()
			}
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.ModeNext):
		m.changeMode(func(p *panel) { p.cycleMode(1) })
	case key.Matches(msg, m.keys.ModePrev):
		m.changeMode(func(p *panel) { p.cycleMode(-1) })
	case key.Matches(msg, m.keys.PickMode):
		n, err := strconv.Atoi(msg.String())
		modes := background.Modes()
		if err == nil && n >= 1 && n <= len(modes) {
			m.changeMode(func(p *panel) { p.setMode(modes[n-1]) })
		}
	case key.Matches(msg, m.keys.PageUp):
		m.log.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.log.PageDown()
	}
	return m, nil
}

func (m *model) focused() *panel {
	if len(m.panels) == 0 {
		return nil
	}
	return &m.panels[m.focus]
}

func (m *model) moveFocus(delta int) {
	n := len(m.panels)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *model) changeMode(fn func(p *panel)) {
	p := m.focused()
	if p == nil {
		return
	}
	fn(p)
	m.refreshLog()
}

// refreshLog re-renders the whole command log from the session.
func (m *model) refreshLog() {
	lines := m.session.Log()
	if len(lines) == 0 {
		m.log.SetContent(emptyLogStyle.Render("no commands issued yet, drop an image on a display"))
		return
	}
	m.log.SetContent(strings.Join(lines, "\n"))
	m.log.GotoBottom()
}

func (m *model) resize() {
	m.help.Width = m.width
	logWidth := m.width - logStyle.GetHorizontalFrameSize()
	if logWidth < 1 {
		logWidth = 1
	}
	m.log.Width = logWidth
	m.log.Height = m.logHeight()
	m.refreshLog()
}

// logHeight is what remains after the title, log label, panel row and help bar.
func (m model) logHeight() int {
	panelHeight := panelContentLines + panelStyle.GetVerticalFrameSize()
	used := 1 + 1 + panelHeight + lipgloss.Height(m.helpView())
	h := m.height - used
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) panelWidth() int {
	if len(m.panels) == 0 {
		return m.width
	}
	w := m.width / len(m.panels)
	if w < 16 {
		w = 16
	}
	return w
}

func (m model) helpView() string {
	return helpBarStyle.Render(m.help.View(m.keys))
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	title := titleStyle.Render("bgdrop") + " " +
		dimStyle.Render("drag an image onto the terminal to set the focused display's background")
	label := logLabelStyle.Width(m.width).Render("Commands")
	logView := logStyle.Render(m.log.View())

	width := m.panelWidth()
	cells := make([]string, 0, len(m.panels))
	for i, p := range m.panels {
		cells = append(cells, p.view(width, i == m.focus))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(m.width).Render(title),
		label,
		logView,
		row,
		m.helpView(),
	)
}
