package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/madhih2000/OEE-Dashboard/internal/output"
	"github.com/madhih2000/OEE-Dashboard/pkg/model"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var activeTabStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Bold(true)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("57")).Bold(true)
	tabStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("240"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Rows the layout keeps for title, tabs, borders and help.
const chromeHeight = 9

type tuiModel struct {
	dash   model.Dashboard
	active int

	table    table.Model
	rows     []output.SummaryRow
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
}

func newModel(dash model.Dashboard) tuiModel {
	m := tuiModel{
		dash:     dash,
		rows:     output.SummaryRows(dash),
		viewport: viewport.New(80, 20),
		help:     help.New(),
		keys:     newKeyMap(),
		width:    80,
		height:   24,
	}
	m.initTable()
	m.syncDetail()
	return m
}

func (m *tuiModel) initTable() {
	columns := []table.Column{
		{Title: "Step", Width: 28},
		{Title: "Status", Width: 8},
		{Title: "Lot", Width: 6},
		{Title: "Units", Width: 6},
		{Title: "Uptime", Width: 7},
		{Title: "Progress", Width: 9},
		{Title: "OEE", Width: 7},
	}
	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		cells := r.Cells()
		for n := range cells {
			cells[n] = output.Sanitize(cells[n])
		}
		rows[i] = cells
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(true)
	t.SetStyles(s)

	m.table = t
}

// tableHeight leaves room below the table for one bar line per step.
func (m tuiModel) tableHeight() int {
	h := (m.height - chromeHeight) / 2
	if h > len(m.rows) {
		h = len(m.rows)
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.selectTab(m.active + 1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectTab(m.active - 1)
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			n := int(msg.String()[0] - '1')
			if n < len(m.dash.Tabs) {
				m.selectTab(n)
			}
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if c := m.table.Cursor(); m.onOverview() && c >= 0 && c < len(m.rows) {
				if i := m.dash.TabIndex(m.rows[c].Step); i >= 0 {
					m.selectTab(i)
				}
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		m.viewport.Width = msg.Width
		m.viewport.Height = max(3, msg.Height-chromeHeight)
		m.syncDetail()
	}

	if m.onOverview() {
		m.table, cmd = m.table.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// selectTab moves to tab i, wrapping at both ends.
func (m *tuiModel) selectTab(i int) {
	n := len(m.dash.Tabs)
	if n == 0 {
		return
	}
	m.active = ((i % n) + n) % n
	m.syncDetail()
	m.viewport.GotoTop()
}

func (m tuiModel) onOverview() bool {
	return len(m.dash.Tabs) == 0 || m.dash.Tabs[m.active].Overview != nil
}

func (m *tuiModel) syncDetail() {
	if m.onOverview() {
		return
	}
	m.viewport.SetContent(renderDetail(*m.dash.Tabs[m.active].Detail, m.width))
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.dash.Title) + "\n\n")
	b.WriteString(m.tabBar() + "\n\n")

	if m.onOverview() {
		b.WriteString(headerStyle.Render(overviewHeading(m.dash)) + "\n")
		b.WriteString(baseStyle.Render(m.table.View()) + "\n")
		b.WriteString(overviewBars(m.dash, m.width))
	} else {
		b.WriteString(m.viewport.View() + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m tuiModel) tabBar() string {
	tabs := make([]string, len(m.dash.Tabs))
	for i, t := range m.dash.Tabs {
		label := output.Sanitize(t.Label)
		if i < 9 {
			label = fmt.Sprintf("[%d] %s", i+1, label)
		}
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.NewStyle().Width(max(m.width, 1)).Render(strings.Join(tabs, " "))
}

func overviewHeading(d model.Dashboard) string {
	for _, t := range d.Tabs {
		if t.Overview != nil {
			return t.Overview.Heading
		}
	}
	return ""
}

// Run starts the interactive dashboard and blocks until the user quits.
func Run(dash model.Dashboard) error {
	p := tea.NewProgram(newModel(dash), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
