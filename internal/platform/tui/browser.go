package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galaxy-gen/internal/core"
	"github.com/vovakirdan/galaxy-gen/internal/galaxy"
)

// Browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the summary sidebar
	sidebarWidth       = 24 // Width of summary sidebar
)

// BrowserKeyMap defines the key bindings for the galaxy browser.
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	HomesOnly key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.HomesOnly, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.HomesOnly, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "bottom"),
		),
		HomesOnly: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "homes only"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BrowserModel is the Bubble Tea model for browsing a generated galaxy.
type BrowserModel struct {
	req       galaxy.Request
	layout    *galaxy.Layout
	homeOf    map[int]int // planet index -> 1-based player number
	table     table.Model
	help      help.Model
	keys      BrowserKeyMap
	width     int
	height    int
	homesOnly bool
	quitting  bool
}

// NewBrowserModel creates a browser for layout.
func NewBrowserModel(req galaxy.Request, layout *galaxy.Layout, width, height int) BrowserModel {
	homeOf := make(map[int]int, len(layout.Homes))
	for player, idx := range layout.Homes {
		homeOf[idx] = player + 1
	}

	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		req:    req,
		layout: layout,
		homeOf: homeOf,
		keys:   DefaultBrowserKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m BrowserModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable creates a table sized for the current window.
func (m *BrowserModel) createTable() table.Model {
	columns := []table.Column{{Title: "#", Width: 6}}
	if m.layout.Names != nil {
		columns = append(columns, table.Column{Title: "Name", Width: 16})
	}
	columns = append(columns,
		table.Column{Title: "X", Width: 12},
		table.Column{Title: "Y", Width: 12},
		table.Column{Title: "Home", Width: 6},
	)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Rows returns the table rows for the current filter.
func (m BrowserModel) Rows() []table.Row {
	rows := make([]table.Row, 0, m.layout.Len())
	for i, p := range m.layout.Points {
		player, home := m.homeOf[i]
		if m.homesOnly && !home {
			continue
		}
		row := table.Row{fmt.Sprintf("%d", i)}
		if m.layout.Names != nil {
			row = append(row, m.layout.Names[i])
		}
		homeCell := ""
		if home {
			homeCell = fmt.Sprintf("P%d", player)
		}
		row = append(row, fmt.Sprintf("%.3f", p.X), fmt.Sprintf("%.3f", p.Y), homeCell)
		rows = append(rows, row)
	}
	return rows
}

func (m *BrowserModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.HomesOnly):
			m.homesOnly = !m.homesOnly
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.table.GotoTop()
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.table.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := fmt.Sprintf("GALAXY - %s", m.layout.Shape)
	if m.homesOnly {
		title += " (homes)"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.table.View())

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the request summary.
func (m BrowserModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	extent := core.Bounds(m.layout.Points)
	lines := []string{
		"Galaxy",
		strings.Repeat("-", sidebarWidth-4),
		fmt.Sprintf("Shape    %s", m.layout.Shape),
		fmt.Sprintf("Seed     %d", m.layout.Seed),
		fmt.Sprintf("Planets  %d", m.layout.Len()),
		fmt.Sprintf("Players  %d", m.req.Players),
		fmt.Sprintf("Density  %.2f", m.req.Density),
		fmt.Sprintf("Radius   %.1f", m.layout.Radius()),
		fmt.Sprintf("Extent   %.0f x %.0f", extent.Width(), extent.Height()),
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunBrowser shows layout in an interactive table until the user quits.
func RunBrowser(req galaxy.Request, layout *galaxy.Layout, width, height int) error {
	model := NewBrowserModel(req, layout, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
