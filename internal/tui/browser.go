package tui

import (
	"strings"

	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"
	"deesha/statetheme/internal/tui/components"
	"deesha/statetheme/internal/tui/styles"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	listWidth = 22
	cardWidth = 48
)

type browserKeys struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultBrowserKeys = browserKeys{
	Prev:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "prev")),
	Next:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "next")),
	First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browserModel lets the user scroll through states while the whole view is
// re-themed with the highlighted palette.
type browserModel struct {
	table palette.Table
	names []string
	keys  browserKeys

	cursor int
	chosen string

	width  int
	height int
}

func newBrowserModel(table palette.Table, initial string) browserModel {
	m := browserModel{
		table: table,
		names: table.Names(),
		keys:  defaultBrowserKeys,
	}
	for i, name := range m.names {
		if name == initial {
			m.cursor = i
			break
		}
	}
	return m
}

// RunBrowser starts the interactive palette browser. It returns the state the
// user chose with enter, or "" when they quit without choosing.
func RunBrowser(table palette.Table, initial string) (string, error) {
	p := tea.NewProgram(newBrowserModel(table, initial), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	return final.(browserModel).chosen, nil
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			m.chosen = m.current()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Next):
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.First):
			m.cursor = 0
		case key.Matches(msg, m.keys.Last):
			m.cursor = max(len(m.names)-1, 0)
		}
	}
	return m, nil
}

func (m browserModel) current() string {
	if len(m.names) == 0 {
		return ""
	}
	return m.names[m.cursor]
}

// applied resolves the highlighted state into a themed style set.
func (m browserModel) applied() (theme.Resolution, *styles.Themed) {
	name := m.current()
	e, _ := m.table.Lookup(name)
	sink := styles.NewThemed(e.Colors.Background)
	return theme.Apply(sink, m.table, name), sink
}

func (m browserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	res, sink := m.applied()

	header := components.Header(m.width, "theme preview", res.Entry.Inspiration, sink.BrandA, sink.Stroke)
	footer := components.Footer(m.width, []components.KeyBinding{
		{Key: m.keys.Next.Help().Key + "/" + m.keys.Prev.Help().Key, Desc: "navigate"},
		{Key: m.keys.Select.Help().Key, Desc: m.keys.Select.Help().Desc},
		{Key: m.keys.Quit.Help().Key, Desc: m.keys.Quit.Help().Desc},
	}, sink.Stroke, sink.Stroke)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	list := m.renderList(contentH, sink)
	detail := lipgloss.JoinVertical(lipgloss.Left,
		components.PaletteCard(res.State, res.Entry, sink, cardWidth),
		"",
		components.TokenTable(res, sink),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail)
	content := lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderList shows a window of state names that keeps the cursor visible.
func (m browserModel) renderList(height int, sink *styles.Themed) string {
	visible := max(min(height, len(m.names)), 1)
	start := m.cursor - visible/2
	start = max(min(start, len(m.names)-visible), 0)
	end := min(start+visible, len(m.names))

	rows := make([]string, 0, visible)
	for i := start; i < end; i++ {
		name := m.names[i]
		if i == m.cursor {
			rows = append(rows, sink.BrandB.Render("> ")+sink.BrandA.Render(name))
			continue
		}
		rows = append(rows, "  "+styles.MutedText.Render(name))
	}
	return lipgloss.NewStyle().Width(listWidth).Render(strings.Join(rows, "\n"))
}
