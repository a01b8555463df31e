package tui

import (
	"fmt"
	"strings"

	"deesha/statetheme/internal/config"
	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"
	"deesha/statetheme/internal/tui/components"
	"deesha/statetheme/internal/tui/styles"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Config messages ---

type configSavedMsg struct{}

type configSaveErrorMsg struct {
	err error
}

// --- Config model ---

type configViewModel struct {
	cfg  *config.Config
	keys []config.KeySpec
	save func(*config.Config) error

	cursor  int
	editing bool
	editor  textinput.Model

	width  int
	height int

	status  string
	isError bool
}

// RunConfigView starts the interactive config viewer/editor TUI.
func RunConfigView() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	p := tea.NewProgram(newConfigViewModel(cfg, (*config.Config).Save), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newConfigViewModel(cfg *config.Config, save func(*config.Config) error) configViewModel {
	return configViewModel{cfg: cfg, keys: config.Keys, save: save}
}

func (m configViewModel) Init() tea.Cmd {
	return nil
}

func (m configViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case configSavedMsg:
		m.editing = false
		m.status = "Configuration saved"
		m.isError = false
		return m, nil

	case configSaveErrorMsg:
		m.status = "Error: " + msg.err.Error()
		m.isError = true
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m configViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.keys)-1 {
			m.cursor++
		}
	case "enter", "e":
		spec := m.keys[m.cursor]
		ti := textinput.New()
		ti.SetValue(spec.Get(m.cfg))
		ti.Focus()
		ti.Width = 32
		ti.Placeholder = "empty clears the value"
		m.editor = ti
		m.editing = true
		m.status = ""
		return m, textinput.Blink
	}

	return m, nil
}

func (m configViewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		// A rejected value leaves m.cfg untouched.
		next := *m.cfg
		spec := m.keys[m.cursor]
		if _, err := spec.Apply(&next, m.editor.Value()); err != nil {
			m.status = "Error: " + err.Error()
			m.isError = true
			return m, nil
		}
		*m.cfg = next
		return m, m.saveConfig()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m configViewModel) saveConfig() tea.Cmd {
	cfg, save := m.cfg, m.save
	return func() tea.Msg {
		if err := save(cfg); err != nil {
			return configSaveErrorMsg{err: err}
		}
		return configSavedMsg{}
	}
}

// themed returns chrome styles for the configured default state, so the
// viewer previews the setting being edited.
func (m configViewModel) themed() *styles.Themed {
	e, ok := palette.Lookup(m.cfg.DefaultState)
	if !ok {
		return styles.NewThemed("")
	}
	sink := styles.NewThemed(e.Colors.Background)
	theme.ApplyStateTheme(sink, m.cfg.DefaultState)
	return sink
}

func (m configViewModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sink := m.themed()
	header := components.Header(m.width, "config", m.cfg.DefaultState, sink.BrandA, sink.Stroke)

	var bindings []components.KeyBinding
	if m.editing {
		bindings = []components.KeyBinding{
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	} else {
		bindings = []components.KeyBinding{
			{Key: "j/k", Desc: "navigate"},
			{Key: "e", Desc: "edit"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, bindings, sink.Stroke, sink.Stroke)
	statusBar := components.StatusBar(m.width, m.status, m.isError)

	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-lipgloss.Height(statusBar), 1)

	sections := []string{header, m.renderContent(contentH, sink)}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m configViewModel) renderContent(height int, sink *styles.Themed) string {
	title := sink.BrandA.Render("Configuration")

	labelWidth := 16
	rows := make([]string, 0, len(m.keys)*2)
	for i, spec := range m.keys {
		selected := i == m.cursor

		value := spec.Get(m.cfg)
		if value == "" {
			value = "(not set)"
		}

		if !selected {
			rows = append(rows, "  "+
				styles.MutedText.Width(labelWidth).Render(spec.Name)+
				styles.MutedText.Render(value))
			continue
		}

		row := sink.BrandB.Render("> ") + styles.Label.Width(labelWidth).Render(spec.Name)
		if m.editing {
			row += m.editor.View()
		} else {
			row += styles.Value.Bold(true).Render(value)
		}
		rows = append(rows, row)

		if !m.editing {
			rows = append(rows, strings.Repeat(" ", 4)+sink.Muted.Italic(true).Render(spec.Description))
		}
	}

	card := sink.Card().Width(56).Render(strings.Join(rows, "\n"))
	combined := lipgloss.JoinVertical(lipgloss.Center, title, "", card)

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, combined)
}
