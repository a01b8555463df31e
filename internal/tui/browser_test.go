package tui

import (
	"strings"
	"testing"

	"deesha/statetheme/internal/palette"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func press(m browserModel, keys ...string) browserModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(browserModel)
	}
	return m
}

func TestBrowser_StartsOnInitial(t *testing.T) {
	m := newBrowserModel(palette.Default(), "Texas")
	if got := m.current(); got != "Texas" {
		t.Errorf("expected cursor on Texas, got %q", got)
	}

	m = newBrowserModel(palette.Default(), "Atlantis")
	if got := m.current(); got != "Alabama" {
		t.Errorf("expected unknown initial to start at Alabama, got %q", got)
	}
}

func TestBrowser_Navigation(t *testing.T) {
	m := newBrowserModel(palette.Default(), "")

	m = press(m, "j", "down")
	if got := m.current(); got != "Arizona" {
		t.Errorf("after two steps expected Arizona, got %q", got)
	}

	m = press(m, "k", "k", "k")
	if got := m.current(); got != "Alabama" {
		t.Errorf("cursor should stop at the first state, got %q", got)
	}

	m = press(m, "G")
	if got := m.current(); got != "Wyoming" {
		t.Errorf("expected Wyoming after G, got %q", got)
	}
	m = press(m, "j")
	if got := m.current(); got != "Wyoming" {
		t.Errorf("cursor should stop at the last state, got %q", got)
	}

	m = press(m, "g")
	if got := m.current(); got != "Alabama" {
		t.Errorf("expected Alabama after g, got %q", got)
	}
}

func TestBrowser_SelectAndQuit(t *testing.T) {
	m := newBrowserModel(palette.Default(), "Oregon")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command after enter")
	}
	if got := next.(browserModel).chosen; got != "Oregon" {
		t.Errorf("expected Oregon chosen, got %q", got)
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command after q")
	}
	if got := next.(browserModel).chosen; got != "" {
		t.Errorf("quit should not choose a state, got %q", got)
	}
}

func TestBrowser_View(t *testing.T) {
	m := newBrowserModel(palette.Default(), "Hawaii")
	if m.View() != "" {
		t.Error("expected empty view before the first window size message")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := ansi.Strip(next.(browserModel).View())

	for _, want := range []string{"statetheme > theme preview", "> Hawaii", "brandA", "stroke", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view:\n%s", want, out)
		}
	}
}
