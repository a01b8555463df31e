// Package components provides render-only building blocks for the
// statetheme TUI and the static preview output. None of them are tea.Models.
package components

import (
	"strings"

	"deesha/statetheme/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the application header bar. The app name is drawn in brand
// and the rule underneath in stroke, so the chrome follows the active theme.
//
//	  statetheme > theme preview                 Colorado
//	──────────────────────────────────────────────────────
func Header(width int, breadcrumb, right string, brand lipgloss.Style, stroke lipgloss.TerminalColor) string {
	if width < 10 {
		return ""
	}

	left := brand.Render("statetheme")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	r := ""
	if right != "" {
		r = styles.Subtitle.Render(right)
	}

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(r), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(stroke).
		Render(left + strings.Repeat(" ", gap) + r)
}
