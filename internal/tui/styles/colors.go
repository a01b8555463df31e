// Package styles provides the color palette and style definitions for the
// statetheme terminal UI. The chrome colors here are fixed; per-state colors
// come from Themed, which is filled by applying a state theme.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Chrome palette ---

var (
	// Text
	White   = lipgloss.Color("#E8E6E3")
	Gray    = lipgloss.Color("#8A8F98")
	Muted   = lipgloss.Color("#5C6370")
	DimGray = lipgloss.Color("#3E4451")

	// Accent, used until a state theme replaces it
	Accent    = lipgloss.Color("#5FAFD7")
	AccentDim = lipgloss.Color("#2F5F7F")

	// Status
	Green = lipgloss.Color("#7EC699")
	Red   = lipgloss.Color("#F28B82")

	// Swatch label colors picked by background lightness
	InkDark  = lipgloss.Color("#111111")
	InkLight = lipgloss.Color("#FAFAFA")
)
