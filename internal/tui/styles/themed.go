package styles

import (
	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Themed is a theme.Sink that turns token writes into terminal styles.
// Translucent tokens are flattened over Background first.
//
// Create one with NewThemed; each Set replaces the style for one token.
type Themed struct {
	// Background is the palette background translucent tokens are
	// composited over. Empty means black.
	Background string

	BrandA lipgloss.Style
	BrandB lipgloss.Style
	Muted  lipgloss.Style
	Stroke lipgloss.Color

	colors map[theme.Token]string
}

// NewThemed returns a Themed sink that composites over background.
func NewThemed(background string) *Themed {
	return &Themed{
		Background: background,
		BrandA:     Title.Foreground(Accent),
		BrandB:     AccentText,
		Muted:      MutedText,
		Stroke:     DimGray,
		colors:     make(map[theme.Token]string),
	}
}

// Set implements theme.Sink. Values that cannot be parsed are ignored so a
// bad token never breaks rendering.
func (t *Themed) Set(token theme.Token, value string) {
	c, err := palette.ParseColor(value)
	if err != nil {
		return
	}
	bg := t.Background
	if bg == "" {
		bg = "#000000"
	}
	hex, err := palette.Flatten(c, bg)
	if err != nil {
		return
	}
	if t.colors == nil {
		t.colors = make(map[theme.Token]string)
	}
	t.colors[token] = hex

	color := lipgloss.Color(hex)
	switch token {
	case theme.BrandA:
		t.BrandA = lipgloss.NewStyle().Bold(true).Foreground(color)
	case theme.BrandB:
		t.BrandB = lipgloss.NewStyle().Foreground(color)
	case theme.Muted:
		t.Muted = lipgloss.NewStyle().Foreground(color)
	case theme.Stroke:
		t.Stroke = color
	}
}

// Color returns the flattened "#RRGGBB" color last written for token.
func (t *Themed) Color(token theme.Token) (string, bool) {
	c, ok := t.colors[token]
	return c, ok
}

// Card returns the panel style bordered in the stroke color.
func (t *Themed) Card() lipgloss.Style {
	return Card.BorderForeground(t.Stroke)
}
