package components

import (
	"fmt"
	"strings"

	"deesha/statetheme/internal/palette"
	"deesha/statetheme/internal/theme"
	"deesha/statetheme/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	swatchText = "      "
	labelWidth = 12
)

// Swatch renders one named color: a solid block, the name and the hex value.
func Swatch(label, hex string) string {
	return styles.SwatchBlock(hex, swatchText) + " " +
		styles.Label.Width(labelWidth).Render(label) +
		styles.Value.Render(hex)
}

// PaletteCard renders a state's five colors inside a card bordered in the
// themed stroke color. The inspiration line is truncated to fit width.
func PaletteCard(name string, e palette.Entry, t *styles.Themed, width int) string {
	// Card border plus horizontal padding.
	inner := max(width-6, 10)

	rows := []string{
		t.BrandA.Render(name),
		styles.Subtitle.Render(ansi.Truncate(e.Inspiration, inner, "…")),
		"",
	}
	for _, f := range e.Colors.Fields() {
		rows = append(rows, Swatch(f.Name, f.Hex))
	}

	card := t.Card()
	if width > 0 {
		// Width excludes the border.
		card = card.Width(max(width-2, 1))
	}
	return card.Render(strings.Join(rows, "\n"))
}

// TokenTable renders the four applied tokens with their raw value and the
// color a terminal shows after flattening over the palette background.
func TokenTable(res theme.Resolution, t *styles.Themed) string {
	if !res.Found() {
		return styles.MutedText.Render(fmt.Sprintf("No theme applied for %q (%s).", res.State, res.Outcome))
	}

	rows := make([]string, 0, len(res.Writes)+1)
	rows = append(rows, styles.Label.Render("applied tokens"))
	for _, w := range res.Writes {
		flat, ok := t.Color(w.Token)
		if !ok {
			flat = res.Entry.Colors.Background
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.SwatchBlock(flat, swatchText),
			" ",
			styles.Label.Width(8).Render(string(w.Token)),
			t.Muted.Render(w.Value),
		))
	}
	return strings.Join(rows, "\n")
}
