package styles

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings such as the inspiration line.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for help text, hints, and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted interactive elements.
	AccentText = lipgloss.NewStyle().
			Foreground(Accent)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for confirmations.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)

// --- Panels ---

// Card is a rounded-border panel. Callers override BorderForeground with the
// active state's stroke color.
var Card = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(DimGray).
	Padding(1, 2)

// --- Key binding hints ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// FormatKeyBinding formats a single key binding for the footer, using
// accent for the key when it is set.
func FormatKeyBinding(key, desc string, accent lipgloss.TerminalColor) string {
	ks := KeyStyle
	if accent != nil {
		ks = ks.Foreground(accent)
	}
	return ks.Render(key) + " " + KeyDescStyle.Render(desc)
}

// --- Swatches ---

// SwatchBlock renders text on a solid hex background, choosing a dark or
// light foreground so the label stays readable.
func SwatchBlock(hex, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(InkFor(hex)).
		Padding(0, 1).
		Render(text)
}

// InkFor returns the label color that contrasts with the given background.
// Unparseable input falls back to light ink.
func InkFor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return InkLight
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return InkDark
	}
	return InkLight
}

// CenterText centers text horizontally within the given width.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
