// Package palette holds the per-state color palettes and the color helpers
// used to derive display values from them.
//
// The table is keyed by the exact, case-sensitive state name. It is built
// once at package init and never changes afterwards.
package palette

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// StateCount is the number of entries in the built-in table.
const StateCount = 50

var (
	// ErrInvalidHex is returned when a color is not six hex digits with an
	// optional leading '#'.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrInvalidAlpha is returned when an opacity falls outside [0, 1].
	ErrInvalidAlpha = errors.New("alpha must be between 0 and 1")

	// ErrUnknownState is returned by callers that require a state to exist.
	ErrUnknownState = errors.New("unknown state")
)

// hexColor is the canonical form stored in the table.
var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidHex reports whether s is a "#RRGGBB" color. Unlike ParseHex, the
// leading '#' is required.
func ValidHex(s string) bool {
	return hexColor.MatchString(s)
}

// Colors is the five-color set of a palette. Every field is a "#RRGGBB" string.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Field is one named color of a palette.
type Field struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Fields returns the five colors in declaration order.
func (c Colors) Fields() []Field {
	return []Field{
		{Name: "primary", Hex: c.Primary},
		{Name: "secondary", Hex: c.Secondary},
		{Name: "accent", Hex: c.Accent},
		{Name: "background", Hex: c.Background},
		{Name: "text", Hex: c.Text},
	}
}

// Entry is the palette associated with one state.
type Entry struct {
	Inspiration string `json:"inspiration"`
	Colors      Colors `json:"colors"`
}

// Table maps a state name to its palette entry.
type Table map[string]Entry

// Lookup returns the entry for name. The match is exact and case-sensitive.
func (t Table) Lookup(name string) (Entry, bool) {
	e, ok := t[name]
	return e, ok
}

// Names returns the table keys in sorted order.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Validate checks that every entry has an inspiration label and five
// well-formed colors. All problems are reported, not just the first.
func (t Table) Validate() error {
	var errs []error
	for _, name := range t.Names() {
		e := t[name]
		if strings.TrimSpace(e.Inspiration) == "" {
			errs = append(errs, fmt.Errorf("%s: empty inspiration", name))
		}
		for _, f := range e.Colors.Fields() {
			if !ValidHex(f.Hex) {
				errs = append(errs, fmt.Errorf("%s: %s: %w %q", name, f.Name, ErrInvalidHex, f.Hex))
			}
		}
	}
	return errors.Join(errs...)
}

// Default returns a copy of the built-in state table. Callers may modify
// the copy freely.
func Default() Table {
	return maps.Clone(states)
}

// Lookup resolves a state in the built-in table.
func Lookup(name string) (Entry, bool) {
	return states.Lookup(name)
}

// Names returns the built-in state names, sorted.
func Names() []string {
	return states.Names()
}

// Canonical returns the built-in state name matching name in any case.
func Canonical(name string) (string, bool) {
	return FindName(states, name)
}

// CheckIntegrity validates the built-in table, including its size.
func CheckIntegrity() error {
	var errs []error
	if len(states) != StateCount {
		errs = append(errs, fmt.Errorf("state table has %d entries, want %d", len(states), StateCount))
	}
	if err := states.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// FindName returns the canonical table key matching name case-insensitively.
// It is meant for user input; Lookup itself stays exact.
func FindName(t Table, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := t[name]; ok {
		return name, true
	}
	for key := range t {
		if strings.EqualFold(key, name) {
			return key, true
		}
	}
	return "", false
}
