// Package theme applies a state palette to a style context.
//
// Resolution is a pure function of the table and the state name: it returns
// the four token writes as data. Apply performs those writes on a Sink the
// caller owns, so the same resolution can feed a browser variable store, a
// terminal renderer or a plain map.
//
// Integration example:
//
//	ctx := theme.NewContext()
//	res := theme.ApplyStateTheme(ctx, "Colorado")
//	if res.Outcome != theme.Resolved {
//		// no such state; ctx is untouched
//	}
//	fmt.Println(ctx.Get(theme.Muted)) // rgba(11,27,58,0.55)
package theme

import (
	"fmt"

	"deesha/statetheme/internal/palette"
)

// Token names a style variable written by Apply.
type Token string

const (
	BrandA Token = "brandA"
	BrandB Token = "brandB"
	Muted  Token = "muted"
	Stroke Token = "stroke"
)

const (
	// MutedAlpha is the opacity applied to the palette text color for Muted.
	MutedAlpha = 0.55
	// StrokeAlpha is the opacity applied to the secondary color for Stroke.
	StrokeAlpha = 0.45
)

// Tokens returns every token in the order Apply writes them.
func Tokens() []Token {
	return []Token{BrandA, BrandB, Muted, Stroke}
}

// Outcome reports what a resolution found.
type Outcome int

const (
	// NotFound means the state is not in the table. No writes are produced.
	NotFound Outcome = iota
	// Resolved means the state was found and all four writes were derived.
	Resolved
	// Invalid means the state was found but one of its colors could not be
	// converted. No writes are produced and Resolution.Err says why.
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NotFound:
		return "not-found"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Write is a single token assignment.
type Write struct {
	Token Token  `json:"token"`
	Value string `json:"value"`
}

// Resolution is the result of looking a state up and deriving its writes.
type Resolution struct {
	State   string        `json:"state"`
	Outcome Outcome       `json:"-"`
	Entry   palette.Entry `json:"entry"`
	Writes  []Write       `json:"writes"`
	Err     error         `json:"-"`
}

// Found reports whether the resolution carries writes.
func (r Resolution) Found() bool {
	return r.Outcome == Resolved
}

// Resolve derives the token writes for name without touching any sink.
// An unknown name yields NotFound rather than an error.
func Resolve(table palette.Table, name string) Resolution {
	entry, ok := table.Lookup(name)
	return resolveEntry(name, entry, ok)
}

func resolveEntry(name string, entry palette.Entry, ok bool) Resolution {
	res := Resolution{State: name}
	if !ok {
		res.Outcome = NotFound
		return res
	}
	res.Entry = entry

	// Every color must be in "#RRGGBB" form, including the ones written
	// verbatim.
	for _, f := range entry.Colors.Fields() {
		if !palette.ValidHex(f.Hex) {
			res.Outcome = Invalid
			res.Err = fmt.Errorf("theme %s: %s color: %w %q", name, f.Name, palette.ErrInvalidHex, f.Hex)
			return res
		}
	}

	c := entry.Colors
	muted, err := palette.HexToRGBA(c.Text, MutedAlpha)
	if err != nil {
		res.Outcome = Invalid
		res.Err = fmt.Errorf("theme %s: text color: %w", name, err)
		return res
	}
	stroke, err := palette.HexToRGBA(c.Secondary, StrokeAlpha)
	if err != nil {
		res.Outcome = Invalid
		res.Err = fmt.Errorf("theme %s: secondary color: %w", name, err)
		return res
	}

	res.Outcome = Resolved
	res.Writes = []Write{
		{Token: BrandA, Value: c.Primary},
		{Token: BrandB, Value: c.Secondary},
		{Token: Muted, Value: muted.String()},
		{Token: Stroke, Value: stroke.String()},
	}
	return res
}

// Apply resolves name against table and performs the writes on sink.
// Nothing is written unless the outcome is Resolved.
func Apply(sink Sink, table palette.Table, name string) Resolution {
	res := Resolve(table, name)
	for _, w := range res.Writes {
		sink.Set(w.Token, w.Value)
	}
	return res
}

// ApplyStateTheme applies a state from the built-in table.
func ApplyStateTheme(sink Sink, name string) Resolution {
	entry, ok := palette.Lookup(name)
	res := resolveEntry(name, entry, ok)
	for _, w := range res.Writes {
		sink.Set(w.Token, w.Value)
	}
	return res
}
