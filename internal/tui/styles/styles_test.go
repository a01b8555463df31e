package styles

import (
	"testing"

	"deesha/statetheme/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func TestInkFor(t *testing.T) {
	tests := []struct {
		hex  string
		want lipgloss.Color
	}{
		{"#FFFFFF", InkDark},
		{"#F1FAEE", InkDark},
		{"#000000", InkLight},
		{"#1D3557", InkLight},
		{"not-a-color", InkLight},
	}
	for _, tt := range tests {
		if got := InkFor(tt.hex); got != tt.want {
			t.Errorf("InkFor(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestThemed_CollectsFlattenedColors(t *testing.T) {
	sink := NewThemed("#F1FAEE")
	res := theme.ApplyStateTheme(sink, "California")
	if !res.Found() {
		t.Fatalf("expected California to resolve, got %s", res.Outcome)
	}

	got := map[theme.Token]string{}
	for _, tok := range []theme.Token{theme.BrandA, theme.BrandB, theme.Stroke} {
		c, ok := sink.Color(tok)
		if !ok {
			t.Fatalf("missing color for %s", tok)
		}
		got[tok] = c
	}

	want := map[theme.Token]string{
		theme.BrandA: "#1D3557",
		theme.BrandB: "#457B9D",
		// 0.45*(69,123,157) + 0.55*(241,250,238)
		theme.Stroke: "#A4C1CA",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("flattened colors mismatch (-want +got):\n%s", diff)
	}

	muted, ok := sink.Color(theme.Muted)
	if !ok || muted == "#0B132B" || muted == "#F1FAEE" {
		t.Errorf("muted should sit between text and background, got %q (ok=%v)", muted, ok)
	}
	if sink.Stroke != lipgloss.Color("#A4C1CA") {
		t.Errorf("stroke color not applied, got %q", string(sink.Stroke))
	}
}

func TestThemed_IgnoresUnparseable(t *testing.T) {
	sink := NewThemed("#FFFFFF")
	sink.Set(theme.Stroke, "rgba(nope)")

	if _, ok := sink.Color(theme.Stroke); ok {
		t.Error("unparseable value should not be recorded")
	}
	if sink.Stroke != DimGray {
		t.Errorf("stroke changed on bad input: %q", string(sink.Stroke))
	}
}

func TestThemed_EmptyBackgroundIsBlack(t *testing.T) {
	sink := NewThemed("")
	sink.Set(theme.Muted, "rgba(255,255,255,0.5)")

	got, ok := sink.Color(theme.Muted)
	if !ok || got != "#808080" {
		t.Errorf("expected #808080 over black, got %q (ok=%v)", got, ok)
	}
}
