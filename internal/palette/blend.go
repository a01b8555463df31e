package palette

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor reads either a hex color (opaque) or the "rgba(r,g,b,a)" form
// produced by RGBA.String.
func ParseColor(value string) (RGBA, error) {
	v := strings.TrimSpace(value)
	if !strings.HasPrefix(v, "rgba(") {
		return HexToRGBA(v, 1)
	}

	inner, ok := strings.CutSuffix(strings.TrimPrefix(v, "rgba("), ")")
	if !ok {
		return RGBA{}, fmt.Errorf("invalid rgba color %q: missing ')'", value)
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return RGBA{}, fmt.Errorf("invalid rgba color %q: want 4 components", value)
	}

	var ch [3]uint8
	for i := range ch {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid rgba color %q: %w", value, err)
		}
		ch[i] = uint8(n)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid rgba color %q: %w", value, err)
	}
	if !(a >= 0 && a <= 1) {
		return RGBA{}, fmt.Errorf("%w, got %v", ErrInvalidAlpha, a)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

// Flatten composites c over an opaque background and returns the visible
// "#RRGGBB" color. Terminals have no alpha channel, so translucent tokens
// are shown the way a browser would paint them on the palette background.
func Flatten(c RGBA, background string) (string, error) {
	if c.A >= 1 {
		return c.Hex(), nil
	}
	r, g, b, err := ParseHex(background)
	if err != nil {
		return "", fmt.Errorf("background: %w", err)
	}

	bg := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return strings.ToUpper(bg.BlendRgb(fg, c.A).Clamped().Hex()), nil
}
