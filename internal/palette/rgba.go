package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a color split into 0-255 channels plus a separate opacity.
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// String renders the color in CSS functional notation, e.g. "rgba(29,53,87,0.55)".
// Alpha is written in its shortest decimal form.
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Hex returns the opaque "#RRGGBB" form, dropping alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex splits a six-digit hex color into its channels. One leading '#'
// is stripped if present; anything other than exactly six hex digits after
// that is rejected with ErrInvalidHex.
func ParseHex(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("%w %q: want 6 hex digits", ErrInvalidHex, hex)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w %q", ErrInvalidHex, hex)
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], nil
}

// HexToRGBA converts a hex color to RGBA with the given opacity, which is
// passed through unchanged.
func HexToRGBA(hex string, alpha float64) (RGBA, error) {
	// Written as a negated range check so NaN is rejected too.
	if !(alpha >= 0 && alpha <= 1) {
		return RGBA{}, fmt.Errorf("%w, got %v", ErrInvalidAlpha, alpha)
	}
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}
