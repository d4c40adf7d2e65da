// internal/materialcolor/argb.go
package materialcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ARGB is a 32-bit color in ARGB channel order, the working currency of
// the theme builder. Alpha survives parsing but the scheme math treats
// every color as opaque.
type ARGB struct {
	A, R, G, B uint8
}

// ParseARGB parses a hex color string. Accepted forms are RRGGBB and
// AARRGGBB, case-insensitive, with an optional "#" or "0x" prefix.
func ParseARGB(s string) (ARGB, error) {
	digits := strings.TrimPrefix(s, "#")
	digits = strings.TrimPrefix(digits, "0x")
	digits = strings.TrimPrefix(digits, "0X")
	if digits == "" {
		return ARGB{}, fmt.Errorf("empty color string")
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return ARGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	switch len(digits) {
	case 6:
		return ARGB{
			A: 0xff,
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, nil
	case 8:
		return ARGB{
			A: uint8(v >> 24),
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, nil
	default:
		return ARGB{}, fmt.Errorf("hex color %q must have 6 or 8 digits, got %d", s, len(digits))
	}
}

// MustParseARGB is ParseARGB for compile-time constants; it panics on
// malformed input and should never be fed request data.
func MustParseARGB(s string) ARGB {
	c, err := ParseARGB(s)
	if err != nil {
		panic(err)
	}
	return c
}

func fromRGBA(c color.RGBA) ARGB {
	return ARGB{A: c.A, R: c.R, G: c.G, B: c.B}
}

// RGBA implements [color.Color] so an ARGB can be handed straight to the
// HCT conversion.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as six lowercase hex digits with no prefix.
// Alpha is dropped; the wire format is positional RGB only.
func (c ARGB) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}
