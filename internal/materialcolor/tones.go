// internal/materialcolor/tones.go
package materialcolor

import "goki.dev/cam/hct"

// Tones is a tonal palette: the full run of tones for one hue/chroma
// pair. Individual colors are materialized on demand through HCT, so a
// Tones value is just the two coordinates.
type Tones struct {
	Hue    float32
	Chroma float32
}

// TonesOf returns the tonal palette at the given hue and chroma.
func TonesOf(hue, chroma float32) Tones {
	return Tones{Hue: hue, Chroma: chroma}
}

// TonesFrom returns the tonal palette passing through the given color.
func TonesFrom(c ARGB) Tones {
	h := hct.FromColor(c)
	return Tones{Hue: h.Hue, Chroma: h.Chroma}
}

// Tone returns the palette color at the given tone, where 0 is black and
// 100 is white.
func (t Tones) Tone(tone float32) ARGB {
	return fromRGBA(hct.New(t.Hue, t.Chroma, tone).AsRGBA())
}
