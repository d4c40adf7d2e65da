// internal/materialcolor/theme.go
package materialcolor

import "goki.dev/cam/hct"

// CustomColor is a named accent color supplied alongside the source
// color. When Blend is set the accent is harmonized toward the source
// before its variants are derived; otherwise it is used as given.
type CustomColor struct {
	Name  string
	Value ARGB
	Blend bool
}

// CustomColorScheme holds the four role variants of one custom color for
// one mode, in the order they are serialized.
type CustomColorScheme struct {
	Color            ARGB
	ColorContainer   ARGB
	OnColor          ARGB
	OnColorContainer ARGB
}

// Ordered returns the variants in serialization order: color,
// color-container, on-color, on-color-container.
func (s CustomColorScheme) Ordered() []ARGB {
	return []ARGB{s.Color, s.ColorContainer, s.OnColor, s.OnColorContainer}
}

// CustomColorGroup is the computed light/dark variant pair for one custom
// color. Value is the color the variants were derived from, after any
// harmonization.
type CustomColorGroup struct {
	Color CustomColor
	Value ARGB
	Light CustomColorScheme
	Dark  CustomColorScheme
}

// Schemes pairs the light and dark scheme derived from one source color.
type Schemes struct {
	Light Scheme
	Dark  Scheme
}

// Theme is the full output of the builder: both base schemes plus the
// variant groups for each custom color, computed fresh per call.
type Theme struct {
	Source       ARGB
	Schemes      Schemes
	CustomColors []CustomColorGroup
}

// corePalette holds the key tonal palettes derived from a source color.
type corePalette struct {
	primary        Tones
	secondary      Tones
	tertiary       Tones
	neutral        Tones
	neutralVariant Tones
	err            Tones
}

func corePaletteOf(source ARGB) corePalette {
	h := hct.FromColor(source)
	return corePalette{
		primary:        TonesOf(h.Hue, max(h.Chroma, 48)),
		secondary:      TonesOf(h.Hue, 16),
		tertiary:       TonesOf(sanitizeDegrees(h.Hue+60), 24),
		neutral:        TonesOf(h.Hue, 4),
		neutralVariant: TonesOf(h.Hue, 8),
		err:            TonesOf(25, 84),
	}
}

// ThemeBuilder assembles a Theme from a source color and optional custom
// colors.
type ThemeBuilder struct {
	source  ARGB
	customs []CustomColor
}

// NewThemeBuilder starts a builder seeded with the given source color.
func NewThemeBuilder(source ARGB) *ThemeBuilder {
	return &ThemeBuilder{source: source}
}

// WithCustomColors sets the custom colors included in the built theme.
// Group order in the output follows slice order here.
func (b *ThemeBuilder) WithCustomColors(customs []CustomColor) *ThemeBuilder {
	b.customs = customs
	return b
}

// Build computes the theme. The result depends only on the builder's
// inputs; identical inputs produce identical themes.
func (b *ThemeBuilder) Build() Theme {
	core := corePaletteOf(b.source)

	groups := make([]CustomColorGroup, 0, len(b.customs))
	for _, c := range b.customs {
		groups = append(groups, buildCustomGroup(c, b.source))
	}

	return Theme{
		Source: b.source,
		Schemes: Schemes{
			Light: lightScheme(core),
			Dark:  darkScheme(core),
		},
		CustomColors: groups,
	}
}

func buildCustomGroup(c CustomColor, source ARGB) CustomColorGroup {
	value := c.Value
	if c.Blend {
		value = Harmonize(value, source)
	}
	tones := TonesFrom(value)
	return CustomColorGroup{
		Color: c,
		Value: value,
		Light: CustomColorScheme{
			Color:            tones.Tone(40),
			ColorContainer:   tones.Tone(90),
			OnColor:          tones.Tone(100),
			OnColorContainer: tones.Tone(10),
		},
		Dark: CustomColorScheme{
			Color:            tones.Tone(80),
			ColorContainer:   tones.Tone(30),
			OnColor:          tones.Tone(20),
			OnColorContainer: tones.Tone(90),
		},
	}
}
