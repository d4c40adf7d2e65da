// internal/materialcolor/scheme.go
package materialcolor

// Scheme maps every Material scheme role to a concrete color for one
// mode (light or dark). Role names follow the Material 3 color system.
type Scheme struct {
	Primary               ARGB
	OnPrimary             ARGB
	PrimaryContainer      ARGB
	OnPrimaryContainer    ARGB
	InversePrimary        ARGB
	PrimaryFixed          ARGB
	PrimaryFixedDim       ARGB
	OnPrimaryFixed        ARGB
	OnPrimaryFixedVariant ARGB

	Secondary               ARGB
	OnSecondary             ARGB
	SecondaryContainer      ARGB
	OnSecondaryContainer    ARGB
	SecondaryFixed          ARGB
	SecondaryFixedDim       ARGB
	OnSecondaryFixed        ARGB
	OnSecondaryFixedVariant ARGB

	Tertiary               ARGB
	OnTertiary             ARGB
	TertiaryContainer      ARGB
	OnTertiaryContainer    ARGB
	TertiaryFixed          ARGB
	TertiaryFixedDim       ARGB
	OnTertiaryFixed        ARGB
	OnTertiaryFixedVariant ARGB

	Error            ARGB
	OnError          ARGB
	ErrorContainer   ARGB
	OnErrorContainer ARGB

	SurfaceDim              ARGB
	Surface                 ARGB
	SurfaceBright           ARGB
	SurfaceContainerLowest  ARGB
	SurfaceContainerLow     ARGB
	SurfaceContainer        ARGB
	SurfaceContainerHigh    ARGB
	SurfaceContainerHighest ARGB

	OnSurface        ARGB
	OnSurfaceVariant ARGB
	Outline          ARGB
	OutlineVariant   ARGB

	InverseSurface   ARGB
	InverseOnSurface ARGB

	SurfaceVariant ARGB
	Background     ARGB
	OnBackground   ARGB
	Shadow         ARGB
	Scrim          ARGB
}

// NumRoles is the number of roles in a Scheme; Ordered always returns
// exactly this many colors.
const NumRoles = 48

// Ordered returns every role color in the scheme's fixed declaration
// order. Callers serializing a scheme positionally depend on this order
// never changing.
func (s Scheme) Ordered() []ARGB {
	return []ARGB{
		s.Primary, s.OnPrimary, s.PrimaryContainer, s.OnPrimaryContainer,
		s.InversePrimary, s.PrimaryFixed, s.PrimaryFixedDim, s.OnPrimaryFixed, s.OnPrimaryFixedVariant,
		s.Secondary, s.OnSecondary, s.SecondaryContainer, s.OnSecondaryContainer,
		s.SecondaryFixed, s.SecondaryFixedDim, s.OnSecondaryFixed, s.OnSecondaryFixedVariant,
		s.Tertiary, s.OnTertiary, s.TertiaryContainer, s.OnTertiaryContainer,
		s.TertiaryFixed, s.TertiaryFixedDim, s.OnTertiaryFixed, s.OnTertiaryFixedVariant,
		s.Error, s.OnError, s.ErrorContainer, s.OnErrorContainer,
		s.SurfaceDim, s.Surface, s.SurfaceBright,
		s.SurfaceContainerLowest, s.SurfaceContainerLow, s.SurfaceContainer,
		s.SurfaceContainerHigh, s.SurfaceContainerHighest,
		s.OnSurface, s.OnSurfaceVariant, s.Outline, s.OutlineVariant,
		s.InverseSurface, s.InverseOnSurface,
		s.SurfaceVariant, s.Background, s.OnBackground, s.Shadow, s.Scrim,
	}
}

// lightScheme derives the light-mode scheme from a core palette using the
// Material 3 baseline tones.
func lightScheme(p corePalette) Scheme {
	return Scheme{
		Primary:               p.primary.Tone(40),
		OnPrimary:             p.primary.Tone(100),
		PrimaryContainer:      p.primary.Tone(90),
		OnPrimaryContainer:    p.primary.Tone(10),
		InversePrimary:        p.primary.Tone(80),
		PrimaryFixed:          p.primary.Tone(90),
		PrimaryFixedDim:       p.primary.Tone(80),
		OnPrimaryFixed:        p.primary.Tone(10),
		OnPrimaryFixedVariant: p.primary.Tone(30),

		Secondary:               p.secondary.Tone(40),
		OnSecondary:             p.secondary.Tone(100),
		SecondaryContainer:      p.secondary.Tone(90),
		OnSecondaryContainer:    p.secondary.Tone(10),
		SecondaryFixed:          p.secondary.Tone(90),
		SecondaryFixedDim:       p.secondary.Tone(80),
		OnSecondaryFixed:        p.secondary.Tone(10),
		OnSecondaryFixedVariant: p.secondary.Tone(30),

		Tertiary:               p.tertiary.Tone(40),
		OnTertiary:             p.tertiary.Tone(100),
		TertiaryContainer:      p.tertiary.Tone(90),
		OnTertiaryContainer:    p.tertiary.Tone(10),
		TertiaryFixed:          p.tertiary.Tone(90),
		TertiaryFixedDim:       p.tertiary.Tone(80),
		OnTertiaryFixed:        p.tertiary.Tone(10),
		OnTertiaryFixedVariant: p.tertiary.Tone(30),

		Error:            p.err.Tone(40),
		OnError:          p.err.Tone(100),
		ErrorContainer:   p.err.Tone(90),
		OnErrorContainer: p.err.Tone(10),

		SurfaceDim:              p.neutral.Tone(87),
		Surface:                 p.neutral.Tone(98),
		SurfaceBright:           p.neutral.Tone(98),
		SurfaceContainerLowest:  p.neutral.Tone(100),
		SurfaceContainerLow:     p.neutral.Tone(96),
		SurfaceContainer:        p.neutral.Tone(94),
		SurfaceContainerHigh:    p.neutral.Tone(92),
		SurfaceContainerHighest: p.neutral.Tone(90),

		OnSurface:        p.neutral.Tone(10),
		OnSurfaceVariant: p.neutralVariant.Tone(30),
		Outline:          p.neutralVariant.Tone(50),
		OutlineVariant:   p.neutralVariant.Tone(80),

		InverseSurface:   p.neutral.Tone(20),
		InverseOnSurface: p.neutral.Tone(95),

		SurfaceVariant: p.neutralVariant.Tone(90),
		Background:     p.neutral.Tone(98),
		OnBackground:   p.neutral.Tone(10),
		Shadow:         p.neutral.Tone(0),
		Scrim:          p.neutral.Tone(0),
	}
}

// darkScheme is the dark-mode counterpart of lightScheme.
func darkScheme(p corePalette) Scheme {
	return Scheme{
		Primary:               p.primary.Tone(80),
		OnPrimary:             p.primary.Tone(20),
		PrimaryContainer:      p.primary.Tone(30),
		OnPrimaryContainer:    p.primary.Tone(90),
		InversePrimary:        p.primary.Tone(40),
		PrimaryFixed:          p.primary.Tone(90),
		PrimaryFixedDim:       p.primary.Tone(80),
		OnPrimaryFixed:        p.primary.Tone(10),
		OnPrimaryFixedVariant: p.primary.Tone(30),

		Secondary:               p.secondary.Tone(80),
		OnSecondary:             p.secondary.Tone(20),
		SecondaryContainer:      p.secondary.Tone(30),
		OnSecondaryContainer:    p.secondary.Tone(90),
		SecondaryFixed:          p.secondary.Tone(90),
		SecondaryFixedDim:       p.secondary.Tone(80),
		OnSecondaryFixed:        p.secondary.Tone(10),
		OnSecondaryFixedVariant: p.secondary.Tone(30),

		Tertiary:               p.tertiary.Tone(80),
		OnTertiary:             p.tertiary.Tone(20),
		TertiaryContainer:      p.tertiary.Tone(30),
		OnTertiaryContainer:    p.tertiary.Tone(90),
		TertiaryFixed:          p.tertiary.Tone(90),
		TertiaryFixedDim:       p.tertiary.Tone(80),
		OnTertiaryFixed:        p.tertiary.Tone(10),
		OnTertiaryFixedVariant: p.tertiary.Tone(30),

		Error:            p.err.Tone(80),
		OnError:          p.err.Tone(20),
		ErrorContainer:   p.err.Tone(30),
		OnErrorContainer: p.err.Tone(90),

		SurfaceDim:              p.neutral.Tone(6),
		Surface:                 p.neutral.Tone(6),
		SurfaceBright:           p.neutral.Tone(24),
		SurfaceContainerLowest:  p.neutral.Tone(4),
		SurfaceContainerLow:     p.neutral.Tone(10),
		SurfaceContainer:        p.neutral.Tone(12),
		SurfaceContainerHigh:    p.neutral.Tone(17),
		SurfaceContainerHighest: p.neutral.Tone(22),

		OnSurface:        p.neutral.Tone(90),
		OnSurfaceVariant: p.neutralVariant.Tone(80),
		Outline:          p.neutralVariant.Tone(60),
		OutlineVariant:   p.neutralVariant.Tone(30),

		InverseSurface:   p.neutral.Tone(90),
		InverseOnSurface: p.neutral.Tone(20),

		SurfaceVariant: p.neutralVariant.Tone(30),
		Background:     p.neutral.Tone(6),
		OnBackground:   p.neutral.Tone(90),
		Shadow:         p.neutral.Tone(0),
		Scrim:          p.neutral.Tone(0),
	}
}
