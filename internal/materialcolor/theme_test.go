package materialcolor

import (
	"regexp"
	"testing"

	"goki.dev/cam/hct"
)

var hexRe = regexp.MustCompile(`^[0-9a-f]{6}$`)

func TestOrderedReturnsEveryRole(t *testing.T) {
	theme := NewThemeBuilder(MustParseARGB("FF0000")).Build()

	for _, scheme := range []Scheme{theme.Schemes.Light, theme.Schemes.Dark} {
		roles := scheme.Ordered()
		if len(roles) != NumRoles {
			t.Fatalf("Ordered() returned %d roles, want %d", len(roles), NumRoles)
		}
		for i, c := range roles {
			if !hexRe.MatchString(c.Hex()) {
				t.Fatalf("role %d serialized to %q", i, c.Hex())
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	customs := []CustomColor{
		{Name: "red", Value: MustParseARGB("FF7676"), Blend: true},
		{Name: "yellow", Value: MustParseARGB("F8F770"), Blend: false},
	}

	a := NewThemeBuilder(MustParseARGB("0000FF")).WithCustomColors(customs).Build()
	b := NewThemeBuilder(MustParseARGB("0000FF")).WithCustomColors(customs).Build()

	if a.Schemes != b.Schemes {
		t.Fatal("identical inputs produced different schemes")
	}
	for i := range a.CustomColors {
		if a.CustomColors[i] != b.CustomColors[i] {
			t.Fatalf("custom color %d differs between builds", i)
		}
	}
}

func TestLightAndDarkSchemesDiffer(t *testing.T) {
	theme := NewThemeBuilder(MustParseARGB("3F51B5")).Build()

	if theme.Schemes.Light == theme.Schemes.Dark {
		t.Fatal("light and dark schemes are identical")
	}
	if theme.Schemes.Light.Shadow != theme.Schemes.Dark.Shadow {
		t.Error("shadow should be tone 0 in both modes")
	}
}

func TestCustomColorGroups(t *testing.T) {
	customs := []CustomColor{
		{Name: "blue", Value: MustParseARGB("0000FF"), Blend: true},
		{Name: "orange", Value: MustParseARGB("E69E50"), Blend: false},
	}
	theme := NewThemeBuilder(MustParseARGB("FF0000")).WithCustomColors(customs).Build()

	if len(theme.CustomColors) != len(customs) {
		t.Fatalf("got %d custom groups, want %d", len(theme.CustomColors), len(customs))
	}
	for i, group := range theme.CustomColors {
		if group.Color != customs[i] {
			t.Errorf("group %d does not carry its input color", i)
		}
		if len(group.Light.Ordered()) != 4 || len(group.Dark.Ordered()) != 4 {
			t.Errorf("group %d does not have four variants per mode", i)
		}
	}

	// Unblended accents are used as given.
	if theme.CustomColors[1].Value != customs[1].Value {
		t.Errorf("unblended accent was altered: %+v", theme.CustomColors[1].Value)
	}
}

func TestHarmonizeMovesHueTowardSource(t *testing.T) {
	design := MustParseARGB("0000FF")
	source := MustParseARGB("FF0000")

	got := Harmonize(design, source)
	if got == design {
		t.Fatal("harmonization left a distant hue untouched")
	}

	designHue := hct.FromColor(design).Hue
	sourceHue := hct.FromColor(source).Hue
	gotHue := hct.FromColor(got).Hue

	before := differenceDegrees(designHue, sourceHue)
	after := differenceDegrees(gotHue, sourceHue)
	// Quantizing through RGB costs a degree or two; the shift itself is
	// capped at 15.
	if after > before+2 {
		t.Fatalf("hue moved away from source: %v -> %v", before, after)
	}
	if shift := differenceDegrees(designHue, gotHue); shift > 17 {
		t.Fatalf("hue shifted %v degrees, cap is 15", shift)
	}
}

func TestHarmonizeIsDeterministic(t *testing.T) {
	design := MustParseARGB("59EB5C")
	source := MustParseARGB("BA64F2")

	if Harmonize(design, source) != Harmonize(design, source) {
		t.Fatal("harmonization is not deterministic")
	}
}

func TestDegreeHelpers(t *testing.T) {
	if got := sanitizeDegrees(-30); got != 330 {
		t.Errorf("sanitizeDegrees(-30) = %v", got)
	}
	if got := sanitizeDegrees(390); got != 30 {
		t.Errorf("sanitizeDegrees(390) = %v", got)
	}
	if got := differenceDegrees(10, 350); got != 20 {
		t.Errorf("differenceDegrees(10, 350) = %v", got)
	}
	if got := rotationDirection(350, 10); got != 1 {
		t.Errorf("rotationDirection(350, 10) = %v", got)
	}
	if got := rotationDirection(10, 350); got != -1 {
		t.Errorf("rotationDirection(10, 350) = %v", got)
	}
}

func TestTonesEndpoints(t *testing.T) {
	tones := TonesFrom(MustParseARGB("3F51B5"))

	if got := tones.Tone(0).Hex(); got != "000000" {
		t.Errorf("tone 0 = %q, want black", got)
	}
	if got := tones.Tone(100).Hex(); got != "ffffff" {
		t.Errorf("tone 100 = %q, want white", got)
	}
}
