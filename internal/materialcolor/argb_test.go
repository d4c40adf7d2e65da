package materialcolor

import "testing"

func TestParseARGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ARGB
	}{
		{"rgb", "FF0000", ARGB{A: 0xff, R: 0xff}},
		{"rgb lowercase", "ff7676", ARGB{A: 0xff, R: 0xff, G: 0x76, B: 0x76}},
		{"rgb hash prefix", "#59EB5C", ARGB{A: 0xff, R: 0x59, G: 0xeb, B: 0x5c}},
		{"rgb 0x prefix", "0x0000FF", ARGB{A: 0xff, B: 0xff}},
		{"argb", "80FF0000", ARGB{A: 0x80, R: 0xff}},
		{"argb hash prefix", "#00FFFFFF", ARGB{R: 0xff, G: 0xff, B: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseARGB(tt.input)
			if err != nil {
				t.Fatalf("ParseARGB(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseARGB(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseARGBRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"0x",
		"not-a-color",
		"zzzzzz",
		"FF00",      // too short
		"FF000",     // odd length
		"FF00000",   // odd length
		"FF0000000", // too long
		"GG0000",
	}

	for _, input := range inputs {
		if _, err := ParseARGB(input); err == nil {
			t.Errorf("ParseARGB(%q) succeeded, want error", input)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		color ARGB
		want  string
	}{
		{ARGB{A: 0xff, R: 0xff}, "ff0000"},
		{ARGB{A: 0xff, R: 0x0a, G: 0x0b, B: 0x0c}, "0a0b0c"},
		{ARGB{A: 0x00}, "000000"},
		{ARGB{A: 0x80, R: 0xe6, G: 0x9e, B: 0x50}, "e69e50"},
	}

	for _, tt := range tests {
		if got := tt.color.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.color, got, tt.want)
		}
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, s := range []string{"ff7676", "59eb5c", "0000ff", "f8f770", "ba64f2", "61d1fa", "e69e50"} {
		c, err := ParseARGB(s)
		if err != nil {
			t.Fatalf("ParseARGB(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestMustParseARGBPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParseARGB did not panic on bad input")
		}
	}()
	MustParseARGB("nope")
}
