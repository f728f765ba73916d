package css

import "testing"

func TestParseColorHexForms(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{255, 255, 255, 255}},
		{"#ffff", Color{255, 255, 255, 255}},
		{"#ff0000", Color{255, 0, 0, 255}},
		{"#ff000080", Color{255, 0, 0, 0x80}},
		{"#000", Color{0, 0, 0, 255}},
	}
	for _, c := range cases {
		got, isCurrent, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) returned error: %v", c.in, err)
		}
		if isCurrent {
			t.Fatalf("ParseColor(%q) reported currentColor", c.in)
		}
		if got != c.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseColorRGBFunction(t *testing.T) {
	got, _, err := ParseColor("rgb(255, 0, 128)")
	if err != nil {
		t.Fatalf("ParseColor returned error: %v", err)
	}
	want := Color{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Fatalf("ParseColor(rgb(...)) = %+v, want %+v", got, want)
	}
}

func TestParseColorRGBAFunctionWithPercentAlpha(t *testing.T) {
	got, _, err := ParseColor("rgba(0, 0, 0, 50%)")
	if err != nil {
		t.Fatalf("ParseColor returned error: %v", err)
	}
	if got.A < 126 || got.A > 129 {
		t.Fatalf("expected alpha near 127 for 50%%, got %d", got.A)
	}
}

func TestParseColorHSLFunctionMatchesKnownPrimaries(t *testing.T) {
	red, _, err := ParseColor("hsl(0, 100%, 50%)")
	if err != nil {
		t.Fatalf("ParseColor returned error: %v", err)
	}
	want := Color{R: 255, G: 0, B: 0, A: 255}
	if red != want {
		t.Fatalf("hsl(0,100%%,50%%) = %+v, want %+v", red, want)
	}
}

func TestParseColorNamedAndKeywords(t *testing.T) {
	if got, _, _ := ParseColor("transparent"); got != (Color{}) {
		t.Fatalf("transparent = %+v, want zero value", got)
	}
	if _, isCurrent, err := ParseColor("currentcolor"); err != nil || !isCurrent {
		t.Fatalf("currentcolor: isCurrent=%v err=%v", isCurrent, err)
	}
	got, _, err := ParseColor("royalblue")
	if err == nil {
		t.Fatalf("expected an error for an unregistered named color, got %+v", got)
	}
	got, _, err = ParseColor("coral")
	if err != nil {
		t.Fatalf("ParseColor(coral) returned error: %v", err)
	}
	if got != namedColors["coral"] {
		t.Fatalf("ParseColor(coral) = %+v, want %+v", got, namedColors["coral"])
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	if _, _, err := ParseColor("#12"); err == nil {
		t.Fatalf("expected an error for a malformed hex color")
	}
	if _, _, err := ParseColor("notacolor()"); err == nil {
		t.Fatalf("expected an error for an unknown color function")
	}
}
