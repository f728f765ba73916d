package css

import "testing"

func TestParseLengthUnits(t *testing.T) {
	cases := []struct {
		in   string
		kind LengthUnitKind
		val  float64
	}{
		{"10px", LengthPx, 10},
		{"10", LengthPx, 10},
		{"0", LengthPx, 0},
		{"50%", LengthPercent, 50},
		{"2em", LengthEm, 2},
		{"1.5rem", LengthRem, 1.5},
		{"100vw", LengthVw, 100},
		{"100vh", LengthVh, 100},
		{"auto", LengthAuto, 0},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) returned error: %v", c.in, err)
		}
		if got.Kind != c.kind {
			t.Fatalf("ParseLength(%q).Kind = %v, want %v", c.in, got.Kind, c.kind)
		}
		if c.kind != LengthAuto && got.Value != c.val {
			t.Fatalf("ParseLength(%q).Value = %v, want %v", c.in, got.Value, c.val)
		}
	}
}

func TestParseLengthRejectsUnknownUnit(t *testing.T) {
	if _, err := ParseLength("10zz"); err == nil {
		t.Fatalf("expected an error for an unknown unit")
	}
}

func TestParseLengthRejectsTrailingTokens(t *testing.T) {
	if _, err := ParseLength("10px extra"); err == nil {
		t.Fatalf("expected an error for trailing tokens after a length")
	}
}

func TestLengthResolvePx(t *testing.T) {
	l := LengthUnit{Kind: LengthPx, Value: 12}
	if got := l.Resolve(ResolveContext{}); got != 12 {
		t.Fatalf("px Resolve = %v, want 12", got)
	}
}

func TestLengthResolvePercent(t *testing.T) {
	l := LengthUnit{Kind: LengthPercent, Value: 50}
	got := l.Resolve(ResolveContext{PercentBasisPx: 200})
	if got != 100 {
		t.Fatalf("50%% of 200 = %v, want 100", got)
	}
}

func TestLengthResolveViewportUnits(t *testing.T) {
	ctx := ResolveContext{ViewportWidth: 800, ViewportHeight: 400}
	vw := LengthUnit{Kind: LengthVw, Value: 10}
	if got := vw.Resolve(ctx); got != 80 {
		t.Fatalf("10vw of 800 = %v, want 80", got)
	}
	vmin := LengthUnit{Kind: LengthVmin, Value: 10}
	if got := vmin.Resolve(ctx); got != 40 {
		t.Fatalf("10vmin = %v, want 40", got)
	}
	vmax := LengthUnit{Kind: LengthVmax, Value: 10}
	if got := vmax.Resolve(ctx); got != 80 {
		t.Fatalf("10vmax = %v, want 80", got)
	}
}

func TestAutoLengthResolvesToZero(t *testing.T) {
	if got := AutoLength().Resolve(ResolveContext{}); got != 0 {
		t.Fatalf("auto.Resolve = %v, want 0", got)
	}
	if !AutoLength().IsAuto() {
		t.Fatalf("expected IsAuto to report true")
	}
}
