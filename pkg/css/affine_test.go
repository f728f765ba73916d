package css

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestIdentityApplyIsNoOp(t *testing.T) {
	m := Identity()
	x, y := m.Apply(3, 4)
	if !almostEqual(x, 3) || !almostEqual(y, 4) {
		t.Fatalf("identity moved (3,4) to (%v,%v)", x, y)
	}
}

func TestTranslationApply(t *testing.T) {
	m := Translation(10, -5)
	x, y := m.Apply(1, 1)
	if !almostEqual(x, 11) || !almostEqual(y, -4) {
		t.Fatalf("translation moved (1,1) to (%v,%v), want (11,-4)", x, y)
	}
}

func TestScaleApply(t *testing.T) {
	m := Scale(2, 3)
	x, y := m.Apply(5, 5)
	if !almostEqual(x, 10) || !almostEqual(y, 15) {
		t.Fatalf("scale moved (5,5) to (%v,%v), want (10,15)", x, y)
	}
}

func TestRotationPreservesOrigin(t *testing.T) {
	m := Rotation(37)
	x, y := m.Apply(0, 0)
	if !almostEqual(x, 0) || !almostEqual(y, 0) {
		t.Fatalf("rotation moved the origin to (%v,%v)", x, y)
	}
}

func TestMultiplyComposesRightToLeft(t *testing.T) {
	translate := Translation(10, 0)
	scale := Scale(2, 2)
	combined := translate.Multiply(scale)

	x, y := combined.Apply(1, 1)
	wantX, wantY := translate.Apply(scale.Apply(1, 1))
	if !almostEqual(x, wantX) || !almostEqual(y, wantY) {
		t.Fatalf("combined.Apply(1,1) = (%v,%v), want (%v,%v)", x, y, wantX, wantY)
	}
}

func TestInvertRoundTripsPoints(t *testing.T) {
	m := Translation(7, -3).Multiply(Rotation(25)).Multiply(Scale(1.5, 0.75))
	inv, ok := m.Invert()
	if !ok {
		t.Fatalf("expected m to be invertible")
	}
	px, py := m.Apply(13, -8)
	rx, ry := inv.Apply(px, py)
	if !almostEqual(rx, 13) || !almostEqual(ry, -8) {
		t.Fatalf("round trip through inverse gave (%v,%v), want (13,-8)", rx, ry)
	}
}

func TestZeroScaleIsNotInvertible(t *testing.T) {
	m := Scale(0, 1)
	if m.Invertible() {
		t.Fatalf("expected a zero x-scale matrix to be non-invertible")
	}
	if _, ok := m.Invert(); ok {
		t.Fatalf("expected Invert to report failure for a singular matrix")
	}
}

func TestDeterminantOfIdentityIsOne(t *testing.T) {
	if d := Identity().Determinant(); !almostEqual(d, 1) {
		t.Fatalf("identity determinant = %v, want 1", d)
	}
}

func TestApplyVectorIgnoresTranslation(t *testing.T) {
	m := Translation(100, 200).Multiply(Scale(2, 2))
	x, y := m.ApplyVector(3, 4)
	if !almostEqual(x, 6) || !almostEqual(y, 8) {
		t.Fatalf("ApplyVector(3,4) = (%v,%v), want (6,8) (translation leaked in)", x, y)
	}
}
