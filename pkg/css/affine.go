package css

import "math"

// Affine is a 2D affine transform matrix in row-major form:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// matching the CSS `matrix(a, b, c, d, e, f)` function order (spec.md §4.3).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Affine { return Affine{A: 1, D: 1} }

// Translation returns a pure translation matrix.
func Translation(tx, ty float64) Affine { return Affine{A: 1, D: 1, E: tx, F: ty} }

// Scale returns a pure scale matrix.
func Scale(sx, sy float64) Affine { return Affine{A: sx, D: sy} }

// Rotation returns a pure rotation matrix for the given angle in degrees,
// rotating clockwise in the canvas's Y-down coordinate space.
func Rotation(degrees float64) Affine {
	r := degrees * math.Pi / 180.0
	sin, cos := math.Sin(r), math.Cos(r)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Skew returns a skew matrix for angles given in degrees along each axis.
func Skew(xDegrees, yDegrees float64) Affine {
	return Affine{
		A: 1, B: math.Tan(yDegrees * math.Pi / 180.0),
		C: math.Tan(xDegrees * math.Pi / 180.0), D: 1,
	}
}

// Multiply composes two transforms so that applying the result is
// equivalent to applying other first, then m (m.Multiply(other) == m ∘ other).
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// Determinant returns the matrix determinant; zero means the transform
// collapses space (e.g. scale(0, 1)) and has no inverse.
func (m Affine) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invertible reports whether the transform has a well-defined inverse.
func (m Affine) Invertible() bool {
	return math.Abs(m.Determinant()) > 1e-12
}

// Invert returns the inverse transform and true, or the identity and false
// if the matrix is not invertible. Callers in pkg/raster use this to map
// device-space pixels back into a node's local coordinate space for clip and
// hit testing (spec.md §4.5 Constraint stack).
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	return Affine{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, true
}

// Apply transforms a point by this matrix.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// ApplyVector transforms a vector (direction) by this matrix, ignoring
// translation — used for transforming gradient angles and blur radii.
func (m Affine) ApplyVector(x, y float64) (float64, float64) {
	return m.A*x + m.C*y, m.B*x + m.D*y
}
