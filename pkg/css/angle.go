package css

import "math"

// Angle stores a CSS angle in degrees regardless of the unit it was written
// in (deg, grad, rad, turn), per spec.md §4.1.
type Angle struct {
	Degrees float64
}

// Radians converts to radians for trigonometric use in gradients and
// transforms.
func (a Angle) Radians() float64 {
	return a.Degrees * math.Pi / 180.0
}

// ParseAngle parses a single angle token, e.g. "45deg", "0.5turn", "100grad".
func ParseAngle(value string) (Angle, error) {
	t := NewTokenizer(value)
	tok, err := t.Next()
	if err != nil {
		return Angle{}, err
	}
	if tok.Kind != TokenNumber {
		return Angle{}, &ParseError{Pos: tok.Pos, Token: value, Msg: "expected an angle"}
	}
	next, _ := t.Next()
	if next.Kind != TokenEOF {
		return Angle{}, &ParseError{Pos: next.Pos, Token: value, Msg: "trailing tokens after angle"}
	}
	switch tok.Unit {
	case "deg", "":
		return Angle{Degrees: tok.Num}, nil
	case "grad":
		return Angle{Degrees: tok.Num * 0.9}, nil
	case "rad":
		return Angle{Degrees: tok.Num * 180.0 / math.Pi}, nil
	case "turn":
		return Angle{Degrees: tok.Num * 360.0}, nil
	default:
		return Angle{}, &ParseError{Pos: tok.Pos, Token: value, Msg: "unknown angle unit " + tok.Unit}
	}
}
