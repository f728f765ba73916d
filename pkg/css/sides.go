package css

import "strings"

// Sides holds a CSS 4-side shorthand value (margin, padding, border-width,
// inset, border-radius corners), resolved in top/right/bottom/left order
// (spec.md §4.1).
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// ParseSides expands the standard CSS 1/2/3/4-value shorthand syntax:
//
//	1 value:  applies to all four sides
//	2 values: vertical | horizontal
//	3 values: top | horizontal | bottom
//	4 values: top | right | bottom | left
func ParseSides[T any](value string, parse func(string) (T, error)) (Sides[T], error) {
	parts := strings.Fields(value)
	parsed := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := parse(p)
		if err != nil {
			return Sides[T]{}, err
		}
		parsed = append(parsed, v)
	}
	switch len(parsed) {
	case 1:
		return Sides[T]{Top: parsed[0], Right: parsed[0], Bottom: parsed[0], Left: parsed[0]}, nil
	case 2:
		return Sides[T]{Top: parsed[0], Bottom: parsed[0], Right: parsed[1], Left: parsed[1]}, nil
	case 3:
		return Sides[T]{Top: parsed[0], Right: parsed[1], Left: parsed[1], Bottom: parsed[2]}, nil
	case 4:
		return Sides[T]{Top: parsed[0], Right: parsed[1], Bottom: parsed[2], Left: parsed[3]}, nil
	default:
		return Sides[T]{}, &ParseError{Token: value, Msg: "expected 1 to 4 values"}
	}
}

// Map applies f to all four sides, returning a Sides of the same element
// type.
func (s Sides[T]) Map(f func(T) T) Sides[T] {
	return Sides[T]{Top: f(s.Top), Right: f(s.Right), Bottom: f(s.Bottom), Left: f(s.Left)}
}

// Uniform returns a Sides value with all four sides set to v.
func Uniform[T any](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// SidesLengthToPixels resolves a Sides[LengthUnit] to plain pixel floats
// against the given resolve context, with separate horizontal/vertical
// percentage bases (left/right percentages resolve against width, top/bottom
// against height).
func SidesLengthToPixels(s Sides[LengthUnit], ctx ResolveContext, widthBasis, heightBasis float64) Sides[float64] {
	horiz := ctx
	horiz.PercentBasisPx = widthBasis
	vert := ctx
	vert.PercentBasisPx = heightBasis
	return Sides[float64]{
		Top:    s.Top.Resolve(vert),
		Right:  s.Right.Resolve(horiz),
		Bottom: s.Bottom.Resolve(vert),
		Left:   s.Left.Resolve(horiz),
	}
}
