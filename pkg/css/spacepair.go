package css

import "strings"

// SpacePair holds two space-separated values sharing one property, e.g.
// background-position's x/y pair or background-size's width/height
// (spec.md §4.1). When only one value is given, ParseSpacePair duplicates it
// to the second slot, matching CSS's single-value shorthand rule.
type SpacePair[T any] struct {
	X, Y T
}

// ParseSpacePair splits value on whitespace into one or two parts and parses
// each with parse, duplicating a lone value into both slots.
func ParseSpacePair[T any](value string, parse func(string) (T, error)) (SpacePair[T], error) {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		v, err := parse(parts[0])
		if err != nil {
			return SpacePair[T]{}, err
		}
		return SpacePair[T]{X: v, Y: v}, nil
	case 2:
		x, err := parse(parts[0])
		if err != nil {
			return SpacePair[T]{}, err
		}
		y, err := parse(parts[1])
		if err != nil {
			return SpacePair[T]{}, err
		}
		return SpacePair[T]{X: x, Y: y}, nil
	default:
		return SpacePair[T]{}, &ParseError{Token: value, Msg: "expected one or two values"}
	}
}
