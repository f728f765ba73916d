package css

import "strings"

// Overflow selects whether content exceeding a box's bounds is painted or
// clipped (spec.md §4.5). The engine only distinguishes visible vs. hidden;
// scroll/auto are accepted as input and treated as hidden, since there is no
// scrolling viewport in a single rasterized image.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
)

// ParseOverflow parses a single overflow-x/overflow-y keyword.
func ParseOverflow(value string) (Overflow, error) {
	switch strings.TrimSpace(value) {
	case "visible":
		return OverflowVisible, nil
	case "hidden", "clip":
		return OverflowHidden, nil
	case "scroll", "auto":
		return OverflowHidden, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown overflow keyword"}
	}
}

// Overflows holds the resolved overflow-x/overflow-y pair the `overflow`
// shorthand expands to.
type Overflows struct {
	X, Y Overflow
}

// ParseOverflowShorthand parses the `overflow` shorthand, which accepts one
// or two values (x then y; a single value applies to both axes).
func ParseOverflowShorthand(value string) (Overflows, error) {
	pair, err := ParseSpacePair(value, ParseOverflow)
	if err != nil {
		return Overflows{}, err
	}
	return Overflows{X: pair.X, Y: pair.Y}, nil
}
