package css

import "strings"

// BorderStyle enumerates the border-style keywords, ordered so that higher
// values win under the CSS border-conflict-resolution priority used at
// shared corners/edges (spec.md §4.1: "hidden beats double beats solid beats
// dashed beats the rest").
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderDotted
	BorderDashed
	BorderSolid
	BorderDouble
	BorderHidden
)

// Priority returns the border-conflict priority used when adjacent borders
// disagree; higher wins.
func (s BorderStyle) Priority() int {
	switch s {
	case BorderHidden:
		return 5
	case BorderDouble:
		return 4
	case BorderSolid:
		return 3
	case BorderDashed:
		return 2
	case BorderDotted:
		return 1
	default:
		return 0
	}
}

// ParseBorderStyle parses a single border-style keyword.
func ParseBorderStyle(value string) (BorderStyle, error) {
	switch strings.TrimSpace(value) {
	case "none":
		return BorderNone, nil
	case "hidden":
		return BorderHidden, nil
	case "dotted":
		return BorderDotted, nil
	case "dashed":
		return BorderDashed, nil
	case "solid":
		return BorderSolid, nil
	case "double":
		return BorderDouble, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown border-style keyword"}
	}
}

// BorderSide is one edge's fully-specified border.
type BorderSide struct {
	Width LengthUnit
	Style BorderStyle
	Color Color
}

// Corner is one rounded-corner radius, an x/y ellipse radius pair
// (border-*-radius accepts "10px" or "10px / 20px").
type Corner struct {
	RX, RY LengthUnit
}

// Corners holds the four border-radius corners in CSS's top-left,
// top-right, bottom-right, bottom-left order.
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft Corner
}

// ParseCornerRadius parses a single border-*-radius longhand value, which
// may carry one or two lengths (the "/" two-radii syntax).
func ParseCornerRadius(value string) (Corner, error) {
	if idx := strings.Index(value, "/"); idx >= 0 {
		rx, err := ParseLength(strings.TrimSpace(value[:idx]))
		if err != nil {
			return Corner{}, err
		}
		ry, err := ParseLength(strings.TrimSpace(value[idx+1:]))
		if err != nil {
			return Corner{}, err
		}
		return Corner{RX: rx, RY: ry}, nil
	}
	l, err := ParseLength(value)
	if err != nil {
		return Corner{}, err
	}
	return Corner{RX: l, RY: l}, nil
}

// ParseBorderShorthand parses the `border: <width> <style> <color>` and
// `border-<side>: ...` shorthand, whose three components may appear in any
// order and any of them may be omitted (CSS falls back to the property's
// initial value for the missing parts).
func ParseBorderShorthand(value string) (BorderSide, error) {
	side := BorderSide{Width: LengthUnit{Kind: LengthPx, Value: 3}, Style: BorderNone, Color: Color{A: 255}}
	for _, tok := range strings.Fields(value) {
		if style, err := ParseBorderStyle(tok); err == nil {
			side.Style = style
			continue
		}
		if length, err := ParseLength(tok); err == nil {
			side.Width = length
			continue
		}
		if col, _, err := ParseColor(tok); err == nil {
			side.Color = col
			continue
		}
		return BorderSide{}, &ParseError{Token: tok, Msg: "unrecognized border component"}
	}
	return side, nil
}
