package css

import "fmt"

// LengthUnitKind identifies which absolute or relative unit a LengthUnit was
// parsed from (spec.md §4.1: px, %, em, rem, vw, vh, vmin, vmax, fr-free
// plain units).
type LengthUnitKind int

const (
	LengthPx LengthUnitKind = iota
	LengthPercent
	LengthEm
	LengthRem
	LengthVw
	LengthVh
	LengthVmin
	LengthVmax
	LengthAuto // bare `auto` keyword, carried on the same type for convenience
)

// LengthUnit is a single CSS length-or-percentage value before resolution
// against a layout context.
type LengthUnit struct {
	Kind  LengthUnitKind
	Value float64 // ignored when Kind == LengthAuto
}

// ResolveContext carries the values a LengthUnit needs to resolve to pixels.
type ResolveContext struct {
	FontSizePx     float64 // for em
	RootFontSizePx float64 // for rem
	ViewportWidth  float64 // for vw/vmin/vmax
	ViewportHeight float64 // for vh/vmin/vmax
	PercentBasisPx float64 // the dimension `%` is relative to (axis-dependent)
}

// Resolve converts the unit to an absolute pixel value. Callers resolving an
// `auto` length must check IsAuto first; Resolve returns 0 for it.
func (l LengthUnit) Resolve(ctx ResolveContext) float64 {
	switch l.Kind {
	case LengthPx:
		return l.Value
	case LengthPercent:
		return l.Value / 100.0 * ctx.PercentBasisPx
	case LengthEm:
		return l.Value * ctx.FontSizePx
	case LengthRem:
		return l.Value * ctx.RootFontSizePx
	case LengthVw:
		return l.Value / 100.0 * ctx.ViewportWidth
	case LengthVh:
		return l.Value / 100.0 * ctx.ViewportHeight
	case LengthVmin:
		return l.Value / 100.0 * min64(ctx.ViewportWidth, ctx.ViewportHeight)
	case LengthVmax:
		return l.Value / 100.0 * max64(ctx.ViewportWidth, ctx.ViewportHeight)
	default:
		return 0
	}
}

// IsAuto reports whether this length is the `auto` keyword rather than a
// resolvable numeric length.
func (l LengthUnit) IsAuto() bool { return l.Kind == LengthAuto }

// IsPercent reports whether this length is a percentage, which callers
// sizing intrinsic content (images, text) often need to special-case.
func (l LengthUnit) IsPercent() bool { return l.Kind == LengthPercent }

// ZeroLength returns the zero-pixel length, the most common default value.
func ZeroLength() LengthUnit { return LengthUnit{Kind: LengthPx, Value: 0} }

// AutoLength is the `auto` keyword value.
func AutoLength() LengthUnit { return LengthUnit{Kind: LengthAuto} }

func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// ParseLength parses a single length-or-percentage token stream, e.g.
// "12px", "1.5em", "50%", "auto".
func ParseLength(value string) (LengthUnit, error) {
	t := NewTokenizer(value)
	tok, err := t.Next()
	if err != nil {
		return LengthUnit{}, err
	}
	next, _ := t.Next()
	if next.Kind != TokenEOF {
		return LengthUnit{}, &ParseError{Pos: tok.Pos, Token: value, Msg: "trailing tokens after length"}
	}
	return lengthFromToken(tok, value)
}

func lengthFromToken(tok Token, raw string) (LengthUnit, error) {
	switch tok.Kind {
	case TokenIdent:
		if tok.Text == "auto" {
			return AutoLength(), nil
		}
		return LengthUnit{}, &ParseError{Pos: tok.Pos, Token: raw, Msg: fmt.Sprintf("unknown length keyword %q", tok.Text)}
	case TokenPercentage:
		return LengthUnit{Kind: LengthPercent, Value: tok.Num}, nil
	case TokenNumber:
		kind, ok := lengthUnitKind(tok.Unit)
		if !ok {
			if tok.Num == 0 {
				return LengthUnit{Kind: LengthPx, Value: 0}, nil
			}
			return LengthUnit{}, &ParseError{Pos: tok.Pos, Token: raw, Msg: fmt.Sprintf("unknown length unit %q", tok.Unit)}
		}
		return LengthUnit{Kind: kind, Value: tok.Num}, nil
	default:
		return LengthUnit{}, &ParseError{Pos: tok.Pos, Token: raw, Msg: "expected a length"}
	}
}

func lengthUnitKind(unit string) (LengthUnitKind, bool) {
	switch unit {
	case "", "px":
		return LengthPx, true
	case "em":
		return LengthEm, true
	case "rem":
		return LengthRem, true
	case "vw":
		return LengthVw, true
	case "vh":
		return LengthVh, true
	case "vmin":
		return LengthVmin, true
	case "vmax":
		return LengthVmax, true
	default:
		return 0, false
	}
}
