package css

// PercentageNumber is a bare number-or-percentage value used by properties
// like opacity, scale, and flex-grow where `1` and `100%` mean the same
// thing (spec.md §4.1).
type PercentageNumber struct {
	Value float64 // already normalized: 1.0 == "100%" == "1"
}

// ParsePercentageNumber parses either a bare number or a percentage into the
// normalized [0,1]-scaled PercentageNumber representation.
func ParsePercentageNumber(value string) (PercentageNumber, error) {
	t := NewTokenizer(value)
	tok, err := t.Next()
	if err != nil {
		return PercentageNumber{}, err
	}
	next, _ := t.Next()
	if next.Kind != TokenEOF {
		return PercentageNumber{}, &ParseError{Pos: next.Pos, Token: value, Msg: "trailing tokens after number"}
	}
	switch tok.Kind {
	case TokenNumber:
		return PercentageNumber{Value: tok.Num}, nil
	case TokenPercentage:
		return PercentageNumber{Value: tok.Num / 100.0}, nil
	default:
		return PercentageNumber{}, &ParseError{Pos: tok.Pos, Token: value, Msg: "expected a number or percentage"}
	}
}
