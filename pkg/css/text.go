package css

import "strings"

// TextWrapMode selects whether inline content may break across lines
// (spec.md §4.7, grounded on the original's white_space.rs collapsing
// model).
type TextWrapMode int

const (
	TextWrapWrap TextWrapMode = iota
	TextWrapNoWrap
)

// WhiteSpaceCollapseMode selects how runs of whitespace in text content are
// collapsed before line breaking.
type WhiteSpaceCollapseMode int

const (
	WhiteSpaceCollapseCollapse WhiteSpaceCollapseMode = iota
	WhiteSpaceCollapsePreserve
	WhiteSpaceCollapsePreserveBreaks
)

// WhiteSpace is the fully-resolved `white-space` property: a wrap mode plus
// a collapse mode, matching the CSS Text 4 two-axis model the shorthand
// keywords (normal/nowrap/pre/pre-wrap/pre-line) expand to.
type WhiteSpace struct {
	Wrap     TextWrapMode
	Collapse WhiteSpaceCollapseMode
}

func NormalWhiteSpace() WhiteSpace {
	return WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapseCollapse}
}

// ParseWhiteSpace parses the `white-space` shorthand keyword.
func ParseWhiteSpace(value string) (WhiteSpace, error) {
	switch strings.TrimSpace(value) {
	case "normal":
		return WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapseCollapse}, nil
	case "nowrap":
		return WhiteSpace{Wrap: TextWrapNoWrap, Collapse: WhiteSpaceCollapseCollapse}, nil
	case "pre":
		return WhiteSpace{Wrap: TextWrapNoWrap, Collapse: WhiteSpaceCollapsePreserve}, nil
	case "pre-wrap":
		return WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapsePreserve}, nil
	case "pre-line":
		return WhiteSpace{Wrap: TextWrapWrap, Collapse: WhiteSpaceCollapsePreserveBreaks}, nil
	default:
		return WhiteSpace{}, &ParseError{Token: value, Msg: "unknown white-space keyword"}
	}
}

// WordBreak selects how overlong unbreakable tokens are broken
// (spec.md §4.7, grounded on the original's word_break.rs).
type WordBreak int

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
)

// ParseWordBreak parses the `word-break` keyword.
func ParseWordBreak(value string) (WordBreak, error) {
	switch strings.TrimSpace(value) {
	case "normal":
		return WordBreakNormal, nil
	case "break-all":
		return WordBreakBreakAll, nil
	case "keep-all":
		return WordBreakKeepAll, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown word-break keyword"}
	}
}

// TextTransform selects the case transform applied to text content before
// shaping.
type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize
)

// ParseTextTransform parses the `text-transform` keyword.
func ParseTextTransform(value string) (TextTransform, error) {
	switch strings.TrimSpace(value) {
	case "none":
		return TextTransformNone, nil
	case "uppercase":
		return TextTransformUppercase, nil
	case "lowercase":
		return TextTransformLowercase, nil
	case "capitalize":
		return TextTransformCapitalize, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown text-transform keyword"}
	}
}

// TextDecorationLine is a bitmask of simultaneously-active decoration lines.
type TextDecorationLine uint8

const (
	TextDecorationNone        TextDecorationLine = 0
	TextDecorationUnderline   TextDecorationLine = 1 << 0
	TextDecorationOverline    TextDecorationLine = 1 << 1
	TextDecorationLineThrough TextDecorationLine = 1 << 2
)

// TextDecorationStyle selects the line's stroke pattern.
type TextDecorationStyle int

const (
	TextDecorationStyleSolid TextDecorationStyle = iota
	TextDecorationStyleDouble
	TextDecorationStyleDotted
	TextDecorationStyleDashed
	TextDecorationStyleWavy
)

// TextDecoration is the resolved `text-decoration` shorthand. A zero-alpha
// Color means "unset", resolved by the cascade to the node's text color
// (CSS's currentColor default for this property).
type TextDecoration struct {
	Lines TextDecorationLine
	Style TextDecorationStyle
	Color Color
}

// ParseTextDecorationLine parses the `text-decoration-line` value, which may
// list multiple keywords (e.g. "underline overline").
func ParseTextDecorationLine(value string) (TextDecorationLine, error) {
	var mask TextDecorationLine
	for _, tok := range strings.Fields(value) {
		switch tok {
		case "none":
			continue
		case "underline":
			mask |= TextDecorationUnderline
		case "overline":
			mask |= TextDecorationOverline
		case "line-through":
			mask |= TextDecorationLineThrough
		default:
			return 0, &ParseError{Token: tok, Msg: "unknown text-decoration-line keyword"}
		}
	}
	return mask, nil
}

// ParseTextDecorationStyle parses the `text-decoration-style` keyword.
func ParseTextDecorationStyle(value string) (TextDecorationStyle, error) {
	switch strings.TrimSpace(value) {
	case "solid":
		return TextDecorationStyleSolid, nil
	case "double":
		return TextDecorationStyleDouble, nil
	case "dotted":
		return TextDecorationStyleDotted, nil
	case "dashed":
		return TextDecorationStyleDashed, nil
	case "wavy":
		return TextDecorationStyleWavy, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown text-decoration-style keyword"}
	}
}

// TextAlign selects inline-axis alignment of a line box within its
// containing block.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// ParseTextAlign parses the `text-align` keyword.
func ParseTextAlign(value string) (TextAlign, error) {
	switch strings.TrimSpace(value) {
	case "left", "start":
		return TextAlignLeft, nil
	case "right", "end":
		return TextAlignRight, nil
	case "center":
		return TextAlignCenter, nil
	case "justify":
		return TextAlignJustify, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown text-align keyword"}
	}
}

// LineClamp is the `-webkit-line-clamp`/`line-clamp` value: either unset, or
// a maximum number of lines after which content is truncated with an
// ellipsis.
type LineClamp struct {
	HasLimit bool
	Lines    int
}

// ParseLineClamp parses the `line-clamp` property.
func ParseLineClamp(value string) (LineClamp, error) {
	value = strings.TrimSpace(value)
	if value == "none" {
		return LineClamp{}, nil
	}
	t := NewTokenizer(value)
	tok, err := t.Next()
	if err != nil {
		return LineClamp{}, err
	}
	if tok.Kind != TokenNumber {
		return LineClamp{}, &ParseError{Token: value, Msg: "expected an integer line count"}
	}
	return LineClamp{HasLimit: true, Lines: int(tok.Num)}, nil
}

// TextOverflow selects what marks a line that was cut short by a height cap
// or `line-clamp` (spec.md §8 concrete scenario 4).
type TextOverflow int

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

// ParseTextOverflow parses the `text-overflow` keyword.
func ParseTextOverflow(value string) (TextOverflow, error) {
	switch strings.TrimSpace(value) {
	case "clip":
		return TextOverflowClip, nil
	case "ellipsis":
		return TextOverflowEllipsis, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown text-overflow keyword"}
	}
}
