package css

import "strings"

// TailwindHandler parses a utility class token's suffix (the part after its
// prefix, e.g. "red-500" from "bg-red-500") into a mutation of Style. vp is
// supplied for tokens whose value depends on viewport (currently none
// directly, but kept for parity with the responsive-prefix design described
// in spec.md §4.1).
type TailwindHandler func(style *Style, suffix string, vp Viewport) error

// tailwindHandlers maps a token's prefix to the handler that parses its
// suffix. Longest-prefix-first isn't needed because prefixes are looked up
// by an explicit registration key, not matched by scanning.
var tailwindHandlers = map[string]TailwindHandler{
	"bg":      handleBackgroundColor,
	"text":    handleTextColorOrSize,
	"p":       handlePaddingAll,
	"px":      handlePaddingX,
	"py":      handlePaddingY,
	"pt":      handlePaddingSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Top = v }),
	"pr":      handlePaddingSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Right = v }),
	"pb":      handlePaddingSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Bottom = v }),
	"pl":      handlePaddingSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Left = v }),
	"m":       handleMarginAll,
	"mx":      handleMarginX,
	"my":      handleMarginY,
	"mt":      handleMarginSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Top = v }),
	"mr":      handleMarginSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Right = v }),
	"mb":      handleMarginSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Bottom = v }),
	"ml":      handleMarginSide(func(s *Sides[LengthUnit], v LengthUnit) { s.Left = v }),
	"w":       handleWidth,
	"h":       handleHeight,
	"rounded": handleRounded,
	"border":  handleBorder,
	"flex":    handleFlex,
	"justify": handleJustify,
	"items":   handleItems,
	"opacity": handleOpacity,
	"blur":    handleBlur,
	"gap":     handleGap,
}

// spacingScale converts Tailwind's numeric spacing tokens (the default
// 0.25rem-per-step scale) to a LengthUnit. Non-numeric tokens fall through
// to ParseLength/arbitrary-value handling by the caller.
func spacingScale(token string) (LengthUnit, bool) {
	switch token {
	case "0":
		return ZeroLength(), true
	case "px":
		return LengthUnit{Kind: LengthPx, Value: 1}, true
	case "full":
		return LengthUnit{Kind: LengthPercent, Value: 100}, true
	case "auto":
		return AutoLength(), true
	}
	n, err := ParsePercentageNumber(token)
	if err != nil {
		return LengthUnit{}, false
	}
	return LengthUnit{Kind: LengthRem, Value: n.Value * 0.25}, true
}

func resolveSpacingOrArbitrary(suffix string) (LengthUnit, error) {
	if v, ok := arbitraryValue(suffix); ok {
		return ParseLength(v)
	}
	if v, ok := spacingScale(suffix); ok {
		return v, nil
	}
	return LengthUnit{}, &ParseError{Token: suffix, Msg: "unrecognized spacing token"}
}

// arbitraryValue extracts the bracketed payload of Tailwind's
// `prop-[value]` arbitrary-value syntax.
func arbitraryValue(suffix string) (string, bool) {
	if strings.HasPrefix(suffix, "[") && strings.HasSuffix(suffix, "]") {
		return strings.ReplaceAll(suffix[1:len(suffix)-1], "_", " "), true
	}
	return "", false
}

func handleBackgroundColor(style *Style, suffix string, vp Viewport) error {
	col, err := resolveColorToken(suffix)
	if err != nil {
		return err
	}
	style.BackgroundColor = Of(col)
	return nil
}

func resolveColorToken(suffix string) (Color, error) {
	if v, ok := arbitraryValue(suffix); ok {
		col, _, err := ParseColor(v)
		return col, err
	}
	if col, ok := tailwindPalette[suffix]; ok {
		return col, nil
	}
	col, _, err := ParseColor(suffix)
	return col, err
}

func handleTextColorOrSize(style *Style, suffix string, vp Viewport) error {
	if size, ok := tailwindFontSizes[suffix]; ok {
		style.FontSize = Of(size)
		return nil
	}
	col, err := resolveColorToken(suffix)
	if err != nil {
		return err
	}
	style.Color = Of(col)
	return nil
}

func handlePaddingAll(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	style.Padding = Of(Uniform(v))
	return nil
}

func handlePaddingX(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	sides := style.Padding.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
	sides.Left, sides.Right = v, v
	style.Padding = Of(sides)
	return nil
}

func handlePaddingY(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	sides := style.Padding.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
	sides.Top, sides.Bottom = v, v
	style.Padding = Of(sides)
	return nil
}

func handlePaddingSide(set func(*Sides[LengthUnit], LengthUnit)) TailwindHandler {
	return func(style *Style, suffix string, vp Viewport) error {
		v, err := resolveSpacingOrArbitrary(suffix)
		if err != nil {
			return err
		}
		sides := style.Padding.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
		set(&sides, v)
		style.Padding = Of(sides)
		return nil
	}
}

func handleMarginAll(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	style.Margin = Of(Uniform(v))
	return nil
}

func handleMarginX(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	sides := style.Margin.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
	sides.Left, sides.Right = v, v
	style.Margin = Of(sides)
	return nil
}

func handleMarginY(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	sides := style.Margin.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
	sides.Top, sides.Bottom = v, v
	style.Margin = Of(sides)
	return nil
}

func handleMarginSide(set func(*Sides[LengthUnit], LengthUnit)) TailwindHandler {
	return func(style *Style, suffix string, vp Viewport) error {
		v, err := resolveSpacingOrArbitrary(suffix)
		if err != nil {
			return err
		}
		sides := style.Margin.Resolve(Uniform(ZeroLength()), Uniform(ZeroLength()))
		set(&sides, v)
		style.Margin = Of(sides)
		return nil
	}
}

func handleWidth(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	style.Width = Of(v)
	return nil
}

func handleHeight(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	style.Height = Of(v)
	return nil
}

func handleRounded(style *Style, suffix string, vp Viewport) error {
	var corner Corner
	if suffix == "" {
		corner = Corner{RX: LengthUnit{Kind: LengthPx, Value: 6}, RY: LengthUnit{Kind: LengthPx, Value: 6}}
	} else if v, ok := arbitraryValue(suffix); ok {
		c, err := ParseCornerRadius(v)
		if err != nil {
			return err
		}
		corner = c
	} else if px, ok := tailwindRoundedScale[suffix]; ok {
		corner = Corner{RX: LengthUnit{Kind: LengthPx, Value: px}, RY: LengthUnit{Kind: LengthPx, Value: px}}
	} else {
		return &ParseError{Token: suffix, Msg: "unrecognized rounded token"}
	}
	style.BorderRadius = Of(Corners{TopLeft: corner, TopRight: corner, BottomRight: corner, BottomLeft: corner})
	return nil
}

func handleBorder(style *Style, suffix string, vp Viewport) error {
	sides := style.Border.Resolve(
		Uniform(BorderSide{Width: LengthUnit{Kind: LengthPx, Value: 3}, Style: BorderNone, Color: Color{A: 255}}),
		Uniform(BorderSide{Width: LengthUnit{Kind: LengthPx, Value: 3}, Style: BorderNone, Color: Color{A: 255}}),
	)
	switch suffix {
	case "":
		width := LengthUnit{Kind: LengthPx, Value: 1}
		sides = sides.Map(func(b BorderSide) BorderSide { b.Width = width; b.Style = BorderSolid; return b })
	default:
		if v, ok := arbitraryValue(suffix); ok {
			col, _, err := ParseColor(v)
			if err == nil {
				sides = sides.Map(func(b BorderSide) BorderSide { b.Color = col; return b })
				break
			}
			l, err := ParseLength(v)
			if err != nil {
				return err
			}
			sides = sides.Map(func(b BorderSide) BorderSide { b.Width = l; b.Style = BorderSolid; return b })
			break
		}
		if col, ok := tailwindPalette[suffix]; ok {
			sides = sides.Map(func(b BorderSide) BorderSide { b.Color = col; return b })
			break
		}
		return &ParseError{Token: suffix, Msg: "unrecognized border token"}
	}
	style.Border = Of(sides)
	return nil
}

func handleFlex(style *Style, suffix string, vp Viewport) error {
	switch suffix {
	case "":
		style.Display = Of(DisplayFlex)
	case "row":
		style.FlexDirection = Of(FlexRow)
	case "col":
		style.FlexDirection = Of(FlexColumn)
	case "wrap":
		style.FlexWrap = Of(FlexWrap)
	case "nowrap":
		style.FlexWrap = Of(FlexNoWrap)
	case "1":
		style.FlexGrow = Of(PercentageNumber{Value: 1})
		style.FlexShrink = Of(PercentageNumber{Value: 1})
		style.FlexBasis = Of(LengthUnit{Kind: LengthPercent, Value: 0})
	default:
		return &ParseError{Token: suffix, Msg: "unrecognized flex token"}
	}
	return nil
}

func handleJustify(style *Style, suffix string, vp Viewport) error {
	switch suffix {
	case "start":
		style.JustifyContent = Of(JustifyStart)
	case "end":
		style.JustifyContent = Of(JustifyEnd)
	case "center":
		style.JustifyContent = Of(JustifyCenter)
	case "between":
		style.JustifyContent = Of(JustifySpaceBetween)
	case "around":
		style.JustifyContent = Of(JustifySpaceAround)
	case "evenly":
		style.JustifyContent = Of(JustifySpaceEvenly)
	default:
		return &ParseError{Token: suffix, Msg: "unrecognized justify token"}
	}
	return nil
}

func handleItems(style *Style, suffix string, vp Viewport) error {
	switch suffix {
	case "start":
		style.AlignItems = Of(AlignStart)
	case "end":
		style.AlignItems = Of(AlignEnd)
	case "center":
		style.AlignItems = Of(AlignCenter)
	case "baseline":
		style.AlignItems = Of(AlignBaseline)
	case "stretch":
		style.AlignItems = Of(AlignStretch)
	default:
		return &ParseError{Token: suffix, Msg: "unrecognized items token"}
	}
	return nil
}

func handleOpacity(style *Style, suffix string, vp Viewport) error {
	n, err := ParsePercentageNumber(suffix)
	if err != nil {
		return err
	}
	style.Opacity = Of(PercentageNumber{Value: n.Value / 100.0})
	return nil
}

func handleBlur(style *Style, suffix string, vp Viewport) error {
	px := 8.0
	switch suffix {
	case "":
		px = 8
	case "sm":
		px = 4
	case "md":
		px = 12
	case "lg":
		px = 16
	case "xl":
		px = 24
	case "none":
		px = 0
	default:
		if v, ok := arbitraryValue(suffix); ok {
			l, err := ParseLength(v)
			if err != nil {
				return err
			}
			px = l.Value
		}
	}
	style.Filter = Of(Filter{BlurPx: px})
	return nil
}

func handleGap(style *Style, suffix string, vp Viewport) error {
	v, err := resolveSpacingOrArbitrary(suffix)
	if err != nil {
		return err
	}
	style.Gap = Of(SpacePair[LengthUnit]{X: v, Y: v})
	return nil
}

// tailwindRoundedScale maps the non-default `rounded-*` size tokens to pixel
// radii.
var tailwindRoundedScale = map[string]float64{
	"none": 0, "sm": 2, "md": 6, "lg": 8, "xl": 12, "2xl": 16, "3xl": 24, "full": 9999,
}

// tailwindFontSizes maps Tailwind's `text-*` size tokens to pixel font
// sizes.
var tailwindFontSizes = map[string]LengthUnit{
	"xs":   {Kind: LengthPx, Value: 12},
	"sm":   {Kind: LengthPx, Value: 14},
	"base": {Kind: LengthPx, Value: 16},
	"lg":   {Kind: LengthPx, Value: 18},
	"xl":   {Kind: LengthPx, Value: 20},
	"2xl":  {Kind: LengthPx, Value: 24},
	"3xl":  {Kind: LengthPx, Value: 30},
	"4xl":  {Kind: LengthPx, Value: 36},
	"5xl":  {Kind: LengthPx, Value: 48},
}

// tailwindPalette maps a small, representative slice of Tailwind's
// color-500 tokens (plus black/white) to concrete colors. Arbitrary-value
// syntax (`bg-[#abcdef]`) covers anything not listed here.
var tailwindPalette = map[string]Color{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"transparent": {},
	"red-500":     {239, 68, 68, 255},
	"orange-500":  {249, 115, 22, 255},
	"yellow-500":  {234, 179, 8, 255},
	"green-500":   {34, 197, 94, 255},
	"blue-500":    {59, 130, 246, 255},
	"indigo-500":  {99, 102, 241, 255},
	"purple-500":  {168, 85, 247, 255},
	"pink-500":    {236, 72, 153, 255},
	"gray-100":    {243, 244, 246, 255},
	"gray-200":    {229, 231, 235, 255},
	"gray-500":    {107, 114, 128, 255},
	"gray-800":    {31, 41, 55, 255},
	"gray-900":    {17, 24, 39, 255},
}

// ResponsivePrefix splits a token like "md:w-full" into its breakpoint
// prefix and the remaining token, reporting false when there is none.
func ResponsivePrefix(token string) (prefix, rest string, ok bool) {
	for _, p := range []string{"sm", "md", "lg", "xl", "2xl"} {
		if strings.HasPrefix(token, p+":") {
			return p, token[len(p)+1:], true
		}
	}
	return "", token, false
}

func breakpointWidth(prefix string, bp Breakpoints) float64 {
	switch prefix {
	case "sm":
		return bp.SM
	case "md":
		return bp.MD
	case "lg":
		return bp.LG
	case "xl":
		return bp.XL
	case "2xl":
		return bp.XXL
	default:
		return 0
	}
}

// ApplyTailwindTokens applies an ordered list of Tailwind utility tokens to
// style, mutating it in place. Tokens are applied in order so later tokens
// win on conflict (spec.md §4.1 "On conflict within the same node, later
// tokens win"). A responsive-prefixed token is skipped when the viewport
// width is narrower than its breakpoint.
func ApplyTailwindTokens(style *Style, tokens []string, vp Viewport) error {
	for _, tok := range tokens {
		active := tok
		if prefix, rest, ok := ResponsivePrefix(tok); ok {
			if vp.Width < breakpointWidth(prefix, vp.Breakpoints) {
				continue
			}
			active = rest
		}
		prefix, suffix, ok := splitTailwindToken(active)
		if !ok {
			return &ParseError{Token: tok, Msg: "unrecognized tailwind token"}
		}
		handler, ok := tailwindHandlers[prefix]
		if !ok {
			return &ParseError{Token: tok, Msg: "unknown tailwind prefix " + prefix}
		}
		if err := handler(style, suffix, vp); err != nil {
			return err
		}
	}
	return nil
}

// splitTailwindToken returns the whole token as a bare (suffix-less) prefix
// when a handler is registered under it (e.g. "flex", "border"); otherwise
// it splits the token on its first "-".
func splitTailwindToken(token string) (prefix, suffix string, ok bool) {
	if _, exists := tailwindHandlers[token]; exists {
		return token, "", true
	}
	idx := strings.Index(token, "-")
	if idx < 0 {
		return "", "", false
	}
	return token[:idx], token[idx+1:], true
}
