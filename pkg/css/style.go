package css

// Display selects a node's box-generation behavior, the minimal subset
// needed to drive anonymous-block wrapping and inline-run assembly
// (spec.md §4.3, §9 "Polymorphic nodes").
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayFlex
	DisplayGrid
	DisplayNone
)

// Position selects the positioning scheme taffy-equivalent solvers expect.
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
)

// FlexDirection mirrors the flexbox `flex-direction` property.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

// FlexWrapMode mirrors the flexbox `flex-wrap` property.
type FlexWrapMode int

const (
	FlexNoWrap FlexWrapMode = iota
	FlexWrap
	FlexWrapReverse
)

// JustifyContent mirrors the flexbox/grid main-axis alignment keywords.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// AlignItems mirrors the flexbox/grid cross-axis alignment keywords.
type AlignItems int

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignBaseline
)

// Style is the per-node input style: every property wrapped in CssValue so
// the cascade can distinguish an explicit value from `initial`/`inherit`
// (spec.md §3 "Every LengthUnit... CssValue<T, DEFAULT_INHERIT>"). JSON
// decoding of a Node's `style` map produces one of these via node.DecodeStyle
// (pkg/node), since each property needs its own parse function passed to
// DecodeCssValue.
type Style struct {
	Display  CssValue[Display]
	Position CssValue[Position]

	Width, Height       CssValue[LengthUnit]
	MinWidth, MinHeight CssValue[LengthUnit]
	MaxWidth, MaxHeight CssValue[LengthUnit]
	AspectRatio         CssValue[AspectRatio]

	Margin  CssValue[Sides[LengthUnit]]
	Padding CssValue[Sides[LengthUnit]]
	Inset   CssValue[Sides[LengthUnit]]

	FlexDirection  CssValue[FlexDirection]
	FlexWrap       CssValue[FlexWrapMode]
	JustifyContent CssValue[JustifyContent]
	AlignItems     CssValue[AlignItems]
	FlexGrow       CssValue[PercentageNumber]
	FlexShrink     CssValue[PercentageNumber]
	FlexBasis      CssValue[LengthUnit]
	Gap            CssValue[SpacePair[LengthUnit]]

	GridTemplateColumns CssValue[[]GridLength]
	GridTemplateRows    CssValue[[]GridLength]
	GridAutoFlow        CssValue[GridAutoFlow]

	BackgroundColor    CssValue[Color]
	BackgroundImage    CssValue[[]BackgroundImage]
	BackgroundPosition CssValue[[]SpacePair[LengthUnit]]
	BackgroundSize     CssValue[[]BackgroundSize]
	BackgroundRepeat   CssValue[[]SpacePair[BackgroundRepeatMode]]
	BackgroundOrigin   CssValue[[]BackgroundBox]
	BackgroundClip     CssValue[[]BackgroundBox]

	Border       CssValue[Sides[BorderSide]]
	BorderRadius CssValue[Corners]

	Transform       CssValue[TransformList]
	TransformOrigin CssValue[TransformOrigin]

	Overflow CssValue[Overflows]
	ClipPath CssValue[ClipPath]
	Filter   CssValue[Filter]
	Opacity  CssValue[PercentageNumber]

	Color      CssValue[Color]
	FontSize   CssValue[LengthUnit]
	FontFamily CssValue[[]string]
	FontWeight CssValue[int]
	FontStyle  CssValue[FontStyle]
	LineHeight CssValue[LengthUnit]

	TextAlign       CssValue[TextAlign]
	WhiteSpace      CssValue[WhiteSpace]
	WordBreak       CssValue[WordBreak]
	TextTransform   CssValue[TextTransform]
	TextDecoration  CssValue[TextDecoration]
	LetterSpacing   CssValue[LengthUnit]
	LineClamp       CssValue[LineClamp]
	TextOverflow    CssValue[TextOverflow]
}

// FontStyle mirrors `font-style: normal | italic`.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// ComputedStyle is the fully-resolved, per-node style after cascade
// (spec.md §4.2): every field is a concrete value, never a CssValue.
type ComputedStyle struct {
	Display  Display
	Position Position

	Width, Height       LengthUnit
	MinWidth, MinHeight LengthUnit
	MaxWidth, MaxHeight LengthUnit
	AspectRatio         AspectRatio

	Margin  Sides[LengthUnit]
	Padding Sides[LengthUnit]
	Inset   Sides[LengthUnit]

	FlexDirection  FlexDirection
	FlexWrap       FlexWrapMode
	JustifyContent JustifyContent
	AlignItems     AlignItems
	FlexGrow       PercentageNumber
	FlexShrink     PercentageNumber
	FlexBasis      LengthUnit
	Gap            SpacePair[LengthUnit]

	GridTemplateColumns []GridLength
	GridTemplateRows    []GridLength
	GridAutoFlow        GridAutoFlow

	BackgroundColor  Color
	BackgroundLayers []BackgroundLayer

	Border       Sides[BorderSide]
	BorderRadius Corners

	Transform       TransformList
	TransformOrigin TransformOrigin

	Overflow Overflows
	ClipPath ClipPath
	Filter   Filter
	Opacity  PercentageNumber

	Color      Color
	FontSize   float64 // resolved pixels, computed eagerly per §4.2
	FontFamily []string
	FontWeight int
	FontStyle  FontStyle
	LineHeight LengthUnit

	TextAlign      TextAlign
	WhiteSpace     WhiteSpace
	WordBreak      WordBreak
	TextTransform  TextTransform
	TextDecoration TextDecoration
	LetterSpacing  LengthUnit
	LineClamp      LineClamp
	TextOverflow   TextOverflow
}

// IsInlineLevel reports whether this style makes its node inline-level for
// the purposes of anonymous-block segmentation (spec.md §4.3 step 2).
func (c *ComputedStyle) IsInlineLevel() bool {
	return c.Display == DisplayInline
}

// Viewport carries the render's fixed context: output dimensions, the root
// font size (for `rem`), and the configured Tailwind responsive breakpoints
// (spec.md §4.1 "Responsive prefixes... resolved against viewport width
// thresholds (configurable; defaults 640/768/1024/1280/1536 px)").
type Viewport struct {
	Width, Height  float64
	RootFontSizePx float64
	Breakpoints    Breakpoints
}

// Breakpoints holds the Tailwind responsive-prefix width thresholds.
type Breakpoints struct {
	SM, MD, LG, XL, XXL float64
}

// DefaultBreakpoints returns Tailwind's stock breakpoint widths.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{SM: 640, MD: 768, LG: 1024, XL: 1280, XXL: 1536}
}

// DefaultViewport returns a Viewport with a typical root font size and
// stock breakpoints, for callers that only want to override width/height.
func DefaultViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height, RootFontSizePx: 16, Breakpoints: DefaultBreakpoints()}
}

// InitialStyle returns the all-defaults ComputedStyle a root node cascades
// against (spec.md §9: "no DOM, no tag defaults — every node starts from
// css.Style{} zero value").
func InitialStyle() ComputedStyle {
	return ComputedStyle{
		Display:    DisplayBlock,
		Width:      AutoLength(),
		Height:     AutoLength(),
		MinWidth:   AutoLength(),
		MinHeight:  AutoLength(),
		MaxWidth:   AutoLength(),
		MaxHeight:  AutoLength(),
		FlexGrow:   PercentageNumber{Value: 0},
		FlexShrink: PercentageNumber{Value: 1},
		FlexBasis:  AutoLength(),
		Color:      Color{A: 255},
		FontSize:   16,
		FontFamily: []string{"sans-serif"},
		FontWeight: 400,
		LineHeight: AutoLength(),
		Border:     Uniform(BorderSide{Width: LengthUnit{Kind: LengthPx, Value: 3}, Style: BorderNone, Color: Color{A: 255}}),
		Opacity:    PercentageNumber{Value: 1},
		BackgroundColor: Transparent(),
		WhiteSpace:      NormalWhiteSpace(),
	}
}
