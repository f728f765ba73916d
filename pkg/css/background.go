package css

import "strings"

// BackgroundImageKind selects which kind of paint a background layer uses
// (spec.md §4.1, §4.4: background layers can be an image, a gradient, or the
// engine's procedural noise source).
type BackgroundImageKind int

const (
	BackgroundImageNone BackgroundImageKind = iota
	BackgroundImageURL
	BackgroundImageLinearGradient
	BackgroundImageRadialGradient
	BackgroundImageConicGradient
	BackgroundImageNoise
)

// BackgroundImage is one layer's paint source.
type BackgroundImage struct {
	Kind            BackgroundImageKind
	URL             string
	LinearGradient  LinearGradient
	RadialGradient  RadialGradient
	ConicGradient   ConicGradient
	NoiseSeed       int64
	NoiseFrequency  float64
}

// BackgroundSizeMode selects how a layer's image is scaled into its
// background-position-area box.
type BackgroundSizeMode int

const (
	BackgroundSizeLengths BackgroundSizeMode = iota
	BackgroundSizeCover
	BackgroundSizeContain
)

// BackgroundSize is a single background-size value.
type BackgroundSize struct {
	Mode  BackgroundSizeMode
	Width, Height LengthUnit // meaningful only when Mode == BackgroundSizeLengths; auto is represented via LengthUnit.IsAuto
}

// BackgroundRepeatMode selects axis tiling behavior.
type BackgroundRepeatMode int

const (
	BackgroundRepeat BackgroundRepeatMode = iota
	BackgroundNoRepeat
	BackgroundRepeatX
	BackgroundRepeatY
	BackgroundRound
	BackgroundSpace
)

// BackgroundBox selects the border-box/padding-box/content-box reference
// used by background-origin and background-clip.
type BackgroundBox int

const (
	BackgroundBoxBorder BackgroundBox = iota
	BackgroundBoxPadding
	BackgroundBoxContent
)

// BackgroundLayer is one fully-resolved layer of a (possibly multi-layer,
// comma-separated) background shorthand.
type BackgroundLayer struct {
	Image    BackgroundImage
	Position SpacePair[LengthUnit]
	Size     BackgroundSize
	RepeatX  BackgroundRepeatMode
	RepeatY  BackgroundRepeatMode
	Origin   BackgroundBox
	Clip     BackgroundBox
}

func defaultBackgroundLayer() BackgroundLayer {
	center := LengthUnit{Kind: LengthPercent, Value: 0}
	return BackgroundLayer{
		Position: SpacePair[LengthUnit]{X: center, Y: center},
		Size:     BackgroundSize{Mode: BackgroundSizeLengths, Width: AutoLength(), Height: AutoLength()},
		RepeatX:  BackgroundRepeat,
		RepeatY:  BackgroundRepeat,
		Origin:   BackgroundBoxPadding,
		Clip:     BackgroundBoxBorder,
	}
}

// ParseBackgroundImage parses a single background-image layer's image
// component: none, url(...), a gradient function, or the engine's
// noise(<seed>, <frequency>) extension.
func ParseBackgroundImage(value string) (BackgroundImage, error) {
	value = strings.TrimSpace(value)
	if value == "none" || value == "" {
		return BackgroundImage{Kind: BackgroundImageNone}, nil
	}
	name, args, ok := splitFunction(value)
	if !ok {
		return BackgroundImage{}, &ParseError{Token: value, Msg: "expected none, url(), a gradient, or noise()"}
	}
	switch name {
	case "url":
		return BackgroundImage{Kind: BackgroundImageURL, URL: strings.Trim(strings.TrimSpace(args), `"'`)}, nil
	case "linear-gradient":
		g, err := ParseLinearGradient(args)
		if err != nil {
			return BackgroundImage{}, err
		}
		return BackgroundImage{Kind: BackgroundImageLinearGradient, LinearGradient: g}, nil
	case "radial-gradient":
		g, err := ParseRadialGradient(args)
		if err != nil {
			return BackgroundImage{}, err
		}
		return BackgroundImage{Kind: BackgroundImageRadialGradient, RadialGradient: g}, nil
	case "conic-gradient":
		g, err := ParseConicGradient(args)
		if err != nil {
			return BackgroundImage{}, err
		}
		return BackgroundImage{Kind: BackgroundImageConicGradient, ConicGradient: g}, nil
	case "noise":
		parts := splitTopLevelCommas(args)
		img := BackgroundImage{Kind: BackgroundImageNoise, NoiseSeed: 0, NoiseFrequency: 0.05}
		if len(parts) > 0 {
			if n, err := ParsePercentageNumber(strings.TrimSpace(parts[0])); err == nil {
				img.NoiseSeed = int64(n.Value)
			}
		}
		if len(parts) > 1 {
			if n, err := ParsePercentageNumber(strings.TrimSpace(parts[1])); err == nil {
				img.NoiseFrequency = n.Value
			}
		}
		return img, nil
	default:
		return BackgroundImage{}, &ParseError{Token: value, Msg: "unknown background-image function " + name}
	}
}

func splitFunction(value string) (name, args string, ok bool) {
	idx := strings.Index(value, "(")
	if idx < 0 || !strings.HasSuffix(value, ")") {
		return "", "", false
	}
	return strings.TrimSpace(value[:idx]), value[idx+1 : len(value)-1], true
}

// ParseBackgroundSize parses a single background-size value, e.g. "cover",
// "contain", "auto", "100px 50%".
func ParseBackgroundSize(value string) (BackgroundSize, error) {
	switch strings.TrimSpace(value) {
	case "cover":
		return BackgroundSize{Mode: BackgroundSizeCover}, nil
	case "contain":
		return BackgroundSize{Mode: BackgroundSizeContain}, nil
	}
	pair, err := ParseSpacePair(value, ParseLength)
	if err != nil {
		return BackgroundSize{}, err
	}
	return BackgroundSize{Mode: BackgroundSizeLengths, Width: pair.X, Height: pair.Y}, nil
}

func parseBackgroundRepeatToken(tok string) (BackgroundRepeatMode, error) {
	switch tok {
	case "repeat":
		return BackgroundRepeat, nil
	case "no-repeat":
		return BackgroundNoRepeat, nil
	case "round":
		return BackgroundRound, nil
	case "space":
		return BackgroundSpace, nil
	default:
		return 0, &ParseError{Token: tok, Msg: "unknown background-repeat keyword"}
	}
}

// ParseBackgroundRepeat parses a single background-repeat value, supporting
// the one-keyword shorthands (repeat-x/repeat-y) and the two-keyword
// per-axis form.
func ParseBackgroundRepeat(value string) (x, y BackgroundRepeatMode, err error) {
	switch strings.TrimSpace(value) {
	case "repeat-x":
		return BackgroundRepeat, BackgroundNoRepeat, nil
	case "repeat-y":
		return BackgroundNoRepeat, BackgroundRepeat, nil
	}
	fields := strings.Fields(value)
	switch len(fields) {
	case 1:
		m, err := parseBackgroundRepeatToken(fields[0])
		return m, m, err
	case 2:
		mx, err := parseBackgroundRepeatToken(fields[0])
		if err != nil {
			return 0, 0, err
		}
		my, err := parseBackgroundRepeatToken(fields[1])
		return mx, my, err
	default:
		return 0, 0, &ParseError{Token: value, Msg: "expected one or two background-repeat keywords"}
	}
}

// ParseBackgroundBox parses a background-origin/background-clip keyword.
func ParseBackgroundBox(value string) (BackgroundBox, error) {
	switch strings.TrimSpace(value) {
	case "border-box":
		return BackgroundBoxBorder, nil
	case "padding-box":
		return BackgroundBoxPadding, nil
	case "content-box":
		return BackgroundBoxContent, nil
	default:
		return 0, &ParseError{Token: value, Msg: "unknown background box keyword"}
	}
}

// SplitRepeatPairs separates a per-layer list of background-repeat x/y pairs
// into the independent x and y slices ParseBackgroundLayers expects.
func SplitRepeatPairs(pairs []SpacePair[BackgroundRepeatMode]) (x, y []BackgroundRepeatMode) {
	x = make([]BackgroundRepeatMode, len(pairs))
	y = make([]BackgroundRepeatMode, len(pairs))
	for i, p := range pairs {
		x[i] = p.X
		y[i] = p.Y
	}
	return x, y
}

// ParseBackgroundLayers parses the full (possibly multi-layer) background
// shorthand value list for one property (e.g. background-image split on
// top-level commas); each sub-property is parsed independently and the
// resulting per-property slices are zipped into layers, with a layer count
// mismatch resolved per CSS's rule of cycling the shorter lists.
func ParseBackgroundLayers(images []BackgroundImage, positions []SpacePair[LengthUnit], sizes []BackgroundSize, repeatX, repeatY []BackgroundRepeatMode, origins, clips []BackgroundBox) []BackgroundLayer {
	n := len(images)
	if n == 0 {
		return nil
	}
	layers := make([]BackgroundLayer, n)
	for i := range layers {
		layer := defaultBackgroundLayer()
		layer.Image = images[i]
		if len(positions) > 0 {
			layer.Position = positions[i%len(positions)]
		}
		if len(sizes) > 0 {
			layer.Size = sizes[i%len(sizes)]
		}
		if len(repeatX) > 0 {
			layer.RepeatX = repeatX[i%len(repeatX)]
		}
		if len(repeatY) > 0 {
			layer.RepeatY = repeatY[i%len(repeatY)]
		}
		if len(origins) > 0 {
			layer.Origin = origins[i%len(origins)]
		}
		if len(clips) > 0 {
			layer.Clip = clips[i%len(clips)]
		}
		layers[i] = layer
	}
	return layers
}
