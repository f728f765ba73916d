package node

import (
	"fmt"
	"strconv"
	"strings"

	"rasterkit/pkg/css"
)

// DecodeStyle parses a node's wire-format style map (property name → raw
// CSS-like string) into a css.Style, dispatching each known longhand to its
// typed parser via css.DecodeCssValue (spec.md §6: "a string which is
// parsed with the CSS parser"). An unknown property name or a value that
// does not parse stops decoding and is returned as an error naming the
// property; Node.UnmarshalJSON returns it, so the whole document fails to
// decode.
func DecodeStyle(raw map[string]string) (*css.Style, error) {
	style := &css.Style{}
	for name, value := range raw {
		if err := decodeProperty(style, name, value); err != nil {
			return nil, fmt.Errorf("style property %q: %w", name, err)
		}
	}
	return style, nil
}

func decodeProperty(s *css.Style, name, value string) error {
	switch name {
	case "display":
		v, err := css.DecodeCssValue(value, parseDisplay)
		if err != nil {
			return err
		}
		s.Display = v
	case "position":
		v, err := css.DecodeCssValue(value, parsePosition)
		if err != nil {
			return err
		}
		s.Position = v
	case "width":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.Width = v
	case "height":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.Height = v
	case "min-width":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.MinWidth = v
	case "min-height":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.MinHeight = v
	case "max-width":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.MaxWidth = v
	case "max-height":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.MaxHeight = v
	case "aspect-ratio":
		v, err := css.DecodeCssValue(value, css.ParseAspectRatio)
		if err != nil {
			return err
		}
		s.AspectRatio = v
	case "margin":
		v, err := css.DecodeCssValue(value, parseSidesLength)
		if err != nil {
			return err
		}
		s.Margin = v
	case "padding":
		v, err := css.DecodeCssValue(value, parseSidesLength)
		if err != nil {
			return err
		}
		s.Padding = v
	case "inset":
		v, err := css.DecodeCssValue(value, parseSidesLength)
		if err != nil {
			return err
		}
		s.Inset = v
	case "flex-direction":
		v, err := css.DecodeCssValue(value, parseFlexDirection)
		if err != nil {
			return err
		}
		s.FlexDirection = v
	case "flex-wrap":
		v, err := css.DecodeCssValue(value, parseFlexWrap)
		if err != nil {
			return err
		}
		s.FlexWrap = v
	case "justify-content":
		v, err := css.DecodeCssValue(value, parseJustifyContent)
		if err != nil {
			return err
		}
		s.JustifyContent = v
	case "align-items":
		v, err := css.DecodeCssValue(value, parseAlignItems)
		if err != nil {
			return err
		}
		s.AlignItems = v
	case "flex-grow":
		v, err := css.DecodeCssValue(value, css.ParsePercentageNumber)
		if err != nil {
			return err
		}
		s.FlexGrow = v
	case "flex-shrink":
		v, err := css.DecodeCssValue(value, css.ParsePercentageNumber)
		if err != nil {
			return err
		}
		s.FlexShrink = v
	case "flex-basis":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.FlexBasis = v
	case "gap":
		v, err := css.DecodeCssValue(value, func(s string) (css.SpacePair[css.LengthUnit], error) {
			return css.ParseSpacePair(s, css.ParseLength)
		})
		if err != nil {
			return err
		}
		s.Gap = v
	case "grid-template-columns":
		v, err := css.DecodeCssValue(value, css.ParseGridTrackList)
		if err != nil {
			return err
		}
		s.GridTemplateColumns = v
	case "grid-template-rows":
		v, err := css.DecodeCssValue(value, css.ParseGridTrackList)
		if err != nil {
			return err
		}
		s.GridTemplateRows = v
	case "grid-auto-flow":
		v, err := css.DecodeCssValue(value, css.ParseGridAutoFlow)
		if err != nil {
			return err
		}
		s.GridAutoFlow = v
	case "background-color":
		v, err := css.DecodeCssValue(value, parseColorValue)
		if err != nil {
			return err
		}
		s.BackgroundColor = v
	case "background-image":
		v, err := css.DecodeCssValue(value, parseBackgroundImageList)
		if err != nil {
			return err
		}
		s.BackgroundImage = v
	case "background-position":
		v, err := css.DecodeCssValue(value, parseBackgroundPositionList)
		if err != nil {
			return err
		}
		s.BackgroundPosition = v
	case "background-size":
		v, err := css.DecodeCssValue(value, parseBackgroundSizeList)
		if err != nil {
			return err
		}
		s.BackgroundSize = v
	case "background-repeat":
		v, err := css.DecodeCssValue(value, parseBackgroundRepeatList)
		if err != nil {
			return err
		}
		s.BackgroundRepeat = v
	case "background-origin":
		v, err := css.DecodeCssValue(value, parseBackgroundOriginList)
		if err != nil {
			return err
		}
		s.BackgroundOrigin = v
	case "background-clip":
		v, err := css.DecodeCssValue(value, parseBackgroundClipList)
		if err != nil {
			return err
		}
		s.BackgroundClip = v
	case "border":
		v, err := css.DecodeCssValue(value, func(s string) (css.Sides[css.BorderSide], error) {
			side, err := css.ParseBorderShorthand(s)
			return css.Uniform(side), err
		})
		if err != nil {
			return err
		}
		s.Border = v
	case "border-radius":
		v, err := css.DecodeCssValue(value, parseUniformCorners)
		if err != nil {
			return err
		}
		s.BorderRadius = v
	case "transform":
		v, err := css.DecodeCssValue(value, css.ParseTransformList)
		if err != nil {
			return err
		}
		s.Transform = v
	case "transform-origin":
		v, err := css.DecodeCssValue(value, css.ParseTransformOrigin)
		if err != nil {
			return err
		}
		s.TransformOrigin = v
	case "overflow":
		v, err := css.DecodeCssValue(value, css.ParseOverflowShorthand)
		if err != nil {
			return err
		}
		s.Overflow = v
	case "clip-path":
		v, err := css.DecodeCssValue(value, css.ParseClipPath)
		if err != nil {
			return err
		}
		s.ClipPath = v
	case "filter":
		v, err := css.DecodeCssValue(value, css.ParseFilter)
		if err != nil {
			return err
		}
		s.Filter = v
	case "opacity":
		v, err := css.DecodeCssValue(value, css.ParsePercentageNumber)
		if err != nil {
			return err
		}
		s.Opacity = v
	case "color":
		v, err := css.DecodeCssValue(value, parseColorValue)
		if err != nil {
			return err
		}
		s.Color = v
	case "font-size":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.FontSize = v
	case "font-family":
		v, err := css.DecodeCssValue(value, parseFontFamily)
		if err != nil {
			return err
		}
		s.FontFamily = v
	case "font-weight":
		v, err := css.DecodeCssValue(value, parseFontWeight)
		if err != nil {
			return err
		}
		s.FontWeight = v
	case "font-style":
		v, err := css.DecodeCssValue(value, parseFontStyle)
		if err != nil {
			return err
		}
		s.FontStyle = v
	case "line-height":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.LineHeight = v
	case "text-align":
		v, err := css.DecodeCssValue(value, css.ParseTextAlign)
		if err != nil {
			return err
		}
		s.TextAlign = v
	case "white-space":
		v, err := css.DecodeCssValue(value, css.ParseWhiteSpace)
		if err != nil {
			return err
		}
		s.WhiteSpace = v
	case "word-break":
		v, err := css.DecodeCssValue(value, css.ParseWordBreak)
		if err != nil {
			return err
		}
		s.WordBreak = v
	case "text-transform":
		v, err := css.DecodeCssValue(value, css.ParseTextTransform)
		if err != nil {
			return err
		}
		s.TextTransform = v
	case "text-decoration-line":
		v, err := css.DecodeCssValue(value, parseTextDecoration)
		if err != nil {
			return err
		}
		s.TextDecoration = v
	case "letter-spacing":
		v, err := css.DecodeCssValue(value, css.ParseLength)
		if err != nil {
			return err
		}
		s.LetterSpacing = v
	case "line-clamp":
		v, err := css.DecodeCssValue(value, css.ParseLineClamp)
		if err != nil {
			return err
		}
		s.LineClamp = v
	case "text-overflow":
		v, err := css.DecodeCssValue(value, css.ParseTextOverflow)
		if err != nil {
			return err
		}
		s.TextOverflow = v
	default:
		return fmt.Errorf("unknown property")
	}
	return nil
}

func parseSidesLength(v string) (css.Sides[css.LengthUnit], error) {
	return css.ParseSides(v, css.ParseLength)
}

func parseColorValue(v string) (css.Color, error) {
	col, _, err := css.ParseColor(v)
	return col, err
}

func parseDisplay(v string) (css.Display, error) {
	switch strings.TrimSpace(v) {
	case "block":
		return css.DisplayBlock, nil
	case "inline":
		return css.DisplayInline, nil
	case "flex":
		return css.DisplayFlex, nil
	case "grid":
		return css.DisplayGrid, nil
	case "none":
		return css.DisplayNone, nil
	default:
		return 0, fmt.Errorf("unknown display keyword %q", v)
	}
}

func parsePosition(v string) (css.Position, error) {
	switch strings.TrimSpace(v) {
	case "static":
		return css.PositionStatic, nil
	case "relative":
		return css.PositionRelative, nil
	case "absolute":
		return css.PositionAbsolute, nil
	default:
		return 0, fmt.Errorf("unknown position keyword %q", v)
	}
}

func parseFlexDirection(v string) (css.FlexDirection, error) {
	switch strings.TrimSpace(v) {
	case "row":
		return css.FlexRow, nil
	case "row-reverse":
		return css.FlexRowReverse, nil
	case "column":
		return css.FlexColumn, nil
	case "column-reverse":
		return css.FlexColumnReverse, nil
	default:
		return 0, fmt.Errorf("unknown flex-direction keyword %q", v)
	}
}

func parseFlexWrap(v string) (css.FlexWrapMode, error) {
	switch strings.TrimSpace(v) {
	case "nowrap":
		return css.FlexNoWrap, nil
	case "wrap":
		return css.FlexWrap, nil
	case "wrap-reverse":
		return css.FlexWrapReverse, nil
	default:
		return 0, fmt.Errorf("unknown flex-wrap keyword %q", v)
	}
}

func parseJustifyContent(v string) (css.JustifyContent, error) {
	switch strings.TrimSpace(v) {
	case "flex-start", "start":
		return css.JustifyStart, nil
	case "flex-end", "end":
		return css.JustifyEnd, nil
	case "center":
		return css.JustifyCenter, nil
	case "space-between":
		return css.JustifySpaceBetween, nil
	case "space-around":
		return css.JustifySpaceAround, nil
	case "space-evenly":
		return css.JustifySpaceEvenly, nil
	default:
		return 0, fmt.Errorf("unknown justify-content keyword %q", v)
	}
}

func parseAlignItems(v string) (css.AlignItems, error) {
	switch strings.TrimSpace(v) {
	case "stretch":
		return css.AlignStretch, nil
	case "flex-start", "start":
		return css.AlignStart, nil
	case "flex-end", "end":
		return css.AlignEnd, nil
	case "center":
		return css.AlignCenter, nil
	case "baseline":
		return css.AlignBaseline, nil
	default:
		return 0, fmt.Errorf("unknown align-items keyword %q", v)
	}
}

func parseBackgroundImageList(v string) ([]css.BackgroundImage, error) {
	parts := strings.Split(v, ",")
	out := make([]css.BackgroundImage, 0, len(parts))
	for _, p := range parts {
		img, err := css.ParseBackgroundImage(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

func parseBackgroundPositionList(v string) ([]css.SpacePair[css.LengthUnit], error) {
	parts := strings.Split(v, ",")
	out := make([]css.SpacePair[css.LengthUnit], 0, len(parts))
	for _, p := range parts {
		pair, err := css.ParseSpacePair(strings.TrimSpace(p), css.ParseLength)
		if err != nil {
			return nil, err
		}
		out = append(out, pair)
	}
	return out, nil
}

func parseBackgroundSizeList(v string) ([]css.BackgroundSize, error) {
	parts := strings.Split(v, ",")
	out := make([]css.BackgroundSize, 0, len(parts))
	for _, p := range parts {
		size, err := css.ParseBackgroundSize(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, size)
	}
	return out, nil
}

func parseBackgroundRepeatList(v string) ([]css.SpacePair[css.BackgroundRepeatMode], error) {
	parts := strings.Split(v, ",")
	out := make([]css.SpacePair[css.BackgroundRepeatMode], 0, len(parts))
	for _, p := range parts {
		x, y, err := css.ParseBackgroundRepeat(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, css.SpacePair[css.BackgroundRepeatMode]{X: x, Y: y})
	}
	return out, nil
}

func parseBackgroundOriginList(v string) ([]css.BackgroundBox, error) {
	return parseBackgroundBoxList(v)
}

func parseBackgroundClipList(v string) ([]css.BackgroundBox, error) {
	return parseBackgroundBoxList(v)
}

func parseBackgroundBoxList(v string) ([]css.BackgroundBox, error) {
	parts := strings.Split(v, ",")
	out := make([]css.BackgroundBox, 0, len(parts))
	for _, p := range parts {
		box, err := css.ParseBackgroundBox(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, box)
	}
	return out, nil
}

func parseUniformCorners(v string) (css.Corners, error) {
	c, err := css.ParseCornerRadius(v)
	if err != nil {
		return css.Corners{}, err
	}
	return css.Corners{TopLeft: c, TopRight: c, BottomRight: c, BottomLeft: c}, nil
}

func parseFontFamily(v string) ([]string, error) {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), `"'`))
	}
	return out, nil
}

func parseFontWeight(v string) (int, error) {
	switch strings.TrimSpace(v) {
	case "normal":
		return 400, nil
	case "bold":
		return 700, nil
	default:
		return strconv.Atoi(strings.TrimSpace(v))
	}
}

func parseFontStyle(v string) (css.FontStyle, error) {
	switch strings.TrimSpace(v) {
	case "normal":
		return css.FontStyleNormal, nil
	case "italic", "oblique":
		return css.FontStyleItalic, nil
	default:
		return 0, fmt.Errorf("unknown font-style keyword %q", v)
	}
}

func parseTextDecoration(v string) (css.TextDecoration, error) {
	line, err := css.ParseTextDecorationLine(v)
	if err != nil {
		return css.TextDecoration{}, err
	}
	return css.TextDecoration{Lines: line, Style: css.TextDecorationStyleSolid}, nil
}
