package css

import "strings"

// GradientStop is one color stop in a linear/radial/conic gradient. Position
// is optional (spec.md §4.1: "evenly distribute stops missing an explicit
// offset"); HasPosition tells DistributeStops whether to fill it in.
type GradientStop struct {
	Color       Color
	Position    float64 // 0..1 fraction along the gradient axis
	HasPosition bool
}

// LinearGradient renders a straight-line color ramp. Angle is measured
// clockwise from "to top" the way the original linear-gradient() angle
// argument is (0deg == up), already normalized to that convention by
// ParseLinearGradient.
type LinearGradient struct {
	Angle Angle
	Stops []GradientStop
}

// RadialShape selects the radial-gradient() shape keyword.
type RadialShape int

const (
	RadialEllipse RadialShape = iota
	RadialCircle
)

// RadialGradient renders a gradient radiating from a center point.
type RadialGradient struct {
	Shape    RadialShape
	Position SpacePair[LengthUnit]
	Stops    []GradientStop
}

// ConicGradient renders a gradient sweeping around a center point.
type ConicGradient struct {
	Angle    Angle
	Position SpacePair[LengthUnit]
	Stops    []GradientStop
}

// DistributeStops fills in the Position of any stop missing an explicit
// offset by evenly spacing it between its nearest positioned neighbors
// (defaulting the first stop to 0 and the last to 1 when unpositioned),
// mirroring the CSS Images spec's stop-distribution algorithm.
func DistributeStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return stops
	}
	out := make([]GradientStop, len(stops))
	copy(out, stops)

	if !out[0].HasPosition {
		out[0].Position = 0
		out[0].HasPosition = true
	}
	if !out[len(out)-1].HasPosition {
		out[len(out)-1].Position = 1
		out[len(out)-1].HasPosition = true
	}

	// Monotonic clamp: a positioned stop can never specify a position
	// lower than any preceding stop.
	for i := 1; i < len(out); i++ {
		if out[i].HasPosition && out[i].Position < out[i-1].Position {
			out[i].Position = out[i-1].Position
		}
	}

	i := 0
	for i < len(out) {
		if out[i].HasPosition {
			i++
			continue
		}
		start := i - 1
		j := i
		for j < len(out) && !out[j].HasPosition {
			j++
		}
		// out[start] and out[j] are positioned; out[start+1..j-1] are not.
		span := out[j].Position - out[start].Position
		count := j - start
		for k := start + 1; k < j; k++ {
			frac := float64(k-start) / float64(count)
			out[k].Position = out[start].Position + span*frac
			out[k].HasPosition = true
		}
		i = j
	}
	return out
}

// ParseGradientStops parses a comma-separated stop list, where each stop is
// "<color>" or "<color> <offset>" (an offset being a length or percentage).
func ParseGradientStops(parts []string) ([]GradientStop, error) {
	stops := make([]GradientStop, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		col, _, err := ParseColor(fields[0])
		if err != nil {
			return nil, err
		}
		stop := GradientStop{Color: col}
		if len(fields) > 1 {
			length, err := ParseLength(fields[1])
			if err != nil {
				return nil, err
			}
			if length.IsPercent() {
				stop.Position = length.Value / 100.0
			} else {
				stop.Position = length.Value
			}
			stop.HasPosition = true
		}
		stops = append(stops, stop)
	}
	return DistributeStops(stops), nil
}

// splitTopLevelCommas splits a function argument list on commas that are not
// nested inside parentheses, so `rgb(0,0,0) 10%, ...` splits into stops, not
// channels.
func splitTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// ParseLinearGradient parses the argument list of a linear-gradient()
// function (without the enclosing "linear-gradient(" / ")"). The angle
// defaults to "to bottom" (180deg) per CSS's default when omitted.
func ParseLinearGradient(args string) (LinearGradient, error) {
	parts := splitTopLevelCommas(args)
	if len(parts) == 0 {
		return LinearGradient{}, &ParseError{Token: args, Msg: "empty gradient"}
	}
	angle := Angle{Degrees: 180}
	stopParts := parts
	first := strings.TrimSpace(parts[0])
	if strings.HasPrefix(first, "to ") {
		angle = sideKeywordToAngle(first)
		stopParts = parts[1:]
	} else if a, err := ParseAngle(first); err == nil {
		angle = a
		stopParts = parts[1:]
	}
	stops, err := ParseGradientStops(stopParts)
	if err != nil {
		return LinearGradient{}, err
	}
	return LinearGradient{Angle: angle, Stops: stops}, nil
}

func sideKeywordToAngle(keyword string) Angle {
	switch strings.TrimSpace(keyword) {
	case "to top":
		return Angle{Degrees: 0}
	case "to right":
		return Angle{Degrees: 90}
	case "to bottom":
		return Angle{Degrees: 180}
	case "to left":
		return Angle{Degrees: 270}
	case "to top right", "to right top":
		return Angle{Degrees: 45}
	case "to bottom right", "to right bottom":
		return Angle{Degrees: 135}
	case "to bottom left", "to left bottom":
		return Angle{Degrees: 225}
	case "to top left", "to left top":
		return Angle{Degrees: 315}
	default:
		return Angle{Degrees: 180}
	}
}

// ParseRadialGradient parses the argument list of a radial-gradient()
// function. Only the shape keyword and "at <position>" clause are
// recognized from the configuration prefix; explicit size keywords
// (closest-side, farthest-corner, ...) are accepted but resolved to
// farthest-corner sizing by the rasterizer regardless, since spec.md §4.1
// only requires correct stop coloring, not every CSS sizing keyword.
func ParseRadialGradient(args string) (RadialGradient, error) {
	parts := splitTopLevelCommas(args)
	if len(parts) == 0 {
		return RadialGradient{}, &ParseError{Token: args, Msg: "empty gradient"}
	}
	shape := RadialEllipse
	pos := SpacePair[LengthUnit]{X: LengthUnit{Kind: LengthPercent, Value: 50}, Y: LengthUnit{Kind: LengthPercent, Value: 50}}
	stopParts := parts
	first := strings.TrimSpace(parts[0])
	if looksLikeRadialConfig(first) {
		if strings.Contains(first, "circle") {
			shape = RadialCircle
		}
		if idx := strings.Index(first, "at "); idx >= 0 {
			atClause := strings.TrimSpace(first[idx+3:])
			if p, err := ParsePosition(atClause); err == nil {
				pos = p
			}
		}
		stopParts = parts[1:]
	}
	stops, err := ParseGradientStops(stopParts)
	if err != nil {
		return RadialGradient{}, err
	}
	return RadialGradient{Shape: shape, Position: pos, Stops: stops}, nil
}

func looksLikeRadialConfig(s string) bool {
	return strings.Contains(s, "circle") || strings.Contains(s, "ellipse") || strings.Contains(s, "at ") ||
		strings.Contains(s, "closest-") || strings.Contains(s, "farthest-")
}

// ParseConicGradient parses the argument list of a conic-gradient() function.
func ParseConicGradient(args string) (ConicGradient, error) {
	parts := splitTopLevelCommas(args)
	if len(parts) == 0 {
		return ConicGradient{}, &ParseError{Token: args, Msg: "empty gradient"}
	}
	angle := Angle{Degrees: 0}
	pos := SpacePair[LengthUnit]{X: LengthUnit{Kind: LengthPercent, Value: 50}, Y: LengthUnit{Kind: LengthPercent, Value: 50}}
	stopParts := parts
	first := strings.TrimSpace(parts[0])
	if strings.HasPrefix(first, "from ") || strings.Contains(first, "at ") {
		if idx := strings.Index(first, "from "); idx >= 0 {
			rest := first[idx+5:]
			atIdx := strings.Index(rest, "at ")
			angleStr := rest
			if atIdx >= 0 {
				angleStr = rest[:atIdx]
			}
			if a, err := ParseAngle(strings.TrimSpace(angleStr)); err == nil {
				angle = a
			}
		}
		if idx := strings.Index(first, "at "); idx >= 0 {
			if p, err := ParsePosition(strings.TrimSpace(first[idx+3:])); err == nil {
				pos = p
			}
		}
		stopParts = parts[1:]
	}
	stops, err := ParseGradientStops(stopParts)
	if err != nil {
		return ConicGradient{}, err
	}
	return ConicGradient{Angle: angle, Position: pos, Stops: stops}, nil
}

// ParsePosition parses a CSS <position> value used by background-position
// and the "at" clause of radial/conic gradients: one or two keyword/length
// tokens, defaulting a missing Y to center.
func ParsePosition(value string) (SpacePair[LengthUnit], error) {
	fields := strings.Fields(value)
	resolve := func(tok string, axisCenter LengthUnit) (LengthUnit, bool) {
		switch tok {
		case "left", "top":
			return LengthUnit{Kind: LengthPercent, Value: 0}, true
		case "right", "bottom":
			return LengthUnit{Kind: LengthPercent, Value: 100}, true
		case "center":
			return axisCenter, true
		default:
			return LengthUnit{}, false
		}
	}
	center := LengthUnit{Kind: LengthPercent, Value: 50}
	switch len(fields) {
	case 0:
		return SpacePair[LengthUnit]{X: center, Y: center}, nil
	case 1:
		if v, ok := resolve(fields[0], center); ok {
			return SpacePair[LengthUnit]{X: v, Y: center}, nil
		}
		l, err := ParseLength(fields[0])
		if err != nil {
			return SpacePair[LengthUnit]{}, err
		}
		return SpacePair[LengthUnit]{X: l, Y: center}, nil
	default:
		x, xok := resolve(fields[0], center)
		if !xok {
			xl, err := ParseLength(fields[0])
			if err != nil {
				return SpacePair[LengthUnit]{}, err
			}
			x = xl
		}
		y, yok := resolve(fields[1], center)
		if !yok {
			yl, err := ParseLength(fields[1])
			if err != nil {
				return SpacePair[LengthUnit]{}, err
			}
			y = yl
		}
		return SpacePair[LengthUnit]{X: x, Y: y}, nil
	}
}
