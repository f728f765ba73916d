package css

import (
	"fmt"
	"strings"
)

// ClipPathKind selects the clip-path basic shape (spec.md §4.5).
type ClipPathKind int

const (
	ClipPathNone ClipPathKind = iota
	ClipPathCircle
	ClipPathEllipse
	ClipPathInset
	ClipPathPolygon
)

// ClipPath is a parsed clip-path value. ToPathData renders it to an SVG path
// "d" string in the box's local pixel space for RasterizeClipShape.
type ClipPath struct {
	Kind     ClipPathKind
	Radius   LengthUnit        // circle()
	RadiusX  LengthUnit        // ellipse()
	RadiusY  LengthUnit        // ellipse()
	Position SpacePair[LengthUnit]
	Inset    Sides[LengthUnit] // inset()
	Corners  Corners           // inset() round radii
	Points   []SpacePair[LengthUnit]
}

// ParseClipPath parses a single clip-path basic-shape function.
func ParseClipPath(value string) (ClipPath, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return ClipPath{Kind: ClipPathNone}, nil
	}
	name, args, ok := splitFunction(value)
	if !ok {
		return ClipPath{}, &ParseError{Token: value, Msg: "expected a clip-path shape function"}
	}
	switch name {
	case "circle":
		radius, posArgs := splitShapeArgsAt(args)
		pos := SpacePair[LengthUnit]{X: LengthUnit{Kind: LengthPercent, Value: 50}, Y: LengthUnit{Kind: LengthPercent, Value: 50}}
		if posArgs != "" {
			p, err := ParsePosition(posArgs)
			if err != nil {
				return ClipPath{}, err
			}
			pos = p
		}
		r, err := ParseLength(strings.TrimSpace(radius))
		if err != nil {
			return ClipPath{}, err
		}
		return ClipPath{Kind: ClipPathCircle, Radius: r, Position: pos}, nil
	case "ellipse":
		radii, posArgs := splitShapeArgsAt(args)
		fields := strings.Fields(radii)
		if len(fields) != 2 {
			return ClipPath{}, &ParseError{Token: args, Msg: "ellipse() requires two radii"}
		}
		rx, err := ParseLength(fields[0])
		if err != nil {
			return ClipPath{}, err
		}
		ry, err := ParseLength(fields[1])
		if err != nil {
			return ClipPath{}, err
		}
		pos := SpacePair[LengthUnit]{X: LengthUnit{Kind: LengthPercent, Value: 50}, Y: LengthUnit{Kind: LengthPercent, Value: 50}}
		if posArgs != "" {
			p, err := ParsePosition(posArgs)
			if err != nil {
				return ClipPath{}, err
			}
			pos = p
		}
		return ClipPath{Kind: ClipPathEllipse, RadiusX: rx, RadiusY: ry, Position: pos}, nil
	case "inset":
		roundIdx := strings.Index(args, "round")
		insetArgs := args
		var roundArgs string
		if roundIdx >= 0 {
			insetArgs = args[:roundIdx]
			roundArgs = strings.TrimSpace(args[roundIdx+len("round"):])
		}
		sides, err := ParseSides(strings.TrimSpace(insetArgs), ParseLength)
		if err != nil {
			return ClipPath{}, err
		}
		cp := ClipPath{Kind: ClipPathInset, Inset: sides}
		if roundArgs != "" {
			corner, err := ParseCornerRadius(strings.Fields(roundArgs)[0])
			if err != nil {
				return ClipPath{}, err
			}
			cp.Corners = Corners{TopLeft: corner, TopRight: corner, BottomRight: corner, BottomLeft: corner}
		}
		return cp, nil
	case "polygon":
		parts := splitTopLevelCommas(args)
		points := make([]SpacePair[LengthUnit], 0, len(parts))
		for _, p := range parts {
			pair, err := ParseSpacePair(strings.TrimSpace(p), ParseLength)
			if err != nil {
				return ClipPath{}, err
			}
			points = append(points, pair)
		}
		return ClipPath{Kind: ClipPathPolygon, Points: points}, nil
	default:
		return ClipPath{}, &ParseError{Token: value, Msg: "unknown clip-path shape " + name}
	}
}

func splitShapeArgsAt(args string) (before, at string) {
	idx := strings.Index(args, " at ")
	if idx < 0 {
		return strings.TrimSpace(args), ""
	}
	return strings.TrimSpace(args[:idx]), strings.TrimSpace(args[idx+4:])
}

// ToPathData renders the shape to an SVG path "d" string sized to a wxh box,
// for feeding into the image-store's SVG-based clip mask rasterizer.
func (c ClipPath) ToPathData(w, h float64) string {
	ctx := ResolveContext{PercentBasisPx: w}
	ctxH := ResolveContext{PercentBasisPx: h}
	switch c.Kind {
	case ClipPathCircle:
		cx := c.Position.X.Resolve(ctx)
		cy := c.Position.Y.Resolve(ctxH)
		r := c.Radius.Resolve(ResolveContext{PercentBasisPx: diag(w, h)})
		return circlePath(cx, cy, r)
	case ClipPathEllipse:
		cx := c.Position.X.Resolve(ctx)
		cy := c.Position.Y.Resolve(ctxH)
		rx := c.RadiusX.Resolve(ctx)
		ry := c.RadiusY.Resolve(ctxH)
		return ellipsePath(cx, cy, rx, ry)
	case ClipPathInset:
		sides := SidesLengthToPixels(c.Inset, ResolveContext{}, w, h)
		x0, y0 := sides.Left, sides.Top
		x1, y1 := w-sides.Right, h-sides.Bottom
		return fmt.Sprintf("M%g,%g L%g,%g L%g,%g L%g,%g Z", x0, y0, x1, y0, x1, y1, x0, y1)
	case ClipPathPolygon:
		var b strings.Builder
		for i, p := range c.Points {
			x := p.X.Resolve(ctx)
			y := p.Y.Resolve(ctxH)
			if i == 0 {
				fmt.Fprintf(&b, "M%g,%g ", x, y)
			} else {
				fmt.Fprintf(&b, "L%g,%g ", x, y)
			}
		}
		b.WriteString("Z")
		return b.String()
	default:
		return fmt.Sprintf("M0,0 L%g,0 L%g,%g L0,%g Z", w, w, h, h)
	}
}

func diag(w, h float64) float64 {
	return (w + h) / 2
}

func circlePath(cx, cy, r float64) string {
	return fmt.Sprintf("M%g,%g m-%g,0 a%g,%g 0 1,0 %g,0 a%g,%g 0 1,0 -%g,0 Z", cx, cy, r, r, r, 2*r, r, r, 2*r)
}

func ellipsePath(cx, cy, rx, ry float64) string {
	return fmt.Sprintf("M%g,%g m-%g,0 a%g,%g 0 1,0 %g,0 a%g,%g 0 1,0 -%g,0 Z", cx, cy, rx, rx, ry, 2*rx, rx, ry, 2*rx)
}
