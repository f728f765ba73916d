package raster

import (
	"image/color"
	"math"

	"rasterkit/pkg/css"
)

// sampleStops maps t (a position along the gradient, not necessarily
// clamped to 0..1) to an interpolated color by walking stops in order and
// lerping between the pair that straddles t, clamping to the end colors
// outside the stop range (spec.md §4.1 "gradient stop interpolation").
func sampleStops(stops []css.GradientStop, t float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	toRGBA := func(c css.Color) color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }
	if t <= stops[0].Position {
		return toRGBA(stops[0].Color)
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return toRGBA(last.Color)
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Position {
			a, b := stops[i-1], stops[i]
			span := b.Position - a.Position
			frac := 0.0
			if span > 0 {
				frac = (t - a.Position) / span
			}
			return lerpColor(toRGBA(a.Color), toRGBA(b.Color), frac)
		}
	}
	return toRGBA(last.Color)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// SampleLinear samples a linear-gradient layer at local box coordinate
// (x, y) within a w x h box. The gradient axis runs through the box center
// at g.Angle (0deg = up, clockwise), matching linear-gradient()'s angle
// convention (spec.md §4.1).
func SampleLinear(g css.LinearGradient, w, h, x, y float64) color.RGBA {
	stops := css.DistributeStops(g.Stops)
	if len(stops) == 0 {
		return color.RGBA{}
	}
	theta := g.Angle.Radians()
	// direction vector for "0deg = up", rotating clockwise with increasing angle
	dx, dy := math.Sin(theta), -math.Cos(theta)
	// gradient line length covering the whole box, per CSS's projection rule
	half := math.Abs(w*dx)/2 + math.Abs(h*dy)/2
	if half <= 0 {
		half = 1
	}
	cx, cy := w/2, h/2
	proj := (x-cx)*dx + (y-cy)*dy
	t := 0.5 + proj/(2*half)
	return sampleStops(stops, t)
}

// SampleRadial samples a radial-gradient layer at local box coordinate
// (x, y) within a w x h box. A circle is sized to reach its farthest corner;
// an ellipse takes the farthest side on each axis as that axis's radius, so
// its farthest corner lies past t=1 (see DESIGN.md).
func SampleRadial(g css.RadialGradient, w, h, x, y float64) color.RGBA {
	stops := css.DistributeStops(g.Stops)
	if len(stops) == 0 {
		return color.RGBA{}
	}
	ctx := css.ResolveContext{PercentBasisPx: w}
	ctxH := css.ResolveContext{PercentBasisPx: h}
	cx := g.Position.X.Resolve(ctx)
	cy := g.Position.Y.Resolve(ctxH)

	corner := func(px, py float64) float64 {
		dx, dy := px-cx, py-cy
		return math.Hypot(dx, dy)
	}
	rx := math.Max(corner(0, 0), math.Max(corner(w, 0), math.Max(corner(0, h), corner(w, h))))
	ry := rx
	if g.Shape == css.RadialEllipse {
		// ellipse: each axis's radius is the distance to its farthest side
		rx = math.Max(math.Abs(cx), math.Abs(w-cx))
		ry = math.Max(math.Abs(cy), math.Abs(h-cy))
		if rx <= 0 {
			rx = 1
		}
		if ry <= 0 {
			ry = 1
		}
	}

	dx, dy := x-cx, y-cy
	var t float64
	if rx > 0 && ry > 0 {
		t = math.Hypot(dx/rx, dy/ry)
	}
	return sampleStops(stops, t)
}

// SampleConic samples a conic-gradient layer at local box coordinate
// (x, y) within a w x h box.
func SampleConic(g css.ConicGradient, w, h, x, y float64) color.RGBA {
	stops := css.DistributeStops(g.Stops)
	if len(stops) == 0 {
		return color.RGBA{}
	}
	ctx := css.ResolveContext{PercentBasisPx: w}
	ctxH := css.ResolveContext{PercentBasisPx: h}
	cx := g.Position.X.Resolve(ctx)
	cy := g.Position.Y.Resolve(ctxH)

	theta := math.Atan2(x-cx, -(y - cy)) // 0 = up, clockwise
	theta -= g.Angle.Radians()
	turn := theta / (2 * math.Pi)
	turn -= math.Floor(turn)
	return sampleStops(stops, turn)
}
