package raster

import (
	"image/color"
	"sort"

	"rasterkit/pkg/css"
)

// PaintBorder strokes a node's four border edges within its w x h
// border-box, drawing lower-priority edges first so a higher-priority
// style wins at shared corner seams (spec.md §4.1 border-style priority:
// "hidden beats double beats solid beats dashed beats the rest").
func PaintBorder(c *Canvas, sides css.Sides[css.BorderSide], widths css.Sides[float64], w, h float64, radii cornerRadii) {
	type edge struct {
		name  string
		side  css.BorderSide
		width float64
	}
	edges := []edge{
		{"top", sides.Top, widths.Top},
		{"right", sides.Right, widths.Right},
		{"bottom", sides.Bottom, widths.Bottom},
		{"left", sides.Left, widths.Left},
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].side.Style.Priority() < edges[j].side.Style.Priority()
	})

	for _, e := range edges {
		if e.side.Style == css.BorderNone || e.side.Style == css.BorderHidden || e.width <= 0 {
			continue
		}
		col := color.RGBA{R: e.side.Color.R, G: e.side.Color.G, B: e.side.Color.B, A: e.side.Color.A}
		paintEdge(c, e.name, e.width, w, h, radii, col)
	}
}

// paintEdge fills the ring-shaped region between the border-box outline and
// the padding-box outline for one side, clipped to that side's triangular
// wedge of the box so adjacent edges meet at a 45-degree miter.
func paintEdge(c *Canvas, name string, width, w, h float64, radii cornerRadii, col color.RGBA) {
	inTopWedge := func(x, y float64) bool { return y <= x*h/w && y <= (w-x)*h/w }
	inBottomWedge := func(x, y float64) bool { return y >= x*h/w && y >= (w-x)*h/w }
	inLeftWedge := func(x, y float64) bool { return y >= x*h/w && y <= (w-x)*h/w }
	inRightWedge := func(x, y float64) bool { return y <= x*h/w && y >= (w-x)*h/w }

	var inWedge func(x, y float64) bool
	var inBand func(x, y float64) bool
	switch name {
	case "top":
		inWedge = inTopWedge
		inBand = func(x, y float64) bool { return y < width }
	case "bottom":
		inWedge = inBottomWedge
		inBand = func(x, y float64) bool { return y > h-width }
	case "left":
		inWedge = inLeftWedge
		inBand = func(x, y float64) bool { return x < width }
	default:
		inWedge = inRightWedge
		inBand = func(x, y float64) bool { return x > w-width }
	}

	for py := 0; py < int(h+0.999); py++ {
		for px := 0; px < int(w+0.999); px++ {
			x, y := float64(px)+0.5, float64(py)+0.5
			if !insideRoundedRect(x, y, w, h, radii) {
				continue
			}
			if !inWedge(x, y) || !inBand(x, y) {
				continue
			}
			c.SetAffine(x, y, col)
		}
	}
}
