package raster

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"rasterkit/pkg/css"
	"rasterkit/pkg/images"
)

// boxEdges is the resolved pixel widths of the four box-model rings around
// a border-box-sized node, used to locate the padding/content boxes that
// background-origin and background-clip reference.
type boxEdges struct {
	BorderW, BorderH float64 // full border-box size
	Border           css.Sides[float64]
	Padding          css.Sides[float64]
}

// boxRect returns the local-space rectangle for one of the three reference
// boxes a background layer's origin/clip property may select.
func (e boxEdges) boxRect(which css.BackgroundBox) (x, y, w, h float64) {
	switch which {
	case css.BackgroundBoxContent:
		x = e.Border.Left + e.Padding.Left
		y = e.Border.Top + e.Padding.Top
		w = e.BorderW - e.Border.Left - e.Border.Right - e.Padding.Left - e.Padding.Right
		h = e.BorderH - e.Border.Top - e.Border.Bottom - e.Padding.Top - e.Padding.Bottom
	case css.BackgroundBoxPadding:
		x = e.Border.Left
		y = e.Border.Top
		w = e.BorderW - e.Border.Left - e.Border.Right
		h = e.BorderH - e.Border.Top - e.Border.Bottom
	default: // border-box
		x, y, w, h = 0, 0, e.BorderW, e.BorderH
	}
	return
}

// PaintBackground fills a node's border-box with its background-color and
// then its background-image layers, bottom layer (the last declared one)
// first, clipped to the box's rounded-corner outline (spec.md §4.5
// "backgrounds, bottom layer to top").
func PaintBackground(c *Canvas, st *css.ComputedStyle, edges boxEdges, radii cornerRadii, imgs *images.Snapshot) {
	if st.BackgroundColor.A > 0 {
		fillRoundedRect(c, edges.BorderW, edges.BorderH, radii, func(x, y float64) color.RGBA {
			return color.RGBA{R: st.BackgroundColor.R, G: st.BackgroundColor.G, B: st.BackgroundColor.B, A: st.BackgroundColor.A}
		})
	}
	for i := len(st.BackgroundLayers) - 1; i >= 0; i-- {
		paintBackgroundLayer(c, st.BackgroundLayers[i], edges, radii, imgs)
	}
}

// paintBackgroundLayer positions and, per RepeatX/RepeatY, tiles one
// background layer within its origin box, then composites it clipped to
// both the rounded border-box outline and the layer's clip box (spec.md
// §4.5; CSS background-origin/background-size/background-repeat).
func paintBackgroundLayer(c *Canvas, layer css.BackgroundLayer, edges boxEdges, radii cornerRadii, imgs *images.Snapshot) {
	img := layer.Image
	if img.Kind == css.BackgroundImageNone {
		return
	}
	ox, oy, ow, oh := edges.boxRect(layer.Origin)
	if ow <= 0 || oh <= 0 {
		return
	}
	cx, cy, cw, ch := edges.boxRect(layer.Clip)

	nw, nh := layerNaturalSize(img, ow, oh, imgs)
	if nw <= 0 || nh <= 0 {
		return
	}
	tw, th := resolveTileSize(layer.Size, ow, oh, nw, nh)
	if tw <= 0 || th <= 0 {
		return
	}
	sampler := layerSampler(img, tw, th, imgs)
	if sampler == nil {
		return
	}

	posCtx := css.ResolveContext{PercentBasisPx: ow - tw}
	posCtxH := css.ResolveContext{PercentBasisPx: oh - th}
	px := layer.Position.X.Resolve(posCtx)
	py := layer.Position.Y.Resolve(posCtxH)

	repeatX := layer.RepeatX != css.BackgroundNoRepeat
	repeatY := layer.RepeatY != css.BackgroundNoRepeat
	// Phase the tile origin into the first repeat at-or-before the origin
	// box's top-left so a single modulo walk covers the whole box.
	if repeatX {
		px = math.Mod(px, tw)
		if px > 0 {
			px -= tw
		}
	}
	if repeatY {
		py = math.Mod(py, th)
		if py > 0 {
			py -= th
		}
	}

	fillRoundedRect(c, edges.BorderW, edges.BorderH, radii, func(x, y float64) color.RGBA {
		if x < cx || y < cy || x >= cx+cw || y >= cy+ch {
			return color.RGBA{}
		}
		lx, ly := x-ox, y-oy
		if lx < 0 || ly < 0 || lx >= ow || ly >= oh {
			return color.RGBA{}
		}
		tx, ty := lx-px, ly-py
		if repeatX {
			tx = math.Mod(tx, tw)
		} else if tx < 0 || tx >= tw {
			return color.RGBA{}
		}
		if repeatY {
			ty = math.Mod(ty, th)
		} else if ty < 0 || ty >= th {
			return color.RGBA{}
		}
		return sampler(tx, ty)
	})
}

// layerNaturalSize returns a layer's unscaled intrinsic size: a URL image's
// pixel dimensions, or the origin box itself for procedural sources
// (gradients, noise) which have no natural size of their own.
func layerNaturalSize(img css.BackgroundImage, ow, oh float64, imgs *images.Snapshot) (nw, nh float64) {
	if img.Kind == css.BackgroundImageURL {
		src, ok := imgs.Lookup(img.URL)
		if !ok {
			return 0, 0
		}
		b := src.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	return ow, oh
}

// resolveTileSize applies background-size against an origin box of ow x oh
// and a source's natural size nw x nh.
func resolveTileSize(size css.BackgroundSize, ow, oh, nw, nh float64) (tw, th float64) {
	switch size.Mode {
	case css.BackgroundSizeCover:
		scale := math.Max(ow/nw, oh/nh)
		return nw * scale, nh * scale
	case css.BackgroundSizeContain:
		scale := math.Min(ow/nw, oh/nh)
		return nw * scale, nh * scale
	default:
		wAuto, hAuto := size.Width.IsAuto(), size.Height.IsAuto()
		switch {
		case wAuto && hAuto:
			return nw, nh
		case wAuto:
			th = size.Height.Resolve(css.ResolveContext{PercentBasisPx: oh})
			return th * (nw / nh), th
		case hAuto:
			tw = size.Width.Resolve(css.ResolveContext{PercentBasisPx: ow})
			return tw, tw * (nh / nw)
		default:
			return size.Width.Resolve(css.ResolveContext{PercentBasisPx: ow}), size.Height.Resolve(css.ResolveContext{PercentBasisPx: oh})
		}
	}
}

// layerSampler returns a function mapping a local coordinate within the
// layer's positioning box to a color, or nil if the layer's source
// couldn't be resolved.
func layerSampler(img css.BackgroundImage, w, h float64, imgs *images.Snapshot) func(x, y float64) color.RGBA {
	switch img.Kind {
	case css.BackgroundImageLinearGradient:
		return func(x, y float64) color.RGBA { return SampleLinear(img.LinearGradient, w, h, x, y) }
	case css.BackgroundImageRadialGradient:
		return func(x, y float64) color.RGBA { return SampleRadial(img.RadialGradient, w, h, x, y) }
	case css.BackgroundImageConicGradient:
		return func(x, y float64) color.RGBA { return SampleConic(img.ConicGradient, w, h, x, y) }
	case css.BackgroundImageNoise:
		return func(x, y float64) color.RGBA { return SampleNoise(img.NoiseSeed, img.NoiseFrequency, x, y) }
	case css.BackgroundImageURL:
		src, ok := imgs.Lookup(img.URL)
		if !ok {
			return nil
		}
		b := src.Bounds()
		if b.Dx() <= 0 || b.Dy() <= 0 {
			return nil
		}
		// w, h here is the already-resolved tile size (resolveTileSize), so
		// the source stretches to fill it exactly rather than letterboxing.
		// The resize itself goes through x/image/draw's CatmullRom scaler
		// rather than a hand-rolled nearest-neighbor walk, matching the
		// quality a background-size stretch needs for both up- and
		// down-scaling.
		iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
		if iw <= 0 || ih <= 0 {
			return nil
		}
		scaled := image.NewRGBA(image.Rect(0, 0, iw, ih))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, stddraw.Src, nil)
		return func(x, y float64) color.RGBA {
			if x < 0 || y < 0 || x >= w || y >= h {
				return color.RGBA{}
			}
			sx, sy := int(x), int(y)
			if sx >= iw {
				sx = iw - 1
			}
			if sy >= ih {
				sy = ih - 1
			}
			return scaled.RGBAAt(sx, sy)
		}
	default:
		return nil
	}
}

// cornerRadii is the four resolved corner radii (in local pixels) for one
// node's border-box, used by both background fill and border stroke to
// agree on the same rounded outline.
type cornerRadii struct {
	TL, TR, BR, BL [2]float64 // [rx, ry] per corner
}

func resolveCornerRadii(c css.Corners, ctx css.ResolveContext, w, h float64) cornerRadii {
	wCtx, hCtx := ctx, ctx
	wCtx.PercentBasisPx, hCtx.PercentBasisPx = w, h
	r := func(corner css.Corner) [2]float64 {
		return [2]float64{corner.RX.Resolve(wCtx), corner.RY.Resolve(hCtx)}
	}
	return cornerRadii{
		TL: r(c.TopLeft),
		TR: r(c.TopRight),
		BR: r(c.BottomRight),
		BL: r(c.BottomLeft),
	}
}

// insideRoundedRect reports whether local point (x,y) lies within a w x h
// rounded rect whose four corners carry independent radii.
func insideRoundedRect(x, y, w, h float64, radii cornerRadii) bool {
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	test := func(cx, cy, rx, ry float64, quadX, quadY float64) bool {
		if rx <= 0 || ry <= 0 {
			return true
		}
		dx, dy := (x-cx)*quadX, (y-cy)*quadY
		if dx < 0 || dy < 0 {
			return true
		}
		return (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) <= 1
	}
	if x < radii.TL[0] && y < radii.TL[1] {
		return test(radii.TL[0], radii.TL[1], radii.TL[0], radii.TL[1], -1, -1)
	}
	if x > w-radii.TR[0] && y < radii.TR[1] {
		return test(w-radii.TR[0], radii.TR[1], radii.TR[0], radii.TR[1], 1, -1)
	}
	if x > w-radii.BR[0] && y > h-radii.BR[1] {
		return test(w-radii.BR[0], h-radii.BR[1], radii.BR[0], radii.BR[1], 1, 1)
	}
	if x < radii.BL[0] && y > h-radii.BL[1] {
		return test(radii.BL[0], h-radii.BL[1], radii.BL[0], radii.BL[1], -1, 1)
	}
	return true
}

// fillRoundedRect walks every local pixel of a w x h box clipped to its
// rounded outline, invoking sample for the color to composite there.
func fillRoundedRect(c *Canvas, w, h float64, radii cornerRadii, sample func(x, y float64) color.RGBA) {
	maxX, maxY := int(math.Ceil(w)), int(math.Ceil(h))
	for py := 0; py < maxY; py++ {
		for px := 0; px < maxX; px++ {
			lx, ly := float64(px)+0.5, float64(py)+0.5
			if !insideRoundedRect(lx, ly, w, h, radii) {
				continue
			}
			col := sample(lx, ly)
			if col.A == 0 {
				continue
			}
			c.SetAffine(lx, ly, col)
		}
	}
}
