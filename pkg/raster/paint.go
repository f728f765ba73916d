package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"rasterkit/pkg/css"
	"rasterkit/pkg/images"
	"rasterkit/pkg/inline"
	"rasterkit/pkg/layout"
	"rasterkit/pkg/node"
	"rasterkit/pkg/text"
)

// Deps bundles the read-only collaborators a paint traversal needs beyond
// the render tree itself: the decoded image store and the font snapshot
// used to shape the same glyph runs layout measured against (spec.md §4.5,
// §5 "read-only during render").
type Deps struct {
	Images *images.Snapshot
	Fonts  *text.Snapshot
	Shaper inline.Shaper
}

// Paint rasterizes root onto a fresh canvas of size w x h (spec.md §4.5: the
// top-level depth-first traversal entry point).
func Paint(root *layout.RenderNode, w, h int, deps Deps) *Canvas {
	c := NewCanvas(w, h)
	paintNode(c, root, deps)
	return c
}

// paintNode implements one step of spec.md §4.5's traversal: early exit on
// opacity 0 / display none, transform composition around the node's
// transform-origin (skipping the subtree if the composed matrix is
// non-invertible), clip-path and blur as an offscreen post-effect pass, and
// otherwise backgrounds, borders, own content, and children directly onto c.
func paintNode(c *Canvas, rn *layout.RenderNode, deps Deps) {
	st := rn.Style
	if st == nil || st.Display == css.DisplayNone || st.Opacity.Value <= 0 {
		return
	}

	w, h := rn.Layout.Width, rn.Layout.Height

	wCtx := css.ResolveContext{FontSizePx: st.FontSize, RootFontSizePx: st.FontSize, PercentBasisPx: w}
	hCtx := wCtx
	hCtx.PercentBasisPx = h
	ox := st.TransformOrigin.X.Resolve(wCtx)
	oy := st.TransformOrigin.Y.Resolve(hCtx)

	t := css.Translation(rn.Layout.X, rn.Layout.Y)
	t = t.Multiply(css.Translation(ox, oy))
	t = t.Multiply(st.Transform.ComposeAffine(wCtx))
	t = t.Multiply(css.Translation(-ox, -oy))

	if !c.PushTransform(t) {
		return
	}
	defer c.PopTransform()

	c.PushOpacity(st.Opacity.Value)
	defer c.PopOpacity()

	if st.ClipPath.Kind != css.ClipPathNone || st.Filter.BlurPx > 0 {
		paintWithEffects(c, rn, deps, w, h)
		return
	}
	paintBoxContent(c, rn, deps, w, h)
}

// paintWithEffects renders rn's box content into a local offscreen canvas,
// applies clip-path masking and/or stack-blur to the result, then blits it
// onto c through the transform/opacity already pushed by the caller (spec.md
// §4.5 "capture this node's subtree into an offscreen, blur, then composite
// onto the parent canvas").
func paintWithEffects(c *Canvas, rn *layout.RenderNode, deps Deps, w, h float64) {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw <= 0 || ih <= 0 {
		return
	}
	off := NewCanvas(iw, ih)
	paintBoxContent(off, rn, deps, w, h)

	if rn.Style.ClipPath.Kind != css.ClipPathNone {
		mask, err := images.RasterizeClipShape(rn.Style.ClipPath.ToPathData(w, h), iw, ih)
		if err == nil {
			applyMask(off.Buf, mask)
		}
	}
	if rn.Style.Filter.BlurPx > 0 {
		StackBlur(off.Buf, BlurRadiusFromSigma(rn.Style.Filter.BlurPx))
	}

	b := off.Buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			col := off.Buf.RGBAAt(x, y)
			if col.A == 0 {
				continue
			}
			c.SetAffine(float64(x)+0.5, float64(y)+0.5, col)
		}
	}
}

func applyMask(buf *image.RGBA, mask *image.Alpha) {
	b := buf.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ma := mask.AlphaAt(x, y).A
			if ma == 255 {
				continue
			}
			p := buf.RGBAAt(x, y)
			p.A = uint8(uint32(p.A) * uint32(ma) / 255)
			buf.SetRGBA(x, y, p)
		}
	}
}

// paintBoxContent paints one node's background, border, own content, and
// children into c's current local coordinate frame (0,0)-(w,h), honoring
// overflow clipping around the children/content pass (spec.md §4.5
// "backgrounds ... borders ... push overflow clip ... content ... children
// ... pop overflow clip").
func paintBoxContent(c *Canvas, rn *layout.RenderNode, deps Deps, w, h float64) {
	st := rn.Style
	ctx := css.ResolveContext{FontSizePx: st.FontSize, RootFontSizePx: st.FontSize, PercentBasisPx: w}
	edges := boxEdges{
		BorderW: w,
		BorderH: h,
		Border:  resolveBorderWidths(st.Border, ctx, w),
		Padding: css.SidesLengthToPixels(st.Padding, ctx, w, h),
	}
	radii := resolveCornerRadii(st.BorderRadius, ctx, w, h)

	PaintBackground(c, st, edges, radii, deps.Images)
	PaintBorder(c, st.Border, edges.Border, w, h, radii)

	clip := st.Overflow.X == css.OverflowHidden || st.Overflow.Y == css.OverflowHidden
	if clip {
		cx, cy, cw, ch := edges.boxRect(css.BackgroundBoxPadding)
		c.PushClipRect(cx, cy, cw, ch)
	}

	drawContent(c, rn, deps, edges)
	for _, child := range rn.Children {
		paintNode(c, child, deps)
	}

	if clip {
		c.PopClip()
	}
}

// resolveBorderWidths resolves each side's border-width to pixels, treating
// a none/hidden style as a zero-width edge per CSS's border collapsing rule.
func resolveBorderWidths(sides css.Sides[css.BorderSide], ctx css.ResolveContext, widthBasis float64) css.Sides[float64] {
	ctx.PercentBasisPx = widthBasis
	resolve := func(s css.BorderSide) float64 {
		if s.Style == css.BorderNone || s.Style == css.BorderHidden {
			return 0
		}
		return s.Width.Resolve(ctx)
	}
	return css.Sides[float64]{
		Top:    resolve(sides.Top),
		Right:  resolve(sides.Right),
		Bottom: resolve(sides.Bottom),
		Left:   resolve(sides.Left),
	}
}

// drawContent paints a node's own paintable content: a replaced element's
// image/SVG, or the cached inline line boxes belonging to this node
// (spec.md §4.5 "paint each line's glyph runs ... draw the image").
func drawContent(c *Canvas, rn *layout.RenderNode, deps Deps, edges boxEdges) {
	cx, cy, cw, ch := edges.boxRect(css.BackgroundBoxContent)

	if rn.Source != nil {
		switch rn.Source.Kind {
		case node.KindImage:
			drawReplacedImage(c, deps, rn.Source.Src, cx, cy, cw, ch)
			return
		case node.KindSvg:
			drawReplacedSVG(c, rn.Source.SvgContent, cx, cy, cw, ch)
			return
		}
	}

	if len(rn.Lines) == 0 {
		return
	}
	drawLines(c, rn, deps, cx, cy, cw)
}

func drawReplacedImage(c *Canvas, deps Deps, src string, x, y, w, h float64) {
	if deps.Images == nil || w <= 0 || h <= 0 {
		return
	}
	img, ok := deps.Images.Lookup(src)
	if !ok {
		return
	}
	b := img.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	if sw <= 0 || sh <= 0 {
		return
	}
	for py := 0; py < int(h+0.999); py++ {
		for px := 0; px < int(w+0.999); px++ {
			sx := b.Min.X + int(float64(px)/w*sw)
			sy := b.Min.Y + int(float64(py)/h*sh)
			r, g, bc, a := img.At(sx, sy).RGBA()
			col := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bc >> 8), A: uint8(a >> 8)}
			if col.A == 0 {
				continue
			}
			c.SetAffine(x+float64(px)+0.5, y+float64(py)+0.5, col)
		}
	}
}

func drawReplacedSVG(c *Canvas, svgDoc string, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	rendered, err := images.RasterizeSVG([]byte(svgDoc), int(w+0.5), int(h+0.5))
	if err != nil {
		return
	}
	b := rendered.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			col := rendered.RGBAAt(px, py)
			if col.A == 0 {
				continue
			}
			c.SetAffine(x+float64(px-b.Min.X)+0.5, y+float64(py-b.Min.Y)+0.5, col)
		}
	}
}

// drawLines paints a node's cached broken lines left-to-right, top-to-bottom
// starting at content-box origin (cx, cy), honoring the line's text-align
// within the available width cw (spec.md §4.4 "text-align distributes the
// line's slack width").
func drawLines(c *Canvas, rn *layout.RenderNode, deps Deps, cx, cy, cw float64) {
	ellipsis := rn.Style != nil && rn.Style.TextOverflow == css.TextOverflowEllipsis
	y := cy
	for _, line := range rn.Lines {
		slack := cw - line.Width
		if slack < 0 {
			slack = 0
		}
		startX := cx
		switch rn.TextAlign {
		case css.TextAlignCenter:
			startX = cx + slack/2
		case css.TextAlignRight:
			startX = cx + slack
		}

		x := startX
		for _, item := range line.Items {
			switch item.Kind {
			case inline.ItemText:
				advance, _ := deps.Shaper.MeasureSpan(item.Text, item.Style)
				drawGlyphRun(c, deps, item, x, y, line.Height)
				x += advance
			case inline.ItemAtomic:
				if item.Node != nil {
					switch item.Node.Kind {
					case node.KindImage:
						drawReplacedImage(c, deps, item.Node.Src, x, y, item.Size.X, item.Size.Y)
					case node.KindSvg:
						drawReplacedSVG(c, item.Node.SvgContent, x, y, item.Size.X, item.Size.Y)
					}
				}
				x += item.Size.X
			}
		}
		if line.Truncated && ellipsis {
			drawEllipsis(c, deps, line, x, y)
		}
		y += line.Height
	}
}

// drawEllipsis draws the "…" glyph immediately after a truncated line's last
// rendered item, in that item's style (spec.md §8 concrete scenario 4:
// "last line ends with an ellipsis glyph if text-overflow: ellipsis").
func drawEllipsis(c *Canvas, deps Deps, line inline.Line, x, y float64) {
	if len(line.Items) == 0 {
		return
	}
	last := line.Items[len(line.Items)-1]
	style := last.Style
	drawGlyphRun(c, deps, inline.Item{Kind: inline.ItemText, Text: "…", Style: style}, x, y, line.Height)
}

// drawGlyphRun rasterizes one text item's glyphs through gg.Context (the
// same measurement backend pkg/text wraps, so painted glyph widths match
// what layout measured) into a transparent scratch image, then composites
// it onto c at (x, y) through the canvas's current transform.
func drawGlyphRun(c *Canvas, deps Deps, item inline.Item, x, y, lineHeight float64) {
	if item.Text == "" || deps.Fonts == nil {
		return
	}
	bold := item.Style.FontWeight >= 600
	italic := item.Style.FontStyle == css.FontStyleItalic
	face := deps.Fonts.FontFace(item.Style.FontFamily, item.Style.FontSize, bold, italic)
	w, h := face.MeasureString(item.Text)
	if w <= 0 || h <= 0 {
		return
	}
	iw, ih := int(math.Ceil(w))+2, int(math.Ceil(lineHeight))+2
	if iw <= 0 || ih <= 0 {
		return
	}
	dc := gg.NewContext(iw, ih)
	dc.SetFontFace(face.FontFace())
	col := item.Style.Color
	dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
	ascent := face.LineHeight() * 0.8
	dc.DrawString(item.Text, 0, ascent)
	img := dc.Image().(*image.RGBA)

	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			s := img.RGBAAt(px, py)
			if s.A == 0 {
				continue
			}
			c.SetAffine(x+float64(px-b.Min.X), y+float64(py-b.Min.Y), s)
		}
	}
}
