// Package raster implements the rasterizer described in spec.md §4.5: a
// depth-first painter over a layout.RenderNode tree that composes affine
// transforms, clip masks, and backgrounds/borders/text/images onto an RGBA8
// canvas, with a stack-blur post-effect. Canvas mirrors the teacher's
// gg.Context-backed renderer (pkg/render/render.go) but replaces its direct
// canvas delegation with an explicit constraint stack so writes can be
// tested against an arbitrary mask, not just a clip rectangle.
package raster

import (
	"image"
	"image/color"

	"rasterkit/pkg/css"
)

// Constraint is one entry of the canvas's clip stack: a destination-space
// rectangle plus the transform in effect when it was pushed (so membership
// tests can map a destination pixel back into the rect's local space) and
// an optional alpha mask further restricting writes within it (spec.md
// §4.5 "Canvas... stack of Constraint{from, to, inverse_transform, mask}").
type Constraint struct {
	Rect      image.Rectangle // destination-space bounding rect, used as a fast reject
	Inverse   css.Affine      // maps destination coords back to the rect's local space
	LocalSize image.Point     // the rect's width/height in local space, for mask/bounds tests
	Mask      *image.Alpha    // optional; nil means "rect only"
}

// Canvas owns a straight-alpha RGBA8 buffer and the stacks a paint
// traversal pushes and pops as it descends the render tree (spec.md §4.5).
type Canvas struct {
	Buf *image.RGBA

	transforms  []css.Affine
	constraints []Constraint
	opacity     []float64 // cumulative ambient opacity multiplier stack
}

// NewCanvas allocates a transparent canvas of the given pixel size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Buf:        image.NewRGBA(image.Rect(0, 0, w, h)),
		transforms: []css.Affine{css.Identity()},
		opacity:    []float64{1},
	}
}

// Transform returns the cumulative affine in effect.
func (c *Canvas) Transform() css.Affine {
	return c.transforms[len(c.transforms)-1]
}

// Opacity returns the cumulative ambient opacity in effect.
func (c *Canvas) Opacity() float64 {
	return c.opacity[len(c.opacity)-1]
}

// PushTransform composes t onto the current transform and pushes the
// result, returning false without modifying the stack if the composed
// transform is non-invertible (spec.md §4.5 "if T' is non-invertible, skip
// subtree").
func (c *Canvas) PushTransform(t css.Affine) bool {
	composed := c.Transform().Multiply(t)
	if !composed.Invertible() {
		return false
	}
	c.transforms = append(c.transforms, composed)
	return true
}

// PopTransform removes the most recently pushed transform.
func (c *Canvas) PopTransform() {
	c.transforms = c.transforms[:len(c.transforms)-1]
}

// PushOpacity multiplies the ambient opacity by a and pushes the result.
func (c *Canvas) PushOpacity(a float64) {
	c.opacity = append(c.opacity, c.Opacity()*a)
}

// PopOpacity removes the most recently pushed opacity multiplier.
func (c *Canvas) PopOpacity() {
	c.opacity = c.opacity[:len(c.opacity)-1]
}

// PushClipRect restricts subsequent writes to the given content-box rect in
// the current local coordinate space (spec.md §4.5 "push a clip rectangle
// ... onto the canvas's constraint stack").
func (c *Canvas) PushClipRect(x, y, w, h float64) {
	inv, _ := c.Transform().Invert()
	x0, y0 := c.Transform().Apply(x, y)
	x1, y1 := c.Transform().Apply(x+w, y+h)
	rect := boundingRect(x0, y0, x1, y1)
	c.constraints = append(c.constraints, Constraint{
		Rect:      rect.Intersect(c.Buf.Bounds()),
		Inverse:   inv,
		LocalSize: image.Point{X: int(w + 0.5), Y: int(h + 0.5)},
	})
}

// PushClipMask restricts writes to where mask's alpha is nonzero, with mask
// placed at destination-space origin (ox, oy) under the current transform
// (spec.md §4.5 clip-path offscreen pass).
func (c *Canvas) PushClipMask(mask *image.Alpha, ox, oy float64) {
	inv, _ := c.Transform().Invert()
	b := mask.Bounds()
	x0, y0 := c.Transform().Apply(ox, oy)
	x1, y1 := c.Transform().Apply(ox+float64(b.Dx()), oy+float64(b.Dy()))
	rect := boundingRect(x0, y0, x1, y1)
	c.constraints = append(c.constraints, Constraint{
		Rect:      rect.Intersect(c.Buf.Bounds()),
		Inverse:   inv,
		LocalSize: image.Point{X: b.Dx(), Y: b.Dy()},
		Mask:      mask,
	})
}

// PopClip removes the most recently pushed constraint.
func (c *Canvas) PopClip() {
	c.constraints = c.constraints[:len(c.constraints)-1]
}

func boundingRect(x0, y0, x1, y1 float64) image.Rectangle {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return image.Rect(int(x0), int(y0), int(x1+0.999), int(y1+0.999))
}

// allowed reports whether destination pixel (x,y) may be written: it must
// lie within every active constraint's rect and, where a constraint carries
// a mask, the mask's alpha there must be nonzero.
func (c *Canvas) allowed(x, y int) bool {
	for _, cons := range c.constraints {
		if !(image.Point{X: x, Y: y}.In(cons.Rect)) {
			return false
		}
		if cons.Mask != nil {
			lx, ly := cons.Inverse.Apply(float64(x)+0.5, float64(y)+0.5)
			ix, iy := int(lx), int(ly)
			if ix < 0 || iy < 0 || ix >= cons.LocalSize.X || iy >= cons.LocalSize.Y {
				return false
			}
			if cons.Mask.AlphaAt(ix, iy).A == 0 {
				return false
			}
		}
	}
	return true
}

// Set blends src onto the canvas at destination pixel (x,y) using
// source-over with straight alpha, scaled by the ambient opacity, subject
// to every active constraint (spec.md §4.5 "Blending: source-over with
// straight alpha and ambient opacity multiplication").
func (c *Canvas) Set(x, y int, src color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(c.Buf.Bounds())) {
		return
	}
	if !c.allowed(x, y) {
		return
	}
	alpha := float64(src.A) / 255.0 * c.Opacity()
	if alpha <= 0 {
		return
	}
	dst := c.Buf.RGBAAt(x, y)
	out := SourceOver(dst, src, alpha)
	c.Buf.SetRGBA(x, y, out)
}

// SetAffine transforms (x,y) by the canvas's current transform and writes
// through Set, the entry point paint.go uses for every content-box write.
func (c *Canvas) SetAffine(x, y float64, src color.RGBA) {
	dx, dy := c.Transform().Apply(x, y)
	c.Set(int(dx), int(dy), src)
}

// SourceOver composites src over dst with straight alpha, src's alpha
// additionally scaled by factor (used to fold in ambient opacity).
func SourceOver(dst, src color.RGBA, factor float64) color.RGBA {
	sa := float64(src.A) / 255.0 * factor
	if sa <= 0 {
		return dst
	}
	if sa >= 1 && float64(dst.A) == 0 {
		return color.RGBA{src.R, src.G, src.B, uint8(sa*255 + 0.5)}
	}
	da := float64(dst.A) / 255.0
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return color.RGBA{}
	}
	blend := func(s, d uint8) uint8 {
		sf := float64(s) / 255.0 * sa
		df := float64(d) / 255.0 * da * (1 - sa)
		return uint8(clamp01((sf+df)/outA) * 255)
	}
	return color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(clamp01(outA) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
