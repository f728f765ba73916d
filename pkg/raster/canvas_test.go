package raster

import (
	"image"
	"image/color"
	"testing"

	"rasterkit/pkg/css"
)

func TestNewCanvasStartsWithIdentityTransformAndFullOpacity(t *testing.T) {
	c := NewCanvas(10, 10)
	if c.Transform() != css.Identity() {
		t.Fatalf("expected identity transform on a fresh canvas, got %+v", c.Transform())
	}
	if c.Opacity() != 1 {
		t.Fatalf("expected opacity 1 on a fresh canvas, got %v", c.Opacity())
	}
}

func TestPushPopTransformRestoresPrevious(t *testing.T) {
	c := NewCanvas(10, 10)
	before := c.Transform()
	if !c.PushTransform(css.Translation(5, 5)) {
		t.Fatalf("expected PushTransform to succeed for an invertible translation")
	}
	if c.Transform() == before {
		t.Fatalf("expected the transform to change after PushTransform")
	}
	c.PopTransform()
	if c.Transform() != before {
		t.Fatalf("PopTransform did not restore the previous transform, got %+v", c.Transform())
	}
}

func TestPushTransformRejectsNonInvertible(t *testing.T) {
	c := NewCanvas(10, 10)
	before := c.Transform()
	if c.PushTransform(css.Scale(0, 1)) {
		t.Fatalf("expected PushTransform to reject a non-invertible (zero-scale) transform")
	}
	if c.Transform() != before {
		t.Fatalf("a rejected PushTransform must not modify the stack")
	}
}

func TestPushPopOpacityMultipliesAmbient(t *testing.T) {
	c := NewCanvas(10, 10)
	c.PushOpacity(0.5)
	c.PushOpacity(0.5)
	if got := c.Opacity(); got < 0.24 || got > 0.26 {
		t.Fatalf("expected cumulative opacity near 0.25, got %v", got)
	}
	c.PopOpacity()
	if got := c.Opacity(); got < 0.49 || got > 0.51 {
		t.Fatalf("expected opacity near 0.5 after one pop, got %v", got)
	}
}

func TestPushClipRectConfinesWrites(t *testing.T) {
	c := NewCanvas(10, 10)
	c.PushClipRect(2, 2, 4, 4)
	red := color.RGBA{R: 255, A: 255}

	c.Set(3, 3, red)
	if got := c.Buf.RGBAAt(3, 3); got.A == 0 {
		t.Fatalf("expected a write inside the clip rect to land")
	}
	c.Set(0, 0, red)
	if got := c.Buf.RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("expected a write outside the clip rect to be dropped, got %+v", got)
	}
	c.PopClip()
	c.Set(0, 0, red)
	if got := c.Buf.RGBAAt(0, 0); got.A == 0 {
		t.Fatalf("expected writes outside the old clip rect to land once popped")
	}
}

func TestPushClipMaskRestrictsToNonzeroAlpha(t *testing.T) {
	c := NewCanvas(6, 6)
	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	mask.SetAlpha(1, 1, color.Alpha{A: 255})

	c.PushClipMask(mask, 0, 0)
	red := color.RGBA{R: 255, A: 255}

	c.Set(1, 1, red)
	if got := c.Buf.RGBAAt(1, 1); got.A == 0 {
		t.Fatalf("expected a write where the mask is opaque to land")
	}
	c.Set(2, 2, red)
	if got := c.Buf.RGBAAt(2, 2); got.A != 0 {
		t.Fatalf("expected a write where the mask is transparent to be dropped, got %+v", got)
	}
}

func TestSourceOverOpaqueSrcReplacesDst(t *testing.T) {
	dst := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	src := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	got := SourceOver(dst, src, 1)
	if got != src {
		t.Fatalf("opaque source-over should fully replace dst, got %+v want %+v", got, src)
	}
}

func TestSourceOverZeroFactorLeavesDstUnchanged(t *testing.T) {
	dst := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	src := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := SourceOver(dst, src, 0); got != dst {
		t.Fatalf("zero-factor source-over should leave dst unchanged, got %+v", got)
	}
}

func TestSourceOverOntoTransparentDstWithPartialAlpha(t *testing.T) {
	dst := color.RGBA{}
	src := color.RGBA{R: 100, G: 150, B: 200, A: 128}
	got := SourceOver(dst, src, 1)
	if got.R != src.R || got.G != src.G || got.B != src.B {
		t.Fatalf("compositing onto a transparent dst should keep src's channels, got %+v", got)
	}
	if got.A != src.A {
		t.Fatalf("compositing onto a transparent dst should keep src's alpha, got A=%d want %d", got.A, src.A)
	}
}

func TestSetAffineHonorsCurrentTransform(t *testing.T) {
	c := NewCanvas(10, 10)
	c.PushTransform(css.Translation(3, 4))
	red := color.RGBA{R: 255, A: 255}
	c.SetAffine(1, 1, red)
	if got := c.Buf.RGBAAt(4, 5); got.A == 0 {
		t.Fatalf("expected SetAffine(1,1) under translate(3,4) to land at (4,5)")
	}
}
