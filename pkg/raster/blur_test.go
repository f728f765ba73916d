package raster

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestStackBlurOfUniformOpaqueImageEqualsOriginal(t *testing.T) {
	src := solidImage(20, 20, color.RGBA{R: 12, G: 200, B: 77, A: 255})
	StackBlur(src, 5)
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := src.RGBAAt(x, y)
			want := color.RGBA{R: 12, G: 200, B: 77, A: 255}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v (uniform opaque blur must be a no-op)", x, y, got, want)
			}
		}
	}
}

func TestStackBlurPreservesMeanColorOnRandomSolidImages(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		c := color.RGBA{
			R: uint8(rng.Intn(256)),
			G: uint8(rng.Intn(256)),
			B: uint8(rng.Intn(256)),
			A: 255,
		}
		img := solidImage(16, 16, c)
		StackBlur(img, 3)
		b := img.Bounds()
		var sumR, sumG, sumB, n int
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				p := img.RGBAAt(x, y)
				sumR += int(p.R)
				sumG += int(p.G)
				sumB += int(p.B)
				n++
			}
		}
		meanR, meanG, meanB := float64(sumR)/float64(n), float64(sumG)/float64(n), float64(sumB)/float64(n)
		if diff := meanR - float64(c.R); diff > 1 || diff < -1 {
			t.Fatalf("trial %d: mean R %v drifted too far from source %d", trial, meanR, c.R)
		}
		if diff := meanG - float64(c.G); diff > 1 || diff < -1 {
			t.Fatalf("trial %d: mean G %v drifted too far from source %d", trial, meanG, c.G)
		}
		if diff := meanB - float64(c.B); diff > 1 || diff < -1 {
			t.Fatalf("trial %d: mean B %v drifted too far from source %d", trial, meanB, c.B)
		}
	}
}

func TestStackBlurZeroRadiusIsNoOp(t *testing.T) {
	src := solidImage(4, 4, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	before := append([]uint8(nil), src.Pix...)
	StackBlur(src, 0)
	for i := range src.Pix {
		if src.Pix[i] != before[i] {
			t.Fatalf("StackBlur with radius 0 modified the buffer")
		}
	}
}

func TestStackBlurClampsExcessiveRadius(t *testing.T) {
	src := solidImage(8, 8, color.RGBA{R: 9, G: 9, B: 9, A: 255})
	StackBlur(src, 10000)
	got := src.RGBAAt(4, 4)
	want := color.RGBA{R: 9, G: 9, B: 9, A: 255}
	if got != want {
		t.Fatalf("clamped-radius blur of a uniform image changed its color: got %+v want %+v", got, want)
	}
}

func TestBlurRadiusFromSigmaFloorsAtOne(t *testing.T) {
	if r := BlurRadiusFromSigma(0); r != 1 {
		t.Fatalf("BlurRadiusFromSigma(0) = %d, want floor of 1", r)
	}
}

func TestBlurRadiusFromSigmaClampsToMax(t *testing.T) {
	if r := BlurRadiusFromSigma(1000); r != maxBlurRadius {
		t.Fatalf("BlurRadiusFromSigma(1000) = %d, want clamp to %d", r, maxBlurRadius)
	}
}
