package raster

import (
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// blurBandCount picks how many row/column bands to fan the horizontal and
// vertical stack-blur passes across, one goroutine per band (spec.md §5
// "opt-in data-parallel worker pool"). n is the number of independent lines
// in the pass (rows for the horizontal pass, columns for the vertical one).
func blurBandCount(n int) int {
	bands := runtime.NumCPU()
	if bands > n {
		bands = n
	}
	if bands < 1 {
		bands = 1
	}
	return bands
}

// maxBlurRadius clamps filter: blur(<length>) to a sane kernel size
// (spec.md §4.5 "radius is clamped to 254").
const maxBlurRadius = 254

// stackBlurDivisor maps a kernel radius to the triangular weight total
// ((radius+1)^2) that the stack blur divides each running sum by.
func stackBlurDivisor(radius int) uint32 {
	return uint32((radius + 1) * (radius + 1))
}

// BlurRadiusFromSigma converts a Gaussian-style blur(<length>) argument to
// the effective stack-blur kernel radius (spec.md §4.5: "round(3σ) with a
// floor of 1").
func BlurRadiusFromSigma(sigma float64) int {
	r := int(sigma*3 + 0.5)
	if r < 1 {
		r = 1
	}
	if r > maxBlurRadius {
		r = maxBlurRadius
	}
	return r
}

// StackBlur applies a two-pass (horizontal then vertical) stack blur to img
// in place, working in premultiplied alpha so transparent neighbors don't
// darken opaque edges (spec.md §4.5, §9 glossary "premultiplied alpha").
func StackBlur(img *image.RGBA, radius int) {
	if radius <= 0 {
		return
	}
	if radius > maxBlurRadius {
		radius = maxBlurRadius
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	type px struct{ r, g, b, a uint32 } // premultiplied, 0..255 scale

	buf := make([]px, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			a := uint32(c.A)
			buf[y*w+x] = px{
				r: uint32(c.R) * a / 255,
				g: uint32(c.G) * a / 255,
				b: uint32(c.B) * a / 255,
				a: a,
			}
		}
	}

	div := stackBlurDivisor(radius)
	blurLine := func(get func(i int) px, set func(i int, p px), n int) {
		ring := make([]px, 2*radius+1)
		var sumR, sumG, sumB, sumA uint64
		for i := -radius; i <= radius; i++ {
			idx := clampIdx(i, n)
			p := get(idx)
			weight := uint64(radius + 1 - abs(i))
			sumR += uint64(p.r) * weight
			sumG += uint64(p.g) * weight
			sumB += uint64(p.b) * weight
			sumA += uint64(p.a) * weight
			ring[i+radius] = p
		}
		inIdx, outIdx := radius+1, 0
		for i := 0; i < n; i++ {
			set(i, px{
				r: uint32(sumR / uint64(div)),
				g: uint32(sumG / uint64(div)),
				b: uint32(sumB / uint64(div)),
				a: uint32(sumA / uint64(div)),
			})

			outPx := ring[outIdx%len(ring)]
			nextIdx := clampIdx(i+radius+1, n)
			inPx := get(nextIdx)
			ring[inIdx%len(ring)] = inPx

			sumR += uint64(inPx.r) - uint64(outPx.r)
			sumG += uint64(inPx.g) - uint64(outPx.g)
			sumB += uint64(inPx.b) - uint64(outPx.b)
			sumA += uint64(inPx.a) - uint64(outPx.a)

			inIdx++
			outIdx++
		}
	}

	tmp := make([]px, w*h)

	hBands := blurBandCount(h)
	var hGroup errgroup.Group
	rowsPerBand := (h + hBands - 1) / hBands
	for band := 0; band < hBands; band++ {
		y0 := band * rowsPerBand
		y1 := y0 + rowsPerBand
		if y1 > h {
			y1 = h
		}
		if y0 >= y1 {
			continue
		}
		hGroup.Go(func() error {
			for y := y0; y < y1; y++ {
				blurLine(
					func(i int) px { return buf[y*w+i] },
					func(i int, p px) { tmp[y*w+i] = p },
					w,
				)
			}
			return nil
		})
	}
	hGroup.Wait()

	vBands := blurBandCount(w)
	var vGroup errgroup.Group
	colsPerBand := (w + vBands - 1) / vBands
	for band := 0; band < vBands; band++ {
		x0 := band * colsPerBand
		x1 := x0 + colsPerBand
		if x1 > w {
			x1 = w
		}
		if x0 >= x1 {
			continue
		}
		vGroup.Go(func() error {
			for x := x0; x < x1; x++ {
				blurLine(
					func(i int) px { return tmp[i*w+x] },
					func(i int, p px) { buf[i*w+x] = p },
					h,
				)
			}
			return nil
		})
	}
	vGroup.Wait()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := buf[y*w+x]
			var r, g, bch uint8
			if p.a > 0 {
				r = uint8(clampU32(p.r * 255 / p.a))
				g = uint8(clampU32(p.g * 255 / p.a))
				bch = uint8(clampU32(p.b * 255 / p.a))
			}
			img.SetRGBA(b.Min.X+x, b.Min.Y+y, color.RGBA{R: r, G: g, B: bch, A: uint8(p.a)})
		}
	}
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

func clampU32(v uint32) uint32 {
	if v > 255 {
		return 255
	}
	return v
}

