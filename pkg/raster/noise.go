package raster

import (
	"image/color"
	"math"
)

// valueNoise2D is a deterministic hash-based value-noise lattice, seeded so
// the same (seed, frequency) always paints the same texture (spec.md §4.1
// "noise() background-image extension").
func valueNoise2D(seed int64, x, y float64) float64 {
	lattice := func(ix, iy int64) float64 {
		h := uint64(ix)*374761393 + uint64(iy)*668265263 + uint64(seed)*2246822519
		h = (h ^ (h >> 13)) * 1274126177
		h ^= h >> 16
		return float64(h%1000) / 1000.0
	}
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := x-x0, y-y0
	ix0, iy0 := int64(x0), int64(y0)

	smooth := func(t float64) float64 { return t * t * (3 - 2*t) }
	sx, sy := smooth(fx), smooth(fy)

	n00 := lattice(ix0, iy0)
	n10 := lattice(ix0+1, iy0)
	n01 := lattice(ix0, iy0+1)
	n11 := lattice(ix0+1, iy0+1)

	nx0 := n00 + (n10-n00)*sx
	nx1 := n01 + (n11-n01)*sx
	return nx0 + (nx1-nx0)*sy
}

// fbm sums a handful of octaves of valueNoise2D for a richer texture than a
// single lattice pass.
func fbm(seed int64, x, y float64) float64 {
	sum, amp, freq, norm := 0.0, 0.5, 1.0, 0.0
	for o := 0; o < 4; o++ {
		sum += valueNoise2D(seed+int64(o)*997, x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// SampleNoise renders the engine's procedural noise() background source at
// local box coordinate (x, y): a grayscale fBm field modulated by frequency,
// fully opaque.
func SampleNoise(seed int64, frequency, x, y float64) color.RGBA {
	if frequency <= 0 {
		frequency = 0.05
	}
	v := fbm(seed, x*frequency, y*frequency)
	g := uint8(clamp01(v) * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}
