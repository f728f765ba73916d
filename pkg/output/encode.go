// Package output encodes a rasterized frame into the still-image formats
// spec.md §6 exposes at the engine boundary (grounded on original_source/
// takumi/src/rendering/write.rs's write_image).
package output

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"rasterkit/pkg/anim"
	"rasterkit/pkg/errs"
)

// Format selects an output container.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
	FormatRaw
)

// DefaultJPEGQuality matches write.rs's still-image default.
const DefaultJPEGQuality = 75

// Encode rasterizes img into the requested container. quality only affects
// FormatJPEG; pass <= 0 to use DefaultJPEGQuality.
func Encode(img *image.RGBA, format Format, quality int) ([]byte, error) {
	switch format {
	case FormatPNG:
		return encodePNG(img)
	case FormatJPEG:
		return encodeJPEG(img, quality)
	case FormatWebP:
		return anim.EncodeWebP(img), nil
	case FormatRaw:
		return encodeRaw(img), nil
	default:
		return nil, &errs.EncodeError{Format: "unknown", Err: errUnknownFormat}
	}
}

var errUnknownFormat = &formatError{"unsupported output format"}

type formatError struct{ msg string }

func (e *formatError) Error() string { return e.msg }

// hasAnyAlpha reports whether any pixel's alpha channel differs from fully
// opaque, mirroring write.rs's has_any_alpha_pixel check that decides
// whether the PNG encoder needs an alpha channel at all.
func hasAnyAlpha(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 255 {
				return true
			}
		}
	}
	return false
}

// encodePNG strips the alpha channel to an RGB image when every pixel is
// fully opaque, matching write.rs's strip_alpha_channel optimization, then
// defers to the standard encoder (Go's image/png does not expose libpng's
// compression-level/filter-strategy knobs write.rs tunes, so it always
// picks its own best-effort filtering; see DESIGN.md).
func encodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if hasAnyAlpha(img) {
		err = png.Encode(&buf, img)
	} else {
		err = png.Encode(&buf, stripAlpha(img))
	}
	if err != nil {
		return nil, &errs.EncodeError{Format: "png", Err: err}
	}
	return buf.Bytes(), nil
}

func stripAlpha(img *image.RGBA) image.Image {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}

func encodeJPEG(img *image.RGBA, quality int) ([]byte, error) {
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, &errs.EncodeError{Format: "jpeg", Err: err}
	}
	return buf.Bytes(), nil
}

// encodeRaw returns the canvas's packed RGBA8 rows verbatim, row stride
// equal to 4*width (spec.md §6 "Raw: packed RGBA8, no header").
func encodeRaw(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			out = append(out, c.R, c.G, c.B, c.A)
		}
	}
	return out
}
