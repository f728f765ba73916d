package output

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/webp"
)

func opaqueImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: 255})
		}
	}
	return img
}

func TestEncodePNGStripsAlphaWhenFullyOpaque(t *testing.T) {
	img := opaqueImage(4, 4)
	data, err := Encode(img, FormatPNG, 0)
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG output: %v", err)
	}
	if _, ok := decoded.(*image.RGBA); !ok {
		t.Fatalf("expected an alpha-stripped (RGB, decoded as RGBA) image for a fully opaque source, got %T", decoded)
	}
}

func TestEncodePNGKeepsAlphaWhenTransparentPixelsExist(t *testing.T) {
	img := opaqueImage(4, 4)
	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 128})
	data, err := Encode(img, FormatPNG, 0)
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG output: %v", err)
	}
	if _, ok := decoded.(*image.NRGBA); !ok {
		t.Fatalf("did not expect alpha stripping when a transparent pixel is present, got %T", decoded)
	}
}

func TestEncodeJPEGProducesDecodableOutput(t *testing.T) {
	img := opaqueImage(8, 8)
	data, err := Encode(img, FormatJPEG, 90)
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected non-empty JPEG output")
	}
	if data[0] != 0xFF || data[1] != 0xD8 {
		t.Fatalf("expected a JPEG SOI marker, got %#x %#x", data[0], data[1])
	}
}

func TestEncodeRawPacksRGBA8RowMajor(t *testing.T) {
	img := opaqueImage(2, 2)
	data, err := Encode(img, FormatRaw, 0)
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	if len(data) != 2*2*4 {
		t.Fatalf("expected %d raw bytes, got %d", 2*2*4, len(data))
	}
	want := img.RGBAAt(0, 0)
	if data[0] != want.R || data[1] != want.G || data[2] != want.B || data[3] != want.A {
		t.Fatalf("first raw pixel %v does not match source pixel %v", data[0:4], want)
	}
}

func TestEncodeWebPRoundTripsLosslessly(t *testing.T) {
	img := opaqueImage(6, 6)
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 200}) // exercise a non-opaque pixel too
	data, err := Encode(img, FormatWebP, 0)
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Fatalf("expected a RIFF/WEBP container, got %q/%q", data[0:4], data[8:12])
	}

	decoded, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode the produced WebP lossless bitstream: %v", err)
	}
	b := img.Bounds()
	if decoded.Bounds().Dx() != b.Dx() || decoded.Bounds().Dy() != b.Dy() {
		t.Fatalf("decoded size %v does not match source size %v", decoded.Bounds(), b)
	}
	// Compare raw stored bytes rather than going through Color.RGBA(), which
	// premultiplies by alpha and would round-trip a partially transparent
	// pixel lossily even though the underlying bitstream is exact.
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := img.RGBAAt(x, y)
			var got color.RGBA
			switch d := decoded.(type) {
			case *image.NRGBA:
				p := d.NRGBAAt(x, y)
				got = color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
			case *image.RGBA:
				got = d.RGBAAt(x, y)
			default:
				t.Fatalf("unexpected decoded image type %T", decoded)
			}
			if got != want {
				t.Fatalf("pixel (%d,%d): decoded %+v, want %+v (lossless round trip must be exact)", x, y, got, want)
			}
		}
	}
}
