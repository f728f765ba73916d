package text

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is a resolved, sized glyph source ready to measure or draw with.
type Face struct {
	Family string
	Size   float64
	face   font.Face
}

// FontFace resolves a face for the given family list, size, and weight/style,
// falling back through the family list and finally to a built-in face if the
// registry has nothing registered (so the engine renders something even
// without host-supplied fonts).
func (s *Snapshot) FontFace(families []string, size float64, bold, italic bool) Face {
	if size <= 0 {
		size = 16
	}
	ttf, err := s.resolve(families, bold, italic)
	if err != nil {
		return Face{Family: "default", Size: size, face: basicfont.Face7x13}
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: size, DPI: 72})
	family := "default"
	if len(families) > 0 {
		family = families[0]
	}
	return Face{Family: family, Size: size, face: face}
}

// MeasureString returns the advance width and line height of s when set in
// this face, using the same measurement routine the rasterizer uses to draw
// glyphs (gg.Context.MeasureString), so layout and paint never disagree.
func (f Face) MeasureString(s string) (width, height float64) {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(f.face)
	return dc.MeasureString(s)
}

// LineHeight returns the font's natural line height (ascent+descent+linegap)
// for this face.
func (f Face) LineHeight() float64 {
	metrics := f.face.Metrics()
	return float64(metrics.Height) / 64.0
}

// AdvanceOf returns the horizontal advance of a single string without
// assuming anything about line breaks; used by the inline run builder to
// find break opportunities.
func (f Face) AdvanceOf(s string) float64 {
	w, _ := f.MeasureString(s)
	return w
}

// FontFace exposes the underlying font.Face so a rasterizer can hand it to
// gg.Context.SetFontFace directly, drawing the exact glyphs this Face
// measured.
func (f Face) FontFace() font.Face {
	return f.face
}
