// Package ggshaper adapts pkg/text's font registry and gg-based glyph
// measurement into an inline.Shaper, so line-breaking measures text with the
// exact same routine the rasterizer later draws glyphs with.
package ggshaper

import (
	"unicode"

	"rasterkit/pkg/css"
	"rasterkit/pkg/text"
)

// Shaper measures and breaks text against a font Snapshot taken for the
// duration of one render (spec.md §5 "Registries are read-only during
// render").
type Shaper struct {
	Fonts *text.Snapshot
}

// New builds a Shaper bound to fonts.
func New(fonts *text.Snapshot) *Shaper {
	return &Shaper{Fonts: fonts}
}

func (s *Shaper) face(style *css.ComputedStyle) text.Face {
	bold := style.FontWeight >= 600
	italic := style.FontStyle == css.FontStyleItalic
	return s.Fonts.FontFace(style.FontFamily, style.FontSize, bold, italic)
}

// MeasureSpan implements inline.Shaper.
func (s *Shaper) MeasureSpan(t string, style *css.ComputedStyle) (width, height float64) {
	f := s.face(style)
	w, _ := f.MeasureString(t)
	if style.LineHeight.IsAuto() {
		return w, f.LineHeight()
	}
	ctx := css.ResolveContext{FontSizePx: style.FontSize, RootFontSizePx: style.FontSize, PercentBasisPx: style.FontSize}
	return w, style.LineHeight.Resolve(ctx)
}

// BreakText implements inline.Shaper, finding the longest prefix of text
// fitting within maxWidth. It prefers the last whitespace boundary that
// fits; when wordBreak is BreakAll, or no whitespace boundary fits, it
// breaks after the last whole rune that fits, and when not even the first
// rune fits it falls back to breakRune so the line still makes progress.
func (s *Shaper) BreakText(t string, style *css.ComputedStyle, maxWidth float64, wordBreak css.WordBreak) (breakAt int, hasMore bool) {
	if t == "" {
		return 0, false
	}
	f := s.face(style)
	if w := f.AdvanceOf(t); w <= maxWidth {
		return len(t), false
	}

	lastSpace := -1
	idx := 0
	for i, r := range t {
		if f.AdvanceOf(t[:i]) > maxWidth {
			break
		}
		if unicode.IsSpace(r) {
			lastSpace = i
		}
		idx = i
	}

	if lastSpace > 0 && wordBreak != css.WordBreakBreakAll {
		return lastSpace, true
	}
	if idx == 0 {
		return s.breakRune(t, f, maxWidth)
	}
	return idx, idx < len(t)
}

// breakRune binary-searches for the widest whole-rune prefix that still fits,
// guaranteeing at least one rune of progress even when it alone overflows
// maxWidth (spec.md §4.4: a single unbreakable token is taken whole).
func (s *Shaper) breakRune(t string, f text.Face, maxWidth float64) (int, bool) {
	runes := []rune(t)
	if len(runes) <= 1 {
		return len(t), false
	}
	lo, hi := 1, len(runes)
	best := 1
	for lo <= hi {
		mid := (lo + hi) / 2
		prefix := string(runes[:mid])
		if f.AdvanceOf(prefix) <= maxWidth {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	byteLen := len(string(runes[:best]))
	return byteLen, byteLen < len(t)
}
