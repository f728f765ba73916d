package inline

import "rasterkit/pkg/css"

// Shaper is the external text-layout library collaborator spec.md §1 treats
// as out of scope: something that accepts styled spans interleaved with
// inline-box placeholders and returns shaped, line-broken geometry.
// pkg/inline/ggshaper provides a concrete implementation built on
// github.com/fogleman/gg's glyph measurement.
type Shaper interface {
	// MeasureSpan returns the advance width and line-box height text would
	// occupy when set in style, ignoring line breaks.
	MeasureSpan(text string, style *css.ComputedStyle) (width, height float64)

	// BreakText finds the longest prefix of text (breaking only at
	// whitespace, unless wordBreak allows breaking mid-word) that fits
	// within maxWidth, returning the break byte offset and whether any
	// text remains after it. A WordBreak of BreakAll may split within a
	// word when no whitespace break fits.
	BreakText(text string, style *css.ComputedStyle, maxWidth float64, wordBreak css.WordBreak) (breakAt int, hasMore bool)
}
