package inline

import (
	"testing"
	"unicode"

	"rasterkit/pkg/css"
)

// fakeShaper is a monospace stand-in for ggshaper.Shaper: every rune
// advances by charWidth, independent of style, so line-break outcomes are
// easy to predict in tests.
type fakeShaper struct {
	charWidth  float64
	lineHeight float64
}

func (f fakeShaper) MeasureSpan(text string, style *css.ComputedStyle) (float64, float64) {
	return float64(len([]rune(text))) * f.charWidth, f.lineHeight
}

func (f fakeShaper) BreakText(text string, style *css.ComputedStyle, maxWidth float64, wordBreak css.WordBreak) (int, bool) {
	if text == "" {
		return 0, false
	}
	maxChars := int(maxWidth / f.charWidth)
	runes := []rune(text)
	if len(runes) <= maxChars {
		return len(text), false
	}
	if maxChars <= 0 {
		return 0, true
	}
	lastSpace := -1
	for i := 0; i < maxChars; i++ {
		if unicode.IsSpace(runes[i]) {
			lastSpace = i
		}
	}
	if lastSpace > 0 && wordBreak != css.WordBreakBreakAll {
		return len(string(runes[:lastSpace])), true
	}
	return len(string(runes[:maxChars])), true
}

func textStyle() *css.ComputedStyle {
	return &css.ComputedStyle{TextAlign: css.TextAlignLeft}
}

// atomicRun builds a run of n fixed-size atomic items (e.g. inline images),
// which flush onto a new line purely by width overflow, with none of
// text-breaking's whitespace/word-break nuance — useful for pinning down
// exact line counts under a line-clamp or height cap.
func atomicRun(n int, w, h float64) *Run {
	run := &Run{}
	for i := 0; i < n; i++ {
		run.Items = append(run.Items, Item{Kind: ItemAtomic, Size: css.SpacePair[float64]{X: w, Y: h}})
	}
	return run
}

func oneItemRun(text string) *Run {
	return &Run{Items: []Item{{Kind: ItemText, Text: text, Style: textStyle()}}}
}

func TestBreakLinesFitsSingleLineWhenNarrowEnough(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := oneItemRun("hello")
	result := BreakLines(run, shaper, 1000, MaxHeight{Kind: MaxHeightNone}, css.TextAlignLeft)
	if len(result.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %+v", len(result.Lines), result.Lines)
	}
	if result.Lines[0].Truncated {
		t.Fatalf("a line that fit should not be marked Truncated")
	}
}

func TestBreakLinesWrapsAtWhitespace(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := oneItemRun("aa bb cc")
	// "aa bb cc" is 8 runes * 10 = 80 wide; cap width to fit "aa bb" (5 runes = 50) but not more.
	result := BreakLines(run, shaper, 55, MaxHeight{Kind: MaxHeightNone}, css.TextAlignLeft)
	if len(result.Lines) < 2 {
		t.Fatalf("expected the text to wrap across multiple lines, got %+v", result.Lines)
	}
}

func TestBreakLinesTakesUnbreakableTokenWhole(t *testing.T) {
	// maxWidth is narrower than a single character's advance, so BreakText
	// can never find a fitting prefix; BreakLines must still make forward
	// progress by taking the whole token rather than looping forever.
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := oneItemRun("supercalifragilisticexpialidocious")
	result := BreakLines(run, shaper, 5, MaxHeight{Kind: MaxHeightNone}, css.TextAlignLeft)
	if len(result.Lines) != 1 {
		t.Fatalf("expected the unbreakable token to be kept on one line, got %d lines", len(result.Lines))
	}
	if len(result.Lines[0].Items) != 1 || result.Lines[0].Items[0].Text != "supercalifragilisticexpialidocious" {
		t.Fatalf("expected the whole token on the single line, got %+v", result.Lines[0].Items)
	}
}

func TestBreakLinesLineClampMarksLastLineTruncated(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := atomicRun(5, 40, 20) // one item per line at this width
	maxHeight := MaxHeight{Kind: MaxHeightLines, Lines: 2}
	result := BreakLines(run, shaper, 40, maxHeight, css.TextAlignLeft)
	if len(result.Lines) != 2 {
		t.Fatalf("expected exactly 2 lines under a line-clamp of 2, got %d", len(result.Lines))
	}
	if !result.Lines[len(result.Lines)-1].Truncated {
		t.Fatalf("expected the last line to be marked Truncated when line-clamp cuts content short")
	}
}

func TestBreakLinesNoTruncationWhenContentFitsWithinClamp(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := oneItemRun("short")
	maxHeight := MaxHeight{Kind: MaxHeightLines, Lines: 5}
	result := BreakLines(run, shaper, 1000, maxHeight, css.TextAlignLeft)
	for _, l := range result.Lines {
		if l.Truncated {
			t.Fatalf("did not expect any line to be Truncated when all content fits within the clamp")
		}
	}
}

func TestBreakLinesAbsoluteHeightCapRevertsLastBreak(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	run := atomicRun(6, 20, 20) // one item per line at this width
	maxHeight := MaxHeight{Kind: MaxHeightAbsolute, Abs: 45}
	result := BreakLines(run, shaper, 20, maxHeight, css.TextAlignLeft)
	if result.Height > 45 {
		t.Fatalf("expected the rendered height to respect the absolute cap, got %v", result.Height)
	}
	if len(result.Lines) == 0 || !result.Lines[len(result.Lines)-1].Truncated {
		t.Fatalf("expected the last surviving line to be marked Truncated after an absolute height cap reverted a break")
	}
}

func TestResolveMaxHeightCombinesLineClampAndKnownHeight(t *testing.T) {
	both := ResolveMaxHeight(css.LineClamp{HasLimit: true, Lines: 3}, 100, true)
	if both.Kind != MaxHeightBoth || both.Lines != 3 || both.Abs != 100 {
		t.Fatalf("expected MaxHeightBoth{3,100}, got %+v", both)
	}
	none := ResolveMaxHeight(css.LineClamp{}, 0, false)
	if none.Kind != MaxHeightNone {
		t.Fatalf("expected MaxHeightNone, got %+v", none)
	}
	linesOnly := ResolveMaxHeight(css.LineClamp{HasLimit: true, Lines: 2}, 0, false)
	if linesOnly.Kind != MaxHeightLines || linesOnly.Lines != 2 {
		t.Fatalf("expected MaxHeightLines{2}, got %+v", linesOnly)
	}
}

func TestBreakLinesEmptyRunProducesNoLines(t *testing.T) {
	shaper := fakeShaper{charWidth: 10, lineHeight: 20}
	result := BreakLines(&Run{}, shaper, 100, MaxHeight{Kind: MaxHeightNone}, css.TextAlignLeft)
	if len(result.Lines) != 0 {
		t.Fatalf("expected no lines from an empty run, got %d", len(result.Lines))
	}
}
