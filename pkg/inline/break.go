package inline

import (
	"math"

	"rasterkit/pkg/css"
)

// MaxHeightKind selects which height-capping mode line-breaking obeys
// (spec.md §4.4 step 1).
type MaxHeightKind int

const (
	MaxHeightNone MaxHeightKind = iota
	MaxHeightLines
	MaxHeightAbsolute
	MaxHeightBoth
)

// MaxHeight combines a `line-clamp` line cap and/or an absolute height cap
// into the single constraint line-breaking obeys.
type MaxHeight struct {
	Kind  MaxHeightKind
	Lines int
	Abs   float64
}

// ResolveMaxHeight combines a node's line-clamp and an optional known
// height into one MaxHeight constraint (spec.md §4.4 step 1: "combine
// viewport height and line-clamp into one of {None, Lines(n), Absolute(h),
// Both(h,n)}").
func ResolveMaxHeight(clamp css.LineClamp, knownHeight float64, hasKnownHeight bool) MaxHeight {
	switch {
	case clamp.HasLimit && hasKnownHeight:
		return MaxHeight{Kind: MaxHeightBoth, Lines: clamp.Lines, Abs: knownHeight}
	case clamp.HasLimit:
		return MaxHeight{Kind: MaxHeightLines, Lines: clamp.Lines}
	case hasKnownHeight:
		return MaxHeight{Kind: MaxHeightAbsolute, Abs: knownHeight}
	default:
		return MaxHeight{Kind: MaxHeightNone}
	}
}

// Line is one broken, positioned line of shaped content.
type Line struct {
	Items     []Item // the sub-slice of run items (atomic items whole, text items possibly truncated) on this line
	Width     float64
	Height    float64
	Truncated bool // true if line-clamp cut this line short of the run's full text
}

// BreakRunResult is the line-broken layout of a Run.
type BreakRunResult struct {
	Lines []Line
	Width float64 // ceil(max line advance), clamped to max width
	Height float64 // ceil(sum of line heights)
}

// BreakLines breaks run into lines under maxWidth using shaper, stopping
// according to maxHeight (spec.md §4.4 step 2). Each text item may be split
// across multiple lines; atomic items are never split.
func BreakLines(run *Run, shaper Shaper, maxWidth float64, maxHeight MaxHeight, align css.TextAlign) BreakRunResult {
	var lines []Line
	var curItems []Item
	curWidth := 0.0
	curHeight := 0.0
	lineCapHit := false

	flushLine := func() {
		h := curHeight
		if h == 0 {
			h = 0
		}
		lines = append(lines, Line{Items: curItems, Width: curWidth, Height: h})
		curItems = nil
		curWidth = 0
		curHeight = 0
	}

	exceedsLineCap := func(n int) bool {
		switch maxHeight.Kind {
		case MaxHeightLines, MaxHeightBoth:
			return n > maxHeight.Lines
		default:
			return false
		}
	}

outer:
	for _, item := range run.Items {
		if exceedsLineCap(len(lines) + 1) {
			lineCapHit = true
			break
		}
		switch item.Kind {
		case ItemAtomic:
			if curWidth+item.Size.X > maxWidth && len(curItems) > 0 {
				flushLine()
				if exceedsLineCap(len(lines) + 1) {
					lineCapHit = true
					break outer
				}
			}
			curItems = append(curItems, item)
			curWidth += item.Size.X
			curHeight = math.Max(curHeight, item.Size.Y)
		case ItemText:
			remaining := item.Text
			for len(remaining) > 0 {
				avail := maxWidth - curWidth
				if avail <= 0 && len(curItems) > 0 {
					flushLine()
					if exceedsLineCap(len(lines) + 1) {
						lineCapHit = true
						break outer
					}
					avail = maxWidth
				}
				breakAt, hasMore := shaper.BreakText(remaining, item.Style, avail, item.Style.WordBreak)
				if breakAt == 0 && len(curItems) == 0 {
					// A single unbreakable token wider than the line; take
					// it whole to guarantee forward progress.
					breakAt = len(remaining)
					hasMore = false
				} else if breakAt == 0 {
					flushLine()
					if exceedsLineCap(len(lines) + 1) {
						lineCapHit = true
						break outer
					}
					continue
				}
				piece := remaining[:breakAt]
				w, h := shaper.MeasureSpan(piece, item.Style)
				curItems = append(curItems, Item{Kind: ItemText, Text: piece, Style: item.Style})
				curWidth += w
				curHeight = math.Max(curHeight, h)
				remaining = remaining[breakAt:]
				if hasMore {
					flushLine()
					if exceedsLineCap(len(lines) + 1) {
						lineCapHit = true
						break outer
					}
				}
			}
		}
	}
	if len(curItems) > 0 {
		flushLine()
	}

	result, heightCapHit := applyHeightCap(lines, maxHeight)
	if (lineCapHit || heightCapHit) && len(result) > 0 {
		result[len(result)-1].Truncated = true
	}
	return finalizeBreak(result, maxWidth)
}

// applyHeightCap trims trailing lines whose cumulative height would exceed
// an Absolute/Both height cap, reverting the last break (spec.md §4.4 step
// 2: "Absolute(h): ...if the next break would exceed h, revert the last
// break").
func applyHeightCap(lines []Line, maxHeight MaxHeight) ([]Line, bool) {
	if maxHeight.Kind != MaxHeightAbsolute && maxHeight.Kind != MaxHeightBoth {
		return lines, false
	}
	sum := 0.0
	for i, l := range lines {
		if sum+l.Height > maxHeight.Abs {
			return lines[:i], i > 0
		}
		sum += l.Height
	}
	return lines, false
}

func finalizeBreak(lines []Line, maxWidth float64) BreakRunResult {
	maxAdvance := 0.0
	totalHeight := 0.0
	for _, l := range lines {
		if l.Width > maxAdvance {
			maxAdvance = l.Width
		}
		totalHeight += l.Height
	}
	w := math.Ceil(maxAdvance)
	if w > maxWidth && maxWidth > 0 && !math.IsInf(maxWidth, 1) {
		w = maxWidth
	}
	return BreakRunResult{Lines: lines, Width: w, Height: math.Ceil(totalHeight)}
}
