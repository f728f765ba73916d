package inline

import "rasterkit/pkg/css"

// MeasureWidth selects the width a Run is broken against, given the layout
// solver's available-space kind (spec.md §4.4 step 1: "MinContent=0,
// MaxContent=∞, Definite=w").
func MeasureWidth(hasKnownWidth bool, knownWidth float64, availKind int, availValue float64) float64 {
	if hasKnownWidth {
		return knownWidth
	}
	switch availKind {
	case 0: // MinContent
		return 0
	case 1: // MaxContent
		return 1e9
	default:
		return availValue
	}
}

// Measure breaks run under the given width/height constraints and returns
// the resulting box size, the entry point the layout package's measure
// callback dispatches to for inline-tree content (spec.md §4.3 step 5,
// §4.4 step 4).
func Measure(run *Run, shaper Shaper, maxWidth float64, clamp css.LineClamp, knownHeight float64, hasKnownHeight bool, align css.TextAlign) (css.SpacePair[float64], BreakRunResult) {
	maxHeight := ResolveMaxHeight(clamp, knownHeight, hasKnownHeight)
	result := BreakLines(run, shaper, maxWidth, maxHeight, align)
	return css.SpacePair[float64]{X: result.Width, Y: result.Height}, result
}
