package css

import "strings"

// AspectRatio is the `aspect-ratio` property: either `auto` (size from
// content/intrinsic ratio) or a fixed width/height ratio (spec.md §4.1,
// supplemented from the original's aspect_ratio.rs).
type AspectRatio struct {
	Auto  bool
	Ratio float64 // width / height, meaningful only when Auto == false
}

// ParseAspectRatio parses `auto`, a bare number ("1.5"), or the `<w> / <h>`
// ratio syntax.
func ParseAspectRatio(value string) (AspectRatio, error) {
	value = strings.TrimSpace(value)
	if value == "auto" || value == "" {
		return AspectRatio{Auto: true}, nil
	}
	if idx := strings.Index(value, "/"); idx >= 0 {
		w, err := ParsePercentageNumber(strings.TrimSpace(value[:idx]))
		if err != nil {
			return AspectRatio{}, err
		}
		h, err := ParsePercentageNumber(strings.TrimSpace(value[idx+1:]))
		if err != nil {
			return AspectRatio{}, err
		}
		if h.Value == 0 {
			return AspectRatio{}, &ParseError{Token: value, Msg: "aspect-ratio height cannot be zero"}
		}
		return AspectRatio{Ratio: w.Value / h.Value}, nil
	}
	n, err := ParsePercentageNumber(value)
	if err != nil {
		return AspectRatio{}, err
	}
	return AspectRatio{Ratio: n.Value}, nil
}
