package css

import "strings"

// Filter holds the subset of the `filter` property the rasterizer supports:
// a Gaussian-style stack blur radius (spec.md §4.6, grounded on the
// original's blur.rs component). Unrecognized filter functions are ignored
// rather than rejected, matching CSS's "filter functions not understood are
// dropped" forward-compatibility rule.
type Filter struct {
	BlurPx float64
}

// ParseFilter parses a `filter` property value, extracting blur(<length>) if
// present and ignoring any other filter functions in the list.
func ParseFilter(value string) (Filter, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return Filter{}, nil
	}
	var f Filter
	for _, call := range splitFunctionCalls(value) {
		name, args, ok := splitFunction(call)
		if !ok {
			continue
		}
		if name == "blur" {
			l, err := ParseLength(strings.TrimSpace(args))
			if err != nil {
				return Filter{}, err
			}
			f.BlurPx = l.Value
		}
	}
	return f, nil
}
