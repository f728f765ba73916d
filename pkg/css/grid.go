package css

import "strings"

// GridLengthKind selects whether a grid track size is a fixed/percentage
// length, a content keyword, or the `fr` flexible-fraction unit introduced by
// CSS Grid (spec.md §4.1, grounded on the original's grid_length_unit.rs).
type GridLengthKind int

const (
	GridLengthFixed GridLengthKind = iota
	GridLengthFraction
	GridLengthAuto
	GridLengthMinContent
	GridLengthMaxContent
)

// GridLength is a single grid track size.
type GridLength struct {
	Kind GridLengthKind
	Fr   float64    // Kind == GridLengthFraction
	Len  LengthUnit // Kind == GridLengthFixed
}

// ParseGridLength parses a single track-size token: a length/percentage, an
// `fr` value, or one of auto/min-content/max-content.
func ParseGridLength(value string) (GridLength, error) {
	value = strings.TrimSpace(value)
	switch value {
	case "auto":
		return GridLength{Kind: GridLengthAuto}, nil
	case "min-content":
		return GridLength{Kind: GridLengthMinContent}, nil
	case "max-content":
		return GridLength{Kind: GridLengthMaxContent}, nil
	}
	if strings.HasSuffix(value, "fr") {
		n, err := ParsePercentageNumber(strings.TrimSuffix(value, "fr"))
		if err != nil {
			return GridLength{}, err
		}
		return GridLength{Kind: GridLengthFraction, Fr: n.Value}, nil
	}
	l, err := ParseLength(value)
	if err != nil {
		return GridLength{}, err
	}
	return GridLength{Kind: GridLengthFixed, Len: l}, nil
}

// ParseGridTrackList parses a `grid-template-columns`/`grid-template-rows`
// value into its track list, expanding a single repeat(N, <tracks>) call
// into N literal copies (nested/auto-fill repeat is out of scope).
func ParseGridTrackList(value string) ([]GridLength, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "none" {
		return nil, nil
	}
	var tracks []GridLength
	for _, call := range splitTrackTokens(value) {
		if name, args, ok := splitFunction(call); ok && name == "repeat" {
			parts := splitTopLevelCommas(args)
			if len(parts) < 2 {
				return nil, &ParseError{Token: call, Msg: "repeat() requires a count and a track list"}
			}
			count, err := parseRepeatCount(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, err
			}
			inner, err := ParseGridTrackList(strings.Join(parts[1:], ","))
			if err != nil {
				return nil, err
			}
			for i := 0; i < count; i++ {
				tracks = append(tracks, inner...)
			}
			continue
		}
		if name, args, ok := splitFunction(call); ok && name == "minmax" {
			parts := splitTopLevelCommas(args)
			if len(parts) != 2 {
				return nil, &ParseError{Token: call, Msg: "minmax() requires exactly two arguments"}
			}
			// The engine sizes grid tracks from their maximum, matching a
			// flexible-box-solver collaborator that has no separate
			// min/max track channel; the minimum argument is parsed for
			// validation only.
			if _, err := ParseGridLength(strings.TrimSpace(parts[0])); err != nil {
				return nil, err
			}
			max, err := ParseGridLength(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, err
			}
			tracks = append(tracks, max)
			continue
		}
		t, err := ParseGridLength(call)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

func parseRepeatCount(s string) (int, error) {
	n, err := ParsePercentageNumber(s)
	if err != nil {
		return 0, err
	}
	return int(n.Value), nil
}

// splitTrackTokens splits a track-list value on whitespace, keeping
// function calls (repeat(...), minmax(...)) intact.
func splitTrackTokens(value string) []string {
	var tokens []string
	depth := 0
	start := -1
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '(':
			depth++
			if start < 0 {
				start = lastIdentStart(value, i)
			}
		case ')':
			depth--
		case ' ', '\t', '\n':
			if depth == 0 {
				if start >= 0 {
					tokens = append(tokens, value[start:i])
					start = -1
				}
				continue
			}
		default:
			if start < 0 && depth == 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, value[start:])
	}
	return tokens
}

// GridAutoFlowDirection selects the primary axis `grid-auto-flow` packs
// implicit items along.
type GridAutoFlowDirection int

const (
	GridAutoFlowRow GridAutoFlowDirection = iota
	GridAutoFlowColumn
)

// GridAutoFlow is the resolved `grid-auto-flow` property: a direction plus
// the optional `dense` packing modifier.
type GridAutoFlow struct {
	Direction GridAutoFlowDirection
	Dense     bool
}

// ParseGridAutoFlow parses the `grid-auto-flow` value.
func ParseGridAutoFlow(value string) (GridAutoFlow, error) {
	flow := GridAutoFlow{Direction: GridAutoFlowRow}
	for _, tok := range strings.Fields(value) {
		switch tok {
		case "row":
			flow.Direction = GridAutoFlowRow
		case "column":
			flow.Direction = GridAutoFlowColumn
		case "dense":
			flow.Dense = true
		default:
			return GridAutoFlow{}, &ParseError{Token: tok, Msg: "unknown grid-auto-flow keyword"}
		}
	}
	return flow, nil
}
