// Package inline groups inline-level content (text fragments and atomic
// inline boxes) into runs, shapes and line-breaks them via a Shaper
// collaborator, and exposes the measured size plus positioned line/box
// geometry paint needs (spec.md §4.4).
package inline

import (
	"strings"

	"rasterkit/pkg/css"
	"rasterkit/pkg/node"
)

// ItemKind discriminates a run item.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemAtomic
)

// Item is one inline-run entry: either a text fragment with its resolved
// style, or a reference to an atomic inline node (image, svg, nested
// container) with its measured intrinsic size.
type Item struct {
	Kind  ItemKind
	Text  string
	Style *css.ComputedStyle
	Node  *node.Node // set for ItemAtomic
	Size  css.SpacePair[float64]
	BoxID int // running index assigned at build time, used to report positions after break
}

// Run is the ordered item list built from a sequence of inline-level
// siblings, ready for measurement and line-breaking (spec.md §4.4).
type Run struct {
	Items []Item
}

// SourceItem pairs an inline-level node with its own cascaded style, the
// input unit inline-tree flattening produces for Build.
type SourceItem struct {
	Node  *node.Node
	Style *css.ComputedStyle
}

// Build walks nodes (already filtered to inline-level siblings) and their
// per-node computed styles, applying text-transform and white-space
// collapsing to text content as it goes (spec.md §4.4: "apply text-transform
// and white-space-collapse to the string"). measureAtomic sizes non-text
// items (image/svg/nested block) against the given available width.
func Build(items []SourceItem, measureAtomic func(n *node.Node, style *css.ComputedStyle, availW float64) css.SpacePair[float64], availW float64) *Run {
	run := &Run{}
	boxID := 0
	for _, it := range items {
		switch it.Node.Kind {
		case node.KindText:
			text := applyWhiteSpace(it.Node.Text, it.Style.WhiteSpace)
			text = applyTextTransform(text, it.Style.TextTransform)
			run.Items = append(run.Items, Item{Kind: ItemText, Text: text, Style: it.Style})
		default:
			size := measureAtomic(it.Node, it.Style, availW)
			run.Items = append(run.Items, Item{Kind: ItemAtomic, Node: it.Node, Style: it.Style, Size: size, BoxID: boxID})
			boxID++
		}
	}
	return run
}

func applyTextTransform(s string, t css.TextTransform) string {
	switch t {
	case css.TextTransformUppercase:
		return strings.ToUpper(s)
	case css.TextTransformLowercase:
		return strings.ToLower(s)
	case css.TextTransformCapitalize:
		return strings.Title(s)
	default:
		return s
	}
}

func applyWhiteSpace(s string, ws css.WhiteSpace) string {
	switch ws.Collapse {
	case css.WhiteSpaceCollapsePreserve:
		return s
	case css.WhiteSpaceCollapsePreserveBreaks:
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			lines[i] = collapseSpaces(l)
		}
		return strings.Join(lines, "\n")
	default:
		return collapseSpaces(strings.ReplaceAll(s, "\n", " "))
	}
}

func collapseSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
