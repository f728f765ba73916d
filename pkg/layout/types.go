// Package layout assembles the input node tree into an intermediate render
// tree — inserting anonymous block wrappers around inline runs and
// absorbing display:inline nodes into their ancestor's inline content — and
// drives an external box-layout Solver collaborator to position it
// (spec.md §4.3).
package layout

import (
	"rasterkit/pkg/css"
	"rasterkit/pkg/inline"
	"rasterkit/pkg/node"
)

// AvailableSpaceKind selects how a solver should interpret an axis's
// available space when no definite size is known (spec.md §4.4 step 1:
// "MinContent=0, MaxContent=∞, Definite=w").
type AvailableSpaceKind int

const (
	SpaceMinContent AvailableSpaceKind = iota
	SpaceMaxContent
	SpaceDefinite
)

// AvailableSpace is one axis's sizing constraint handed to a measure
// callback.
type AvailableSpace struct {
	Kind  AvailableSpaceKind
	Value float64 // meaningful only when Kind == SpaceDefinite
}

// Definite constructs a definite available space.
func Definite(v float64) AvailableSpace { return AvailableSpace{Kind: SpaceDefinite, Value: v} }

// Size is a resolved width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is a positioned box in parent-relative coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// MeasureFunc is the callback a Solver invokes to ask a leaf render node for
// its intrinsic size given the available space on each axis and any already
// known definite dimensions (spec.md §4.3 step 5, §9 "Measure callback").
type MeasureFunc func(known Size, hasKnownWidth, hasKnownHeight bool, availW, availH AvailableSpace) Size

// RenderNode is one node of the intermediate tree the layout-assembly stage
// builds from the input node tree before handing it to a Solver (spec.md
// §4.3 step 1). AnonymousBlock nodes are synthetic: they carry the parent's
// inherited style with a reset box style (spec.md §3 invariant), and their
// Measure closure builds and line-breaks the inline run of the consecutive
// inline siblings they wrap, storing the broken lines in Lines.
type RenderNode struct {
	Source   *node.Node // nil for an anonymous block wrapper
	Style    *css.ComputedStyle
	Children []*RenderNode

	IsAnonymousBlock bool
	Measure          MeasureFunc // set on leaves that need intrinsic sizing (images, svg, inline trees)

	// Lines and TextAlign are populated by an inline leaf's Measure closure
	// each time the solver calls it, so paint can draw the same break
	// result a Solver last sized against without re-shaping (spec.md §4.4
	// "the returned size", §4.5 "paint each line's glyph runs").
	Lines     []inline.Line
	TextAlign css.TextAlign

	// Layout is filled in by a Solver after positioning.
	Layout Rect
}

// Solver performs flex/grid/block layout given a RenderNode tree rooted at
// root, honoring each node's ComputedStyle box-model properties and
// invoking Measure on leaves that provide it. This models the external
// taffy-equivalent collaborator spec.md §1 treats as out of scope for this
// specification; pkg/layout/flexsolver provides one concrete implementation.
type Solver interface {
	Layout(root *RenderNode, availableWidth, availableHeight float64) error
}
