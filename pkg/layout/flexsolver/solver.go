// Package flexsolver is a concrete layout.Solver: a block-and-flex box
// layout engine adapted from the teacher's hand-rolled layout pass (the
// taffy-equivalent collaborator spec.md §1 and §4.3 treat as an external
// dependency). It supports the box model (margin/border/padding), block
// stacking, and single-axis flexbox distribution with grow/shrink and
// wrapping; grid containers fall back to block stacking of their items
// (see DESIGN.md).
package flexsolver

import (
	"math"

	"rasterkit/pkg/css"
	"rasterkit/pkg/layout"
)

// Solver implements layout.Solver.
type Solver struct{}

// New constructs a Solver.
func New() *Solver { return &Solver{} }

// Layout positions root and its descendants within availableWidth x
// availableHeight, writing each node's box into its Layout field.
func (s *Solver) Layout(root *layout.RenderNode, availableWidth, availableHeight float64) error {
	b := s.layoutBox(root, availableWidth, availableHeight)
	root.Layout = layout.Rect{X: 0, Y: 0, Width: b.Width, Height: b.Height}
	return nil
}

// box carries the box-model edges resolved to pixels for one node, plus its
// content-box and outer (margin-box) size.
type box struct {
	Margin, Border, Padding css.Sides[float64]
	Width, Height           float64 // outer margin-box size
	ContentWidth            float64
	ContentHeight           float64
}

// outerMainSize returns the margin-box extent of b along the main axis.
func outerMainSize(b box, isRow bool) float64 {
	if isRow {
		return b.Width
	}
	return b.Height
}

// outerCrossSize returns the margin-box extent of b along the cross axis.
func outerCrossSize(b box, isRow bool) float64 {
	if isRow {
		return b.Height
	}
	return b.Width
}

// layoutBox lays out n's content within the content box implied by
// availableWidth (the space n's margin box may occupy) and returns n's
// outer box. availableHeight is used only when n's own height is definite
// or it is a flex container sizing along a definite column axis.
func (s *Solver) layoutBox(n *layout.RenderNode, availableWidth, availableHeight float64) box {
	if n.Style.Display == css.DisplayNone {
		return box{}
	}
	st := n.Style
	ctx := css.ResolveContext{FontSizePx: st.FontSize, RootFontSizePx: st.FontSize}

	margin := css.SidesLengthToPixels(st.Margin, ctx, availableWidth, availableWidth)
	border := resolveBorderWidths(st.Border, ctx, availableWidth)
	padding := css.SidesLengthToPixels(st.Padding, ctx, availableWidth, availableWidth)
	horizEdges := margin.Left + margin.Right + border.Left + border.Right + padding.Left + padding.Right
	vertEdges := border.Top + border.Bottom + padding.Top + padding.Bottom

	outerWidth := availableWidth
	if !st.Width.IsAuto() {
		ctxW := ctx
		ctxW.PercentBasisPx = availableWidth
		outerWidth = st.Width.Resolve(ctxW) + horizEdges
	}
	contentWidth := math.Max(0, outerWidth-horizEdges)
	widthExplicit := !st.Width.IsAuto()

	hasKnownHeight := !st.Height.IsAuto()
	var contentHeight float64
	if hasKnownHeight {
		ctxH := ctx
		ctxH.PercentBasisPx = availableHeight
		contentHeight = st.Height.Resolve(ctxH)
	}

	// spec.md §9 [ADD] supplemented feature (original's aspect_ratio.rs):
	// when exactly one axis is explicit and aspect-ratio isn't auto, derive
	// the other axis from the ratio before dispatching to measure/flex/
	// block sizing, so a bare-width-auto-height (or vice versa) image-like
	// node gets a ratio-correct cross size instead of falling through to
	// its measure callback's own intrinsic size for that axis.
	if !st.AspectRatio.Auto && st.AspectRatio.Ratio > 0 {
		switch {
		case widthExplicit && !hasKnownHeight:
			contentHeight = contentWidth / st.AspectRatio.Ratio
			hasKnownHeight = true
		case hasKnownHeight && !widthExplicit:
			contentWidth = contentHeight * st.AspectRatio.Ratio
			outerWidth = contentWidth + horizEdges
			widthExplicit = true
		}
	}

	switch {
	case n.Measure != nil:
		known := layout.Size{Width: contentWidth, Height: contentHeight}
		availW := layout.Definite(contentWidth)
		availH := layout.AvailableSpace{Kind: layout.SpaceMaxContent}
		if hasKnownHeight {
			availH = layout.Definite(contentHeight)
		}
		measured := n.Measure(known, true, hasKnownHeight, availW, availH)
		if !hasKnownHeight {
			contentHeight = measured.Height
		}
		if !widthExplicit {
			contentWidth = measured.Width
			outerWidth = contentWidth + horizEdges
		}
	case st.Display == css.DisplayFlex:
		h := s.layoutFlexChildren(n, contentWidth, contentHeight, hasKnownHeight, border, padding)
		if !hasKnownHeight {
			contentHeight = h
		}
	default:
		h := s.layoutBlockChildren(n, contentWidth)
		if !hasKnownHeight {
			contentHeight = h
		}
	}

	n.Layout.Width = contentWidth + border.Left + border.Right + padding.Left + padding.Right
	n.Layout.Height = contentHeight + vertEdges

	return box{
		Margin: margin, Border: border, Padding: padding,
		Width:        n.Layout.Width + margin.Left + margin.Right,
		Height:       n.Layout.Height + margin.Top + margin.Bottom,
		ContentWidth: contentWidth, ContentHeight: contentHeight,
	}
}

// layoutBlockChildren stacks children vertically in normal flow, each
// occupying the full content width, and returns the content height
// consumed (spec.md §4.3: ordinary block layout for the solver's branch
// nodes).
func (s *Solver) layoutBlockChildren(n *layout.RenderNode, contentWidth float64) float64 {
	y := 0.0
	for _, child := range n.Children {
		if child.Style.Display == css.DisplayNone {
			continue
		}
		cb := s.layoutBox(child, contentWidth, 0)
		child.Layout.X = cb.Margin.Left
		child.Layout.Y = y + cb.Margin.Top
		y += cb.Height
	}
	return y
}

// flexItem is one flex line member's resolved sizing state.
type flexItem struct {
	node      *layout.RenderNode
	grow      float64
	shrink    float64
	hyp       float64 // hypothetical outer main size before grow/shrink
	box       box
	mainOuter float64 // outer main size after grow/shrink distribution
}

// layoutFlexChildren implements single-axis flexbox distribution (spec.md
// §4.1 flex properties): items are measured for their hypothetical main
// size, partitioned into lines when flex-wrap allows, grown or shrunk to
// consume the line's free space proportionally to flex-grow/flex-shrink,
// positioned per justify-content along the main axis and align-items along
// the cross axis, honoring row-gap/column-gap.
func (s *Solver) layoutFlexChildren(n *layout.RenderNode, contentWidth, knownHeight float64, hasKnownHeight bool, border, padding css.Sides[float64]) float64 {
	st := n.Style
	isRow := st.FlexDirection == css.FlexRow || st.FlexDirection == css.FlexRowReverse
	isReverse := st.FlexDirection == css.FlexRowReverse || st.FlexDirection == css.FlexColumnReverse
	wrap := st.FlexWrap != css.FlexNoWrap

	ctx := css.ResolveContext{FontSizePx: st.FontSize, RootFontSizePx: st.FontSize, PercentBasisPx: contentWidth}
	rowGap := st.Gap.X.Resolve(ctx)
	colGap := st.Gap.Y.Resolve(ctx)
	mainGap, crossGap := colGap, rowGap
	if !isRow {
		mainGap, crossGap = rowGap, colGap
	}

	mainSize := contentWidth
	if !isRow {
		if hasKnownHeight {
			mainSize = knownHeight
		} else {
			mainSize = math.MaxFloat64
		}
	}

	var items []flexItem
	for _, c := range n.Children {
		if c.Style.Display == css.DisplayNone {
			continue
		}
		cb := s.layoutBox(c, contentWidth, knownHeight)
		items = append(items, flexItem{
			node:   c,
			grow:   c.Style.FlexGrow.Value,
			shrink: c.Style.FlexShrink.Value,
			hyp:    outerMainSize(cb, isRow),
			box:    cb,
		})
	}

	lines := partitionLines(items, mainSize, mainGap, wrap)

	crossPos := 0.0
	maxLineMain := 0.0
	for _, line := range lines {
		resolveMainAxis(line, mainSize, mainGap)

		lineCross := 0.0
		for i := range line {
			if c := outerCrossSize(line[i].box, isRow); c > lineCross {
				lineCross = c
			}
		}

		total := 0.0
		for i := range line {
			total += line[i].mainOuter
		}
		total += mainGap * float64(len(line)-1)
		free := mainSize
		if mainSize == math.MaxFloat64 {
			free = total
		}
		pos, gapExtra := justifyOffsets(st.JustifyContent, free-total, len(line))

		order := make([]int, len(line))
		for i := range order {
			order[i] = i
		}
		if isReverse {
			for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
				order[i], order[j] = order[j], order[i]
			}
		}

		for k, idx := range order {
			it := line[idx]
			crossOffset := alignCrossOffset(it.box, isRow, lineCross, st.AlignItems)
			if isRow {
				it.node.Layout.X = pos
				it.node.Layout.Y = crossPos + crossOffset
				it.node.Layout.Width = it.mainOuter - it.box.Margin.Left - it.box.Margin.Right
			} else {
				it.node.Layout.Y = pos
				it.node.Layout.X = crossPos + crossOffset
				it.node.Layout.Height = it.mainOuter - it.box.Margin.Top - it.box.Margin.Bottom
			}
			pos += it.mainOuter
			if k < len(order)-1 {
				pos += mainGap + gapExtra
			}
		}
		if pos > maxLineMain {
			maxLineMain = pos
		}
		crossPos += lineCross + crossGap
	}
	if len(lines) > 0 {
		crossPos -= crossGap
	}

	if hasKnownHeight {
		return knownHeight
	}
	if isRow {
		return crossPos
	}
	return maxLineMain
}

func valueOrDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// partitionLines splits items into flex lines, starting a new line whenever
// flex-wrap is set and the running main size would exceed mainSize.
func partitionLines(items []flexItem, mainSize, gap float64, wrap bool) [][]flexItem {
	if len(items) == 0 {
		return nil
	}
	if !wrap || mainSize == math.MaxFloat64 {
		return [][]flexItem{items}
	}
	var lines [][]flexItem
	var cur []flexItem
	running := 0.0
	for _, it := range items {
		add := it.hyp
		if len(cur) > 0 {
			add += gap
		}
		if len(cur) > 0 && running+add > mainSize {
			lines = append(lines, cur)
			cur = nil
			running = 0
			add = it.hyp
		}
		cur = append(cur, it)
		running += add
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// resolveMainAxis grows or shrinks each item's hypothetical main size to
// absorb the line's free space proportionally to flex-grow (when positive)
// or flex-shrink*basis (when negative), a single-pass approximation of CSS
// Flexbox §9.7 without the resolved-list min/max re-clamping loop.
func resolveMainAxis(line []flexItem, mainSize, gap float64) {
	total := 0.0
	for i := range line {
		total += line[i].hyp
	}
	total += gap * float64(len(line)-1)

	free := 0.0
	if mainSize != math.MaxFloat64 {
		free = mainSize - total
	}

	if free > 0 {
		totalGrow := 0.0
		for i := range line {
			totalGrow += line[i].grow
		}
		for i := range line {
			extra := 0.0
			if totalGrow > 0 {
				extra = free * line[i].grow / totalGrow
			}
			line[i].mainOuter = line[i].hyp + extra
		}
	} else if free < 0 {
		totalShrink := 0.0
		for i := range line {
			totalShrink += line[i].shrink * line[i].hyp
		}
		for i := range line {
			reduce := 0.0
			if totalShrink > 0 {
				reduce = -free * (line[i].shrink * line[i].hyp) / totalShrink
			}
			line[i].mainOuter = math.Max(0, line[i].hyp-reduce)
		}
	} else {
		for i := range line {
			line[i].mainOuter = line[i].hyp
		}
	}
}

// justifyOffsets returns the starting main-axis position and the extra gap
// to insert between each pair of items, implementing justify-content's
// distribution of the line's remaining free space.
func justifyOffsets(justify css.JustifyContent, free float64, n int) (start, extraGap float64) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch justify {
	case css.JustifyEnd:
		return free, 0
	case css.JustifyCenter:
		return free / 2, 0
	case css.JustifySpaceBetween:
		if n > 1 {
			return 0, free / float64(n-1)
		}
		return 0, 0
	case css.JustifySpaceAround:
		gap := free / float64(n)
		return gap / 2, gap
	case css.JustifySpaceEvenly:
		gap := free / float64(n+1)
		return gap, gap
	default:
		return 0, 0
	}
}

func alignCrossOffset(b box, isRow bool, lineCross float64, align css.AlignItems) float64 {
	itemCross := outerCrossSize(b, isRow)
	switch align {
	case css.AlignEnd:
		return lineCross - itemCross
	case css.AlignCenter:
		return (lineCross - itemCross) / 2
	default:
		return 0
	}
}

// resolveBorderWidths resolves a node's per-side border widths to pixels,
// treating a `none` side as occupying zero box-model space (a simplified
// border-conflict resolution, see DESIGN.md).
func resolveBorderWidths(sides css.Sides[css.BorderSide], ctx css.ResolveContext, widthBasis float64) css.Sides[float64] {
	resolve := func(side css.BorderSide) float64 {
		if side.Style == css.BorderNone {
			return 0
		}
		c := ctx
		c.PercentBasisPx = widthBasis
		return side.Width.Resolve(c)
	}
	return css.Sides[float64]{
		Top:    resolve(sides.Top),
		Right:  resolve(sides.Right),
		Bottom: resolve(sides.Bottom),
		Left:   resolve(sides.Left),
	}
}
