package layout

import (
	"rasterkit/pkg/cascade"
	"rasterkit/pkg/css"
	"rasterkit/pkg/images"
	"rasterkit/pkg/inline"
	"rasterkit/pkg/node"
)

// Deps bundles the collaborators tree assembly needs beyond the node tree
// itself: the text shaper for inline measurement and the image store for
// intrinsic replaced-element sizing (spec.md §4.3 step 5, §5 "read-only
// during render").
type Deps struct {
	Shaper   inline.Shaper
	Images   *images.Snapshot
	Viewport css.Viewport
}

// defaultReplacedWidth/Height is the CSS UA-default box for a replaced
// element with no intrinsic size and no declared dimensions (e.g. an
// unparsed inline SVG fragment), matching the historical 300x150 default.
const (
	defaultReplacedWidth  = 300.0
	defaultReplacedHeight = 150.0
)

// Assemble converts n into a RenderNode tree ready for a Solver, computing
// cascaded style along the way and segmenting inline runs into anonymous
// block wrappers (spec.md §4.3 steps 1-3). parent is the already-resolved
// inherited style of n's ancestor (pass css.InitialStyle() values via
// cascade.Compute(n, nil, vp) for the root).
//
// Nested inline containers are assumed to hold only inline-level children;
// a block-level node encountered beneath a display:inline ancestor is not
// supported by this assembler (see DESIGN.md).
func Assemble(n *node.Node, parent *css.ComputedStyle, deps Deps) (*RenderNode, error) {
	style, err := cascade.Compute(n, parent, deps.Viewport)
	if err != nil {
		return nil, err
	}

	switch n.Kind {
	case node.KindImage, node.KindSvg:
		rn := &RenderNode{Source: n, Style: style}
		rn.Measure = atomicMeasureFunc(n, style, deps)
		return rn, nil
	case node.KindText:
		rn := &RenderNode{Source: n, Style: style, TextAlign: style.TextAlign}
		flat := []flatItem{{Node: n, Style: style}}
		rn.Measure = inlineMeasureFunc(rn, flat, style, deps)
		return rn, nil
	default:
		return assembleContainer(n, style, deps)
	}
}

// assembleContainer implements spec.md §4.3 step 2: walk children in
// declared order, segmenting consecutive inline-level children into
// anonymous block wrappers and recursing into block-level children as
// their own RenderNode.
func assembleContainer(n *node.Node, style *css.ComputedStyle, deps Deps) (*RenderNode, error) {
	rn := &RenderNode{Source: n, Style: style}

	var run []*node.Node
	flushRun := func() {
		if len(run) == 0 {
			return
		}
		anon := &RenderNode{
			Style:            anonymousBlockStyle(style),
			IsAnonymousBlock: true,
			TextAlign:        style.TextAlign,
		}
		flat := flattenAll(run, style, deps)
		anon.Measure = inlineMeasureFunc(anon, flat, style, deps)
		rn.Children = append(rn.Children, anon)
		run = nil
	}

	for _, child := range n.Children {
		childStyle, err := cascade.Compute(child, style, deps.Viewport)
		if err != nil {
			return nil, err
		}
		if child.IsDisplayInline(childStyle) {
			run = append(run, child)
			continue
		}
		flushRun()
		childNode, err := Assemble(child, style, deps)
		if err != nil {
			return nil, err
		}
		rn.Children = append(rn.Children, childNode)
	}
	flushRun()

	return rn, nil
}

// anonymousBlockStyle carries the parent's inherited (text/font) properties
// while resetting box-model properties to their initial values, so the
// wrapper paints no background or border of its own (spec.md §4.3 step 2).
func anonymousBlockStyle(parent *css.ComputedStyle) *css.ComputedStyle {
	reset := css.InitialStyle()
	reset.Color = parent.Color
	reset.FontSize = parent.FontSize
	reset.FontFamily = parent.FontFamily
	reset.FontWeight = parent.FontWeight
	reset.FontStyle = parent.FontStyle
	reset.LineHeight = parent.LineHeight
	reset.TextAlign = parent.TextAlign
	reset.WhiteSpace = parent.WhiteSpace
	reset.WordBreak = parent.WordBreak
	reset.LetterSpacing = parent.LetterSpacing
	reset.LineClamp = parent.LineClamp
	reset.TextOverflow = parent.TextOverflow
	reset.Display = css.DisplayBlock
	return &reset
}

// flatItem is one leaf of a flattened inline run: a text/image/svg node
// paired with its own cascaded style.
type flatItem struct {
	Node  *node.Node
	Style *css.ComputedStyle
}

// flattenAll flattens a sequence of inline-level siblings (and, for
// display:inline containers among them, their descendants) into a flat
// item list (spec.md §4.3 step 3: "absorbed into its ancestor's inline
// tree").
func flattenAll(siblings []*node.Node, parent *css.ComputedStyle, deps Deps) []flatItem {
	var out []flatItem
	for _, s := range siblings {
		flatten(s, parent, deps, &out)
	}
	return out
}

func flatten(n *node.Node, parent *css.ComputedStyle, deps Deps, out *[]flatItem) {
	style, err := cascade.Compute(n, parent, deps.Viewport)
	if err != nil {
		return
	}
	switch n.Kind {
	case node.KindContainer:
		for _, c := range n.Children {
			flatten(c, style, deps, out)
		}
	default:
		*out = append(*out, flatItem{Node: n, Style: style})
	}
}

// inlineMeasureFunc returns a MeasureFunc that rebuilds and line-breaks the
// inline run on each call, since the available width is only known at
// solver-measure time (spec.md §4.4 step 1), caching the resulting lines on
// rn for paint to draw without re-shaping (spec.md §4.5 "paint each line's
// glyph runs").
func inlineMeasureFunc(rn *RenderNode, flat []flatItem, containerStyle *css.ComputedStyle, deps Deps) MeasureFunc {
	items := make([]inline.SourceItem, len(flat))
	for i, f := range flat {
		items[i] = inline.SourceItem{Node: f.Node, Style: f.Style}
	}

	return func(known Size, hasKnownWidth, hasKnownHeight bool, availW, availH AvailableSpace) Size {
		width := resolveAvailWidth(hasKnownWidth, known.Width, availW)
		measureAtomic := func(n *node.Node, style *css.ComputedStyle, availWidth float64) css.SpacePair[float64] {
			return intrinsicSize(n, style, deps, availWidth)
		}
		run := inline.Build(items, measureAtomic, width)
		size, result := inline.Measure(run, deps.Shaper, width, containerStyle.LineClamp, known.Height, hasKnownHeight, containerStyle.TextAlign)
		rn.Lines = result.Lines
		return Size{Width: size.X, Height: size.Y}
	}
}

// atomicMeasureFunc returns a MeasureFunc for a block-level (non-absorbed)
// image/svg node: its intrinsic size, honoring any declared width/height
// (spec.md §4.3 step 5 "atomic node with measure").
func atomicMeasureFunc(n *node.Node, style *css.ComputedStyle, deps Deps) MeasureFunc {
	return func(known Size, hasKnownWidth, hasKnownHeight bool, availW, availH AvailableSpace) Size {
		width := resolveAvailWidth(hasKnownWidth, known.Width, availW)
		sp := intrinsicSize(n, style, deps, width)
		return Size{Width: sp.X, Height: sp.Y}
	}
}

func resolveAvailWidth(hasKnown bool, known float64, avail AvailableSpace) float64 {
	if hasKnown {
		return known
	}
	switch avail.Kind {
	case SpaceMinContent:
		return 0
	case SpaceMaxContent:
		return 1e9
	default:
		return avail.Value
	}
}

// intrinsicSize resolves a replaced element's (image/svg) box size: declared
// width/height win when present, otherwise the decoded image's natural
// pixel dimensions, falling back to the UA default box for an undecodable
// or unmeasurable source (spec.md §4.3 step 5).
func intrinsicSize(n *node.Node, style *css.ComputedStyle, deps Deps, availW float64) css.SpacePair[float64] {
	naturalW, naturalH := defaultReplacedWidth, defaultReplacedHeight
	if n.Kind == node.KindImage && deps.Images != nil {
		if img, ok := deps.Images.Lookup(n.Src); ok {
			b := img.Bounds()
			naturalW, naturalH = float64(b.Dx()), float64(b.Dy())
		}
	}

	ctx := css.ResolveContext{
		FontSizePx:     style.FontSize,
		RootFontSizePx: style.FontSize,
		PercentBasisPx: availW,
	}
	w, h := naturalW, naturalH
	hasW, hasH := !style.Width.IsAuto(), !style.Height.IsAuto()
	if hasW {
		w = style.Width.Resolve(ctx)
	}
	if hasH {
		h = style.Height.Resolve(ctx)
	}
	if hasW && !hasH && naturalW > 0 {
		h = w * naturalH / naturalW
	} else if hasH && !hasW && naturalH > 0 {
		w = h * naturalW / naturalH
	}
	return css.SpacePair[float64]{X: w, Y: h}
}
