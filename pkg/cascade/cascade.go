// Package cascade computes a node's resolved style from its input style,
// Tailwind tokens, and its parent's already-resolved style (spec.md §4.2).
package cascade

import (
	"go.uber.org/multierr"

	"rasterkit/pkg/css"
	"rasterkit/pkg/node"
)

// Compute resolves n's style against parent (nil at the root, which
// cascades against css.InitialStyle()). Property-level Tailwind/parse
// failures are collected into the returned error via multierr rather than
// aborting the cascade (spec.md §7): a failed property keeps its initial
// value.
func Compute(n *node.Node, parent *css.ComputedStyle, vp css.Viewport) (*css.ComputedStyle, error) {
	base := css.InitialStyle()
	if parent != nil {
		base = inheritedDefaults(parent)
	}

	style := css.Style{}
	if n.Style != nil {
		style = *n.Style
	}

	var warnings error
	if len(n.TW) > 0 {
		if err := css.ApplyTailwindTokens(&style, n.TW, vp); err != nil {
			warnings = multierr.Append(warnings, err)
		}
	}

	computed := resolve(style, base, parent, vp)
	return computed, warnings
}

// inheritedDefaults seeds a fresh ComputedStyle with the subset of
// properties that CSS inherits by default (color, font, text properties),
// leaving box-model properties at their initial values — this becomes the
// "Initial" target for non-inherited properties and the "Inherit" source
// for inherited ones via resolve's parent argument.
func inheritedDefaults(parent *css.ComputedStyle) css.ComputedStyle {
	base := css.InitialStyle()
	base.Color = parent.Color
	base.FontSize = parent.FontSize
	base.FontFamily = parent.FontFamily
	base.FontWeight = parent.FontWeight
	base.FontStyle = parent.FontStyle
	base.LineHeight = parent.LineHeight
	base.TextAlign = parent.TextAlign
	base.WhiteSpace = parent.WhiteSpace
	base.WordBreak = parent.WordBreak
	base.LetterSpacing = parent.LetterSpacing
	return base
}

func resolve(s css.Style, initial css.ComputedStyle, parent *css.ComputedStyle, vp css.Viewport) *css.ComputedStyle {
	p := initial
	if parent != nil {
		p = *parent
	}
	out := &css.ComputedStyle{}

	out.Display = s.Display.Resolve(initial.Display, p.Display)
	out.Position = s.Position.Resolve(initial.Position, p.Position)

	out.Width = s.Width.Resolve(initial.Width, p.Width)
	out.Height = s.Height.Resolve(initial.Height, p.Height)
	out.MinWidth = s.MinWidth.Resolve(initial.MinWidth, p.MinWidth)
	out.MinHeight = s.MinHeight.Resolve(initial.MinHeight, p.MinHeight)
	out.MaxWidth = s.MaxWidth.Resolve(initial.MaxWidth, p.MaxWidth)
	out.MaxHeight = s.MaxHeight.Resolve(initial.MaxHeight, p.MaxHeight)
	out.AspectRatio = s.AspectRatio.Resolve(css.AspectRatio{Auto: true}, p.AspectRatio)

	out.Margin = s.Margin.Resolve(initial.Margin, p.Margin)
	out.Padding = s.Padding.Resolve(initial.Padding, p.Padding)
	out.Inset = s.Inset.Resolve(initial.Inset, p.Inset)

	out.FlexDirection = s.FlexDirection.Resolve(initial.FlexDirection, p.FlexDirection)
	out.FlexWrap = s.FlexWrap.Resolve(initial.FlexWrap, p.FlexWrap)
	out.JustifyContent = s.JustifyContent.Resolve(initial.JustifyContent, p.JustifyContent)
	out.AlignItems = s.AlignItems.Resolve(initial.AlignItems, p.AlignItems)
	out.FlexGrow = s.FlexGrow.Resolve(initial.FlexGrow, p.FlexGrow)
	out.FlexShrink = s.FlexShrink.Resolve(initial.FlexShrink, p.FlexShrink)
	out.FlexBasis = s.FlexBasis.Resolve(initial.FlexBasis, p.FlexBasis)
	out.Gap = s.Gap.Resolve(initial.Gap, p.Gap)

	out.GridTemplateColumns = s.GridTemplateColumns.Resolve(initial.GridTemplateColumns, p.GridTemplateColumns)
	out.GridTemplateRows = s.GridTemplateRows.Resolve(initial.GridTemplateRows, p.GridTemplateRows)
	out.GridAutoFlow = s.GridAutoFlow.Resolve(initial.GridAutoFlow, p.GridAutoFlow)

	out.BackgroundColor = s.BackgroundColor.Resolve(initial.BackgroundColor, p.BackgroundColor)
	out.BackgroundLayers = resolveBackgroundLayers(s, initial, p)

	out.Border = s.Border.Resolve(initial.Border, p.Border)
	out.BorderRadius = s.BorderRadius.Resolve(initial.BorderRadius, p.BorderRadius)

	out.Transform = s.Transform.Resolve(initial.Transform, p.Transform)
	out.TransformOrigin = s.TransformOrigin.Resolve(
		css.TransformOrigin{X: css.LengthUnit{Kind: css.LengthPercent, Value: 50}, Y: css.LengthUnit{Kind: css.LengthPercent, Value: 50}},
		p.TransformOrigin,
	)

	out.Overflow = s.Overflow.Resolve(initial.Overflow, p.Overflow)
	out.ClipPath = s.ClipPath.Resolve(initial.ClipPath, p.ClipPath)
	out.Filter = s.Filter.Resolve(initial.Filter, p.Filter)
	out.Opacity = s.Opacity.Resolve(initial.Opacity, p.Opacity)

	// Color and font-size are inherited properties; resolve font-size
	// eagerly here (in pixels) because em/rem/line-height depend on it
	// at layout time (spec.md §4.2).
	out.Color = s.Color.Resolve(initial.Color, p.Color)
	fontSizeLen := s.FontSize.Resolve(css.LengthUnit{Kind: css.LengthPx, Value: p.FontSize}, css.LengthUnit{Kind: css.LengthPx, Value: p.FontSize})
	out.FontSize = fontSizeLen.Resolve(css.ResolveContext{
		FontSizePx:     p.FontSize,
		RootFontSizePx: vp.RootFontSizePx,
		ViewportWidth:  vp.Width,
		ViewportHeight: vp.Height,
		PercentBasisPx: p.FontSize,
	})
	out.FontFamily = s.FontFamily.Resolve(initial.FontFamily, p.FontFamily)
	out.FontWeight = s.FontWeight.Resolve(initial.FontWeight, p.FontWeight)
	out.FontStyle = s.FontStyle.Resolve(initial.FontStyle, p.FontStyle)
	out.LineHeight = s.LineHeight.Resolve(initial.LineHeight, p.LineHeight)

	out.TextAlign = s.TextAlign.Resolve(initial.TextAlign, p.TextAlign)
	out.WhiteSpace = s.WhiteSpace.Resolve(initial.WhiteSpace, p.WhiteSpace)
	out.WordBreak = s.WordBreak.Resolve(initial.WordBreak, p.WordBreak)
	out.TextTransform = s.TextTransform.Resolve(initial.TextTransform, p.TextTransform)
	out.TextDecoration = s.TextDecoration.Resolve(initial.TextDecoration, p.TextDecoration)
	out.LetterSpacing = s.LetterSpacing.Resolve(initial.LetterSpacing, p.LetterSpacing)
	out.LineClamp = s.LineClamp.Resolve(initial.LineClamp, p.LineClamp)
	out.TextOverflow = s.TextOverflow.Resolve(initial.TextOverflow, p.TextOverflow)

	if out.TextDecoration.Color == (css.Color{}) {
		// currentColor-style default: an unset decoration color tracks
		// the resolved text color.
		out.TextDecoration.Color = out.Color
	}

	return out
}

// resolveBackgroundLayers resolves the six background-* longhands
// independently, then zips them into BackgroundLayer values via
// css.ParseBackgroundLayers. None of these properties inherit in CSS, so
// an explicit `inherit` keyword resolves against an empty list rather than
// decomposing the parent's already-zipped BackgroundLayers back apart.
func resolveBackgroundLayers(s css.Style, initial, p css.ComputedStyle) []css.BackgroundLayer {
	var empty []css.BackgroundImage
	images := s.BackgroundImage.Resolve(empty, empty)
	if len(images) == 0 {
		return nil
	}
	positions := s.BackgroundPosition.Resolve(nil, nil)
	sizes := s.BackgroundSize.Resolve(nil, nil)
	repeats := s.BackgroundRepeat.Resolve(nil, nil)
	origins := s.BackgroundOrigin.Resolve(nil, nil)
	clips := s.BackgroundClip.Resolve(nil, nil)
	repeatX, repeatY := css.SplitRepeatPairs(repeats)
	return css.ParseBackgroundLayers(images, positions, sizes, repeatX, repeatY, origins, clips)
}
