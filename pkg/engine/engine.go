// Package engine assembles pkg/cascade, pkg/layout, and pkg/raster into the
// single Render entry point spec.md §4 describes: node tree in, rasterized
// RGBA image out (grounded on the top-level render() orchestration in
// original_source/takumi).
package engine

import (
	"image"

	"go.uber.org/zap"

	"rasterkit/pkg/css"
	"rasterkit/pkg/errs"
	"rasterkit/pkg/images"
	"rasterkit/pkg/inline"
	"rasterkit/pkg/layout"
	"rasterkit/pkg/node"
	"rasterkit/pkg/raster"
	"rasterkit/pkg/text"
)

// Context bundles the read-only collaborators one render call needs: the
// viewport it renders against, snapshots of the host-managed image and font
// stores, the layout solver to use, and the text shaper those snapshots are
// paired with (spec.md §5 "read-only during render").
type Context struct {
	Viewport css.Viewport
	Images   *images.Snapshot
	Fonts    *text.Snapshot
	Shaper   inline.Shaper
	Solver   layout.Solver
	Log      *zap.Logger
}

func (c Context) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// Render runs the full pipeline against a single node tree: cascade the
// style tree, assemble and solve the layout tree, then paint it onto a
// canvas sized to the viewport (spec.md §4 steps 1-4).
func Render(root *node.Node, ctx Context) (*image.RGBA, error) {
	log := ctx.logger()
	if ctx.Viewport.Width <= 0 || ctx.Viewport.Height <= 0 {
		return nil, &errs.InvalidViewportError{
			Width: int(ctx.Viewport.Width), Height: int(ctx.Viewport.Height),
			Reason: "viewport dimensions must be positive",
		}
	}

	log.Debug("assembling render tree", zap.Float64("width", ctx.Viewport.Width), zap.Float64("height", ctx.Viewport.Height))
	initial := css.InitialStyle()
	tree, err := layout.Assemble(root, &initial, layout.Deps{
		Shaper:   ctx.Shaper,
		Images:   ctx.Images,
		Viewport: ctx.Viewport,
	})
	if err != nil {
		return nil, &errs.RenderError{Stage: "assemble", Err: err}
	}

	log.Debug("solving layout")
	if err := ctx.Solver.Layout(tree, ctx.Viewport.Width, ctx.Viewport.Height); err != nil {
		return nil, &errs.RenderError{Stage: "layout", Err: err}
	}

	log.Debug("painting")
	canvas := raster.Paint(tree, int(ctx.Viewport.Width), int(ctx.Viewport.Height), raster.Deps{
		Images: ctx.Images,
		Fonts:  ctx.Fonts,
		Shaper: ctx.Shaper,
	})
	return canvas.Buf, nil
}
