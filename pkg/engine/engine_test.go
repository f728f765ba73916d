package engine

import (
	"testing"

	"rasterkit/pkg/css"
	"rasterkit/pkg/images"
	"rasterkit/pkg/inline/ggshaper"
	"rasterkit/pkg/layout/flexsolver"
	"rasterkit/pkg/node"
	"rasterkit/pkg/text"
)

func testContext(w, h float64) Context {
	fonts := text.NewRegistry().Snapshot()
	imgs := images.NewStore().Snapshot()
	return Context{
		Viewport: css.DefaultViewport(w, h),
		Images:   &imgs,
		Fonts:    fonts,
		Shaper:   ggshaper.New(fonts),
		Solver:   flexsolver.New(),
	}
}

func TestRenderProducesCanvasSizedToViewport(t *testing.T) {
	root := &node.Node{
		Kind: node.KindContainer,
		Style: &css.Style{
			BackgroundColor: css.Of(css.Color{R: 10, G: 20, B: 30, A: 255}),
		},
	}
	img, err := Render(root, testContext(100, 50))
	if err != nil {
		t.Fatalf("Render returned an error: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected a 100x50 canvas, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderRejectsInvalidViewport(t *testing.T) {
	root := &node.Node{Kind: node.KindContainer}
	_, err := Render(root, testContext(0, 0))
	if err == nil {
		t.Fatalf("expected an error for a zero-sized viewport")
	}
}

func TestRenderAnimationRendersEveryFrame(t *testing.T) {
	frames := []AnimationInput{
		{Root: &node.Node{Kind: node.KindContainer}, DurationMs: 100},
		{Root: &node.Node{Kind: node.KindContainer}, DurationMs: 200},
	}
	out, err := RenderAnimation(frames, testContext(10, 10))
	if err != nil {
		t.Fatalf("RenderAnimation returned an error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(out))
	}
	if out[0].DurationMs != 100 || out[1].DurationMs != 200 {
		t.Fatalf("frame durations not preserved: %+v", out)
	}
}
