package engine

import (
	"golang.org/x/sync/errgroup"

	"rasterkit/pkg/anim"
	"rasterkit/pkg/errs"
	"rasterkit/pkg/node"
)

// AnimationInput is one frame of an animated render request: the node tree
// to paint for that frame and the duration it holds the screen.
type AnimationInput struct {
	Root       *node.Node
	DurationMs uint32
}

// RenderAnimation renders every frame independently (the renderer is
// data-parallel across frames: spec.md §5 "opt-in worker pool ... per-frame
// animation encoding") and returns the decoded RGBA frames in input order.
// Frame N+1's tree does not depend on frame N's pixels, so this fans the
// frames out across an errgroup instead of rendering them serially.
func RenderAnimation(frames []AnimationInput, ctx Context) ([]anim.Frame, error) {
	out := make([]anim.Frame, len(frames))
	var g errgroup.Group
	for i, f := range frames {
		i, f := i, f
		g.Go(func() error {
			img, err := Render(f.Root, ctx)
			if err != nil {
				return err
			}
			out[i] = anim.Frame{Image: img, DurationMs: f.DurationMs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &errs.RenderError{Stage: "paint", Err: err}
	}
	return out, nil
}

// EncodeAnimation muxes already-rendered frames into either an animated
// WebP or an APNG container (spec.md §4.6, §6).
func EncodeAnimation(frames []anim.Frame, format AnimationFormat, loopCount uint16) ([]byte, error) {
	switch format {
	case AnimationWebP:
		return anim.EncodeAnimatedWebP(frames, loopCount), nil
	case AnimationAPNG:
		data, err := anim.EncodeAnimatedPNG(frames)
		if err != nil {
			return nil, &errs.EncodeError{Format: "apng", Err: err}
		}
		return data, nil
	default:
		return nil, &errs.EncodeError{Format: "unknown", Err: errUnknownAnimationFormat}
	}
}

// AnimationFormat selects an animated container.
type AnimationFormat int

const (
	AnimationWebP AnimationFormat = iota
	AnimationAPNG
)

var errUnknownAnimationFormat = animFormatErr("unsupported animation format")

type animFormatErr string

func (e animFormatErr) Error() string { return string(e) }
