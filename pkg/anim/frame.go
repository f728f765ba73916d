// Package anim builds animated WebP and APNG containers from a sequence of
// rendered frames (spec.md §4.6, grounded on original_source/takumi/src/
// rendering/write.rs's encode_animated_webp/encode_animated_png).
package anim

import "image"

// Frame is one rendered frame of an animation: its pixels and the duration
// it holds the screen before the next frame replaces it.
type Frame struct {
	Image      *image.RGBA
	DurationMs uint32
}
