package anim

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"testing"
)

func TestEncodeAnimatedPNGSignatureAndChunks(t *testing.T) {
	frames := []Frame{
		{Image: solidImage(3, 3, color.RGBA{R: 200, A: 255}), DurationMs: 400},
		{Image: solidImage(3, 3, color.RGBA{B: 200, A: 255}), DurationMs: 150},
		{Image: solidImage(3, 3, color.RGBA{G: 200, A: 255}), DurationMs: 900},
	}
	data, err := EncodeAnimatedPNG(frames)
	if err != nil {
		t.Fatalf("EncodeAnimatedPNG returned an error: %v", err)
	}
	if !bytes.HasPrefix(data, pngSignature) {
		t.Fatalf("expected output to start with the PNG signature")
	}

	chunks := parsePNGChunks(data)
	var acTL, ihdrSeen bool
	var fcTLCount, idatCount, fdatCount int
	for _, c := range chunks {
		switch c.typ {
		case "IHDR":
			ihdrSeen = true
		case "acTL":
			acTL = true
			numFrames := binary.BigEndian.Uint32(c.data[0:4])
			if numFrames != uint32(len(frames)) {
				t.Fatalf("acTL num_frames = %d, want %d", numFrames, len(frames))
			}
		case "fcTL":
			fcTLCount++
			delayNum := binary.BigEndian.Uint16(c.data[20:22])
			delayDen := binary.BigEndian.Uint16(c.data[22:24])
			if delayDen != 1000 {
				t.Fatalf("expected a 1000 timebase, got denominator %d", delayDen)
			}
			if delayNum != 150 {
				t.Fatalf("expected every fcTL to use the minimum duration (150ms), got %d", delayNum)
			}
		case "IDAT":
			idatCount++
		case "fdAT":
			fdatCount++
		}
	}
	if !ihdrSeen || !acTL {
		t.Fatalf("expected IHDR and acTL chunks in the output")
	}
	if fcTLCount != len(frames) {
		t.Fatalf("expected %d fcTL chunks, got %d", len(frames), fcTLCount)
	}
	if idatCount != 1 {
		t.Fatalf("expected exactly one IDAT chunk (frame 0), got %d", idatCount)
	}
	if fdatCount != len(frames)-1 {
		t.Fatalf("expected %d fdAT chunks, got %d", len(frames)-1, fdatCount)
	}
}
