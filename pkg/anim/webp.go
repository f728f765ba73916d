package anim

import (
	"encoding/binary"
	"image"
)

// riffChunk wraps payload in a RIFF sub-chunk: a 4-byte fourcc, a 4-byte
// little-endian length, the payload, and a zero pad byte if the payload
// length is odd (every RIFF chunk is word-aligned).
func riffChunk(fourcc string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, fourcc...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	out = append(out, lenBuf[:]...)
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

func u24le(v uint32) [3]byte {
	return [3]byte{byte(v), byte(v >> 8), byte(v >> 16)}
}

func riffFile(chunks ...[]byte) []byte {
	var body []byte
	body = append(body, "WEBP"...)
	for _, c := range chunks {
		body = append(body, c...)
	}
	return riffChunk("RIFF", body)
}

// EncodeWebP encodes a single still frame as a lossless WebP file (spec.md
// §6, grounded on write.rs's write_image WebP branch: the lossless payload
// with no container-level animation surgery needed for the still case).
func EncodeWebP(img *image.RGBA) []byte {
	payload := encodeVP8L(img)
	return riffFile(riffChunk("VP8L", payload))
}

// EncodeAnimatedWebP muxes a sequence of frames into an animated WebP:
// VP8X (animation+alpha flags, canvas size), ANIM (background color, loop
// count), then one ANMF chunk per frame wrapping that frame's lossless VP8L
// payload (grounded on write.rs's encode_animated_webp byte layout).
func EncodeAnimatedWebP(frames []Frame, loopCount uint16) []byte {
	if len(frames) == 0 {
		return nil
	}
	b := frames[0].Image.Bounds()
	w, h := uint32(b.Dx()), uint32(b.Dy())

	var vp8xPayload [10]byte
	vp8xPayload[0] = (1 << 1) | (1 << 4) // animation | alpha
	wm1, hm1 := u24le(w-1), u24le(h-1)
	copy(vp8xPayload[4:7], wm1[:])
	copy(vp8xPayload[7:10], hm1[:])

	var animPayload [6]byte
	binary.LittleEndian.PutUint16(animPayload[4:6], loopCount)

	chunks := [][]byte{
		riffChunk("VP8X", vp8xPayload[:]),
		riffChunk("ANIM", animPayload[:]),
	}

	for _, f := range frames {
		fb := f.Image.Bounds()
		fw, fh := uint32(fb.Dx()), uint32(fb.Dy())
		dur := f.DurationMs
		if dur > 0xffffff {
			dur = 0xffffff
		}

		var header [16]byte
		x0, y0 := u24le(0), u24le(0)
		fwm1, fhm1 := u24le(fw-1), u24le(fh-1)
		durBytes := u24le(dur)
		copy(header[0:3], x0[:])
		copy(header[3:6], y0[:])
		copy(header[6:9], fwm1[:])
		copy(header[9:12], fhm1[:])
		copy(header[12:15], durBytes[:])
		header[15] = 0 // blending bit 0 (alpha-blend), disposal bit 0 (do not dispose)

		frameChunk := append(header[:], riffChunk("VP8L", encodeVP8L(f.Image))...)
		chunks = append(chunks, riffChunk("ANMF", frameChunk))
	}

	return riffFile(chunks...)
}
