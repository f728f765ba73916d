package anim

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image/png"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type pngChunk struct {
	typ  string
	data []byte
}

// parsePNGChunks splits a standard PNG byte stream (as image/png.Encode
// produces) into its length-prefixed chunks, discarding the leading
// signature.
func parsePNGChunks(data []byte) []pngChunk {
	var chunks []pngChunk
	p := data[len(pngSignature):]
	for len(p) >= 8 {
		n := binary.BigEndian.Uint32(p[0:4])
		typ := string(p[4:8])
		body := p[8 : 8+n]
		chunks = append(chunks, pngChunk{typ: typ, data: body})
		p = p[8+n+4:] // skip data + crc
	}
	return chunks
}

// writePNGChunk appends a length-prefixed, CRC-terminated chunk to buf.
func writePNGChunk(buf *bytes.Buffer, typ string, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf.Write(lenBuf[:])
	crcInput := append([]byte(typ), data...)
	buf.Write(crcInput[:4])
	buf.Write(crcInput[4:])
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc32.ChecksumIEEE(crcInput))
	buf.Write(crcBuf[:])
}

// EncodeAnimatedPNG muxes a sequence of frames into an APNG stream: a
// standard IHDR, an acTL frame count, then one fcTL (+ IDAT or fdAT) pair
// per frame (spec.md §6, grounded on write.rs's encode_animated_png). APNG
// here carries a single delay for the whole stream, the minimum duration
// across all frames, matching the original's "one delay per stream"
// limitation; the delay is quantized against a 1000 timebase so the
// numerator is directly in milliseconds.
func EncodeAnimatedPNG(frames []Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, nil
	}

	minDur := frames[0].DurationMs
	for _, f := range frames[1:] {
		if f.DurationMs < minDur {
			minDur = f.DurationMs
		}
	}
	delayNum := minDur
	if delayNum > 0xffff {
		delayNum = 0xffff
	}

	var out bytes.Buffer
	out.Write(pngSignature)

	var ihdr []byte
	var seq uint32

	for i, f := range frames {
		var frameBuf bytes.Buffer
		if err := png.Encode(&frameBuf, f.Image); err != nil {
			return nil, err
		}
		chunks := parsePNGChunks(frameBuf.Bytes())

		var idat []byte
		for _, c := range chunks {
			switch c.typ {
			case "IHDR":
				if i == 0 {
					ihdr = c.data
				}
			case "IDAT":
				idat = append(idat, c.data...)
			}
		}

		if i == 0 {
			writePNGChunk(&out, "IHDR", ihdr)

			var actl [8]byte
			binary.BigEndian.PutUint32(actl[0:4], uint32(len(frames)))
			binary.BigEndian.PutUint32(actl[4:8], 0) // num_plays = 0: loop forever
			writePNGChunk(&out, "acTL", actl[:])
		}

		b := f.Image.Bounds()
		var fctl [26]byte
		binary.BigEndian.PutUint32(fctl[0:4], seq)
		binary.BigEndian.PutUint32(fctl[4:8], uint32(b.Dx()))
		binary.BigEndian.PutUint32(fctl[8:12], uint32(b.Dy()))
		binary.BigEndian.PutUint32(fctl[12:16], 0) // x_offset
		binary.BigEndian.PutUint32(fctl[16:20], 0) // y_offset
		binary.BigEndian.PutUint16(fctl[20:22], uint16(delayNum))
		binary.BigEndian.PutUint16(fctl[22:24], 1000)
		fctl[24] = 0 // dispose_op: none
		fctl[25] = 0 // blend_op: source
		writePNGChunk(&out, "fcTL", fctl[:])
		seq++

		if i == 0 {
			writePNGChunk(&out, "IDAT", idat)
		} else {
			fdat := make([]byte, 4+len(idat))
			binary.BigEndian.PutUint32(fdat[0:4], seq)
			copy(fdat[4:], idat)
			writePNGChunk(&out, "fdAT", fdat)
			seq++
		}
	}

	writePNGChunk(&out, "IEND", nil)
	return out.Bytes(), nil
}
