package anim

import "image"

// encodeVP8L produces a complete lossless VP8L bitstream (the signature
// byte through the final image data bit) for one RGBA frame. It uses no
// transforms, no color cache, and no LZ77 back-references: every pixel's
// four channels are coded as a literal symbol through its own Huffman tree.
// This keeps the encoder tractable at the cost of the compression ratio a
// full libwebp-style encoder gets from pixel prediction and backward
// references (see DESIGN.md).
func encodeVP8L(img *image.RGBA) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	greenFreq := make([]uint32, 256+24)
	redFreq := make([]uint32, 256)
	blueFreq := make([]uint32, 256)
	alphaFreq := make([]uint32, 256)
	distFreq := make([]uint32, 40)

	alphaUsed := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			greenFreq[p.G]++
			redFreq[p.R]++
			blueFreq[p.B]++
			alphaFreq[p.A]++
			if p.A != 255 {
				alphaUsed = true
			}
		}
	}

	bw := newBitWriter()
	bw.putBits(0x2F, 8)
	bw.putBits(uint32(w-1), 14)
	bw.putBits(uint32(h-1), 14)
	if alphaUsed {
		bw.putBits(1, 1)
	} else {
		bw.putBits(0, 1)
	}
	bw.putBits(0, 3) // version_number

	bw.putBits(0, 1) // transform_present = 0
	bw.putBits(0, 1) // color_cache_present = 0
	bw.putBits(0, 1) // huffman_image (meta-huffman) present = 0

	greenLen := buildLengths(greenFreq, 15)
	redLen := buildLengths(redFreq, 15)
	blueLen := buildLengths(blueFreq, 15)
	alphaLen := buildLengths(alphaFreq, 15)
	distFreq[0] = 1 // tree is never exercised; give it a single trivial code
	distLen := buildLengths(distFreq, 15)

	greenCodes := writeHuffmanCode(bw, greenLen)
	redCodes := writeHuffmanCode(bw, redLen)
	blueCodes := writeHuffmanCode(bw, blueLen)
	alphaCodes := writeHuffmanCode(bw, alphaLen)
	writeHuffmanCode(bw, distLen)

	// A tree with a single used symbol is read back as a zero-bit code, so
	// that symbol's pixels are written with no bits for that channel.
	for _, lens := range [][]int{greenLen, redLen, blueLen, alphaLen} {
		n, last := 0, 0
		for s, l := range lens {
			if l > 0 {
				n, last = n+1, s
			}
		}
		if n == 1 {
			lens[last] = 0
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			bw.putCode(greenCodes[p.G], greenLen[p.G])
			bw.putCode(redCodes[p.R], redLen[p.R])
			bw.putCode(blueCodes[p.B], blueLen[p.B])
			bw.putCode(alphaCodes[p.A], alphaLen[p.A])
		}
	}

	return bw.bytes()
}
