package anim

import "sort"

// kCodeLengthCodeOrder is the fixed symbol permutation the WebP Lossless
// format writes the 19-entry code-length-code-lengths table in; it is used
// on writeHuffmanCode's normal (non-simple) code path.
var kCodeLengthCodeOrder = [19]int{17, 18, 0, 1, 2, 3, 4, 5, 16, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// huffNode is an internal node of the frequency-merge tree used to derive
// code lengths; leaves carry a symbol index, internal nodes carry children.
type huffNode struct {
	freq        uint64
	left, right *huffNode
	symbol      int
	leaf        bool
}

// buildLengths derives a valid (Kraft-bounded) canonical Huffman code length
// for every symbol with a nonzero frequency, by the classic two-smallest
// merge construction, then length-limits the result to maxLen bits so it
// can be transmitted in the bitstream's fixed-width length fields.
func buildLengths(freqs []uint32, maxLen int) []int {
	n := len(freqs)
	lengths := make([]int, n)

	var used []int
	for i, f := range freqs {
		if f > 0 {
			used = append(used, i)
		}
	}
	if len(used) == 0 {
		lengths[0] = 1
		return lengths
	}
	if len(used) == 1 {
		lengths[used[0]] = 1
		return lengths
	}

	nodes := make([]*huffNode, 0, len(used))
	for _, i := range used {
		nodes = append(nodes, &huffNode{freq: uint64(freqs[i]), symbol: i, leaf: true})
	}

	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(a, b int) bool { return nodes[a].freq < nodes[b].freq })
		a, b := nodes[0], nodes[1]
		merged := &huffNode{freq: a.freq + b.freq, left: a, right: b}
		nodes = append(nodes[2:], merged)
	}

	var walk func(n *huffNode, depth int)
	walk = func(n *huffNode, depth int) {
		if n.leaf {
			if depth == 0 {
				depth = 1
			}
			lengths[n.symbol] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(nodes[0], 0)

	limitLengths(lengths, maxLen)
	return lengths
}

// limitLengths clamps any code length above maxLen and repeatedly deepens
// the currently-longest under-limit code until the set again satisfies the
// Kraft inequality, guaranteeing a valid (if no longer strictly optimal)
// prefix code.
func limitLengths(lengths []int, maxLen int) {
	for i, l := range lengths {
		if l > maxLen {
			lengths[i] = maxLen
		}
	}
	total := uint64(1) << uint(maxLen)
	for {
		var kraft uint64
		for _, l := range lengths {
			if l > 0 {
				kraft += uint64(1) << uint(maxLen-l)
			}
		}
		if kraft <= total {
			return
		}
		best := -1
		for i, l := range lengths {
			if l == 0 || l >= maxLen {
				continue
			}
			if best == -1 || lengths[i] > lengths[best] {
				best = i
			}
		}
		if best == -1 {
			return
		}
		lengths[best]++
	}
}

// assignCanonicalCodes derives the canonical (most-significant-bit-first)
// Huffman codes for a set of already-computed code lengths, in the same
// deterministic order a decoder reconstructs them in.
func assignCanonicalCodes(lengths []int) []uint32 {
	maxLen := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen == 0 {
		return make([]uint32, len(lengths))
	}
	blCount := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}
	nextCode := make([]int, maxLen+1)
	code := 0
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}
	codes := make([]uint32, len(lengths))
	for i, l := range lengths {
		if l == 0 {
			continue
		}
		codes[i] = uint32(nextCode[l])
		nextCode[l]++
	}
	return codes
}

// writeHuffmanCode writes one ReadHuffmanCode group in the bitstream's
// "normal" form: always selects the non-simple path, transmits the
// 19-symbol code-length-code-lengths as raw 3-bit fields, then Huffman-codes
// every symbol's length through that meta-code (spec section 5.2.2). It
// never emits repeat codes (16/17/18); every alphabet symbol gets an
// explicit length entry, trading bitstream size for a much smaller encoder.
func writeHuffmanCode(w *bitWriter, lengths []int) []uint32 {
	w.putBits(0, 1) // simple_code = 0: always use the normal path

	codeLenFreqs := make([]uint32, 19)
	for _, l := range lengths {
		codeLenFreqs[l]++ // l==0 counts toward the "unused" code-length symbol too
	}
	codeLenLengths := buildLengths(codeLenFreqs, 7)

	w.putBits(19-4, 4)
	for i := 0; i < 19; i++ {
		w.putBits(uint32(codeLenLengths[kCodeLengthCodeOrder[i]]), 3)
	}

	codeLenCodes := assignCanonicalCodes(codeLenLengths)

	w.putBits(0, 1) // use_length = 0: no max_symbol cutoff, read the full alphabet

	// A code-length code with a single used symbol is read back as a
	// zero-bit code, so the entries are then written with no bits.
	usedCodeLens := 0
	for _, l := range codeLenLengths {
		if l > 0 {
			usedCodeLens++
		}
	}
	if usedCodeLens == 1 {
		return assignCanonicalCodes(lengths)
	}

	for _, l := range lengths {
		w.putCode(codeLenCodes[l], codeLenLengths[l])
	}

	return assignCanonicalCodes(lengths)
}
