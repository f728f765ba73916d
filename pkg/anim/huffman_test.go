package anim

import "testing"

// kraftSum reports sum(2^-len) over every symbol with a nonzero length, the
// quantity a valid prefix code must keep at or below 1.
func kraftSum(lengths []int) float64 {
	var sum float64
	for _, l := range lengths {
		if l > 0 {
			sum += 1.0 / float64(int(1)<<uint(l))
		}
	}
	return sum
}

func TestBuildLengthsSatisfiesKraftInequality(t *testing.T) {
	freqs := make([]uint32, 256)
	for i := range freqs {
		freqs[i] = uint32((i%7)*13 + 1)
	}
	lengths := buildLengths(freqs, 15)
	if s := kraftSum(lengths); s > 1.0000001 {
		t.Fatalf("Kraft sum %v exceeds 1 for a valid prefix code", s)
	}
	for i, l := range lengths {
		if l > 15 {
			t.Fatalf("symbol %d has length %d exceeding the 15-bit limit", i, l)
		}
	}
}

func TestBuildLengthsSingleSymbolGetsLengthOne(t *testing.T) {
	freqs := make([]uint32, 40)
	freqs[0] = 1
	lengths := buildLengths(freqs, 15)
	if lengths[0] != 1 {
		t.Fatalf("expected the sole used symbol to get length 1, got %d", lengths[0])
	}
}

func TestBuildLengthsZeroFrequencyStillProducesValidTree(t *testing.T) {
	freqs := make([]uint32, 40)
	lengths := buildLengths(freqs, 15)
	if lengths[0] != 1 {
		t.Fatalf("expected an all-unused alphabet to fall back to a trivial length-1 code, got %d", lengths[0])
	}
}

func TestAssignCanonicalCodesProducesUniquePrefixes(t *testing.T) {
	lengths := []int{2, 2, 2, 3, 3}
	codes := assignCanonicalCodes(lengths)
	for i := range lengths {
		for j := i + 1; j < len(lengths); j++ {
			if lengths[i] == 0 || lengths[j] == 0 {
				continue
			}
			if isPrefix(codes[i], lengths[i], codes[j], lengths[j]) || isPrefix(codes[j], lengths[j], codes[i], lengths[i]) {
				t.Fatalf("codes for symbols %d and %d are not prefix-free: %b/%d vs %b/%d", i, j, codes[i], lengths[i], codes[j], lengths[j])
			}
		}
	}
}

func isPrefix(shortCode uint32, shortLen int, longCode uint32, longLen int) bool {
	if shortLen > longLen {
		return false
	}
	return longCode>>uint(longLen-shortLen) == shortCode
}

func TestLimitLengthsClampsAndRestoresValidity(t *testing.T) {
	lengths := make([]int, 20)
	for i := range lengths {
		lengths[i] = 20 // deliberately over the limit
	}
	limitLengths(lengths, 7)
	for i, l := range lengths {
		if l > 7 {
			t.Fatalf("symbol %d still exceeds the 7-bit limit after limiting: %d", i, l)
		}
	}
	if s := kraftSum(lengths); s > 1.0000001 {
		t.Fatalf("Kraft sum %v exceeds 1 after length limiting", s)
	}
}
