package analysis

import "github.com/Colonial-Dev/cryptopals/xor"

// KeyRange is an inclusive range of candidate key bytes.
type KeyRange struct {
	Lo, Hi byte
}

var (
	// FullRange tries every byte value.
	FullRange = KeyRange{0, 0xff}

	// ASCIIRange tries only bytes without the high bit set. It favors keys made
	// of ASCII text, and cannot recover a key byte outside it.
	ASCIIRange = KeyRange{0, 0x7f}
)

// BreakSingleXOR returns the most likely single-byte XOR key for a buffer and
// the score of the resulting plaintext. Keys are tried in ascending order and
// the first of any equally scored keys is kept.
func BreakSingleXOR(buf []byte, r KeyRange) (byte, float64) {
	if r.Lo > r.Hi {
		panic("BreakSingleXOR: empty key range")
	}
	// Don't modify the original data.
	tmp := make([]byte, len(buf))
	var (
		key  byte
		best float64
	)
	// Use an integer as the loop variable to avoid overflow.
	for i := int(r.Lo); i <= int(r.Hi); i++ {
		xor.SingleByte(tmp, buf, byte(i))
		if n := Score(tmp); i == int(r.Lo) || n < best {
			best = n
			key = byte(i)
		}
	}
	return key, best
}

// DetectSingleXOR returns the index of the buffer most likely to be English
// encrypted with single-byte XOR, along with its key and score. If bufs is
// empty, the index is -1.
func DetectSingleXOR(bufs [][]byte) (int, byte, float64) {
	var (
		index = -1
		key   byte
		best  float64
	)
	for i, buf := range bufs {
		if k, n := BreakSingleXOR(buf, FullRange); index < 0 || n < best {
			index, key, best = i, k, n
		}
	}
	return index, key, best
}
