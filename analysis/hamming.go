package analysis

import "math/bits"

// HammingDistance returns the number of differing bits between two equal-length buffers.
func HammingDistance(b1, b2 []byte) int {
	if len(b1) != len(b2) {
		panic("HammingDistance: buffers must have equal length")
	}
	var n int
	for i := range b1 {
		n += bits.OnesCount8(b1[i] ^ b2[i])
	}
	return n
}

// Subdivide divides a buffer into blocks, discarding any trailing partial block.
func Subdivide(buf []byte, blockSize int) [][]byte {
	if blockSize < 1 {
		panic("Subdivide: block size must be positive")
	}
	var blocks [][]byte
	for len(buf) >= blockSize {
		// Return pointers, not copies.
		blocks = append(blocks, buf[:blockSize:blockSize])
		buf = buf[blockSize:]
	}
	return blocks
}
