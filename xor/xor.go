// Package xor provides the XOR primitives used to build and break weak ciphers.
package xor

import (
	"crypto/cipher"

	"github.com/pkg/errors"
)

// Bytes writes the XOR combination of two equal-length buffers to dst and
// returns the number of bytes written.
func Bytes(dst, b1, b2 []byte) (int, error) {
	if len(b1) != len(b2) {
		return 0, errors.New("Bytes: buffers must have equal length")
	}
	// Panic if dst is smaller than b1.
	for i := range b1 {
		dst[i] = b1[i] ^ b2[i]
	}
	return len(b1), nil
}

// SingleByte produces the XOR combination of a buffer with a single byte.
func SingleByte(dst, src []byte, b byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ b
	}
}

// Repeat returns a new buffer holding src XOR-ed with a repeating key.
func Repeat(src, key []byte) []byte {
	dst := make([]byte, len(src))
	NewCipher(key).XORKeyStream(dst, src)
	return dst
}

// xorCipher represents a repeating XOR stream cipher.
type xorCipher struct {
	key []byte
	pos int
}

// NewCipher creates a new repeating XOR cipher. The key must not be empty.
func NewCipher(key []byte) cipher.Stream {
	if len(key) == 0 {
		panic("NewCipher: empty key")
	}
	return &xorCipher{key: append([]byte{}, key...)}
}

// XORKeyStream encrypts a buffer with repeating XOR, continuing from where
// the previous call left off in the key.
func (x *xorCipher) XORKeyStream(dst, src []byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ x.key[x.pos]
		x.pos++
		if x.pos == len(x.key) {
			x.pos = 0
		}
	}
}
