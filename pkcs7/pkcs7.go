// Package pkcs7 implements PKCS#7 padding for block ciphers.
package pkcs7

import (
	"bytes"

	"github.com/pkg/errors"
)

// ErrInvalidPadding is returned when a buffer does not end in valid padding.
var ErrInvalidPadding = errors.New("Unpad: invalid padding")

// Pad returns a copy of buf with PKCS#7 padding added. A buffer that is
// already a multiple of the block size gains a whole block of padding.
func Pad(buf []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 0xff {
		panic("Pad: invalid block size")
	}
	// Find the number (and value) of padding bytes.
	n := blockSize - (len(buf) % blockSize)

	return append(dup(buf), bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad returns a copy of buf with PKCS#7 padding removed.
func Unpad(buf []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || len(buf) == 0 || len(buf)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	// Examine the value of the last byte.
	b := buf[len(buf)-1]
	n := len(buf) - int(b)
	if b == 0 || int(b) > blockSize ||
		!bytes.Equal(bytes.Repeat([]byte{b}, int(b)), buf[n:]) {
		return nil, ErrInvalidPadding
	}
	return dup(buf[:n]), nil
}

// dup returns a copy of a buffer.
func dup(buf []byte) []byte {
	return append([]byte{}, buf...)
}
