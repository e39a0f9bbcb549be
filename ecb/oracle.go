package ecb

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	weak "math/rand"

	"github.com/Colonial-Dev/cryptopals/analysis"
	"github.com/Colonial-Dev/cryptopals/pkcs7"
)

// Mode identifies a block cipher mode.
type Mode int

const (
	ECB Mode = iota
	CBC
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	}
	return "unknown"
}

// NewOracle takes a block cipher and returns an encryption oracle, along with
// the mode it secretly uses. The oracle surrounds its input with 5 to 10
// random bytes on each side, then pads and encrypts it in ECB or CBC mode,
// chosen at random.
func NewOracle(c cipher.Block) (func([]byte) []byte, Mode) {
	var (
		mode cipher.BlockMode
		m    Mode
	)
	if weak.Intn(2) == 0 {
		mode, m = NewEncrypter(c), ECB
	} else {
		mode, m = cipher.NewCBCEncrypter(c, RandomBytes(c.BlockSize())), CBC
	}
	prefix := RandomBytes(RandomInRange(5, 10))
	suffix := RandomBytes(RandomInRange(5, 10))
	return func(buf []byte) []byte {
		buf = append(append(append([]byte{}, prefix...), buf...), suffix...)
		buf = pkcs7.Pad(buf, mode.BlockSize())
		mode.CryptBlocks(buf, buf)
		return buf
	}, m
}

// DetectMode returns the mode used by an encryption oracle.
func DetectMode(oracle func([]byte) []byte) Mode {
	if analysis.HasIdenticalBlocks(oracle(probe()), aes.BlockSize) {
		return ECB
	}
	return CBC
}

// probe returns a buffer that yields at least two identical blocks under ECB,
// whatever the length of the oracle's prefix.
func probe() []byte {
	return bytes.Repeat([]byte{'a'}, 3*aes.BlockSize)
}

// RandomBytes returns a random buffer of the desired length.
func RandomBytes(n int) []byte {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return buf
}

// RandomInRange returns a pseudo-random non-negative integer in [lo, hi].
// The output should not be used in a security-sensitive context.
func RandomInRange(lo, hi int) int {
	if lo < 0 || lo > hi {
		panic("RandomInRange: invalid range")
	}
	return lo + weak.Intn(hi-lo+1)
}
