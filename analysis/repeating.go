package analysis

import (
	"bytes"
	"math"
	"sync"

	"github.com/pkg/errors"

	"github.com/Colonial-Dev/cryptopals/xor"
)

// Options controls how BreakRepeatingXOR searches for a key.
type Options struct {
	// MinKeySize and MaxKeySize bound the key sizes considered.
	MinKeySize, MaxKeySize int

	// Candidates is the number of best-ranked key sizes to try.
	Candidates int

	// Range limits the values tried for each key byte.
	Range KeyRange

	// Tolerance is how much worse a shorter key's plaintext may score than
	// a longer key's and still be preferred.
	Tolerance float64
}

// DefaultOptions suit English plaintext encrypted with a printable key.
var DefaultOptions = Options{
	MinKeySize: 2,
	MaxKeySize: 40,
	Candidates: 4,
	Range:      ASCIIRange,
	Tolerance:  0.005,
}

// Transpose makes a buffer out of the first byte of every block, another out
// of the second byte of every block, and so on. A trailing partial block
// contributes to the leading columns only.
func Transpose(buf []byte, size int) [][]byte {
	if size < 1 {
		panic("Transpose: size must be positive")
	}
	cols := make([][]byte, size)
	for i := range cols {
		cols[i] = make([]byte, 0, (len(buf)+size-1-i)/size)
	}
	for i, b := range buf {
		cols[i%size] = append(cols[i%size], b)
	}
	return cols
}

// RecoverKey returns the repeating XOR key of the given size, breaking each
// key byte independently as single-byte XOR.
func RecoverKey(buf []byte, size int, r KeyRange) []byte {
	cols := Transpose(buf, size)
	key := make([]byte, size)

	var wg sync.WaitGroup
	wg.Add(size)
	for i := range cols {
		// Capture the value of the loop variable.
		go func(i int) {
			key[i], _ = BreakSingleXOR(cols[i], r)
			wg.Done()
		}(i)
	}
	wg.Wait()

	return key
}

// KeyPeriod returns the shortest prefix of key that repeats to form the whole key.
func KeyPeriod(key []byte) []byte {
	for n := 1; n < len(key); n++ {
		if len(key)%n != 0 {
			continue
		}
		if bytes.Equal(key[n:], key[:len(key)-n]) {
			return key[:n]
		}
	}
	return key
}

// BreakRepeatingXOR returns the key used to encrypt a buffer with repeating XOR.
func BreakRepeatingXOR(buf []byte, opts Options) ([]byte, error) {
	sizes, err := EstimateKeySize(buf, opts.MinKeySize, opts.MaxKeySize)
	if err != nil {
		return nil, errors.Wrap(err, "BreakRepeatingXOR")
	}
	return BreakKeySizes(buf, sizes, opts), nil
}

// BreakKeySizes breaks the best-ranked key sizes in turn and returns the
// shortest key whose plaintext scores within opts.Tolerance of the best.
//
// A key broken at a multiple of the true size fits each column on its own,
// so it never scores worse than the true key and often scores better with
// the wrong bytes. Shorter keys are preferred for that reason.
func BreakKeySizes(buf []byte, sizes []KeySize, opts Options) []byte {
	n := opts.Candidates
	if n < 1 {
		n = 1
	}
	if n > len(sizes) {
		n = len(sizes)
	}
	keys := make([][]byte, n)
	scores := make([]float64, n)
	best := math.Inf(1)
	for i, ks := range sizes[:n] {
		keys[i], scores[i] = shortestKey(buf, ks.Size, opts)
		best = math.Min(best, scores[i])
	}
	var key []byte
	for i, k := range keys {
		// Ties keep the better-ranked size.
		if scores[i] <= best+opts.Tolerance && (key == nil || len(k) < len(key)) {
			key = k
		}
	}
	return key
}

// shortestKey breaks a key of the given size, then tries each divisor of
// the size from the smallest up, and returns the first key whose plaintext
// scores within tolerance of the full-size key, along with its score.
func shortestKey(buf []byte, size int, opts Options) ([]byte, float64) {
	key := RecoverKey(buf, size, opts.Range)
	score := Score(xor.Repeat(buf, key))

	lo := opts.MinKeySize
	if lo < 1 {
		lo = 1
	}
	for d := lo; d < size; d++ {
		if size%d != 0 {
			continue
		}
		k := RecoverKey(buf, d, opts.Range)
		if n := Score(xor.Repeat(buf, k)); n <= score+opts.Tolerance {
			return KeyPeriod(k), n
		}
	}
	return KeyPeriod(key), score
}
