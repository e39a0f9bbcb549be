package analysis

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrNoKeySize is returned when no candidate key size fits the ciphertext.
var ErrNoKeySize = errors.New("EstimateKeySize: no feasible key size")

// KeySize is a candidate repeating-key length and the average normalized
// Hamming distance between adjacent blocks of that length.
type KeySize struct {
	Size     int
	Distance float64
}

// AverageDistance returns the average Hamming distance per byte between
// adjacent blocks. The buffer must hold at least two blocks.
func AverageDistance(buf []byte, blockSize int) (float64, error) {
	if blockSize < 1 {
		return 0, errors.Errorf("AverageDistance: invalid block size %d", blockSize)
	}
	blocks := Subdivide(buf, blockSize)
	if len(blocks) < 2 {
		return 0, errors.New("AverageDistance: need 2 or more blocks")
	}
	var f float64
	for i := 0; i < len(blocks)-1; i++ {
		f += float64(HammingDistance(blocks[i], blocks[i+1])) / float64(blockSize)
	}
	return f / float64(len(blocks)-1), nil
}

// EstimateKeySize ranks the key sizes in [lo, hi] by average distance,
// most likely first. Sizes larger than half the buffer are skipped.
//
// The distance between two blocks encrypted with the same stretch of key is
// the distance between their plaintexts, which is smaller for English than for
// unrelated bytes. Multiples of the true size score as well as the size
// itself, so callers should try more than the first candidate.
func EstimateKeySize(buf []byte, lo, hi int) ([]KeySize, error) {
	if lo < 1 {
		lo = 1
	}
	if n := len(buf) / 2; hi > n {
		hi = n
	}
	var res []KeySize
	for size := lo; size <= hi; size++ {
		distance, err := AverageDistance(buf, size)
		if err != nil {
			// Errors should have been excluded by the bounds.
			panic(err)
		}
		res = append(res, KeySize{size, distance})
	}
	if len(res) == 0 {
		return nil, ErrNoKeySize
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Distance < res[j].Distance
	})
	return res, nil
}
