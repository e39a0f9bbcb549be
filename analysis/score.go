package analysis

import "math"

// englishFrequencies holds the relative frequency of each letter A-Z in
// English text, in percent.
var englishFrequencies = [26]float64{
	8.2, 1.5, 2.8, 4.3, 12.7, 2.2, 2.0, 6.1, 7.0, 0.15, 0.77, 4.0, 2.4,
	6.7, 7.5, 1.9, 0.095, 6.0, 6.3, 9.1, 2.8, 0.98, 2.4, 0.15, 2.0, 0.074,
}

// letterCounts returns the number of occurrences of each letter, ignoring case.
func letterCounts(buf []byte) (counts [26]int) {
	for _, b := range buf {
		switch {
		case 'A' <= b && b <= 'Z':
			counts[b-'A']++
		case 'a' <= b && b <= 'z':
			counts[b-'a']++
		}
	}
	return
}

// Score returns the total deviation of a buffer's letter frequencies from
// English. Lower scores are more likely to be English text.
//
// Each letter's occurrences are taken as a fraction of the whole buffer, so
// bytes that are not letters lower every observed frequency without having
// a bucket of their own. The fractions are compared directly against the
// percentage table, which makes the score fall as the share of letters
// rises and as their mix approaches English.
func Score(buf []byte) float64 {
	counts := letterCounts(buf)
	var res float64
	for i, want := range englishFrequencies {
		var got float64
		// An empty buffer has no observed letters, not NaN.
		if len(buf) > 0 {
			got = float64(counts[i]) / float64(len(buf))
		}
		res += math.Abs(got - want)
	}
	return res
}
