package analysis

import (
	"bytes"
	"testing"

	"github.com/Colonial-Dev/cryptopals/xor"
)

func TestScoreEmpty(t *testing.T) {
	var want float64
	for _, f := range englishFrequencies {
		want += f
	}
	for _, buf := range [][]byte{nil, {}} {
		if got := Score(buf); got != want {
			t.Errorf("Score(%v) == %v, want %v", buf, got, want)
		}
	}
}

func TestScoreIgnoresCase(t *testing.T) {
	cases := []string{
		"hello world",
		"Cooking MC's like a pound of bacon",
		lighthouse,
		"\x00\x01ZzYy!?",
	}
	for _, c := range cases {
		upper := bytes.ToUpper([]byte(c))
		if got, want := Score(upper), Score([]byte(c)); got != want {
			t.Errorf("Score(%q) == %v, want %v", upper, got, want)
		}
	}
}

func TestScoreNonLetters(t *testing.T) {
	// Bytes other than letters only dilute the letter frequencies.
	if got, want := Score([]byte("a b")), Score([]byte("a")); got <= want {
		t.Errorf("got %v, want more than %v", got, want)
	}
	if got, want := Score([]byte("!!!!")), Score(nil); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScoreEnglish(t *testing.T) {
	english := Score([]byte(lighthouse))
	others := [][]byte{
		xor.Repeat([]byte(lighthouse), []byte("ICE")),
		bytes.Repeat([]byte{0}, 64),
		func() []byte {
			buf := make([]byte, 256)
			for i := range buf {
				buf[i] = byte(i)
			}
			return buf
		}(),
	}
	for _, buf := range others {
		if n := Score(buf); n <= english {
			t.Errorf("Score(%q) == %v, want more than %v", buf, n, english)
		}
	}
}
