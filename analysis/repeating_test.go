package analysis

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/Colonial-Dev/cryptopals/xor"
)

func TestTranspose(t *testing.T) {
	cases := []struct {
		buf  []byte
		size int
		want [][]byte
	}{
		{
			[]byte{0, 1, 2, 3},
			2,
			[][]byte{
				{0, 2},
				{1, 3},
			},
		},
		{
			[]byte{0, 1, 2, 3, 4, 5},
			3,
			[][]byte{
				{0, 3},
				{1, 4},
				{2, 5},
			},
		},
		{
			[]byte{0, 1, 2, 3, 4},
			2,
			[][]byte{
				{0, 2, 4},
				{1, 3},
			},
		},
		{
			[]byte{0, 1},
			3,
			[][]byte{
				{0},
				{1},
				{},
			},
		},
	}
	for _, c := range cases {
		if got := Transpose(c.buf, c.size); !reflect.DeepEqual(got, c.want) {
			t.Errorf("got %v, want %v", got, c.want)
		}
	}
}

func TestRecoverKey(t *testing.T) {
	cases := []struct {
		key []byte
		r   KeyRange
	}{
		{[]byte("HELLO"), ASCIIRange},
		{[]byte("HELLO"), FullRange},
		{[]byte("ICE"), ASCIIRange},
		{[]byte("SECRET"), ASCIIRange},
	}
	for _, c := range cases {
		buf := xor.Repeat([]byte(lighthouse), c.key)
		if got := RecoverKey(buf, len(c.key), c.r); !bytes.Equal(got, c.key) {
			t.Errorf("got %q, want %q", got, c.key)
		}
	}
}

func TestRecoverKeyKeepsInput(t *testing.T) {
	buf := xor.Repeat([]byte(lighthouse), []byte("ICE"))
	orig := append([]byte{}, buf...)
	RecoverKey(buf, 3, ASCIIRange)
	if !bytes.Equal(buf, orig) {
		t.Error("RecoverKey modified its input")
	}
}

func TestKeyPeriod(t *testing.T) {
	cases := []struct {
		key, want []byte
	}{
		{[]byte("ICEICEICE"), []byte("ICE")},
		{[]byte("ICEICEIC"), []byte("ICEICEIC")},
		{[]byte("aaaa"), []byte("a")},
		{[]byte("abab"), []byte("ab")},
		{[]byte("a"), []byte("a")},
		{[]byte{}, []byte{}},
	}
	for _, c := range cases {
		if got := KeyPeriod(c.key); !bytes.Equal(got, c.want) {
			t.Errorf("KeyPeriod(%q) == %q, want %q", c.key, got, c.want)
		}
	}
}

func TestBreakRepeatingXOR(t *testing.T) {
	short := DefaultOptions
	short.MaxKeySize = 12
	cases := []struct {
		key  string
		opts Options
	}{
		{"HELLO", DefaultOptions},
		{"ICE", DefaultOptions},
		{"SECRET", DefaultOptions},
		{"HELLO", short},
		{"ICE", short},
		{"SECRET", short},
	}
	for _, c := range cases {
		buf := xor.Repeat([]byte(lighthouse), []byte(c.key))
		got, err := BreakRepeatingXOR(buf, c.opts)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != c.key {
			t.Errorf("key sizes %v to %v: got %q, want %q",
				c.opts.MinKeySize, c.opts.MaxKeySize, got, c.key)
		}
		if plaintext := xor.Repeat(buf, got); string(plaintext) != lighthouse {
			t.Errorf("got plaintext %q", plaintext)
		}
	}
}

func TestBreakKeySizesPrefersShortKey(t *testing.T) {
	buf := xor.Repeat([]byte(lighthouse), []byte("HELLO"))
	// Every size here is a multiple of the key length.
	sizes := []KeySize{{Size: 20}, {Size: 30}, {Size: 10}, {Size: 5}}
	if got := BreakKeySizes(buf, sizes, DefaultOptions); string(got) != "HELLO" {
		t.Errorf("got %q, want %q", got, "HELLO")
	}
}

func TestBreakKeySizesCandidates(t *testing.T) {
	buf := xor.Repeat([]byte(lighthouse), []byte("ICE"))
	sizes := []KeySize{{Size: 3}, {Size: 7}}
	for _, n := range []int{0, 1, 2, 10} {
		opts := DefaultOptions
		opts.Candidates = n
		if got := BreakKeySizes(buf, sizes, opts); string(got) != "ICE" {
			t.Errorf("%v candidates: got %q, want %q", n, got, "ICE")
		}
	}
}

func TestBreakRepeatingXORNoKeySize(t *testing.T) {
	if _, err := BreakRepeatingXOR([]byte("abc"), DefaultOptions); errors.Cause(err) != ErrNoKeySize {
		t.Errorf("got %v, want %v", err, ErrNoKeySize)
	}
}
