// Package codec reads hex- and base64-encoded input into raw bytes.
//
// Line breaks and surrounding whitespace are stripped before decoding.
// Decoding errors report the offending line.
package codec

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxLineSize bounds a single line of encoded input.
const maxLineSize = 16 << 20

// lines calls fn with the trimmed text and number of each non-empty line.
func lines(in io.Reader, fn func(string, int) error) error {
	input := bufio.NewScanner(in)
	input.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	for n := 1; input.Scan(); n++ {
		s := strings.TrimSpace(input.Text())
		if s == "" {
			continue
		}
		if err := fn(s, n); err != nil {
			return err
		}
	}
	return errors.Wrap(input.Err(), "read input")
}

// DecodeHexLines reads hex-encoded input and returns one buffer per non-empty line.
func DecodeHexLines(in io.Reader) ([][]byte, error) {
	var res [][]byte
	err := lines(in, func(s string, n int) error {
		buf, err := hex.DecodeString(s)
		if err != nil {
			return errors.Wrapf(err, "DecodeHexLines: line %d", n)
		}
		res = append(res, buf)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DecodeHex reads hex-encoded input and returns the concatenation of its lines.
func DecodeHex(in io.Reader) ([]byte, error) {
	bufs, err := DecodeHexLines(in)
	if err != nil {
		return nil, err
	}
	var res []byte
	for _, buf := range bufs {
		res = append(res, buf...)
	}
	return res, nil
}

// DecodeBase64 reads standard padded base64, which may be split across lines.
func DecodeBase64(in io.Reader) ([]byte, error) {
	var b strings.Builder
	err := lines(in, func(s string, _ int) error {
		b.WriteString(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if b.Len()%4 != 0 {
		return nil, errors.Errorf("DecodeBase64: length %d is not a multiple of 4", b.Len())
	}
	buf, err := base64.StdEncoding.DecodeString(b.String())
	if err != nil {
		return nil, errors.Wrap(err, "DecodeBase64")
	}
	return buf, nil
}

// HexToBase64 converts a hex string to standard padded base64.
func HexToBase64(s string) (string, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Wrap(err, "HexToBase64")
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
