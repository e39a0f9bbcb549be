// 4. Detect single-character XOR

package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/Colonial-Dev/cryptopals/analysis"
	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
	"github.com/Colonial-Dev/cryptopals/xor"
)

func main() {
	cli.Init()
	cli.Exit(cli.ForEach(os.Args[1:], detect))
}

// detect reads hex-encoded lines, decrypts the most likely one, and prints the plaintext.
func detect(in io.Reader) error {
	bufs, err := codec.DecodeHexLines(in)
	if err != nil {
		return err
	}
	i, key, score := analysis.DetectSingleXOR(bufs)
	if i < 0 {
		return errors.New("detect: no input")
	}
	log.Printf("line %d, key %#02x, score %.3f", i+1, key, score)

	plaintext := make([]byte, len(bufs[i]))
	xor.SingleByte(plaintext, bufs[i], key)
	cli.Print(plaintext)

	return nil
}
