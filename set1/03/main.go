// 3. Single-byte XOR cipher

package main

import (
	"flag"
	"io"
	"log"

	"github.com/Colonial-Dev/cryptopals/analysis"
	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
	"github.com/Colonial-Dev/cryptopals/xor"
)

var ascii = flag.Bool("ascii", false, "only try keys below 0x80")

func main() {
	cli.Init()
	flag.Parse()
	cli.Exit(cli.ForEach(flag.Args(), decrypt))
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(in io.Reader) error {
	buf, err := codec.DecodeHex(in)
	if err != nil {
		return err
	}
	r := analysis.FullRange
	if *ascii {
		r = analysis.ASCIIRange
	}
	key, score := analysis.BreakSingleXOR(buf, r)
	log.Printf("key %#02x, score %.3f", key, score)

	xor.SingleByte(buf, buf, key)
	cli.Print(append(buf, '\n'))

	return nil
}
