// 8. Detect AES in ECB mode

package main

import (
	"crypto/aes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/Colonial-Dev/cryptopals/analysis"
	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
)

func main() {
	cli.Init()
	cli.Exit(cli.ForEach(os.Args[1:], detect))
}

// detect reads hex-encoded lines and prints those that appear to have been
// encrypted with AES in ECB mode, numbered among the non-empty lines.
func detect(in io.Reader) error {
	bufs, err := codec.DecodeHexLines(in)
	if err != nil {
		return err
	}
	for _, i := range analysis.IdenticalBlockLines(bufs, aes.BlockSize) {
		fmt.Printf("%d: %s\n", i+1, hex.EncodeToString(bufs[i]))
	}
	return nil
}
