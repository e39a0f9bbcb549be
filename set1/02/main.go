// 2. Fixed XOR

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
	"github.com/Colonial-Dev/cryptopals/xor"
)

func main() {
	cli.Init()
	cli.Exit(cli.ForEach(os.Args[1:], fixedXOR))
}

// fixedXOR reads two hex-encoded lines of equal length and prints their XOR combination.
func fixedXOR(in io.Reader) error {
	bufs, err := codec.DecodeHexLines(in)
	if err != nil {
		return err
	}
	if len(bufs) != 2 {
		return errors.Errorf("fixedXOR: need 2 lines, got %d", len(bufs))
	}
	dst := make([]byte, len(bufs[0]))
	if _, err := xor.Bytes(dst, bufs[0], bufs[1]); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(dst))

	return nil
}
