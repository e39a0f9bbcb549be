// 1. Convert hex to base64

package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
)

func main() {
	cli.Init()
	cli.Exit(cli.ForEach(os.Args[1:], convert))
}

// convert reads hex-encoded input and prints it base64-encoded.
func convert(in io.Reader) error {
	buf, err := codec.DecodeHex(in)
	if err != nil {
		return err
	}
	fmt.Println(base64.StdEncoding.EncodeToString(buf))

	return nil
}
