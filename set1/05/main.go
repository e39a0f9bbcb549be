// 5. Implement repeating-key XOR

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
	"github.com/Colonial-Dev/cryptopals/xor"
)

var (
	d   = flag.Bool("d", false, "decrypt")
	key = flag.String("k", "ICE", "key")
)

func main() {
	cli.Init()
	flag.Parse()
	if *key == "" {
		flag.Usage()
		cli.Exit(1)
	}
	fn := encrypt
	if *d {
		fn = decrypt
	}
	cli.Exit(cli.ForEach(flag.Args(), fn))
}

// encrypt reads plaintext and prints hex-encoded ciphertext.
func encrypt(in io.Reader) error {
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(xor.Repeat(buf, []byte(*key))))

	return nil
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(in io.Reader) error {
	buf, err := codec.DecodeHex(in)
	if err != nil {
		return err
	}
	cli.Print(xor.Repeat(buf, []byte(*key)))

	return nil
}
