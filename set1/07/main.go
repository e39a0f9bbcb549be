// 7. AES in ECB mode

package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/Colonial-Dev/cryptopals/codec"
	"github.com/Colonial-Dev/cryptopals/ecb"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
)

var (
	e      = flag.Bool("e", false, "encrypt")
	secret = flag.String("k", "YELLOW SUBMARINE", "key")
)

func main() {
	cli.Init()
	flag.Parse()
	fn := decrypt
	if *e {
		fn = encrypt
	}
	cli.Exit(cli.ForEach(flag.Args(), fn))
}

// encrypt reads plaintext and prints base64-encoded ciphertext.
func encrypt(in io.Reader) error {
	buf, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}
	buf, err = ecb.Encrypt([]byte(*secret), buf)
	if err != nil {
		return err
	}
	fmt.Println(base64.StdEncoding.EncodeToString(buf))

	return nil
}

// decrypt reads base64-encoded ciphertext and prints plaintext.
func decrypt(in io.Reader) error {
	buf, err := codec.DecodeBase64(in)
	if err != nil {
		return err
	}
	buf, err = ecb.Decrypt([]byte(*secret), buf)
	if err != nil {
		return err
	}
	cli.Print(buf)

	return nil
}
