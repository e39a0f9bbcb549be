// 9. Implement PKCS#7 padding

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/Colonial-Dev/cryptopals/internal/cli"
	"github.com/Colonial-Dev/cryptopals/pkcs7"
)

var blockSize = flag.Int("b", 20, "block size")

func main() {
	cli.Init()
	flag.Parse()
	if *blockSize <= 0 || *blockSize > 0xff {
		log.Fatal("invalid block size")
	}
	cli.Exit(cli.ForEach(flag.Args(), pad))
}

// pad reads lines of text and displays them with PKCS#7 padding added.
func pad(in io.Reader) error {
	input := bufio.NewScanner(in)
	for input.Scan() {
		buf := pkcs7.Pad(input.Bytes(), *blockSize)
		fmt.Println(strconv.Quote(string(buf)))
	}
	return input.Err()
}
