// 6. Break repeating-key XOR

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

var opts = analysis.DefaultOptions

func main() {
	full := flag.Bool("full", false, "try key bytes with the high bit set")
	flag.IntVar(&opts.MinKeySize, "min", opts.MinKeySize, "smallest key size")
	flag.IntVar(&opts.MaxKeySize, "max", opts.MaxKeySize, "largest key size")
	flag.IntVar(&opts.Candidates, "n", opts.Candidates, "number of key sizes to try")
	cli.Init()
	flag.Parse()
	if *full {
		opts.Range = analysis.FullRange
	}
	cli.Exit(cli.ForEach(flag.Args(), decrypt))
}

// decrypt reads base64-encoded ciphertext and prints plaintext.
func decrypt(in io.Reader) error {
	buf, err := codec.DecodeBase64(in)
	if err != nil {
		return err
	}
	sizes, err := analysis.EstimateKeySize(buf, opts.MinKeySize, opts.MaxKeySize)
	if err != nil {
		return err
	}
	for i := 0; i < len(sizes) && i < opts.Candidates; i++ {
		log.Printf("key size %d, distance %.4f", sizes[i].Size, sizes[i].Distance)
	}
	key := analysis.BreakKeySizes(buf, sizes, opts)
	log.Printf("key %q", key)
	cli.Print(xor.Repeat(buf, key))

	return nil
}
