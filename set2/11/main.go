// 11. An ECB/CBC detection oracle

package main

import (
	"crypto/aes"
	"flag"
	"fmt"
	"log"

	"github.com/Colonial-Dev/cryptopals/ecb"
	"github.com/Colonial-Dev/cryptopals/internal/cli"
)

var trials = flag.Int("n", 1, "number of trials")

func main() {
	cli.Init()
	flag.Parse()

	var failed int
	for i := 0; i < *trials; i++ {
		c, err := aes.NewCipher(ecb.RandomBytes(aes.BlockSize))
		if err != nil {
			log.Fatal(err)
		}
		oracle, mode := ecb.NewOracle(c)
		if got := ecb.DetectMode(oracle); got == mode {
			fmt.Printf("detected %v mode...correct.\n", got)
		} else {
			fmt.Printf("detected %v mode...incorrect.\n", got)
			failed++
		}
	}
	cli.Exit(failed)
}
