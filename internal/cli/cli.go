// Package cli holds the plumbing shared by the command-line programs.
package cli

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"
)

// Init configures the standard logger to report errors under the program's name.
func Init() {
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")
}

// ForEach calls fn with each named file, or with standard input if no files
// are named. Failures are logged and do not stop the remaining files. The
// number of failures is returned.
func ForEach(files []string, fn func(io.Reader) error) int {
	if len(files) == 0 {
		if err := fn(os.Stdin); err != nil {
			log.Println(err)
			return 1
		}
		return 0
	}
	var failed int
	for _, file := range files {
		if err := forFile(file, fn); err != nil {
			log.Println(err)
			failed++
		}
	}
	return failed
}

func forFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	return errors.Wrap(fn(f), name)
}

// Exit terminates the program, with a nonzero status if anything failed.
func Exit(failed int) {
	if failed > 0 {
		os.Exit(1)
	}
	os.Exit(0)
}

// Print writes a plaintext buffer to standard output. Broken ciphertext need
// not decrypt to text, so a terminal is shown escaped bytes instead.
func Print(buf []byte) {
	if terminal.IsTerminal(int(os.Stdout.Fd())) {
		buf = Escape(buf)
	}
	os.Stdout.Write(buf)
}

// Escape replaces bytes other than printable ASCII, tabs and newlines with
// \xNN sequences.
func Escape(buf []byte) []byte {
	const digits = "0123456789abcdef"
	res := make([]byte, 0, len(buf))
	for _, b := range buf {
		if b == '\n' || b == '\t' || (' ' <= b && b <= '~') {
			res = append(res, b)
			continue
		}
		res = append(res, '\\', 'x', digits[b>>4], digits[b&0xf])
	}
	return res
}
