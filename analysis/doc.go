// Package analysis breaks single-byte and repeating-key XOR by letter
// frequency, and detects block ciphers used in ECB mode.
//
// Every function is a pure computation over in-memory buffers. Inputs are
// never modified.
package analysis
