package ecb

import (
	"crypto/aes"

	"github.com/pkg/errors"

	"github.com/Colonial-Dev/cryptopals/pkcs7"
)

// Encrypt pads plaintext and encrypts it with AES in ECB mode.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "Encrypt")
	}
	buf := pkcs7.Pad(plaintext, c.BlockSize())
	NewEncrypter(c).CryptBlocks(buf, buf)

	return buf, nil
}

// Decrypt decrypts AES-ECB ciphertext and removes its padding.
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "Decrypt")
	}
	if len(ciphertext) == 0 || len(ciphertext)%c.BlockSize() != 0 {
		return nil, errors.Errorf("Decrypt: ciphertext length %d is not a multiple of %d",
			len(ciphertext), c.BlockSize())
	}
	buf := make([]byte, len(ciphertext))
	NewDecrypter(c).CryptBlocks(buf, ciphertext)

	res, err := pkcs7.Unpad(buf, c.BlockSize())
	if err != nil {
		return nil, errors.Wrap(err, "Decrypt")
	}
	return res, nil
}
