// Package rijndael_go offers one-shot helpers over the rijndael engine and
// the encryption stream adapters.
package rijndael_go

import (
	"crypto/rand"
	"io"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/namihq/rijndael-go/encryption"
	"github.com/namihq/rijndael-go/rijndael"
)

var log = logrus.WithField("package", "rijndael_go")

// Encrypt encrypts block-aligned plaintext in CBC mode with rijndael.DefaultIV
func Encrypt(key, plaintext []byte) ([]byte, error) {
	c, err := rijndael.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Seal(plaintext)
}

// Decrypt reverses Encrypt
func Decrypt(key, ciphertext []byte) ([]byte, error) {
	c, err := rijndael.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c.Open(ciphertext)
}

// EncryptStream encrypts block-aligned data from src using Rijndael-CBC with a
// random IV and writes the IV followed by the ciphertext to dst
func EncryptStream(key []byte, src io.Reader, dst io.Writer) error {
	iv := make([]byte, rijndael.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return oops.In("rijndael_go").Wrapf(err, "generate IV")
	}

	c, err := encryption.NewCBCCipher(key, iv)
	if err != nil {
		return err
	}

	if err := c.EncryptStream(src, dst); err != nil {
		log.WithError(err).Error("Failed to encrypt stream")
		return err
	}
	return nil
}

// DecryptStream reads data written by EncryptStream from src and writes the
// decrypted output to dst
func DecryptStream(key []byte, src io.Reader, dst io.Writer) error {
	// The IV is taken from the stream; nil here only satisfies the constructor.
	c, err := encryption.NewCBCCipher(key, nil)
	if err != nil {
		return err
	}

	if err := c.DecryptStream(src, dst); err != nil {
		log.WithError(err).Error("Failed to decrypt stream")
		return err
	}
	return nil
}
