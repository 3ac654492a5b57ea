package encryption

import (
	"io"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/namihq/rijndael-go/rijndael"
)

type cbcCipher struct {
	block     *rijndael.Cipher
	iv        []byte
	chunkSize int
}

func newCBCCipher(key, iv []byte, opts *Options) (ContentCipher, error) {
	block, err := rijndael.NewCipher(key)
	if err != nil {
		log.WithError(err).Error("Failed to create CBC cipher")
		return nil, err
	}

	if iv == nil {
		iv = rijndael.DefaultIV()
	}
	if len(iv) != rijndael.BlockSize {
		err := oops.
			In("encryption").
			Code("invalid_block_size").
			With("length", len(iv)).
			Wrapf(rijndael.ErrInvalidBlockSize, "IV length must equal block size")
		log.WithError(err).Error("Failed to create CBC cipher")
		return nil, err
	}

	return &cbcCipher{
		block:     block,
		iv:        append([]byte(nil), iv...),
		chunkSize: opts.chunkSize(),
	}, nil
}

// EncryptStream writes the IV followed by the CBC encryption of src to dst
func (c *cbcCipher) EncryptStream(src io.Reader, dst io.Writer) error {
	chain, err := c.block.NewChain(c.iv)
	if err != nil {
		return err
	}

	// Write IV first
	if _, err := dst.Write(c.iv); err != nil {
		return oops.In("encryption").Wrapf(err, "write IV")
	}

	n, err := cryptStream(src, dst, c.chunkSize, func(buf []byte) error {
		return chain.Encrypt(buf, buf)
	})
	if err != nil {
		log.WithError(err).WithField("bytes", n).Error("CBC encryption failed")
		return err
	}

	log.WithFields(logrus.Fields{"suite": RIJNDAEL128CBC, "bytes": n}).Debug("Stream encrypted")
	return nil
}

// DecryptStream reads the IV prefix from src and writes the decrypted remainder to dst
func (c *cbcCipher) DecryptStream(src io.Reader, dst io.Writer) error {
	// Read IV
	iv := make([]byte, rijndael.BlockSize)
	if _, err := io.ReadFull(src, iv); err != nil {
		return oops.In("encryption").Wrapf(err, "read IV")
	}

	chain, err := c.block.NewChain(iv)
	if err != nil {
		return err
	}

	n, err := cryptStream(src, dst, c.chunkSize, func(buf []byte) error {
		return chain.Decrypt(buf, buf)
	})
	if err != nil {
		log.WithError(err).WithField("bytes", n).Error("CBC decryption failed")
		return err
	}

	log.WithFields(logrus.Fields{"suite": RIJNDAEL128CBC, "bytes": n}).Debug("Stream decrypted")
	return nil
}
