package encryption

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/namihq/rijndael-go/rijndael"
)

type ecbCipher struct {
	block     *rijndael.Cipher
	chunkSize int
}

func newECBCipher(key []byte, opts *Options) (ContentCipher, error) {
	block, err := rijndael.NewCipher(key)
	if err != nil {
		log.WithError(err).Error("Failed to create ECB cipher")
		return nil, err
	}
	return &ecbCipher{block: block, chunkSize: opts.chunkSize()}, nil
}

func (c *ecbCipher) EncryptStream(src io.Reader, dst io.Writer) error {
	n, err := cryptStream(src, dst, c.chunkSize, func(buf []byte) error {
		for i := 0; i < len(buf); i += rijndael.BlockSize {
			c.block.Encrypt(buf[i:], buf[i:])
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("bytes", n).Error("ECB encryption failed")
		return err
	}

	log.WithFields(logrus.Fields{"suite": RIJNDAEL128ECB, "bytes": n}).Debug("Stream encrypted")
	return nil
}

func (c *ecbCipher) DecryptStream(src io.Reader, dst io.Writer) error {
	n, err := cryptStream(src, dst, c.chunkSize, func(buf []byte) error {
		for i := 0; i < len(buf); i += rijndael.BlockSize {
			c.block.Decrypt(buf[i:], buf[i:])
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("bytes", n).Error("ECB decryption failed")
		return err
	}

	log.WithFields(logrus.Fields{"suite": RIJNDAEL128ECB, "bytes": n}).Debug("Stream decrypted")
	return nil
}
