package encryption

import (
	"errors"
	"io"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/namihq/rijndael-go/rijndael"
)

var log = logrus.WithField("package", "encryption")

// DefaultChunkSize is how much input a stream transforms per read.
const DefaultChunkSize = 32 * 1024

// ContentCipher defines the interface for content encryption and decryption
type ContentCipher interface {
	// EncryptStream reads plaintext from src and writes encrypted data to dst
	EncryptStream(src io.Reader, dst io.Writer) error

	// DecryptStream reads ciphertext from src and writes decrypted data to dst
	DecryptStream(src io.Reader, dst io.Writer) error
}

// Options tunes stream processing. The zero value uses the defaults.
type Options struct {
	// ChunkSize is the number of bytes read and transformed at a time.
	// It is rounded down to a whole number of blocks.
	ChunkSize int
}

func (o *Options) chunkSize() int {
	if o == nil || o.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	n := o.ChunkSize - o.ChunkSize%rijndael.BlockSize
	if n < rijndael.BlockSize {
		n = rijndael.BlockSize
	}
	return n
}

// NewCipher creates a content cipher for the given suite and key.
// iv is only used by suites that require one; nil selects rijndael.DefaultIV.
func NewCipher(suite CipherSuite, key []byte, iv []byte) (ContentCipher, error) {
	return NewCipherWithOptions(suite, key, iv, nil)
}

// NewCipherWithOptions is NewCipher with explicit stream options.
func NewCipherWithOptions(suite CipherSuite, key []byte, iv []byte, opts *Options) (ContentCipher, error) {
	log.WithField("suite", suite).Debug("Creating content cipher")

	switch suite {
	case RIJNDAEL128CBC:
		return newCBCCipher(key, iv, opts)
	case RIJNDAEL128ECB:
		return newECBCipher(key, opts)
	default:
		return nil, oops.
			In("encryption").
			With("suite", string(suite)).
			Wrap(ErrUnsupportedCipherSuite)
	}
}

// NewCBCCipher creates a new CBC cipher with the given key and IV.
// A nil IV selects rijndael.DefaultIV.
func NewCBCCipher(key, iv []byte) (ContentCipher, error) {
	return newCBCCipher(key, iv, nil)
}

// NewECBCipher creates a new ECB cipher with the given key.
func NewECBCipher(key []byte) (ContentCipher, error) {
	return newECBCipher(key, nil)
}

var ErrUnsupportedCipherSuite = errors.New("unsupported cipher suite")
