// Package rijndael implements the Rijndael block cipher with a 128-bit block
// and a 128-bit key (AES-128), along with ECB and CBC processing of
// block-aligned buffers.
//
// A Cipher is immutable once constructed and safe for concurrent use. A Chain
// carries CBC state between calls and belongs to one caller at a time.
package rijndael

import "crypto/cipher"

const (
	// BlockSize is the Rijndael block size in bytes.
	BlockSize = 16

	// KeySize is the only supported key size in bytes.
	KeySize = 16

	// Rounds is the number of rounds for a 128-bit key.
	Rounds = 10
)

var defaultIV = [BlockSize]byte{
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
}

// DefaultIV returns a copy of the well-known IV used when a caller does not
// supply one. It is public and fixed, so it gives no secrecy on its own.
func DefaultIV() []byte {
	iv := make([]byte, BlockSize)
	copy(iv, defaultIV[:])
	return iv
}

// Cipher is a keyed instance of Rijndael-128.
type Cipher struct {
	ks Schedule
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key into a new Cipher. The key must be KeySize bytes.
func NewCipher(key []byte) (*Cipher, error) {
	ks, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{ks: *ks}, nil
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. It panics on short
// buffers, matching crypto/cipher.Block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	encryptBlock(&c.ks, dst, src)
}

// Decrypt decrypts the first block of src into dst. It panics on short
// buffers, matching crypto/cipher.Block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}
	decryptBlock(&c.ks, dst, src)
}

// EncryptBlock returns the encryption of a single block.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, blockSizeError("block", len(src))
	}
	dst := make([]byte, BlockSize)
	encryptBlock(&c.ks, dst, src)
	return dst, nil
}

// DecryptBlock returns the decryption of a single block.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, blockSizeError("block", len(src))
	}
	dst := make([]byte, BlockSize)
	decryptBlock(&c.ks, dst, src)
	return dst, nil
}
