package rijndael

import "crypto/cipher"

func checkBuffers(dst, src []byte) error {
	if len(src) == 0 || len(src)%BlockSize != 0 {
		return lengthError(len(src))
	}
	if len(dst) < len(src) {
		return shortDstError(len(dst), len(src))
	}
	return nil
}

// EncryptECB encrypts every block of src independently.
func (c *Cipher) EncryptECB(src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	if err := checkBuffers(dst, src); err != nil {
		return nil, err
	}
	for i := 0; i < len(src); i += BlockSize {
		encryptBlock(&c.ks, dst[i:], src[i:])
	}
	return dst, nil
}

// DecryptECB decrypts every block of src independently.
func (c *Cipher) DecryptECB(src []byte) ([]byte, error) {
	dst := make([]byte, len(src))
	if err := checkBuffers(dst, src); err != nil {
		return nil, err
	}
	for i := 0; i < len(src); i += BlockSize {
		decryptBlock(&c.ks, dst[i:], src[i:])
	}
	return dst, nil
}

// EncryptCBC encrypts src in CBC mode starting from iv. It returns the
// ciphertext and the chaining value for a following call, which is the last
// ciphertext block.
func (c *Cipher) EncryptCBC(src, iv []byte) (dst, next []byte, err error) {
	ch, err := c.NewChain(iv)
	if err != nil {
		return nil, nil, err
	}
	dst = make([]byte, len(src))
	if err := ch.Encrypt(dst, src); err != nil {
		return nil, nil, err
	}
	return dst, ch.IV(), nil
}

// DecryptCBC decrypts src in CBC mode starting from iv. It returns the
// plaintext and the chaining value for a following call, which is the last
// ciphertext block of src.
func (c *Cipher) DecryptCBC(src, iv []byte) (dst, next []byte, err error) {
	ch, err := c.NewChain(iv)
	if err != nil {
		return nil, nil, err
	}
	dst = make([]byte, len(src))
	if err := ch.Decrypt(dst, src); err != nil {
		return nil, nil, err
	}
	return dst, ch.IV(), nil
}

// Seal encrypts src in CBC mode with DefaultIV.
func (c *Cipher) Seal(src []byte) ([]byte, error) {
	dst, _, err := c.EncryptCBC(src, defaultIV[:])
	return dst, err
}

// Open decrypts src in CBC mode with DefaultIV.
func (c *Cipher) Open(src []byte) ([]byte, error) {
	dst, _, err := c.DecryptCBC(src, defaultIV[:])
	return dst, err
}

// Chain is a CBC session. It starts from an initial IV and, after each
// call, holds the last ciphertext block so that a message split across
// several calls encrypts exactly as it would in one call.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	c  *Cipher
	iv [BlockSize]byte
}

// NewChain starts a CBC session at iv. A nil iv selects DefaultIV.
func (c *Cipher) NewChain(iv []byte) (*Chain, error) {
	ch := &Chain{c: c}
	if err := ch.Reset(iv); err != nil {
		return nil, err
	}
	return ch, nil
}

// Reset returns the session to its initial state with a new IV. A nil iv
// selects DefaultIV.
func (ch *Chain) Reset(iv []byte) error {
	if iv == nil {
		ch.iv = defaultIV
		return nil
	}
	if len(iv) != BlockSize {
		return blockSizeError("iv", len(iv))
	}
	copy(ch.iv[:], iv)
	return nil
}

// IV returns a copy of the current chaining value.
func (ch *Chain) IV() []byte {
	iv := make([]byte, BlockSize)
	copy(iv, ch.iv[:])
	return iv
}

// Encrypt CBC-encrypts src into dst and advances the chain. dst and src
// must overlap entirely or not at all.
func (ch *Chain) Encrypt(dst, src []byte) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	ch.encrypt(dst, src)
	return nil
}

// Decrypt CBC-decrypts src into dst and advances the chain. dst and src
// must overlap entirely or not at all.
func (ch *Chain) Decrypt(dst, src []byte) error {
	if err := checkBuffers(dst, src); err != nil {
		return err
	}
	ch.decrypt(dst, src)
	return nil
}

func (ch *Chain) encrypt(dst, src []byte) {
	var x [BlockSize]byte
	for i := 0; i < len(src); i += BlockSize {
		for j := range x {
			x[j] = src[i+j] ^ ch.iv[j]
		}
		encryptBlock(&ch.c.ks, dst[i:], x[:])
		copy(ch.iv[:], dst[i:i+BlockSize])
	}
}

func (ch *Chain) decrypt(dst, src []byte) {
	var prev [BlockSize]byte
	for i := 0; i < len(src); i += BlockSize {
		// Keep the ciphertext: dst may be src.
		copy(prev[:], src[i:i+BlockSize])
		decryptBlock(&ch.c.ks, dst[i:], prev[:])
		for j := range ch.iv {
			dst[i+j] ^= ch.iv[j]
		}
		ch.iv = prev
	}
}

// cbcMode adapts a Chain to crypto/cipher.BlockMode.
type cbcMode struct {
	ch      *Chain
	decrypt bool
}

// NewCBCEncrypter returns a crypto/cipher.BlockMode that encrypts in CBC mode
// from iv. Like the standard library it panics if iv is not one block long.
// crypto/cipher.NewCBCEncrypter picks this method up automatically.
func (c *Cipher) NewCBCEncrypter(iv []byte) cipher.BlockMode {
	return c.newCBCMode(iv, false)
}

// NewCBCDecrypter is the decrypting counterpart of NewCBCEncrypter.
func (c *Cipher) NewCBCDecrypter(iv []byte) cipher.BlockMode {
	return c.newCBCMode(iv, true)
}

func (c *Cipher) newCBCMode(iv []byte, decrypt bool) *cbcMode {
	if len(iv) != BlockSize {
		panic("rijndael: IV length must equal block size")
	}
	ch := &Chain{c: c}
	copy(ch.iv[:], iv)
	return &cbcMode{ch: ch, decrypt: decrypt}
}

func (m *cbcMode) BlockSize() int { return BlockSize }

func (m *cbcMode) CryptBlocks(dst, src []byte) {
	if len(src)%BlockSize != 0 {
		panic("rijndael: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("rijndael: output smaller than input")
	}
	if m.decrypt {
		m.ch.decrypt(dst, src)
	} else {
		m.ch.encrypt(dst, src)
	}
}

// SetIV resets the chaining value, as crypto/cipher's own CBC modes allow.
func (m *cbcMode) SetIV(iv []byte) {
	if len(iv) != BlockSize {
		panic("rijndael: incorrect length IV")
	}
	copy(m.ch.iv[:], iv)
}
