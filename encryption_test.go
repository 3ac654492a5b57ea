package rijndael_go

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namihq/rijndael-go/rijndael"
)

const testContent = "And God called the light Day,  and the darkness he called Night."

var testKey = []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}

// TestEncryptDecrypt checks the one-shot helpers against the reference vector
func TestEncryptDecrypt(t *testing.T) {
	expected := []byte{
		0xe7, 0x05, 0x0e, 0xdf, 0x2e, 0x5d, 0x97, 0x62, 0x36, 0xe9, 0x17, 0xb1, 0xc1, 0x73, 0xde, 0xca,
		0xa2, 0x4b, 0x50, 0x4c, 0x02, 0x49, 0xea, 0xbd, 0x26, 0x25, 0x76, 0x92, 0x7a, 0xcf, 0x68, 0xee,
		0xa7, 0xa6, 0xc3, 0x75, 0xa7, 0x32, 0x13, 0x74, 0x31, 0x0f, 0xa9, 0xca, 0x0e, 0x5e, 0xab, 0x99,
		0xc5, 0x31, 0xc0, 0xe4, 0x26, 0x9c, 0x26, 0x92, 0x1a, 0xf4, 0xd0, 0xd0, 0xef, 0xa8, 0x7b, 0x23,
	}

	encrypted, err := Encrypt(testKey, []byte(testContent))
	require.NoError(t, err)
	assert.Equal(t, expected, encrypted)

	decrypted, err := Decrypt(testKey, encrypted)
	require.NoError(t, err)
	assert.Equal(t, testContent, string(decrypted))
}

// TestEncryptRandomKeys round-trips random data under random keys
func TestEncryptRandomKeys(t *testing.T) {
	for i := 0; i < 20; i++ {
		key := make([]byte, rijndael.KeySize)
		data := make([]byte, 128)
		_, err := rand.Read(key)
		require.NoError(t, err)
		_, err = rand.Read(data)
		require.NoError(t, err)

		encrypted, err := Encrypt(key, data)
		require.NoError(t, err)
		decrypted, err := Decrypt(key, encrypted)
		require.NoError(t, err)
		require.Equal(t, data, decrypted)
	}
}

// TestEncryptErrors checks that invalid input is rejected, not padded
func TestEncryptErrors(t *testing.T) {
	_, err := Encrypt(make([]byte, 8), []byte(testContent))
	assert.ErrorIs(t, err, rijndael.ErrInvalidKeySize)

	_, err = Decrypt(nil, []byte(testContent))
	assert.ErrorIs(t, err, rijndael.ErrInvalidKeySize)

	_, err = Encrypt(testKey, []byte("Hello, Rijndael!!"))
	assert.ErrorIs(t, err, rijndael.ErrInvalidLength)

	_, err = Decrypt(testKey, nil)
	assert.ErrorIs(t, err, rijndael.ErrInvalidLength)
}

// TestEncryptStream round-trips data through the stream helpers
func TestEncryptStream(t *testing.T) {
	var encrypted, decrypted bytes.Buffer
	require.NoError(t, EncryptStream(testKey, bytes.NewReader([]byte(testContent)), &encrypted))
	require.Equal(t, len(testContent)+rijndael.BlockSize, encrypted.Len())

	require.NoError(t, DecryptStream(testKey, bytes.NewReader(encrypted.Bytes()), &decrypted))
	assert.Equal(t, testContent, decrypted.String())
}

// TestEncryptStreamUsesFreshIV checks that two encryptions of the same data differ
func TestEncryptStreamUsesFreshIV(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, EncryptStream(testKey, bytes.NewReader([]byte(testContent)), &first))
	require.NoError(t, EncryptStream(testKey, bytes.NewReader([]byte(testContent)), &second))

	assert.NotEqual(t, first.Bytes()[:rijndael.BlockSize], second.Bytes()[:rijndael.BlockSize])
	assert.NotEqual(t, first.Bytes(), second.Bytes())
}

// TestEncryptStreamErrors checks key and alignment failures
func TestEncryptStreamErrors(t *testing.T) {
	err := EncryptStream(make([]byte, 32), bytes.NewReader([]byte(testContent)), &bytes.Buffer{})
	assert.ErrorIs(t, err, rijndael.ErrInvalidKeySize)

	err = EncryptStream(testKey, bytes.NewReader([]byte("not aligned")), &bytes.Buffer{})
	assert.ErrorIs(t, err, rijndael.ErrInvalidLength)

	err = DecryptStream(make([]byte, 32), bytes.NewReader(nil), &bytes.Buffer{})
	assert.ErrorIs(t, err, rijndael.ErrInvalidKeySize)
}
