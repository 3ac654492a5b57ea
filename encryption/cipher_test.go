package encryption

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namihq/rijndael-go/rijndael"
)

func TestCipherSuite(t *testing.T) {
	assert.True(t, RIJNDAEL128CBC.IsValid())
	assert.True(t, RIJNDAEL128ECB.IsValid())
	assert.False(t, CipherSuite("AES256GCM").IsValid())

	assert.True(t, RIJNDAEL128CBC.RequiresIV())
	assert.False(t, RIJNDAEL128ECB.RequiresIV())
}

func TestNewCipherUnsupportedSuite(t *testing.T) {
	cipher, err := NewCipher(CipherSuite("AES256GCM"), make([]byte, 16), nil)
	require.ErrorIs(t, err, ErrUnsupportedCipherSuite)
	assert.Nil(t, cipher)
}

func TestOptionsChunkSize(t *testing.T) {
	tests := []struct {
		name string
		opts *Options
		want int
	}{
		{name: "nil options", opts: nil, want: DefaultChunkSize},
		{name: "zero value", opts: &Options{}, want: DefaultChunkSize},
		{name: "negative", opts: &Options{ChunkSize: -1}, want: DefaultChunkSize},
		{name: "below one block", opts: &Options{ChunkSize: 5}, want: rijndael.BlockSize},
		{name: "rounded down", opts: &Options{ChunkSize: 100}, want: 96},
		{name: "exact", opts: &Options{ChunkSize: 4096}, want: 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.chunkSize())
		})
	}
}

func TestECBCipher(t *testing.T) {
	key, err := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)
	plaintext, err := hex.DecodeString("6bc1bee22e409f96e93d7e117393172aae2d8a571e03ac9c9eb76fac45af8e51")
	require.NoError(t, err)

	cipher, err := NewCipherWithOptions(RIJNDAEL128ECB, key, nil, &Options{ChunkSize: 16})
	require.NoError(t, err)

	var encrypted, decrypted bytes.Buffer
	require.NoError(t, cipher.EncryptStream(bytes.NewReader(plaintext), &encrypted))
	// SP 800-38A F.1.1, no IV prefix
	assert.Equal(t, "3ad77bb40d7a3660a89ecaf32466ef97f5d3d58503b9699de785895a96fdbaaf", hex.EncodeToString(encrypted.Bytes()))

	require.NoError(t, cipher.DecryptStream(bytes.NewReader(encrypted.Bytes()), &decrypted))
	assert.Equal(t, plaintext, decrypted.Bytes())
}

func TestECBCipherErrors(t *testing.T) {
	_, err := NewECBCipher(make([]byte, 24))
	require.ErrorIs(t, err, rijndael.ErrInvalidKeySize)

	cipher, err := NewECBCipher(make([]byte, 16))
	require.NoError(t, err)

	err = cipher.EncryptStream(bytes.NewReader(make([]byte, 17)), &bytes.Buffer{})
	assert.ErrorIs(t, err, rijndael.ErrInvalidLength)

	err = cipher.DecryptStream(bytes.NewReader(nil), &bytes.Buffer{})
	assert.ErrorIs(t, err, rijndael.ErrInvalidLength)

	err = cipher.DecryptStream(bytes.NewReader(make([]byte, 16)), &failingWriter{err: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
}
