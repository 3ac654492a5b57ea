package rijndael

import (
	"errors"

	"github.com/samber/oops"
)

var (
	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("rijndael: invalid key size")

	// ErrInvalidBlockSize is returned when a single block or an IV is not
	// exactly BlockSize bytes.
	ErrInvalidBlockSize = errors.New("rijndael: invalid block size")

	// ErrInvalidLength is returned when a multi-block buffer is empty, is not
	// a whole number of blocks, or does not fit the destination.
	ErrInvalidLength = errors.New("rijndael: invalid buffer length")
)

func keySizeError(n int) error {
	return oops.
		In("rijndael").
		Code("invalid_key_size").
		With("length", n).
		Wrapf(ErrInvalidKeySize, "key must be %d bytes, got %d", KeySize, n)
}

func blockSizeError(what string, n int) error {
	return oops.
		In("rijndael").
		Code("invalid_block_size").
		With("length", n).
		Wrapf(ErrInvalidBlockSize, "%s must be %d bytes, got %d", what, BlockSize, n)
}

func lengthError(n int) error {
	return oops.
		In("rijndael").
		Code("invalid_length").
		With("length", n).
		Wrapf(ErrInvalidLength, "input must be a positive multiple of %d bytes, got %d", BlockSize, n)
}

func shortDstError(dst, src int) error {
	return oops.
		In("rijndael").
		Code("invalid_length").
		With("dst_length", dst, "src_length", src).
		Wrapf(ErrInvalidLength, "output smaller than input")
}
