package encryption

import (
	"errors"
	"io"

	"github.com/samber/oops"

	"github.com/namihq/rijndael-go/rijndael"
)

// cryptStream copies src to dst through fn, one chunk of whole blocks at a
// time. fn transforms a chunk in place. The stream must hold at least one
// block and end on a block boundary; chunks before a misaligned tail have
// already been written when that is detected.
func cryptStream(src io.Reader, dst io.Writer, chunkSize int, fn func(buf []byte) error) (int64, error) {
	buf := make([]byte, chunkSize)
	var total int64

	for {
		n, err := io.ReadFull(src, buf)
		if errors.Is(err, io.EOF) {
			break
		}
		last := errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !last {
			return total, oops.In("encryption").Wrapf(err, "read input")
		}
		if n == 0 {
			break
		}

		if n%rijndael.BlockSize != 0 {
			return total, oops.
				In("encryption").
				Code("invalid_length").
				With("length", total+int64(n)).
				Wrapf(rijndael.ErrInvalidLength, "stream is not block aligned")
		}

		if err := fn(buf[:n]); err != nil {
			return total, err
		}
		if _, err := dst.Write(buf[:n]); err != nil {
			return total, oops.In("encryption").Wrapf(err, "write output")
		}
		total += int64(n)

		if last {
			break
		}
	}

	if total == 0 {
		return 0, oops.
			In("encryption").
			Code("invalid_length").
			With("length", 0).
			Wrapf(rijndael.ErrInvalidLength, "stream is empty")
	}
	return total, nil
}
