package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// ReadAsUint64 reads a uint64 from r and stores it in c through an *uint64
// cast. User must ensure that T can be stored in an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	nint, err := ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
	return int64(nint), err
}

// ReadAsUint64Slice reads a slice of uint64 from r into c through a
// *[]uint64 cast. User must ensure that T can be stored in an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	nint, err := ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
	return int64(nint), err
}

// ReadUint64 reads a uint64 from r and stores it in c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	if n, err = r.Read(bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadUint64Slice reads a slice of uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int, err error) {

	if len(c) == 0 {
		return
	}

	// Peeks at most the number of bytes still needed, to avoid an EOF.
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	var slice []byte
	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	// The reader is exhausted but c still needs to be filled: recursing
	// would never make progress.
	if buffered == 0 {
		return n, fmt.Errorf("cannot ReadUint64Slice: %w", io.ErrUnexpectedEOF)
	}

	// If the slice to fill is equal or smaller than the amount peeked
	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = binary.LittleEndian.Uint64(slice[j:])
		}

		return r.Discard(N << 3) // Discards what was read
	}

	// Decodes the maximum
	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = binary.LittleEndian.Uint64(slice[j:])
	}

	// Discards what was peeked
	var inc int
	if inc, err = r.Discard(len(slice)); err != nil {
		return n + inc, err
	}

	n += inc

	// Recurses on the remaining slice to fill
	if inc, err = ReadUint64Slice(r, c[buffered:]); err != nil {
		return n + inc, err
	}

	return n + inc, nil
}
