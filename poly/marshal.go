package poly

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/tuneinsight/polykit/scalar"
	"github.com/tuneinsight/polykit/utils/buffer"
	"github.com/zeebo/blake3"
)

// Binary serialization is supported for fixed-width scalar types
// (scalar.Float64 and scalar.Int64), which are encoded as 64-bit
// little-endian words. Other scalar types report an error.

// maxReadChunk bounds the number of coefficients allocated per read when
// decoding a wire-provided length prefix.
const maxReadChunk = 1 << 13

// BinarySize returns the serialized size of the polynomial in bytes, or an
// error if the coefficient type is not fixed-width.
func (p Polynomial[T]) BinarySize() (size int, err error) {
	var t T
	switch any(t).(type) {
	case scalar.Float64, scalar.Int64:
		return 8 + len(p.Coeffs)*8, nil
	default:
		return 0, fmt.Errorf("cannot BinarySize: coefficient type %T is not fixed-width", t)
	}
}

// WriteTo writes the polynomial on an io.Writer. It implements the
// io.WriterTo interface and writes exactly BinarySize bytes on w.
//
// Unless w implements the buffer.Writer interface, it will be wrapped into
// a bufio.Writer. Since this requires allocations, it is preferable to pass
// a buffer.Writer directly, e.g. buffer.NewBuffer(b) when writing to a
// pre-allocated var b []byte.
func (p Polynomial[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(p.Coeffs)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		var t T
		switch any(t).(type) {
		case scalar.Float64, scalar.Int64:
			if inc, err = buffer.WriteAsUint64Slice[T](w, p.Coeffs); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
			}
			n += inc
		default:
			return n, fmt.Errorf("cannot WriteTo: coefficient type %T is not fixed-width", t)
		}

		return n, w.Flush()

	default:
		bw := bufio.NewWriter(w)
		if n, err = p.WriteTo(bw); err != nil {
			return
		}
		return n, bw.Flush()
	}
}

// ReadFrom reads the polynomial from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded coefficient slice is re-normalized,
// so the result always satisfies the normal-form invariant.
//
// Unless r implements the buffer.Reader interface, it will be wrapped into
// a bufio.Reader (see the note on WriteTo).
func (p *Polynomial[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var t T
		switch any(t).(type) {
		case scalar.Float64, scalar.Int64:
		default:
			return n, fmt.Errorf("cannot ReadFrom: coefficient type %T is not fixed-width", t)
		}

		var size int
		var inc int64
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		switch {
		case size == 0:
			return n, fmt.Errorf("cannot ReadFrom: %w", ErrEmptyCoefficients)
		case size < 0:
			return n, fmt.Errorf("cannot ReadFrom: invalid coefficient count %d", size)
		}

		// The length prefix comes from the wire, so the coefficient slice
		// is grown in bounded chunks: a corrupted prefix cannot force an
		// unbounded upfront allocation and truncated input surfaces as an
		// error from the slice reader.
		coeffs := p.Coeffs[:0]
		for len(coeffs) < size {
			m := size - len(coeffs)
			if m > maxReadChunk {
				m = maxReadChunk
			}

			coeffs = append(coeffs, make([]T, m)...)

			if inc, err = buffer.ReadAsUint64Slice[T](r, coeffs[len(coeffs)-m:]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
			}
			n += inc
		}

		p.Coeffs = normalize(coeffs)

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the polynomial on a slice of bytes.
func (p Polynomial[T]) MarshalBinary() (data []byte, err error) {
	size, err := p.BinarySize()
	if err != nil {
		return nil, err
	}
	buf := buffer.NewBufferSize(size)
	if _, err = p.WriteTo(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a slice of bytes on the polynomial.
func (p *Polynomial[T]) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}

// Digest returns the blake3 digest of the serialized polynomial, usable as
// a compact content identifier: two polynomials with the same coefficient
// encoding produce the same digest.
func (p Polynomial[T]) Digest() (digest []byte, err error) {
	buf := new(bytes.Buffer)
	if _, err = p.WriteTo(buf); err != nil {
		return nil, err
	}

	h := blake3.New()
	h.Write(buf.Bytes())
	return h.Sum(nil), nil
}
