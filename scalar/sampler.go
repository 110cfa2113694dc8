package scalar

import (
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/polykit/utils/sampling"
)

// Sampler generates scalar values of type T from some distribution.
type Sampler[T any] interface {
	Sample() T
}

// Float64Sampler samples Float64 values uniformly in the interval [a, b)
// from a PRNG.
type Float64Sampler struct {
	prng sampling.PRNG
	a, b float64
}

// NewFloat64Sampler creates a new Float64Sampler over [a, b).
func NewFloat64Sampler(prng sampling.PRNG, a, b float64) *Float64Sampler {
	if b <= a {
		panic(fmt.Errorf("cannot NewFloat64Sampler: invalid interval [%f, %f)", a, b))
	}
	return &Float64Sampler{prng: prng, a: a, b: b}
}

// Sample returns a fresh uniform Float64 in [a, b).
func (s *Float64Sampler) Sample() Float64 {
	// 53 uniform mantissa bits mapped to [0, 1).
	f := float64(randUint64(s.prng)>>11) / (1 << 53)
	return Float64(s.a + f*(s.b-s.a))
}

// Int64Sampler samples Int64 values uniformly in the half-open range [a, b)
// from a PRNG.
type Int64Sampler struct {
	prng sampling.PRNG
	a, b int64
}

// NewInt64Sampler creates a new Int64Sampler over [a, b).
func NewInt64Sampler(prng sampling.PRNG, a, b int64) *Int64Sampler {
	if b <= a {
		panic(fmt.Errorf("cannot NewInt64Sampler: invalid range [%d, %d)", a, b))
	}
	return &Int64Sampler{prng: prng, a: a, b: b}
}

// Sample returns a fresh uniform Int64 in [a, b).
func (s *Int64Sampler) Sample() Int64 {
	span := uint64(s.b - s.a)
	// Rejection sampling to avoid the modulo bias.
	limit := uint64(0xFFFFFFFFFFFFFFFF) - (0xFFFFFFFFFFFFFFFF % span)
	v := randUint64(s.prng)
	for v >= limit {
		v = randUint64(s.prng)
	}
	return Int64(s.a + int64(v%span))
}

func randUint64(prng sampling.PRNG) uint64 {
	var buf [8]byte
	if _, err := prng.Read(buf[:]); err != nil {
		panic(fmt.Errorf("cannot read from prng: %w", err))
	}
	return binary.LittleEndian.Uint64(buf[:])
}
