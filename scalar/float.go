package scalar

import "strconv"

// Float64 is the IEEE-754 double-precision implementation of Number.
// Duplicate-free interpolation nodes are the caller's responsibility;
// dividing by a zero Float64 produces Inf/NaN per IEEE-754.
type Float64 float64

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 {
	return x + y
}

// Mul returns x * y.
func (x Float64) Mul(y Float64) Float64 {
	return x * y
}

// Neg returns -x.
func (x Float64) Neg() Float64 {
	return -x
}

// Quo returns x / y.
func (x Float64) Quo(y Float64) Float64 {
	return x / y
}

// Equal returns true if x == y. This is a strict bit-level comparison with
// no tolerance.
func (x Float64) Equal(y Float64) bool {
	return x == y
}

// IsZero returns true if x == 0.
func (x Float64) IsZero() bool {
	return x == 0
}

// Zero returns the Float64 additive identity.
func (x Float64) Zero() Float64 {
	return 0
}

// One returns the Float64 multiplicative identity.
func (x Float64) One() Float64 {
	return 1
}

// String returns the shortest decimal representation of x.
func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
