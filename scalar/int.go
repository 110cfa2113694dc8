package scalar

import "strconv"

// Int64 is the exact machine-integer implementation of Number. Quo is
// truncated integer division, so Int64 only supports interpolation when all
// intermediate divisions are exact.
type Int64 int64

// Add returns x + y.
func (x Int64) Add(y Int64) Int64 {
	return x + y
}

// Mul returns x * y.
func (x Int64) Mul(y Int64) Int64 {
	return x * y
}

// Neg returns -x.
func (x Int64) Neg() Int64 {
	return -x
}

// Quo returns x / y, truncated towards zero.
func (x Int64) Quo(y Int64) Int64 {
	return x / y
}

// Equal returns true if x == y.
func (x Int64) Equal(y Int64) bool {
	return x == y
}

// IsZero returns true if x == 0.
func (x Int64) IsZero() bool {
	return x == 0
}

// Zero returns the Int64 additive identity.
func (x Int64) Zero() Int64 {
	return 0
}

// One returns the Int64 multiplicative identity.
func (x Int64) One() Int64 {
	return 1
}

// String returns the decimal representation of x.
func (x Int64) String() string {
	return strconv.FormatInt(int64(x), 10)
}
