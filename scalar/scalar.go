// Package scalar defines the numeric capability set required by the poly
// package and provides machine, integer and arbitrary-precision
// implementations of it.
package scalar

import "golang.org/x/exp/constraints"

// Number is the contract a scalar type must satisfy to be usable as a
// polynomial coefficient: an equality comparison, additive and
// multiplicative identities, and addition, multiplication, negation and
// division closed over the type.
//
// All methods are pure: they never mutate their receiver or argument and
// return freshly derived values. Zero and One are instance methods so that
// derived values inherit per-instance attributes such as the precision of a
// big-float scalar.
type Number[T any] interface {
	// Add returns the receiver plus x.
	Add(x T) T
	// Mul returns the receiver times x.
	Mul(x T) T
	// Neg returns the additive inverse of the receiver.
	Neg() T
	// Quo returns the receiver divided by x. Division by the zero scalar
	// follows the semantics of the underlying type.
	Quo(x T) T
	// Equal returns true if the receiver and x represent the same value.
	Equal(x T) bool
	// IsZero returns true if the receiver is the additive identity.
	IsZero() bool
	// Zero returns the additive identity of the type.
	Zero() T
	// One returns the multiplicative identity of the type.
	One() T
	// String returns a human-readable representation of the value.
	String() string
}

// Float64s converts a slice of machine numbers into a slice of Float64
// scalars.
func Float64s[V constraints.Integer | constraints.Float](v []V) (c []Float64) {
	c = make([]Float64, len(v))
	for i := range v {
		c[i] = Float64(v[i])
	}
	return
}

// Int64s converts a slice of machine integers into a slice of Int64 scalars.
func Int64s[V constraints.Integer](v []V) (c []Int64) {
	c = make([]Int64, len(v))
	for i := range v {
		c[i] = Int64(v[i])
	}
	return
}
