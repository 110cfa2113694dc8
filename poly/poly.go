// Package poly implements univariate polynomial arithmetic over any scalar
// type satisfying the scalar.Number contract: construction with automatic
// normalization, addition, multiplication, Horner evaluation and Lagrange
// interpolation.
package poly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tuneinsight/polykit/scalar"
)

var (
	// ErrEmptyCoefficients is returned when constructing a polynomial from
	// an empty coefficient slice.
	ErrEmptyCoefficients = errors.New("empty coefficient slice")

	// ErrNoPoints is returned when interpolating from an empty set of
	// points.
	ErrNoPoints = errors.New("no interpolation points")

	// ErrDuplicateNode is returned when two interpolation points share the
	// same x-coordinate.
	ErrDuplicateNode = errors.New("duplicate x-coordinate")
)

// Polynomial is the structure that contains the coefficients of a
// polynomial: Coeffs[i] is the coefficient of x^i.
//
// A Polynomial is always kept in normal form: the coefficient slice has no
// trailing zero coefficient, except that the zero polynomial is represented
// by a single zero coefficient. The empty slice is never a valid
// representation. Values are immutable; every operation allocates its
// result and leaves its operands untouched, so concurrent read-only use
// requires no synchronization.
type Polynomial[T scalar.Number[T]] struct {
	Coeffs []T
}

// NewPolynomial creates a new polynomial from the provided coefficients,
// where coeffs[i] is the coefficient of x^i. The input slice is copied and
// trailing zero coefficients are trimmed, but never below a single
// coefficient. Constructing from an empty slice returns an error wrapping
// ErrEmptyCoefficients.
func NewPolynomial[T scalar.Number[T]](coeffs []T) (Polynomial[T], error) {
	if len(coeffs) == 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot NewPolynomial: %w", ErrEmptyCoefficients)
	}

	c := make([]T, len(coeffs))
	copy(c, coeffs)

	return Polynomial[T]{Coeffs: normalize(c)}, nil
}

// normalize trims contiguous zero coefficients from the tail of coeffs,
// keeping at least one coefficient so that the all-zero input collapses to
// the canonical zero polynomial. It returns a re-slice of its input.
func normalize[T scalar.Number[T]](coeffs []T) []T {
	n := len(coeffs)
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	return coeffs[:n]
}

// Degree returns the degree of the polynomial, i.e. len(Coeffs)-1. By this
// representation the zero polynomial has degree 0.
func (p Polynomial[T]) Degree() int {
	return len(p.Coeffs) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	return len(p.Coeffs) == 1 && p.Coeffs[0].IsZero()
}

// CopyNew returns a deep copy of p.
func (p Polynomial[T]) CopyNew() Polynomial[T] {
	coeffs := make([]T, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Polynomial[T]{Coeffs: coeffs}
}

// Equal returns true if p and q have coefficient slices of equal length
// that are equal at every position. Equality is structural: there is no
// tolerance for inexact scalar types.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !p.Coeffs[i].Equal(q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + q. The result is normalized, so adding a polynomial to
// its additive inverse returns the canonical zero polynomial.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}

	zero := p.Coeffs[0].Zero()

	coeffs := make([]T, n)
	for i := range coeffs {
		a, b := zero, zero
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		coeffs[i] = a.Add(b)
	}

	return Polynomial[T]{Coeffs: normalize(coeffs)}
}

// Mul returns p * q, computed as the discrete convolution of the two
// coefficient slices. Multiplying by the zero polynomial returns the zero
// polynomial.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	zero := p.Coeffs[0].Zero()

	coeffs := make([]T, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range coeffs {
		coeffs[i] = zero
	}

	for i, a := range p.Coeffs {
		for j, b := range q.Coeffs {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}

	return Polynomial[T]{Coeffs: normalize(coeffs)}
}

// Evaluate returns y = p(x), computed with Horner's method: a single pass
// from the highest-degree coefficient down, using one multiplication and
// one addition per coefficient. The zero polynomial evaluates to the scalar
// zero for every x.
func (p Polynomial[T]) Evaluate(x T) T {
	y := p.Coeffs[0].Zero()
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y.Mul(x).Add(p.Coeffs[i])
	}
	return y
}

// String returns the polynomial formatted as
// "(c0 x^0) + (c1 x^1) + ... + (cn x^n)".
func (p Polynomial[T]) String() string {
	var sb strings.Builder
	for i, c := range p.Coeffs {
		fmt.Fprintf(&sb, "(%s x^%d) + ", c.String(), i)
	}
	return strings.TrimSuffix(sb.String(), " + ")
}
