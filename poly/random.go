package poly

import (
	"fmt"

	"github.com/tuneinsight/polykit/scalar"
)

// NewRandomPolynomial creates a new polynomial of degree at most degree,
// with degree+1 coefficients drawn from the provided sampler. The result is
// normalized, so its effective degree can be lower if the sampler returns
// zero coefficients at the tail.
func NewRandomPolynomial[T scalar.Number[T]](source scalar.Sampler[T], degree int) (Polynomial[T], error) {

	if degree < 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot NewRandomPolynomial: degree cannot be negative")
	}

	coeffs := make([]T, degree+1)
	for i := range coeffs {
		coeffs[i] = source.Sample()
	}

	return Polynomial[T]{Coeffs: normalize(coeffs)}, nil
}
