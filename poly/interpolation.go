package poly

import (
	"fmt"

	"github.com/tuneinsight/polykit/scalar"
)

// Point is a sample (X, Y) of a univariate function.
type Point[T scalar.Number[T]] struct {
	X, Y T
}

// Interpolate returns the polynomial of minimal degree passing through all
// the provided points, built in Lagrange form: the sum over the points of
// the per-point basis term that is Y at its own x-coordinate and 0 at every
// other one. The returned polynomial has degree at most len(points)-1 and,
// evaluated at each X, reproduces the matching Y (up to rounding for
// inexact scalar types).
//
// Interpolating from an empty set of points returns an error wrapping
// ErrNoPoints. Two points sharing an x-coordinate would require a division
// by the scalar zero, so this is rejected for every scalar type with an
// error wrapping ErrDuplicateNode before any division takes place.
func Interpolate[T scalar.Number[T]](points []Point[T]) (Polynomial[T], error) {

	if len(points) == 0 {
		return Polynomial[T]{}, fmt.Errorf("cannot Interpolate: %w", ErrNoPoints)
	}

	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return Polynomial[T]{}, fmt.Errorf("cannot Interpolate: %w (points %d and %d share x=%s)", ErrDuplicateNode, i, j, points[i].X.String())
			}
		}
	}

	acc := Polynomial[T]{Coeffs: []T{points[0].X.Zero()}}
	for idx := range points {
		acc = acc.Add(lagrangeTerm(points, idx))
	}

	return acc, nil
}

// lagrangeTerm builds the basis term for points[idx]: the product of the
// linear factors (x - x_j)/(x_idx - x_j) over all j != idx, scaled by the
// constant y_idx.
func lagrangeTerm[T scalar.Number[T]](points []Point[T], idx int) Polynomial[T] {
	xi := points[idx].X
	one := xi.One()

	term := Polynomial[T]{Coeffs: []T{one}}
	for j, pt := range points {
		if j == idx {
			continue
		}

		// (x - x_j)/(x_i - x_j) expressed as coefficients
		// [-x_j/(x_i - x_j), 1/(x_i - x_j)].
		d := xi.Add(pt.X.Neg())
		factor := Polynomial[T]{Coeffs: normalize([]T{pt.X.Neg().Quo(d), one.Quo(d)})}
		term = term.Mul(factor)
	}

	return term.Mul(Polynomial[T]{Coeffs: []T{points[idx].Y}})
}
