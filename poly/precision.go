package poly

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polykit/scalar"
)

// PrecisionStats is a report on the absolute residuals |p(x_i) - y_i| of a
// polynomial against a set of reference points, typically the output of
// Interpolate against its own input. It is a diagnostic, not an error
// bound.
type PrecisionStats struct {
	MinErr, MaxErr float64
	MeanErr        float64
	MedianErr      float64
	Log2Precision  float64 // -log2(MaxErr); +Inf when all residuals are 0
}

// NewPrecisionStats computes the residual statistics of p against points.
func NewPrecisionStats(p Polynomial[scalar.Float64], points []Point[scalar.Float64]) (prec PrecisionStats, err error) {

	if len(points) == 0 {
		return PrecisionStats{}, fmt.Errorf("cannot NewPrecisionStats: %w", ErrNoPoints)
	}

	residuals := make([]float64, len(points))
	for i, pt := range points {
		residuals[i] = math.Abs(float64(p.Evaluate(pt.X).Add(pt.Y.Neg())))
	}

	if prec.MinErr, err = stats.Min(residuals); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MaxErr, err = stats.Max(residuals); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MeanErr, err = stats.Mean(residuals); err != nil {
		return PrecisionStats{}, err
	}
	if prec.MedianErr, err = stats.Median(residuals); err != nil {
		return PrecisionStats{}, err
	}

	prec.Log2Precision = -math.Log2(prec.MaxErr)

	return prec, nil
}

// String returns a single-line report of the precision statistics.
func (prec PrecisionStats) String() string {
	return fmt.Sprintf("min=%.4e max=%.4e mean=%.4e median=%.4e log2prec=%.2f",
		prec.MinErr, prec.MaxErr, prec.MeanErr, prec.MedianErr, prec.Log2Precision)
}
