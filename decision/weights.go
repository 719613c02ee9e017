package decision

import (
	"fmt"
	"math"
)

// WeightTolerance is the floating tolerance within which a weight vector
// is considered to sum to 1.
const WeightTolerance = 1e-9

// Weights is one non-negative weight per criterion, column order,
// summing to 1. Construct with NewWeights or Equal.
type Weights []float64

// NewWeights validates and renormalizes a raw weight vector.
//
// Contract:
//   - every entry finite and non-negative,
//   - at least one entry strictly positive.
//
// The result always sums to 1 within WeightTolerance; inputs that already
// do are only copied. All violations are aggregated.
//
// Complexity: O(n).
func NewWeights(raw []float64) (Weights, error) {
	var issues []error
	var (
		i   int
		sum float64
	)
	for i = range raw {
		switch {
		case math.IsNaN(raw[i]) || math.IsInf(raw[i], 0):
			issues = append(issues, fmt.Errorf("weight %d: %w", i, ErrNonFinite))
		case raw[i] < 0:
			issues = append(issues, fmt.Errorf("weight %d is %v: %w", i, raw[i], ErrNegativeWeight))
		default:
			sum += raw[i]
		}
	}
	if len(issues) == 0 && sum <= 0 {
		issues = append(issues, ErrZeroWeightSum)
	}
	if err := collect(issues); err != nil {
		return nil, err
	}

	out := make(Weights, len(raw))
	if math.Abs(sum-1) <= WeightTolerance {
		copy(out, raw)
		return out, nil
	}
	for i = range raw {
		out[i] = raw[i] / sum
	}

	return out, nil
}

// Equal returns the uniform weight vector 1/n for n criteria.
func Equal(n int) Weights {
	out := make(Weights, n)
	var i int
	for i = range out {
		out[i] = 1 / float64(n)
	}

	return out
}

// Validate checks that the vector covers exactly n criteria.
func (w Weights) Validate(n int) error {
	if len(w) != n {
		return fmt.Errorf("%d weights for %d criteria: %w", len(w), n, ErrShapeMismatch)
	}

	return nil
}

// Sum returns the total of all weights; 1 within WeightTolerance for any
// vector built by this package.
func (w Weights) Sum() float64 {
	var s float64
	for _, v := range w {
		s += v
	}

	return s
}
