package weights

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/topsix/decision"
)

// ErrNegativeEntry is returned when the decision matrix contains negative
// values: entropy weighting interprets each column as a probability-like
// distribution, which is undefined for negative mass.
var ErrNegativeEntry = errors.New("weights: entropy requires non-negative matrix entries")

// EntropyWeights derives weights from the dispersion of the data itself.
//
// Per column j over N alternatives:
//
//	p_ij = x_ij / Σ_i x_ij               (fails if the column sums to 0)
//	e_j  = -k Σ_i p_ij · ln(p_ij),  k = 1/ln(N),  with 0·ln(0) = 0
//	d_j  = 1 - e_j                       (degree of diversification)
//	w_j  = d_j / Σ_k d_k
//
// A constant column has e_j = 1, hence d_j = 0 and weight 0 — no
// discriminating power is not an error. Only when EVERY column is
// uniform does the method fail: Σ d_k = 0 cannot be renormalized.
//
// Errors:
//   - ErrNegativeEntry for negative matrix values,
//   - decision.ErrDegenerateColumn (wrapped) for a column summing to 0,
//   - decision.ErrUndefinedWeights (wrapped) when all d_j = 0.
//
// Complexity: O(r*c).
func EntropyWeights(m *decision.Matrix) (decision.Weights, error) {
	var (
		n        = m.NumAlternatives()
		c        = m.NumCriteria()
		k        = 1 / math.Log(float64(n))
		diverg   = make([]float64, c)
		divTotal float64
	)

	var (
		i, j    int
		col     []float64
		sum     float64
		entropy float64
		p       float64
	)
	for j = 0; j < c; j++ {
		col = m.Column(j)

		// Stage 1: column mass.
		sum = 0
		for i = range col {
			if col[i] < 0 {
				return nil, fmt.Errorf("%w: column %q entry %d", ErrNegativeEntry, m.Criteria()[j], i)
			}
			sum += col[i]
		}
		if sum == 0 {
			return nil, fmt.Errorf("weights: column %q sums to zero: %w",
				m.Criteria()[j], decision.ErrDegenerateColumn)
		}

		// Stage 2: Shannon entropy with the 0·ln(0)=0 convention.
		entropy = 0
		for i = range col {
			p = col[i] / sum
			if p > 0 {
				entropy -= p * math.Log(p)
			}
		}
		entropy *= k

		// Stage 3: diversification. Clamp the float noise around e_j ≈ 1
		// so a perfectly uniform column yields exactly 0, never -1e-16.
		diverg[j] = 1 - entropy
		if diverg[j] < 0 {
			diverg[j] = 0
		}
		divTotal += diverg[j]
	}

	if divTotal == 0 {
		return nil, fmt.Errorf("weights: every column is uniform: %w", decision.ErrUndefinedWeights)
	}

	out := make(decision.Weights, c)
	for j = range diverg {
		out[j] = diverg[j] / divTotal
	}

	return out, nil
}
