// SPDX-License-Identifier: MIT
// Package weights - AHP pairwise weighting and consistency diagnostics.
//
// The principal eigenvector of the pairwise matrix is approximated with
// the geometric-mean method: w_i ∝ (Π_j a_ij)^(1/n). For a perfectly
// consistent matrix (a_ij = w_i/w_j) this is exact; for mildly
// inconsistent judgments it is the standard textbook approximation.
// λmax is then estimated as the mean of (A·w)_i / w_i.

package weights

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/topsix/decision"
)

var (
	// ErrNotReciprocal indicates a_ij·a_ji deviating from 1 beyond
	// reciprocityTol, or a diagonal entry different from 1.
	ErrNotReciprocal = errors.New("weights: pairwise matrix is not reciprocal")

	// ErrPairwiseEntry indicates a non-positive or non-finite judgment.
	ErrPairwiseEntry = errors.New("weights: pairwise entries must be positive and finite")
)

// ConsistencyThreshold is the consistency-ratio level above which an AHP
// matrix is flagged as inconsistent (Saaty's 0.1 rule).
const ConsistencyThreshold = 0.1

// reciprocityTol bounds |a_ij·a_ji − 1| for a matrix to count as
// reciprocal. Loose enough to absorb judgments entered as "1/3" ≈ 0.333.
const reciprocityTol = 1e-2

// randomIndex is Saaty's random consistency index RI(n), indexed by matrix
// order n = 1..10. Index 0 is unused.
var randomIndex = [...]float64{0, 0, 0, 0.58, 0.90, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}

// WarnConsistency is the Warning code attached when CR > ConsistencyThreshold.
const WarnConsistency = "ahp-consistency"

// WarnConsistencyUnchecked is the Warning code attached when the matrix
// order exceeds the RI table (n > 10) and CR cannot be computed.
const WarnConsistencyUnchecked = "ahp-consistency-unchecked"

// AHPWeights derives a weight vector from an n×n pairwise-comparison
// matrix of the criteria.
//
// Contract:
//   - square, n ≥ 1, every entry positive and finite,
//   - diagonal 1 and a_ij·a_ji = 1, both within reciprocityTol.
//
// Returns the normalized geometric-mean weight vector plus zero or one
// consistency warning; the warning never invalidates the weights.
//
// Errors:
//   - decision.ErrShapeMismatch (wrapped) for a ragged/non-square input,
//   - ErrPairwiseEntry, ErrNotReciprocal per the contract above.
//
// Complexity: O(n²).
func AHPWeights(pairwise [][]float64) (decision.Weights, []decision.Warning, error) {
	n := len(pairwise)
	if n == 0 {
		return nil, nil, fmt.Errorf("weights: empty pairwise matrix: %w", decision.ErrShapeMismatch)
	}
	if err := validatePairwise(pairwise); err != nil {
		return nil, nil, err
	}

	// Stage 1: geometric mean per row, then renormalize to sum 1.
	w := make(decision.Weights, n)
	var (
		i, j   int
		logSum float64
		total  float64
	)
	for i = 0; i < n; i++ {
		// Work in log space: n entries on the Saaty scale stay well inside
		// float range either way, but log sums are exact-order stable.
		logSum = 0
		for j = 0; j < n; j++ {
			logSum += math.Log(pairwise[i][j])
		}
		w[i] = math.Exp(logSum / float64(n))
		total += w[i]
	}
	for i = range w {
		w[i] /= total
	}

	// Stage 2: consistency diagnostics.
	warning := consistencyWarning(pairwise, w)
	if warning != nil {
		return w, []decision.Warning{*warning}, nil
	}

	return w, nil, nil
}

// ConsistencyRatio computes CR = CI / RI(n) for a validated pairwise
// matrix and its weight vector, where CI = (λmax − n)/(n − 1).
//
// Orders 1 and 2 are consistent by construction and return 0. Orders
// above 10 are outside the RI table; ok is false and the caller should
// treat consistency as unchecked.
func ConsistencyRatio(pairwise [][]float64, w decision.Weights) (cr float64, ok bool) {
	n := len(pairwise)
	if n <= 2 {
		return 0, true
	}
	if n >= len(randomIndex) {
		return 0, false
	}

	// λmax ≈ mean of (A·w)_i / w_i.
	flat := make([]float64, 0, n*n)
	for i := range pairwise {
		flat = append(flat, pairwise[i]...)
	}
	var aw mat.VecDense
	aw.MulVec(mat.NewDense(n, n, flat), mat.NewVecDense(n, []float64(w)))

	var lambdaMax float64
	for i := 0; i < n; i++ {
		lambdaMax += aw.AtVec(i) / w[i]
	}
	lambdaMax /= float64(n)

	ci := (lambdaMax - float64(n)) / (float64(n) - 1)

	return ci / randomIndex[n], true
}

// consistencyWarning folds the CR check into an optional decision.Warning.
func consistencyWarning(pairwise [][]float64, w decision.Weights) *decision.Warning {
	cr, ok := ConsistencyRatio(pairwise, w)
	if !ok {
		return &decision.Warning{
			Code: WarnConsistencyUnchecked,
			Message: fmt.Sprintf("pairwise matrix order %d exceeds the random-index table; consistency not checked",
				len(pairwise)),
		}
	}
	if cr > ConsistencyThreshold {
		return &decision.Warning{
			Code: WarnConsistency,
			Message: fmt.Sprintf("consistency ratio %.4f exceeds %.2f; judgments may be contradictory",
				cr, ConsistencyThreshold),
		}
	}

	return nil
}

// validatePairwise enforces shape, positivity, diagonal and reciprocity.
func validatePairwise(pairwise [][]float64) error {
	n := len(pairwise)
	var i, j int
	for i = 0; i < n; i++ {
		if len(pairwise[i]) != n {
			return fmt.Errorf("weights: pairwise row %d has %d entries, want %d: %w",
				i, len(pairwise[i]), n, decision.ErrShapeMismatch)
		}
		for j = 0; j < n; j++ {
			v := pairwise[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return fmt.Errorf("%w: entry (%d,%d) = %v", ErrPairwiseEntry, i, j, v)
			}
		}
	}
	for i = 0; i < n; i++ {
		if math.Abs(pairwise[i][i]-1) > reciprocityTol {
			return fmt.Errorf("%w: diagonal entry (%d,%d) = %v", ErrNotReciprocal, i, i, pairwise[i][i])
		}
		for j = i + 1; j < n; j++ {
			if math.Abs(pairwise[i][j]*pairwise[j][i]-1) > reciprocityTol {
				return fmt.Errorf("%w: a[%d][%d]·a[%d][%d] = %v",
					ErrNotReciprocal, i, j, j, i, pairwise[i][j]*pairwise[j][i])
			}
		}
	}

	return nil
}
