package topsis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/normalize"
)

// MethodName identifies this ranker in result tables.
const MethodName = "topsis"

// Rank computes the TOPSIS ranking over a vector-normalized matrix.
//
// Contract:
//   - nm is the output of normalize.Vector (direction preserved),
//   - len(w) == len(imp) == nm.NumCriteria().
//
// Scores are the closeness coefficients c_i ∈ [0,1]; rank 1 is the
// closest to the ideal solution.
//
// Errors: decision.ErrShapeMismatch (wrapped) for mismatched vectors.
//
// Complexity: O(r·c).
func Rank(nm *decision.Matrix, w decision.Weights, imp decision.Impacts) (decision.Ranking, error) {
	if err := shapeCheck(nm, w, imp); err != nil {
		return decision.Ranking{}, err
	}

	var (
		r = nm.NumAlternatives()
		c = nm.NumCriteria()

		// ideal[j] / antiIdeal[j]: the per-criterion extrema of the
		// weighted matrix, direction chosen by imp[j].
		ideal     = make([]float64, c)
		antiIdeal = make([]float64, c)
		weighted  = make([][]float64, r)
	)

	// Stage 1: weighted matrix and per-column extrema in one pass.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		weighted[i] = make([]float64, c)
	}
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			v = w[j] * nm.At(i, j)
			weighted[i][j] = v
			if i == 0 {
				ideal[j], antiIdeal[j] = v, v
				continue
			}
			ideal[j] = math.Max(ideal[j], v)
			antiIdeal[j] = math.Min(antiIdeal[j], v)
		}
		// For a cost criterion the ideal is the minimum, not the maximum.
		if imp[j] == decision.Cost {
			ideal[j], antiIdeal[j] = antiIdeal[j], ideal[j]
		}
	}

	// Stage 2: Euclidean distances to A⁺/A⁻ and closeness per alternative.
	scores := make([]float64, r)
	var dPlus, dMinus, d float64
	for i = 0; i < r; i++ {
		dPlus, dMinus = 0, 0
		for j = 0; j < c; j++ {
			d = weighted[i][j] - ideal[j]
			dPlus += d * d
			d = weighted[i][j] - antiIdeal[j]
			dMinus += d * d
		}
		dPlus, dMinus = math.Sqrt(dPlus), math.Sqrt(dMinus)

		// Degenerate but valid: the alternative coincides with both ideals
		// (every column collapsed). Score 0 by convention, never NaN.
		if dPlus+dMinus == 0 {
			scores[i] = 0
			continue
		}
		scores[i] = dMinus / (dPlus + dMinus)
	}

	return decision.NewRanking(MethodName, nm.Labels(), scores, decision.Descending), nil
}

// RankMatrix vector-normalizes a raw decision matrix and ranks it.
// Equivalent to normalize.Vector followed by Rank.
func RankMatrix(m *decision.Matrix, w decision.Weights, imp decision.Impacts) (decision.Ranking, error) {
	nm, err := normalize.Vector(m)
	if err != nil {
		return decision.Ranking{}, err
	}

	return Rank(nm, w, imp)
}

// shapeCheck aggregates weight/impact length mismatches before any math.
func shapeCheck(nm *decision.Matrix, w decision.Weights, imp decision.Impacts) error {
	var issues []error
	if err := w.Validate(nm.NumCriteria()); err != nil {
		issues = append(issues, err)
	}
	if err := imp.Validate(nm.NumCriteria()); err != nil {
		issues = append(issues, err)
	}
	if len(issues) == 1 {
		return fmt.Errorf("topsis: %w", issues[0])
	}
	if len(issues) > 1 {
		return fmt.Errorf("topsis: %w", &decision.ValidationError{Issues: issues})
	}

	return nil
}
