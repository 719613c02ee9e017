package normalize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/topsix/decision"
)

// Vector divides every entry by the Euclidean norm of its column:
//
//	n_ij = x_ij / sqrt(Σ_k x_kj²)
//
// Each resulting column has L2 norm 1. Direction is preserved, so the
// consuming ranker still applies impacts itself.
//
// Errors:
//   - decision.ErrDegenerateColumn (wrapped) if a column is all zeros.
//
// Complexity: O(r*c) time, O(r*c) memory for the result.
func Vector(m *decision.Matrix) (*decision.Matrix, error) {
	rows := make([][]float64, m.NumAlternatives())
	var i int
	for i = range rows {
		rows[i] = m.Row(i)
	}

	var (
		j    int
		norm float64
		col  []float64
	)
	for j = 0; j < m.NumCriteria(); j++ {
		col = m.Column(j)
		norm = floats.Norm(col, 2)
		if norm == 0 {
			return nil, degenerate(m, j, "zero Euclidean norm")
		}
		for i = range rows {
			rows[i][j] /= norm
		}
	}

	return rebuild(m, rows)
}

// MinMax rescales every column linearly into [0,1], folding the criterion
// direction in:
//
//	benefit: n_ij = (x_ij - min_j) / (max_j - min_j)
//	cost:    n_ij = (max_j - x_ij) / (max_j - min_j)
//
// After MinMax, 1 is the best attainable value in every column.
//
// Errors:
//   - decision.ErrShapeMismatch (wrapped) if len(imp) != criterion count.
//   - decision.ErrDegenerateColumn (wrapped) if max_j == min_j.
//
// Complexity: O(r*c).
func MinMax(m *decision.Matrix, imp decision.Impacts) (*decision.Matrix, error) {
	if err := imp.Validate(m.NumCriteria()); err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	rows := make([][]float64, m.NumAlternatives())
	var i int
	for i = range rows {
		rows[i] = m.Row(i)
	}

	var (
		j      int
		lo, hi float64
		span   float64
		col    []float64
	)
	for j = 0; j < m.NumCriteria(); j++ {
		col = m.Column(j)
		lo, hi = floats.Min(col), floats.Max(col)
		span = hi - lo
		if span == 0 {
			return nil, degenerate(m, j, "zero range")
		}
		for i = range rows {
			if imp[j] == decision.Benefit {
				rows[i][j] = (rows[i][j] - lo) / span
			} else {
				rows[i][j] = (hi - rows[i][j]) / span
			}
		}
	}

	return rebuild(m, rows)
}

// degenerate names the offending criterion in a wrapped sentinel.
func degenerate(m *decision.Matrix, col int, reason string) error {
	return fmt.Errorf("normalize: column %q: %s: %w",
		m.Criteria()[col], reason, decision.ErrDegenerateColumn)
}

// rebuild re-validates through the decision constructor so the normalized
// matrix carries the same guarantees as any other Matrix.
func rebuild(m *decision.Matrix, rows [][]float64) (*decision.Matrix, error) {
	out, err := decision.NewMatrix(m.Labels(), m.Criteria(), rows)
	if err != nil {
		// Unreachable for a valid input matrix; surface rather than panic.
		return nil, fmt.Errorf("normalize: %w", err)
	}

	return out, nil
}
