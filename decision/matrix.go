// SPDX-License-Identifier: MIT
// Package decision - decision matrix construction and safe accessors.
//
// Purpose:
//   - Hold the alternatives×criteria table behind a validated, immutable value.
//   - Guarantee that every downstream algorithm can index freely: shape and
//     finiteness are proven once, at construction.
//   - Back the storage with gonum's *mat.Dense so linear-algebra helpers
//     (column extraction, matrix-vector products) stay allocation-light.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) validation + copy; At: O(1); Column/Row: O(r)/O(c) copy.

package decision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// minAlternatives is the smallest row count a ranking is defined over.
// A single alternative has nothing to be ranked against.
const minAlternatives = 2

// Matrix is an immutable decision matrix: rows are alternatives, columns
// are criteria. Construct with NewMatrix; the zero value is not usable.
type Matrix struct {
	labels   []string   // alternative labels, row order
	criteria []string   // criterion names, column order
	data     *mat.Dense // r×c backing storage, validated finite
}

// NewMatrix builds a validated Matrix from row-major data.
//
// Contract:
//   - len(labels) == len(rows) ≥ 2, len(criteria) ≥ 1.
//   - every rows[i] has len(criteria) entries, all finite.
//   - labels and criteria are each free of duplicates.
//
// Every violated condition becomes one issue inside the returned
// *ValidationError; nothing is checked lazily afterwards.
//
// Complexity: O(r*c) time and memory.
func NewMatrix(labels, criteria []string, rows [][]float64) (*Matrix, error) {
	var issues []error

	// Stage 1: shape.
	if len(labels) < minAlternatives {
		issues = append(issues, fmt.Errorf("need at least %d alternatives, got %d: %w",
			minAlternatives, len(labels), ErrShapeMismatch))
	}
	if len(criteria) < 1 {
		issues = append(issues, fmt.Errorf("need at least 1 criterion: %w", ErrShapeMismatch))
	}
	if len(rows) != len(labels) {
		issues = append(issues, fmt.Errorf("%d labels for %d rows: %w",
			len(labels), len(rows), ErrShapeMismatch))
	}

	var i, j int
	for i = range rows {
		if len(rows[i]) != len(criteria) {
			issues = append(issues, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(rows[i]), len(criteria), ErrShapeMismatch))
		}
	}

	// Stage 2: uniqueness.
	issues = append(issues, uniqueIssues("alternative", labels)...)
	issues = append(issues, uniqueIssues("criterion", criteria)...)

	// Stage 3: finiteness. Skipped for malformed rows already reported above.
	for i = range rows {
		if len(rows[i]) != len(criteria) {
			continue
		}
		for j = range rows[i] {
			if math.IsNaN(rows[i][j]) || math.IsInf(rows[i][j], 0) {
				issues = append(issues, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNonFinite))
			}
		}
	}

	if err := collect(issues); err != nil {
		return nil, err
	}

	// Stage 4: copy into flat storage; inputs stay caller-owned.
	data := mat.NewDense(len(rows), len(criteria), nil)
	for i = range rows {
		data.SetRow(i, rows[i])
	}

	return &Matrix{
		labels:   append([]string(nil), labels...),
		criteria: append([]string(nil), criteria...),
		data:     data,
	}, nil
}

// uniqueIssues reports one ErrDuplicateLabel issue per repeated value.
func uniqueIssues(kind string, values []string) []error {
	var issues []error
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			issues = append(issues, fmt.Errorf("%s %q: %w", kind, v, ErrDuplicateLabel))
			continue
		}
		seen[v] = struct{}{}
	}

	return issues
}

// NumAlternatives returns the row count. Complexity: O(1).
func (m *Matrix) NumAlternatives() int {
	r, _ := m.data.Dims()
	return r
}

// NumCriteria returns the column count. Complexity: O(1).
func (m *Matrix) NumCriteria() int {
	_, c := m.data.Dims()
	return c
}

// Labels returns a copy of the alternative labels in row order.
func (m *Matrix) Labels() []string { return append([]string(nil), m.labels...) }

// Criteria returns a copy of the criterion names in column order.
func (m *Matrix) Criteria() []string { return append([]string(nil), m.criteria...) }

// At returns the entry at (row, col). Indices are programmer-controlled
// after validation, so out-of-range access panics (gonum semantics).
func (m *Matrix) At(row, col int) float64 { return m.data.At(row, col) }

// Column copies criterion col into a fresh slice of length NumAlternatives.
func (m *Matrix) Column(col int) []float64 {
	return mat.Col(nil, col, m.data)
}

// Row copies alternative row into a fresh slice of length NumCriteria.
func (m *Matrix) Row(row int) []float64 {
	return mat.Row(nil, row, m.data)
}

// Dense returns an independent *mat.Dense copy of the backing data for
// callers that want to run their own linear algebra over it.
func (m *Matrix) Dense() *mat.Dense {
	var out mat.Dense
	out.CloneFrom(m.data)

	return &out
}
