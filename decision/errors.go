// SPDX-License-Identifier: MIT
// Package decision: sentinel error set.
// This file defines ONLY package-level sentinel errors used across topsix.
// All algorithms MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ...) for context) and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors (e.g. out-of-range indexing
// on an already-validated Matrix).

package decision

import (
	"errors"
	"strings"
)

var (
	// ErrShapeMismatch indicates that the lengths of impacts or weights do
	// not match the criterion count, or that the matrix has fewer than 2
	// rows or 1 column.
	ErrShapeMismatch = errors.New("decision: shape mismatch")

	// ErrInvalidImpact indicates an impact symbol outside {'+', '-'}.
	ErrInvalidImpact = errors.New("decision: invalid impact symbol")

	// ErrDegenerateColumn indicates a zero-norm or zero-range column during
	// normalization, or a zero-range extremum during ranking. The caller
	// decides whether to drop the column or constant-fill it; topsix never
	// guesses.
	ErrDegenerateColumn = errors.New("decision: degenerate column")

	// ErrUndefinedWeights indicates that the entropy method could not
	// resolve any discriminating weight (every column perfectly uniform).
	ErrUndefinedWeights = errors.New("decision: undefined weights")

	// ErrNonFinite indicates a NaN or ±Inf entry where finite values are
	// required (matrix ingestion, weight vectors, pairwise judgments).
	ErrNonFinite = errors.New("decision: non-finite value")

	// ErrDuplicateLabel indicates a repeated alternative label or
	// criterion name.
	ErrDuplicateLabel = errors.New("decision: duplicate label")

	// ErrNegativeWeight indicates a negative entry in a weight vector.
	ErrNegativeWeight = errors.New("decision: negative weight")

	// ErrZeroWeightSum indicates a weight vector with no positive entry,
	// which cannot be renormalized to sum 1.
	ErrZeroWeightSum = errors.New("decision: weights sum to zero")
)

// ValidationError aggregates every structural issue found while validating
// an input, so a caller sees the full report rather than the first failure.
// It unwraps to each underlying issue: errors.Is(err, ErrShapeMismatch)
// holds whenever at least one issue wraps ErrShapeMismatch.
type ValidationError struct {
	Issues []error
}

// Error renders all issues joined by "; " under a single prefix.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	var i int
	for i = range e.Issues {
		msgs[i] = e.Issues[i].Error()
	}

	return "decision: invalid input: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the aggregated issues to errors.Is / errors.As.
func (e *ValidationError) Unwrap() []error { return e.Issues }

// collect returns nil when issues is empty, otherwise a *ValidationError.
// Keeping the nil-fold in one place avoids typed-nil mistakes at call sites.
func collect(issues []error) error {
	if len(issues) == 0 {
		return nil
	}

	return &ValidationError{Issues: issues}
}
