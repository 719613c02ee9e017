// Package pipeline wires the decision core end to end: validate input,
// normalize the matrix, derive the criterion weights, apply the selected
// ranking method and return the ordered result.
//
// The pipeline is configured once (method, weight specification, VIKOR
// strategy weight) and then applied to any number of decision problems.
// It is stateless and side-effect-free: a Pipeline holds only its
// configuration, every run recomputes all derived data, and identical
// inputs always produce identical output.
//
// Structural validation happens before any numeric pass and aggregates
// every mismatch (matrix shape, impacts length, weight-spec shape) into
// a single *decision.ValidationError, so callers see the full report at
// once. Numeric degeneracies surface as the named errors of the
// underlying packages, never as NaN/Inf scores.
//
// Normalization is method-specific, following what each ranker consumes:
// vector normalization for TOPSIS, direction-folding min-max for VIKOR.
package pipeline
