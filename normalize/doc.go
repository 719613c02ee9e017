// Package normalize rescales the columns of a decision matrix into a
// comparable, dimensionless range.
//
// Two schemes are provided, matching the ranking methods that consume them:
//
//   - Vector — each entry divided by the Euclidean norm of its column
//     (used by TOPSIS). Column direction is preserved.
//   - MinMax — linear rescaling into [0,1] with the criterion direction
//     folded in: after MinMax, 1 is always the best attainable value and
//     0 the worst, for benefit and cost criteria alike (used by VIKOR).
//
// Both schemes refuse to guess on degenerate input: an all-zero column
// (Vector) or a zero-range column (MinMax) yields an error wrapping
// decision.ErrDegenerateColumn naming the offending criterion. The caller
// decides whether to drop or constant-fill such a column.
//
// All functions are pure: the input matrix is never mutated, and a fresh
// matrix is returned per call.
package normalize
