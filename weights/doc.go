// Package weights derives the criterion-weight vector consumed by the
// ranking methods.
//
// Four strategies form a closed set, selected by an explicit Method and
// dispatched over a plain switch (no open-ended polymorphism):
//
//   - Fixed   — a user-supplied vector; validated and renormalized only.
//   - Uniform — 1/n for every criterion.
//   - Entropy — weights from the dispersion of the data itself: columns
//     that discriminate strongly between alternatives weigh more; a
//     constant column weighs exactly 0.
//   - AHP     — weights from an n×n pairwise-comparison matrix of the
//     criteria (Saaty scale), via the geometric-mean approximation of the
//     principal eigenvector, with a consistency-ratio check.
//
// AHP consistency is diagnostic, not fatal: a consistency ratio above
// ConsistencyThreshold yields a decision.Warning attached to the result,
// and the weights are still returned.
//
// Every derivation is a pure function of its inputs; identical inputs
// produce identical weight vectors.
package weights
