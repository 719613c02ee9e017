// Package decision defines the value types shared by every ranking method
// in topsix: the decision matrix, criterion impacts, weight vectors and
// the ranked result table.
//
// The package enforces the structural invariants of the model at
// construction time:
//
//   - Matrix: at least 2 alternatives and 1 criterion, unique alternative
//     labels, unique criterion names, every entry finite.
//   - Impacts: one direction per criterion, Benefit ('+') or Cost ('-').
//   - Weights: non-negative, at least one positive entry; renormalized to
//     sum exactly 1.
//
// All types are immutable after construction — accessors return copies,
// so a Matrix can be shared between pipeline runs without synchronization.
//
// Validation failures are reported through package-level sentinel errors
// matched with errors.Is. Constructors aggregate every structural issue
// into a single *ValidationError instead of stopping at the first one,
// so callers can render a complete report.
package decision
