// Package report renders pipeline results for humans: a plain-text
// ranking table, a PNG bar chart of the scores, and a one-page PDF
// summarizing the problem, the ranking and any warnings.
//
// Rendering is a pure projection of an already-computed Result: nothing
// here recomputes scores or reorders rows.
package report
