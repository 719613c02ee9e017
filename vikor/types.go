package vikor

import (
	"errors"

	"github.com/katalvlaran/topsix/decision"
)

// ErrBadStrategyWeight indicates a strategy weight v outside [0,1].
var ErrBadStrategyWeight = errors.New("vikor: strategy weight v must be in [0,1]")

// DefaultV is the default strategy weight: an even balance between group
// utility (v→1 would emphasize consensus) and individual regret (v→0).
const DefaultV = 0.5

// Options configures the VIKOR compromise.
//
// Fields:
//   - V — strategy weight v ∈ [0,1] trading group utility against
//     individual regret in the compromise index Q.
type Options struct {
	V float64
}

// DefaultOptions returns the textbook configuration (v = 0.5).
func DefaultOptions() Options {
	return Options{V: DefaultV}
}

// Acceptability reports the two classical acceptance conditions for the
// top-ranked alternative. Informational only: the numeric ranking is
// never altered by these flags.
type Acceptability struct {
	// AdvantageOK is C1: the winner leads the runner-up by at least DQ.
	AdvantageOK bool `json:"advantage_ok"`

	// StabilityOK is C2: the winner is also best by S or by R.
	StabilityOK bool `json:"stability_ok"`

	// DQ is the required advantage 1/(N−1).
	DQ float64 `json:"dq"`

	// Compromise lists the labels of the compromise solution set, best
	// first. A single entry when both conditions hold.
	Compromise []string `json:"compromise"`
}

// Result is the full VIKOR outcome: the ranked table (scores are Q),
// the raw S/R/Q vectors in original row order, and the acceptability
// analysis of the winner.
type Result struct {
	decision.Ranking

	// S, R, Q are indexed by original matrix row, not by rank.
	S []float64 `json:"s"`
	R []float64 `json:"r"`
	Q []float64 `json:"q"`

	Acceptability Acceptability `json:"acceptability"`
}
