package vikor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/normalize"
)

// MethodName identifies this ranker in result tables.
const MethodName = "vikor"

// Rank computes the VIKOR compromise ranking over a normalized matrix.
//
// Contract:
//   - len(w) == len(imp) == nm.NumCriteria(),
//   - opts.V ∈ [0,1].
//
// Scores in the returned table are the compromise indices Q_i; rank 1 has
// the lowest Q. S, R, Q and the acceptability analysis ride along in the
// Result.
//
// Errors:
//   - ErrBadStrategyWeight for v outside [0,1],
//   - decision.ErrShapeMismatch (wrapped) for mismatched vectors,
//   - decision.ErrDegenerateColumn (wrapped) for a zero-range criterion,
//     or when all S (or all R) coincide so Q is undefined.
//
// Complexity: O(r·c).
func Rank(nm *decision.Matrix, w decision.Weights, imp decision.Impacts, opts Options) (*Result, error) {
	if opts.V < 0 || opts.V > 1 || math.IsNaN(opts.V) {
		return nil, fmt.Errorf("%w: got %v", ErrBadStrategyWeight, opts.V)
	}
	if err := shapeCheck(nm, w, imp); err != nil {
		return nil, err
	}

	var (
		r = nm.NumAlternatives()
		c = nm.NumCriteria()

		best  = make([]float64, c) // f*_j
		worst = make([]float64, c) // f⁻_j
	)

	// Stage 1: per-criterion extrema, direction per impact.
	var (
		i, j int
		col  []float64
	)
	for j = 0; j < c; j++ {
		col = nm.Column(j)
		best[j], worst[j] = col[0], col[0]
		for i = 1; i < r; i++ {
			best[j] = math.Max(best[j], col[i])
			worst[j] = math.Min(worst[j], col[i])
		}
		if imp[j] == decision.Cost {
			best[j], worst[j] = worst[j], best[j]
		}
		if best[j] == worst[j] {
			return nil, fmt.Errorf("vikor: criterion %q has zero range: %w",
				nm.Criteria()[j], decision.ErrDegenerateColumn)
		}
	}

	// Stage 2: group utility S and individual regret R.
	s := make([]float64, r)
	reg := make([]float64, r)
	var term float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			term = w[j] * (best[j] - nm.At(i, j)) / (best[j] - worst[j])
			s[i] += term
			reg[i] = math.Max(reg[i], term)
		}
	}

	// Stage 3: compromise index Q.
	var (
		sStar, sMinus = extrema(s)
		rStar, rMinus = extrema(reg)
	)
	if sMinus == sStar {
		return nil, fmt.Errorf("vikor: all alternatives share the same group utility S: %w",
			decision.ErrDegenerateColumn)
	}
	if rMinus == rStar {
		return nil, fmt.Errorf("vikor: all alternatives share the same regret R: %w",
			decision.ErrDegenerateColumn)
	}

	q := make([]float64, r)
	for i = 0; i < r; i++ {
		q[i] = opts.V*(s[i]-sStar)/(sMinus-sStar) +
			(1-opts.V)*(reg[i]-rStar)/(rMinus-rStar)
	}

	ranking := decision.NewRanking(MethodName, nm.Labels(), q, decision.Ascending)

	return &Result{
		Ranking:       ranking,
		S:             s,
		R:             reg,
		Q:             q,
		Acceptability: acceptability(ranking, nm.Labels(), s, reg),
	}, nil
}

// RankMatrix min-max normalizes a raw decision matrix (folding the
// criterion direction in) and ranks it. After folding, every column is a
// benefit column, so the inner extrema become f* = 1, f⁻ = 0 and the
// computation matches classic VIKOR on the raw data exactly.
func RankMatrix(m *decision.Matrix, w decision.Weights, imp decision.Impacts, opts Options) (*Result, error) {
	nm, err := normalize.MinMax(m, imp)
	if err != nil {
		return nil, err
	}

	return Rank(nm, w, decision.AllBenefit(m.NumCriteria()), opts)
}

// acceptability evaluates C1/C2 for the winner and derives the
// compromise set. Ranking rows are best-first already.
func acceptability(rk decision.Ranking, labels []string, s, reg []float64) Acceptability {
	n := len(labels)
	dq := 1.0
	if n > 1 {
		dq = 1 / float64(n-1)
	}

	winner := rk.Rows[0].Alternative
	advantageOK := true
	if n > 1 {
		advantageOK = rk.Rows[1].Score-rk.Rows[0].Score >= dq
	}

	// Best by S and by R, earliest row winning ties (same rule as ranks).
	bestS := labels[argMin(s)]
	bestR := labels[argMin(reg)]
	stabilityOK := winner == bestS || winner == bestR

	var compromise []string
	switch {
	case advantageOK && stabilityOK:
		compromise = []string{winner}
	case !advantageOK:
		// All alternatives within DQ of the winner, in rank order.
		for _, row := range rk.Rows {
			if row.Score-rk.Rows[0].Score < dq {
				compromise = append(compromise, row.Alternative)
			}
		}
	default: // C1 holds, C2 does not.
		compromise = append(compromise, winner)
		if bestS != winner {
			compromise = append(compromise, bestS)
		}
		if bestR != winner && bestR != bestS {
			compromise = append(compromise, bestR)
		}
	}

	return Acceptability{
		AdvantageOK: advantageOK,
		StabilityOK: stabilityOK,
		DQ:          dq,
		Compromise:  compromise,
	}
}

// extrema returns (min, max) of a non-empty slice.
func extrema(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}

	return lo, hi
}

// argMin returns the index of the smallest value, earliest index on ties.
func argMin(xs []float64) int {
	idx := 0
	for i, x := range xs {
		if x < xs[idx] {
			idx = i
		}
	}

	return idx
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
		return fmt.Errorf("vikor: %w", issues[0])
	}
	if len(issues) > 1 {
		return fmt.Errorf("vikor: %w", &decision.ValidationError{Issues: issues})
	}

	return nil
}
