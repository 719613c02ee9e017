// SPDX-License-Identifier: MIT
// Package pipeline - configuration, validation and the run orchestration.

package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/normalize"
	"github.com/katalvlaran/topsix/topsis"
	"github.com/katalvlaran/topsix/vikor"
	"github.com/katalvlaran/topsix/weights"
)

// ErrUnknownMethod is returned for a ranking method outside the closed set.
var ErrUnknownMethod = errors.New("pipeline: unknown ranking method")

// Method selects the ranking algorithm.
type Method int

const (
	// TOPSIS ranks by closeness to the ideal solution.
	TOPSIS Method = iota

	// VIKOR ranks by the compromise index Q.
	VIKOR
)

// String renders the canonical lowercase spelling.
func (m Method) String() string {
	switch m {
	case TOPSIS:
		return topsis.MethodName
	case VIKOR:
		return vikor.MethodName
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a spelling to a Method, case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case topsis.MethodName:
		return TOPSIS, nil
	case vikor.MethodName:
		return VIKOR, nil
	default:
		return TOPSIS, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Config is the full configuration of a pipeline.
type Config struct {
	// Method selects TOPSIS or VIKOR.
	Method Method

	// Weights specifies how the criterion weights are obtained.
	Weights weights.Spec

	// V is the VIKOR strategy weight; ignored by TOPSIS. Nil selects
	// vikor.DefaultV; an explicit 0 is the pure-consensus (regret-only)
	// run.
	V *float64
}

// StrategyWeight wraps an explicit VIKOR strategy weight for Config.V.
func StrategyWeight(v float64) *float64 { return &v }

// Result is the outcome of one pipeline run.
type Result struct {
	// Ranking is the ordered result table, warnings attached.
	decision.Ranking

	// Weights is the weight vector actually used — informative when it
	// was derived (entropy, AHP) rather than supplied.
	Weights decision.Weights `json:"weights"`

	// Vikor carries the acceptability analysis; nil for TOPSIS runs.
	Vikor *vikor.Acceptability `json:"vikor,omitempty"`
}

// Pipeline applies one Config to decision problems. Safe for concurrent
// use: it holds configuration only.
type Pipeline struct {
	cfg Config
	v   float64 // resolved strategy weight
}

// New validates the configuration and returns a ready Pipeline.
//
// Only configuration-intrinsic properties are checked here (method and
// strategy-weight domain); shape checks against a concrete matrix happen
// per Run.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Method != TOPSIS && cfg.Method != VIKOR {
		return nil, fmt.Errorf("%d: %w", int(cfg.Method), ErrUnknownMethod)
	}
	v := vikor.DefaultV
	if cfg.V != nil {
		v = *cfg.V
	}
	if v < 0 || v > 1 {
		return nil, fmt.Errorf("%w: got %v", vikor.ErrBadStrategyWeight, v)
	}

	return &Pipeline{cfg: cfg, v: v}, nil
}

// Run ranks the alternatives of m under the configured method.
//
// Stage 1 (Validate): every structural mismatch between the matrix, the
// impacts and the weight specification is aggregated into one error
// before any numeric pass begins.
// Stage 2 (Weights): the weight vector is derived per the Spec; non-fatal
// diagnostics (AHP consistency) become warnings on the result.
// Stage 3 (Normalize): vector normalization for TOPSIS, direction-folding
// min-max for VIKOR.
// Stage 4 (Rank): the method's ranker produces the ordered table.
//
// Complexity: O(r·c) plus O(r log r) for the final ordering.
func (p *Pipeline) Run(m *decision.Matrix, imp decision.Impacts) (*Result, error) {
	if err := p.validate(m, imp); err != nil {
		return nil, err
	}

	w, warns, err := weights.Derive(p.cfg.Weights, m)
	if err != nil {
		return nil, err
	}

	res := &Result{Weights: w}
	switch p.cfg.Method {
	case TOPSIS:
		nm, nerr := normalize.Vector(m)
		if nerr != nil {
			return nil, nerr
		}
		res.Ranking, err = topsis.Rank(nm, w, imp)
		if err != nil {
			return nil, err
		}

	default: // VIKOR, enforced by New.
		nm, nerr := normalize.MinMax(m, imp)
		if nerr != nil {
			return nil, nerr
		}
		// Direction is folded into the min-max matrix; every column is a
		// benefit column from here on.
		vres, verr := vikor.Rank(nm, w, decision.AllBenefit(m.NumCriteria()), vikor.Options{V: p.v})
		if verr != nil {
			return nil, verr
		}
		res.Ranking = vres.Ranking
		res.Vikor = &vres.Acceptability
	}

	res.Warnings = append(res.Warnings, warns...)

	return res, nil
}

// validate aggregates every structural mismatch into one report.
func (p *Pipeline) validate(m *decision.Matrix, imp decision.Impacts) error {
	var issues []error

	if err := imp.Validate(m.NumCriteria()); err != nil {
		issues = append(issues, err)
	}
	if p.cfg.Weights.Method == weights.Fixed && p.cfg.Weights.Fixed != nil &&
		len(p.cfg.Weights.Fixed) != m.NumCriteria() {
		issues = append(issues, fmt.Errorf("%d fixed weights for %d criteria: %w",
			len(p.cfg.Weights.Fixed), m.NumCriteria(), decision.ErrShapeMismatch))
	}
	if p.cfg.Weights.Method == weights.AHP && p.cfg.Weights.Pairwise != nil &&
		len(p.cfg.Weights.Pairwise) != m.NumCriteria() {
		issues = append(issues, fmt.Errorf("%d×%d pairwise matrix for %d criteria: %w",
			len(p.cfg.Weights.Pairwise), len(p.cfg.Weights.Pairwise), m.NumCriteria(),
			decision.ErrShapeMismatch))
	}

	if len(issues) == 0 {
		return nil
	}

	return fmt.Errorf("pipeline: %w", &decision.ValidationError{Issues: issues})
}
