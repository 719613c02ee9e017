// SPDX-License-Identifier: MIT
// Package weights - strategy selection and dispatch.

package weights

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/topsix/decision"
)

var (
	// ErrUnknownMethod is returned for a Method outside the closed set.
	ErrUnknownMethod = errors.New("weights: unknown weighting method")

	// ErrMissingFixed is returned when Method==Fixed but no vector was supplied.
	ErrMissingFixed = errors.New("weights: fixed method requires a weight vector")

	// ErrMissingPairwise is returned when Method==AHP but no pairwise matrix was supplied.
	ErrMissingPairwise = errors.New("weights: ahp method requires a pairwise matrix")
)

// Method selects one of the closed set of weighting strategies.
type Method int

const (
	// Fixed uses a caller-supplied vector, validated and renormalized.
	Fixed Method = iota

	// Uniform assigns 1/n to every criterion.
	Uniform

	// Entropy derives weights from the dispersion of the decision matrix.
	Entropy

	// AHP derives weights from a pairwise-comparison matrix of the criteria.
	AHP
)

// methodNames is the single source of truth for Method spellings.
var methodNames = [...]string{"fixed", "equal", "entropy", "ahp"}

// String renders the canonical spelling ("equal" for Uniform).
func (m Method) String() string {
	if m < Fixed || int(m) >= len(methodNames) {
		return fmt.Sprintf("method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a spelling to a Method, case-insensitive.
// "uniform" is accepted as an alias of "equal".
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "uniform" {
		return Uniform, nil
	}
	for i := range methodNames {
		if name == methodNames[i] {
			return Method(i), nil
		}
	}

	return Fixed, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Spec is the full weight specification of one pipeline run: the strategy
// plus its strategy-specific parameters.
type Spec struct {
	// Method selects the strategy.
	Method Method

	// Fixed is the user-supplied vector; consulted only when Method==Fixed.
	Fixed []float64

	// Pairwise is the n×n criteria comparison matrix; consulted only when
	// Method==AHP.
	Pairwise [][]float64
}

// Derive produces the weight vector for matrix m according to spec.
//
// The returned warnings are non-fatal diagnostics (currently only the AHP
// consistency check); the weights are valid regardless.
//
// Errors:
//   - ErrUnknownMethod, ErrMissingFixed, ErrMissingPairwise (wiring),
//   - decision.ErrShapeMismatch for wrong-sized inputs,
//   - the strategy-specific errors of EntropyWeights / AHPWeights.
func Derive(spec Spec, m *decision.Matrix) (decision.Weights, []decision.Warning, error) {
	n := m.NumCriteria()

	switch spec.Method {
	case Fixed:
		if spec.Fixed == nil {
			return nil, nil, ErrMissingFixed
		}
		if len(spec.Fixed) != n {
			return nil, nil, fmt.Errorf("weights: %d fixed weights for %d criteria: %w",
				len(spec.Fixed), n, decision.ErrShapeMismatch)
		}
		w, err := decision.NewWeights(spec.Fixed)

		return w, nil, err

	case Uniform:
		return decision.Equal(n), nil, nil

	case Entropy:
		w, err := EntropyWeights(m)

		return w, nil, err

	case AHP:
		if spec.Pairwise == nil {
			return nil, nil, ErrMissingPairwise
		}
		if len(spec.Pairwise) != n {
			return nil, nil, fmt.Errorf("weights: %d×%d pairwise matrix for %d criteria: %w",
				len(spec.Pairwise), len(spec.Pairwise), n, decision.ErrShapeMismatch)
		}

		return AHPWeights(spec.Pairwise)

	default:
		return nil, nil, fmt.Errorf("%d: %w", int(spec.Method), ErrUnknownMethod)
	}
}
