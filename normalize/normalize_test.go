package normalize_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/normalize"
)

// mustMatrix builds a matrix with generated labels for brevity.
func mustMatrix(t *testing.T, criteria []string, rows [][]float64) *decision.Matrix {
	t.Helper()
	labels := make([]string, len(rows))
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	m, err := decision.NewMatrix(labels, criteria, rows)
	require.NoError(t, err)

	return m
}

// TestVector_UnitNorm verifies every normalized column has Euclidean norm 1.
func TestVector_UnitNorm(t *testing.T) {
	m := mustMatrix(t, []string{"Cost", "Quality"},
		[][]float64{{250, 16}, {200, 20}, {300, 12}})

	nm, err := normalize.Vector(m)
	require.NoError(t, err)

	for j := 0; j < nm.NumCriteria(); j++ {
		var sq float64
		for _, v := range nm.Column(j) {
			sq += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(sq), 1e-12, "column %d must have unit norm", j)
	}

	// Spot-check one entry: 250 / sqrt(250²+200²+300²).
	assert.InDelta(t, 250/math.Sqrt(192500), nm.At(0, 0), 1e-12)
}

// TestVector_ZeroColumn rejects an all-zero column with the named sentinel.
func TestVector_ZeroColumn(t *testing.T) {
	m := mustMatrix(t, []string{"C1", "C2"},
		[][]float64{{0, 1}, {0, 2}})

	_, err := normalize.Vector(m)
	require.Error(t, err)
	assert.ErrorIs(t, err, decision.ErrDegenerateColumn)
	assert.Contains(t, err.Error(), "C1", "error must name the offending criterion")
}

// TestMinMax_BoundsAndDirection verifies the [0,1] bounds and that cost
// columns are folded so that 1 is always best.
func TestMinMax_BoundsAndDirection(t *testing.T) {
	m := mustMatrix(t, []string{"Cost", "Quality"},
		[][]float64{{250, 16}, {200, 20}, {300, 12}})
	imp := decision.Impacts{decision.Cost, decision.Benefit}

	nm, err := normalize.MinMax(m, imp)
	require.NoError(t, err)

	for i := 0; i < nm.NumAlternatives(); i++ {
		for j := 0; j < nm.NumCriteria(); j++ {
			v := nm.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	// Cost column: cheapest alternative (B, 200) must map to 1.
	assert.InDelta(t, 1.0, nm.At(1, 0), 1e-12)
	// Most expensive alternative (C, 300) must map to 0.
	assert.InDelta(t, 0.0, nm.At(2, 0), 1e-12)
	// Benefit column: best quality (B, 20) must map to 1.
	assert.InDelta(t, 1.0, nm.At(1, 1), 1e-12)
}

// TestMinMax_ConstantColumn rejects a zero-range column, never NaN.
func TestMinMax_ConstantColumn(t *testing.T) {
	m := mustMatrix(t, []string{"C1", "C2"},
		[][]float64{{5, 1}, {5, 2}})
	imp := decision.Impacts{decision.Benefit, decision.Benefit}

	_, err := normalize.MinMax(m, imp)
	require.Error(t, err)
	assert.ErrorIs(t, err, decision.ErrDegenerateColumn)
	assert.Contains(t, err.Error(), "C1")
}

// TestMinMax_ShapeMismatch rejects an impacts vector of the wrong length.
func TestMinMax_ShapeMismatch(t *testing.T) {
	m := mustMatrix(t, []string{"C1", "C2"}, [][]float64{{1, 2}, {3, 4}})

	_, err := normalize.MinMax(m, decision.Impacts{decision.Benefit})
	assert.ErrorIs(t, err, decision.ErrShapeMismatch)
}

// TestNormalize_InputUntouched verifies purity: the input matrix is not mutated.
func TestNormalize_InputUntouched(t *testing.T) {
	m := mustMatrix(t, []string{"C1"}, [][]float64{{3}, {4}})

	_, err := normalize.Vector(m)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.At(0, 0))
	assert.Equal(t, 4.0, m.At(1, 0))
}
