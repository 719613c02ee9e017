package topsis_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/topsis"
)

// laptopMatrix is the canonical cost/quality example: B dominates on cost,
// C on nothing, A sits in between.
func laptopMatrix(t *testing.T) (*decision.Matrix, decision.Weights, decision.Impacts) {
	t.Helper()
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"Cost", "Quality"},
		[][]float64{{250, 16}, {200, 20}, {300, 12}},
	)
	require.NoError(t, err)
	w, err := decision.NewWeights([]float64{0.5, 0.5})
	require.NoError(t, err)

	return m, w, decision.Impacts{decision.Cost, decision.Benefit}
}

// TestRankMatrix_LaptopExample reproduces the reference scenario:
// B (cheapest, best quality) first, C (priciest, worst quality) last.
func TestRankMatrix_LaptopExample(t *testing.T) {
	m, w, imp := laptopMatrix(t)

	rk, err := topsis.RankMatrix(m, w, imp)
	require.NoError(t, err)

	assert.Equal(t, 1, rk.RankOf("B"))
	assert.Equal(t, 2, rk.RankOf("A"))
	assert.Equal(t, 3, rk.RankOf("C"))

	// B dominates everywhere, so its closeness is exactly 1; C is 0; A,
	// equidistant from both ideals in this instance, sits at 0.5.
	assert.InDelta(t, 1.0, rk.Rows[0].Score, 1e-12)
	assert.InDelta(t, 0.5, rk.Rows[1].Score, 1e-12)
	assert.InDelta(t, 0.0, rk.Rows[2].Score, 1e-12)
}

// TestRank_ScoreBounds checks c_i ∈ [0,1] and the dense rank permutation
// on a larger instance.
func TestRank_ScoreBounds(t *testing.T) {
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C", "D", "E"},
		[]string{"Cost", "Quality", "Time", "Efficiency"},
		[][]float64{
			{250, 16, 12, 5},
			{200, 16, 8, 3},
			{300, 32, 16, 4},
			{275, 32, 8, 4},
			{225, 16, 16, 2},
		},
	)
	require.NoError(t, err)
	w := decision.Equal(4)
	imp := decision.Impacts{decision.Cost, decision.Benefit, decision.Cost, decision.Benefit}

	rk, err := topsis.RankMatrix(m, w, imp)
	require.NoError(t, err)
	require.Len(t, rk.Rows, 5)

	seen := make(map[int]bool)
	for _, row := range rk.Rows {
		assert.GreaterOrEqual(t, row.Score, 0.0)
		assert.LessOrEqual(t, row.Score, 1.0)
		seen[row.Rank] = true
	}
	for r := 1; r <= 5; r++ {
		assert.True(t, seen[r], "rank %d missing", r)
	}
}

// TestRank_Monotonicity: improving a benefit criterion for one alternative
// (all else fixed) must not worsen its rank.
func TestRank_Monotonicity(t *testing.T) {
	base := [][]float64{{250, 16}, {200, 20}, {300, 12}}
	w := decision.Equal(2)
	imp := decision.Impacts{decision.Cost, decision.Benefit}

	m, err := decision.NewMatrix([]string{"A", "B", "C"}, []string{"Cost", "Quality"}, base)
	require.NoError(t, err)
	before, err := topsis.RankMatrix(m, w, imp)
	require.NoError(t, err)

	for _, bump := range []float64{1, 5, 20, 100} {
		rows := [][]float64{
			{base[0][0], base[0][1] + bump}, // improve A's quality
			append([]float64(nil), base[1]...),
			append([]float64(nil), base[2]...),
		}
		m2, err := decision.NewMatrix([]string{"A", "B", "C"}, []string{"Cost", "Quality"}, rows)
		require.NoError(t, err)
		after, err := topsis.RankMatrix(m2, w, imp)
		require.NoError(t, err)

		assert.LessOrEqual(t, after.RankOf("A"), before.RankOf("A"),
			"bump=%v: improving a benefit value must not worsen the rank", bump)
	}
}

// TestRank_Determinism: identical inputs yield identical results.
func TestRank_Determinism(t *testing.T) {
	m, w, imp := laptopMatrix(t)

	first, err := topsis.RankMatrix(m, w, imp)
	require.NoError(t, err)
	second, err := topsis.RankMatrix(m, w, imp)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second), "reruns must be byte-identical")
}

// TestRank_ShapeMismatch aggregates both vector mismatches in one error.
func TestRank_ShapeMismatch(t *testing.T) {
	m, _, _ := laptopMatrix(t)

	_, err := topsis.RankMatrix(m, decision.Weights{1}, decision.Impacts{decision.Benefit})
	require.Error(t, err)
	assert.ErrorIs(t, err, decision.ErrShapeMismatch)
}

// TestRank_AllZeroColumn surfaces the normalization sentinel through RankMatrix.
func TestRank_AllZeroColumn(t *testing.T) {
	m, err := decision.NewMatrix(
		[]string{"A", "B"}, []string{"C1", "C2"},
		[][]float64{{0, 1}, {0, 2}},
	)
	require.NoError(t, err)

	_, err = topsis.RankMatrix(m, decision.Equal(2), decision.AllBenefit(2))
	assert.ErrorIs(t, err, decision.ErrDegenerateColumn)
}

// TestRank_IndistinguishableAlternatives: when every column is constant,
// each alternative coincides with both the ideal and the anti-ideal, so
// closeness is 0 by convention and ranks follow row order. Never NaN.
func TestRank_IndistinguishableAlternatives(t *testing.T) {
	m, err := decision.NewMatrix(
		[]string{"A", "B"}, []string{"C1", "C2"},
		[][]float64{{3, 7}, {3, 7}},
	)
	require.NoError(t, err)

	rk, err := topsis.RankMatrix(m, decision.Equal(2), decision.AllBenefit(2))
	require.NoError(t, err)

	for _, row := range rk.Rows {
		assert.False(t, math.IsNaN(row.Score), "%s: score must be defined", row.Alternative)
		assert.Zero(t, row.Score)
	}
	assert.Equal(t, 1, rk.RankOf("A"))
	assert.Equal(t, 2, rk.RankOf("B"))
}
