package pipeline_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/vikor"
	"github.com/katalvlaran/topsix/weights"
)

// laptops is the canonical 3×2 cost/quality example.
func laptops(t *testing.T) (*decision.Matrix, decision.Impacts) {
	t.Helper()
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"Cost", "Quality"},
		[][]float64{{250, 16}, {200, 20}, {300, 12}},
	)
	require.NoError(t, err)

	return m, decision.Impacts{decision.Cost, decision.Benefit}
}

// TestRun_TopsisFixedWeights reproduces the reference scenario end to end.
func TestRun_TopsisFixedWeights(t *testing.T) {
	m, imp := laptops(t)
	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.TOPSIS,
		Weights: weights.Spec{Method: weights.Fixed, Fixed: []float64{0.5, 0.5}},
	})
	require.NoError(t, err)

	res, err := p.Run(m, imp)
	require.NoError(t, err)

	assert.Equal(t, "topsis", res.Method)
	assert.Equal(t, 1, res.RankOf("B"))
	assert.Equal(t, 3, res.RankOf("C"))
	assert.InDelta(t, 0.5, res.Weights[0], 1e-12)
	assert.Nil(t, res.Vikor, "TOPSIS runs carry no acceptability analysis")
	assert.Empty(t, res.Warnings)
}

// TestRun_VikorEntropyWeights exercises derived weights plus the VIKOR
// acceptability attachment.
func TestRun_VikorEntropyWeights(t *testing.T) {
	m, imp := laptops(t)
	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.VIKOR,
		Weights: weights.Spec{Method: weights.Entropy},
	})
	require.NoError(t, err)

	res, err := p.Run(m, imp)
	require.NoError(t, err)

	assert.Equal(t, "vikor", res.Method)
	require.NotNil(t, res.Vikor)
	assert.InDelta(t, 1.0, res.Weights.Sum(), decision.WeightTolerance)
	assert.Equal(t, 1, res.RankOf("B"), "B dominates on both criteria")

	// B dominates everywhere, so it is best by S and R too.
	assert.True(t, res.Vikor.StabilityOK)
}

// TestRun_AhpWarningPropagates: an inconsistent pairwise matrix flags the
// result but still ranks.
func TestRun_AhpWarningPropagates(t *testing.T) {
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"C1", "C2", "C3"},
		[][]float64{{7, 9, 9}, {8, 7, 6}, {6, 8, 8}},
	)
	require.NoError(t, err)

	p, err := pipeline.New(pipeline.Config{
		Method: pipeline.TOPSIS,
		Weights: weights.Spec{
			Method: weights.AHP,
			Pairwise: [][]float64{
				{1, 3, 1.0 / 5},
				{1.0 / 3, 1, 3},
				{5, 1.0 / 3, 1},
			},
		},
	})
	require.NoError(t, err)

	res, err := p.Run(m, decision.AllBenefit(3))
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, weights.WarnConsistency, res.Warnings[0].Code)
	assert.Len(t, res.Rows, 3, "warnings must not suppress the ranking")
}

// TestRun_AggregatedValidation: every shape mismatch is reported at once,
// before any numeric work.
func TestRun_AggregatedValidation(t *testing.T) {
	m, _ := laptops(t)
	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.TOPSIS,
		Weights: weights.Spec{Method: weights.Fixed, Fixed: []float64{0.2, 0.3, 0.5}}, // 3 for 2
	})
	require.NoError(t, err)

	_, err = p.Run(m, decision.Impacts{decision.Benefit}) // 1 impact for 2 criteria
	require.Error(t, err)

	var verr *decision.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2, "impacts AND weights mismatches must both be reported")
	assert.ErrorIs(t, err, decision.ErrShapeMismatch)
}

// TestRun_Determinism: two runs on identical inputs are deeply equal.
func TestRun_Determinism(t *testing.T) {
	m, imp := laptops(t)
	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.VIKOR,
		Weights: weights.Spec{Method: weights.Entropy},
	})
	require.NoError(t, err)

	first, err := p.Run(m, imp)
	require.NoError(t, err)
	second, err := p.Run(m, imp)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second))
}

// TestNew_Invalid rejects unknown methods and out-of-range strategy weights.
func TestNew_Invalid(t *testing.T) {
	_, err := pipeline.New(pipeline.Config{Method: pipeline.Method(9)})
	assert.ErrorIs(t, err, pipeline.ErrUnknownMethod)

	_, err = pipeline.New(pipeline.Config{Method: pipeline.VIKOR, V: pipeline.StrategyWeight(2)})
	assert.ErrorIs(t, err, vikor.ErrBadStrategyWeight)
}

// TestRun_ExplicitConsensusV: an explicit v=0 must survive configuration
// instead of falling back to the default, ranking purely by regret. The
// instance is chosen so Q(v=0) and Q(v=0.5) genuinely differ.
func TestRun_ExplicitConsensusV(t *testing.T) {
	m, err := decision.NewMatrix(
		[]string{"A1", "A2", "A3", "A4"},
		[]string{"C1", "C2", "C3"},
		[][]float64{
			{7, 9, 9},
			{8, 7, 6},
			{6, 8, 8},
			{9, 6, 7},
		},
	)
	require.NoError(t, err)
	imp := decision.AllBenefit(3)

	consensus, err := pipeline.New(pipeline.Config{
		Method:  pipeline.VIKOR,
		Weights: weights.Spec{Method: weights.Uniform},
		V:       pipeline.StrategyWeight(0),
	})
	require.NoError(t, err)
	res, err := consensus.Run(m, imp)
	require.NoError(t, err)

	w, err := decision.NewWeights([]float64{1, 1, 1})
	require.NoError(t, err)
	direct, err := vikor.RankMatrix(m, w, imp, vikor.Options{V: 0})
	require.NoError(t, err)
	assert.Equal(t, direct.Rows, res.Rows)

	// A nil V keeps the default strategy and scores the same problem
	// differently, so v=0 is not collapsing into the default.
	fallback, err := pipeline.New(pipeline.Config{
		Method:  pipeline.VIKOR,
		Weights: weights.Spec{Method: weights.Uniform},
	})
	require.NoError(t, err)
	defRes, err := fallback.Run(m, imp)
	require.NoError(t, err)
	assert.NotEqual(t, defRes.Rows[1].Score, res.Rows[1].Score)
}

// TestParseMethod covers both spellings and the unknown case.
func TestParseMethod(t *testing.T) {
	m, err := pipeline.ParseMethod("TOPSIS")
	require.NoError(t, err)
	assert.Equal(t, pipeline.TOPSIS, m)

	m, err = pipeline.ParseMethod(" vikor ")
	require.NoError(t, err)
	assert.Equal(t, pipeline.VIKOR, m)

	_, err = pipeline.ParseMethod("electre")
	assert.ErrorIs(t, err, pipeline.ErrUnknownMethod)
}

// TestCompareMethods pairs ranks per alternative in original row order.
func TestCompareMethods(t *testing.T) {
	m, imp := laptops(t)
	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.TOPSIS,
		Weights: weights.Spec{Method: weights.Uniform},
	})
	require.NoError(t, err)

	cmp, err := p.CompareMethods(m, imp)
	require.NoError(t, err)
	require.Len(t, cmp.Ranks, 3)

	assert.Equal(t, "A", cmp.Ranks[0].Alternative)
	// B dominates under both methods.
	assert.Equal(t, 1, cmp.Ranks[1].TopsisRank)
	assert.Equal(t, 1, cmp.Ranks[1].VikorRank)
	require.NotNil(t, cmp.Vikor.Vikor)
	assert.Nil(t, cmp.Topsis.Vikor)
}
