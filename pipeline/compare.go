package pipeline

import (
	"github.com/katalvlaran/topsix/decision"
)

// MethodRanks pairs one alternative with its rank under each method.
type MethodRanks struct {
	Alternative string `json:"alternative"`
	TopsisRank  int    `json:"topsis_rank"`
	VikorRank   int    `json:"vikor_rank"`
}

// Comparison is the side-by-side outcome of running both methods on the
// same problem with the same weight specification.
type Comparison struct {
	Topsis *Result       `json:"topsis"`
	Vikor  *Result       `json:"vikor"`
	Ranks  []MethodRanks `json:"ranks"` // original row order
}

// CompareMethods runs TOPSIS and VIKOR on the same matrix with this
// pipeline's weight specification and pairs the resulting ranks per
// alternative. Useful for judging how sensitive a decision is to the
// choice of method.
func (p *Pipeline) CompareMethods(m *decision.Matrix, imp decision.Impacts) (*Comparison, error) {
	tp, err := New(Config{Method: TOPSIS, Weights: p.cfg.Weights, V: p.cfg.V})
	if err != nil {
		return nil, err
	}
	vp, err := New(Config{Method: VIKOR, Weights: p.cfg.Weights, V: p.cfg.V})
	if err != nil {
		return nil, err
	}

	tres, err := tp.Run(m, imp)
	if err != nil {
		return nil, err
	}
	vres, err := vp.Run(m, imp)
	if err != nil {
		return nil, err
	}

	labels := m.Labels()
	ranks := make([]MethodRanks, len(labels))
	var i int
	for i = range labels {
		ranks[i] = MethodRanks{
			Alternative: labels[i],
			TopsisRank:  tres.RankOf(labels[i]),
			VikorRank:   vres.RankOf(labels[i]),
		}
	}

	return &Comparison{Topsis: tres, Vikor: vres, Ranks: ranks}, nil
}
