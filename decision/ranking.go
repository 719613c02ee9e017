package decision

import "sort"

// Direction selects the score ordering for rank assignment.
type Direction int8

const (
	// Descending ranks the highest score first (TOPSIS closeness).
	Descending Direction = iota

	// Ascending ranks the lowest score first (VIKOR compromise index Q).
	Ascending
)

// Row is one line of the ranked result table.
type Row struct {
	// Alternative is the label from the decision matrix.
	Alternative string `json:"alternative"`

	// Score is the method-specific score (TOPSIS closeness in [0,1],
	// VIKOR compromise index Q).
	Score float64 `json:"score"`

	// Rank is 1 for the best alternative; ranks form a dense permutation
	// of 1..N with ties broken by original row order.
	Rank int `json:"rank"`
}

// Warning is a non-fatal diagnostic attached to a result. Warnings never
// change the returned ranking.
type Warning struct {
	// Code is a stable machine-readable identifier, e.g. "ahp-consistency".
	Code string `json:"code"`

	// Message is a human-readable explanation for rendering.
	Message string `json:"message"`
}

// Ranking is the ordered result table of one ranking run.
// Rows are sorted best-first (Rank ascending).
type Ranking struct {
	Method   string    `json:"method"`
	Rows     []Row     `json:"rows"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// NewRanking assembles a Ranking from parallel labels/scores slices.
//
// Ties are broken deterministically by original row order: between equal
// scores, the earlier row receives the better (smaller) rank, so ranks
// are always an exact permutation of 1..N.
//
// Complexity: O(n log n).
func NewRanking(method string, labels []string, scores []float64, dir Direction) Ranking {
	idx := make([]int, len(labels))
	var i int
	for i = range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if scores[ia] != scores[ib] {
			if dir == Descending {
				return scores[ia] > scores[ib]
			}
			return scores[ia] < scores[ib]
		}
		// Equal scores: earlier original row wins.
		return ia < ib
	})

	rows := make([]Row, len(idx))
	for i = range idx {
		rows[i] = Row{Alternative: labels[idx[i]], Score: scores[idx[i]], Rank: i + 1}
	}

	return Ranking{Method: method, Rows: rows}
}

// RankOf returns the rank of the named alternative, or 0 if absent.
func (r Ranking) RankOf(label string) int {
	for _, row := range r.Rows {
		if row.Alternative == label {
			return row.Rank
		}
	}

	return 0
}
