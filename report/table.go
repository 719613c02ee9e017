package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/topsix/decision"
)

// Table renders a ranking as an aligned plain-text table, best first.
//
//	RANK  ALTERNATIVE  SCORE
//	   1  B            1.000000
//	   2  A            0.500000
//	   3  C            0.000000
//
// Warnings, if any, follow the table one per line, prefixed "warning:".
func Table(rk decision.Ranking) string {
	labelWidth := len("ALTERNATIVE")
	for _, row := range rk.Rows {
		if len(row.Alternative) > labelWidth {
			labelWidth = len(row.Alternative)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%4s  %-*s  %s\n", "RANK", labelWidth, "ALTERNATIVE", "SCORE")
	for _, row := range rk.Rows {
		fmt.Fprintf(&b, "%4d  %-*s  %.6f\n", row.Rank, labelWidth, row.Alternative, row.Score)
	}
	for _, warn := range rk.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", warn.Message)
	}

	return b.String()
}
