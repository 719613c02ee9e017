package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/topsix/decision"
)

// chart geometry, chosen to keep up to ~15 alternatives readable.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = 20 // printer points
)

// Chart writes a PNG bar chart of the scores, best-ranked first.
// The y axis is the method-specific score, so for VIKOR (lower Q is
// better) the shortest bar belongs to the winner; the x axis is ordered
// by rank either way.
func Chart(w io.Writer, rk decision.Ranking) error {
	values := make(plotter.Values, len(rk.Rows))
	names := make([]string, len(rk.Rows))
	var i int
	for i = range rk.Rows {
		values[i] = rk.Rows[i].Score
		names[i] = rk.Rows[i].Alternative
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s scores", rk.Method)
	p.Y.Label.Text = "score"

	bars, err := plotter.NewBarChart(values, vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("report: bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: write chart: %w", err)
	}

	return nil
}
