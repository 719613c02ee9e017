package report

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"github.com/katalvlaran/topsix/pipeline"
)

// pdf layout constants, A4 portrait with millimeter units.
const (
	pdfColRank  = 20.0
	pdfColLabel = 90.0
	pdfColScore = 40.0
	pdfRowH     = 8.0
)

// PDF writes a one-page report: title, the weight vector actually used,
// the ranked table, the VIKOR acceptability verdict when present, and
// any warnings.
func PDF(w io.Writer, title string, res *pipeline.Result) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, title)
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, fmt.Sprintf("method: %s", res.Method))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("weights: %s", formatWeights(res.Weights)))
	doc.Ln(10)

	// Header row.
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(pdfColRank, pdfRowH, "Rank", "1", 0, "C", false, 0, "")
	doc.CellFormat(pdfColLabel, pdfRowH, "Alternative", "1", 0, "L", false, 0, "")
	doc.CellFormat(pdfColScore, pdfRowH, "Score", "1", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for _, row := range res.Rows {
		doc.CellFormat(pdfColRank, pdfRowH, fmt.Sprintf("%d", row.Rank), "1", 0, "C", false, 0, "")
		doc.CellFormat(pdfColLabel, pdfRowH, row.Alternative, "1", 0, "L", false, 0, "")
		doc.CellFormat(pdfColScore, pdfRowH, fmt.Sprintf("%.6f", row.Score), "1", 1, "R", false, 0, "")
	}

	if res.Vikor != nil {
		doc.Ln(4)
		doc.SetFont("Helvetica", "", 10)
		doc.Cell(0, 6, fmt.Sprintf("acceptable advantage: %t, acceptable stability: %t",
			res.Vikor.AdvantageOK, res.Vikor.StabilityOK))
		doc.Ln(6)
		doc.Cell(0, 6, fmt.Sprintf("compromise set: %v", res.Vikor.Compromise))
		doc.Ln(6)
	}

	if len(res.Warnings) > 0 {
		doc.Ln(4)
		doc.SetFont("Helvetica", "I", 10)
		for _, warn := range res.Warnings {
			doc.Cell(0, 6, "warning: "+warn.Message)
			doc.Ln(6)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("report: write pdf: %w", err)
	}

	return nil
}

// formatWeights renders a weight vector compactly: "0.39, 0.61".
func formatWeights(ws []float64) string {
	out := ""
	for i, v := range ws {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%.4f", v)
	}

	return out
}
