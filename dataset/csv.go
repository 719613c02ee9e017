package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
)

// ErrEmptyInput indicates a CSV stream without a header or data rows.
var ErrEmptyInput = errors.New("dataset: empty input")

// ReadMatrixCSV parses a decision matrix from CSV: header row names the
// criteria (first cell ignored as the label-column title), every further
// row is one alternative, label first.
//
// The matrix is built through decision.NewMatrix, so all structural
// invariants (shape, uniqueness, finiteness) apply to files too.
func ReadMatrixCSV(r io.Reader) (*decision.Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one data row", ErrEmptyInput)
	}
	if len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: need a label column and at least one criterion", ErrEmptyInput)
	}

	criteria := records[0][1:]
	labels := make([]string, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)

	var (
		i, j int
		rec  []string
		row  []float64
		v    float64
	)
	for i = 1; i < len(records); i++ {
		rec = records[i]
		labels = append(labels, rec[0])
		row = make([]float64, 0, len(rec)-1)
		for j = 1; j < len(rec); j++ {
			v, err = strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %d: %w", i+1, j+1, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return decision.NewMatrix(labels, criteria, rows)
}

// WriteRankingCSV renders a result table as CSV:
//
//	Alternative,Score,Rank
//	B,1.000000,1
func WriteRankingCSV(w io.Writer, rk decision.Ranking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Alternative", "Score", "Rank"}); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	for _, row := range rk.Rows {
		if err := cw.Write([]string{
			row.Alternative,
			strconv.FormatFloat(row.Score, 'f', 6, 64),
			strconv.Itoa(row.Rank),
		}); err != nil {
			return fmt.Errorf("dataset: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteComparisonCSV renders a method comparison as CSV, original row order:
//
//	Alternative,TopsisRank,VikorRank
func WriteComparisonCSV(w io.Writer, cmp *pipeline.Comparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Alternative", "TopsisRank", "VikorRank"}); err != nil {
		return fmt.Errorf("dataset: write csv: %w", err)
	}
	for _, r := range cmp.Ranks {
		if err := cw.Write([]string{
			r.Alternative,
			strconv.Itoa(r.TopsisRank),
			strconv.Itoa(r.VikorRank),
		}); err != nil {
			return fmt.Errorf("dataset: write csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
