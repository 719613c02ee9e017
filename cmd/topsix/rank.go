package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topsix/dataset"
	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/report"
	"github.com/katalvlaran/topsix/weights"
)

var (
	rankFile    string
	rankMethod  string
	rankWeights string
	rankImpacts string
	rankVikorV  float64
	rankReport  string
	rankOut     string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank alternatives from a CSV matrix or a YAML problem file",
	Long: `Rank reads a decision problem and prints the ranking table.

A .yaml/.yml input is a self-contained problem file (matrix, impacts,
weight strategy, method). A .csv input holds only the matrix, so the
impacts flag is required and method/weights come from flags.`,
}

func init() {
	rankCmd.RunE = runRank
	rankCmd.Flags().StringVarP(&rankFile, "file", "f", "", "input file (.csv or .yaml)")
	rankCmd.Flags().StringVarP(&rankMethod, "method", "m", "topsis", "ranking method: topsis or vikor")
	rankCmd.Flags().StringVarP(&rankWeights, "weights", "w", "equal", "equal, entropy, or a comma-separated vector")
	rankCmd.Flags().StringVarP(&rankImpacts, "impacts", "i", "", "criterion impacts, e.g. +,-,+")
	rankCmd.Flags().Float64Var(&rankVikorV, "vikor-v", 0.5, "VIKOR strategy weight in [0,1]")
	rankCmd.Flags().StringVar(&rankReport, "report", "none", "extra artifact: pdf, png, csv or none")
	rankCmd.Flags().StringVarP(&rankOut, "out", "o", "", "output path for the report artifact")
	_ = rankCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	m, imp, cfg, err := loadProblem(rankFile)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}
	res, err := p.Run(m, imp)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Table(res.Ranking))
	if res.Vikor != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "compromise set: %s\n",
			strings.Join(res.Vikor.Compromise, ", "))
	}

	return writeArtifact(res)
}

// loadProblem decodes the input file, filling the gaps from flags when
// the file is a bare CSV matrix.
func loadProblem(path string) (*decision.Matrix, decision.Impacts, pipeline.Config, error) {
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, pipeline.Config{}, err
	}
	defer f.Close()

	if ext == ".yaml" || ext == ".yml" {
		prob, err := dataset.LoadProblem(f)
		if err != nil {
			return nil, nil, pipeline.Config{}, err
		}

		return prob.Build()
	}

	m, err := dataset.ReadMatrixCSV(f)
	if err != nil {
		return nil, nil, pipeline.Config{}, err
	}

	if rankImpacts == "" {
		return nil, nil, pipeline.Config{}, fmt.Errorf("--impacts is required with a CSV matrix")
	}
	imp, err := decision.ParseImpactString(rankImpacts)
	if err != nil {
		return nil, nil, pipeline.Config{}, err
	}

	cfg := pipeline.Config{}
	if rankCmd.Flags().Changed("vikor-v") {
		cfg.V = pipeline.StrategyWeight(rankVikorV)
	}
	if cfg.Method, err = pipeline.ParseMethod(rankMethod); err != nil {
		return nil, nil, pipeline.Config{}, err
	}
	if cfg.Weights, err = parseWeightsFlag(rankWeights); err != nil {
		return nil, nil, pipeline.Config{}, err
	}

	return m, imp, cfg, nil
}

// parseWeightsFlag accepts a strategy name or a comma-separated vector.
func parseWeightsFlag(flag string) (weights.Spec, error) {
	if method, err := weights.ParseMethod(flag); err == nil {
		return weights.Spec{Method: method}, nil
	}

	parts := strings.Split(flag, ",")
	fixed := make([]float64, len(parts))
	for i := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return weights.Spec{}, fmt.Errorf("weights: %w", err)
		}
		fixed[i] = v
	}

	return weights.Spec{Method: weights.Fixed, Fixed: fixed}, nil
}

func writeArtifact(res *pipeline.Result) error {
	if rankReport == "none" || rankReport == "" {
		return nil
	}
	if rankOut == "" {
		return fmt.Errorf("--out is required with --report %s", rankReport)
	}

	out, err := os.Create(rankOut)
	if err != nil {
		return err
	}
	defer out.Close()

	switch rankReport {
	case "pdf":
		return report.PDF(out, filepath.Base(rankFile), res)
	case "png":
		return report.Chart(out, res.Ranking)
	case "csv":
		return dataset.WriteRankingCSV(out, res.Ranking)
	default:
		return fmt.Errorf("unknown report format %q", rankReport)
	}
}
