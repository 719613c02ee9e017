package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/report"
	"github.com/katalvlaran/topsix/weights"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the laptop-choice example with both methods",
	Long: `Demo ranks three laptops on price (cost) and RAM (benefit) with
equal weights, printing the TOPSIS and VIKOR tables side by side.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"Price", "RAM"},
		[][]float64{
			{250, 16},
			{200, 20},
			{300, 12},
		},
	)
	if err != nil {
		return err
	}
	imp := decision.Impacts{decision.Cost, decision.Benefit}

	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.TOPSIS,
		Weights: weights.Spec{Method: weights.Uniform},
	})
	if err != nil {
		return err
	}

	cmp, err := p.CompareMethods(m, imp)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "TOPSIS")
	fmt.Fprint(out, report.Table(cmp.Topsis.Ranking))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "VIKOR")
	fmt.Fprint(out, report.Table(cmp.Vikor.Ranking))
	fmt.Fprintf(out, "compromise set: %v\n", cmp.Vikor.Vikor.Compromise)

	return nil
}
