package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/pipeline"
	"github.com/katalvlaran/topsix/weights"
)

// ExamplePipeline_Run ranks three laptops on cost and quality with equal
// weights under TOPSIS. B is both the cheapest and the best built, so it
// wins with closeness 1.
func ExamplePipeline_Run() {
	m, err := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"Cost", "Quality"},
		[][]float64{
			{250, 16},
			{200, 20},
			{300, 12},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	impacts := decision.Impacts{decision.Cost, decision.Benefit}

	p, err := pipeline.New(pipeline.Config{
		Method:  pipeline.TOPSIS,
		Weights: weights.Spec{Method: weights.Uniform},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := p.Run(m, impacts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range res.Rows {
		fmt.Printf("%d. %s (%.2f)\n", row.Rank, row.Alternative, row.Score)
	}
	// Output:
	// 1. B (1.00)
	// 2. A (0.50)
	// 3. C (0.00)
}

// ExamplePipeline_Run_entropy lets the data itself decide the weights:
// the quality column varies more (relative to its mass) than cost, so it
// dominates the weighting.
func ExamplePipeline_Run_entropy() {
	m, _ := decision.NewMatrix(
		[]string{"A", "B", "C"},
		[]string{"Cost", "Quality"},
		[][]float64{
			{250, 16},
			{200, 20},
			{300, 12},
		},
	)

	p, _ := pipeline.New(pipeline.Config{
		Method:  pipeline.VIKOR,
		Weights: weights.Spec{Method: weights.Entropy},
	})

	res, _ := p.Run(m, decision.Impacts{decision.Cost, decision.Benefit})
	fmt.Println("winner:", res.Rows[0].Alternative)
	fmt.Println("single compromise:", res.Vikor.AdvantageOK && res.Vikor.StabilityOK)
	// Output:
	// winner: B
	// single compromise: true
}
