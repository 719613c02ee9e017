package vikor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topsix/decision"
	"github.com/katalvlaran/topsix/vikor"
)

// benchProblem builds a random n×m problem with alternating impacts.
// The generator is seeded so every run ranks the same matrix.
func benchProblem(b *testing.B, n, m int) (*decision.Matrix, decision.Weights, decision.Impacts) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))

	labels := make([]string, n)
	criteria := make([]string, m)
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = fmt.Sprintf("A%d", i)
		rows[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			rows[i][j] = 1 + rng.Float64()*99
		}
	}
	raw := make([]float64, m)
	imp := make(decision.Impacts, m)
	for j := 0; j < m; j++ {
		criteria[j] = fmt.Sprintf("C%d", j)
		raw[j] = 1
		if j%2 == 0 {
			imp[j] = decision.Benefit
		} else {
			imp[j] = decision.Cost
		}
	}

	m2, err := decision.NewMatrix(labels, criteria, rows)
	if err != nil {
		b.Fatalf("build matrix: %v", err)
	}
	w, err := decision.NewWeights(raw)
	if err != nil {
		b.Fatalf("build weights: %v", err)
	}

	return m2, w, imp
}

func benchmarkRankMatrix(b *testing.B, n, m int) {
	mat, w, imp := benchProblem(b, n, m)
	opts := vikor.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vikor.RankMatrix(mat, w, imp, opts); err != nil {
			b.Fatalf("rank: %v", err)
		}
	}
}

// BenchmarkRankMatrix_Small benchmarks a 10×4 problem.
func BenchmarkRankMatrix_Small(b *testing.B) { benchmarkRankMatrix(b, 10, 4) }

// BenchmarkRankMatrix_Medium benchmarks a 100×10 problem.
func BenchmarkRankMatrix_Medium(b *testing.B) { benchmarkRankMatrix(b, 100, 10) }

// BenchmarkRankMatrix_Large benchmarks a 1000×20 problem.
func BenchmarkRankMatrix_Large(b *testing.B) { benchmarkRankMatrix(b, 1000, 20) }
