// Package topsix is a multi-criteria decision analysis toolkit: rank a
// set of alternatives over conflicting criteria and understand how
// robust the winner is.
//
// 🚀 What is topsix?
//
//	A library and CLI that brings together:
//		• Decision primitives: validated matrix, impacts, weight vectors
//		• Normalization: vector (L2) and impact-aware min-max scaling
//		• Weighting: fixed, equal, entropy, and AHP pairwise comparisons
//		• Ranking: TOPSIS closeness and VIKOR compromise ranking
//		• Pipeline: one configuration from raw matrix to ranked table
//		• Reporting: text tables, PNG charts, one-page PDF summaries
//		• Serving: an HTTP API and dashboard for ad-hoc decisions
//
// ✨ Why choose topsix?
//
//   - Strict inputs – every structural problem is reported at once, not
//     one error per run
//   - Honest degeneracy – constant columns and all-equal alternatives
//     are named errors or zero weights, never silently fudged
//   - Method comparison – run TOPSIS and VIKOR side by side and see
//     where they disagree
//
// The packages, bottom-up:
//
//	decision/  — matrix, impacts, weights, ranking types and validation
//	normalize/ — Vector and MinMax matrix scaling
//	weights/   — fixed, equal, entropy and AHP weight derivation
//	topsis/    — TOPSIS ranking over a vector-normalized matrix
//	vikor/     — VIKOR S/R/Q ranking with the acceptability analysis
//	pipeline/  — configuration, orchestration, method comparison
//	dataset/   — CSV matrices and YAML problem files
//	report/    — text, PNG and PDF rendering of results
//	server/    — HTTP API and dashboard
//	cmd/topsix — the command line: rank, serve, demo
//
// Start with pipeline.New and pipeline.Run; drop to the method packages
// when you need the intermediate quantities.
//
//	go get github.com/katalvlaran/topsix
package topsix
