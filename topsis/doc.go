// Package topsis ranks alternatives by relative closeness to a synthetic
// ideal solution (Technique for Order of Preference by Similarity to
// Ideal Solution).
//
// Outline, over a vector-normalized decision matrix:
//
//  1. Weight:       v_ij = w_j · n_ij.
//  2. Ideal A⁺ / negative-ideal A⁻ per column: max/min for benefit
//     criteria, min/max for cost criteria.
//  3. Distances:    d⁺_i, d⁻_i — Euclidean distance of each alternative
//     to A⁺ and A⁻.
//  4. Closeness:    c_i = d⁻_i / (d⁺_i + d⁻_i) ∈ [0,1]; defined as 0 in
//     the degenerate case d⁺_i = d⁻_i = 0.
//  5. Rank descending by c_i, ties broken by original row order.
//
// Rank consumes an already-normalized matrix (see normalize.Vector);
// RankMatrix is the convenience wrapper that normalizes first.
//
// Complexity: O(r·c) time, O(r·c) memory. Pure and deterministic.
package topsis
