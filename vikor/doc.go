// Package vikor ranks alternatives by a compromise between group utility
// and individual regret (VIseKriterijumska Optimizacija I Kompromisno
// Resenje).
//
// Outline, over a normalized decision matrix:
//
//  1. Best f*_j / worst f⁻_j per criterion, direction per impact.
//  2. Group utility    S_i = Σ_j w_j (f*_j − n_ij) / (f*_j − f⁻_j).
//  3. Individual regret R_i = max_j w_j (f*_j − n_ij) / (f*_j − f⁻_j).
//  4. Compromise index Q_i = v·(S_i − S*)/(S⁻ − S*) + (1−v)·(R_i − R*)/(R⁻ − R*),
//     with strategy weight v ∈ [0,1] (0.5 by default: consensus).
//  5. Rank ascending by Q_i (lower is better), ties by original row order.
//
// On top of the numeric ranking, the two classical acceptability
// conditions are evaluated and attached to the result as flags — they
// never alter the order:
//
//   - C1, acceptable advantage: Q(2nd) − Q(1st) ≥ DQ with DQ = 1/(N−1).
//   - C2, acceptable stability: the best-by-Q alternative is also best
//     by S or by R.
//
// When either fails, the compromise set is reported: all alternatives
// within DQ of the winner (¬C1), or the winner plus the S- and R-best
// alternatives (¬C2).
//
// Degenerate inputs — a criterion with f*_j = f⁻_j, or all-equal S or R
// across alternatives — fail with errors wrapping
// decision.ErrDegenerateColumn rather than being epsilon-fudged.
//
// Complexity: O(r·c) time. Pure and deterministic.
package vikor
