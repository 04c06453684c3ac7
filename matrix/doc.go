// SPDX-License-Identifier: MIT

// Package matrix offers the complex-valued matrix kernels behind operator
// and superoperator generation.
//
// The matrix package provides:
//
//   - Dense: a small row-major complex matrix with bounds-checked At/Set,
//     used for site-local 2×2 factors and for dense-equivalent comparisons.
//   - COO: an immutable coordinate-format sparse matrix, built through a
//     Builder that sums duplicate (row, col) contributions.
//   - Kernels: Kronecker products, products, adjoints and transposes on
//     both representations.
//   - OperatorCOO / SuperoperatorCOO: the generation engine turning sums of
//     site-local tensor products into sparse operators and Lindblad
//     superoperators.
//
// Conventions:
//
//	Site N-1 is the most significant tensor factor:
//	    M = M_{N-1} ⊗ … ⊗ M_1 ⊗ M_0,  dimension 2^N.
//	Density matrices are flattened row-major, vec(ρ)[i*d+j] = ρ_ij, so
//	vec(A ρ B) = (A ⊗ Bᵀ) vec(ρ) and the Liouvillian acts on 4^N entries.
//
// Sizes grow as 2^N (operators) and 4^N (superoperators); callers bound the
// number of sites, and WithMaxDimension guards against runaway allocations.
package matrix
