// SPDX-License-Identifier: MIT

// Package fermions defines products of fermionic creation and annihilation
// operators, their sums, and the Jordan–Wigner mapping onto spins.
//
// A Product is the normal-ordered string c†_{i1} … c†_{in} c_{j1} … c_{jm}
// with strictly ascending index lists. Reordering operators anticommutes,
// so NewProduct returns the permutation sign (-1)^swaps next to the
// canonical product; callers fold it into their coefficient. A repeated
// index within one role violates the exclusion principle and is rejected
// with ErrExclusionPrinciple.
//
// Jordan–Wigner maps mode m onto spin m:
//
//	c†_m = Z_0 … Z_{m-1} σ+_m,  c_m = Z_0 … Z_{m-1} σ-_m
package fermions
