// SPDX-License-Identifier: MIT

// Package lattice builds bond geometries and the standard model Hamiltonians
// defined on them.
//
// A Lattice is a number of sites plus an ordered list of weighted bonds. It
// is produced by a Constructor (Chain, Ring, Grid, Torus, Star, Complete)
// resolved through Build with functional options:
//
//	l, err := lattice.Build(lattice.Ring(6), lattice.WithSeed(7), lattice.WithUniformDisorder(0.9, 1.1))
//	h, err := lattice.Heisenberg(l, coefficient.NewSymbol("J"))
//
// Model builders scale every coupling by the bond weight, so a clean lattice
// (weight 1 everywhere) keeps symbolic couplings untouched.
//
// Guarantees:
//   - Deterministic site and bond order; bonds are stored with I < J.
//   - Stochastic weights require an explicit RNG (WithSeed or WithRand),
//     otherwise Build fails with ErrNeedRandSource.
//   - Option constructors panic on meaningless values; Build never panics.
//
// Complexity:
//   - Chain, Ring, Star: O(n) bonds. Grid, Torus: O(rows·cols). Complete: O(n²).
package lattice
