// SPDX-License-Identifier: MIT

// Package bosons defines products of bosonic creation and annihilation
// operators and their sums.
//
// A Product is the normal-ordered string a†_{i1} … a†_{in} a_{j1} … a_{jm}
// with both index lists sorted ascending. Bosonic operators on different
// modes commute, so canonicalization never produces a sign, and repeated
// indices (several excitations of one mode) are legal.
//
// A HermitianProduct is the representative of a term and its conjugate:
// the orientation whose creator list does not exceed its annihilator list
// (by length, then lexicographically). Hamiltonians are keyed by it.
package bosons
