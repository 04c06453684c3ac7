// SPDX-License-Identifier: MIT

// Package spins defines spin-1/2 operator products and their sums.
//
// Three single-site alphabets are provided:
//
//	SingleSpinOperator        I, X, Y, Z            (Pauli basis)
//	SingleDecoherenceOperator I, X, iY, Z           (real-valued noise basis)
//	SinglePlusMinusOperator   I, +, -, Z            (raising/lowering basis)
//
// A product assigns one operator to each mentioned site; unmentioned sites
// carry the identity. Products are immutable values sorted by site, so two
// products describing the same term compare equal and print the same
// canonical string ("0X2Z", "1iY", "0+1-"; the empty product prints "I").
//
// Containers (SpinOperator, SpinHamiltonian, DecoherenceOperator,
// PlusMinusOperator, SpinLindbladNoiseOperator, SpinLindbladOpenSystem) are
// instantiations of the generic sum containers. Every Pauli product is
// self-adjoint, so a SpinHamiltonian only accepts real coefficients.
//
// SparseMatrixCOO and SuperoperatorCOO generate matrices with site N-1 as the
// most significant tensor factor.
package spins
