// SPDX-License-Identifier: MIT
// Package sum: sentinel errors shared by every operator family.
// Callers match them with errors.Is; call sites wrap them with context.

package sum

import "errors"

var (
	// ErrInvalidIndexOrder indicates a malformed or unnormalizable index
	// sequence: negative indices, a non-canonical orientation passed to a
	// strict constructor, or a relabeling that merges distinct indices.
	ErrInvalidIndexOrder = errors.New("sum: invalid index order")

	// ErrMismatchedSubsystemCount indicates a term or operand whose subsystem
	// arity differs from the container's declared arity.
	ErrMismatchedSubsystemCount = errors.New("sum: mismatched subsystem count")

	// ErrNonRealDiagonal indicates a non-real coefficient on a self-adjoint
	// Hamiltonian key.
	ErrNonRealDiagonal = errors.New("sum: non-real coefficient on self-adjoint term")

	// ErrNonHermitianOperator indicates an operator that cannot be expressed
	// as a Hamiltonian because a term lacks its conjugate partner.
	ErrNonHermitianOperator = errors.New("sum: operator is not hermitian")

	// ErrIncompatibleProductTypes indicates an attempt to combine or decode
	// objects of different product families.
	ErrIncompatibleProductTypes = errors.New("sum: incompatible product types")

	// ErrUnsupportedMatrixRepresentation indicates a matrix was requested for
	// an object outside the spin family.
	ErrUnsupportedMatrixRepresentation = errors.New("sum: unsupported matrix representation")

	// ErrDimensionTooSmall indicates a requested number of sites or modes
	// below the highest index referenced by a term.
	ErrDimensionTooSmall = errors.New("sum: dimension too small")

	// ErrInvalidLindbladTerms indicates a noise entry whose left and right
	// operators are both the identity (a term with no physical effect).
	ErrInvalidLindbladTerms = errors.New("sum: invalid lindblad terms")
)

// ErrNonHermitianCoefficient names the same condition as ErrNonRealDiagonal.
var ErrNonHermitianCoefficient = ErrNonRealDiagonal
