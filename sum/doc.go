// SPDX-License-Identifier: MIT

// Package sum implements the sum-of-products containers shared by every
// operator family: plain operators, Hermitian-constrained Hamiltonians,
// pair-keyed Lindblad noise operators and open systems.
//
// Containers are generic over the canonical product type of a family. A
// product knows how to conjugate, multiply and relabel itself; the
// containers only manage the key -> coefficient mapping and enforce the
// container-level invariants:
//
//   - keys are unique and no entry with an exact-zero coefficient persists;
//   - a self-adjoint Hamiltonian key carries a real coefficient;
//   - terms and operands agree on the declared subsystem Arity;
//   - every failing operation leaves the receiver unchanged.
//
// Storage is an ordered mapping with a selectable backing (WithBacking):
// InsertionOrder iterates in first-insertion order, Hashed iterates in
// unspecified order.
//
// Containers are not safe for concurrent use; callers own them exclusively.
package sum
