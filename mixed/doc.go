// SPDX-License-Identifier: MIT

// Package mixed composes spin, boson and fermion subsystems.
//
// A mixed product is a tuple of per-subsystem products. Its shape, the
// number of spin, boson and fermion subsystems, must equal the arity
// declared by the container it is inserted into; otherwise insertion fails
// with sum.ErrMismatchedSubsystemCount. Subsystems are independent: their
// operators commute with each other, including distinct fermion subsystems.
//
// Text form lists subsystems in order, each tagged and terminated by ':':
//
//	S0X1Z:Bc0a1:Fc2a3:
package mixed
