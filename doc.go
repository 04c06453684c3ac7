// SPDX-License-Identifier: MIT

// Package struqture is an algebra of operator sums for quantum systems.
//
// It represents spin, bosonic, fermionic and mixed Hamiltonians, operators
// and Lindblad noise as canonical products with real or symbolic
// coefficients, and turns spin objects into sparse matrices and
// Liouvillian superoperators.
//
// Packages:
//
//	coefficient/  real and complex coefficients, exact or symbolic, plus a Calculator
//	sum/          generic Operator, Hamiltonian, Noise and OpenSystem containers
//	spins/        Pauli, decoherence and plus-minus products and their matrices
//	bosons/       bosonic ladder products
//	fermions/     fermionic ladder products and the Jordan–Wigner mapping
//	mixed/        tuples of spin, boson and fermion subsystems
//	matrix/       dense/COO kernels, operator and superoperator generation
//	serialize/    YAML documents for every container kind
//	lattice/      bond geometries and standard model Hamiltonians
//
// Quick example:
//
//	h := spins.NewSpinHamiltonian()
//	zz, _ := spins.ParsePauliProduct("0Z1Z")
//	_ = h.Set(zz, coefficient.Symbol("J"))
//	calc := coefficient.NewCalculator()
//	_ = calc.Set("J", 0.5)
//	numeric, _ := h.SubstituteParameters(calc)
//	m, _ := spins.SparseMatrixCOO(numeric, 2)
package struqture
