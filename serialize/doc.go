// SPDX-License-Identifier: MIT

// Package serialize reads and writes the structural state of operator
// containers as YAML documents: the container kind, its subsystem arity,
// its mapping backing and the ordered key/coefficient pairs.
//
//	format: 1
//	kind: SpinHamiltonian
//	arity: {spins: 1, bosons: 0, fermions: 0}
//	backing: insertion-order
//	terms:
//	  - key: 0X1X
//	    re: J
//	    im: "0"
//
// Keys use the canonical String form of each product family and
// coefficients keep symbolic expressions verbatim. Decoding into a
// container of a different kind fails with sum.ErrIncompatibleProductTypes.
// There is no cross-version migration: documents of another format version
// are rejected with ErrUnsupportedFormat.
package serialize
