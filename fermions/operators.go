// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"

	"github.com/katalvlaran/struqture/sum"
)

// Fermion containers.
type (
	FermionOperator              = sum.Operator[Product]
	FermionHamiltonian           = sum.Hamiltonian[HermitianProduct, Product]
	FermionLindbladNoiseOperator = sum.Noise[Product]
	FermionLindbladOpenSystem    = sum.OpenSystem[HermitianProduct, Product, Product]
)

// NewFermionOperator returns an empty operator.
func NewFermionOperator(opts ...sum.Option) *FermionOperator {
	return sum.NewOperator[Product](sum.FermionArity, nil, opts...)
}

// NewFermionHamiltonian returns an empty Hamiltonian.
func NewFermionHamiltonian(opts ...sum.Option) *FermionHamiltonian {
	return sum.NewHamiltonian[HermitianProduct, Product](sum.FermionArity, HermitianFrom, nil, nil, opts...)
}

// NewFermionLindbladNoiseOperator returns an empty rate matrix.
func NewFermionLindbladNoiseOperator(opts ...sum.Option) *FermionLindbladNoiseOperator {
	return sum.NewNoise[Product](sum.FermionArity, nil, opts...)
}

// NewFermionLindbladOpenSystem returns an empty open system.
func NewFermionLindbladOpenSystem(opts ...sum.Option) *FermionLindbladOpenSystem {
	s, _ := sum.NewOpenSystem(NewFermionHamiltonian(opts...), NewFermionLindbladNoiseOperator(opts...))

	return s
}

// FermionHamiltonianFromOperator converts a Hermitian operator.
func FermionHamiltonianFromOperator(op *FermionOperator) (*FermionHamiltonian, error) {
	return sum.HamiltonianFromOperator(NewFermionHamiltonian(sum.WithBacking(op.Backing())), op)
}

// CurrentNumberModes returns highest referenced mode + 1.
func CurrentNumberModes(obj any) (int, error) {
	n := 0
	switch v := obj.(type) {
	case Product:
		return v.CurrentNumberModes(), nil
	case HermitianProduct:
		return v.CurrentNumberModes(), nil
	case *FermionOperator:
		for _, k := range v.Keys() {
			n = max(n, k.CurrentNumberModes())
		}
	case *FermionHamiltonian:
		for _, k := range v.Keys() {
			n = max(n, k.CurrentNumberModes())
		}
	case *FermionLindbladNoiseOperator:
		for _, k := range v.Keys() {
			n = max(n, k.Left.CurrentNumberModes(), k.Right.CurrentNumberModes())
		}
	case *FermionLindbladOpenSystem:
		a, _ := CurrentNumberModes(v.System())
		b, _ := CurrentNumberModes(v.Noise())
		n = max(a, b)
	default:
		return 0, fmt.Errorf("fermions.CurrentNumberModes(%T): %w", obj, sum.ErrIncompatibleProductTypes)
	}

	return n, nil
}
