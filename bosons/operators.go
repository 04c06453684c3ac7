// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"

	"github.com/katalvlaran/struqture/sum"
)

// Boson containers.
type (
	BosonOperator              = sum.Operator[Product]
	BosonHamiltonian           = sum.Hamiltonian[HermitianProduct, Product]
	BosonLindbladNoiseOperator = sum.Noise[Product]
	BosonLindbladOpenSystem    = sum.OpenSystem[HermitianProduct, Product, Product]
)

// NewBosonOperator returns an empty operator.
func NewBosonOperator(opts ...sum.Option) *BosonOperator {
	return sum.NewOperator[Product](sum.BosonArity, nil, opts...)
}

// NewBosonHamiltonian returns an empty Hamiltonian.
func NewBosonHamiltonian(opts ...sum.Option) *BosonHamiltonian {
	return sum.NewHamiltonian[HermitianProduct, Product](sum.BosonArity, HermitianFrom, nil, nil, opts...)
}

// NewBosonLindbladNoiseOperator returns an empty rate matrix.
func NewBosonLindbladNoiseOperator(opts ...sum.Option) *BosonLindbladNoiseOperator {
	return sum.NewNoise[Product](sum.BosonArity, nil, opts...)
}

// NewBosonLindbladOpenSystem returns an empty open system.
func NewBosonLindbladOpenSystem(opts ...sum.Option) *BosonLindbladOpenSystem {
	s, _ := sum.NewOpenSystem(NewBosonHamiltonian(opts...), NewBosonLindbladNoiseOperator(opts...))

	return s
}

// BosonHamiltonianFromOperator converts a Hermitian operator.
func BosonHamiltonianFromOperator(op *BosonOperator) (*BosonHamiltonian, error) {
	return sum.HamiltonianFromOperator(NewBosonHamiltonian(sum.WithBacking(op.Backing())), op)
}

// CurrentNumberModes returns highest referenced mode + 1 of a boson
// product or container.
func CurrentNumberModes(obj any) (int, error) {
	n := 0
	switch v := obj.(type) {
	case Product:
		return v.CurrentNumberModes(), nil
	case HermitianProduct:
		return v.CurrentNumberModes(), nil
	case *BosonOperator:
		for _, k := range v.Keys() {
			n = max(n, k.CurrentNumberModes())
		}
	case *BosonHamiltonian:
		for _, k := range v.Keys() {
			n = max(n, k.CurrentNumberModes())
		}
	case *BosonLindbladNoiseOperator:
		for _, k := range v.Keys() {
			n = max(n, k.Left.CurrentNumberModes(), k.Right.CurrentNumberModes())
		}
	case *BosonLindbladOpenSystem:
		a, _ := CurrentNumberModes(v.System())
		b, _ := CurrentNumberModes(v.Noise())
		n = max(a, b)
	default:
		return 0, fmt.Errorf("bosons.CurrentNumberModes(%T): %w", obj, sum.ErrIncompatibleProductTypes)
	}

	return n, nil
}
