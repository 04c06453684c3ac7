// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"

	"github.com/katalvlaran/struqture/sum"
)

// Mixed containers.
type (
	MixedOperator              = sum.Operator[Product]
	MixedHamiltonian           = sum.Hamiltonian[HermitianProduct, Product]
	MixedLindbladNoiseOperator = sum.Noise[DecoherenceProduct]
	MixedLindbladOpenSystem    = sum.OpenSystem[HermitianProduct, Product, DecoherenceProduct]
)

// shaped is any mixed key.
type shaped interface {
	fmt.Stringer
	Arity() sum.Arity
}

// shapeCheck rejects keys whose shape differs from a.
func shapeCheck[K shaped](a sum.Arity) sum.Validator[K] {
	return func(k K) error {
		if k.Arity() != a {
			return fmt.Errorf("%s has shape %v, container %v: %w", k, k.Arity(), a, sum.ErrMismatchedSubsystemCount)
		}

		return nil
	}
}

func arity(nSpins, nBosons, nFermions int) sum.Arity {
	if nSpins < 0 || nBosons < 0 || nFermions < 0 {
		panic(panicNegativeCount)
	}

	return sum.Arity{Spins: nSpins, Bosons: nBosons, Fermions: nFermions}
}

// NewMixedOperator returns an empty operator with the given shape.
// Panics on negative counts.
func NewMixedOperator(nSpins, nBosons, nFermions int, opts ...sum.Option) *MixedOperator {
	a := arity(nSpins, nBosons, nFermions)

	return sum.NewOperator[Product](a, shapeCheck[Product](a), opts...)
}

// NewMixedHamiltonian returns an empty Hamiltonian with the given shape.
func NewMixedHamiltonian(nSpins, nBosons, nFermions int, opts ...sum.Option) *MixedHamiltonian {
	a := arity(nSpins, nBosons, nFermions)

	return sum.NewHamiltonian[HermitianProduct, Product](
		a, HermitianFrom, shapeCheck[HermitianProduct](a), shapeCheck[Product](a), opts...)
}

// NewMixedLindbladNoiseOperator returns an empty rate matrix with the given shape.
func NewMixedLindbladNoiseOperator(nSpins, nBosons, nFermions int, opts ...sum.Option) *MixedLindbladNoiseOperator {
	a := arity(nSpins, nBosons, nFermions)

	return sum.NewNoise[DecoherenceProduct](a, shapeCheck[DecoherenceProduct](a), opts...)
}

// NewMixedLindbladOpenSystem returns an empty open system with the given shape.
func NewMixedLindbladOpenSystem(nSpins, nBosons, nFermions int, opts ...sum.Option) *MixedLindbladOpenSystem {
	s, _ := sum.NewOpenSystem(
		NewMixedHamiltonian(nSpins, nBosons, nFermions, opts...),
		NewMixedLindbladNoiseOperator(nSpins, nBosons, nFermions, opts...),
	)

	return s
}

// MixedHamiltonianFromOperator converts a Hermitian operator.
func MixedHamiltonianFromOperator(op *MixedOperator) (*MixedHamiltonian, error) {
	a := op.Arity()

	return sum.HamiltonianFromOperator(NewMixedHamiltonian(a.Spins, a.Bosons, a.Fermions, sum.WithBacking(op.Backing())), op)
}
