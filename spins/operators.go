// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/sum"
)

// Spin containers.
type (
	// SpinOperator is a general sum of Pauli products.
	SpinOperator = sum.Operator[PauliProduct]

	// SpinHamiltonian is a Hermitian sum of Pauli products (real coefficients).
	SpinHamiltonian = sum.Hamiltonian[PauliProduct, PauliProduct]

	// DecoherenceOperator is a sum of decoherence products.
	DecoherenceOperator = sum.Operator[DecoherenceProduct]

	// PlusMinusOperator is a sum of plus-minus products.
	PlusMinusOperator = sum.Operator[PlusMinusProduct]

	// PlusMinusLindbladNoiseOperator is a Lindblad rate matrix over plus-minus products.
	PlusMinusLindbladNoiseOperator = sum.Noise[PlusMinusProduct]

	// SpinLindbladNoiseOperator is a Lindblad rate matrix over decoherence products.
	SpinLindbladNoiseOperator = sum.Noise[DecoherenceProduct]

	// SpinLindbladOpenSystem pairs a SpinHamiltonian with spin noise.
	SpinLindbladOpenSystem = sum.OpenSystem[PauliProduct, PauliProduct, DecoherenceProduct]
)

// liftPauli: every Pauli product is its own representative.
func liftPauli(p PauliProduct) (PauliProduct, complex128, bool) { return p, 1, false }

// NewSpinOperator returns an empty SpinOperator.
func NewSpinOperator(opts ...sum.Option) *SpinOperator {
	return sum.NewOperator[PauliProduct](sum.SpinArity, nil, opts...)
}

// NewSpinHamiltonian returns an empty SpinHamiltonian.
func NewSpinHamiltonian(opts ...sum.Option) *SpinHamiltonian {
	return sum.NewHamiltonian[PauliProduct, PauliProduct](sum.SpinArity, liftPauli, nil, nil, opts...)
}

// NewDecoherenceOperator returns an empty DecoherenceOperator.
func NewDecoherenceOperator(opts ...sum.Option) *DecoherenceOperator {
	return sum.NewOperator[DecoherenceProduct](sum.SpinArity, nil, opts...)
}

// NewPlusMinusOperator returns an empty PlusMinusOperator.
func NewPlusMinusOperator(opts ...sum.Option) *PlusMinusOperator {
	return sum.NewOperator[PlusMinusProduct](sum.SpinArity, nil, opts...)
}

// NewPlusMinusLindbladNoiseOperator returns an empty plus-minus rate matrix.
func NewPlusMinusLindbladNoiseOperator(opts ...sum.Option) *PlusMinusLindbladNoiseOperator {
	return sum.NewNoise[PlusMinusProduct](sum.SpinArity, nil, opts...)
}

// NewSpinLindbladNoiseOperator returns an empty rate matrix.
func NewSpinLindbladNoiseOperator(opts ...sum.Option) *SpinLindbladNoiseOperator {
	return sum.NewNoise[DecoherenceProduct](sum.SpinArity, nil, opts...)
}

// NewSpinLindbladOpenSystem returns an empty open system.
func NewSpinLindbladOpenSystem(opts ...sum.Option) *SpinLindbladOpenSystem {
	// Both parts carry sum.SpinArity, so the arity check cannot fail.
	s, _ := sum.NewOpenSystem(NewSpinHamiltonian(opts...), NewSpinLindbladNoiseOperator(opts...))

	return s
}

// SpinLindbladOpenSystemFrom combines existing parts.
func SpinLindbladOpenSystemFrom(system *SpinHamiltonian, noise *SpinLindbladNoiseOperator) (*SpinLindbladOpenSystem, error) {
	return sum.NewOpenSystem(system, noise)
}

// SpinHamiltonianFromOperator converts a Hermitian SpinOperator; every
// coefficient must be real, otherwise sum.ErrNonRealDiagonal.
func SpinHamiltonianFromOperator(op *SpinOperator) (*SpinHamiltonian, error) {
	return sum.HamiltonianFromOperator(NewSpinHamiltonian(sum.WithBacking(op.Backing())), op)
}

// ---------- Basis changes ----------

// SpinOperatorToPlusMinus rewrites op in the plus-minus basis.
func SpinOperatorToPlusMinus(op *SpinOperator) (*PlusMinusOperator, error) {
	out := NewPlusMinusOperator(sum.WithBacking(op.Backing()))
	for p, v := range op.All() {
		for _, t := range p.ToPlusMinus() {
			if err := out.AddOperatorProduct(t.Product, v.Scale(t.Factor)); err != nil {
				return nil, fmt.Errorf("SpinOperatorToPlusMinus: %w", err)
			}
		}
	}

	return out, nil
}

// PlusMinusToSpinOperator rewrites op in the Pauli basis.
func PlusMinusToSpinOperator(op *PlusMinusOperator) (*SpinOperator, error) {
	out := NewSpinOperator(sum.WithBacking(op.Backing()))
	for p, v := range op.All() {
		for _, t := range p.ToPauli() {
			if err := out.AddOperatorProduct(t.Product, v.Scale(t.Factor)); err != nil {
				return nil, fmt.Errorf("PlusMinusToSpinOperator: %w", err)
			}
		}
	}

	return out, nil
}

// SpinOperatorToDecoherence rewrites op in the decoherence basis.
func SpinOperatorToDecoherence(op *SpinOperator) (*DecoherenceOperator, error) {
	out := NewDecoherenceOperator(sum.WithBacking(op.Backing()))
	for p, v := range op.All() {
		d, f := p.ToDecoherence()
		if err := out.AddOperatorProduct(d, v.Scale(f)); err != nil {
			return nil, fmt.Errorf("SpinOperatorToDecoherence: %w", err)
		}
	}

	return out, nil
}

// DecoherenceToSpinOperator rewrites op in the Pauli basis.
func DecoherenceToSpinOperator(op *DecoherenceOperator) (*SpinOperator, error) {
	out := NewSpinOperator(sum.WithBacking(op.Backing()))
	for d, v := range op.All() {
		p, f := d.ToPauli()
		if err := out.AddOperatorProduct(p, v.Scale(f)); err != nil {
			return nil, fmt.Errorf("DecoherenceToSpinOperator: %w", err)
		}
	}

	return out, nil
}

// PlusMinusNoiseToSpinNoise rewrites a plus-minus rate matrix in the
// decoherence basis, expanding both operators of every entry.
func PlusMinusNoiseToSpinNoise(n *PlusMinusLindbladNoiseOperator) (*SpinLindbladNoiseOperator, error) {
	out := NewSpinLindbladNoiseOperator(sum.WithBacking(n.Backing()))
	for pair, rate := range n.All() {
		if err := out.AddExpanded(decoherenceTerms(pair.Left), decoherenceTerms(pair.Right), rate); err != nil {
			return nil, fmt.Errorf("PlusMinusNoiseToSpinNoise: %w", err)
		}
	}

	return out, nil
}

// decoherenceTerms writes p as Σ c_k D_k.
func decoherenceTerms(p PlusMinusProduct) []sum.Term[DecoherenceProduct] {
	pauli := p.ToPauli()
	out := make([]sum.Term[DecoherenceProduct], 0, len(pauli))
	for _, t := range pauli {
		d, f := t.Product.ToDecoherence()
		out = append(out, sum.Term[DecoherenceProduct]{Key: d, Value: coefficient.FromComplex128(t.Factor * f)})
	}

	return out
}

// ---------- Sizes ----------

// CurrentNumberSpins returns highest referenced site + 1 of any spin
// product or container, or sum.ErrUnsupportedMatrixRepresentation.
func CurrentNumberSpins(obj any) (int, error) {
	switch v := obj.(type) {
	case PauliProduct:
		return v.CurrentNumberSpins(), nil
	case DecoherenceProduct:
		return v.CurrentNumberSpins(), nil
	case PlusMinusProduct:
		return v.CurrentNumberSpins(), nil
	case *SpinOperator:
		return maxOver(v.Keys(), PauliProduct.CurrentNumberSpins), nil
	case *SpinHamiltonian:
		return maxOver(v.Keys(), PauliProduct.CurrentNumberSpins), nil
	case *DecoherenceOperator:
		return maxOver(v.Keys(), DecoherenceProduct.CurrentNumberSpins), nil
	case *PlusMinusOperator:
		return maxOver(v.Keys(), PlusMinusProduct.CurrentNumberSpins), nil
	case *SpinLindbladNoiseOperator:
		return noiseSpins(v), nil
	case *PlusMinusLindbladNoiseOperator:
		n := 0
		for _, k := range v.Keys() {
			n = max(n, k.Left.CurrentNumberSpins(), k.Right.CurrentNumberSpins())
		}
		return n, nil
	case *SpinLindbladOpenSystem:
		return max(maxOver(v.System().Keys(), PauliProduct.CurrentNumberSpins), noiseSpins(v.Noise())), nil
	default:
		return 0, fmt.Errorf("CurrentNumberSpins(%T): %w", obj, sum.ErrUnsupportedMatrixRepresentation)
	}
}

func maxOver[K any](keys []K, size func(K) int) int {
	n := 0
	for _, k := range keys {
		n = max(n, size(k))
	}

	return n
}

func noiseSpins(v *SpinLindbladNoiseOperator) int {
	n := 0
	for _, k := range v.Keys() {
		n = max(n, k.Left.CurrentNumberSpins(), k.Right.CurrentNumberSpins())
	}

	return n
}
