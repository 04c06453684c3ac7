// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
)

// jordanWignerLadder returns Z_0 … Z_{m-1} σ±_m in the Pauli basis,
// σ± = ½X ± (i/2)Y.
func jordanWignerLadder(m int, create bool) *spins.SpinOperator {
	parity := spins.NewPauliProduct()
	for k := 0; k < m; k++ {
		parity = parity.Set(k, spins.Z)
	}
	y := complex(0, 0.5)
	if !create {
		y = -y
	}
	op := spins.NewSpinOperator()
	// Keys are distinct and numeric; Set cannot fail on an unchecked container.
	_ = op.Set(parity.Set(m, spins.X), coefficient.FromFloat(0.5))
	_ = op.Set(parity.Set(m, spins.Y), coefficient.FromComplex128(y))

	return op
}

// JordanWignerProduct maps p onto an equivalent SpinOperator.
func JordanWignerProduct(p Product) (*spins.SpinOperator, error) {
	out := spins.NewSpinOperator()
	if err := out.Set(spins.NewPauliProduct(), coefficient.FromFloat(1)); err != nil {
		return nil, err
	}
	var err error
	for _, c := range p.creators {
		if out, err = out.Mul(jordanWignerLadder(c, true)); err != nil {
			return nil, fmt.Errorf("JordanWignerProduct(%s): %w", p, err)
		}
	}
	for _, a := range p.annihilators {
		if out, err = out.Mul(jordanWignerLadder(a, false)); err != nil {
			return nil, fmt.Errorf("JordanWignerProduct(%s): %w", p, err)
		}
	}

	return out, nil
}

// JordanWignerOperator maps op term by term.
func JordanWignerOperator(op *FermionOperator) (*spins.SpinOperator, error) {
	out := spins.NewSpinOperator(sum.WithBacking(op.Backing()))
	for p, v := range op.All() {
		jw, err := JordanWignerProduct(p)
		if err != nil {
			return nil, err
		}
		for s, f := range jw.All() {
			if err = out.AddOperatorProduct(s, v.Mul(f)); err != nil {
				return nil, fmt.Errorf("JordanWignerOperator: %w", err)
			}
		}
	}

	return out, nil
}

// JordanWignerHamiltonian maps h onto a SpinHamiltonian. A key P with
// coefficient v stands for vP + conj(v)P†; since Pauli products are
// Hermitian, JW(P†) = Σ conj(f_k) S_k and each spin coefficient is the real
// number 2·Re(v f_k), which keeps symbolic couplings real.
func JordanWignerHamiltonian(h *FermionHamiltonian) (*spins.SpinHamiltonian, error) {
	out := spins.NewSpinHamiltonian(sum.WithBacking(h.Backing()))
	for k, v := range h.All() {
		jw, err := JordanWignerProduct(k.Product())
		if err != nil {
			return nil, err
		}
		for s, fc := range jw.All() {
			f, err := fc.Complex128()
			if err != nil {
				return nil, err
			}
			var re coefficient.Float
			if k.IsSelfAdjoint() {
				re = v.Re().Mul(coefficient.NewFloat(real(f))).Sub(v.Im().Mul(coefficient.NewFloat(imag(f))))
			} else {
				re = v.Re().Mul(coefficient.NewFloat(2 * real(f))).Sub(v.Im().Mul(coefficient.NewFloat(2 * imag(f))))
			}
			if err = out.AddOperatorProduct(s, coefficient.FromReal(re)); err != nil {
				return nil, fmt.Errorf("JordanWignerHamiltonian(%s): %w", k, err)
			}
		}
	}

	return out, nil
}

// decoherenceTerms writes JW(p) in the decoherence basis.
func decoherenceTerms(p Product) ([]sum.Term[spins.DecoherenceProduct], error) {
	jw, err := JordanWignerProduct(p)
	if err != nil {
		return nil, err
	}
	out := make([]sum.Term[spins.DecoherenceProduct], 0, jw.Len())
	for s, v := range jw.All() {
		d, f := s.ToDecoherence()
		out = append(out, sum.Term[spins.DecoherenceProduct]{Key: d, Value: v.Scale(f)})
	}

	return out, nil
}

// JordanWignerNoise maps every entry Γ(L, R) by expanding JW(L) and JW(R)
// in the decoherence basis.
func JordanWignerNoise(n *FermionLindbladNoiseOperator) (*spins.SpinLindbladNoiseOperator, error) {
	out := spins.NewSpinLindbladNoiseOperator(sum.WithBacking(n.Backing()))
	for pair, rate := range n.All() {
		left, err := decoherenceTerms(pair.Left)
		if err != nil {
			return nil, err
		}
		right, err := decoherenceTerms(pair.Right)
		if err != nil {
			return nil, err
		}
		if err = out.AddExpanded(left, right, rate); err != nil {
			return nil, fmt.Errorf("JordanWignerNoise(%s): %w", pair, err)
		}
	}

	return out, nil
}

// JordanWignerOpenSystem maps both parts of s.
func JordanWignerOpenSystem(s *FermionLindbladOpenSystem) (*spins.SpinLindbladOpenSystem, error) {
	h, err := JordanWignerHamiltonian(s.System())
	if err != nil {
		return nil, err
	}
	n, err := JordanWignerNoise(s.Noise())
	if err != nil {
		return nil, err
	}

	return spins.SpinLindbladOpenSystemFrom(h, n)
}
