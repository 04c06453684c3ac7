// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
)

func weighted(f coefficient.Float, w float64) coefficient.Complex {
	return coefficient.FromReal(f.Mul(coefficient.NewFloat(w)))
}

func pair(i, j int, op spins.SingleSpinOperator) spins.PauliProduct {
	return spins.NewPauliProduct().Set(i, op).Set(j, op)
}

// Ising returns Σ_b J·w_b Z_i Z_j + h Σ_i X_i.
func Ising(l Lattice, j, h coefficient.Float, opts ...sum.Option) (*spins.SpinHamiltonian, error) {
	out := spins.NewSpinHamiltonian(opts...)
	for _, b := range l.Bonds {
		if err := out.AddOperatorProduct(pair(b.I, b.J, spins.Z), weighted(j, b.Weight)); err != nil {
			return nil, fmt.Errorf("Ising: bond (%d,%d): %w", b.I, b.J, err)
		}
	}
	for i := 0; i < l.Sites; i++ {
		if err := out.AddOperatorProduct(spins.NewPauliProduct().Set(i, spins.X), coefficient.FromReal(h)); err != nil {
			return nil, fmt.Errorf("Ising: site %d: %w", i, err)
		}
	}

	return out, nil
}

// Heisenberg returns Σ_b J·w_b (X_i X_j + Y_i Y_j + Z_i Z_j).
func Heisenberg(l Lattice, j coefficient.Float, opts ...sum.Option) (*spins.SpinHamiltonian, error) {
	out := spins.NewSpinHamiltonian(opts...)
	for _, b := range l.Bonds {
		for _, op := range []spins.SingleSpinOperator{spins.X, spins.Y, spins.Z} {
			if err := out.AddOperatorProduct(pair(b.I, b.J, op), weighted(j, b.Weight)); err != nil {
				return nil, fmt.Errorf("Heisenberg: bond (%d,%d): %w", b.I, b.J, err)
			}
		}
	}

	return out, nil
}

// Hopping returns the spinless tight-binding model
// -Σ_b t·w_b (c_i† c_j + c_j† c_i) - mu Σ_i c_i† c_i.
func Hopping(l Lattice, t, mu coefficient.Float, opts ...sum.Option) (*fermions.FermionHamiltonian, error) {
	out := fermions.NewFermionHamiltonian(opts...)
	for _, b := range l.Bonds {
		k, _, err := fermions.NewHermitianProduct([]int{b.I}, []int{b.J})
		if err != nil {
			return nil, fmt.Errorf("Hopping: bond (%d,%d): %w", b.I, b.J, err)
		}
		if err = out.AddOperatorProduct(k, weighted(t.Neg(), b.Weight)); err != nil {
			return nil, fmt.Errorf("Hopping: bond (%d,%d): %w", b.I, b.J, err)
		}
	}
	for i := 0; i < l.Sites; i++ {
		k, _, err := fermions.NewHermitianProduct([]int{i}, []int{i})
		if err != nil {
			return nil, err
		}
		if err = out.AddOperatorProduct(k, coefficient.FromReal(mu.Neg())); err != nil {
			return nil, fmt.Errorf("Hopping: site %d: %w", i, err)
		}
	}

	return out, nil
}

// BoseHubbard returns
// -Σ_b t·w_b (b_i† b_j + b_j† b_i) + U/2 Σ_i b_i† b_i† b_i b_i - mu Σ_i b_i† b_i.
func BoseHubbard(l Lattice, t, u, mu coefficient.Float, opts ...sum.Option) (*bosons.BosonHamiltonian, error) {
	out := bosons.NewBosonHamiltonian(opts...)
	for _, b := range l.Bonds {
		k, err := bosons.NewHermitianProduct([]int{b.I}, []int{b.J})
		if err != nil {
			return nil, fmt.Errorf("BoseHubbard: bond (%d,%d): %w", b.I, b.J, err)
		}
		if err = out.AddOperatorProduct(k, weighted(t.Neg(), b.Weight)); err != nil {
			return nil, fmt.Errorf("BoseHubbard: bond (%d,%d): %w", b.I, b.J, err)
		}
	}
	half, err := u.Div(coefficient.NewFloat(2))
	if err != nil {
		return nil, err
	}
	for i := 0; i < l.Sites; i++ {
		onsite, err := bosons.NewHermitianProduct([]int{i, i}, []int{i, i})
		if err != nil {
			return nil, err
		}
		if err = out.AddOperatorProduct(onsite, coefficient.FromReal(half)); err != nil {
			return nil, fmt.Errorf("BoseHubbard: site %d: %w", i, err)
		}
		n, err := bosons.NewHermitianProduct([]int{i}, []int{i})
		if err != nil {
			return nil, err
		}
		if err = out.AddOperatorProduct(n, coefficient.FromReal(mu.Neg())); err != nil {
			return nil, fmt.Errorf("BoseHubbard: site %d: %w", i, err)
		}
	}

	return out, nil
}
