// SPDX-License-Identifier: MIT

package spins_test

import (
	"testing"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
	"github.com/stretchr/testify/require"
)

func TestSparseMatrixSiteOrdering(t *testing.T) {
	op := spins.NewSpinOperator()
	require.NoError(t, op.Set(pauli(t, "0Z"), coefficient.FromFloat(1)))

	m, err := spins.SparseMatrixCOO(op, 2)
	require.NoError(t, err)
	d, err := m.ToDense()
	require.NoError(t, err)
	for i, want := range []complex128{1, -1, 1, -1} {
		v, _ := d.At(i, i)
		require.Equal(t, want, v, "diag %d", i)
	}

	// X on site 1 flips the most significant bit.
	m, err = spins.SparseMatrixCOO(pauli(t, "1X"), 2)
	require.NoError(t, err)
	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)
}

func TestSparseMatrixErrors(t *testing.T) {
	op := spins.NewSpinOperator()
	require.NoError(t, op.Set(pauli(t, "2Z"), coefficient.FromFloat(1)))

	_, err := spins.SparseMatrixCOO(op, 2)
	require.ErrorIs(t, err, sum.ErrDimensionTooSmall)

	_, err = spins.SparseMatrixCOO(spins.NewSpinLindbladNoiseOperator(), 1)
	require.ErrorIs(t, err, sum.ErrUnsupportedMatrixRepresentation)

	require.NoError(t, op.Set(pauli(t, "0X"), coefficient.Symbol("g")))
	_, err = spins.SparseMatrixCOO(op, 3)
	require.ErrorIs(t, err, coefficient.ErrSymbolic)

	_, err = spins.SuperoperatorCOO(op, 3)
	require.ErrorIs(t, err, sum.ErrUnsupportedMatrixRepresentation)
}

// TestSuperoperatorDecay compares a σ-σ- entry with its decoherence expansion.
func TestSuperoperatorDecay(t *testing.T) {
	minus := spins.NewPlusMinusProduct().Set(0, spins.Minus)
	pm := spins.NewPlusMinusLindbladNoiseOperator()
	require.NoError(t, pm.Set(minus, minus, coefficient.FromFloat(0.5)))

	direct, err := spins.SuperoperatorCOO(pm, 1)
	require.NoError(t, err)

	noise, err := spins.PlusMinusNoiseToSpinNoise(pm)
	require.NoError(t, err)
	expanded, err := spins.SuperoperatorCOO(noise, 1)
	require.NoError(t, err)
	require.True(t, matrix.EqualCOO(direct, expanded))

	// σ- maps basis index 0 to index 1, so ρ_00 feeds ρ_11.
	v, err := direct.At(3, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, real(v), 1e-12)
}

func TestOpenSystemSuperoperator(t *testing.T) {
	sys := spins.NewSpinLindbladOpenSystem()
	require.NoError(t, sys.System().Set(pauli(t, "0Z"), coefficient.FromFloat(1)))
	z := spins.NewDecoherenceProduct().Set(0, spins.DecoherenceZ)
	require.NoError(t, sys.Noise().Set(z, z, coefficient.FromFloat(0.25)))

	m, err := spins.SuperoperatorCOO(sys, 1)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	// Dephasing: off-diagonals get -2i (coherent) - 2γ (noise); diagonals untouched.
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, -0.5, real(v), 1e-12)
	require.InDelta(t, -2, imag(v), 1e-12)
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = spins.SuperoperatorCOO(sys, 0)
	require.ErrorIs(t, err, sum.ErrDimensionTooSmall)
}
