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

func pauli(t *testing.T, s string) spins.PauliProduct {
	t.Helper()
	p, err := spins.ParsePauliProduct(s)
	require.NoError(t, err)

	return p
}

func TestSpinHamiltonianRejectsComplex(t *testing.T) {
	h := spins.NewSpinHamiltonian()
	require.NoError(t, h.Set(pauli(t, "0Z"), coefficient.FromFloat(1.5)))
	require.NoError(t, h.Set(pauli(t, "0X1X"), coefficient.Symbol("J")))

	err := h.Set(pauli(t, "0X"), coefficient.FromComplex128(1+1i))
	require.ErrorIs(t, err, sum.ErrNonRealDiagonal)
	require.Equal(t, 2, h.Len())
}

func TestSpinHamiltonianFromOperator(t *testing.T) {
	op := spins.NewSpinOperator()
	require.NoError(t, op.Set(pauli(t, "0X"), coefficient.FromFloat(2)))
	h, err := spins.SpinHamiltonianFromOperator(op)
	require.NoError(t, err)
	require.True(t, coefficient.FromFloat(2).Equal(h.Get(pauli(t, "0X"))))

	require.NoError(t, op.Set(pauli(t, "1Y"), coefficient.FromComplex128(1i)))
	_, err = spins.SpinHamiltonianFromOperator(op)
	require.ErrorIs(t, err, sum.ErrNonRealDiagonal)
}

func TestSpinOperatorMul(t *testing.T) {
	a := spins.NewSpinOperator()
	require.NoError(t, a.Set(pauli(t, "0X"), coefficient.FromFloat(1)))
	b := spins.NewSpinOperator()
	require.NoError(t, b.Set(pauli(t, "0Y"), coefficient.FromFloat(2)))

	ab, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 1, ab.Len())
	require.True(t, coefficient.FromComplex128(2i).Equal(ab.Get(pauli(t, "0Z"))))
}

// TestBasisRoundTrip converts Pauli → plus-minus → Pauli and compares matrices.
func TestBasisRoundTrip(t *testing.T) {
	op := spins.NewSpinOperator()
	require.NoError(t, op.Set(pauli(t, "0X1Y"), coefficient.FromFloat(0.5)))
	require.NoError(t, op.Set(pauli(t, "1Z"), coefficient.FromComplex128(-2i)))

	pm, err := spins.SpinOperatorToPlusMinus(op)
	require.NoError(t, err)
	back, err := spins.PlusMinusToSpinOperator(pm)
	require.NoError(t, err)
	require.True(t, op.Truncate(1e-14).Equal(back.Truncate(1e-14)), "%v vs %v", op, back)

	want, err := spins.SparseMatrixCOO(op, 2)
	require.NoError(t, err)
	got, err := spins.SparseMatrixCOO(pm, 2)
	require.NoError(t, err)
	require.True(t, matrix.EqualCOO(want, got))

	dec, err := spins.SpinOperatorToDecoherence(op)
	require.NoError(t, err)
	got, err = spins.SparseMatrixCOO(dec, 2)
	require.NoError(t, err)
	require.True(t, matrix.EqualCOO(want, got))

	restored, err := spins.DecoherenceToSpinOperator(dec)
	require.NoError(t, err)
	require.True(t, op.Equal(restored))
}

func TestCurrentNumberSpins(t *testing.T) {
	h := spins.NewSpinHamiltonian()
	require.NoError(t, h.Set(pauli(t, "4Z"), coefficient.FromFloat(1)))
	n, err := spins.CurrentNumberSpins(h)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	_, err = spins.CurrentNumberSpins("0X")
	require.ErrorIs(t, err, sum.ErrUnsupportedMatrixRepresentation)
}

func TestNoiseRejectsIdentityPair(t *testing.T) {
	n := spins.NewSpinLindbladNoiseOperator()
	id := spins.NewDecoherenceProduct()
	err := n.Set(id, id, coefficient.FromFloat(1))
	require.ErrorIs(t, err, sum.ErrInvalidLindbladTerms)

	z := id.Set(0, spins.DecoherenceZ)
	require.NoError(t, n.Set(z, id, coefficient.FromFloat(1)))
}
