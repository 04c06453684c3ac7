// SPDX-License-Identifier: MIT

package fermions_test

import (
	"testing"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/spins"
	"github.com/stretchr/testify/require"
)

func jwMatrix(t *testing.T, p fermions.Product, n int) *matrix.COO {
	t.Helper()
	op, err := fermions.JordanWignerProduct(p)
	require.NoError(t, err)
	m, err := spins.SparseMatrixCOO(op, n)
	require.NoError(t, err)

	return m
}

func TestJordanWignerSingleMode(t *testing.T) {
	m := jwMatrix(t, mustProduct(t, nil, []int{0}), 1)
	lower := matrix.DenseToCOO(matrix.MustDenseFromRows([][]complex128{{0, 0}, {1, 0}}))
	require.True(t, matrix.EqualCOO(lower, m))
}

// TestJordanWignerAnticommutation checks {c_i, c†_j} = δ_ij on three modes.
func TestJordanWignerAnticommutation(t *testing.T) {
	const modes = 3
	id, err := matrix.IdentityCOO(1 << modes)
	require.NoError(t, err)
	for i := 0; i < modes; i++ {
		for j := 0; j < modes; j++ {
			c := jwMatrix(t, mustProduct(t, nil, []int{i}), modes)
			cd := jwMatrix(t, mustProduct(t, []int{j}, nil), modes)
			ab, err := matrix.MulCOO(c, cd)
			require.NoError(t, err)
			ba, err := matrix.MulCOO(cd, c)
			require.NoError(t, err)

			b, err := matrix.NewBuilder(1<<modes, 1<<modes)
			require.NoError(t, err)
			require.NoError(t, b.AddCOO(ab, 1))
			require.NoError(t, b.AddCOO(ba, 1))
			want, err := matrix.NewBuilder(1<<modes, 1<<modes)
			require.NoError(t, err)
			if i == j {
				require.NoError(t, want.AddCOO(id, 1))
			}
			require.True(t, matrix.EqualCOO(want.Finalize(), b.Finalize()), "i=%d j=%d", i, j)
		}
	}
}

// TestJordanWignerMultiplicative checks JW(A)·JW(B) = JW(A·B).
func TestJordanWignerMultiplicative(t *testing.T) {
	a := fermions.NewFermionOperator()
	require.NoError(t, a.Set(mustProduct(t, []int{0}, []int{2}), coefficient.FromComplex128(1-0.5i)))
	require.NoError(t, a.Set(mustProduct(t, []int{1}, nil), coefficient.FromFloat(2)))
	b := fermions.NewFermionOperator()
	require.NoError(t, b.Set(mustProduct(t, []int{2}, []int{0, 1}), coefficient.FromFloat(0.5)))
	require.NoError(t, b.Set(mustProduct(t, []int{1}, []int{1}), coefficient.FromComplex128(1i)))

	ab, err := a.Mul(b)
	require.NoError(t, err)

	jwA, err := fermions.JordanWignerOperator(a)
	require.NoError(t, err)
	jwB, err := fermions.JordanWignerOperator(b)
	require.NoError(t, err)
	jwAB, err := fermions.JordanWignerOperator(ab)
	require.NoError(t, err)

	mA, err := spins.SparseMatrixCOO(jwA, 3)
	require.NoError(t, err)
	mB, err := spins.SparseMatrixCOO(jwB, 3)
	require.NoError(t, err)
	mAB, err := spins.SparseMatrixCOO(jwAB, 3)
	require.NoError(t, err)

	prod, err := matrix.MulCOO(mA, mB)
	require.NoError(t, err)
	require.True(t, matrix.EqualCOO(prod, mAB))
}

// TestJordanWignerHopping maps t(c†_0 c_1 + h.c.) onto -t/2 (XX + YY).
func TestJordanWignerHopping(t *testing.T) {
	h := fermions.NewFermionHamiltonian()
	hop, _, err := fermions.NewHermitianProduct([]int{0}, []int{1})
	require.NoError(t, err)
	require.NoError(t, h.Set(hop, coefficient.Symbol("t")))
	num, _, err := fermions.NewHermitianProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, h.Set(num, coefficient.FromFloat(3)))

	spin, err := fermions.JordanWignerHamiltonian(h)
	require.NoError(t, err)

	calc := coefficient.NewCalculator()
	require.NoError(t, calc.Set("t", 2))
	resolved, err := spin.SubstituteParameters(calc)
	require.NoError(t, err)

	want := map[string]complex128{"0X1X": -1, "0Y1Y": -1, "I": 1.5, "0Z": 1.5}
	require.Equal(t, len(want), resolved.Len(), "%v", resolved)
	for k, v := range resolved.All() {
		c, err := v.Complex128()
		require.NoError(t, err)
		require.InDelta(t, real(want[k.String()]), real(c), 1e-12, k.String())
		require.Zero(t, imag(c), k.String())
	}

	// The spin Hamiltonian reproduces the fermion operator's matrix.
	numeric, err := h.ToOperator().SubstituteParameters(calc)
	require.NoError(t, err)
	fermionOp, err := fermions.JordanWignerOperator(numeric)
	require.NoError(t, err)
	m1, err := spins.SparseMatrixCOO(fermionOp, 2)
	require.NoError(t, err)
	m2, err := spins.SparseMatrixCOO(resolved, 2)
	require.NoError(t, err)
	require.True(t, matrix.EqualCOO(m1, m2))
}

// TestJordanWignerNoise maps Γ(c_0, c_0) onto the σ-σ- dissipator.
func TestJordanWignerNoise(t *testing.T) {
	c0 := mustProduct(t, nil, []int{0})
	open := fermions.NewFermionLindbladOpenSystem()
	require.NoError(t, open.Noise().Set(c0, c0, coefficient.FromFloat(0.5)))
	hp, _, err := fermions.NewHermitianProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, open.System().Set(hp, coefficient.FromFloat(1)))

	spinOpen, err := fermions.JordanWignerOpenSystem(open)
	require.NoError(t, err)
	got, err := spins.SuperoperatorCOO(spinOpen, 1)
	require.NoError(t, err)

	minus := spins.NewPlusMinusProduct().Set(0, spins.Minus)
	pm := spins.NewPlusMinusLindbladNoiseOperator()
	require.NoError(t, pm.Set(minus, minus, coefficient.FromFloat(0.5)))
	dissipator, err := spins.SuperoperatorCOO(pm, 1)
	require.NoError(t, err)

	ham := spins.NewSpinHamiltonian()
	require.NoError(t, ham.Set(spins.NewPauliProduct(), coefficient.FromFloat(0.5)))
	require.NoError(t, ham.Set(spins.NewPauliProduct().Set(0, spins.Z), coefficient.FromFloat(0.5)))
	coherent, err := spins.SuperoperatorCOO(ham, 1)
	require.NoError(t, err)

	b, err := matrix.NewBuilder(4, 4)
	require.NoError(t, err)
	require.NoError(t, b.AddCOO(dissipator, 1))
	require.NoError(t, b.AddCOO(coherent, 1))
	require.True(t, matrix.EqualCOO(b.Finalize(), got))
}
