// SPDX-License-Identifier: MIT

package bosons_test

import (
	"testing"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/sum"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, c, a []int) bosons.Product {
	t.Helper()
	p, err := bosons.NewProduct(c, a)
	require.NoError(t, err)

	return p
}

func TestProductCanonical(t *testing.T) {
	p := mustProduct(t, []int{2, 0, 2}, []int{1})
	require.Equal(t, "c0c2c2a1", p.String())
	require.Equal(t, 3, p.CurrentNumberModes())

	q, err := bosons.ParseProduct("c2c0c2a1")
	require.NoError(t, err)
	require.True(t, p.Equal(q))

	_, err = bosons.NewProduct([]int{-1}, nil)
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)

	_, err = bosons.ParseProduct("a1c0")
	require.ErrorIs(t, err, bosons.ErrParse)
}

// TestMultiplyCommutator checks a_0 a†_0 = a†_0 a_0 + 1.
func TestMultiplyCommutator(t *testing.T) {
	a := mustProduct(t, nil, []int{0})
	ad := mustProduct(t, []int{0}, nil)

	got := a.Multiply(ad)
	require.Len(t, got, 2)
	require.Equal(t, "c0a0", got[0].Product.String())
	require.Equal(t, complex128(1), got[0].Factor)
	require.True(t, got[1].Product.IsIdentity())

	// a_0 a_0 a†_0 a†_0 = a†a†aa + 4 a†a + 2.
	aa := mustProduct(t, nil, []int{0, 0})
	adad := mustProduct(t, []int{0, 0}, nil)
	byKey := map[string]complex128{}
	for _, s := range aa.Multiply(adad) {
		byKey[s.Product.String()] = s.Factor
	}
	require.Equal(t, map[string]complex128{"c0c0a0a0": 1, "c0a0": 4, "I": 2}, byKey)
}

func TestHermitianConjugateInvolution(t *testing.T) {
	for _, p := range []bosons.Product{
		mustProduct(t, []int{0, 1}, []int{3}),
		mustProduct(t, []int{2}, []int{2}),
		{},
	} {
		q, _ := p.HermitianConjugate()
		qq, _ := q.HermitianConjugate()
		require.True(t, p.Equal(qq), p.String())

		h, _, _ := bosons.HermitianFrom(p)
		hq, _, _ := bosons.HermitianFrom(q)
		require.Equal(t, h.IsSelfAdjoint(), hq.IsSelfAdjoint(), p.String())
		require.Equal(t, h.String(), hq.String(), p.String())
	}
}

func TestStrictHermitianProduct(t *testing.T) {
	h, err := bosons.NewHermitianProduct([]int{0}, []int{1, 2})
	require.NoError(t, err)
	require.False(t, h.IsSelfAdjoint())

	_, err = bosons.NewHermitianProduct([]int{1, 2}, []int{0})
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)

	n, err := bosons.NewHermitianProduct([]int{3}, []int{3})
	require.NoError(t, err)
	require.True(t, n.IsSelfAdjoint())
}

func TestHamiltonianAddProductConjugates(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	p := mustProduct(t, []int{1}, []int{0}) // representative is c0a1
	require.NoError(t, h.AddProduct(p, coefficient.FromComplex128(2i)))

	rep, err := bosons.NewHermitianProduct([]int{0}, []int{1})
	require.NoError(t, err)
	require.True(t, coefficient.FromComplex128(-2i).Equal(h.Get(rep)))

	num, err := bosons.NewHermitianProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.ErrorIs(t, h.Set(num, coefficient.FromComplex128(1+1i)), sum.ErrNonRealDiagonal)
	require.NoError(t, h.Set(num, coefficient.FromComplex128(1)))

	// The Hermitian sum survives addition; products demote to Operator.
	sum2, err := h.Add(h)
	require.NoError(t, err)
	require.Equal(t, 2, sum2.Len())

	prod, err := h.Mul(h)
	require.NoError(t, err)
	require.NoError(t, prod.Set(mustProduct(t, []int{0}, []int{0}), coefficient.FromComplex128(1+1i)))
}

func TestRemapModes(t *testing.T) {
	p := mustProduct(t, []int{0}, []int{1})
	q, phase, err := p.RemapModes(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	require.Equal(t, "c1a0", q.String())
	require.Equal(t, complex128(1), phase)

	_, _, err = p.RemapModes(map[int]int{0: 1})
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)

	n, err := bosons.CurrentNumberModes(q)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}
