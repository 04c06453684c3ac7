// SPDX-License-Identifier: MIT

package mixed_test

import (
	"testing"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
	"github.com/stretchr/testify/require"
)

func boson(t *testing.T, c, a []int) bosons.Product {
	t.Helper()
	p, err := bosons.NewProduct(c, a)
	require.NoError(t, err)

	return p
}

func fermion(t *testing.T, c, a []int) fermions.Product {
	t.Helper()
	p, _, err := fermions.NewProduct(c, a)
	require.NoError(t, err)

	return p
}

// TestOperatorRejectsWrongShape inserts a (1, 0, 0) product into a (2, 1, 0) container.
func TestOperatorRejectsWrongShape(t *testing.T) {
	op := mixed.NewMixedOperator(2, 1, 0)
	bad := mixed.NewProduct([]spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.X)}, nil, nil)
	err := op.Set(bad, coefficient.FromFloat(1))
	require.ErrorIs(t, err, sum.ErrMismatchedSubsystemCount)
	require.True(t, op.IsEmpty())

	good := mixed.NewProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.X), spins.NewPauliProduct()},
		[]bosons.Product{boson(t, []int{0}, nil)},
		nil,
	)
	require.NoError(t, op.Set(good, coefficient.FromFloat(1)))
	require.Equal(t, "S0X:SI:Bc0:", good.String())

	other := mixed.NewMixedOperator(1, 0, 0)
	_, err = op.Add(other)
	require.ErrorIs(t, err, sum.ErrMismatchedSubsystemCount)

	require.Panics(t, func() { mixed.NewMixedOperator(-1, 0, 0) })
}

func TestParseProduct(t *testing.T) {
	p, phase, err := mixed.ParseProduct("S0X1Z:Bc0a1:Fc1c0a2:")
	require.NoError(t, err)
	require.Equal(t, "S0X1Z:Bc0a1:Fc0c1a2:", p.String())
	require.Equal(t, complex128(-1), phase)
	require.Equal(t, sum.Arity{Spins: 1, Bosons: 1, Fermions: 1}, p.Arity())

	for _, bad := range []string{"S0X", "Bc0:S0X:", "Q1:", "S0X::"} {
		_, _, err = mixed.ParseProduct(bad)
		require.Error(t, err, bad)
	}
}

// TestMultiplyAcrossSubsystems checks (X ⊗ a_0)(Y ⊗ a†_0) = iZ ⊗ (a†_0 a_0 + 1).
func TestMultiplyAcrossSubsystems(t *testing.T) {
	a := mixed.NewProduct([]spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.X)},
		[]bosons.Product{boson(t, nil, []int{0})}, nil)
	b := mixed.NewProduct([]spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.Y)},
		[]bosons.Product{boson(t, []int{0}, nil)}, nil)

	byKey := map[string]complex128{}
	for _, s := range a.Multiply(b) {
		byKey[s.Product.String()] = s.Factor
	}
	require.Equal(t, map[string]complex128{"S0Z:Bc0a0:": 1i, "S0Z:BI:": 1i}, byKey)
}

func TestHermitianRepresentative(t *testing.T) {
	spin := []spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.Z)}
	up := mixed.NewProduct(spin, []bosons.Product{boson(t, []int{0}, []int{1})}, []fermions.Product{fermion(t, []int{2}, nil)})
	down, phase := up.HermitianConjugate()
	require.Equal(t, "S0Z:Bc1a0:Fa2:", down.String())
	require.Equal(t, complex128(1), phase)

	h1, _, c1 := mixed.HermitianFrom(up)
	h2, _, c2 := mixed.HermitianFrom(down)
	require.Equal(t, h1.String(), h2.String())
	require.NotEqual(t, c1, c2)
	require.False(t, h1.IsSelfAdjoint())

	_, err := mixed.NewHermitianProduct(spin, []bosons.Product{boson(t, []int{1}, []int{0})}, nil)
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)
}

func TestHamiltonianDemotion(t *testing.T) {
	h := mixed.NewMixedHamiltonian(1, 0, 1)
	key, err := mixed.NewHermitianProduct(
		[]spins.PauliProduct{spins.NewPauliProduct().Set(0, spins.X)}, nil,
		[]fermions.Product{fermion(t, []int{0}, []int{0})})
	require.NoError(t, err)
	require.True(t, key.IsSelfAdjoint())

	require.ErrorIs(t, h.Set(key, coefficient.FromComplex128(1+1i)), sum.ErrNonRealDiagonal)
	require.NoError(t, h.Set(key, coefficient.FromComplex128(1)))

	sum2, err := h.Add(h)
	require.NoError(t, err)
	require.True(t, coefficient.FromFloat(2).Equal(sum2.Get(key)))

	prod, err := h.Mul(h)
	require.NoError(t, err)
	require.NoError(t, prod.Set(key.Product(), coefficient.FromComplex128(1+1i)))

	wrong, err := mixed.NewHermitianProduct(nil, nil, []fermions.Product{fermion(t, []int{0}, []int{0})})
	require.NoError(t, err)
	require.ErrorIs(t, h.Set(wrong, coefficient.FromFloat(1)), sum.ErrMismatchedSubsystemCount)
}

func TestRemapModes(t *testing.T) {
	p := mixed.NewProduct(nil, nil, []fermions.Product{fermion(t, []int{0, 1}, nil)})
	op := mixed.NewMixedOperator(0, 0, 1)
	require.NoError(t, op.Set(p, coefficient.FromFloat(1)))

	remapped, err := op.RemapModes(map[int]int{0: 1, 1: 0})
	require.NoError(t, err)
	keys := remapped.Keys()
	require.Len(t, keys, 1)
	require.Equal(t, "Fc0c1:", keys[0].String())
	require.True(t, coefficient.FromFloat(-1).Equal(remapped.Get(keys[0])))
}

func TestOpenSystemNoise(t *testing.T) {
	sys := mixed.NewMixedLindbladOpenSystem(1, 1, 0)
	l := mixed.NewDecoherenceProduct(
		[]spins.DecoherenceProduct{spins.NewDecoherenceProduct().Set(0, spins.DecoherenceIY)},
		[]bosons.Product{boson(t, nil, []int{0})}, nil)
	require.NoError(t, sys.Noise().Set(l, l, coefficient.FromFloat(0.1)))

	id := mixed.NewDecoherenceProduct([]spins.DecoherenceProduct{{}}, []bosons.Product{{}}, nil)
	require.ErrorIs(t, sys.Noise().Set(id, id, coefficient.FromFloat(1)), sum.ErrInvalidLindbladTerms)

	conj := sys.Noise().HermitianConjugate()
	require.True(t, coefficient.FromFloat(0.1).Equal(conj.Get(l, l)))
}
