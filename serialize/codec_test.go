// SPDX-License-Identifier: MIT

package serialize_test

import (
	"testing"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/serialize"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
	"github.com/stretchr/testify/require"
)

func TestSpinHamiltonianRoundTrip(t *testing.T) {
	h := spins.NewSpinHamiltonian()
	xx, err := spins.ParsePauliProduct("0X1X")
	require.NoError(t, err)
	z, err := spins.ParsePauliProduct("1Z")
	require.NoError(t, err)
	require.NoError(t, h.Set(xx, coefficient.Symbol("J")))
	require.NoError(t, h.Set(z, coefficient.FromFloat(0.25)))

	data, err := serialize.Encode(h)
	require.NoError(t, err)
	require.Contains(t, string(data), "kind: SpinHamiltonian")
	require.Contains(t, string(data), "re: J")

	back, err := serialize.Decode[*spins.SpinHamiltonian](data)
	require.NoError(t, err)
	require.True(t, h.Equal(back))
	require.Equal(t, []spins.PauliProduct{xx, z}, back.Keys())
}

func TestFermionHamiltonianRoundTrip(t *testing.T) {
	h := fermions.NewFermionHamiltonian(sum.WithBacking(sum.Hashed))
	hop, _, err := fermions.NewHermitianProduct([]int{0}, []int{1})
	require.NoError(t, err)
	n0, _, err := fermions.NewHermitianProduct([]int{0}, []int{0})
	require.NoError(t, err)
	require.NoError(t, h.Set(hop, coefficient.FromComplex128(1-2i)))
	require.NoError(t, h.Set(n0, coefficient.FromFloat(-0.5)))

	data, err := serialize.Encode(h, serialize.WithIndent(4))
	require.NoError(t, err)
	require.Contains(t, string(data), "backing: hashed")

	back, err := serialize.Decode[*fermions.FermionHamiltonian](data)
	require.NoError(t, err)
	require.Equal(t, sum.Hashed, back.Backing())
	require.True(t, h.Equal(back))
}

func TestBosonNoiseRoundTrip(t *testing.T) {
	n := bosons.NewBosonLindbladNoiseOperator()
	a0, err := bosons.NewProduct(nil, []int{0})
	require.NoError(t, err)
	a1, err := bosons.NewProduct(nil, []int{1})
	require.NoError(t, err)
	require.NoError(t, n.Set(a0, a1, coefficient.FromComplex128(0.5i)))

	data, err := serialize.Encode(n)
	require.NoError(t, err)

	back, err := serialize.Decode[*bosons.BosonLindbladNoiseOperator](data)
	require.NoError(t, err)
	require.True(t, n.Equal(back))
}

func TestMixedOpenSystemRoundTrip(t *testing.T) {
	sys := mixed.NewMixedLindbladOpenSystem(1, 1, 0)
	h, phase, err := mixed.ParseHermitianProduct("S0Z:Bc0a0:")
	require.NoError(t, err)
	require.Equal(t, complex128(1), phase)
	require.NoError(t, sys.System().Set(h, coefficient.Symbol("omega")))

	l, _, err := mixed.ParseDecoherenceProduct("S0Z:Ba0:")
	require.NoError(t, err)
	require.NoError(t, sys.Noise().Set(l, l, coefficient.FromFloat(0.1)))

	doc, err := serialize.Build(sys)
	require.NoError(t, err)
	require.Equal(t, serialize.Arity{Spins: 1, Bosons: 1}, doc.Arity)
	require.Len(t, doc.Terms, 1)
	require.Len(t, doc.Noise, 1)

	data, err := serialize.Encode(sys)
	require.NoError(t, err)
	back, err := serialize.Decode[*mixed.MixedLindbladOpenSystem](data)
	require.NoError(t, err)
	require.True(t, sys.Equal(back))

	generic, err := serialize.Decode[any](data)
	require.NoError(t, err)
	require.IsType(t, &mixed.MixedLindbladOpenSystem{}, generic)
}

func TestDecodeErrors(t *testing.T) {
	op := spins.NewSpinOperator()
	x, err := spins.ParsePauliProduct("0X")
	require.NoError(t, err)
	require.NoError(t, op.Set(x, coefficient.FromFloat(1)))
	data, err := serialize.Encode(op)
	require.NoError(t, err)

	_, err = serialize.Decode[*bosons.BosonOperator](data)
	require.ErrorIs(t, err, sum.ErrIncompatibleProductTypes)

	_, err = serialize.Decode[*spins.SpinOperator]([]byte("format: 7\nkind: SpinOperator\n"))
	require.ErrorIs(t, err, serialize.ErrUnsupportedFormat)

	_, err = serialize.Decode[*spins.SpinOperator]([]byte("format: [1, 2"))
	require.ErrorIs(t, err, serialize.ErrMalformedDocument)

	_, err = serialize.Decode[*spins.SpinOperator]([]byte("format: 1\nkind: SpinOperator\nextra: true\n"))
	require.ErrorIs(t, err, serialize.ErrMalformedDocument)

	_, err = serialize.Decode[*spins.SpinOperator](nil)
	require.ErrorIs(t, err, serialize.ErrMalformedDocument)

	_, err = serialize.Decode[any]([]byte("format: 1\nkind: Nope\n"))
	require.ErrorIs(t, err, sum.ErrIncompatibleProductTypes)

	bad := "format: 1\nkind: SpinHamiltonian\narity: {spins: 1, bosons: 0, fermions: 0}\n" +
		"terms:\n  - {key: 0X, re: \"1\", im: \"2\"}\n"
	_, err = serialize.Decode[*spins.SpinHamiltonian]([]byte(bad))
	require.ErrorIs(t, err, sum.ErrNonRealDiagonal)

	_, err = serialize.Encode(42)
	require.ErrorIs(t, err, sum.ErrIncompatibleProductTypes)

	require.Panics(t, func() { serialize.WithLogger(nil) })
}
