// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense and COO kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/struqture/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, complex(0, math.Inf(1))), matrix.ErrNaNInf)
}

// TestSetGet validates Set() followed by At().
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7-1i))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7-1i, v)
}

// TestCloneIndependence ensures Clone() does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 3))

	v, _ := m.At(0, 0)
	require.Equal(t, complex128(1), v)
}

func TestDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDenseMulAdjointKron(t *testing.T) {
	y := matrix.MustDenseFromRows([][]complex128{{0, -1i}, {1i, 0}})

	yy, err := matrix.Mul(y, y)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(yy, id))
	require.True(t, matrix.AllClose(y.Adjoint(), y))

	k, err := matrix.Kron(id, y)
	require.NoError(t, err)
	require.Equal(t, 4, k.Rows())
	v, _ := k.At(3, 2)
	require.Equal(t, 1i, v)
	v, _ = k.At(1, 0)
	require.Equal(t, 1i, v)
	v, _ = k.At(2, 1)
	require.Equal(t, complex128(0), v)

	_, err = matrix.Mul(y, MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStringOutput(t *testing.T) {
	m := matrix.MustDenseFromRows([][]complex128{{1, 0}, {0, -1i}})
	require.Equal(t, "[(1+0i), (0+0i)]\n[(0+0i), (0-1i)]\n", m.String())
}

func TestOptionsPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithMaxDimension(0) })
	require.Panics(t, func() { matrix.WithLogger(nil) })
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}
