// SPDX-License-Identifier: MIT

package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/struqture/lattice"
	"github.com/stretchr/testify/require"
)

func TestGeometries(t *testing.T) {
	tests := []struct {
		name  string
		c     lattice.Constructor
		sites int
		bonds int
	}{
		{"chain", lattice.Chain(4), 4, 3},
		{"single", lattice.Chain(1), 1, 0},
		{"ring", lattice.Ring(4), 4, 4},
		{"grid", lattice.Grid(2, 3), 6, 7},
		{"torus", lattice.Torus(3, 3), 9, 18},
		{"star", lattice.Star(5), 5, 4},
		{"complete", lattice.Complete(4), 4, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.Build(tc.c)
			require.NoError(t, err)
			require.Equal(t, tc.sites, l.Sites)
			require.Len(t, l.Bonds, tc.bonds)
			for _, b := range l.Bonds {
				require.Less(t, b.I, b.J)
				require.Equal(t, lattice.DefaultBondWeight, b.Weight)
			}
		})
	}
}

func TestRingClosingBond(t *testing.T) {
	l, err := lattice.Build(lattice.Ring(3))
	require.NoError(t, err)
	require.Equal(t, lattice.Bond{I: 0, J: 2, Weight: 1}, l.Bonds[2])
	require.Equal(t, []int{2, 2, 2}, l.Degree())
}

func TestTooFewSites(t *testing.T) {
	for _, c := range []lattice.Constructor{
		lattice.Chain(0), lattice.Ring(2), lattice.Grid(0, 3), lattice.Torus(2, 5),
		lattice.Star(1), lattice.Complete(0),
	} {
		_, err := lattice.Build(c)
		require.ErrorIs(t, err, lattice.ErrTooFewSites)
	}
}

func TestDisorder(t *testing.T) {
	_, err := lattice.Build(lattice.Chain(5), lattice.WithUniformDisorder(0.5, 1.5))
	require.ErrorIs(t, err, lattice.ErrNeedRandSource)

	a, err := lattice.Build(lattice.Chain(5), lattice.WithSeed(3), lattice.WithUniformDisorder(0.5, 1.5))
	require.NoError(t, err)
	b, err := lattice.Build(lattice.Chain(5), lattice.WithSeed(3), lattice.WithUniformDisorder(0.5, 1.5))
	require.NoError(t, err)
	require.Equal(t, a, b)
	for _, bond := range a.Bonds {
		require.GreaterOrEqual(t, bond.Weight, 0.5)
		require.LessOrEqual(t, bond.Weight, 1.5)
	}

	alt, err := lattice.Build(lattice.Chain(3), lattice.WithWeightFn(func(_ *rand.Rand) float64 { return -2 }))
	require.NoError(t, err)
	require.Equal(t, -2.0, alt.Bonds[1].Weight)

	require.Panics(t, func() { lattice.WithUniformDisorder(2, 1) })
	require.Panics(t, func() { lattice.WithNormalDisorder(0, -1) })
	require.Panics(t, func() { lattice.WithRand(nil) })
	require.Panics(t, func() { lattice.WithWeightFn(nil) })
}
