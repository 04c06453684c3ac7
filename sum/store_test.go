// SPDX-License-Identifier: MIT

package sum_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/sum"
	"github.com/stretchr/testify/require"
)

// label is a minimal Stringer key.
type label string

func (l label) String() string { return string(l) }

func TestStoreInsertionOrder(t *testing.T) {
	s := sum.NewStore[label]()
	require.Equal(t, sum.InsertionOrder, s.Backing())

	for _, k := range []label{"c", "a", "b"} {
		s.Set(k, coefficient.FromFloat(1))
	}
	require.Equal(t, []label{"c", "a", "b"}, s.Keys())

	s.Remove("a")
	s.Set("a", coefficient.FromFloat(2))
	require.Equal(t, []label{"c", "b", "a"}, s.Keys())

	// Overwriting keeps the position.
	s.Set("c", coefficient.FromFloat(5))
	require.Equal(t, []label{"c", "b", "a"}, s.Keys())
}

// TestStoreBulkRemoval removes most keys so tombstones get compacted,
// then checks that order and lookups survive.
func TestStoreBulkRemoval(t *testing.T) {
	s := sum.NewStore[label]()
	const n = 200
	for i := 0; i < n; i++ {
		s.Set(label(fmt.Sprintf("k%03d", i)), coefficient.FromFloat(float64(i)))
	}
	var want []label
	for i := 0; i < n; i++ {
		k := label(fmt.Sprintf("k%03d", i))
		if i%5 == 0 {
			want = append(want, k)
			continue
		}
		_, ok := s.Remove(k)
		require.True(t, ok)
	}
	require.Equal(t, n/5, s.Len())
	require.Equal(t, want, s.Keys())
	require.True(t, s.Get("k100").Equal(coefficient.FromFloat(100)))
	_, ok := s.Remove("k001")
	require.False(t, ok)

	s.Set("k001", coefficient.FromFloat(-1))
	s.Set("k005", coefficient.FromFloat(7))
	want = append(want, "k001")
	require.Equal(t, want, s.Keys())
	require.True(t, s.Get("k005").Equal(coefficient.FromFloat(7)))

	c := s.Clone()
	require.Equal(t, want, c.Keys())
	c.Remove("k000")
	require.Equal(t, n/5+1, s.Len())
	require.Equal(t, n/5, c.Len())
}

func TestStoreZeroRemoval(t *testing.T) {
	for _, b := range []sum.Backing{sum.InsertionOrder, sum.Hashed} {
		s := sum.NewStore[label](sum.WithBacking(b))
		v := coefficient.FromComplex128(0.5 - 1i)

		s.Add("x", v)
		require.Equal(t, 1, s.Len(), b.String())
		s.Add("x", v.Neg())
		_, ok := s.Lookup("x")
		require.False(t, ok, b.String())
		require.Equal(t, 0, s.Len(), b.String())

		s.Set("y", coefficient.FromFloat(0))
		require.Equal(t, 0, s.Len(), b.String())
	}
}

func TestStoreCloneAndEqual(t *testing.T) {
	a := sum.NewStore[label]()
	a.Set("x", coefficient.FromFloat(1))
	a.Set("y", coefficient.Symbol("g"))

	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set("x", coefficient.FromFloat(3))
	require.False(t, a.Equal(b))
	require.Equal(t, "1", a.Get("x").Re().String())

	h := sum.NewStore[label](sum.WithBacking(sum.Hashed))
	h.Set("y", coefficient.Symbol("g"))
	h.Set("x", coefficient.FromFloat(1))
	require.True(t, a.Equal(h))
}

func TestStoreIteration(t *testing.T) {
	s := sum.NewStore[label]()
	s.Set("a", coefficient.FromFloat(1))
	s.Set("b", coefficient.FromFloat(2))

	var keys []label
	for k := range s.All() {
		keys = append(keys, k)
		break
	}
	require.Equal(t, []label{"a"}, keys)
	require.Len(t, s.Values(), 2)
	require.Equal(t, "{a: (1+0i), b: (2+0i)}", s.String())
}

func TestWithBackingPanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { sum.WithBacking(sum.Backing(7)) })
}

func TestRemapIndices(t *testing.T) {
	out, err := sum.RemapIndices(map[int]int{0: 2, 2: 0}, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, out)

	_, err = sum.RemapIndices(map[int]int{0: 1}, []int{0, 1})
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)

	_, err = sum.RemapIndices(map[int]int{0: -1}, []int{0})
	require.ErrorIs(t, err, sum.ErrInvalidIndexOrder)

	// Repeated inputs (bosons) may repeat in the output.
	out, err = sum.RemapIndices(map[int]int{3: 1}, []int{3, 3})
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, out)
}

func TestArityString(t *testing.T) {
	require.Equal(t, "(2, 1, 0)", sum.Arity{Spins: 2, Bosons: 1}.String())
	require.Equal(t, sum.Arity{Fermions: 1}, sum.FermionArity)
}
