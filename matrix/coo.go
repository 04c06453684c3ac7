// SPDX-License-Identifier: MIT

// Package matrix - COO sparse storage and the accumulating Builder.
//
// Purpose:
//   - COO is an immutable list of (row, col, value) triples, sorted row-major
//     and free of duplicates once produced by a Builder.
//   - Builder sums every contribution to the same (row, col): generation
//     kernels add term by term and never overwrite.
//
// Notes:
//   - Triple order is deterministic (row, then col) but is not a contract;
//     compare sparse results through ToDense/EqualCOO instead.
package matrix

import (
	"fmt"
	"math/cmplx"
	"sort"
)

// Entry is one stored triple.
type Entry struct {
	Row   int
	Col   int
	Value complex128
}

// COO is a coordinate-format sparse matrix.
type COO struct {
	r, c    int
	entries []Entry
}

// Rows returns the number of rows.
func (m *COO) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *COO) Cols() int { return m.c }

// NNZ returns the number of stored entries.
func (m *COO) NNZ() int { return len(m.entries) }

// Entries returns a copy of the stored triples.
func (m *COO) Entries() []Entry { return append([]Entry(nil), m.entries...) }

// Triples returns the rows, cols and values as parallel slices.
func (m *COO) Triples() (rows, cols []int, values []complex128) {
	rows = make([]int, len(m.entries))
	cols = make([]int, len(m.entries))
	values = make([]complex128, len(m.entries))
	for n, e := range m.entries {
		rows[n], cols[n], values[n] = e.Row, e.Col, e.Value
	}

	return rows, cols, values
}

// At returns the value at (i, j); absent entries are zero.
func (m *COO) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("COO.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	n := sort.Search(len(m.entries), func(n int) bool {
		e := m.entries[n]
		return e.Row > i || (e.Row == i && e.Col >= j)
	})
	if n < len(m.entries) && m.entries[n].Row == i && m.entries[n].Col == j {
		return m.entries[n].Value, nil
	}

	return 0, nil
}

// ToDense materializes the matrix. Intended for small dimensions and tests.
func (m *COO) ToDense() (*Dense, error) {
	d, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for _, e := range m.entries {
		d.data[e.Row*d.c+e.Col] += e.Value
	}

	return d, nil
}

// EqualCOO reports dense equivalence of a and b within eps (WithEpsilon),
// independent of triple order.
func EqualCOO(a, b *COO, opts ...Option) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	diff := make(map[[2]int]complex128, len(a.entries)+len(b.entries))
	for _, e := range a.entries {
		diff[[2]int{e.Row, e.Col}] += e.Value
	}
	for _, e := range b.entries {
		diff[[2]int{e.Row, e.Col}] -= e.Value
	}
	for _, v := range diff {
		if cmplx.Abs(v) > eps {
			return false
		}
	}

	return true
}

// ---------- Builder ----------

// Builder accumulates contributions into an r×c sparse matrix.
type Builder struct {
	r, c int
	acc  map[[2]int]complex128
	opts Options
}

// NewBuilder returns a Builder for an r×c matrix.
func NewBuilder(rows, cols int, opts ...Option) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Builder{r: rows, c: cols, acc: make(map[[2]int]complex128), opts: gatherOptions(opts...)}, nil
}

// Add sums v into (i, j).
func (b *Builder) Add(i, j int, v complex128) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if b.opts.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("Builder.Add(%d,%d): %w", i, j, ErrNaNInf)
	}
	if v == 0 {
		return nil
	}
	b.acc[[2]int{i, j}] += v

	return nil
}

// AddCOO sums alpha * m into the builder; shapes must match.
func (b *Builder) AddCOO(m *COO, alpha complex128) error {
	if m.r != b.r || m.c != b.c {
		return fmt.Errorf("Builder.AddCOO: %dx%d into %dx%d: %w", m.r, m.c, b.r, b.c, ErrDimensionMismatch)
	}
	for _, e := range m.entries {
		if err := b.Add(e.Row, e.Col, alpha*e.Value); err != nil {
			return err
		}
	}

	return nil
}

// Finalize returns the accumulated matrix sorted row-major. Exact-zero sums
// are dropped under the default policy. The Builder stays usable.
func (b *Builder) Finalize() *COO {
	entries := make([]Entry, 0, len(b.acc))
	for k, v := range b.acc {
		if v == 0 && b.opts.dropZeros {
			continue
		}
		entries = append(entries, Entry{Row: k[0], Col: k[1], Value: v})
	}
	sortEntries(entries)

	return &COO{r: b.r, c: b.c, entries: entries}
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(x, y int) bool {
		if entries[x].Row != entries[y].Row {
			return entries[x].Row < entries[y].Row
		}
		return entries[x].Col < entries[y].Col
	})
}

// ---------- Sparse kernels ----------

// IdentityCOO returns the n×n identity.
func IdentityCOO(n int) (*COO, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Row: i, Col: i, Value: 1}
	}

	return &COO{r: n, c: n, entries: entries}, nil
}

// DenseToCOO converts d, skipping zeros.
func DenseToCOO(d *Dense) *COO {
	out := &COO{r: d.r, c: d.c}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if v := d.at(i, j); v != 0 {
				out.entries = append(out.entries, Entry{Row: i, Col: j, Value: v})
			}
		}
	}

	return out
}

// KronCOO returns a ⊗ b with (A⊗B)[ia*rb+ib, ja*cb+jb] = A[ia,ja]·B[ib,jb].
// Complexity: O(nnz(a)·nnz(b)).
func KronCOO(a, b *COO) *COO {
	out := &COO{r: a.r * b.r, c: a.c * b.c, entries: make([]Entry, 0, len(a.entries)*len(b.entries))}
	for _, ea := range a.entries {
		for _, eb := range b.entries {
			out.entries = append(out.entries, Entry{
				Row:   ea.Row*b.r + eb.Row,
				Col:   ea.Col*b.c + eb.Col,
				Value: ea.Value * eb.Value,
			})
		}
	}
	sortEntries(out.entries)

	return out
}

// MulCOO returns a × b.
func MulCOO(a, b *COO) (*COO, error) {
	if a.c != b.r {
		return nil, fmt.Errorf("MulCOO: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	byRow := make(map[int][]Entry, len(b.entries))
	for _, e := range b.entries {
		byRow[e.Row] = append(byRow[e.Row], e)
	}
	acc := make(map[[2]int]complex128)
	for _, ea := range a.entries {
		for _, eb := range byRow[ea.Col] {
			acc[[2]int{ea.Row, eb.Col}] += ea.Value * eb.Value
		}
	}
	out := &COO{r: a.r, c: b.c, entries: make([]Entry, 0, len(acc))}
	for k, v := range acc {
		if v != 0 {
			out.entries = append(out.entries, Entry{Row: k[0], Col: k[1], Value: v})
		}
	}
	sortEntries(out.entries)

	return out, nil
}

// Scale returns alpha * m.
func (m *COO) Scale(alpha complex128) *COO {
	out := &COO{r: m.r, c: m.c, entries: m.Entries()}
	for n := range out.entries {
		out.entries[n].Value *= alpha
	}

	return out
}

// Transpose returns mᵀ.
func (m *COO) Transpose() *COO {
	out := &COO{r: m.c, c: m.r, entries: make([]Entry, len(m.entries))}
	for n, e := range m.entries {
		out.entries[n] = Entry{Row: e.Col, Col: e.Row, Value: e.Value}
	}
	sortEntries(out.entries)

	return out
}

// Conj returns the element-wise conjugate.
func (m *COO) Conj() *COO {
	out := &COO{r: m.r, c: m.c, entries: m.Entries()}
	for n := range out.entries {
		out.entries[n].Value = cmplx.Conj(out.entries[n].Value)
	}

	return out
}

// Adjoint returns m†.
func (m *COO) Adjoint() *COO { return m.Transpose().Conj() }
