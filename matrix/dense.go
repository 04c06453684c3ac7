// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major complex buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Mul: O(r*n*c).
package matrix

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - validateNaNInf rejects NaN/Inf components in Set when true.
type Dense struct {
	r, c           int
	data           []complex128
	validateNaNInf bool
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// Returns ErrInvalidDimensions unless rows > 0 and cols > 0.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular row slice into a new Dense.
// Ragged input returns ErrDimensionMismatch; NaN/Inf returns ErrNaNInf.
func NewDenseFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != d.c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

// MustDenseFromRows is NewDenseFromRows for package-level literals; it
// panics on malformed input (programmer error).
func MustDenseFromRows(rows [][]complex128) *Dense {
	d, err := NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}

	return d
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j). Returns ErrOutOfRange or, under the numeric
// policy, ErrNaNInf.
func (m *Dense) Set(i, j int, v complex128) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *Dense) at(i, j int) complex128 { return m.data[i*m.c+j] }

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]complex128(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// IsZero reports an all-zero matrix.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatComplex(m.data[i*m.c+j], 'g', -1, 128))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Mul returns a × b.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			aik := a.at(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				out.data[i*out.c+j] += aik * b.at(k, j)
			}
		}
	}

	return out, nil
}

// Add returns a + b.
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return nil, fmt.Errorf("Add: %w", ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Scale returns alpha * m.
func (m *Dense) Scale(alpha complex128) *Dense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out
}

// Transpose returns mᵀ.
func (m *Dense) Transpose() *Dense {
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data)), validateNaNInf: m.validateNaNInf}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Conj returns the element-wise complex conjugate.
func (m *Dense) Conj() *Dense {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = cmplx.Conj(v)
	}

	return out
}

// Adjoint returns the conjugate transpose m†.
func (m *Dense) Adjoint() *Dense { return m.Transpose().Conj() }

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	out, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, err
	}
	for ia := 0; ia < a.r; ia++ {
		for ja := 0; ja < a.c; ja++ {
			av := a.at(ia, ja)
			if av == 0 {
				continue
			}
			for ib := 0; ib < b.r; ib++ {
				for jb := 0; jb < b.c; jb++ {
					out.data[(ia*b.r+ib)*out.c+ja*b.c+jb] = av * b.at(ib, jb)
				}
			}
		}
	}

	return out, nil
}

// AllClose reports element-wise |a-b| <= eps for equal shapes.
func AllClose(a, b *Dense, opts ...Option) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := range a.data {
		if cmplx.Abs(a.data[i]-b.data[i]) > eps {
			return false
		}
	}

	return true
}
