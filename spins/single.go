// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/matrix"
)

// SingleSpinOperator is one Pauli matrix.
type SingleSpinOperator uint8

const (
	Identity SingleSpinOperator = iota
	X
	Y
	Z
)

var spinSymbols = [...]string{"I", "X", "Y", "Z"}

// String returns "I", "X", "Y" or "Z".
func (s SingleSpinOperator) String() string {
	if int(s) < len(spinSymbols) {
		return spinSymbols[s]
	}

	return fmt.Sprintf("SingleSpinOperator(%d)", uint8(s))
}

// ParseSingleSpinOperator is the inverse of String.
func ParseSingleSpinOperator(s string) (SingleSpinOperator, error) {
	for n, sym := range spinSymbols {
		if sym == s {
			return SingleSpinOperator(n), nil
		}
	}

	return Identity, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
}

// Multiply returns (c, phase) with s * o = phase * c.
//
//	XY = iZ, YZ = iX, ZX = iY and the reversed orders pick up -i.
func (s SingleSpinOperator) Multiply(o SingleSpinOperator) (SingleSpinOperator, complex128) {
	switch {
	case s == Identity:
		return o, 1
	case o == Identity:
		return s, 1
	case s == o:
		return Identity, 1
	}
	c := SingleSpinOperator(6 - int(s) - int(o))
	if (int(o)-int(s)+3)%3 == 1 {
		return c, 1i
	}

	return c, -1i
}

// HermitianConjugate returns (s, 1); every Pauli matrix is Hermitian.
func (s SingleSpinOperator) HermitianConjugate() (SingleSpinOperator, complex128) {
	return s, 1
}

// Matrix returns the 2×2 representation.
func (s SingleSpinOperator) Matrix() *matrix.Dense {
	switch s {
	case X:
		return matrix.MustDenseFromRows([][]complex128{{0, 1}, {1, 0}})
	case Y:
		return matrix.MustDenseFromRows([][]complex128{{0, -1i}, {1i, 0}})
	case Z:
		return matrix.MustDenseFromRows([][]complex128{{1, 0}, {0, -1}})
	default:
		return matrix.MustDenseFromRows([][]complex128{{1, 0}, {0, 1}})
	}
}

// SingleDecoherenceOperator is one element of the real noise basis
// {I, X, iY, Z}; iY = [[0, 1], [-1, 0]].
type SingleDecoherenceOperator uint8

const (
	DecoherenceIdentity SingleDecoherenceOperator = iota
	DecoherenceX
	DecoherenceIY
	DecoherenceZ
)

var decoherenceSymbols = [...]string{"I", "X", "iY", "Z"}

// String returns "I", "X", "iY" or "Z".
func (d SingleDecoherenceOperator) String() string {
	if int(d) < len(decoherenceSymbols) {
		return decoherenceSymbols[d]
	}

	return fmt.Sprintf("SingleDecoherenceOperator(%d)", uint8(d))
}

// ParseSingleDecoherenceOperator is the inverse of String.
func ParseSingleDecoherenceOperator(s string) (SingleDecoherenceOperator, error) {
	for n, sym := range decoherenceSymbols {
		if sym == s {
			return SingleDecoherenceOperator(n), nil
		}
	}

	return DecoherenceIdentity, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
}

// pauli returns (P, f) with d = f * P.
func (d SingleDecoherenceOperator) pauli() (SingleSpinOperator, complex128) {
	if d == DecoherenceIY {
		return Y, 1i
	}

	return SingleSpinOperator(d), 1
}

// decoherenceOf returns (D, f) with p = f * D.
func decoherenceOf(p SingleSpinOperator) (SingleDecoherenceOperator, complex128) {
	if p == Y {
		return DecoherenceIY, -1i
	}

	return SingleDecoherenceOperator(p), 1
}

// Multiply returns (c, phase) with d * o = phase * c. Phases are real.
func (d SingleDecoherenceOperator) Multiply(o SingleDecoherenceOperator) (SingleDecoherenceOperator, complex128) {
	a, fa := d.pauli()
	b, fb := o.pauli()
	c, ph := a.Multiply(b)
	out, fc := decoherenceOf(c)

	return out, fa * fb * ph * fc
}

// HermitianConjugate returns (d, phase) with d† = phase * d; only iY flips sign.
func (d SingleDecoherenceOperator) HermitianConjugate() (SingleDecoherenceOperator, complex128) {
	if d == DecoherenceIY {
		return d, -1
	}

	return d, 1
}

// Matrix returns the 2×2 representation.
func (d SingleDecoherenceOperator) Matrix() *matrix.Dense {
	if d == DecoherenceIY {
		return matrix.MustDenseFromRows([][]complex128{{0, 1}, {-1, 0}})
	}

	return SingleSpinOperator(d).Matrix()
}

// SinglePlusMinusOperator is one of I, σ+, σ-, Z with σ± = (X ± iY)/2.
type SinglePlusMinusOperator uint8

const (
	PlusMinusIdentity SinglePlusMinusOperator = iota
	Plus
	Minus
	PlusMinusZ
)

var plusMinusSymbols = [...]string{"I", "+", "-", "Z"}

// String returns "I", "+", "-" or "Z".
func (s SinglePlusMinusOperator) String() string {
	if int(s) < len(plusMinusSymbols) {
		return plusMinusSymbols[s]
	}

	return fmt.Sprintf("SinglePlusMinusOperator(%d)", uint8(s))
}

// ParseSinglePlusMinusOperator is the inverse of String.
func ParseSinglePlusMinusOperator(s string) (SinglePlusMinusOperator, error) {
	for n, sym := range plusMinusSymbols {
		if sym == s {
			return SinglePlusMinusOperator(n), nil
		}
	}

	return PlusMinusIdentity, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
}

// HermitianConjugate swaps σ+ and σ-.
func (s SinglePlusMinusOperator) HermitianConjugate() SinglePlusMinusOperator {
	switch s {
	case Plus:
		return Minus
	case Minus:
		return Plus
	default:
		return s
	}
}

// Matrix returns the 2×2 representation.
func (s SinglePlusMinusOperator) Matrix() *matrix.Dense {
	switch s {
	case Plus:
		return matrix.MustDenseFromRows([][]complex128{{0, 1}, {0, 0}})
	case Minus:
		return matrix.MustDenseFromRows([][]complex128{{0, 0}, {1, 0}})
	case PlusMinusZ:
		return Z.Matrix()
	default:
		return Identity.Matrix()
	}
}

// weighted is one term of a single-site basis change.
type weighted[T any] struct {
	op     T
	factor complex128
}

// pauliExpansion writes s in the Pauli basis: σ± = ½X ± (i/2)Y.
func (s SinglePlusMinusOperator) pauliExpansion() []weighted[SingleSpinOperator] {
	switch s {
	case Plus:
		return []weighted[SingleSpinOperator]{{X, 0.5}, {Y, 0.5i}}
	case Minus:
		return []weighted[SingleSpinOperator]{{X, 0.5}, {Y, -0.5i}}
	case PlusMinusZ:
		return []weighted[SingleSpinOperator]{{Z, 1}}
	default:
		return []weighted[SingleSpinOperator]{{Identity, 1}}
	}
}

// plusMinusExpansion writes p in the plus-minus basis: X = σ+ + σ-,
// Y = -iσ+ + iσ-.
func plusMinusExpansion(p SingleSpinOperator) []weighted[SinglePlusMinusOperator] {
	switch p {
	case X:
		return []weighted[SinglePlusMinusOperator]{{Plus, 1}, {Minus, 1}}
	case Y:
		return []weighted[SinglePlusMinusOperator]{{Plus, -1i}, {Minus, 1i}}
	case Z:
		return []weighted[SinglePlusMinusOperator]{{PlusMinusZ, 1}}
	default:
		return []weighted[SinglePlusMinusOperator]{{PlusMinusIdentity, 1}}
	}
}
