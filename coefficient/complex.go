// SPDX-License-Identifier: MIT

package coefficient

import (
	"math"
	"strconv"
)

// Complex is a coefficient with independent real and imaginary Float parts.
// The zero value is the numeric 0.
type Complex struct {
	re, im Float
}

// NewComplex builds re + i*im.
func NewComplex(re, im Float) Complex { return Complex{re: re, im: im} }

// FromComplex128 lifts a numeric complex value.
func FromComplex128(c complex128) Complex {
	return Complex{re: NewFloat(real(c)), im: NewFloat(imag(c))}
}

// FromFloat lifts a numeric real value.
func FromFloat(v float64) Complex { return Complex{re: NewFloat(v)} }

// FromReal lifts a real Float, numeric or symbolic.
func FromReal(re Float) Complex { return Complex{re: re} }

// Symbol is shorthand for FromReal(NewSymbol(expr)).
func Symbol(expr string) Complex { return Complex{re: NewSymbol(expr)} }

// Re returns the real part.
func (c Complex) Re() Float { return c.re }

// Im returns the imaginary part.
func (c Complex) Im() Float { return c.im }

// IsZero reports exact zero in both parts.
func (c Complex) IsZero() bool { return c.re.IsZero() && c.im.IsZero() }

// IsReal reports an exact-zero imaginary part.
func (c Complex) IsReal() bool { return c.im.IsZero() }

// IsSymbolic reports whether either part is symbolic.
func (c Complex) IsSymbolic() bool { return c.re.IsSymbolic() || c.im.IsSymbolic() }

// Equal compares both parts.
func (c Complex) Equal(o Complex) bool { return c.re.Equal(o.re) && c.im.Equal(o.im) }

// Complex128 returns the numeric value or ErrSymbolic.
func (c Complex) Complex128() (complex128, error) {
	re, err := c.re.Float64()
	if err != nil {
		return 0, err
	}
	im, err := c.im.Float64()
	if err != nil {
		return 0, err
	}

	return complex(re, im), nil
}

// Abs returns |c| for numeric values; ok is false when c is symbolic.
func (c Complex) Abs() (float64, bool) {
	v, err := c.Complex128()
	if err != nil {
		return 0, false
	}

	return math.Hypot(real(v), imag(v)), true
}

// Neg returns -c.
func (c Complex) Neg() Complex { return Complex{re: c.re.Neg(), im: c.im.Neg()} }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex { return Complex{re: c.re, im: c.im.Neg()} }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{re: c.re.Add(o.re), im: c.im.Add(o.im)}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{re: c.re.Sub(o.re), im: c.im.Sub(o.im)}
}

// Mul returns c * o = (ac - bd) + i(ad + bc).
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		re: c.re.Mul(o.re).Sub(c.im.Mul(o.im)),
		im: c.re.Mul(o.im).Add(c.im.Mul(o.re)),
	}
}

// MulReal returns c * f.
func (c Complex) MulReal(f Float) Complex {
	return Complex{re: c.re.Mul(f), im: c.im.Mul(f)}
}

// Scale multiplies by a numeric phase or factor.
func (c Complex) Scale(s complex128) Complex { return c.Mul(FromComplex128(s)) }

// String renders numeric values like strconv.FormatComplex and symbolic
// values as "(re + i * im)".
func (c Complex) String() string {
	if !c.IsSymbolic() {
		return strconv.FormatComplex(complex(c.re.value, c.im.value), 'g', -1, 128)
	}
	if c.im.IsZero() {
		return c.re.String()
	}

	return "(" + c.re.String() + " + i * " + c.im.String() + ")"
}
