// SPDX-License-Identifier: MIT

package coefficient

import (
	"math"
	"strconv"
	"strings"
)

// Float is a real coefficient: an exact float64 or a symbolic expression.
// The zero value is the numeric 0.
type Float struct {
	value float64 // numeric payload; ignored when expr != ""
	expr  string  // symbolic expression; empty for numeric values
}

// Zero and One are the numeric neutral elements.
var (
	Zero = Float{}
	One  = Float{value: 1}
)

// NewFloat returns the numeric Float v.
func NewFloat(v float64) Float { return Float{value: v} }

// NewSymbol returns a symbolic Float for expr.
// Text that parses as a number yields a numeric Float, and blank text yields Zero,
// so NewSymbol("2.5") and NewFloat(2.5) compare equal.
func NewSymbol(expr string) Float {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Zero
	}
	if v, err := strconv.ParseFloat(expr, 64); err == nil {
		return Float{value: v}
	}

	return Float{expr: expr}
}

// IsSymbolic reports whether f holds an expression.
func (f Float) IsSymbolic() bool { return f.expr != "" }

// Float64 returns the numeric value or ErrSymbolic.
func (f Float) Float64() (float64, error) {
	if f.IsSymbolic() {
		return 0, ErrSymbolic
	}

	return f.value, nil
}

// Expr returns the expression text (numeric values are formatted).
func (f Float) Expr() string { return f.String() }

// String formats numeric values with the shortest exact representation.
func (f Float) String() string {
	if f.IsSymbolic() {
		return f.expr
	}

	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// IsZero reports whether f is the exact additive identity.
// Symbolic expressions are never zero; arithmetic folds recognizable
// cancellations (x - x) into the numeric zero before this check.
func (f Float) IsZero() bool { return !f.IsSymbolic() && f.value == 0 }

// IsOne reports whether f is the exact numeric 1.
func (f Float) IsOne() bool { return !f.IsSymbolic() && f.value == 1 }

// Equal compares numerically or by expression text.
func (f Float) Equal(o Float) bool {
	if f.IsSymbolic() || o.IsSymbolic() {
		return f.expr == o.expr
	}

	return f.value == o.value
}

// Abs returns |f| for numeric values and ok=false for symbolic ones.
func (f Float) Abs() (float64, bool) {
	if f.IsSymbolic() {
		return 0, false
	}

	return math.Abs(f.value), true
}

// Neg returns -f.
func (f Float) Neg() Float {
	if !f.IsSymbolic() {
		return Float{value: -f.value}
	}
	if inner, ok := unwrapNeg(f.expr); ok {
		return Float{expr: inner}
	}

	return Float{expr: "(-(" + f.expr + "))"}
}

// Add returns f + o. An expression plus its negation cancels to Zero.
func (f Float) Add(o Float) Float {
	switch {
	case !f.IsSymbolic() && !o.IsSymbolic():
		return Float{value: f.value + o.value}
	case f.IsZero():
		return o
	case o.IsZero():
		return f
	case f.expr == o.Neg().expr:
		return Zero
	}

	return Float{expr: "(" + f.String() + " + " + o.String() + ")"}
}

// Sub returns f - o. Identical expressions cancel to the numeric zero.
func (f Float) Sub(o Float) Float {
	switch {
	case !f.IsSymbolic() && !o.IsSymbolic():
		return Float{value: f.value - o.value}
	case o.IsZero():
		return f
	case f.IsZero():
		return o.Neg()
	case f.expr == o.expr:
		return Zero
	}

	rhs := o.String()
	if strings.HasPrefix(rhs, "-") {
		rhs = "(" + rhs + ")"
	}

	return Float{expr: "(" + f.String() + " - " + rhs + ")"}
}

// Mul returns f * o.
func (f Float) Mul(o Float) Float {
	switch {
	case !f.IsSymbolic() && !o.IsSymbolic():
		return Float{value: f.value * o.value}
	case f.IsZero() || o.IsZero():
		return Zero
	case f.IsOne():
		return o
	case o.IsOne():
		return f
	case !f.IsSymbolic() && f.value == -1:
		return o.Neg()
	case !o.IsSymbolic() && o.value == -1:
		return f.Neg()
	}

	return Float{expr: "(" + f.String() + " * " + o.String() + ")"}
}

// Div returns f / o. Division by the numeric zero fails.
func (f Float) Div(o Float) (Float, error) {
	if o.IsZero() {
		return Zero, ErrDivisionByZero
	}
	switch {
	case !f.IsSymbolic() && !o.IsSymbolic():
		return Float{value: f.value / o.value}, nil
	case f.IsZero():
		return Zero, nil
	case o.IsOne():
		return f, nil
	}

	return Float{expr: "(" + f.String() + " / " + o.String() + ")"}, nil
}

// unwrapNeg strips one "(-(E))" layer produced by Neg when E is balanced.
// The inner parentheses keep a leading minus of E from forming "--".
func unwrapNeg(expr string) (string, bool) {
	if !strings.HasPrefix(expr, "(-(") || !strings.HasSuffix(expr, "))") {
		return "", false
	}
	inner := expr[3 : len(expr)-2]
	depth := 0
	for _, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", false
			}
		}
	}
	if depth != 0 || inner == "" {
		return "", false
	}

	return inner, true
}
