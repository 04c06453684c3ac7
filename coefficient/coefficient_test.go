// SPDX-License-Identifier: MIT

package coefficient_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/stretchr/testify/require"
)

func TestNewSymbolNumericText(t *testing.T) {
	require.True(t, coefficient.NewSymbol("2.5").Equal(coefficient.NewFloat(2.5)))
	require.False(t, coefficient.NewSymbol("2.5").IsSymbolic())
	require.True(t, coefficient.NewSymbol("  ").IsZero())
	require.True(t, coefficient.NewSymbol("theta").IsSymbolic())
}

func TestFloatNeutralElements(t *testing.T) {
	x := coefficient.NewSymbol("x")

	require.Equal(t, "x", coefficient.Zero.Add(x).String())
	require.Equal(t, "x", x.Add(coefficient.Zero).String())
	require.Equal(t, "x", x.Mul(coefficient.One).String())
	require.True(t, x.Mul(coefficient.Zero).IsZero())
	require.True(t, x.Sub(x).IsZero())
	require.True(t, x.Add(x.Neg()).IsZero())
	require.Equal(t, "(x + 2)", x.Add(coefficient.NewFloat(2)).String())
	require.Equal(t, "(x * y)", x.Mul(coefficient.NewSymbol("y")).String())
}

func TestFloatNegRoundTrip(t *testing.T) {
	x := coefficient.NewSymbol("(a + b)")
	require.Equal(t, "(-((a + b)))", x.Neg().String())
	require.Equal(t, "(a + b)", x.Neg().Neg().String())
	require.Equal(t, -3.0, mustFloat(t, coefficient.NewFloat(3).Neg()))

	// A user expression that merely looks negated is not unwrapped.
	y := coefficient.NewSymbol("(-g + 1)")
	require.Equal(t, "(-((-g + 1)))", y.Neg().String())
	require.Equal(t, "(-g + 1)", y.Neg().Neg().String())
}

// TestNegOfLeadingMinusEvaluates covers expressions that already start with
// a minus sign; Lua reads "--" as a comment.
func TestNegOfLeadingMinusEvaluates(t *testing.T) {
	g := coefficient.NewSymbol("-g")
	calc := coefficient.NewCalculator()
	require.NoError(t, calc.Set("g", 2))

	for _, f := range []coefficient.Float{
		g.Neg(),
		coefficient.Zero.Sub(g),
		g.Mul(coefficient.NewFloat(-1)),
	} {
		require.NotContains(t, f.String(), "--")
		got, err := calc.Float(f)
		require.NoError(t, err, f.String())
		require.Equal(t, 2.0, mustFloat(t, got), f.String())
	}
	a := coefficient.NewSymbol("a")
	require.NoError(t, calc.Set("a", 5))
	for _, f := range []coefficient.Float{a.Sub(g), a.Sub(coefficient.NewFloat(-2))} {
		require.NotContains(t, f.String(), "--")
		got, err := calc.Float(f)
		require.NoError(t, err, f.String())
		require.Equal(t, 7.0, mustFloat(t, got), f.String())
	}
	require.Equal(t, "-g", g.Neg().Neg().String())
	require.True(t, g.Add(g.Neg()).IsZero())

	conj, err := calc.Complex(coefficient.NewComplex(coefficient.One, g).Conj())
	require.NoError(t, err)
	num, err := conj.Complex128()
	require.NoError(t, err)
	require.Equal(t, 1+2i, num)
}

func TestFloatDiv(t *testing.T) {
	_, err := coefficient.NewFloat(1).Div(coefficient.Zero)
	require.ErrorIs(t, err, coefficient.ErrDivisionByZero)

	q, err := coefficient.NewFloat(1).Div(coefficient.NewFloat(4))
	require.NoError(t, err)
	require.Equal(t, 0.25, mustFloat(t, q))
}

func TestComplexArithmetic(t *testing.T) {
	a := coefficient.FromComplex128(1 + 2i)
	b := coefficient.FromComplex128(3 - 1i)

	got, err := a.Mul(b).Complex128()
	require.NoError(t, err)
	require.Equal(t, (1+2i)*(3-1i), got)

	got, err = a.Conj().Complex128()
	require.NoError(t, err)
	require.Equal(t, 1-2i, got)

	require.True(t, a.Sub(a).IsZero())
	require.True(t, coefficient.FromFloat(1).IsReal())
	require.False(t, a.IsReal())
}

func TestComplexSymbolicConjugate(t *testing.T) {
	c := coefficient.NewComplex(coefficient.NewSymbol("g"), coefficient.NewSymbol("h"))

	require.True(t, c.IsSymbolic())
	require.Equal(t, "(g + i * (-(h)))", c.Conj().String())
	require.True(t, c.Conj().Conj().Equal(c))
	require.True(t, c.Sub(c).IsZero())

	_, err := c.Complex128()
	require.ErrorIs(t, err, coefficient.ErrSymbolic)
}

func TestCalculatorEval(t *testing.T) {
	calc := coefficient.NewCalculator()
	require.NoError(t, calc.Set("theta", 0.5))
	require.NoError(t, calc.Set("g", 2))

	cases := []struct {
		expr string
		want float64
	}{
		{"theta * g", 1},
		{"g ^ 3", 8},
		{"sin(0) + cos(0)", 1},
		{"2 * pi", 2 * math.Pi},
		{"1e2 / g", 50},
	}
	for _, tc := range cases {
		got, err := calc.Eval(tc.expr)
		require.NoError(t, err, tc.expr)
		require.InDelta(t, tc.want, got, 1e-12, tc.expr)
	}
}

func TestCalculatorErrors(t *testing.T) {
	calc := coefficient.NewCalculator()

	_, err := calc.Eval("unknown + 1")
	require.ErrorIs(t, err, coefficient.ErrUnresolvedSymbol)

	_, err = calc.Eval("1 +")
	require.ErrorIs(t, err, coefficient.ErrInvalidExpression)

	require.ErrorIs(t, calc.Set("1x", 1), coefficient.ErrInvalidParameter)
	require.ErrorIs(t, calc.Set("pi", 3), coefficient.ErrInvalidParameter)
}

func TestCalculatorComplex(t *testing.T) {
	calc := coefficient.NewCalculator()
	require.NoError(t, calc.Set("a", 3))

	v := coefficient.NewComplex(coefficient.NewSymbol("a"), coefficient.NewSymbol("a * 2"))
	got, err := calc.Complex(v)
	require.NoError(t, err)

	num, err := got.Complex128()
	require.NoError(t, err)
	require.Equal(t, 3+6i, num)
	require.Equal(t, []string{"a"}, calc.Parameters())
}

func mustFloat(t *testing.T, f coefficient.Float) float64 {
	t.Helper()
	v, err := f.Float64()
	require.NoError(t, err)

	return v
}
