// SPDX-License-Identifier: MIT

package coefficient

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/Shopify/go-lua"
)

// luaPrelude exposes the math library under the short names expressions use.
const luaPrelude = `
sin, cos, tan = math.sin, math.cos, math.tan
asin, acos, atan = math.asin, math.acos, math.atan
exp, log, sqrt, abs = math.exp, math.log, math.sqrt, math.abs
floor, ceil = math.floor, math.ceil
pi = math.pi
`

// builtins are the names defined by luaPrelude (plus the math table itself).
var builtins = map[string]struct{}{
	"sin": {}, "cos": {}, "tan": {}, "asin": {}, "acos": {}, "atan": {},
	"exp": {}, "log": {}, "sqrt": {}, "abs": {}, "floor": {}, "ceil": {},
	"pi": {}, "math": {},
}

var (
	tokenPattern      = regexp.MustCompile(`(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?|[A-Za-z_]\w*`)
	identifierPattern = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// Calculator evaluates symbolic expressions with bound parameters.
// Expressions use Lua arithmetic syntax (+ - * / ^ and parentheses) and the
// functions sin, cos, tan, asin, acos, atan, exp, log, sqrt, abs, floor, ceil
// together with the constant pi.
//
// A Calculator is not safe for concurrent mutation; each Eval runs in a
// fresh interpreter state.
type Calculator struct {
	params map[string]float64
}

// NewCalculator returns a Calculator without bindings.
func NewCalculator() *Calculator {
	return &Calculator{params: make(map[string]float64)}
}

// Set binds name to v. Names must be identifiers and must not shadow builtins.
func (c *Calculator) Set(name string, v float64) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("Set(%q): %w", name, ErrInvalidParameter)
	}
	if _, ok := builtins[name]; ok {
		return fmt.Errorf("Set(%q): shadows builtin: %w", name, ErrInvalidParameter)
	}
	c.params[name] = v

	return nil
}

// Get returns the binding for name.
func (c *Calculator) Get(name string) (float64, bool) {
	v, ok := c.params[name]

	return v, ok
}

// Parameters returns the bound names in ascending order.
func (c *Calculator) Parameters() []string {
	names := make([]string, 0, len(c.params))
	for name := range c.params {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Eval evaluates expr to a number.
func (c *Calculator) Eval(expr string) (float64, error) {
	for _, tok := range tokenPattern.FindAllString(expr, -1) {
		if !identifierPattern.MatchString(tok) {
			continue
		}
		if _, ok := c.params[tok]; ok {
			continue
		}
		if _, ok := builtins[tok]; ok {
			continue
		}

		return 0, fmt.Errorf("Eval(%q): %q: %w", expr, tok, ErrUnresolvedSymbol)
	}

	state := lua.NewState()
	lua.OpenLibraries(state)
	if err := lua.DoString(state, luaPrelude); err != nil {
		return 0, fmt.Errorf("Eval: prelude: %w", err)
	}
	for name, v := range c.params {
		state.PushNumber(v)
		state.SetGlobal(name)
	}

	if err := lua.LoadString(state, "return "+expr); err != nil {
		return 0, fmt.Errorf("Eval(%q): %v: %w", expr, err, ErrInvalidExpression)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return 0, fmt.Errorf("Eval(%q): %v: %w", expr, err, ErrInvalidExpression)
	}
	if state.TypeOf(-1) != lua.TypeNumber {
		state.Pop(1)
		return 0, fmt.Errorf("Eval(%q): not a number: %w", expr, ErrInvalidExpression)
	}
	v, _ := state.ToNumber(-1)
	state.Pop(1)

	return v, nil
}

// Float resolves f to a numeric Float.
func (c *Calculator) Float(f Float) (Float, error) {
	if !f.IsSymbolic() {
		return f, nil
	}
	v, err := c.Eval(f.expr)
	if err != nil {
		return Zero, err
	}

	return NewFloat(v), nil
}

// Complex resolves both parts of v.
func (c *Calculator) Complex(v Complex) (Complex, error) {
	re, err := c.Float(v.re)
	if err != nil {
		return Complex{}, err
	}
	im, err := c.Float(v.im)
	if err != nil {
		return Complex{}, err
	}

	return Complex{re: re, im: im}, nil
}
