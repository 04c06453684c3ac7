// SPDX-License-Identifier: MIT

// Package coefficient implements the numeric-or-symbolic values attached to
// every term of an operator sum.
//
// A Float is either an exact float64 or a symbolic expression string such as
// "theta * 2". A Complex pairs two Floats (real and imaginary part), so a
// value like "gamma + 0.5i" keeps its symbolic real part while conjugation
// and real-part extraction stay exact.
//
// Numeric arithmetic is evaluated immediately. Symbolic arithmetic composes
// parenthesized expression text and only simplifies the neutral cases
// (0 + x, 1 * x, 0 * x, x - x). Expressions are never parsed by the algebra;
// a Calculator evaluates them on demand with bound parameters.
//
// Errors:
//
//	ErrSymbolic          - a numeric value was required but the value is symbolic.
//	ErrUnresolvedSymbol  - an expression references a name with no binding.
//	ErrInvalidExpression - an expression could not be evaluated.
//	ErrInvalidParameter  - a parameter name is not a valid identifier.
package coefficient
