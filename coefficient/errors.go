// SPDX-License-Identifier: MIT

package coefficient

import "errors"

var (
	// ErrSymbolic is returned when a numeric value is required but the
	// coefficient still holds a symbolic expression.
	ErrSymbolic = errors.New("coefficient: value is symbolic")

	// ErrUnresolvedSymbol indicates an expression references a name that is
	// neither a bound parameter nor a known function or constant.
	ErrUnresolvedSymbol = errors.New("coefficient: unresolved symbol")

	// ErrInvalidExpression indicates the expression failed to evaluate to a number.
	ErrInvalidExpression = errors.New("coefficient: invalid expression")

	// ErrInvalidParameter indicates an unusable parameter name.
	ErrInvalidParameter = errors.New("coefficient: invalid parameter name")

	// ErrDivisionByZero indicates a numeric division by exact zero.
	ErrDivisionByZero = errors.New("coefficient: division by zero")
)
