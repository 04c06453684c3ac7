// SPDX-License-Identifier: MIT

package spins

import "errors"

var (
	// ErrParse indicates a product string that does not follow the canonical form.
	ErrParse = errors.New("spins: cannot parse product")

	// ErrUnknownOperator indicates an operator symbol outside the alphabet.
	ErrUnknownOperator = errors.New("spins: unknown single-site operator")
)

// panicNegativeSite is raised by the chained setters (programmer error).
const panicNegativeSite = "spins: Set: site index must be >= 0"
