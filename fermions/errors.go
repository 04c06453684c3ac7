// SPDX-License-Identifier: MIT

package fermions

import "errors"

var (
	// ErrExclusionPrinciple indicates a repeated index among the creators or
	// among the annihilators of one product.
	ErrExclusionPrinciple = errors.New("fermions: exclusion principle violated")

	// ErrParse indicates a product string that does not follow "c0c1a2".
	ErrParse = errors.New("fermions: cannot parse product")
)
