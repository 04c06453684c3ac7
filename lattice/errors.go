// SPDX-License-Identifier: MIT

package lattice

import "errors"

var (
	// ErrTooFewSites indicates a size parameter below the constructor minimum.
	ErrTooFewSites = errors.New("lattice: too few sites")

	// ErrNeedRandSource indicates stochastic bond weights without an RNG.
	ErrNeedRandSource = errors.New("lattice: rng is required")
)

const (
	panicNilRand       = "lattice: WithRand(nil)"
	panicNilWeightFn   = "lattice: WithWeightFn(nil)"
	panicUniformBounds = "lattice: WithUniformDisorder: require min <= max, both finite"
	panicNormalStddev  = "lattice: WithNormalDisorder: stddev must be finite, >= 0"
)
