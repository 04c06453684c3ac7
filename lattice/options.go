// SPDX-License-Identifier: MIT

package lattice

import (
	"math"
	"math/rand"
)

// DefaultBondWeight is the weight of every bond on a clean lattice.
const DefaultBondWeight = 1.0

// WeightFn draws one bond weight. rng is nil for deterministic functions.
type WeightFn func(rng *rand.Rand) float64

// Option customizes Build.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	weightFn   WeightFn
	stochastic bool
}

func newConfig(opts ...Option) config {
	cfg := config{weightFn: func(*rand.Rand) float64 { return DefaultBondWeight }}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed seeds a private RNG for reproducible disorder.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return func(c *config) { c.rng = r }
}

// WithWeightFn sets a deterministic per-bond weight function; the RNG passed
// to fn is whatever WithSeed or WithRand configured, possibly nil.
// Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic(panicNilWeightFn)
	}

	return func(c *config) { c.weightFn, c.stochastic = fn, false }
}

// WithUniformDisorder draws each bond weight from U[min, max].
// Panics when min > max or either bound is not finite.
func WithUniformDisorder(min, max float64) Option {
	if !finite(min) || !finite(max) || min > max {
		panic(panicUniformBounds)
	}

	return func(c *config) {
		c.weightFn = func(r *rand.Rand) float64 { return min + (max-min)*r.Float64() }
		c.stochastic = true
	}
}

// WithNormalDisorder draws each bond weight from N(mean, stddev²).
// Panics on a negative or non-finite stddev.
func WithNormalDisorder(mean, stddev float64) Option {
	if !finite(mean) || !finite(stddev) || stddev < 0 {
		panic(panicNormalStddev)
	}

	return func(c *config) {
		c.weightFn = func(r *rand.Rand) float64 { return mean + stddev*r.NormFloat64() }
		c.stochastic = true
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
