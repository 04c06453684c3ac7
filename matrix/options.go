// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the generation engine and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose-style checks.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles finite-value validation in Dense.Set and Builder.Add.
	DefaultValidateNaNInf = true

	// DefaultDropZeros removes entries whose accumulated value is exactly zero
	// when a Builder is finalized.
	DefaultDropZeros = true

	// DefaultMaxDimension bounds the row count of generated matrices
	// (2^20 = a 10-site superoperator or a 20-site operator).
	DefaultMaxDimension = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid      = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxDimensionInvalid = "matrix: WithMaxDimension: max must be > 0"
	panicLoggerNil           = "matrix: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64      // >= 0; DefaultEpsilon
	validateNaNInf bool         // DefaultValidateNaNInf
	dropZeros      bool         // DefaultDropZeros
	maxDimension   int          // > 0; DefaultMaxDimension
	logger         *slog.Logger // slog.Default() unless overridden
}

// WithEpsilon sets the absolute tolerance used by comparisons.
// Panics when eps is negative or non-finite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/Inf components (default).
func WithValidateNaNInf() Option { return func(o *Options) { o.validateNaNInf = true } }

// WithNoValidateNaNInf disables finite-value validation.
func WithNoValidateNaNInf() Option { return func(o *Options) { o.validateNaNInf = false } }

// WithDropZeros controls removal of exact-zero sums at finalization.
func WithDropZeros(drop bool) Option { return func(o *Options) { o.dropZeros = drop } }

// WithMaxDimension bounds the dimension of generated matrices.
// Panics when limit <= 0.
func WithMaxDimension(limit int) Option {
	if limit <= 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *Options) { o.maxDimension = limit }
}

// WithLogger routes debug diagnostics of the engine to logger.
// Panics on a nil logger.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions resolves opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		dropZeros:      DefaultDropZeros,
		maxDimension:   DefaultMaxDimension,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf in either component.
func isNonFinite(v complex128) bool {
	re, im := real(v), imag(v)

	return math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0)
}
