// SPDX-License-Identifier: MIT

package serialize

import "log/slog"

// FormatVersion is the document version written by Encode.
const FormatVersion = 1

// DefaultIndent is the YAML indentation width.
const DefaultIndent = 2

// Option configures Encode and Decode.
type Option func(*Options)

// Options holds the effective configuration.
type Options struct {
	logger *slog.Logger
	indent int
}

// WithLogger routes debug diagnostics to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithIndent sets the YAML indentation; values below 2 are raised to 2.
func WithIndent(n int) Option {
	return func(o *Options) { o.indent = max(n, DefaultIndent) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: slog.Default(), indent: DefaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
