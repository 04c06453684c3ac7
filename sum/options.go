// SPDX-License-Identifier: MIT

package sum

// Backing selects the mapping implementation behind a container.
type Backing int

const (
	// InsertionOrder iterates terms in first-insertion order. Removing and
	// re-inserting a key moves it to the end.
	InsertionOrder Backing = iota

	// Hashed iterates terms in unspecified order.
	Hashed
)

// DefaultBacking is the backing used when no option is given.
const DefaultBacking = InsertionOrder

const panicBackingInvalid = "sum: WithBacking: unknown backing"

// String names the backing.
func (b Backing) String() string {
	switch b {
	case InsertionOrder:
		return "insertion-order"
	case Hashed:
		return "hashed"
	default:
		return "unknown"
	}
}

// Option configures a container at construction.
type Option func(*Options)

// Options holds the resolved container configuration.
type Options struct {
	backing Backing
}

// WithBacking selects the mapping backing. Panics on an unknown value.
func WithBacking(b Backing) Option {
	if b != InsertionOrder && b != Hashed {
		panic(panicBackingInvalid)
	}

	return func(o *Options) { o.backing = b }
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{backing: DefaultBacking}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
