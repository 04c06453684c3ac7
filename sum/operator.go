// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/struqture/coefficient"
)

// Validator checks a key against container-specific rules (e.g. arity).
// A nil Validator accepts every key.
type Validator[K any] func(K) error

// Operator is a general (not necessarily Hermitian) sum of products.
type Operator[P Product[P]] struct {
	store *Store[P]
	arity Arity
	check Validator[P]
}

// NewOperator returns an empty Operator with the declared arity.
func NewOperator[P Product[P]](arity Arity, check Validator[P], opts ...Option) *Operator[P] {
	return &Operator[P]{store: NewStore[P](opts...), arity: arity, check: check}
}

// emptyLike returns an empty Operator with the same configuration.
func (o *Operator[P]) emptyLike() *Operator[P] {
	return &Operator[P]{store: o.store.empty(), arity: o.arity, check: o.check}
}

// Arity returns the declared subsystem counts.
func (o *Operator[P]) Arity() Arity { return o.arity }

// Backing returns the mapping backing in use.
func (o *Operator[P]) Backing() Backing { return o.store.Backing() }

// Len returns the number of terms.
func (o *Operator[P]) Len() int { return o.store.Len() }

// IsEmpty reports an operator without terms (the zero operator).
func (o *Operator[P]) IsEmpty() bool { return o.store.Len() == 0 }

// Get returns the coefficient of k, zero when absent.
func (o *Operator[P]) Get(k P) coefficient.Complex { return o.store.Get(k) }

// Lookup returns the coefficient of k and whether it is present.
func (o *Operator[P]) Lookup(k P) (coefficient.Complex, bool) { return o.store.Lookup(k) }

// Set overwrites the coefficient of k; zero removes the key.
// It validates k first and leaves the operator unchanged on failure.
func (o *Operator[P]) Set(k P, v coefficient.Complex) error {
	if o.check != nil {
		if err := o.check(k); err != nil {
			return fmt.Errorf("Set(%s): %w", k, err)
		}
	}
	o.store.Set(k, v)

	return nil
}

// Remove deletes k and returns its coefficient.
func (o *Operator[P]) Remove(k P) (coefficient.Complex, bool) { return o.store.Remove(k) }

// AddOperatorProduct adds v to the coefficient of k; a sum that reaches
// exact zero removes the key.
func (o *Operator[P]) AddOperatorProduct(k P, v coefficient.Complex) error {
	return o.Set(k, o.store.Get(k).Add(v))
}

// All iterates key/coefficient pairs in backing order.
func (o *Operator[P]) All() iter.Seq2[P, coefficient.Complex] { return o.store.All() }

// Terms returns a snapshot of all terms.
func (o *Operator[P]) Terms() []Term[P] { return o.store.Terms() }

// Keys returns a snapshot of all keys.
func (o *Operator[P]) Keys() []P { return o.store.Keys() }

// Values returns a snapshot of all coefficients.
func (o *Operator[P]) Values() []coefficient.Complex { return o.store.Values() }

// Clone returns an independent copy.
func (o *Operator[P]) Clone() *Operator[P] {
	return &Operator[P]{store: o.store.Clone(), arity: o.arity, check: o.check}
}

// Equal reports equal arity and equal terms, ignoring order.
func (o *Operator[P]) Equal(other *Operator[P]) bool {
	return o.arity == other.arity && o.store.Equal(other.store)
}

// String renders the terms.
func (o *Operator[P]) String() string { return o.store.String() }

// Add returns o + other.
func (o *Operator[P]) Add(other *Operator[P]) (*Operator[P], error) {
	return o.merge("Add", other, false)
}

// Sub returns o - other.
func (o *Operator[P]) Sub(other *Operator[P]) (*Operator[P], error) {
	return o.merge("Sub", other, true)
}

func (o *Operator[P]) merge(tag string, other *Operator[P], negate bool) (*Operator[P], error) {
	if err := checkArity(tag, o.arity, other.arity); err != nil {
		return nil, err
	}
	out := o.Clone()
	for k, v := range other.store.All() {
		if negate {
			v = v.Neg()
		}
		if err := out.AddOperatorProduct(k, v); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}

	return out, nil
}

// Scale multiplies every coefficient by c.
func (o *Operator[P]) Scale(c coefficient.Complex) *Operator[P] {
	out := o.emptyLike()
	for k, v := range o.store.All() {
		out.store.Set(k, v.Mul(c))
	}

	return out
}

// Mul returns the operator product o * other. Every pair of terms is
// expanded through the product algebra and accumulated with zero removal.
// Cost is O(len(o) * len(other)) product expansions.
func (o *Operator[P]) Mul(other *Operator[P]) (*Operator[P], error) {
	if err := checkArity("Mul", o.arity, other.arity); err != nil {
		return nil, err
	}
	out := o.emptyLike()
	for k1, v1 := range o.store.All() {
		for k2, v2 := range other.store.All() {
			v12 := v1.Mul(v2)
			for _, s := range k1.Multiply(k2) {
				if err := out.AddOperatorProduct(s.Product, v12.Scale(s.Factor)); err != nil {
					return nil, fmt.Errorf("Mul: %w", err)
				}
			}
		}
	}

	return out, nil
}

// HermitianConjugate maps every key to its conjugate and every coefficient
// to its complex conjugate (times the conjugation phase).
func (o *Operator[P]) HermitianConjugate() *Operator[P] {
	out := o.emptyLike()
	for k, v := range o.store.All() {
		q, phase := k.HermitianConjugate()
		out.store.Add(q, v.Conj().Scale(phase))
	}

	return out
}

// RemapModes relabels all indices of all terms.
func (o *Operator[P]) RemapModes(mapping map[int]int) (*Operator[P], error) {
	out := o.emptyLike()
	for k, v := range o.store.All() {
		q, phase, err := k.RemapModes(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapModes(%s): %w", k, err)
		}
		if err := out.AddOperatorProduct(q, v.Scale(phase)); err != nil {
			return nil, fmt.Errorf("RemapModes: %w", err)
		}
	}

	return out, nil
}

// Truncate drops numeric terms with |v| < threshold. Symbolic terms stay.
func (o *Operator[P]) Truncate(threshold float64) *Operator[P] {
	out := o.emptyLike()
	for k, v := range o.store.All() {
		if keepTerm(v, threshold) {
			out.store.Set(k, v)
		}
	}

	return out
}

// SubstituteParameters resolves every symbolic coefficient with calc.
func (o *Operator[P]) SubstituteParameters(calc *coefficient.Calculator) (*Operator[P], error) {
	out := o.emptyLike()
	for k, v := range o.store.All() {
		nv, err := calc.Complex(v)
		if err != nil {
			return nil, fmt.Errorf("SubstituteParameters(%s): %w", k, err)
		}
		out.store.Set(k, nv)
	}

	return out, nil
}

// keepTerm reports whether v survives truncation at threshold.
func keepTerm(v coefficient.Complex, threshold float64) bool {
	abs, ok := v.Abs()

	return !ok || abs >= threshold
}
