// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/struqture/coefficient"
)

// Pair keys one entry Γ(Left, Right) of a Lindblad rate matrix.
type Pair[P fmt.Stringer] struct {
	Left  P
	Right P
}

// String renders "(left, right)".
func (p Pair[P]) String() string { return "(" + p.Left.String() + ", " + p.Right.String() + ")" }

// Noise is a Lindblad noise operator: a sum of rate-matrix entries
//
//	Σ Γ(j,k) ( L_j ρ L_k† - ½ {L_k† L_j, ρ} ).
//
// Entries are stored exactly as given; Γ(j,k) and Γ(k,j) are independent and
// no symmetrization or positivity check is performed.
type Noise[P Product[P]] struct {
	store *Store[Pair[P]]
	arity Arity
	check Validator[P]
}

// NewNoise returns an empty Noise operator.
func NewNoise[P Product[P]](arity Arity, check Validator[P], opts ...Option) *Noise[P] {
	return &Noise[P]{store: NewStore[Pair[P]](opts...), arity: arity, check: check}
}

func (n *Noise[P]) emptyLike() *Noise[P] {
	return &Noise[P]{store: n.store.empty(), arity: n.arity, check: n.check}
}

// Arity returns the declared subsystem counts.
func (n *Noise[P]) Arity() Arity { return n.arity }

// Backing returns the mapping backing in use.
func (n *Noise[P]) Backing() Backing { return n.store.Backing() }

// Len returns the number of rate entries.
func (n *Noise[P]) Len() int { return n.store.Len() }

// IsEmpty reports a noise operator without entries.
func (n *Noise[P]) IsEmpty() bool { return n.store.Len() == 0 }

// Get returns Γ(left, right), zero when absent.
func (n *Noise[P]) Get(left, right P) coefficient.Complex {
	return n.store.Get(Pair[P]{Left: left, Right: right})
}

// Lookup returns Γ(left, right) and whether it is present.
func (n *Noise[P]) Lookup(left, right P) (coefficient.Complex, bool) {
	return n.store.Lookup(Pair[P]{Left: left, Right: right})
}

func (n *Noise[P]) validate(left, right P) error {
	if left.IsIdentity() && right.IsIdentity() {
		return fmt.Errorf("(%s, %s): %w", left, right, ErrInvalidLindbladTerms)
	}
	if n.check != nil {
		if err := n.check(left); err != nil {
			return err
		}
		if err := n.check(right); err != nil {
			return err
		}
	}

	return nil
}

// Set overwrites Γ(left, right); zero removes the entry.
func (n *Noise[P]) Set(left, right P, v coefficient.Complex) error {
	if err := n.validate(left, right); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	n.store.Set(Pair[P]{Left: left, Right: right}, v)

	return nil
}

// Remove deletes Γ(left, right).
func (n *Noise[P]) Remove(left, right P) (coefficient.Complex, bool) {
	return n.store.Remove(Pair[P]{Left: left, Right: right})
}

// AddOperatorProduct adds v to Γ(left, right) with zero removal.
func (n *Noise[P]) AddOperatorProduct(left, right P, v coefficient.Complex) error {
	return n.Set(left, right, n.Get(left, right).Add(v))
}

// All iterates entries in backing order.
func (n *Noise[P]) All() iter.Seq2[Pair[P], coefficient.Complex] { return n.store.All() }

// Terms returns a snapshot of all entries.
func (n *Noise[P]) Terms() []Term[Pair[P]] { return n.store.Terms() }

// Keys returns a snapshot of all pair keys.
func (n *Noise[P]) Keys() []Pair[P] { return n.store.Keys() }

// Values returns a snapshot of all rates.
func (n *Noise[P]) Values() []coefficient.Complex { return n.store.Values() }

// Clone returns an independent copy.
func (n *Noise[P]) Clone() *Noise[P] {
	return &Noise[P]{store: n.store.Clone(), arity: n.arity, check: n.check}
}

// Equal reports equal arity and entries.
func (n *Noise[P]) Equal(other *Noise[P]) bool {
	return n.arity == other.arity && n.store.Equal(other.store)
}

// String renders the entries.
func (n *Noise[P]) String() string { return n.store.String() }

// Add returns n + other.
func (n *Noise[P]) Add(other *Noise[P]) (*Noise[P], error) { return n.merge("Add", other, false) }

// Sub returns n - other.
func (n *Noise[P]) Sub(other *Noise[P]) (*Noise[P], error) { return n.merge("Sub", other, true) }

func (n *Noise[P]) merge(tag string, other *Noise[P], negate bool) (*Noise[P], error) {
	if err := checkArity(tag, n.arity, other.arity); err != nil {
		return nil, err
	}
	out := n.Clone()
	for k, v := range other.store.All() {
		if negate {
			v = v.Neg()
		}
		if err := out.AddOperatorProduct(k.Left, k.Right, v); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
	}

	return out, nil
}

// Scale multiplies every rate by c.
func (n *Noise[P]) Scale(c coefficient.Complex) *Noise[P] {
	out := n.emptyLike()
	for k, v := range n.store.All() {
		out.store.Set(k, v.Mul(c))
	}

	return out
}

// HermitianConjugate returns the adjoint rate matrix Γ'(k, j) = conj(Γ(j, k)).
func (n *Noise[P]) HermitianConjugate() *Noise[P] {
	out := n.emptyLike()
	for k, v := range n.store.All() {
		out.store.Add(Pair[P]{Left: k.Right, Right: k.Left}, v.Conj())
	}

	return out
}

// RemapModes relabels both operators of every entry. With
// L_j = a * L'_j and L_k = b * L'_k the rate becomes Γ * a * conj(b).
func (n *Noise[P]) RemapModes(mapping map[int]int) (*Noise[P], error) {
	out := n.emptyLike()
	for k, v := range n.store.All() {
		left, a, err := k.Left.RemapModes(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapModes(%s): %w", k, err)
		}
		right, b, err := k.Right.RemapModes(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapModes(%s): %w", k, err)
		}
		phase := a * complex(real(b), -imag(b))
		if err := out.AddOperatorProduct(left, right, v.Scale(phase)); err != nil {
			return nil, fmt.Errorf("RemapModes: %w", err)
		}
	}

	return out, nil
}

// AddExpanded adds rate * Σ_p Σ_q a_p conj(b_q) Γ(P_p, Q_q) for
// left = Σ a_p P_p and right = Σ b_q Q_q. Identity-identity pairs are
// skipped since they contribute nothing to the dissipator.
// Used to carry noise through basis changes such as Jordan–Wigner.
func (n *Noise[P]) AddExpanded(left, right []Term[P], rate coefficient.Complex) error {
	staged := n.Clone()
	for _, l := range left {
		for _, r := range right {
			if l.Key.IsIdentity() && r.Key.IsIdentity() {
				continue
			}
			v := rate.Mul(l.Value).Mul(r.Value.Conj())
			if err := staged.AddOperatorProduct(l.Key, r.Key, v); err != nil {
				return fmt.Errorf("AddExpanded: %w", err)
			}
		}
	}
	n.store = staged.store

	return nil
}

// Truncate drops numeric entries with |v| < threshold.
func (n *Noise[P]) Truncate(threshold float64) *Noise[P] {
	out := n.emptyLike()
	for k, v := range n.store.All() {
		if keepTerm(v, threshold) {
			out.store.Set(k, v)
		}
	}

	return out
}

// SubstituteParameters resolves every symbolic rate with calc.
func (n *Noise[P]) SubstituteParameters(calc *coefficient.Calculator) (*Noise[P], error) {
	out := n.emptyLike()
	for k, v := range n.store.All() {
		nv, err := calc.Complex(v)
		if err != nil {
			return nil, fmt.Errorf("SubstituteParameters(%s): %w", k, err)
		}
		out.store.Set(k, nv)
	}

	return out, nil
}
