// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/struqture/coefficient"
)

// Hamiltonian is a Hermitian sum keyed by Hermitian representatives.
// A key h with coefficient v stands for v*P + conj(v)*P† (P = h.Product()),
// or v*P alone when h is self-adjoint, in which case v must be real.
type Hamiltonian[H HermitianProduct[P], P Product[P]] struct {
	store *Store[H]
	arity Arity
	check Validator[H]
	lift  Lift[H, P]
	// productCheck validates products of the demoted Operator form.
	productCheck Validator[P]
}

// NewHamiltonian returns an empty Hamiltonian.
// lift maps arbitrary products onto representatives; checks may be nil.
func NewHamiltonian[H HermitianProduct[P], P Product[P]](
	arity Arity,
	lift Lift[H, P],
	check Validator[H],
	productCheck Validator[P],
	opts ...Option,
) *Hamiltonian[H, P] {
	return &Hamiltonian[H, P]{
		store:        NewStore[H](opts...),
		arity:        arity,
		check:        check,
		lift:         lift,
		productCheck: productCheck,
	}
}

func (h *Hamiltonian[H, P]) emptyLike() *Hamiltonian[H, P] {
	return &Hamiltonian[H, P]{
		store:        h.store.empty(),
		arity:        h.arity,
		check:        h.check,
		lift:         h.lift,
		productCheck: h.productCheck,
	}
}

// Arity returns the declared subsystem counts.
func (h *Hamiltonian[H, P]) Arity() Arity { return h.arity }

// Backing returns the mapping backing in use.
func (h *Hamiltonian[H, P]) Backing() Backing { return h.store.Backing() }

// Len returns the number of stored representatives.
func (h *Hamiltonian[H, P]) Len() int { return h.store.Len() }

// IsEmpty reports the zero Hamiltonian.
func (h *Hamiltonian[H, P]) IsEmpty() bool { return h.store.Len() == 0 }

// Get returns the coefficient of k, zero when absent.
func (h *Hamiltonian[H, P]) Get(k H) coefficient.Complex { return h.store.Get(k) }

// Lookup returns the coefficient of k and whether it is present.
func (h *Hamiltonian[H, P]) Lookup(k H) (coefficient.Complex, bool) { return h.store.Lookup(k) }

// validate runs the key checks and the self-adjoint reality rule.
func (h *Hamiltonian[H, P]) validate(k H, v coefficient.Complex) error {
	if h.check != nil {
		if err := h.check(k); err != nil {
			return err
		}
	}
	if k.IsSelfAdjoint() && !v.IsReal() {
		return fmt.Errorf("%s = %s: %w", k, v, ErrNonRealDiagonal)
	}

	return nil
}

// Set overwrites the coefficient of k; zero removes the key.
func (h *Hamiltonian[H, P]) Set(k H, v coefficient.Complex) error {
	if err := h.validate(k, v); err != nil {
		return fmt.Errorf("Set: %w", err)
	}
	h.store.Set(k, v)

	return nil
}

// Remove deletes k and returns its coefficient.
func (h *Hamiltonian[H, P]) Remove(k H) (coefficient.Complex, bool) { return h.store.Remove(k) }

// AddOperatorProduct adds v to the coefficient of k with zero removal.
func (h *Hamiltonian[H, P]) AddOperatorProduct(k H, v coefficient.Complex) error {
	current := h.store.Get(k).Add(v)
	if err := h.validate(k, current); err != nil {
		return fmt.Errorf("AddOperatorProduct: %w", err)
	}
	h.store.Set(k, current)

	return nil
}

// AddProduct adds v*p + h.c. for an arbitrary product p by lifting it onto
// its representative (conjugating v when p is the non-canonical partner).
func (h *Hamiltonian[H, P]) AddProduct(p P, v coefficient.Complex) error {
	k, phase, conjugated := h.lift(p)
	if conjugated {
		v = v.Conj()
	}

	return h.AddOperatorProduct(k, v.Scale(phase))
}

// All iterates key/coefficient pairs in backing order.
func (h *Hamiltonian[H, P]) All() iter.Seq2[H, coefficient.Complex] { return h.store.All() }

// Terms returns a snapshot of all terms.
func (h *Hamiltonian[H, P]) Terms() []Term[H] { return h.store.Terms() }

// Keys returns a snapshot of all keys.
func (h *Hamiltonian[H, P]) Keys() []H { return h.store.Keys() }

// Values returns a snapshot of all coefficients.
func (h *Hamiltonian[H, P]) Values() []coefficient.Complex { return h.store.Values() }

// Clone returns an independent copy.
func (h *Hamiltonian[H, P]) Clone() *Hamiltonian[H, P] {
	out := h.emptyLike()
	out.store = h.store.Clone()

	return out
}

// Equal reports equal arity and terms.
func (h *Hamiltonian[H, P]) Equal(other *Hamiltonian[H, P]) bool {
	return h.arity == other.arity && h.store.Equal(other.store)
}

// String renders the terms.
func (h *Hamiltonian[H, P]) String() string { return h.store.String() }

// Add returns h + other; the result is still a Hamiltonian.
func (h *Hamiltonian[H, P]) Add(other *Hamiltonian[H, P]) (*Hamiltonian[H, P], error) {
	return h.merge("Add", other, false)
}

// Sub returns h - other.
func (h *Hamiltonian[H, P]) Sub(other *Hamiltonian[H, P]) (*Hamiltonian[H, P], error) {
	return h.merge("Sub", other, true)
}

func (h *Hamiltonian[H, P]) merge(tag string, other *Hamiltonian[H, P], negate bool) (*Hamiltonian[H, P], error) {
	if err := checkArity(tag, h.arity, other.arity); err != nil {
		return nil, err
	}
	out := h.Clone()
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

// ScaleReal multiplies every coefficient by the real f; Hermiticity holds.
func (h *Hamiltonian[H, P]) ScaleReal(f coefficient.Float) *Hamiltonian[H, P] {
	out := h.emptyLike()
	for k, v := range h.store.All() {
		out.store.Set(k, v.MulReal(f))
	}

	return out
}

// Scale multiplies by an arbitrary complex scalar. The Hermitian invariant
// does not survive a general scalar, so the result is a plain Operator.
func (h *Hamiltonian[H, P]) Scale(c coefficient.Complex) *Operator[P] {
	return h.ToOperator().Scale(c)
}

// Mul returns h * other as a plain Operator.
func (h *Hamiltonian[H, P]) Mul(other *Hamiltonian[H, P]) (*Operator[P], error) {
	return h.ToOperator().Mul(other.ToOperator())
}

// MulOperator returns h * other as a plain Operator.
func (h *Hamiltonian[H, P]) MulOperator(other *Operator[P]) (*Operator[P], error) {
	return h.ToOperator().Mul(other)
}

// HermitianConjugate returns a copy; a Hamiltonian is its own conjugate.
func (h *Hamiltonian[H, P]) HermitianConjugate() *Hamiltonian[H, P] { return h.Clone() }

// ToOperator expands every representative into P and P† terms.
func (h *Hamiltonian[H, P]) ToOperator() *Operator[P] {
	out := &Operator[P]{store: newStore[P](h.store.Backing()), arity: h.arity, check: h.productCheck}
	for k, v := range h.store.All() {
		p := k.Product()
		out.store.Add(p, v)
		if k.IsSelfAdjoint() {
			continue
		}
		q, phase := p.HermitianConjugate()
		out.store.Add(q, v.Conj().Scale(phase))
	}

	return out
}

// RemapModes relabels indices; terms whose representative flips are
// re-lifted onto the new canonical partner.
func (h *Hamiltonian[H, P]) RemapModes(mapping map[int]int) (*Hamiltonian[H, P], error) {
	out := h.emptyLike()
	for k, v := range h.store.All() {
		q, phase, err := k.Product().RemapModes(mapping)
		if err != nil {
			return nil, fmt.Errorf("RemapModes(%s): %w", k, err)
		}
		if err := out.AddProduct(q, v.Scale(phase)); err != nil {
			return nil, fmt.Errorf("RemapModes: %w", err)
		}
	}

	return out, nil
}

// Truncate drops numeric terms with |v| < threshold.
func (h *Hamiltonian[H, P]) Truncate(threshold float64) *Hamiltonian[H, P] {
	out := h.emptyLike()
	for k, v := range h.store.All() {
		if keepTerm(v, threshold) {
			out.store.Set(k, v)
		}
	}

	return out
}

// SubstituteParameters resolves every symbolic coefficient with calc.
func (h *Hamiltonian[H, P]) SubstituteParameters(calc *coefficient.Calculator) (*Hamiltonian[H, P], error) {
	out := h.emptyLike()
	for k, v := range h.store.All() {
		nv, err := calc.Complex(v)
		if err != nil {
			return nil, fmt.Errorf("SubstituteParameters(%s): %w", k, err)
		}
		if err := out.Set(k, nv); err != nil {
			return nil, fmt.Errorf("SubstituteParameters: %w", err)
		}
	}

	return out, nil
}

// HamiltonianFromOperator converts a Hermitian Operator into a Hamiltonian
// using the configuration of template. Every non-self-adjoint term must be
// matched by its conjugate partner with the conjugate coefficient;
// self-adjoint terms must be real.
func HamiltonianFromOperator[H HermitianProduct[P], P Product[P]](
	template *Hamiltonian[H, P],
	op *Operator[P],
) (*Hamiltonian[H, P], error) {
	if err := checkArity("HamiltonianFromOperator", template.arity, op.arity); err != nil {
		return nil, err
	}
	out := template.emptyLike()
	for p, v := range op.store.All() {
		k, phase, conjugated := template.lift(p)
		if k.IsSelfAdjoint() {
			if err := out.Set(k, v.Scale(phase)); err != nil {
				return nil, fmt.Errorf("HamiltonianFromOperator: %w", err)
			}
			continue
		}
		q, qPhase := p.HermitianConjugate()
		partner, ok := op.store.Lookup(q)
		if !ok || !partner.Equal(v.Conj().Scale(qPhase)) {
			return nil, fmt.Errorf("HamiltonianFromOperator: %s without matching %s: %w", p, q, ErrNonHermitianOperator)
		}
		if conjugated {
			continue
		}
		if err := out.Set(k, v.Scale(phase)); err != nil {
			return nil, fmt.Errorf("HamiltonianFromOperator: %w", err)
		}
	}

	return out, nil
}
