// SPDX-License-Identifier: MIT

package fermions

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/struqture/internal/ladder"
	"github.com/katalvlaran/struqture/sum"
)

// Product is a normal-ordered fermion product. The zero value is the identity.
type Product struct {
	creators     []int
	annihilators []int
}

// NewProduct canonicalizes both roles and returns (p, phase) with
// c†_creators c_annihilators = phase * p. Duplicates within a role fail with
// ErrExclusionPrinciple before any phase is computed; negative indices fail
// with sum.ErrInvalidIndexOrder.
func NewProduct(creators, annihilators []int) (Product, complex128, error) {
	for _, l := range [][]int{creators, annihilators} {
		if err := sum.ValidateIndices(l); err != nil {
			return Product{}, 0, fmt.Errorf("fermions.NewProduct: %w", err)
		}
		if hasDuplicate(l) {
			return Product{}, 0, fmt.Errorf("fermions.NewProduct(%v): %w", l, ErrExclusionPrinciple)
		}
	}
	c, sc := sortWithSign(creators)
	a, sa := sortWithSign(annihilators)

	return Product{creators: c, annihilators: a}, sc * sa, nil
}

// ParseProduct reads the String form. Out-of-order input is accepted and
// the reordering sign is returned.
func ParseProduct(s string) (Product, complex128, error) {
	c, a, ok := ladder.Parse(s)
	if !ok {
		return Product{}, 0, fmt.Errorf("fermions.ParseProduct(%q): %w", s, ErrParse)
	}

	return NewProduct(c, a)
}

func hasDuplicate(l []int) bool {
	seen := make(map[int]bool, len(l))
	for _, i := range l {
		if seen[i] {
			return true
		}
		seen[i] = true
	}

	return false
}

// sortWithSign insertion-sorts a copy of l and returns (-1)^swaps.
func sortWithSign(l []int) ([]int, complex128) {
	out := slices.Clone(l)
	sign := complex128(1)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
			sign = -sign
		}
	}

	return out, sign
}

// reverseSign is (-1)^{n(n-1)/2}, the sign of reversing n distinct operators.
func reverseSign(n int) complex128 {
	if (n*(n-1)/2)%2 == 1 {
		return -1
	}

	return 1
}

// Creators returns a copy of the creator indices.
func (p Product) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilator indices.
func (p Product) Annihilators() []int { return slices.Clone(p.annihilators) }

// IsIdentity reports the empty product.
func (p Product) IsIdentity() bool { return len(p.creators) == 0 && len(p.annihilators) == 0 }

// CurrentNumberModes returns highest index + 1.
func (p Product) CurrentNumberModes() int { return ladder.MaxIndex(p.creators, p.annihilators) + 1 }

// String renders "c0c1a0".
func (p Product) String() string { return ladder.Format(p.creators, p.annihilators) }

// Equal compares canonical forms.
func (p Product) Equal(o Product) bool {
	return slices.Equal(p.creators, o.creators) && slices.Equal(p.annihilators, o.annihilators)
}

// HermitianConjugate returns (q, sign) with p† = sign * q and
// sign = (-1)^{n(n-1)/2 + m(m-1)/2}.
func (p Product) HermitianConjugate() (Product, complex128) {
	q := Product{creators: p.annihilators, annihilators: p.creators}

	return q, reverseSign(len(p.creators)) * reverseSign(len(p.annihilators))
}

// Multiply normal-orders p * o with c_i c†_j = -c†_j c_i + δ_ij. Terms with
// a repeated index in one role vanish and are omitted.
func (p Product) Multiply(o Product) []sum.Scaled[Product] {
	acc := make(map[string]int)
	var out []sum.Scaled[Product]
	for _, t := range ladder.NormalOrder(p.annihilators, o.creators, true) {
		c := append(slices.Clone(p.creators), t.Creators...)
		a := append(t.Annihilators, o.annihilators...)
		if hasDuplicate(c) || hasDuplicate(a) {
			continue
		}
		cs, sc := sortWithSign(c)
		as, sa := sortWithSign(a)
		q := Product{creators: cs, annihilators: as}
		f := t.Factor * sc * sa
		key := q.String()
		if n, ok := acc[key]; ok {
			out[n].Factor += f
			continue
		}
		acc[key] = len(out)
		out = append(out, sum.Scaled[Product]{Product: q, Factor: f})
	}

	return slices.DeleteFunc(out, func(s sum.Scaled[Product]) bool { return s.Factor == 0 })
}

// RemapModes relabels indices, re-sorts each role and returns the sign of
// the reordering.
func (p Product) RemapModes(mapping map[int]int) (Product, complex128, error) {
	all := append(slices.Clone(p.creators), p.annihilators...)
	if _, err := sum.RemapIndices(mapping, dedupe(all)); err != nil {
		return Product{}, 0, fmt.Errorf("fermions.RemapModes: %w", err)
	}
	c, _ := sum.RemapIndices(mapping, p.creators)
	a, _ := sum.RemapIndices(mapping, p.annihilators)

	return NewProduct(c, a)
}

func dedupe(l []int) []int {
	seen := make(map[int]bool, len(l))
	out := l[:0:0]
	for _, i := range l {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}

	return out
}

// HermitianProduct is the representative of p and p†.
type HermitianProduct struct {
	p Product
}

// NewHermitianProduct canonicalizes like NewProduct and rejects an
// orientation with creators above annihilators (by length, then
// lexicographically) with sum.ErrInvalidIndexOrder.
func NewHermitianProduct(creators, annihilators []int) (HermitianProduct, complex128, error) {
	p, phase, err := NewProduct(creators, annihilators)
	if err != nil {
		return HermitianProduct{}, 0, err
	}
	if ladder.Less(p.annihilators, p.creators) {
		return HermitianProduct{}, 0, fmt.Errorf("fermions.NewHermitianProduct(%s): %w", p, sum.ErrInvalidIndexOrder)
	}

	return HermitianProduct{p: p}, phase, nil
}

// ParseHermitianProduct reads the String form strictly.
func ParseHermitianProduct(s string) (HermitianProduct, complex128, error) {
	c, a, ok := ladder.Parse(s)
	if !ok {
		return HermitianProduct{}, 0, fmt.Errorf("fermions.ParseHermitianProduct(%q): %w", s, ErrParse)
	}

	return NewHermitianProduct(c, a)
}

// HermitianFrom returns the representative of p. When conjugated is false,
// p = phase * h.Product(); otherwise p† = phase * h.Product().
func HermitianFrom(p Product) (h HermitianProduct, phase complex128, conjugated bool) {
	if ladder.Less(p.annihilators, p.creators) {
		q, sign := p.HermitianConjugate()
		return HermitianProduct{p: q}, sign, true
	}

	return HermitianProduct{p: p}, 1, false
}

// Product returns the stored orientation.
func (h HermitianProduct) Product() Product { return h.p }

// IsSelfAdjoint reports P == P†.
func (h HermitianProduct) IsSelfAdjoint() bool { return slices.Equal(h.p.creators, h.p.annihilators) }

// String renders the stored orientation.
func (h HermitianProduct) String() string { return h.p.String() }

// CurrentNumberModes returns highest index + 1.
func (h HermitianProduct) CurrentNumberModes() int { return h.p.CurrentNumberModes() }
