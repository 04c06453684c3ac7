// SPDX-License-Identifier: MIT

package bosons

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/struqture/internal/ladder"
	"github.com/katalvlaran/struqture/sum"
)

// Product is a normal-ordered boson product. The zero value is the identity.
type Product struct {
	creators     []int
	annihilators []int
}

// NewProduct sorts both lists ascending. Negative indices are rejected with
// sum.ErrInvalidIndexOrder. Bosons commute, so no phase arises.
func NewProduct(creators, annihilators []int) (Product, error) {
	if err := sum.ValidateIndices(creators); err != nil {
		return Product{}, fmt.Errorf("bosons.NewProduct: %w", err)
	}
	if err := sum.ValidateIndices(annihilators); err != nil {
		return Product{}, fmt.Errorf("bosons.NewProduct: %w", err)
	}

	return Product{creators: sum.SortedCopy(creators), annihilators: sum.SortedCopy(annihilators)}, nil
}

// ParseProduct reads the String form.
func ParseProduct(s string) (Product, error) {
	c, a, ok := ladder.Parse(s)
	if !ok {
		return Product{}, fmt.Errorf("bosons.ParseProduct(%q): %w", s, ErrParse)
	}

	return NewProduct(c, a)
}

// Creators returns a copy of the creator indices.
func (p Product) Creators() []int { return slices.Clone(p.creators) }

// Annihilators returns a copy of the annihilator indices.
func (p Product) Annihilators() []int { return slices.Clone(p.annihilators) }

// IsIdentity reports the empty product.
func (p Product) IsIdentity() bool { return len(p.creators) == 0 && len(p.annihilators) == 0 }

// CurrentNumberModes returns highest index + 1.
func (p Product) CurrentNumberModes() int { return ladder.MaxIndex(p.creators, p.annihilators) + 1 }

// String renders "c0c0a1".
func (p Product) String() string { return ladder.Format(p.creators, p.annihilators) }

// Equal compares canonical forms.
func (p Product) Equal(o Product) bool {
	return slices.Equal(p.creators, o.creators) && slices.Equal(p.annihilators, o.annihilators)
}

// HermitianConjugate swaps the roles; the phase is 1.
func (p Product) HermitianConjugate() (Product, complex128) {
	return Product{creators: p.annihilators, annihilators: p.creators}, 1
}

// Multiply normal-orders p * o with a_i a†_j = a†_j a_i + δ_ij.
func (p Product) Multiply(o Product) []sum.Scaled[Product] {
	acc := make(map[string]int)
	var out []sum.Scaled[Product]
	for _, t := range ladder.NormalOrder(p.annihilators, o.creators, false) {
		q := Product{
			creators:     sum.SortedCopy(append(slices.Clone(p.creators), t.Creators...)),
			annihilators: sum.SortedCopy(append(t.Annihilators, o.annihilators...)),
		}
		key := q.String()
		if n, ok := acc[key]; ok {
			out[n].Factor += t.Factor
			continue
		}
		acc[key] = len(out)
		out = append(out, sum.Scaled[Product]{Product: q, Factor: t.Factor})
	}

	return out
}

// RemapModes relabels indices; the phase is 1.
func (p Product) RemapModes(mapping map[int]int) (Product, complex128, error) {
	c, err := sum.RemapIndices(mapping, p.creators)
	if err != nil {
		return Product{}, 0, fmt.Errorf("bosons.RemapModes: %w", err)
	}
	a, err := sum.RemapIndices(mapping, p.annihilators)
	if err != nil {
		return Product{}, 0, fmt.Errorf("bosons.RemapModes: %w", err)
	}
	if err = checkInjective(mapping, p.creators, p.annihilators); err != nil {
		return Product{}, 0, fmt.Errorf("bosons.RemapModes: %w", err)
	}
	q, err := NewProduct(c, a)

	return q, 1, err
}

// checkInjective verifies the mapping across both roles at once.
func checkInjective(mapping map[int]int, lists ...[]int) error {
	var all []int
	seen := make(map[int]bool)
	for _, l := range lists {
		for _, i := range l {
			if !seen[i] {
				seen[i] = true
				all = append(all, i)
			}
		}
	}
	_, err := sum.RemapIndices(mapping, all)

	return err
}

// HermitianProduct is the representative of p and p†.
type HermitianProduct struct {
	p Product
}

// NewHermitianProduct builds a representative. The lists are sorted first;
// an orientation with creators above annihilators is rejected with
// sum.ErrInvalidIndexOrder.
func NewHermitianProduct(creators, annihilators []int) (HermitianProduct, error) {
	p, err := NewProduct(creators, annihilators)
	if err != nil {
		return HermitianProduct{}, err
	}
	if ladder.Less(p.annihilators, p.creators) {
		return HermitianProduct{}, fmt.Errorf("bosons.NewHermitianProduct(%s): %w", p, sum.ErrInvalidIndexOrder)
	}

	return HermitianProduct{p: p}, nil
}

// ParseHermitianProduct reads the String form strictly.
func ParseHermitianProduct(s string) (HermitianProduct, error) {
	c, a, ok := ladder.Parse(s)
	if !ok {
		return HermitianProduct{}, fmt.Errorf("bosons.ParseHermitianProduct(%q): %w", s, ErrParse)
	}

	return NewHermitianProduct(c, a)
}

// HermitianFrom returns the representative of p. When conjugated is false,
// p = phase * h.Product(); otherwise p† = phase * h.Product().
func HermitianFrom(p Product) (h HermitianProduct, phase complex128, conjugated bool) {
	if ladder.Less(p.annihilators, p.creators) {
		q, ph := p.HermitianConjugate()
		return HermitianProduct{p: q}, ph, true
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
