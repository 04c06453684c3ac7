// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/sum"
)

// PlusMinusProduct is a tensor product over {I, σ+, σ-, Z}, e.g. "0+1-".
type PlusMinusProduct struct {
	s sites[SinglePlusMinusOperator]
}

// NewPlusMinusProduct returns the identity product.
func NewPlusMinusProduct() PlusMinusProduct { return PlusMinusProduct{} }

// ParsePlusMinusProduct reads the String form.
func ParsePlusMinusProduct(s string) (PlusMinusProduct, error) {
	out, err := parseSites(s, ParseSinglePlusMinusOperator)
	if err != nil {
		return PlusMinusProduct{}, fmt.Errorf("ParsePlusMinusProduct: %w", err)
	}

	return PlusMinusProduct{s: out}, nil
}

// Set returns a copy with op on site. Panics on a negative site.
func (p PlusMinusProduct) Set(site int, op SinglePlusMinusOperator) PlusMinusProduct {
	return PlusMinusProduct{s: p.s.with(site, op)}
}

// Get returns the operator on site.
func (p PlusMinusProduct) Get(site int) (SinglePlusMinusOperator, bool) { return p.s.get(site) }

// Sites returns the non-identity sites in ascending order.
func (p PlusMinusProduct) Sites() []int { return p.s.indices() }

// Len returns the number of non-identity sites.
func (p PlusMinusProduct) Len() int { return len(p.s) }

// IsIdentity reports the empty product.
func (p PlusMinusProduct) IsIdentity() bool { return len(p.s) == 0 }

// CurrentNumberSpins returns highest site + 1.
func (p PlusMinusProduct) CurrentNumberSpins() int { return p.s.maxSite() + 1 }

// String renders the canonical form.
func (p PlusMinusProduct) String() string { return p.s.format() }

// Equal compares canonical forms.
func (p PlusMinusProduct) Equal(o PlusMinusProduct) bool { return p.String() == o.String() }

// HermitianConjugate swaps σ+ and σ- on every site.
func (p PlusMinusProduct) HermitianConjugate() (PlusMinusProduct, complex128) {
	out := make(sites[SinglePlusMinusOperator], len(p.s))
	for n, e := range p.s {
		out[n] = siteOperator[SinglePlusMinusOperator]{site: e.site, op: e.op.HermitianConjugate()}
	}

	return PlusMinusProduct{s: out}, 1
}

// Multiply expands p * o in the plus-minus basis. The alphabet is not
// closed under multiplication (σ+σ- = (I+Z)/2), so several terms can result.
func (p PlusMinusProduct) Multiply(o PlusMinusProduct) []sum.Scaled[PlusMinusProduct] {
	acc := make(map[string]*sum.Scaled[PlusMinusProduct])
	var order []string
	for _, a := range p.ToPauli() {
		for _, b := range o.ToPauli() {
			ab := a.Product.Multiply(b.Product)[0]
			factor := a.Factor * b.Factor * ab.Factor
			for _, t := range ab.Product.ToPlusMinus() {
				key := t.Product.String()
				if cur, ok := acc[key]; ok {
					cur.Factor += factor * t.Factor
					continue
				}
				acc[key] = &sum.Scaled[PlusMinusProduct]{Product: t.Product, Factor: factor * t.Factor}
				order = append(order, key)
			}
		}
	}
	out := make([]sum.Scaled[PlusMinusProduct], 0, len(order))
	for _, key := range order {
		if acc[key].Factor != 0 {
			out = append(out, *acc[key])
		}
	}

	return out
}

// RemapModes relabels sites; the phase is always 1.
func (p PlusMinusProduct) RemapModes(mapping map[int]int) (PlusMinusProduct, complex128, error) {
	out, err := p.s.remap(mapping)
	if err != nil {
		return PlusMinusProduct{}, 0, fmt.Errorf("PlusMinusProduct.RemapModes: %w", err)
	}

	return PlusMinusProduct{s: out}, 1, nil
}

// Factors returns the per-site matrices.
func (p PlusMinusProduct) Factors() matrix.SiteFactors {
	return p.s.factors(SinglePlusMinusOperator.Matrix)
}

// ToPauli expands p in the Pauli basis.
func (p PlusMinusProduct) ToPauli() []sum.Scaled[PauliProduct] {
	terms := expand(p.s, SinglePlusMinusOperator.pauliExpansion)
	out := make([]sum.Scaled[PauliProduct], len(terms))
	for n, t := range terms {
		out[n] = sum.Scaled[PauliProduct]{Product: PauliProduct{s: t.Product}, Factor: t.Factor}
	}

	return out
}
