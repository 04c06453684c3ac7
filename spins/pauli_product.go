// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/sum"
)

// PauliProduct is a tensor product of Pauli matrices, e.g. "0X2Z".
// The zero value is the identity. Every PauliProduct is self-adjoint and
// therefore its own Hermitian representative.
type PauliProduct struct {
	s sites[SingleSpinOperator]
}

// NewPauliProduct returns the identity product.
func NewPauliProduct() PauliProduct { return PauliProduct{} }

// PauliProductFrom builds a product from a site map. Negative sites are
// rejected with sum.ErrInvalidIndexOrder.
func PauliProductFrom(ops map[int]SingleSpinOperator) (PauliProduct, error) {
	var p PauliProduct
	for site, op := range ops {
		if site < 0 {
			return PauliProduct{}, fmt.Errorf("PauliProductFrom: site %d: %w", site, sum.ErrInvalidIndexOrder)
		}
		p.s = p.s.with(site, op)
	}

	return p, nil
}

// ParsePauliProduct reads the String form.
func ParsePauliProduct(s string) (PauliProduct, error) {
	out, err := parseSites(s, ParseSingleSpinOperator)
	if err != nil {
		return PauliProduct{}, fmt.Errorf("ParsePauliProduct: %w", err)
	}

	return PauliProduct{s: out}, nil
}

// Set returns a copy with op on site (Identity clears the site).
// Panics on a negative site.
func (p PauliProduct) Set(site int, op SingleSpinOperator) PauliProduct {
	return PauliProduct{s: p.s.with(site, op)}
}

// Get returns the operator on site; unmentioned sites are Identity.
func (p PauliProduct) Get(site int) (SingleSpinOperator, bool) { return p.s.get(site) }

// Sites returns the non-identity sites in ascending order.
func (p PauliProduct) Sites() []int { return p.s.indices() }

// Len returns the number of non-identity sites.
func (p PauliProduct) Len() int { return len(p.s) }

// IsIdentity reports the empty product.
func (p PauliProduct) IsIdentity() bool { return len(p.s) == 0 }

// CurrentNumberSpins returns highest site + 1.
func (p PauliProduct) CurrentNumberSpins() int { return p.s.maxSite() + 1 }

// String renders the canonical form.
func (p PauliProduct) String() string { return p.s.format() }

// Equal compares canonical forms.
func (p PauliProduct) Equal(o PauliProduct) bool { return p.String() == o.String() }

// IsSelfAdjoint is always true for Pauli products.
func (p PauliProduct) IsSelfAdjoint() bool { return true }

// Product returns p itself.
func (p PauliProduct) Product() PauliProduct { return p }

// HermitianConjugate returns (p, 1).
func (p PauliProduct) HermitianConjugate() (PauliProduct, complex128) { return p, 1 }

// Multiply returns the single-term product p * o, site by site.
func (p PauliProduct) Multiply(o PauliProduct) []sum.Scaled[PauliProduct] {
	out, phase := p.s, complex128(1)
	for _, e := range o.s {
		cur, _ := out.get(e.site)
		c, ph := cur.Multiply(e.op)
		out = out.with(e.site, c)
		phase *= ph
	}

	return []sum.Scaled[PauliProduct]{{Product: PauliProduct{s: out}, Factor: phase}}
}

// RemapModes relabels sites; the phase is always 1.
func (p PauliProduct) RemapModes(mapping map[int]int) (PauliProduct, complex128, error) {
	out, err := p.s.remap(mapping)
	if err != nil {
		return PauliProduct{}, 0, fmt.Errorf("PauliProduct.RemapModes: %w", err)
	}

	return PauliProduct{s: out}, 1, nil
}

// Factors returns the per-site matrices.
func (p PauliProduct) Factors() matrix.SiteFactors {
	return p.s.factors(SingleSpinOperator.Matrix)
}

// ToDecoherence returns (d, f) with p = f * d.
func (p PauliProduct) ToDecoherence() (DecoherenceProduct, complex128) {
	terms := expand(p.s, func(op SingleSpinOperator) []weighted[SingleDecoherenceOperator] {
		d, f := decoherenceOf(op)
		return []weighted[SingleDecoherenceOperator]{{d, f}}
	})

	return DecoherenceProduct{s: terms[0].Product}, terms[0].Factor
}

// ToPlusMinus expands p in the plus-minus basis.
func (p PauliProduct) ToPlusMinus() []sum.Scaled[PlusMinusProduct] {
	terms := expand(p.s, plusMinusExpansion)
	out := make([]sum.Scaled[PlusMinusProduct], len(terms))
	for n, t := range terms {
		out[n] = sum.Scaled[PlusMinusProduct]{Product: PlusMinusProduct{s: t.Product}, Factor: t.Factor}
	}

	return out
}
