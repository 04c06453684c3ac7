// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/sum"
)

// DecoherenceProduct is a tensor product over {I, X, iY, Z}, e.g. "0X1iY".
// All of its matrices are real, which suits Lindblad rate matrices.
type DecoherenceProduct struct {
	s sites[SingleDecoherenceOperator]
}

// NewDecoherenceProduct returns the identity product.
func NewDecoherenceProduct() DecoherenceProduct { return DecoherenceProduct{} }

// ParseDecoherenceProduct reads the String form.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, error) {
	out, err := parseSites(s, ParseSingleDecoherenceOperator)
	if err != nil {
		return DecoherenceProduct{}, fmt.Errorf("ParseDecoherenceProduct: %w", err)
	}

	return DecoherenceProduct{s: out}, nil
}

// Set returns a copy with op on site. Panics on a negative site.
func (d DecoherenceProduct) Set(site int, op SingleDecoherenceOperator) DecoherenceProduct {
	return DecoherenceProduct{s: d.s.with(site, op)}
}

// Get returns the operator on site.
func (d DecoherenceProduct) Get(site int) (SingleDecoherenceOperator, bool) { return d.s.get(site) }

// Sites returns the non-identity sites in ascending order.
func (d DecoherenceProduct) Sites() []int { return d.s.indices() }

// Len returns the number of non-identity sites.
func (d DecoherenceProduct) Len() int { return len(d.s) }

// IsIdentity reports the empty product.
func (d DecoherenceProduct) IsIdentity() bool { return len(d.s) == 0 }

// CurrentNumberSpins returns highest site + 1.
func (d DecoherenceProduct) CurrentNumberSpins() int { return d.s.maxSite() + 1 }

// String renders the canonical form.
func (d DecoherenceProduct) String() string { return d.s.format() }

// Equal compares canonical forms.
func (d DecoherenceProduct) Equal(o DecoherenceProduct) bool { return d.String() == o.String() }

// HermitianConjugate returns (d, (-1)^#iY).
func (d DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, complex128) {
	phase := complex128(1)
	for _, e := range d.s {
		_, ph := e.op.HermitianConjugate()
		phase *= ph
	}

	return d, phase
}

// Multiply returns the single-term product d * o; the factor is ±1.
func (d DecoherenceProduct) Multiply(o DecoherenceProduct) []sum.Scaled[DecoherenceProduct] {
	out, phase := d.s, complex128(1)
	for _, e := range o.s {
		cur, _ := out.get(e.site)
		c, ph := cur.Multiply(e.op)
		out = out.with(e.site, c)
		phase *= ph
	}

	return []sum.Scaled[DecoherenceProduct]{{Product: DecoherenceProduct{s: out}, Factor: phase}}
}

// RemapModes relabels sites; the phase is always 1.
func (d DecoherenceProduct) RemapModes(mapping map[int]int) (DecoherenceProduct, complex128, error) {
	out, err := d.s.remap(mapping)
	if err != nil {
		return DecoherenceProduct{}, 0, fmt.Errorf("DecoherenceProduct.RemapModes: %w", err)
	}

	return DecoherenceProduct{s: out}, 1, nil
}

// Factors returns the per-site matrices.
func (d DecoherenceProduct) Factors() matrix.SiteFactors {
	return d.s.factors(SingleDecoherenceOperator.Matrix)
}

// ToPauli returns (p, f) with d = f * p.
func (d DecoherenceProduct) ToPauli() (PauliProduct, complex128) {
	terms := expand(d.s, func(op SingleDecoherenceOperator) []weighted[SingleSpinOperator] {
		p, f := op.pauli()
		return []weighted[SingleSpinOperator]{{p, f}}
	})

	return PauliProduct{s: terms[0].Product}, terms[0].Factor
}
