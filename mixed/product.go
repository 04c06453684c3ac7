// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
)

// Product is a tuple of Pauli, boson and fermion products.
type Product struct {
	t tuple[spins.PauliProduct]
}

// NewProduct copies the subsystem products. The shape is checked by the
// container on insertion.
func NewProduct(s []spins.PauliProduct, b []bosons.Product, f []fermions.Product) Product {
	return Product{t: newTuple(s, b, f)}
}

// ParseProduct reads the String form; the fermion reordering sign of
// non-canonical input is returned.
func ParseProduct(s string) (Product, complex128, error) {
	t, phase, err := parseTuple(s, spins.ParsePauliProduct)
	if err != nil {
		return Product{}, 0, fmt.Errorf("mixed.ParseProduct: %w", err)
	}

	return Product{t: t}, phase, nil
}

// Spins returns a copy of the spin subsystems.
func (p Product) Spins() []spins.PauliProduct { return slices.Clone(p.t.spins) }

// Bosons returns a copy of the boson subsystems.
func (p Product) Bosons() []bosons.Product { return slices.Clone(p.t.bosons) }

// Fermions returns a copy of the fermion subsystems.
func (p Product) Fermions() []fermions.Product { return slices.Clone(p.t.fermions) }

// Arity returns the subsystem shape.
func (p Product) Arity() sum.Arity { return p.t.arity() }

// IsIdentity reports that every subsystem is the identity.
func (p Product) IsIdentity() bool { return p.t.isIdentity() }

// String renders "S0X:Bc0a1:Fc2:".
func (p Product) String() string { return p.t.String() }

// Equal compares canonical forms.
func (p Product) Equal(o Product) bool { return p.String() == o.String() }

// HermitianConjugate conjugates each subsystem; fermion signs multiply.
func (p Product) HermitianConjugate() (Product, complex128) {
	t, phase := p.t.conjugate()

	return Product{t: t}, phase
}

// Multiply expands p * o subsystem by subsystem. Products of different
// shape yield no terms; containers reject such keys before multiplying.
func (p Product) Multiply(o Product) []sum.Scaled[Product] {
	terms := p.t.multiply(o.t)
	out := make([]sum.Scaled[Product], len(terms))
	for n, s := range terms {
		out[n] = sum.Scaled[Product]{Product: Product{t: s.t}, Factor: s.factor}
	}

	return out
}

// RemapModes applies mapping to every subsystem.
func (p Product) RemapModes(mapping map[int]int) (Product, complex128, error) {
	t, phase, err := p.t.remap(mapping)
	if err != nil {
		return Product{}, 0, fmt.Errorf("mixed.RemapModes: %w", err)
	}

	return Product{t: t}, phase, nil
}

// CurrentNumbers returns highest index + 1 for every subsystem.
func (p Product) CurrentNumbers() (spinCounts, bosonCounts, fermionCounts []int) {
	return p.t.sizes(spins.PauliProduct.CurrentNumberSpins)
}

// HermitianProduct is the representative of a mixed term and its conjugate.
// Spin subsystems are always self-adjoint; the first boson subsystem that is
// not self-adjoint decides the orientation, then the first such fermion
// subsystem.
type HermitianProduct struct {
	p Product
}

// isRepresentative reports whether p is its own representative.
func isRepresentative(p Product) bool {
	for _, b := range p.t.bosons {
		h, _, conjugated := bosons.HermitianFrom(b)
		if !h.IsSelfAdjoint() {
			return !conjugated
		}
	}
	for _, f := range p.t.fermions {
		h, _, conjugated := fermions.HermitianFrom(f)
		if !h.IsSelfAdjoint() {
			return !conjugated
		}
	}

	return true
}

// NewHermitianProduct builds a representative from canonical subsystem
// products. A non-representative orientation fails with
// sum.ErrInvalidIndexOrder.
func NewHermitianProduct(s []spins.PauliProduct, b []bosons.Product, f []fermions.Product) (HermitianProduct, error) {
	p := NewProduct(s, b, f)
	if !isRepresentative(p) {
		return HermitianProduct{}, fmt.Errorf("mixed.NewHermitianProduct(%s): %w", p, sum.ErrInvalidIndexOrder)
	}

	return HermitianProduct{p: p}, nil
}

// ParseHermitianProduct reads the String form strictly.
func ParseHermitianProduct(s string) (HermitianProduct, complex128, error) {
	p, phase, err := ParseProduct(s)
	if err != nil {
		return HermitianProduct{}, 0, err
	}
	if !isRepresentative(p) {
		return HermitianProduct{}, 0, fmt.Errorf("mixed.ParseHermitianProduct(%q): %w", s, sum.ErrInvalidIndexOrder)
	}

	return HermitianProduct{p: p}, phase, nil
}

// HermitianFrom returns the representative of p. When conjugated is false,
// p = phase * h.Product(); otherwise p† = phase * h.Product().
func HermitianFrom(p Product) (h HermitianProduct, phase complex128, conjugated bool) {
	if isRepresentative(p) {
		return HermitianProduct{p: p}, 1, false
	}
	q, ph := p.HermitianConjugate()

	return HermitianProduct{p: q}, ph, true
}

// Product returns the stored orientation.
func (h HermitianProduct) Product() Product { return h.p }

// Arity returns the subsystem shape.
func (h HermitianProduct) Arity() sum.Arity { return h.p.Arity() }

// IsSelfAdjoint reports that every subsystem is self-adjoint.
func (h HermitianProduct) IsSelfAdjoint() bool {
	for _, b := range h.p.t.bosons {
		if hb, _, _ := bosons.HermitianFrom(b); !hb.IsSelfAdjoint() {
			return false
		}
	}
	for _, f := range h.p.t.fermions {
		if hf, _, _ := fermions.HermitianFrom(f); !hf.IsSelfAdjoint() {
			return false
		}
	}

	return true
}

// String renders the stored orientation.
func (h HermitianProduct) String() string { return h.p.String() }

// DecoherenceProduct is the noise-basis counterpart of Product: spin
// subsystems use spins.DecoherenceProduct.
type DecoherenceProduct struct {
	t tuple[spins.DecoherenceProduct]
}

// NewDecoherenceProduct copies the subsystem products.
func NewDecoherenceProduct(s []spins.DecoherenceProduct, b []bosons.Product, f []fermions.Product) DecoherenceProduct {
	return DecoherenceProduct{t: newTuple(s, b, f)}
}

// ParseDecoherenceProduct reads the String form.
func ParseDecoherenceProduct(s string) (DecoherenceProduct, complex128, error) {
	t, phase, err := parseTuple(s, spins.ParseDecoherenceProduct)
	if err != nil {
		return DecoherenceProduct{}, 0, fmt.Errorf("mixed.ParseDecoherenceProduct: %w", err)
	}

	return DecoherenceProduct{t: t}, phase, nil
}

// Spins returns a copy of the spin subsystems.
func (d DecoherenceProduct) Spins() []spins.DecoherenceProduct { return slices.Clone(d.t.spins) }

// Bosons returns a copy of the boson subsystems.
func (d DecoherenceProduct) Bosons() []bosons.Product { return slices.Clone(d.t.bosons) }

// Fermions returns a copy of the fermion subsystems.
func (d DecoherenceProduct) Fermions() []fermions.Product { return slices.Clone(d.t.fermions) }

// Arity returns the subsystem shape.
func (d DecoherenceProduct) Arity() sum.Arity { return d.t.arity() }

// IsIdentity reports that every subsystem is the identity.
func (d DecoherenceProduct) IsIdentity() bool { return d.t.isIdentity() }

// String renders "S0iY:Bc0:F:".
func (d DecoherenceProduct) String() string { return d.t.String() }

// HermitianConjugate conjugates each subsystem.
func (d DecoherenceProduct) HermitianConjugate() (DecoherenceProduct, complex128) {
	t, phase := d.t.conjugate()

	return DecoherenceProduct{t: t}, phase
}

// Multiply expands d * o subsystem by subsystem.
func (d DecoherenceProduct) Multiply(o DecoherenceProduct) []sum.Scaled[DecoherenceProduct] {
	terms := d.t.multiply(o.t)
	out := make([]sum.Scaled[DecoherenceProduct], len(terms))
	for n, s := range terms {
		out[n] = sum.Scaled[DecoherenceProduct]{Product: DecoherenceProduct{t: s.t}, Factor: s.factor}
	}

	return out
}

// RemapModes applies mapping to every subsystem.
func (d DecoherenceProduct) RemapModes(mapping map[int]int) (DecoherenceProduct, complex128, error) {
	t, phase, err := d.t.remap(mapping)
	if err != nil {
		return DecoherenceProduct{}, 0, fmt.Errorf("mixed.RemapModes: %w", err)
	}

	return DecoherenceProduct{t: t}, phase, nil
}
