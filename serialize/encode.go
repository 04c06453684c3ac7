// SPDX-License-Identifier: MIT

package serialize

import (
	"bytes"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
)

// container is the accessor surface shared by every sum container.
type container interface {
	Arity() sum.Arity
	Backing() sum.Backing
}

// Build returns the Document of obj without rendering it.
func Build(obj any) (Document, error) {
	var (
		kind  Kind
		terms []Term
		noise []NoiseTerm
	)
	switch v := obj.(type) {
	case *spins.SpinOperator:
		kind, terms = KindSpinOperator, operatorTerms(v.Terms())
	case *spins.SpinHamiltonian:
		kind, terms = KindSpinHamiltonian, operatorTerms(v.Terms())
	case *spins.DecoherenceOperator:
		kind, terms = KindDecoherenceOperator, operatorTerms(v.Terms())
	case *spins.PlusMinusOperator:
		kind, terms = KindPlusMinusOperator, operatorTerms(v.Terms())
	case *spins.SpinLindbladNoiseOperator:
		kind, noise = KindSpinLindbladNoiseOperator, noiseTerms(v.Terms())
	case *spins.PlusMinusLindbladNoiseOperator:
		kind, noise = KindPlusMinusLindbladNoiseOperator, noiseTerms(v.Terms())
	case *spins.SpinLindbladOpenSystem:
		kind, terms, noise = KindSpinLindbladOpenSystem, operatorTerms(v.System().Terms()), noiseTerms(v.Noise().Terms())
	case *bosons.BosonOperator:
		kind, terms = KindBosonOperator, operatorTerms(v.Terms())
	case *bosons.BosonHamiltonian:
		kind, terms = KindBosonHamiltonian, operatorTerms(v.Terms())
	case *bosons.BosonLindbladNoiseOperator:
		kind, noise = KindBosonLindbladNoiseOperator, noiseTerms(v.Terms())
	case *bosons.BosonLindbladOpenSystem:
		kind, terms, noise = KindBosonLindbladOpenSystem, operatorTerms(v.System().Terms()), noiseTerms(v.Noise().Terms())
	case *fermions.FermionOperator:
		kind, terms = KindFermionOperator, operatorTerms(v.Terms())
	case *fermions.FermionHamiltonian:
		kind, terms = KindFermionHamiltonian, operatorTerms(v.Terms())
	case *fermions.FermionLindbladNoiseOperator:
		kind, noise = KindFermionLindbladNoiseOperator, noiseTerms(v.Terms())
	case *fermions.FermionLindbladOpenSystem:
		kind, terms, noise = KindFermionLindbladOpenSystem, operatorTerms(v.System().Terms()), noiseTerms(v.Noise().Terms())
	case *mixed.MixedOperator:
		kind, terms = KindMixedOperator, operatorTerms(v.Terms())
	case *mixed.MixedHamiltonian:
		kind, terms = KindMixedHamiltonian, operatorTerms(v.Terms())
	case *mixed.MixedLindbladNoiseOperator:
		kind, noise = KindMixedLindbladNoiseOperator, noiseTerms(v.Terms())
	case *mixed.MixedLindbladOpenSystem:
		kind, terms, noise = KindMixedLindbladOpenSystem, operatorTerms(v.System().Terms()), noiseTerms(v.Noise().Terms())
	default:
		return Document{}, fmt.Errorf("serialize.Build(%T): %w", obj, sum.ErrIncompatibleProductTypes)
	}

	doc := Document{Format: FormatVersion, Kind: kind, Terms: terms, Noise: noise}
	if c, ok := obj.(container); ok {
		doc.Arity, doc.Backing = arityOf(c.Arity()), c.Backing().String()
	} else {
		doc.Arity, doc.Backing = openSystemShape(obj)
	}

	return doc, nil
}

// openSystemShape reads arity and backing of the open-system kinds, which
// expose their backing through the coherent part.
func openSystemShape(obj any) (Arity, string) {
	switch v := obj.(type) {
	case *spins.SpinLindbladOpenSystem:
		return arityOf(v.Arity()), v.System().Backing().String()
	case *bosons.BosonLindbladOpenSystem:
		return arityOf(v.Arity()), v.System().Backing().String()
	case *fermions.FermionLindbladOpenSystem:
		return arityOf(v.Arity()), v.System().Backing().String()
	case *mixed.MixedLindbladOpenSystem:
		return arityOf(v.Arity()), v.System().Backing().String()
	}

	return Arity{}, sum.DefaultBacking.String()
}

// Encode renders obj as a YAML document.
func Encode(obj any, opts ...Option) ([]byte, error) {
	o := gatherOptions(opts...)
	doc, err := Build(obj)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(o.indent)
	if err = enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("serialize.Encode: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("serialize.Encode: %w", err)
	}
	o.logger.Debug("serialize: encoded",
		slog.String("kind", string(doc.Kind)),
		slog.Int("terms", len(doc.Terms)),
		slog.Int("noise_terms", len(doc.Noise)),
		slog.Int("bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}
