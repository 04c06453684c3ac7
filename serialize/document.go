// SPDX-License-Identifier: MIT

package serialize

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/sum"
)

// Kind names a container type inside a document.
type Kind string

// Container kinds.
const (
	KindSpinOperator                   Kind = "SpinOperator"
	KindSpinHamiltonian                Kind = "SpinHamiltonian"
	KindDecoherenceOperator            Kind = "DecoherenceOperator"
	KindPlusMinusOperator              Kind = "PlusMinusOperator"
	KindSpinLindbladNoiseOperator      Kind = "SpinLindbladNoiseOperator"
	KindPlusMinusLindbladNoiseOperator Kind = "PlusMinusLindbladNoiseOperator"
	KindSpinLindbladOpenSystem         Kind = "SpinLindbladOpenSystem"
	KindBosonOperator                  Kind = "BosonOperator"
	KindBosonHamiltonian               Kind = "BosonHamiltonian"
	KindBosonLindbladNoiseOperator     Kind = "BosonLindbladNoiseOperator"
	KindBosonLindbladOpenSystem        Kind = "BosonLindbladOpenSystem"
	KindFermionOperator                Kind = "FermionOperator"
	KindFermionHamiltonian             Kind = "FermionHamiltonian"
	KindFermionLindbladNoiseOperator   Kind = "FermionLindbladNoiseOperator"
	KindFermionLindbladOpenSystem      Kind = "FermionLindbladOpenSystem"
	KindMixedOperator                  Kind = "MixedOperator"
	KindMixedHamiltonian               Kind = "MixedHamiltonian"
	KindMixedLindbladNoiseOperator     Kind = "MixedLindbladNoiseOperator"
	KindMixedLindbladOpenSystem        Kind = "MixedLindbladOpenSystem"
)

// Document is the serialized form of one container.
type Document struct {
	Format  int         `yaml:"format"`
	Kind    Kind        `yaml:"kind"`
	Arity   Arity       `yaml:"arity,flow"`
	Backing string      `yaml:"backing"`
	Terms   []Term      `yaml:"terms,omitempty"`
	Noise   []NoiseTerm `yaml:"noise,omitempty"`
}

// Arity mirrors sum.Arity.
type Arity struct {
	Spins    int `yaml:"spins"`
	Bosons   int `yaml:"bosons"`
	Fermions int `yaml:"fermions"`
}

// Term is one key/coefficient pair.
type Term struct {
	Key string `yaml:"key"`
	Re  string `yaml:"re"`
	Im  string `yaml:"im"`
}

// NoiseTerm is one rate-matrix entry.
type NoiseTerm struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Re    string `yaml:"re"`
	Im    string `yaml:"im"`
}

func arityOf(a sum.Arity) Arity { return Arity{Spins: a.Spins, Bosons: a.Bosons, Fermions: a.Fermions} }

func (a Arity) sum() sum.Arity {
	return sum.Arity{Spins: a.Spins, Bosons: a.Bosons, Fermions: a.Fermions}
}

func parseBacking(s string) (sum.Backing, error) {
	for _, b := range []sum.Backing{sum.InsertionOrder, sum.Hashed} {
		if b.String() == s {
			return b, nil
		}
	}
	if s == "" {
		return sum.DefaultBacking, nil
	}

	return sum.DefaultBacking, fmt.Errorf("backing %q: %w", s, ErrMalformedDocument)
}

func coefficientOf(re, im string) coefficient.Complex {
	return coefficient.NewComplex(coefficient.NewSymbol(re), coefficient.NewSymbol(im))
}

func operatorTerms[K fmt.Stringer](terms []sum.Term[K]) []Term {
	out := make([]Term, len(terms))
	for n, t := range terms {
		out[n] = Term{Key: t.Key.String(), Re: t.Value.Re().String(), Im: t.Value.Im().String()}
	}

	return out
}

func noiseTerms[K fmt.Stringer](terms []sum.Term[sum.Pair[K]]) []NoiseTerm {
	out := make([]NoiseTerm, len(terms))
	for n, t := range terms {
		out[n] = NoiseTerm{
			Left:  t.Key.Left.String(),
			Right: t.Key.Right.String(),
			Re:    t.Value.Re().String(),
			Im:    t.Value.Im().String(),
		}
	}

	return out
}
