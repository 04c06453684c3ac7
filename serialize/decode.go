// SPDX-License-Identifier: MIT

package serialize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/spins"
	"github.com/katalvlaran/struqture/sum"
)

// noPhase adapts a parser of a family whose keys never carry a phase.
// Parsers report the factor the text carries relative to the returned product.
func noPhase[K any](parse func(string) (K, error)) func(string) (K, complex128, error) {
	return func(s string) (K, complex128, error) {
		k, err := parse(s)
		return k, 1, err
	}
}

type termSetter[K any] interface {
	Set(k K, v coefficient.Complex) error
}

type noiseSetter[K any] interface {
	Set(left, right K, v coefficient.Complex) error
}

func fillTerms[K any](dst termSetter[K], terms []Term, parse func(string) (K, complex128, error)) error {
	for n, t := range terms {
		k, phase, err := parse(t.Key)
		if err != nil {
			return fmt.Errorf("term %d %q: %w", n, t.Key, err)
		}
		v := coefficientOf(t.Re, t.Im)
		if phase != 1 {
			v = v.Scale(phase)
		}
		if err = dst.Set(k, v); err != nil {
			return fmt.Errorf("term %d %q: %w", n, t.Key, err)
		}
	}

	return nil
}

func fillNoise[K any](dst noiseSetter[K], terms []NoiseTerm, parse func(string) (K, complex128, error)) error {
	for n, t := range terms {
		left, pl, err := parse(t.Left)
		if err != nil {
			return fmt.Errorf("noise %d %q: %w", n, t.Left, err)
		}
		right, pr, err := parse(t.Right)
		if err != nil {
			return fmt.Errorf("noise %d %q: %w", n, t.Right, err)
		}
		v := coefficientOf(t.Re, t.Im)
		if phase := pl * complex(real(pr), -imag(pr)); phase != 1 {
			v = v.Scale(phase)
		}
		if err = dst.Set(left, right, v); err != nil {
			return fmt.Errorf("noise %d (%q, %q): %w", n, t.Left, t.Right, err)
		}
	}

	return nil
}

// Restore builds the container a Document describes.
func Restore(doc Document) (any, error) {
	if doc.Format != FormatVersion {
		return nil, fmt.Errorf("serialize.Restore: format %d: %w", doc.Format, ErrUnsupportedFormat)
	}
	b, err := parseBacking(doc.Backing)
	if err != nil {
		return nil, fmt.Errorf("serialize.Restore: %w", err)
	}
	opt := sum.WithBacking(b)
	a := doc.Arity

	var (
		out      any
		termErr  error
		noiseErr error
	)
	switch doc.Kind {
	case KindSpinOperator:
		c := spins.NewSpinOperator(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(spins.ParsePauliProduct))
	case KindSpinHamiltonian:
		c := spins.NewSpinHamiltonian(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(spins.ParsePauliProduct))
	case KindDecoherenceOperator:
		c := spins.NewDecoherenceOperator(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(spins.ParseDecoherenceProduct))
	case KindPlusMinusOperator:
		c := spins.NewPlusMinusOperator(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(spins.ParsePlusMinusProduct))
	case KindSpinLindbladNoiseOperator:
		c := spins.NewSpinLindbladNoiseOperator(opt)
		out, noiseErr = c, fillNoise(c, doc.Noise, noPhase(spins.ParseDecoherenceProduct))
	case KindPlusMinusLindbladNoiseOperator:
		c := spins.NewPlusMinusLindbladNoiseOperator(opt)
		out, noiseErr = c, fillNoise(c, doc.Noise, noPhase(spins.ParsePlusMinusProduct))
	case KindSpinLindbladOpenSystem:
		c := spins.NewSpinLindbladOpenSystem(opt)
		out = c
		termErr = fillTerms(c.System(), doc.Terms, noPhase(spins.ParsePauliProduct))
		noiseErr = fillNoise(c.Noise(), doc.Noise, noPhase(spins.ParseDecoherenceProduct))
	case KindBosonOperator:
		c := bosons.NewBosonOperator(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(bosons.ParseProduct))
	case KindBosonHamiltonian:
		c := bosons.NewBosonHamiltonian(opt)
		out, termErr = c, fillTerms(c, doc.Terms, noPhase(bosons.ParseHermitianProduct))
	case KindBosonLindbladNoiseOperator:
		c := bosons.NewBosonLindbladNoiseOperator(opt)
		out, noiseErr = c, fillNoise(c, doc.Noise, noPhase(bosons.ParseProduct))
	case KindBosonLindbladOpenSystem:
		c := bosons.NewBosonLindbladOpenSystem(opt)
		out = c
		termErr = fillTerms(c.System(), doc.Terms, noPhase(bosons.ParseHermitianProduct))
		noiseErr = fillNoise(c.Noise(), doc.Noise, noPhase(bosons.ParseProduct))
	case KindFermionOperator:
		c := fermions.NewFermionOperator(opt)
		out, termErr = c, fillTerms(c, doc.Terms, fermions.ParseProduct)
	case KindFermionHamiltonian:
		c := fermions.NewFermionHamiltonian(opt)
		out, termErr = c, fillTerms(c, doc.Terms, fermions.ParseHermitianProduct)
	case KindFermionLindbladNoiseOperator:
		c := fermions.NewFermionLindbladNoiseOperator(opt)
		out, noiseErr = c, fillNoise(c, doc.Noise, fermions.ParseProduct)
	case KindFermionLindbladOpenSystem:
		c := fermions.NewFermionLindbladOpenSystem(opt)
		out = c
		termErr = fillTerms(c.System(), doc.Terms, fermions.ParseHermitianProduct)
		noiseErr = fillNoise(c.Noise(), doc.Noise, fermions.ParseProduct)
	case KindMixedOperator, KindMixedHamiltonian, KindMixedLindbladNoiseOperator, KindMixedLindbladOpenSystem:
		if a.Spins < 0 || a.Bosons < 0 || a.Fermions < 0 {
			return nil, fmt.Errorf("serialize.Restore: arity %v: %w", a.sum(), ErrMalformedDocument)
		}
		out, termErr, noiseErr = restoreMixed(doc, opt)
	default:
		return nil, fmt.Errorf("serialize.Restore: kind %q: %w", doc.Kind, sum.ErrIncompatibleProductTypes)
	}
	if err = errors.Join(termErr, noiseErr); err != nil {
		return nil, fmt.Errorf("serialize.Restore(%s): %w", doc.Kind, err)
	}
	if got := arityOf(out.(interface{ Arity() sum.Arity }).Arity()); got != a {
		return nil, fmt.Errorf("serialize.Restore(%s): arity %v, container has %v: %w",
			doc.Kind, a.sum(), got.sum(), ErrMalformedDocument)
	}

	return out, nil
}

func restoreMixed(doc Document, opt sum.Option) (out any, termErr, noiseErr error) {
	a := doc.Arity
	switch doc.Kind {
	case KindMixedOperator:
		c := mixed.NewMixedOperator(a.Spins, a.Bosons, a.Fermions, opt)
		return c, fillTerms(c, doc.Terms, mixed.ParseProduct), nil
	case KindMixedHamiltonian:
		c := mixed.NewMixedHamiltonian(a.Spins, a.Bosons, a.Fermions, opt)
		return c, fillTerms(c, doc.Terms, mixed.ParseHermitianProduct), nil
	case KindMixedLindbladNoiseOperator:
		c := mixed.NewMixedLindbladNoiseOperator(a.Spins, a.Bosons, a.Fermions, opt)
		return c, nil, fillNoise(c, doc.Noise, mixed.ParseDecoherenceProduct)
	default:
		c := mixed.NewMixedLindbladOpenSystem(a.Spins, a.Bosons, a.Fermions, opt)
		return c,
			fillTerms(c.System(), doc.Terms, mixed.ParseHermitianProduct),
			fillNoise(c.Noise(), doc.Noise, mixed.ParseDecoherenceProduct)
	}
}

// Decode reads one YAML document into a container of type T. T may be any
// of the family container pointers, or any to accept every kind.
func Decode[T any](data []byte, opts ...Option) (T, error) {
	var zero T
	o := gatherOptions(opts...)

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, fmt.Errorf("serialize.Decode: empty input: %w", ErrMalformedDocument)
		}
		return zero, fmt.Errorf("serialize.Decode: %w: %w", ErrMalformedDocument, err)
	}
	obj, err := Restore(doc)
	if err != nil {
		return zero, err
	}
	out, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("serialize.Decode: %s into %T: %w", doc.Kind, zero, sum.ErrIncompatibleProductTypes)
	}
	o.logger.Debug("serialize: decoded",
		slog.String("kind", string(doc.Kind)),
		slog.Int("terms", len(doc.Terms)),
		slog.Int("noise_terms", len(doc.Noise)),
	)

	return out, nil
}
