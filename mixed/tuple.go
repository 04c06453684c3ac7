// SPDX-License-Identifier: MIT

package mixed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/sum"
)

// tuple is the shared layout of mixed products; S is the spin product kind.
type tuple[S sum.Product[S]] struct {
	spins    []S
	bosons   []bosons.Product
	fermions []fermions.Product
}

func newTuple[S sum.Product[S]](s []S, b []bosons.Product, f []fermions.Product) tuple[S] {
	return tuple[S]{spins: slices.Clone(s), bosons: slices.Clone(b), fermions: slices.Clone(f)}
}

func (t tuple[S]) arity() sum.Arity {
	return sum.Arity{Spins: len(t.spins), Bosons: len(t.bosons), Fermions: len(t.fermions)}
}

func (t tuple[S]) isIdentity() bool {
	for _, s := range t.spins {
		if !s.IsIdentity() {
			return false
		}
	}
	for _, b := range t.bosons {
		if !b.IsIdentity() {
			return false
		}
	}
	for _, f := range t.fermions {
		if !f.IsIdentity() {
			return false
		}
	}

	return true
}

func (t tuple[S]) String() string {
	var b strings.Builder
	for _, s := range t.spins {
		b.WriteString("S" + s.String() + ":")
	}
	for _, p := range t.bosons {
		b.WriteString("B" + p.String() + ":")
	}
	for _, p := range t.fermions {
		b.WriteString("F" + p.String() + ":")
	}

	return b.String()
}

// conjugate conjugates every subsystem; fermion signs multiply.
func (t tuple[S]) conjugate() (tuple[S], complex128) {
	out := tuple[S]{
		spins:    make([]S, len(t.spins)),
		bosons:   make([]bosons.Product, len(t.bosons)),
		fermions: make([]fermions.Product, len(t.fermions)),
	}
	phase := complex128(1)
	var ph complex128
	for n, s := range t.spins {
		out.spins[n], ph = s.HermitianConjugate()
		phase *= ph
	}
	for n, b := range t.bosons {
		out.bosons[n], ph = b.HermitianConjugate()
		phase *= ph
	}
	for n, f := range t.fermions {
		out.fermions[n], ph = f.HermitianConjugate()
		phase *= ph
	}

	return out, phase
}

// scaledTuple is one term of a tuple expansion.
type scaledTuple[S sum.Product[S]] struct {
	t      tuple[S]
	factor complex128
}

// extend multiplies every partial term by every option of one subsystem.
func extend[S sum.Product[S], P any](acc []scaledTuple[S], options []sum.Scaled[P], put func(*tuple[S], P)) []scaledTuple[S] {
	next := make([]scaledTuple[S], 0, len(acc)*len(options))
	for _, a := range acc {
		for _, o := range options {
			t := newTuple(a.t.spins, a.t.bosons, a.t.fermions)
			put(&t, o.Product)
			next = append(next, scaledTuple[S]{t: t, factor: a.factor * o.Factor})
		}
	}

	return next
}

// multiply expands t * o subsystem by subsystem. Shapes must match; a
// shape mismatch yields no terms.
func (t tuple[S]) multiply(o tuple[S]) []scaledTuple[S] {
	if t.arity() != o.arity() {
		return nil
	}
	acc := []scaledTuple[S]{{factor: 1}}
	for n := range t.spins {
		acc = extend(acc, t.spins[n].Multiply(o.spins[n]), func(x *tuple[S], p S) { x.spins = append(x.spins, p) })
	}
	for n := range t.bosons {
		acc = extend(acc, t.bosons[n].Multiply(o.bosons[n]), func(x *tuple[S], p bosons.Product) { x.bosons = append(x.bosons, p) })
	}
	for n := range t.fermions {
		acc = extend(acc, t.fermions[n].Multiply(o.fermions[n]), func(x *tuple[S], p fermions.Product) { x.fermions = append(x.fermions, p) })
	}

	return acc
}

// remap applies mapping to every subsystem.
func (t tuple[S]) remap(mapping map[int]int) (tuple[S], complex128, error) {
	out := tuple[S]{
		spins:    make([]S, len(t.spins)),
		bosons:   make([]bosons.Product, len(t.bosons)),
		fermions: make([]fermions.Product, len(t.fermions)),
	}
	phase := complex128(1)
	var (
		ph  complex128
		err error
	)
	for n, s := range t.spins {
		if out.spins[n], ph, err = s.RemapModes(mapping); err != nil {
			return tuple[S]{}, 0, fmt.Errorf("spin subsystem %d: %w", n, err)
		}
		phase *= ph
	}
	for n, b := range t.bosons {
		if out.bosons[n], ph, err = b.RemapModes(mapping); err != nil {
			return tuple[S]{}, 0, fmt.Errorf("boson subsystem %d: %w", n, err)
		}
		phase *= ph
	}
	for n, f := range t.fermions {
		if out.fermions[n], ph, err = f.RemapModes(mapping); err != nil {
			return tuple[S]{}, 0, fmt.Errorf("fermion subsystem %d: %w", n, err)
		}
		phase *= ph
	}

	return out, phase, nil
}

// parseTuple splits "S…:B…:F…:" and parses each part.
func parseTuple[S sum.Product[S]](s string, spin func(string) (S, error)) (tuple[S], complex128, error) {
	var t tuple[S]
	phase := complex128(1)
	s = strings.TrimSpace(s)
	if s == "" {
		return t, phase, nil
	}
	if !strings.HasSuffix(s, ":") {
		return t, 0, fmt.Errorf("%q: %w", s, ErrParse)
	}
	stage := 'S'
	for _, part := range strings.Split(strings.TrimSuffix(s, ":"), ":") {
		if part == "" {
			return t, 0, fmt.Errorf("%q: empty subsystem: %w", s, ErrParse)
		}
		tag, body := rune(part[0]), part[1:]
		if (stage == 'B' && tag == 'S') || (stage == 'F' && tag != 'F') {
			return t, 0, fmt.Errorf("%q: subsystems out of order: %w", s, ErrParse)
		}
		stage = tag
		switch tag {
		case 'S':
			p, err := spin(body)
			if err != nil {
				return t, 0, err
			}
			t.spins = append(t.spins, p)
		case 'B':
			p, err := bosons.ParseProduct(body)
			if err != nil {
				return t, 0, err
			}
			t.bosons = append(t.bosons, p)
		case 'F':
			p, ph, err := fermions.ParseProduct(body)
			if err != nil {
				return t, 0, err
			}
			phase *= ph
			t.fermions = append(t.fermions, p)
		default:
			return t, 0, fmt.Errorf("%q: unknown tag %q: %w", s, tag, ErrParse)
		}
	}

	return t, phase, nil
}

// sizes returns highest index + 1 per subsystem.
func (t tuple[S]) sizes(spinSize func(S) int) (s, b, f []int) {
	for _, p := range t.spins {
		s = append(s, spinSize(p))
	}
	for _, p := range t.bosons {
		b = append(b, p.CurrentNumberModes())
	}
	for _, p := range t.fermions {
		f = append(f, p.CurrentNumberModes())
	}

	return s, b, f
}
