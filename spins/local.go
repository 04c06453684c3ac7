// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/sum"
)

// siteOperator is one non-identity entry of a product.
type siteOperator[T comparable] struct {
	site int
	op   T
}

// sites is the shared storage of all spin products: entries sorted by
// site, identity entries omitted. Values are never mutated in place.
type sites[T comparable] []siteOperator[T]

// get returns the operator on site, or the zero value (identity).
func (s sites[T]) get(site int) (T, bool) {
	n := sort.Search(len(s), func(n int) bool { return s[n].site >= site })
	if n < len(s) && s[n].site == site {
		return s[n].op, true
	}
	var zero T

	return zero, false
}

// with returns a copy of s with op on site; the zero value clears the site.
func (s sites[T]) with(site int, op T) sites[T] {
	if site < 0 {
		panic(panicNegativeSite)
	}
	var zero T
	n := sort.Search(len(s), func(n int) bool { return s[n].site >= site })
	out := make(sites[T], 0, len(s)+1)
	out = append(out, s[:n]...)
	if op != zero {
		out = append(out, siteOperator[T]{site: site, op: op})
	}
	if n < len(s) && s[n].site == site {
		n++
	}

	return append(out, s[n:]...)
}

// indices returns the occupied sites in ascending order.
func (s sites[T]) indices() []int {
	out := make([]int, len(s))
	for n, e := range s {
		out[n] = e.site
	}

	return out
}

// maxSite returns the highest occupied site, or -1.
func (s sites[T]) maxSite() int {
	if len(s) == 0 {
		return -1
	}

	return s[len(s)-1].site
}

// format renders "0X2Z"; the identity renders "I".
func (s sites[T]) format() string {
	if len(s) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, e := range s {
		b.WriteString(strconv.Itoa(e.site))
		b.WriteString(fmt.Sprint(e.op))
	}

	return b.String()
}

// remap relabels sites; the mapping must stay injective on occupied sites.
func (s sites[T]) remap(mapping map[int]int) (sites[T], error) {
	idx, err := sum.RemapIndices(mapping, s.indices())
	if err != nil {
		return nil, err
	}
	out := make(sites[T], len(s))
	for n, e := range s {
		out[n] = siteOperator[T]{site: idx[n], op: e.op}
	}
	sort.Slice(out, func(x, y int) bool { return out[x].site < out[y].site })

	return out, nil
}

// factors returns the per-site 2×2 matrices.
func (s sites[T]) factors(toMatrix func(T) *matrix.Dense) matrix.SiteFactors {
	f := make(matrix.SiteFactors, len(s))
	for _, e := range s {
		f[e.site] = toMatrix(e.op)
	}

	return f
}

// tokenPattern matches one "<site><symbol>" group of a product string.
var tokenPattern = regexp.MustCompile(`(\d+)(iY|[IXYZ+\-])`)

// parseSites reads a canonical product string; unsorted input is accepted
// but repeated sites are rejected. "" and "I" denote the identity.
func parseSites[T comparable](s string, symbol func(string) (T, error)) (sites[T], error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "I" {
		return nil, nil
	}
	matches := tokenPattern.FindAllStringSubmatchIndex(s, -1)
	var out sites[T]
	pos := 0
	for _, m := range matches {
		if m[0] != pos {
			return nil, fmt.Errorf("%q at %d: %w", s, pos, ErrParse)
		}
		pos = m[1]
		site, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrParse)
		}
		op, err := symbol(s[m[4]:m[5]])
		if err != nil {
			return nil, err
		}
		if _, dup := out.get(site); dup {
			return nil, fmt.Errorf("%q: site %d repeated: %w", s, site, ErrParse)
		}
		out = out.with(site, op)
	}
	if pos != len(s) {
		return nil, fmt.Errorf("%q at %d: %w", s, pos, ErrParse)
	}

	return out, nil
}

// expand applies a per-site basis change to every entry and returns the
// cartesian product of the per-site expansions.
func expand[T, U comparable](s sites[T], perSite func(T) []weighted[U]) []sum.Scaled[sites[U]] {
	acc := []sum.Scaled[sites[U]]{{Product: nil, Factor: 1}}
	for _, e := range s {
		terms := perSite(e.op)
		next := make([]sum.Scaled[sites[U]], 0, len(acc)*len(terms))
		for _, a := range acc {
			for _, t := range terms {
				next = append(next, sum.Scaled[sites[U]]{
					Product: a.Product.with(e.site, t.op),
					Factor:  a.Factor * t.factor,
				})
			}
		}
		acc = next
	}

	return acc
}
