// SPDX-License-Identifier: MIT

// Package ladder holds the index bookkeeping shared by boson and fermion
// products: ordering of index lists, the "c0c1a0" text form, and normal
// ordering of an annihilator string against a creator string.
package ladder

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Less orders index lists by length, then lexicographically.
func Less(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return slices.Compare(a, b) < 0
}

// Format renders creators as "c<i>" then annihilators as "a<j>"; the empty
// product renders "I".
func Format(creators, annihilators []int) string {
	if len(creators) == 0 && len(annihilators) == 0 {
		return "I"
	}
	var b strings.Builder
	for _, i := range creators {
		b.WriteByte('c')
		b.WriteString(strconv.Itoa(i))
	}
	for _, j := range annihilators {
		b.WriteByte('a')
		b.WriteString(strconv.Itoa(j))
	}

	return b.String()
}

var token = regexp.MustCompile(`([ca])(\d+)`)

// Parse is the inverse of Format; creators must precede annihilators.
// The lists are returned in text order.
func Parse(s string) (creators, annihilators []int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "I" {
		return nil, nil, true
	}
	pos := 0
	for _, m := range token.FindAllStringSubmatchIndex(s, -1) {
		if m[0] != pos {
			return nil, nil, false
		}
		pos = m[1]
		i, err := strconv.Atoi(s[m[4]:m[5]])
		if err != nil {
			return nil, nil, false
		}
		if s[m[2]] == 'c' {
			if len(annihilators) > 0 {
				return nil, nil, false
			}
			creators = append(creators, i)
		} else {
			annihilators = append(annihilators, i)
		}
	}
	if pos != len(s) {
		return nil, nil, false
	}

	return creators, annihilators, true
}

// MaxIndex returns the highest index in any list, or -1.
func MaxIndex(lists ...[]int) int {
	m := -1
	for _, l := range lists {
		for _, i := range l {
			m = max(m, i)
		}
	}

	return m
}

// Term is one normal-ordered contribution: factor * C A, with creators and
// annihilators in operator order (not yet canonicalized).
type Term struct {
	Creators     []int
	Annihilators []int
	Factor       complex128
}

// NormalOrder rewrites the string (a_{ann[0]} … a_{ann[k-1]})
// (a†_{cre[0]} … a†_{cre[n-1]}) as a sum of normal-ordered terms using
// a_x a†_y = ± a†_y a_x + δ_xy, with the minus sign when fermionic.
func NormalOrder(ann, cre []int, fermionic bool) []Term {
	if len(ann) == 0 {
		return []Term{{Creators: slices.Clone(cre), Factor: 1}}
	}
	last := ann[len(ann)-1]
	rest := ann[:len(ann)-1]

	// a_last · C = Σ_j s_j δ(last, C_j) C\j + s_n C a_last, with s = (-1)^position
	// for fermions and 1 for bosons.
	var out []Term
	through := complex128(1)
	if fermionic && len(cre)%2 == 1 {
		through = -1
	}
	for _, t := range NormalOrder(rest, cre, fermionic) {
		out = append(out, Term{
			Creators:     t.Creators,
			Annihilators: append(slices.Clone(t.Annihilators), last),
			Factor:       t.Factor * through,
		})
	}
	for j, y := range cre {
		if y != last {
			continue
		}
		sign := complex128(1)
		if fermionic && j%2 == 1 {
			sign = -1
		}
		reduced := slices.Delete(slices.Clone(cre), j, j+1)
		for _, t := range NormalOrder(rest, reduced, fermionic) {
			t.Factor *= sign
			out = append(out, t)
		}
	}

	return out
}
