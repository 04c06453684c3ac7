// SPDX-License-Identifier: MIT

// Package matrix - operator and Lindblad superoperator generation.
//
// Purpose:
//   - Turn sums of site-local tensor products into sparse matrices.
//   - Build the Liouvillian superoperator acting on the row-major flattened
//     density matrix:
//
//	L = -i(H⊗I - I⊗Hᵀ) + Σ Γ_jk ( L_j⊗L_k^* - ½(L_k†L_j⊗I + I⊗(L_k†L_j)ᵀ) )
//
// Determinism & Policy:
//   - Every contribution is summed into one Builder; duplicates never overwrite.
//   - Sites absent from a term act as the 2×2 identity.
//
// Complexity:
//   - OperatorCOO: O(terms · 2^N) for monomial site factors.
//   - SuperoperatorCOO: O((terms_H + terms_noise) · 4^N) after the per-term
//     site-local products L_k†L_j are formed on 2×2 factors.
package matrix

import (
	"fmt"
	"log/slog"
	"sort"
)

// siteDimension is the local Hilbert-space dimension of one site.
const siteDimension = 2

// SiteFactors maps a site index to its 2×2 factor. Missing sites are identity.
type SiteFactors map[int]*Dense

// LocalTerm is coefficient · ⊗_site factor.
type LocalTerm struct {
	Factors     SiteFactors
	Coefficient complex128
}

// NoiseTerm is one rate-matrix entry Γ(Left, Right).
type NoiseTerm struct {
	Left  SiteFactors
	Right SiteFactors
	Rate  complex128
}

var identity2 = MustDenseFromRows([][]complex128{{1, 0}, {0, 1}})

// Dimension returns 2^numberSites, or ErrDimensionTooLarge above limit.
func Dimension(numberSites int, opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	return dimension(numberSites, o.maxDimension)
}

func dimension(numberSites, limit int) (int, error) {
	if numberSites < 0 {
		return 0, fmt.Errorf("Dimension(%d): %w", numberSites, ErrInvalidDimensions)
	}
	d := 1
	for i := 0; i < numberSites; i++ {
		d *= siteDimension
		if d > limit {
			return 0, fmt.Errorf("Dimension(%d): %w", numberSites, ErrDimensionTooLarge)
		}
	}

	return d, nil
}

// validateFactors checks shape and site range.
func validateFactors(f SiteFactors, numberSites int) error {
	for site, m := range f {
		if site < 0 || site >= numberSites {
			return fmt.Errorf("site %d of %d: %w", site, numberSites, ErrOutOfRange)
		}
		if m == nil {
			return fmt.Errorf("site %d: %w", site, ErrNilMatrix)
		}
		if m.r != siteDimension || m.c != siteDimension {
			return fmt.Errorf("site %d: %w", site, ErrBadFactor)
		}
	}

	return nil
}

// TensorCOO builds M_{N-1} ⊗ … ⊗ M_0 for the given factors.
func TensorCOO(f SiteFactors, numberSites int) (*COO, error) {
	if err := validateFactors(f, numberSites); err != nil {
		return nil, fmt.Errorf("TensorCOO: %w", err)
	}

	return tensor(f, numberSites), nil
}

// tensor assumes validated factors.
func tensor(f SiteFactors, numberSites int) *COO {
	acc := &COO{r: 1, c: 1, entries: []Entry{{Row: 0, Col: 0, Value: 1}}}
	for site := numberSites - 1; site >= 0; site-- {
		m, ok := f[site]
		if !ok {
			m = identity2
		}
		acc = KronCOO(acc, DenseToCOO(m))
	}

	return acc
}

// OperatorCOO returns Σ c_t ⊗ factors_t as a 2^N × 2^N sparse matrix.
func OperatorCOO(terms []LocalTerm, numberSites int, opts ...Option) (*COO, error) {
	o := gatherOptions(opts...)
	d, err := dimension(numberSites, o.maxDimension)
	if err != nil {
		return nil, fmt.Errorf("OperatorCOO: %w", err)
	}
	b, err := NewBuilder(d, d, opts...)
	if err != nil {
		return nil, err
	}
	for n, t := range terms {
		if err = validateFactors(t.Factors, numberSites); err != nil {
			return nil, fmt.Errorf("OperatorCOO: term %d: %w", n, err)
		}
		if err = b.AddCOO(tensor(t.Factors, numberSites), t.Coefficient); err != nil {
			return nil, fmt.Errorf("OperatorCOO: term %d: %w", n, err)
		}
	}
	out := b.Finalize()
	o.logger.Debug("matrix: operator generated",
		slog.Int("sites", numberSites),
		slog.Int("dimension", d),
		slog.Int("terms", len(terms)),
		slog.Int("nnz", out.NNZ()),
	)

	return out, nil
}

// SuperoperatorCOO returns the Liouvillian of the given Hamiltonian terms and
// noise entries as a 4^N × 4^N sparse matrix.
func SuperoperatorCOO(hamiltonian []LocalTerm, noise []NoiseTerm, numberSites int, opts ...Option) (*COO, error) {
	o := gatherOptions(opts...)
	d, err := dimension(numberSites, o.maxDimension)
	if err != nil {
		return nil, fmt.Errorf("SuperoperatorCOO: %w", err)
	}
	if d > o.maxDimension/d {
		return nil, fmt.Errorf("SuperoperatorCOO: %d sites: %w", numberSites, ErrDimensionTooLarge)
	}
	id, err := IdentityCOO(d)
	if err != nil {
		return nil, err
	}
	b, err := NewBuilder(d*d, d*d, opts...)
	if err != nil {
		return nil, err
	}

	// Coherent part: -i(H⊗I - I⊗Hᵀ).
	if len(hamiltonian) > 0 {
		h, err := OperatorCOO(hamiltonian, numberSites, opts...)
		if err != nil {
			return nil, fmt.Errorf("SuperoperatorCOO: %w", err)
		}
		if err = b.AddCOO(KronCOO(h, id), -1i); err != nil {
			return nil, err
		}
		if err = b.AddCOO(KronCOO(id, h.Transpose()), 1i); err != nil {
			return nil, err
		}
	}

	// Dissipative part, entry by entry.
	for n, t := range noise {
		if err = validateFactors(t.Left, numberSites); err != nil {
			return nil, fmt.Errorf("SuperoperatorCOO: noise %d: %w", n, err)
		}
		if err = validateFactors(t.Right, numberSites); err != nil {
			return nil, fmt.Errorf("SuperoperatorCOO: noise %d: %w", n, err)
		}
		left := tensor(t.Left, numberSites)
		right := tensor(t.Right, numberSites)
		if err = b.AddCOO(KronCOO(left, right.Conj()), t.Rate); err != nil {
			return nil, err
		}

		// L_k†L_j factorizes site by site.
		prod, err := adjointProductFactors(t.Right, t.Left)
		if err != nil {
			return nil, fmt.Errorf("SuperoperatorCOO: noise %d: %w", n, err)
		}
		m := tensor(prod, numberSites)
		if err = b.AddCOO(KronCOO(m, id), -0.5*t.Rate); err != nil {
			return nil, err
		}
		if err = b.AddCOO(KronCOO(id, m.Transpose()), -0.5*t.Rate); err != nil {
			return nil, err
		}
	}

	out := b.Finalize()
	o.logger.Debug("matrix: superoperator generated",
		slog.Int("sites", numberSites),
		slog.Int("dimension", d*d),
		slog.Int("hamiltonian_terms", len(hamiltonian)),
		slog.Int("noise_terms", len(noise)),
		slog.Int("nnz", out.NNZ()),
	)

	return out, nil
}

// adjointProductFactors returns the site factors of right† · left.
func adjointProductFactors(right, left SiteFactors) (SiteFactors, error) {
	sites := make(map[int]struct{}, len(right)+len(left))
	for s := range right {
		sites[s] = struct{}{}
	}
	for s := range left {
		sites[s] = struct{}{}
	}
	ordered := make([]int, 0, len(sites))
	for s := range sites {
		ordered = append(ordered, s)
	}
	sort.Ints(ordered)

	out := make(SiteFactors, len(ordered))
	for _, s := range ordered {
		r, ok := right[s]
		if !ok {
			r = identity2
		}
		l, ok := left[s]
		if !ok {
			l = identity2
		}
		p, err := Mul(r.Adjoint(), l)
		if err != nil {
			return nil, err
		}
		out[s] = p
	}

	return out, nil
}
