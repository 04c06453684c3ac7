// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"
	"sort"
)

// Product is the contract of a canonical operator product of one family.
// Implementations are immutable values whose String form is their identity.
type Product[P any] interface {
	fmt.Stringer

	// IsIdentity reports the empty product.
	IsIdentity() bool

	// HermitianConjugate returns (Q, phase) with P† = phase * Q.
	HermitianConjugate() (P, complex128)

	// Multiply returns the canonical expansion of P * other as scaled
	// products. Vanishing contributions are omitted.
	Multiply(other P) []Scaled[P]

	// RemapModes relabels indices and returns (Q, phase) with
	// relabel(P) = phase * Q.
	RemapModes(mapping map[int]int) (P, complex128, error)
}

// HermitianProduct is the canonical representative of a term and its
// conjugate. It stands for v*P + conj(v)*P†, or just v*P when self-adjoint.
type HermitianProduct[P any] interface {
	fmt.Stringer

	// IsSelfAdjoint reports P == P†.
	IsSelfAdjoint() bool

	// Product returns the representative P.
	Product() P
}

// Lift maps an arbitrary product onto its Hermitian representative.
// When conjugated is false, p = phase * h.Product(); otherwise
// p† = phase * h.Product().
type Lift[H any, P any] func(p P) (h H, phase complex128, conjugated bool)

// Scaled is a product with a numeric factor.
type Scaled[P any] struct {
	Product P
	Factor  complex128
}

// Arity is the number of subsystems per family a container holds.
type Arity struct {
	Spins    int
	Bosons   int
	Fermions int
}

// String renders "(spins, bosons, fermions)".
func (a Arity) String() string {
	return fmt.Sprintf("(%d, %d, %d)", a.Spins, a.Bosons, a.Fermions)
}

// Common single-family arities.
var (
	SpinArity    = Arity{Spins: 1}
	BosonArity   = Arity{Bosons: 1}
	FermionArity = Arity{Fermions: 1}
)

// checkArity compares two declared arities.
func checkArity(tag string, a, b Arity) error {
	if a != b {
		return fmt.Errorf("%s: %v vs %v: %w", tag, a, b, ErrMismatchedSubsystemCount)
	}

	return nil
}

// ValidateIndices rejects negative indices.
func ValidateIndices(indices []int) error {
	for _, i := range indices {
		if i < 0 {
			return fmt.Errorf("index %d: %w", i, ErrInvalidIndexOrder)
		}
	}

	return nil
}

// RemapIndices applies mapping to indices (unmapped indices stay).
// Distinct inputs must stay distinct, otherwise ErrInvalidIndexOrder.
// The output keeps the input order; callers re-canonicalize.
func RemapIndices(mapping map[int]int, indices []int) ([]int, error) {
	out := make([]int, len(indices))
	seen := make(map[int]int, len(indices)) // image -> preimage
	for n, i := range indices {
		j, ok := mapping[i]
		if !ok {
			j = i
		}
		if j < 0 {
			return nil, fmt.Errorf("RemapIndices: %d -> %d: %w", i, j, ErrInvalidIndexOrder)
		}
		if pre, dup := seen[j]; dup && pre != i {
			return nil, fmt.Errorf("RemapIndices: %d and %d both map to %d: %w", pre, i, j, ErrInvalidIndexOrder)
		}
		seen[j] = i
		out[n] = j
	}

	return out, nil
}

// SortedCopy returns an ascending copy of indices.
func SortedCopy(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Ints(out)

	return out
}
