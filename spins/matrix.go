// SPDX-License-Identifier: MIT

package spins

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/matrix"
	"github.com/katalvlaran/struqture/sum"
)

// SparseMatrixCOO returns the 2^N × 2^N matrix of a spin product or a spin
// operator container, with site N-1 the most significant factor.
//
// Errors:
//   - sum.ErrUnsupportedMatrixRepresentation for non-spin objects and noise;
//   - sum.ErrDimensionTooSmall when numberSpins is below CurrentNumberSpins;
//   - coefficient.ErrSymbolic for unresolved symbolic coefficients;
//   - matrix errors (e.g. matrix.ErrDimensionTooLarge).
func SparseMatrixCOO(obj any, numberSpins int, opts ...matrix.Option) (*matrix.COO, error) {
	var (
		terms []matrix.LocalTerm
		err   error
	)
	switch v := obj.(type) {
	case PauliProduct:
		terms = []matrix.LocalTerm{{Factors: v.Factors(), Coefficient: 1}}
	case DecoherenceProduct:
		terms = []matrix.LocalTerm{{Factors: v.Factors(), Coefficient: 1}}
	case PlusMinusProduct:
		terms = []matrix.LocalTerm{{Factors: v.Factors(), Coefficient: 1}}
	case *SpinOperator:
		terms, err = localTerms(v.Terms(), PauliProduct.Factors)
	case *SpinHamiltonian:
		terms, err = localTerms(v.Terms(), PauliProduct.Factors)
	case *DecoherenceOperator:
		terms, err = localTerms(v.Terms(), DecoherenceProduct.Factors)
	case *PlusMinusOperator:
		terms, err = localTerms(v.Terms(), PlusMinusProduct.Factors)
	default:
		return nil, fmt.Errorf("SparseMatrixCOO(%T): %w", obj, sum.ErrUnsupportedMatrixRepresentation)
	}
	if err != nil {
		return nil, fmt.Errorf("SparseMatrixCOO: %w", err)
	}
	if err = checkSize(obj, numberSpins); err != nil {
		return nil, fmt.Errorf("SparseMatrixCOO: %w", err)
	}

	return matrix.OperatorCOO(terms, numberSpins, opts...)
}

// SuperoperatorCOO returns the 4^N × 4^N Liouvillian acting on the
// row-major flattened density matrix. Accepted inputs are a SpinHamiltonian
// (coherent part only), a SpinLindbladNoiseOperator or a
// PlusMinusLindbladNoiseOperator (dissipator only) and a
// SpinLindbladOpenSystem (both). Errors follow SparseMatrixCOO.
func SuperoperatorCOO(obj any, numberSpins int, opts ...matrix.Option) (*matrix.COO, error) {
	var (
		ham   []matrix.LocalTerm
		noise []matrix.NoiseTerm
		err   error
	)
	switch v := obj.(type) {
	case *SpinHamiltonian:
		ham, err = localTerms(v.Terms(), PauliProduct.Factors)
	case *SpinLindbladNoiseOperator:
		noise, err = noiseTerms(v.Terms(), DecoherenceProduct.Factors)
	case *PlusMinusLindbladNoiseOperator:
		noise, err = noiseTerms(v.Terms(), PlusMinusProduct.Factors)
	case *SpinLindbladOpenSystem:
		if ham, err = localTerms(v.System().Terms(), PauliProduct.Factors); err == nil {
			noise, err = noiseTerms(v.Noise().Terms(), DecoherenceProduct.Factors)
		}
	default:
		return nil, fmt.Errorf("SuperoperatorCOO(%T): %w", obj, sum.ErrUnsupportedMatrixRepresentation)
	}
	if err != nil {
		return nil, fmt.Errorf("SuperoperatorCOO: %w", err)
	}
	if err = checkSize(obj, numberSpins); err != nil {
		return nil, fmt.Errorf("SuperoperatorCOO: %w", err)
	}

	return matrix.SuperoperatorCOO(ham, noise, numberSpins, opts...)
}

func checkSize(obj any, numberSpins int) error {
	need, err := CurrentNumberSpins(obj)
	if err != nil {
		return err
	}
	if numberSpins < need {
		return fmt.Errorf("%d spins requested, %d referenced: %w", numberSpins, need, sum.ErrDimensionTooSmall)
	}

	return nil
}

// localTerms resolves numeric coefficients of an operator-like container.
func localTerms[K any](terms []sum.Term[K], factors func(K) matrix.SiteFactors) ([]matrix.LocalTerm, error) {
	out := make([]matrix.LocalTerm, 0, len(terms))
	for _, t := range terms {
		c, err := numeric(t.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, matrix.LocalTerm{Factors: factors(t.Key), Coefficient: c})
	}

	return out, nil
}

func noiseTerms[K fmt.Stringer](terms []sum.Term[sum.Pair[K]], factors func(K) matrix.SiteFactors) ([]matrix.NoiseTerm, error) {
	out := make([]matrix.NoiseTerm, 0, len(terms))
	for _, t := range terms {
		c, err := numeric(t.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, matrix.NoiseTerm{
			Left:  factors(t.Key.Left),
			Right: factors(t.Key.Right),
			Rate:  c,
		})
	}

	return out, nil
}

func numeric(v coefficient.Complex) (complex128, error) {
	c, err := v.Complex128()
	if err != nil {
		return 0, fmt.Errorf("coefficient %s: %w", v, err)
	}

	return c, nil
}
