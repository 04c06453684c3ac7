// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
)

// OpenSystem pairs exactly one Hamiltonian with one Noise operator of the
// same arity: a full Lindblad master equation.
type OpenSystem[H HermitianProduct[P], P Product[P], D Product[D]] struct {
	system *Hamiltonian[H, P]
	noise  *Noise[D]
}

// NewOpenSystem combines system and noise; their arities must agree.
// Both parts are owned by the returned value afterwards.
func NewOpenSystem[H HermitianProduct[P], P Product[P], D Product[D]](
	system *Hamiltonian[H, P],
	noise *Noise[D],
) (*OpenSystem[H, P, D], error) {
	if err := checkArity("NewOpenSystem", system.arity, noise.arity); err != nil {
		return nil, err
	}

	return &OpenSystem[H, P, D]{system: system, noise: noise}, nil
}

// System returns the coherent part.
func (s *OpenSystem[H, P, D]) System() *Hamiltonian[H, P] { return s.system }

// Noise returns the dissipative part.
func (s *OpenSystem[H, P, D]) Noise() *Noise[D] { return s.noise }

// Arity returns the shared subsystem counts.
func (s *OpenSystem[H, P, D]) Arity() Arity { return s.system.arity }

// Clone returns an independent copy.
func (s *OpenSystem[H, P, D]) Clone() *OpenSystem[H, P, D] {
	return &OpenSystem[H, P, D]{system: s.system.Clone(), noise: s.noise.Clone()}
}

// Equal compares both parts.
func (s *OpenSystem[H, P, D]) Equal(o *OpenSystem[H, P, D]) bool {
	return s.system.Equal(o.system) && s.noise.Equal(o.noise)
}

// String renders both parts.
func (s *OpenSystem[H, P, D]) String() string {
	return fmt.Sprintf("system: %s, noise: %s", s.system, s.noise)
}

// Add returns s + o, part by part.
func (s *OpenSystem[H, P, D]) Add(o *OpenSystem[H, P, D]) (*OpenSystem[H, P, D], error) {
	system, err := s.system.Add(o.system)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.Add: %w", err)
	}
	noise, err := s.noise.Add(o.noise)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.Add: %w", err)
	}

	return &OpenSystem[H, P, D]{system: system, noise: noise}, nil
}

// Sub returns s - o, part by part.
func (s *OpenSystem[H, P, D]) Sub(o *OpenSystem[H, P, D]) (*OpenSystem[H, P, D], error) {
	system, err := s.system.Sub(o.system)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.Sub: %w", err)
	}
	noise, err := s.noise.Sub(o.noise)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.Sub: %w", err)
	}

	return &OpenSystem[H, P, D]{system: system, noise: noise}, nil
}

// ScaleReal scales both parts by the real f.
func (s *OpenSystem[H, P, D]) ScaleReal(f coefficient.Float) *OpenSystem[H, P, D] {
	return &OpenSystem[H, P, D]{
		system: s.system.ScaleReal(f),
		noise:  s.noise.Scale(coefficient.FromReal(f)),
	}
}

// RemapModes relabels both parts.
func (s *OpenSystem[H, P, D]) RemapModes(mapping map[int]int) (*OpenSystem[H, P, D], error) {
	system, err := s.system.RemapModes(mapping)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.RemapModes: %w", err)
	}
	noise, err := s.noise.RemapModes(mapping)
	if err != nil {
		return nil, fmt.Errorf("OpenSystem.RemapModes: %w", err)
	}

	return &OpenSystem[H, P, D]{system: system, noise: noise}, nil
}

// Truncate drops small numeric terms from both parts.
func (s *OpenSystem[H, P, D]) Truncate(threshold float64) *OpenSystem[H, P, D] {
	return &OpenSystem[H, P, D]{system: s.system.Truncate(threshold), noise: s.noise.Truncate(threshold)}
}

// SubstituteParameters resolves symbolic coefficients in both parts.
func (s *OpenSystem[H, P, D]) SubstituteParameters(calc *coefficient.Calculator) (*OpenSystem[H, P, D], error) {
	system, err := s.system.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}
	noise, err := s.noise.SubstituteParameters(calc)
	if err != nil {
		return nil, err
	}

	return &OpenSystem[H, P, D]{system: system, noise: noise}, nil
}
