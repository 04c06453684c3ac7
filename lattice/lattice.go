// SPDX-License-Identifier: MIT

package lattice

import "fmt"

const (
	methodChain    = "Chain"
	methodRing     = "Ring"
	methodGrid     = "Grid"
	methodTorus    = "Torus"
	methodStar     = "Star"
	methodComplete = "Complete"
)

// Minimum sizes per constructor.
const (
	MinChainSites    = 1
	MinRingSites     = 3
	MinGridDim       = 1
	MinTorusDim      = 3
	MinStarSites     = 2
	MinCompleteSites = 1
)

// Bond couples sites I < J with a weight.
type Bond struct {
	I, J   int
	Weight float64
}

// Lattice is a site count and its ordered bonds.
type Lattice struct {
	Sites int
	Bonds []Bond
}

// Degree returns the number of bonds touching each site.
func (l Lattice) Degree() []int {
	deg := make([]int, l.Sites)
	for _, b := range l.Bonds {
		deg[b.I]++
		deg[b.J]++
	}

	return deg
}

// Constructor emits the bonds of one geometry through add.
type Constructor struct {
	method string
	sites  int
	err    error
	emit   func(add func(i, j int))
}

// Build resolves c with opts into a Lattice.
func Build(c Constructor, opts ...Option) (Lattice, error) {
	if c.err != nil {
		return Lattice{}, c.err
	}
	cfg := newConfig(opts...)
	if cfg.stochastic && cfg.rng == nil {
		return Lattice{}, fmt.Errorf("%s: %w", c.method, ErrNeedRandSource)
	}
	l := Lattice{Sites: c.sites}
	c.emit(func(i, j int) {
		if i > j {
			i, j = j, i
		}
		l.Bonds = append(l.Bonds, Bond{I: i, J: j, Weight: cfg.weightFn(cfg.rng)})
	})

	return l, nil
}

func tooFew(method string, got, limit int) Constructor {
	return Constructor{
		method: method,
		err:    fmt.Errorf("%s: n=%d < min=%d: %w", method, got, limit, ErrTooFewSites),
	}
}

// Chain is the open 1D chain 0-1-…-(n-1).
func Chain(n int) Constructor {
	if n < MinChainSites {
		return tooFew(methodChain, n, MinChainSites)
	}

	return Constructor{method: methodChain, sites: n, emit: func(add func(i, j int)) {
		for i := 0; i+1 < n; i++ {
			add(i, i+1)
		}
	}}
}

// Ring is the periodic chain; the closing bond (n-1, 0) comes last.
func Ring(n int) Constructor {
	if n < MinRingSites {
		return tooFew(methodRing, n, MinRingSites)
	}

	return Constructor{method: methodRing, sites: n, emit: func(add func(i, j int)) {
		for i := 0; i < n; i++ {
			add(i, (i+1)%n)
		}
	}}
}

// Grid is the open rows×cols square lattice, sites numbered row-major.
// Each site emits its right then its bottom bond.
func Grid(rows, cols int) Constructor {
	if rows < MinGridDim || cols < MinGridDim {
		return tooFew(methodGrid, min(rows, cols), MinGridDim)
	}

	return Constructor{method: methodGrid, sites: rows * cols, emit: func(add func(i, j int)) {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					add(r*cols+c, r*cols+c+1)
				}
				if r+1 < rows {
					add(r*cols+c, (r+1)*cols+c)
				}
			}
		}
	}}
}

// Torus is Grid with periodic boundaries in both directions.
func Torus(rows, cols int) Constructor {
	if rows < MinTorusDim || cols < MinTorusDim {
		return tooFew(methodTorus, min(rows, cols), MinTorusDim)
	}

	return Constructor{method: methodTorus, sites: rows * cols, emit: func(add func(i, j int)) {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				add(r*cols+c, r*cols+(c+1)%cols)
				add(r*cols+c, ((r+1)%rows)*cols+c)
			}
		}
	}}
}

// Star couples site 0 to every other site.
func Star(n int) Constructor {
	if n < MinStarSites {
		return tooFew(methodStar, n, MinStarSites)
	}

	return Constructor{method: methodStar, sites: n, emit: func(add func(i, j int)) {
		for i := 1; i < n; i++ {
			add(0, i)
		}
	}}
}

// Complete couples every pair i < j.
func Complete(n int) Constructor {
	if n < MinCompleteSites {
		return tooFew(methodComplete, n, MinCompleteSites)
	}

	return Constructor{method: methodComplete, sites: n, emit: func(add func(i, j int)) {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				add(i, j)
			}
		}
	}}
}
