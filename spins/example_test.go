// SPDX-License-Identifier: MIT

package spins_test

import (
	"fmt"

	"github.com/katalvlaran/struqture/coefficient"
	"github.com/katalvlaran/struqture/spins"
)

func ExamplePauliProduct_Multiply() {
	a, _ := spins.ParsePauliProduct("0X1Z")
	b, _ := spins.ParsePauliProduct("0Y")
	for _, s := range a.Multiply(b) {
		fmt.Println(s.Product, s.Factor)
	}
	// Output: 0Z1Z (0+1i)
}

func ExampleSparseMatrixCOO() {
	h := spins.NewSpinHamiltonian()
	z, _ := spins.ParsePauliProduct("0Z")
	_ = h.Set(z, coefficient.FromFloat(0.5))

	m, _ := spins.SparseMatrixCOO(h, 1)
	for _, e := range m.Entries() {
		fmt.Println(e.Row, e.Col, e.Value)
	}
	// Output:
	// 0 0 (0.5+0i)
	// 1 1 (-0.5+0i)
}
