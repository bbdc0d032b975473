// SPDX-License-Identifier: MIT
// Package grid: convenience constructors and shape helpers built on New.

package grid

import "github.com/katalvlaran/dynvec/sequence"

// Identity returns the order×order identity: ones on the diagonal, zeros
// elsewhere. Useful as the neutral element of Mul.
// Complexity: O(order²) zeroing + O(order) diagonal writes.
func Identity[T sequence.Number](order int, opts ...sequence.Option) (*SquareGrid[T], error) {
	id, err := New[T](order, opts...) // propagate constructor errors unchanged
	if err != nil {
		return nil, err
	}
	for i := 0; i < order; i++ {
		id.Set(i, i, 1)
	}

	return id, nil
}

// ZerosLike returns a zero grid with the order and policy of g.
func ZerosLike[T any](g *SquareGrid[T]) (*SquareGrid[T], error) {
	return New[T](g.Order(), sequence.WithOptions(g.Options()))
}

// Transpose returns a new grid with rows and columns swapped. g is unchanged.
// Complexity: O(order²).
func Transpose[T any](g *SquareGrid[T]) (*SquareGrid[T], error) {
	out, err := ZerosLike(g)
	if err != nil {
		return nil, err
	}
	n := g.Order()
	for i := 0; i < n; i++ {
		row := g.rows.Get(i).Data()
		for j := 0; j < n; j++ {
			out.rows.Get(j).Set(i, row[j])
		}
	}

	return out, nil
}
