// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.

package grid_test

import (
	"testing"

	"github.com/katalvlaran/dynvec/grid"
	"github.com/katalvlaran/dynvec/sequence"
)

// mustGrid allocates an order×order zero grid or fails the test.
func mustGrid[T any](t testing.TB, order int, opts ...sequence.Option) *grid.SquareGrid[T] {
	t.Helper()
	g, err := grid.New[T](order, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", order, err)
	}

	return g
}

// gridOf builds a grid from literal rows or fails the test.
func gridOf[T any](t testing.TB, rows ...[]T) *grid.SquareGrid[T] {
	t.Helper()
	g, err := grid.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return g
}

// vec builds a sequence or fails the test.
func vec[T any](t testing.TB, vals ...T) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.FromSlice(vals)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", vals, err)
	}

	return s
}

// ramp returns 0, k, 2k, ..., (n-1)k.
func ramp(t testing.TB, n, k int) *sequence.Sequence[int] {
	t.Helper()
	s, err := sequence.New[int](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}
	for i := 0; i < n; i++ {
		s.Set(i, k*i)
	}

	return s
}

// fillRows sets every row of g to a copy of row.
func fillRows[T any](g *grid.SquareGrid[T], row *sequence.Sequence[T]) {
	for i := 0; i < g.Order(); i++ {
		g.SetRow(i, row)
	}
}

// transposedProduct is an independent reference for a*b: it transposes b
// first and accumulates row·row dot products.
func transposedProduct(a, b [][]int) [][]int {
	n := len(a)
	bt := make([][]int, n)
	for i := range bt {
		bt[i] = make([]int, n)
		for j := range bt[i] {
			bt[i][j] = b[j][i]
		}
	}
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * bt[j][k]
			}
		}
	}

	return out
}
