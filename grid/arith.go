// SPDX-License-Identifier: MIT
// Package grid provides matrix equality, scalar scaling, matrix-vector and
// matrix-matrix arithmetic over SquareGrid values.
//
// Purpose:
//   - Express every kernel in terms of the row sequences and the sequence
//     arithmetic (Add/Sub/Scale/Dot) wherever a row-wise formulation exists.
//   - Never mutate operands; every result is freshly allocated.
//
// Determinism:
//   - Fixed loop orders (i→j→k for Mul, i for row-wise kernels).

package grid

import "github.com/katalvlaran/dynvec/sequence"

// Equal reports whether a and b have the same order and pairwise equal rows.
// Rows are compared by value via sequence.Equal, never by identity.
func Equal[T comparable](a, b *SquareGrid[T]) bool {
	if a.Order() != b.Order() {
		return false
	}
	for i := 0; i < a.Order(); i++ {
		if !sequence.Equal(a.rows.Get(i), b.rows.Get(i)) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *SquareGrid[T]) bool {
	return !Equal(a, b)
}

// mapRows builds a grid whose row i is f(row i of g). The row container keeps
// g's policy.
func (g *SquareGrid[T]) mapRows(f func(i int, row *sequence.Sequence[T]) (*sequence.Sequence[T], error)) (*SquareGrid[T], error) {
	rows := g.rows.Clone()
	for i := 0; i < rows.Size(); i++ {
		row, err := f(i, g.rows.Get(i))
		if err != nil {
			return nil, err
		}
		rows.Set(i, row)
	}

	return &SquareGrid[T]{rows: rows}, nil
}

// Scale returns a grid with every element multiplied by v. g is unchanged.
func Scale[T sequence.Number](g *SquareGrid[T], v T) *SquareGrid[T] {
	out, _ := g.mapRows(func(_ int, row *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
		return sequence.Scale(row, v), nil
	})

	return out
}

// MulVec returns y with y[i] = Dot(row i, v). y takes the policy of g.
//
// Errors:
//   - ErrSizeMismatch when v.Size() != g.Order() (or a row was replaced with
//     a wrong-length one).
//
// Complexity:
//   - Time O(order²), Space O(order).
func MulVec[T sequence.Number](g *SquareGrid[T], v *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
	n := g.Order()
	if v.Size() != n {
		return nil, gridErrorf(opMulVec, ErrSizeMismatch)
	}
	out, err := sequence.New[T](n, sequence.WithOptions(g.Options()))
	if err != nil {
		return nil, gridErrorf(opMulVec, err)
	}
	for i := 0; i < n; i++ {
		d, err := sequence.Dot(g.rows.Get(i), v)
		if err != nil {
			return nil, rowErrorf(opMulVec, i, err)
		}
		out.Set(i, d)
	}

	return out, nil
}

// addSub combines a and b row by row with the sequence kernel f.
func addSub[T sequence.Number](a, b *SquareGrid[T], op string,
	f func(x, y *sequence.Sequence[T]) (*sequence.Sequence[T], error),
) (*SquareGrid[T], error) {
	if a.Order() != b.Order() {
		return nil, gridErrorf(op, ErrSizeMismatch)
	}

	return a.mapRows(func(i int, row *sequence.Sequence[T]) (*sequence.Sequence[T], error) {
		res, err := f(row, b.rows.Get(i))
		if err != nil {
			return nil, rowErrorf(op, i, err)
		}

		return res, nil
	})
}

// Add returns the elementwise sum a + b.
//
// Errors:
//   - ErrSizeMismatch when the orders differ.
func Add[T sequence.Number](a, b *SquareGrid[T]) (*SquareGrid[T], error) {
	return addSub(a, b, opAdd, sequence.Add[T])
}

// Sub returns the elementwise difference a - b.
//
// Errors:
//   - ErrSizeMismatch when the orders differ.
func Sub[T sequence.Number](a, b *SquareGrid[T]) (*SquareGrid[T], error) {
	return addSub(a, b, opSub, sequence.Sub[T])
}

// Mul computes the matrix product C = A × B with the i→j→k triple loop.
// The accumulator is reset to T's zero value for every (i, j).
//
// Errors:
//   - ErrSizeMismatch when the orders differ.
//
// Complexity:
//   - Time O(order³), Space O(order²).
//
// Notes:
//   - Rows are read through their backing slices; a row shortened via SetRow
//     panics here with a runtime index error.
func Mul[T sequence.Number](a, b *SquareGrid[T]) (*SquareGrid[T], error) {
	n := a.Order()
	if n != b.Order() {
		return nil, gridErrorf(opMul, ErrSizeMismatch)
	}
	res, err := New[T](n, sequence.WithOptions(a.Options()))
	if err != nil {
		return nil, gridErrorf(opMul, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		ar := a.rows.Get(i).Data()
		out := res.rows.Get(i).Data()
		for j = 0; j < n; j++ {
			var acc T
			for k = 0; k < n; k++ {
				acc += ar[k] * b.rows.Get(k).Data()[j]
			}
			out[j] = acc
		}
	}

	return res, nil
}
