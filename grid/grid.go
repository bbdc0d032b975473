// SPDX-License-Identifier: MIT

// Package grid - square matrix storage as a sequence of row sequences.
//
// Purpose:
//   - Compose a SquareGrid from a *sequence.Sequence whose elements are the
//     row sequences; no embedding, every operation is declared here.
//   - Reuse the sequence lifecycle (deep copy, move, swap) one level up.
//
// Shape contract:
//   - New and FromRows establish order×order. SetRow copies the given row but
//     does not re-check its length: a wrong-length row is a caller bug and makes
//     later shape-dependent calls panic or return wrong results.
//
// Complexity quicksheet:
//   - New/Clone/Assign: O(n²); Move/MoveFrom/Swap: O(1); Row/At: O(1).

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dynvec/sequence"
)

// MaxOrder is the exclusive ceiling for a grid order.
const MaxOrder = 10_000

// SquareGrid is an order×order matrix of T held as rows of sequences.
type SquareGrid[T any] struct {
	rows *sequence.Sequence[*sequence.Sequence[T]] // owned; each row owned too
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*SquareGrid[int])(nil)

// New allocates an order×order grid of zero values.
// Options are applied to the row container and to every row, so the checked
// window of At matches the checked window of each row.
//
// Errors:
//   - ErrInvalidSize  (order <= 0).
//   - ErrSizeTooLarge (order >= MaxOrder).
//
// Complexity:
//   - Time O(order²), Space O(order²).
func New[T any](order int, opts ...sequence.Option) (*SquareGrid[T], error) {
	if err := sequence.ValidateBounded(order, MaxOrder); err != nil {
		return nil, gridErrorf(opNew, err)
	}
	rows, err := sequence.New[*sequence.Sequence[T]](order, opts...)
	if err != nil {
		return nil, gridErrorf(opNew, err)
	}
	for i := 0; i < order; i++ {
		row, err := sequence.New[T](order, opts...)
		if err != nil {
			return nil, gridErrorf(opNew, err)
		}
		rows.Set(i, row)
	}

	return &SquareGrid[T]{rows: rows}, nil
}

// FromRows builds a grid from a square [][]T, copying every value.
//
// Errors:
//   - ErrInvalidSize / ErrSizeTooLarge on the outer length.
//   - ErrSizeMismatch when any row length differs from len(rows).
func FromRows[T any](rows [][]T, opts ...sequence.Option) (*SquareGrid[T], error) {
	n := len(rows)
	if err := sequence.ValidateBounded(n, MaxOrder); err != nil {
		return nil, gridErrorf(opFromRows, err)
	}
	for i := range rows {
		if len(rows[i]) != n {
			return nil, rowErrorf(opFromRows, i, ErrSizeMismatch)
		}
	}
	g, err := New[T](n, opts...)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		copy(g.rows.Get(i).Data(), rows[i])
	}

	return g, nil
}

// Order returns the row (= column) count; 0 after being moved from.
func (g *SquareGrid[T]) Order() int { return g.rows.Size() }

// Size is an alias of Order.
func (g *SquareGrid[T]) Size() int { return g.rows.Size() }

// Options returns the policy of the row container.
func (g *SquareGrid[T]) Options() sequence.Options { return g.rows.Options() }

// Row returns row i without validation (unchecked fast path). The returned
// sequence is owned by g; mutating it mutates g.
func (g *SquareGrid[T]) Row(i int) *sequence.Sequence[T] { return g.rows.Get(i) }

// SetRow replaces row i with a deep copy of row (unchecked on i).
// The length of row is NOT validated against Order().
func (g *SquareGrid[T]) SetRow(i int, row *sequence.Sequence[T]) {
	g.rows.Get(i).Assign(row)
}

// At returns row i using the row container's checked window.
// With default options At(0) fails with ErrIndexOutOfRange.
func (g *SquareGrid[T]) At(i int) (*sequence.Sequence[T], error) {
	row, err := g.rows.At(i)
	if err != nil {
		return nil, gridErrorf(opAt, err)
	}

	return row, nil
}

// Get returns the element at (i, j) without validation.
func (g *SquareGrid[T]) Get(i, j int) T { return g.rows.Get(i).Get(j) }

// Set stores v at (i, j) without validation.
func (g *SquareGrid[T]) Set(i, j int, v T) { g.rows.Get(i).Set(j, v) }

// cloneRows deep-copies the row container and every row.
func (g *SquareGrid[T]) cloneRows() *sequence.Sequence[*sequence.Sequence[T]] {
	rows := g.rows.Clone()
	for i := 0; i < rows.Size(); i++ {
		rows.Set(i, rows.Get(i).Clone())
	}

	return rows
}

// Clone returns a deep copy: new row container and new rows.
func (g *SquareGrid[T]) Clone() *SquareGrid[T] {
	return &SquareGrid[T]{rows: g.cloneRows()}
}

// Assign replaces every row of g with a deep copy of src's rows in one step.
// The order of g follows src. Assigning g to itself is a no-op.
func (g *SquareGrid[T]) Assign(src *SquareGrid[T]) {
	if g == src {
		return
	}
	g.rows = src.cloneRows()
}

// Move transfers all rows into a new grid and leaves g with order 0.
func (g *SquareGrid[T]) Move() *SquareGrid[T] {
	return &SquareGrid[T]{rows: g.rows.Move()}
}

// MoveFrom takes ownership of src's rows and empties src. No-op on itself.
func (g *SquareGrid[T]) MoveFrom(src *SquareGrid[T]) {
	if g == src {
		return
	}
	g.rows.MoveFrom(src.rows)
}

// Swap exchanges the rows of a and b in O(1).
func Swap[T any](a, b *SquareGrid[T]) {
	sequence.Swap(a.rows, b.rows)
}

// ToRows copies the grid into a freshly allocated [][]T.
func (g *SquareGrid[T]) ToRows() [][]T {
	out := make([][]T, g.Order())
	for i := range out {
		src := g.rows.Get(i).Data()
		out[i] = make([]T, len(src))
		copy(out[i], src)
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line.
func (g *SquareGrid[T]) String() string {
	var sb strings.Builder
	for i := 0; i < g.Order(); i++ {
		sb.WriteString(g.rows.Get(i).String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
