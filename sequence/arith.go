// SPDX-License-Identifier: MIT
// Package sequence provides elementwise and scalar arithmetic, dot product
// and equality over Sequence values.
//
// Purpose:
//   - Keep every operator non-mutating: operands are read, a fresh result is allocated.
//   - Fail fast with ErrSizeMismatch on incompatible operands.
//
// Notes:
//   - Arithmetic is expressed through the element type's own operators; there is
//     no promotion. A Sequence[int] scaled by an int stays integral.
//   - Results inherit the left operand's access policy.

package sequence

import "golang.org/x/exp/constraints"

// Number is the set of element types that support +, -, * natively.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Equal reports whether a and b have the same length and pairwise equal
// elements under T's ==. Never fails.
// Complexity: O(n), early exit on first difference.
func Equal[T comparable](a, b *Sequence[T]) bool {
	if a.n != b.n {
		return false
	}
	for i := 0; i < a.n; i++ {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Sequence[T]) bool {
	return !Equal(a, b)
}

// mapScalar builds out[i] = f(s[i], v) into a fresh sequence.
func mapScalar[T Number](s *Sequence[T], v T, f func(x, v T) T) *Sequence[T] {
	out := &Sequence[T]{n: s.n, opts: s.opts}
	if s.n == 0 {
		return out
	}
	out.data = make([]T, s.n)
	for i := 0; i < s.n; i++ {
		out.data[i] = f(s.data[i], v)
	}

	return out
}

// AddScalar returns s[i] + v for every i. s is unchanged.
func AddScalar[T Number](s *Sequence[T], v T) *Sequence[T] {
	return mapScalar(s, v, func(x, v T) T { return x + v })
}

// SubScalar returns s[i] - v for every i. s is unchanged.
func SubScalar[T Number](s *Sequence[T], v T) *Sequence[T] {
	return mapScalar(s, v, func(x, v T) T { return x - v })
}

// Scale returns v * s[i] for every i. s is unchanged.
func Scale[T Number](s *Sequence[T], v T) *Sequence[T] {
	return mapScalar(s, v, func(x, v T) T { return v * x })
}

// addSub computes out = a + sign(b) elementwise; shared by Add and Sub.
func addSub[T Number](a, b *Sequence[T], sub bool, op string) (*Sequence[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, seqErrorf(op, err)
	}
	out := &Sequence[T]{n: a.n, opts: a.opts}
	if a.n == 0 {
		return out, nil
	}
	out.data = make([]T, a.n)
	if sub {
		for i := 0; i < a.n; i++ {
			out.data[i] = a.data[i] - b.data[i]
		}
	} else {
		for i := 0; i < a.n; i++ {
			out.data[i] = a.data[i] + b.data[i]
		}
	}

	return out, nil
}

// Add returns the elementwise sum a + b.
//
// Errors:
//   - ErrSizeMismatch when a.Size() != b.Size().
//
// Complexity:
//   - Time O(n), Space O(n).
func Add[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns the elementwise difference a - b.
//
// Errors:
//   - ErrSizeMismatch when a.Size() != b.Size().
func Sub[T Number](a, b *Sequence[T]) (*Sequence[T], error) {
	return addSub(a, b, true, opSub)
}

// Dot returns Σ a[i]*b[i]. The accumulator starts at T's zero value.
//
// Errors:
//   - ErrSizeMismatch when a.Size() != b.Size().
func Dot[T Number](a, b *Sequence[T]) (T, error) {
	var acc T
	if err := ValidateSameSize(a, b); err != nil {
		return acc, seqErrorf(opDot, err)
	}
	for i := 0; i < a.n; i++ {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}
