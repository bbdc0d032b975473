// SPDX-License-Identifier: MIT

// Package sequence - owned storage, lifecycle & accessors.
//
// Purpose:
//   - Provide a fixed-length-per-instance, exclusively owned contiguous buffer.
//   - Model copy (deep), move (transfer + reset source) and swap (O(1)) explicitly.
//   - Offer an unchecked fast path (Get/Set/Ref) and a checked path (At/SetAt/RefAt).
//
// Ownership rules:
//   - No two distinct *Sequence values ever share a backing slice. New, FromSlice,
//     Clone and Assign always allocate; Move and Swap transfer, never duplicate.
//   - A moved-from Sequence has Size()==0 and nil storage; it remains usable.
//
// Complexity quicksheet:
//   - New/FromSlice/Clone/Assign: O(n); Move/MoveFrom/Swap: O(1); Get/Set/At: O(1).

package sequence

import "fmt"

// MaxLength is the exclusive ceiling for a sequence length.
const MaxLength = 100_000_000

// Sequence is an owned, contiguous, fixed-length buffer of T.
//   - n is the element count (0 only after being moved from).
//   - data holds exactly n elements; nil when n == 0.
//   - opts is the access policy captured at construction.
type Sequence[T any] struct {
	n    int     // element count
	data []T     // exclusively owned storage, len == n
	opts Options // checked-window policy
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sequence[int])(nil)

// New allocates a sequence of n zero-valued elements.
// Implementation:
//   - Stage 1: validate 0 < n < MaxLength.
//   - Stage 2: allocate the buffer; make() zero-fills it.
//
// Errors:
//   - ErrInvalidSize  (n <= 0).
//   - ErrSizeTooLarge (n >= MaxLength).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T any](n int, opts ...Option) (*Sequence[T], error) {
	if err := ValidateLength(n); err != nil {
		return nil, seqErrorf(opNew, err)
	}

	return &Sequence[T]{
		n:    n,
		data: make([]T, n),
		opts: gatherOptions(opts...),
	}, nil
}

// FromSlice copies buf into a newly owned sequence of len(buf) elements.
// The caller keeps ownership of buf; later writes to buf are not observed.
//
// Errors:
//   - ErrInvalidSize  (buf is nil or empty).
//   - ErrSizeTooLarge (len(buf) >= MaxLength).
func FromSlice[T any](buf []T, opts ...Option) (*Sequence[T], error) {
	if err := ValidateLength(len(buf)); err != nil {
		return nil, seqErrorf(opFromSlice, err)
	}
	data := make([]T, len(buf))
	copy(data, buf)

	return &Sequence[T]{
		n:    len(buf),
		data: data,
		opts: gatherOptions(opts...),
	}, nil
}

// Size returns the element count. No side effects.
func (s *Sequence[T]) Size() int { return s.n }

// Options returns the access policy of s.
func (s *Sequence[T]) Options() Options { return s.opts }

// Data returns the live backing slice. Writes through it mutate s.
// The slice is invalidated by Assign, MoveFrom, Move and Swap.
func (s *Sequence[T]) Data() []T { return s.data }

// Clone returns a deep copy with its own storage and the same policy.
// For element types that own resources themselves (e.g. *Sequence rows),
// Clone copies the element values only; see grid for a row-deep clone.
// Complexity: O(n).
func (s *Sequence[T]) Clone() *Sequence[T] {
	out := &Sequence[T]{n: s.n, opts: s.opts}
	if s.data != nil {
		out.data = make([]T, len(s.data))
		copy(out.data, s.data)
	}

	return out
}

// Assign replaces the contents of s with a deep copy of src.
// The length of s follows src; resizing is intentional, not an error.
// Assigning s to itself is a no-op (identity check, not value equality).
// Complexity: O(src.Size()).
func (s *Sequence[T]) Assign(src *Sequence[T]) {
	if s == src {
		return
	}
	var data []T
	if src.data != nil {
		data = make([]T, len(src.data))
		copy(data, src.data)
	}
	s.n, s.data, s.opts = src.n, data, src.opts
}

// Move transfers the storage of s into a new Sequence and resets s to the
// empty state (Size()==0, nil storage).
// Complexity: O(1).
func (s *Sequence[T]) Move() *Sequence[T] {
	out := &Sequence[T]{n: s.n, data: s.data, opts: s.opts}
	s.n, s.data = 0, nil

	return out
}

// MoveFrom takes ownership of src's storage, dropping the previous contents
// of s, and resets src to the empty state. MoveFrom(s) on itself is a no-op.
// Complexity: O(1).
func (s *Sequence[T]) MoveFrom(src *Sequence[T]) {
	if s == src {
		return
	}
	s.n, s.data, s.opts = src.n, src.data, src.opts
	src.n, src.data = 0, nil
}

// Swap exchanges length, storage and policy of a and b without copying elements.
func Swap[T any](a, b *Sequence[T]) {
	a.n, b.n = b.n, a.n
	a.data, b.data = b.data, a.data
	a.opts, b.opts = b.opts, a.opts
}

// ---------- Unchecked access (fast path) ----------
//
// Get/Set/Ref perform no validation of their own. An index outside [0, Size())
// is a caller contract violation; the runtime bounds check panics. Do not add
// guards here: hot loops in the arithmetic kernels rely on this path.

// Get returns the element at i.
func (s *Sequence[T]) Get(i int) T { return s.data[i] }

// Set stores v at i.
func (s *Sequence[T]) Set(i int, v T) { s.data[i] = v }

// Ref returns a pointer to the element at i, valid until the storage changes
// owner (Assign, MoveFrom, Move, Swap).
func (s *Sequence[T]) Ref(i int) *T { return &s.data[i] }

// ---------- Checked access ----------

// checkIndex validates i against the checked window [lower, n).
// With default options lower is 1, so index 0 is rejected.
func (s *Sequence[T]) checkIndex(op string, i int) error {
	if i < s.opts.lowerBound() || i >= s.n {
		return indexErrorf(op, i, s.n, ErrIndexOutOfRange)
	}

	return nil
}

// At returns the element at i or ErrIndexOutOfRange when i is outside the
// checked window ([1, n) by default, [0, n) with WithZeroIndexChecked).
func (s *Sequence[T]) At(i int) (T, error) {
	if err := s.checkIndex(opAt, i); err != nil {
		var zero T
		return zero, err
	}

	return s.data[i], nil
}

// SetAt stores v at i under the same window as At.
func (s *Sequence[T]) SetAt(i int, v T) error {
	if err := s.checkIndex(opSetAt, i); err != nil {
		return err
	}
	s.data[i] = v

	return nil
}

// RefAt returns a pointer to the element at i under the same window as At.
func (s *Sequence[T]) RefAt(i int) (*T, error) {
	if err := s.checkIndex(opRefAt, i); err != nil {
		return nil, err
	}

	return &s.data[i], nil
}

// String implements fmt.Stringer for debugging: "[a b c]".
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.data)
}
