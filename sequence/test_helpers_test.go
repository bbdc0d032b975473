// SPDX-License-Identifier: MIT
// Package sequence_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures so each test states only what it checks.

package sequence_test

import (
	"testing"

	"github.com/katalvlaran/dynvec/sequence"
)

// mustNew allocates a zero-valued sequence of length n or fails the test.
func mustNew[T any](t testing.TB, n int, opts ...sequence.Option) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.New[T](n, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return s
}

// seqOf builds a sequence holding vals or fails the test.
func seqOf[T any](t testing.TB, vals ...T) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.FromSlice(vals)
	if err != nil {
		t.Fatalf("FromSlice(%v): %v", vals, err)
	}

	return s
}

// ramp returns 0, 1, ..., n-1 scaled by k.
func ramp(t testing.TB, n, k int) *sequence.Sequence[int] {
	t.Helper()
	s := mustNew[int](t, n)
	for i := 0; i < n; i++ {
		s.Set(i, k*i)
	}

	return s
}
