// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every reported failure
// in sequence (and in grid, which aliases these) MUST be one of them, optionally
// wrapped with operation context; tests MUST match them via errors.Is.
// Panics are reserved for programmer errors on the unchecked fast path.

package sequence

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sequence: ..." for easy grepping. Facades
// wrap with seqErrorf(op, err) so the sentinel survives for errors.Is.

var (
	// ErrInvalidSize is returned when a requested length (or order) is zero or negative.
	ErrInvalidSize = errors.New("sequence: size must be > 0")

	// ErrSizeTooLarge is returned when a requested length (or order) is at or
	// above the package ceiling (MaxLength for sequences, grid.MaxOrder for grids).
	ErrSizeTooLarge = errors.New("sequence: size is too large")

	// ErrSizeMismatch indicates a binary operation between operands of
	// incompatible shape (different lengths, orders, or vector/order mismatch).
	ErrSizeMismatch = errors.New("sequence: size mismatch")

	// ErrIndexOutOfRange indicates that a checked accessor was given an index
	// outside its window. See Options for the window policy.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")
)

// Operation tags used in error wrappers (no magic strings at call sites).
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAt        = "At"
	opSetAt     = "SetAt"
	opRefAt     = "RefAt"
	opAdd       = "Add"
	opSub       = "Sub"
	opDot       = "Dot"
	opScan      = "Scan"
	opFprint    = "Fprint"
)

// seqErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func seqErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// indexErrorf wraps err with the accessor name and the offending index/length.
func indexErrorf(op string, i, n int, err error) error {
	return fmt.Errorf("Sequence.%s(%d) of %d: %w", op, i, n, err)
}
