// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//  - Single source of truth for size and shape checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//  - Validators allocate nothing and never touch element storage.

package sequence

// ValidateBounded checks 0 < n < ceiling.
// Returns ErrInvalidSize for n <= 0 and ErrSizeTooLarge for n >= ceiling.
// Shared by grid, which applies its own ceiling.
func ValidateBounded(n, ceiling int) error {
	if n <= 0 {
		return ErrInvalidSize
	}
	if n >= ceiling {
		return ErrSizeTooLarge
	}

	return nil
}

// ValidateLength checks a requested sequence length against MaxLength.
func ValidateLength(n int) error {
	return ValidateBounded(n, MaxLength)
}

// ValidateSameSize ensures a and b have equal lengths.
// Assumes both are non-nil.
func ValidateSameSize[T any](a, b *Sequence[T]) error {
	if a.n != b.n {
		return ErrSizeMismatch
	}

	return nil
}
