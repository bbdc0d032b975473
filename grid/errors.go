// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/dynvec/sequence"
)

// Grid failures reuse the sequence taxonomy so callers match a single set of
// sentinels with errors.Is regardless of which package reported them.
var (
	ErrInvalidSize     = sequence.ErrInvalidSize
	ErrSizeTooLarge    = sequence.ErrSizeTooLarge
	ErrSizeMismatch    = sequence.ErrSizeMismatch
	ErrIndexOutOfRange = sequence.ErrIndexOutOfRange
)

// Operation tags used in error wrappers.
const (
	opNew      = "grid.New"
	opFromRows = "grid.FromRows"
	opAt       = "grid.At"
	opAdd      = "grid.Add"
	opSub      = "grid.Sub"
	opMul      = "grid.Mul"
	opMulVec   = "grid.MulVec"
	opScan     = "grid.Scan"
	opFprint   = "grid.Fprint"
)

// gridErrorf wraps err with an operation tag; call only with a non-nil err.
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowErrorf wraps err with an operation tag and the row being processed.
func rowErrorf(op string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", op, row, err)
}
