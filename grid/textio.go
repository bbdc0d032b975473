// SPDX-License-Identifier: MIT

package grid

import (
	"io"

	"github.com/katalvlaran/dynvec/sequence"
)

// Scan fills g row by row with order×order whitespace-separated tokens from r.
// Positioning and partial-failure rules are those of sequence.Scan.
func Scan[T any](r io.Reader, g *SquareGrid[T]) error {
	for i := 0; i < g.Order(); i++ {
		if err := sequence.Scan(r, g.rows.Get(i)); err != nil {
			return rowErrorf(opScan, i, err)
		}
	}

	return nil
}

// Fprint writes one row per line, each row formatted by sequence.Fprint.
func Fprint[T any](w io.Writer, g *SquareGrid[T]) error {
	for i := 0; i < g.Order(); i++ {
		if err := sequence.Fprint(w, g.rows.Get(i)); err != nil {
			return rowErrorf(opFprint, i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return rowErrorf(opFprint, i, err)
		}
	}

	return nil
}
