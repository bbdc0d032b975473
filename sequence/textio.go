// SPDX-License-Identifier: MIT

package sequence

import (
	"bufio"
	"fmt"
	"io"
)

// Scan reads exactly s.Size() whitespace-separated tokens from r into s,
// using the fmt scanning rules for T (types implementing fmt.Scanner parse
// themselves). s must already be sized.
//
// If r implements io.RuneScanner, the stream is left positioned right after
// the last consumed token. Otherwise at most one trailing separator rune may
// be consumed as well. On a parse failure the elements before the failing
// position are already written; the rest are untouched.
func Scan[T any](r io.Reader, s *Sequence[T]) error {
	for i := 0; i < s.n; i++ {
		if _, err := fmt.Fscan(r, &s.data[i]); err != nil {
			return seqErrorf(opScan, fmt.Errorf("element %d: %w", i, err))
		}
	}

	return nil
}

// Fprint writes every element followed by a single space, using fmt's
// default format for T. No newline is written.
func Fprint[T any](w io.Writer, s *Sequence[T]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < s.n; i++ {
		if _, err := fmt.Fprint(bw, s.data[i]); err != nil {
			return seqErrorf(opFprint, err)
		}
		if err := bw.WriteByte(' '); err != nil {
			return seqErrorf(opFprint, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return seqErrorf(opFprint, err)
	}

	return nil
}
