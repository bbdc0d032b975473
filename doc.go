// Package dynvec is a small library of generic, dynamically allocated
// vector and square-matrix values.
//
// What is inside?
//
//	sequence/  Sequence[T], an owned fixed-length buffer with deep copy,
//	           move (transfer + reset), O(1) swap, checked and unchecked
//	           access, equality, scalar and elementwise arithmetic, dot product.
//	grid/      SquareGrid[T], an order×order matrix composed of row sequences,
//	           with Add, Sub, Scale, MulVec, Mul, Transpose and Identity.
//
// Quick example:
//
//	a, _ := grid.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := grid.FromRows([][]int{{5, 6}, {7, 8}})
//	c, _ := grid.Mul(a, b) // [[19 22] [43 50]]
//
// Errors are sentinels (sequence.ErrInvalidSize, ErrSizeTooLarge,
// ErrSizeMismatch, ErrIndexOutOfRange) matched with errors.Is; grid
// re-exports the same values.
//
// Values carry no locks: share an instance across goroutines only with
// external synchronization.
package dynvec
