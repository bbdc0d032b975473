// Package grid provides SquareGrid, a square (order×order) matrix built by
// composition from sequence.Sequence: the grid holds a sequence whose
// elements are the row sequences.
//
// What & Why:
//
//	Reusing Sequence one level up gives the grid the same ownership model
//	for free: Clone and Assign deep-copy every row, Move and Swap transfer
//	the row container in O(1). Matrix kernels (Add, Sub, Scale, MulVec, Mul)
//	are written against rows and delegate to sequence arithmetic.
//
// Shape:
//
//	Rows are not re-validated after SetRow. Keeping every row at length
//	Order() is the caller's job. On a jagged grid Add, Sub and MulVec report
//	ErrSizeMismatch, Equal compares unequal, and Mul either panics (short
//	row) or silently ignores the extra values (long row).
//
// Checked access:
//
//	At(i) uses the row container's checked window, [1, order) by default,
//	exactly like sequence.Sequence.At.
package grid
