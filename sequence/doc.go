// Package sequence provides Sequence, a generic, owned, fixed-length buffer
// with explicit copy, move and swap semantics, plus elementwise and scalar
// arithmetic, dot product and equality.
//
// What & Why:
//
//	A Sequence owns its storage exclusively. Copies are deep (Clone, Assign),
//	moves transfer the buffer and reset the source (Move, MoveFrom), and Swap
//	exchanges buffers in O(1). Binary operators never mutate their operands.
//
// Access:
//
//	Get/Set/Ref are unchecked: an index outside [0, Size()) panics via the
//	runtime bounds check and is a caller bug. At/SetAt/RefAt are checked and
//	return ErrIndexOutOfRange. By default the checked window is [1, Size()),
//	so At(0) is rejected; pass WithZeroIndexChecked to accept index 0.
//
// Errors:
//
//	ErrInvalidSize, ErrSizeTooLarge, ErrSizeMismatch, ErrIndexOutOfRange.
//	Match with errors.Is.
//
// Concurrency:
//
//	No internal synchronization. A Sequence must not be mutated from several
//	goroutines without external locking.
package sequence
