// SPDX-License-Identifier: MIT

// Package sequence: functional configuration for the checked-access policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Policy is captured per instance at construction and travels with the
//     storage through Clone, Assign, Move, Swap and arithmetic results.
//
// Checked window:
//   - By default the checked accessors (At/SetAt/RefAt) accept i in [1, n):
//     index 0 is rejected even though Get(0) is a valid unchecked read. This
//     is the long-standing contract of the checked accessor.
//   - WithZeroIndexChecked widens the window to [0, n).
package sequence

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultZeroIndexChecked controls whether index 0 is accepted by the
	// checked accessors. false ⇒ window is [1, n).
	DefaultZeroIndexChecked = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; constructors accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	zeroIndexChecked bool // DefaultZeroIndexChecked
}

// WithZeroIndexChecked makes the checked accessors accept index 0,
// i.e. the window becomes [0, n).
func WithZeroIndexChecked() Option {
	return func(o *Options) { o.zeroIndexChecked = true }
}

// WithLegacyWindow restores the default checked window [1, n).
// Useful to override an earlier WithZeroIndexChecked in a shared option list.
func WithLegacyWindow() Option {
	return func(o *Options) { o.zeroIndexChecked = false }
}

// WithOptions copies a resolved policy wholesale; used to make derived
// containers inherit the policy of their source.
func WithOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// NewOptions resolves opts against the defaults. Exposed for callers (grid)
// that need to inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ZeroIndexChecked reports whether index 0 passes the checked accessors.
func (o Options) ZeroIndexChecked() bool { return o.zeroIndexChecked }

// lowerBound returns the smallest index accepted by the checked accessors.
func (o Options) lowerBound() int {
	if o.zeroIndexChecked {
		return 0
	}

	return 1
}

// gatherOptions applies user setters in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		zeroIndexChecked: DefaultZeroIndexChecked,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
