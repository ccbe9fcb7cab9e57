// SPDX-License-Identifier: MIT

// Package adapter: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state; each Adapter carries its own policy.
//   - Defaults preserve values bit-for-bit so To*/From* round-trip exactly.
//
// Notes:
//   - Policy order on every value: NaN replacement first, then the
//     non-finite check. With both enabled, NaN becomes the replacement and
//     only ±Inf can still be rejected.
package adapter

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRejectNonFinite toggles ErrNaNInf on NaN/±Inf. Off: values pass through.
	DefaultRejectNonFinite = false

	// DefaultReplaceNaN toggles the null-value policy. Off: NaN is kept as NaN.
	DefaultReplaceNaN = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNaNReplacementInvalid = "adapter: WithNaNReplacement: replacement must not be NaN"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option and resolve them
// via gatherOptions.
type Options struct {
	rejectNonFinite bool    // DefaultRejectNonFinite
	replaceNaN      bool    // DefaultReplaceNaN
	nanValue        float64 // used only when replaceNaN
}

// WithRejectNonFinite makes every conversion fail with ErrNaNInf on the
// first NaN or ±Inf it reads.
// Behavior highlights:
//   - The failing conversion returns no output and writes no destination.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRejectNonFinite() Option {
	return func(o *Options) { o.rejectNonFinite = true }
}

// WithPassNonFinite restores the default: NaN and ±Inf are copied unchanged.
func WithPassNonFinite() Option {
	return func(o *Options) { o.rejectNonFinite = false }
}

// WithNaNReplacement writes v wherever a NaN is read (null-value policy).
// Implementation:
//   - Stage 1: validate v is not NaN.
//   - Stage 2: return a setter enabling replacement.
//
// Behavior highlights:
//   - Lossy by definition: a NaN does not survive a round trip.
//   - ±Inf is not affected; combine with WithRejectNonFinite to reject it.
//
// Errors:
//   - Panics with a stable message when v is NaN.
func WithNaNReplacement(v float64) Option {
	if math.IsNaN(v) {
		panic(panicNaNReplacementInvalid)
	}

	return func(o *Options) {
		o.replaceNaN = true
		o.nanValue = v
	}
}

// WithKeepNaN disables NaN replacement (default).
func WithKeepNaN() Option {
	return func(o *Options) {
		o.replaceNaN = false
		o.nanValue = 0
	}
}

// NewOptions resolves option setters against documented defaults.
// Pure; last-writer-wins for conflicting setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RejectNonFinite reports whether non-finite values are rejected.
func (o Options) RejectNonFinite() bool { return o.rejectNonFinite }

// NaNReplacement returns the replacement value and whether replacement is on.
func (o Options) NaNReplacement() (float64, bool) { return o.nanValue, o.replaceNaN }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rejectNonFinite: DefaultRejectNonFinite,
		replaceNaN:      DefaultReplaceNaN,
	}
}

// gatherOptions applies user-provided setters on top of defaults, in order.
// Nil setters are skipped.
// Complexity: O(k) for k = len(opts).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
