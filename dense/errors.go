// SPDX-License-Identifier: MIT
// Package dense: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with
// "Array.<Method>(...)" context); tests match them via errors.Is.

package dense

import "errors"

var (
	// ErrBadShape is returned when a shape is invalid: rank outside 1..MaxRank,
	// a negative axis length, or an index tuple whose length differs from the rank.
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates an index outside [0, dim) on some axis.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates a data buffer whose length does not
	// match the product of the requested shape.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrNilArray indicates that a nil *Array was passed in.
	ErrNilArray = errors.New("dense: nil array")
)
