// SPDX-License-Identifier: MIT

// Package field: sentinel error set.
// Every message is prefixed with "field: ..."; detection sites wrap with
// "<Type>.<Method>(...)" context via %w, so errors.Is keeps matching.
package field

import "errors"

var (
	// ErrIndex is returned when a point index is outside [0, N).
	ErrIndex = errors.New("field: point index out of range")

	// ErrNegativeLength is returned by constructors given N < 0.
	ErrNegativeLength = errors.New("field: length must be >= 0")

	// ErrDimensionMismatch is returned when two field operands differ in length.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")
)
