// SPDX-License-Identifier: MIT

// Package tensor: sentinel error set.
// Callers match with errors.Is; detection sites wrap with method context.
package tensor

import "errors"

var (
	// ErrIndex is returned when a component index is outside 1..3.
	// Accessors never mutate on this error.
	ErrIndex = errors.New("tensor: component index must be 1, 2, or 3")

	// ErrDivisionByZero is returned by in-place division by an exact zero.
	ErrDivisionByZero = errors.New("tensor: division by zero")
)
