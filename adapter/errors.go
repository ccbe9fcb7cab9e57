// SPDX-License-Identifier: MIT
// Package adapter: sentinel error set.
// Conversions return these sentinels wrapped with "<Conversion>: ..." context.
// Where a lower-level sentinel describes the same condition it is wrapped as
// well, so both errors.Is(err, ErrShape) and errors.Is(err, dense.ErrBadShape)
// hold for a shape violation.

package adapter

import "errors"

var (
	// ErrShape indicates a dense array whose rank or leading-axis shape does
	// not match the target field kind.
	ErrShape = errors.New("adapter: array shape does not match field kind")

	// ErrDimensionMismatch indicates two operands that disagree on the
	// point-axis length (field length N vs trailing array axis).
	ErrDimensionMismatch = errors.New("adapter: point-axis length mismatch")

	// ErrNaNInf indicates a NaN or ±Inf value rejected by WithRejectNonFinite.
	ErrNaNInf = errors.New("adapter: NaN or Inf encountered")

	// ErrNilOperand indicates a nil field or array argument.
	ErrNilOperand = errors.New("adapter: nil operand")
)
