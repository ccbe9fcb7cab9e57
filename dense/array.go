// SPDX-License-Identifier: MIT

// Package dense - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit offset formula
//     Σ idx[k]·strides[k], strides[rank-1] = 1.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep traversal deterministic (fixed row-major loop order).
//
// Complexity quicksheet:
//   - New: O(len) zero-init; At/Set: O(rank); Clone: O(len); Equal: O(len).
package dense

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MaxRank is the highest rank an Array supports: (3, 3, N) tensor arrays.
const MaxRank = 3

// ---------- error context tags ----------

const (
	ctxNew  = "New"
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxDim  = "Dim"
	ctxFrom = "FromSlice"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// arrayErrorf wraps a sentinel with a uniform Array context and the index tuple.
func arrayErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Array.%s%v: %w", method, idx, err)
}

// Array is a dense, row-major, rank 1..3 array of float64 values.
//   - shape holds the axis lengths; strides the row-major element strides.
//   - data is a flat buffer of length Π shape, owned exclusively.
type Array struct {
	shape   []int
	strides []int
	data    []float64
}

var _ fmt.Stringer = (*Array)(nil)

// New allocates a zero-filled array of the given shape.
// Implementation:
//   - Stage 1: validate 1 ≤ rank ≤ MaxRank and every axis ≥ 0.
//   - Stage 2: compute row-major strides and total length.
//   - Stage 3: allocate the zero-filled buffer.
//
// Behavior highlights:
//   - Zero-length axes are legal (e.g. shape (3, 0)); the buffer is then empty.
//   - The shape slice is copied; the caller may reuse it.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(len), Space O(len).
func New(shape ...int) (*Array, error) {
	strides, n, err := layout(shape)
	if err != nil {
		return nil, fmt.Errorf("%s%v: %w", ctxNew, shape, err)
	}

	return &Array{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, n),
	}, nil
}

// FromSlice builds an array of the given shape holding a copy of data,
// interpreted in row-major order.
// Errors: ErrBadShape for an invalid shape, ErrDimensionMismatch when
// len(data) differs from the element count.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%s: %d values for shape %v: %w",
			ctxFrom, len(data), shape, ErrDimensionMismatch)
	}
	copy(a.data, data)

	return a, nil
}

// layout validates a shape and returns its row-major strides and element count.
func layout(shape []int) (strides []int, n int, err error) {
	if len(shape) < 1 || len(shape) > MaxRank {
		return nil, 0, ErrBadShape
	}
	strides = make([]int, len(shape))
	n = 1
	for k := len(shape) - 1; k >= 0; k-- {
		if shape[k] < 0 {
			return nil, 0, ErrBadShape
		}
		strides[k] = n
		n *= shape[k]
	}

	return strides, n, nil
}

// Rank returns the number of axes.
// Complexity: O(1).
func (a *Array) Rank() int { return len(a.shape) }

// Shape returns a copy of the axis lengths.
// Complexity: O(rank).
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Dim returns the length of one axis.
// Errors: ErrOutOfRange when axis is outside [0, rank).
func (a *Array) Dim(axis int) (int, error) {
	if axis < 0 || axis >= len(a.shape) {
		return 0, arrayErrorf(ctxDim, []int{axis}, ErrOutOfRange)
	}

	return a.shape[axis], nil
}

// Len returns the total element count Π shape.
func (a *Array) Len() int { return len(a.data) }

// indexOf computes the row-major offset of idx.
// Implementation:
//   - Stage 1: len(idx) must equal the rank (ErrBadShape otherwise).
//   - Stage 2: each idx[k] must satisfy 0 ≤ idx[k] < shape[k] (ErrOutOfRange).
//   - Stage 3: accumulate idx[k]·strides[k].
//
// Returns a bare sentinel; public methods wrap it with context.
// Complexity: O(rank).
func (a *Array) indexOf(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrBadShape
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at the multi-index idx (one index per axis, 0-based).
// Errors:
//   - ErrBadShape when len(idx) != Rank().
//   - ErrOutOfRange when any index is outside its axis.
//
// Complexity: O(rank).
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.indexOf(idx)
	if err != nil {
		return 0, arrayErrorf(ctxAt, idx, err)
	}

	return a.data[off], nil
}

// Set stores v at the multi-index idx. No numeric validation is applied:
// NaN and ±Inf are stored as given. The array is untouched on error.
// Complexity: O(rank).
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.indexOf(idx)
	if err != nil {
		return arrayErrorf(ctxSet, idx, err)
	}
	a.data[off] = v

	return nil
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Data returns a copy of the flat row-major buffer.
func (a *Array) Data() []float64 {
	return append([]float64(nil), a.data...)
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(len).
func (a *Array) Clone() *Array {
	return &Array{
		shape:   append([]int(nil), a.shape...),
		strides: append([]int(nil), a.strides...),
		data:    append([]float64(nil), a.data...),
	}
}

// Equal reports whether b has the same shape and exactly the same values.
// NaN never equals NaN.
func (a *Array) Equal(b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}

	return floats.Equal(a.data, b.data)
}

// String renders the array for diagnostics: the last axis forms one
// bracketed row per line, and rank-3 arrays separate their leading-axis
// blocks with a blank line.
// The zero Array renders as "".
// Complexity: O(len).
func (a *Array) String() string {
	if len(a.shape) == 0 {
		return ""
	}
	var b strings.Builder
	cols := a.shape[len(a.shape)-1]
	rows := 1
	if cols > 0 {
		rows = len(a.data) / cols
	} else {
		for _, d := range a.shape[:len(a.shape)-1] {
			rows *= d
		}
	}
	var block int
	if len(a.shape) == MaxRank {
		block = a.shape[1]
	}

	var r, j, base int
	for r = 0; r < rows; r++ {
		if block > 0 && r > 0 && r%block == 0 {
			b.WriteString("\n") // blank line between leading-axis blocks
		}
		b.WriteString(_fmtRowOpen)
		base = r * cols
		for j = 0; j < cols; j++ {
			b.WriteString(fmt.Sprintf("%g", a.data[base+j]))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// CopyFrom overwrites the receiver's values with src's.
// Shapes must be identical; on mismatch nothing is written.
// Errors: ErrNilArray, ErrDimensionMismatch.
// Complexity: O(len).
func (a *Array) CopyFrom(src *Array) error {
	if src == nil {
		return fmt.Errorf("Array.CopyFrom: %w", ErrNilArray)
	}
	if len(a.shape) != len(src.shape) {
		return fmt.Errorf("Array.CopyFrom: %v vs %v: %w", a.shape, src.shape, ErrDimensionMismatch)
	}
	for k := range a.shape {
		if a.shape[k] != src.shape[k] {
			return fmt.Errorf("Array.CopyFrom: %v vs %v: %w", a.shape, src.shape, ErrDimensionMismatch)
		}
	}
	copy(a.data, src.data)

	return nil
}
