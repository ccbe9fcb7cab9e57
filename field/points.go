// SPDX-License-Identifier: MIT

// Package field - shared point storage.
//
// Purpose:
//   - One implementation of storage, bounds checking and copy-on-read access
//     for all three field kinds.
//   - Element types are value types (float64, tensor.R1, tensor.R2), so a
//     plain assignment is a deep copy.
package field

import "fmt"

// points is the fixed-length storage embedded by every field type.
//   - kind names the embedding type in error messages.
//   - data is owned exclusively; its length never changes after construction.
type points[T any] struct {
	kind string
	data []T
}

// newPoints allocates n zero-valued points.
// Errors: ErrNegativeLength when n < 0.
func newPoints[T any](kind string, n int) (points[T], error) {
	if n < 0 {
		return points[T]{}, fmt.Errorf("New%s(%d): %w", kind, n, ErrNegativeLength)
	}

	return points[T]{kind: kind, data: make([]T, n)}, nil
}

// Len returns the number of points N.
// Complexity: O(1).
func (p *points[T]) Len() int { return len(p.data) }

// checkIndex validates 0 ≤ i < N, tagging the error with the caller.
func (p *points[T]) checkIndex(method string, i int) error {
	if i < 0 || i >= len(p.data) {
		return fmt.Errorf("%s.%s(%d): %w", p.kind, method, i, ErrIndex)
	}

	return nil
}

// At returns a copy of the value at point i.
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: return the element by value.
//
// Errors:
//   - ErrIndex when i is outside [0, N).
//
// Complexity:
//   - Time O(1), Space O(1).
func (p *points[T]) At(i int) (T, error) {
	if err := p.checkIndex("At", i); err != nil {
		var zero T
		return zero, err
	}

	return p.data[i], nil
}

// Set replaces the value at point i. The field is untouched on error.
// Complexity: O(1).
func (p *points[T]) Set(i int, v T) error {
	if err := p.checkIndex("Set", i); err != nil {
		return err
	}
	p.data[i] = v

	return nil
}

// Fill sets every point to v.
// Complexity: O(N).
func (p *points[T]) Fill(v T) {
	for i := range p.data {
		p.data[i] = v
	}
}

// clone returns an independent copy of the storage.
func (p *points[T]) clone() points[T] {
	cp := make([]T, len(p.data))
	copy(cp, p.data)

	return points[T]{kind: p.kind, data: cp}
}

// checkSameLen validates that other has the same number of points.
func (p *points[T]) checkSameLen(method string, other *points[T]) error {
	if len(p.data) != len(other.data) {
		return fmt.Errorf("%s.%s: %d vs %d points: %w",
			p.kind, method, len(p.data), len(other.data), ErrDimensionMismatch)
	}

	return nil
}

// copyFrom overwrites every point with other's values; lengths must match.
func (p *points[T]) copyFrom(other *points[T]) error {
	if err := p.checkSameLen("CopyFrom", other); err != nil {
		return err
	}
	copy(p.data, other.data)

	return nil
}

// nilOperandErrorf reports a nil field argument as a length mismatch.
func nilOperandErrorf(kind, method string) error {
	return fmt.Errorf("%s.%s: nil field: %w", kind, method, ErrDimensionMismatch)
}
