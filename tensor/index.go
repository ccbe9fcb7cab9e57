// SPDX-License-Identifier: MIT

// Package tensor - the 1-based ↔ 0-based axis mapping.
//
// Purpose:
//   - Own the offset-by-one translation between physical component indices
//     (1..3) and dense axis positions (0..2), once per tensor rank.
//   - Every accessor in this package and every dense conversion calls these
//     functions instead of adjusting indices inline.
package tensor

import "fmt"

// Dim is the spatial dimension every tensor in this package lives in.
const Dim = 3

// Component index bounds (inclusive).
const (
	MinIndex = 1
	MaxIndex = Dim
)

// R1Axis maps a 1-based rank-1 component index k to its 0-based axis position.
// Implementation:
//   - Stage 1: validate MinIndex ≤ k ≤ MaxIndex.
//   - Stage 2: return k-1.
//
// Errors:
//   - ErrIndex (wrapped with the offending index).
//
// Complexity:
//   - Time O(1), Space O(1).
func R1Axis(k int) (int, error) {
	if k < MinIndex || k > MaxIndex {
		return 0, fmt.Errorf("R1Axis(%d): %w", k, ErrIndex)
	}

	return k - 1, nil
}

// R2Axes maps a 1-based rank-2 component pair (i,j) to its 0-based
// (row, col) axis positions. Both indices are validated before either is
// translated.
// Complexity: O(1).
func R2Axes(i, j int) (row, col int, err error) {
	if i < MinIndex || i > MaxIndex || j < MinIndex || j > MaxIndex {
		return 0, 0, fmt.Errorf("R2Axes(%d,%d): %w", i, j, ErrIndex)
	}

	return i - 1, j - 1, nil
}
