// SPDX-License-Identifier: MIT

// Package dense - gonum interop.
//
// Purpose:
//   - Copy rank-2 arrays to/from *mat.Dense and rank-1 arrays to/from *mat.VecDense.
//   - gonum forbids zero-length dimensions, so empty arrays are rejected with
//     ErrBadShape instead of letting mat panic.
package dense

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToMat copies a rank-2 array into a new *mat.Dense with the same rows×cols.
// Errors: ErrBadShape when the rank is not 2 or either axis is empty.
func (a *Array) ToMat() (*mat.Dense, error) {
	if len(a.shape) != 2 || a.shape[0] == 0 || a.shape[1] == 0 {
		return nil, fmt.Errorf("Array.ToMat%v: %w", a.shape, ErrBadShape)
	}

	return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
}

// FromMat copies any gonum matrix into a new rank-2 array.
// Complexity: O(r*c).
func FromMat(m mat.Matrix) *Array {
	r, c := m.Dims()
	a, _ := New(r, c) // gonum dims are always positive
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}

	return a
}

// ToVec copies a rank-1 array into a new *mat.VecDense.
// Errors: ErrBadShape when the rank is not 1 or the array is empty.
func (a *Array) ToVec() (*mat.VecDense, error) {
	if len(a.shape) != 1 || a.shape[0] == 0 {
		return nil, fmt.Errorf("Array.ToVec%v: %w", a.shape, ErrBadShape)
	}

	return mat.NewVecDense(a.shape[0], a.Data()), nil
}

// FromVec copies any gonum vector into a new rank-1 array.
func FromVec(v mat.Vector) *Array {
	n := v.Len()
	a, _ := New(n)
	for i := 0; i < n; i++ {
		a.data[i] = v.AtVec(i)
	}

	return a
}
