// SPDX-License-Identifier: MIT

// Package adapter - gonum bridges.
//
// Purpose:
//   - Hand vector fields to gonum/mat as 3×N matrices and scalar fields as
//     N-vectors, and read them back, with the same layout and numeric policy
//     as the dense conversions.
//   - gonum rejects zero-length dimensions, so N = 0 fields fail with ErrShape
//     instead of panicking inside mat.
package adapter

import (
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/field"
	"github.com/katalvlaran/tensorfield/tensor"
)

const (
	opVectorToMat   = "VectorToMat"
	opVectorFromMat = "VectorFromMat"
	opScalarToVec   = "ScalarToVec"
	opScalarFromVec = "ScalarFromVec"
	opTensorAtMat   = "TensorAtMat"
)

// isNilMatrix reports whether m is a nil interface or holds a nil pointer
// such as (*mat.Dense)(nil).
func isNilMatrix(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	rv := reflect.ValueOf(m)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// VectorToMat copies a vector field into a new 3×N *mat.Dense; column i holds
// point i.
// Errors: ErrShape (also dense.ErrBadShape) when N = 0; ErrNilOperand, ErrNaNInf.
// Complexity: O(N).
func (ad *Adapter) VectorToMat(f *field.VectorField1D) (*mat.Dense, error) {
	a, err := ad.VectorToDense(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorToMat, err)
	}
	m, err := a.ToMat()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opVectorToMat, ErrShape, err)
	}

	return m, nil
}

// VectorFromMat copies a 3×N gonum matrix into a new vector field.
// Errors: ErrShape when the matrix does not have 3 rows; ErrNilOperand, ErrNaNInf.
func (ad *Adapter) VectorFromMat(m mat.Matrix) (*field.VectorField1D, error) {
	if isNilMatrix(m) {
		return nil, fmt.Errorf("%s: %w", opVectorFromMat, ErrNilOperand)
	}
	f, err := ad.VectorFromDense(dense.FromMat(m))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorFromMat, err)
	}

	return f, nil
}

// ScalarToVec copies a scalar field into a new *mat.VecDense of length N.
// Errors: ErrShape when N = 0; ErrNilOperand, ErrNaNInf.
func (ad *Adapter) ScalarToVec(f *field.ScalarField1D) (*mat.VecDense, error) {
	a, err := ad.ScalarToDense(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScalarToVec, err)
	}
	v, err := a.ToVec()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opScalarToVec, ErrShape, err)
	}

	return v, nil
}

// ScalarFromVec copies any gonum vector into a new scalar field.
// Errors: ErrNilOperand, ErrNaNInf.
func (ad *Adapter) ScalarFromVec(v mat.Vector) (*field.ScalarField1D, error) {
	if isNilMatrix(v) {
		return nil, fmt.Errorf("%s: %w", opScalarFromVec, ErrNilOperand)
	}
	f, err := ad.ScalarFromDense(dense.FromVec(v))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScalarFromVec, err)
	}

	return f, nil
}

// TensorAtMat returns point i of a tensor field as a new *r3.Mat, with the
// numeric policy applied to each component.
// Errors: field.ErrIndex for i outside [0, N); ErrNilOperand, ErrNaNInf.
// Complexity: O(1).
func (ad *Adapter) TensorAtMat(f *field.TensorField1D, i int) (*r3.Mat, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", opTensorAtMat, ErrNilOperand)
	}
	t, err := f.At(i)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensorAtMat, err)
	}
	var (
		r, c int
		v    float64
	)
	for r = tensor.MinIndex; r <= tensor.MaxIndex; r++ {
		for c = tensor.MinIndex; c <= tensor.MaxIndex; c++ {
			if v, err = t.At(r, c); err != nil {
				return nil, fmt.Errorf("%s: %w", opTensorAtMat, err)
			}
			if v, err = ad.admit(v); err != nil {
				return nil, pointErrorf(opTensorAtMat, i, err)
			}
			if err = t.Set(r, c, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opTensorAtMat, err)
			}
		}
	}

	return t.ToMat(), nil
}
