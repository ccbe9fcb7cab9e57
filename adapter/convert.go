// SPDX-License-Identifier: MIT

// Package adapter - the six field ↔ dense conversions.
//
// Layout (N = number of points, trailing axis):
//
//	ScalarToDense / ScalarFromDense:  (N)        a[i]       = f[i]
//	VectorToDense / VectorFromDense:  (3, N)     a[c, i]    = f[i](c+1)
//	TensorToDense / TensorFromDense:  (3, 3, N)  a[r, c, i] = f[i](r+1, c+1)
//
// Every conversion allocates its result and returns it only after every
// point was converted; a failing conversion returns nil.
package adapter

import (
	"fmt"

	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/field"
	"github.com/katalvlaran/tensorfield/tensor"
)

// ---------- conversion names (error context) ----------

const (
	opScalarToDense   = "ScalarToDense"
	opScalarFromDense = "ScalarFromDense"
	opVectorToDense   = "VectorToDense"
	opVectorFromDense = "VectorFromDense"
	opTensorToDense   = "TensorToDense"
	opTensorFromDense = "TensorFromDense"
)

// ScalarToDense copies a scalar field into a new rank-1 array of shape (N).
// Implementation:
//   - Stage 1: allocate (N).
//   - Stage 2: admit and store f[i] at a[i], i ascending.
//
// Errors:
//   - ErrNilOperand, ErrNaNInf (under WithRejectNonFinite).
//
// Complexity:
//   - Time O(N), Space O(N).
func (ad *Adapter) ScalarToDense(f *field.ScalarField1D) (*dense.Array, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", opScalarToDense, ErrNilOperand)
	}
	values := f.Values()
	var err error
	for i, v := range values {
		if values[i], err = ad.admit(v); err != nil {
			return nil, pointErrorf(opScalarToDense, i, err)
		}
	}

	return dense.FromSlice(values, len(values))
}

// ScalarFromDense copies a rank-1 array of shape (N) into a new scalar field.
// Implementation:
//   - Stage 1: validate rank 1 before allocating anything.
//   - Stage 2: admit each a[i] and store it at point i.
//
// Errors:
//   - ErrShape (also dense.ErrBadShape) for any rank other than 1.
//   - ErrNilOperand, ErrNaNInf.
//
// Complexity:
//   - Time O(N), Space O(N).
func (ad *Adapter) ScalarFromDense(a *dense.Array) (*field.ScalarField1D, error) {
	if _, err := checkShape(opScalarFromDense, a, _wantScalar); err != nil {
		return nil, err
	}
	values := a.Data()
	var err error
	for i, v := range values {
		if values[i], err = ad.admit(v); err != nil {
			return nil, pointErrorf(opScalarFromDense, i, err)
		}
	}

	return field.ScalarField1DFrom(values), nil
}

// VectorToDense copies a vector field into a new (3, N) array; component k
// of point i lands at a[R1Axis(k), i].
// Errors: ErrNilOperand, ErrNaNInf.
// Complexity: O(N).
func (ad *Adapter) VectorToDense(f *field.VectorField1D) (*dense.Array, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", opVectorToDense, ErrNilOperand)
	}
	n := f.Len()
	a, err := dense.New(tensor.Dim, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorToDense, err)
	}
	var u tensor.R1
	for i := 0; i < n; i++ {
		if u, err = f.At(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opVectorToDense, err)
		}
		if err = ad.unpackR1(u, a, i); err != nil {
			return nil, pointErrorf(opVectorToDense, i, err)
		}
	}

	return a, nil
}

// VectorFromDense copies a (3, N) array into a new vector field of N points.
// Implementation:
//   - Stage 1: validate rank 2 and leading axis 3 before allocating.
//   - Stage 2: N = trailing axis; allocate the field.
//   - Stage 3: pack column i through R1Axis and store it at point i.
//
// Errors:
//   - ErrShape (also dense.ErrBadShape), ErrNilOperand, ErrNaNInf.
//
// Complexity:
//   - Time O(N), Space O(N).
func (ad *Adapter) VectorFromDense(a *dense.Array) (*field.VectorField1D, error) {
	n, err := checkShape(opVectorFromDense, a, _wantVector, tensor.Dim)
	if err != nil {
		return nil, err
	}
	f, err := field.NewVectorField1D(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVectorFromDense, err)
	}
	var u tensor.R1
	for i := 0; i < n; i++ {
		if u, err = ad.packR1(a, i); err != nil {
			return nil, pointErrorf(opVectorFromDense, i, err)
		}
		if err = f.Set(i, u); err != nil {
			return nil, fmt.Errorf("%s: %w", opVectorFromDense, err)
		}
	}

	return f, nil
}

// TensorToDense copies a tensor field into a new (3, 3, N) array; component
// (r, c) of point i lands at a[R2Axes(r, c), i].
// Errors: ErrNilOperand, ErrNaNInf.
// Complexity: O(N).
func (ad *Adapter) TensorToDense(f *field.TensorField1D) (*dense.Array, error) {
	if f == nil {
		return nil, fmt.Errorf("%s: %w", opTensorToDense, ErrNilOperand)
	}
	n := f.Len()
	a, err := dense.New(tensor.Dim, tensor.Dim, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensorToDense, err)
	}
	var t tensor.R2
	for i := 0; i < n; i++ {
		if t, err = f.At(i); err != nil {
			return nil, fmt.Errorf("%s: %w", opTensorToDense, err)
		}
		if err = ad.unpackR2(t, a, i); err != nil {
			return nil, pointErrorf(opTensorToDense, i, err)
		}
	}

	return a, nil
}

// TensorFromDense copies a (3, 3, N) array into a new tensor field.
// Shape is validated before allocation; N is the trailing axis.
// Errors: ErrShape (also dense.ErrBadShape), ErrNilOperand, ErrNaNInf.
// Complexity: O(N).
func (ad *Adapter) TensorFromDense(a *dense.Array) (*field.TensorField1D, error) {
	n, err := checkShape(opTensorFromDense, a, _wantTensor, tensor.Dim, tensor.Dim)
	if err != nil {
		return nil, err
	}
	f, err := field.NewTensorField1D(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensorFromDense, err)
	}
	var t tensor.R2
	for i := 0; i < n; i++ {
		if t, err = ad.packR2(a, i); err != nil {
			return nil, pointErrorf(opTensorFromDense, i, err)
		}
		if err = f.Set(i, t); err != nil {
			return nil, fmt.Errorf("%s: %w", opTensorFromDense, err)
		}
	}

	return f, nil
}
