// SPDX-License-Identifier: MIT

// Package adapter - write-into variants.
//
// Purpose:
//   - Convert into a caller-supplied destination instead of allocating one.
//   - Atomicity: shape, length and numeric policy are all checked on a staged
//     copy; the destination is written in a single CopyFrom only when every
//     check passed.
package adapter

import (
	"fmt"

	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/field"
	"github.com/katalvlaran/tensorfield/tensor"
)

const (
	opScalarIntoDense = "ScalarIntoDense"
	opScalarIntoField = "ScalarIntoField"
	opVectorIntoDense = "VectorIntoDense"
	opVectorIntoField = "VectorIntoField"
	opTensorIntoDense = "TensorIntoDense"
	opTensorIntoField = "TensorIntoField"
)

// denseLenErrorf reports a field whose length disagrees with the destination
// array's trailing axis.
func denseLenErrorf(op string, fieldLen, axisLen int) error {
	return fmt.Errorf("%s: field has %d points, array trailing axis %d: %w: %w",
		op, fieldLen, axisLen, ErrDimensionMismatch, dense.ErrDimensionMismatch)
}

// fieldLenErrorf reports an array whose trailing axis disagrees with the
// destination field's length.
func fieldLenErrorf(op string, axisLen, fieldLen int) error {
	return fmt.Errorf("%s: array trailing axis %d, field has %d points: %w: %w",
		op, axisLen, fieldLen, ErrDimensionMismatch, field.ErrDimensionMismatch)
}

// ScalarIntoDense writes f into dst, which must have shape (f.Len()).
// Implementation:
//   - Stage 1: validate dst shape (ErrShape) and length (ErrDimensionMismatch).
//   - Stage 2: convert into a staged array, applying the numeric policy.
//   - Stage 3: commit the staged values with dst.CopyFrom.
//
// Errors:
//   - ErrNilOperand, ErrShape, ErrDimensionMismatch, ErrNaNInf.
//     dst is unchanged whenever an error is returned.
//
// Complexity:
//   - Time O(N), Space O(N) for the staged copy.
func (ad *Adapter) ScalarIntoDense(f *field.ScalarField1D, dst *dense.Array) error {
	if f == nil {
		return fmt.Errorf("%s: %w", opScalarIntoDense, ErrNilOperand)
	}
	n, err := checkShape(opScalarIntoDense, dst, _wantScalar)
	if err != nil {
		return err
	}
	if n != f.Len() {
		return denseLenErrorf(opScalarIntoDense, f.Len(), n)
	}
	staged, err := ad.ScalarToDense(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opScalarIntoDense, err)
	}

	return dst.CopyFrom(staged)
}

// ScalarIntoField writes a (N) array into dst, which must have N points.
// dst is unchanged whenever an error is returned.
// Errors: ErrNilOperand, ErrShape, ErrDimensionMismatch, ErrNaNInf.
func (ad *Adapter) ScalarIntoField(a *dense.Array, dst *field.ScalarField1D) error {
	if dst == nil {
		return fmt.Errorf("%s: %w", opScalarIntoField, ErrNilOperand)
	}
	n, err := checkShape(opScalarIntoField, a, _wantScalar)
	if err != nil {
		return err
	}
	if n != dst.Len() {
		return fieldLenErrorf(opScalarIntoField, n, dst.Len())
	}
	staged, err := ad.ScalarFromDense(a)
	if err != nil {
		return fmt.Errorf("%s: %w", opScalarIntoField, err)
	}

	return dst.CopyFrom(staged)
}

// VectorIntoDense writes f into dst, which must have shape (3, f.Len()).
// dst is unchanged whenever an error is returned.
// Errors: ErrNilOperand, ErrShape, ErrDimensionMismatch, ErrNaNInf.
func (ad *Adapter) VectorIntoDense(f *field.VectorField1D, dst *dense.Array) error {
	if f == nil {
		return fmt.Errorf("%s: %w", opVectorIntoDense, ErrNilOperand)
	}
	n, err := checkShape(opVectorIntoDense, dst, _wantVector, tensor.Dim)
	if err != nil {
		return err
	}
	if n != f.Len() {
		return denseLenErrorf(opVectorIntoDense, f.Len(), n)
	}
	staged, err := ad.VectorToDense(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opVectorIntoDense, err)
	}

	return dst.CopyFrom(staged)
}

// VectorIntoField writes a (3, N) array into dst, which must have N points.
// dst is unchanged whenever an error is returned.
func (ad *Adapter) VectorIntoField(a *dense.Array, dst *field.VectorField1D) error {
	if dst == nil {
		return fmt.Errorf("%s: %w", opVectorIntoField, ErrNilOperand)
	}
	n, err := checkShape(opVectorIntoField, a, _wantVector, tensor.Dim)
	if err != nil {
		return err
	}
	if n != dst.Len() {
		return fieldLenErrorf(opVectorIntoField, n, dst.Len())
	}
	staged, err := ad.VectorFromDense(a)
	if err != nil {
		return fmt.Errorf("%s: %w", opVectorIntoField, err)
	}

	return dst.CopyFrom(staged)
}

// TensorIntoDense writes f into dst, which must have shape (3, 3, f.Len()).
// dst is unchanged whenever an error is returned.
func (ad *Adapter) TensorIntoDense(f *field.TensorField1D, dst *dense.Array) error {
	if f == nil {
		return fmt.Errorf("%s: %w", opTensorIntoDense, ErrNilOperand)
	}
	n, err := checkShape(opTensorIntoDense, dst, _wantTensor, tensor.Dim, tensor.Dim)
	if err != nil {
		return err
	}
	if n != f.Len() {
		return denseLenErrorf(opTensorIntoDense, f.Len(), n)
	}
	staged, err := ad.TensorToDense(f)
	if err != nil {
		return fmt.Errorf("%s: %w", opTensorIntoDense, err)
	}

	return dst.CopyFrom(staged)
}

// TensorIntoField writes a (3, 3, N) array into dst, which must have N points.
// dst is unchanged whenever an error is returned.
func (ad *Adapter) TensorIntoField(a *dense.Array, dst *field.TensorField1D) error {
	if dst == nil {
		return fmt.Errorf("%s: %w", opTensorIntoField, ErrNilOperand)
	}
	n, err := checkShape(opTensorIntoField, a, _wantTensor, tensor.Dim, tensor.Dim)
	if err != nil {
		return err
	}
	if n != dst.Len() {
		return fieldLenErrorf(opTensorIntoField, n, dst.Len())
	}
	staged, err := ad.TensorFromDense(a)
	if err != nil {
		return fmt.Errorf("%s: %w", opTensorIntoField, err)
	}

	return dst.CopyFrom(staged)
}
