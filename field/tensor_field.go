// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"github.com/katalvlaran/tensorfield/tensor"
)

// TensorField1D is an ordered, fixed-length sequence of rank-2 tensors.
type TensorField1D struct {
	points[tensor.R2]
}

// NewTensorField1D allocates n zero tensors.
// Errors: ErrNegativeLength when n < 0.
func NewTensorField1D(n int) (*TensorField1D, error) {
	p, err := newPoints[tensor.R2]("TensorField1D", n)
	if err != nil {
		return nil, err
	}

	return &TensorField1D{points: p}, nil
}

// TensorField1DFrom builds a field holding a copy of values.
func TensorField1DFrom(values ...tensor.R2) *TensorField1D {
	f, _ := NewTensorField1D(len(values))
	copy(f.data, values)

	return f
}

// CopyFrom overwrites every point with src's values.
// Lengths must match and src must be non-nil; on ErrDimensionMismatch
// nothing is written.
func (f *TensorField1D) CopyFrom(src *TensorField1D) error {
	if src == nil {
		return nilOperandErrorf("TensorField1D", "CopyFrom")
	}

	return f.copyFrom(&src.points)
}

// Clone returns an independent copy of the field.
func (f *TensorField1D) Clone() *TensorField1D {
	return &TensorField1D{points: f.clone()}
}

// Equal reports exact equality over all nine components at every point.
func (f *TensorField1D) Equal(other *TensorField1D) bool {
	if other == nil {
		return false
	}
	if len(f.data) != len(other.data) {
		return false
	}
	for i := range f.data {
		if !f.data[i].Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// Scale multiplies every tensor by c.
func (f *TensorField1D) Scale(c float64) {
	for i := range f.data {
		f.data[i].Scale(c)
	}
}

// Div divides every tensor by c; c == 0 is rejected without mutation.
func (f *TensorField1D) Div(c float64) error {
	if c == 0 {
		return fmt.Errorf("TensorField1D.Div: %w", tensor.ErrDivisionByZero)
	}
	for i := range f.data {
		_ = f.data[i].Div(c)
	}

	return nil
}

// AddConst adds the constant tensor a at every point.
func (f *TensorField1D) AddConst(a tensor.R2) {
	for i := range f.data {
		f.data[i].Add(a)
	}
}

// SubConst subtracts the constant tensor a at every point.
func (f *TensorField1D) SubConst(a tensor.R2) {
	for i := range f.data {
		f.data[i].Sub(a)
	}
}

// Add adds other point-wise. Lengths must match.
func (f *TensorField1D) Add(other *TensorField1D) error {
	if other == nil {
		return nilOperandErrorf("TensorField1D", "Add")
	}
	if err := f.checkSameLen("Add", &other.points); err != nil {
		return err
	}
	for i := range f.data {
		f.data[i].Add(other.data[i])
	}

	return nil
}

// Sub subtracts other point-wise. Lengths must match.
func (f *TensorField1D) Sub(other *TensorField1D) error {
	if other == nil {
		return nilOperandErrorf("TensorField1D", "Sub")
	}
	if err := f.checkSameLen("Sub", &other.points); err != nil {
		return err
	}
	for i := range f.data {
		f.data[i].Sub(other.data[i])
	}

	return nil
}

// Traces returns the trace at every point as a scalar field.
func (f *TensorField1D) Traces() *ScalarField1D {
	out, _ := NewScalarField1D(len(f.data))
	for i := range f.data {
		out.data[i] = tensor.Trace(f.data[i])
	}

	return out
}
