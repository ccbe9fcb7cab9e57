// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"github.com/katalvlaran/tensorfield/tensor"
)

// VectorField1D is an ordered, fixed-length sequence of rank-1 tensors.
type VectorField1D struct {
	points[tensor.R1]
}

// NewVectorField1D allocates n zero vectors.
// Errors: ErrNegativeLength when n < 0.
func NewVectorField1D(n int) (*VectorField1D, error) {
	p, err := newPoints[tensor.R1]("VectorField1D", n)
	if err != nil {
		return nil, err
	}

	return &VectorField1D{points: p}, nil
}

// VectorField1DFrom builds a field holding a copy of values.
func VectorField1DFrom(values ...tensor.R1) *VectorField1D {
	f, _ := NewVectorField1D(len(values))
	copy(f.data, values)

	return f
}

// CopyFrom overwrites every point with src's values.
// Lengths must match and src must be non-nil; on ErrDimensionMismatch
// nothing is written.
func (f *VectorField1D) CopyFrom(src *VectorField1D) error {
	if src == nil {
		return nilOperandErrorf("VectorField1D", "CopyFrom")
	}

	return f.copyFrom(&src.points)
}

// Clone returns an independent copy of the field.
func (f *VectorField1D) Clone() *VectorField1D {
	return &VectorField1D{points: f.clone()}
}

// Equal reports exact point-wise, component-wise equality.
func (f *VectorField1D) Equal(other *VectorField1D) bool {
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

// Scale multiplies every vector by c.
func (f *VectorField1D) Scale(c float64) {
	for i := range f.data {
		f.data[i].Scale(c)
	}
}

// Div divides every vector by c; c == 0 is rejected without mutation.
func (f *VectorField1D) Div(c float64) error {
	if c == 0 {
		return fmt.Errorf("VectorField1D.Div: %w", tensor.ErrDivisionByZero)
	}
	for i := range f.data {
		_ = f.data[i].Div(c) // c != 0
	}

	return nil
}

// AddConst adds the constant vector u at every point.
func (f *VectorField1D) AddConst(u tensor.R1) {
	for i := range f.data {
		f.data[i].Add(u)
	}
}

// SubConst subtracts the constant vector u at every point.
func (f *VectorField1D) SubConst(u tensor.R1) {
	for i := range f.data {
		f.data[i].Sub(u)
	}
}

// Add adds other point-wise. Lengths must match.
func (f *VectorField1D) Add(other *VectorField1D) error {
	if other == nil {
		return nilOperandErrorf("VectorField1D", "Add")
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
func (f *VectorField1D) Sub(other *VectorField1D) error {
	if other == nil {
		return nilOperandErrorf("VectorField1D", "Sub")
	}
	if err := f.checkSameLen("Sub", &other.points); err != nil {
		return err
	}
	for i := range f.data {
		f.data[i].Sub(other.data[i])
	}

	return nil
}

// Norms returns the Euclidean norm at every point as a scalar field.
func (f *VectorField1D) Norms() *ScalarField1D {
	out, _ := NewScalarField1D(len(f.data))
	for i := range f.data {
		out.data[i] = tensor.Norm(f.data[i])
	}

	return out
}
