// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tensorfield/tensor"
)

// ScalarField1D is an ordered, fixed-length sequence of real values,
// one per point. Len, At, Set and Fill come from the shared point storage.
type ScalarField1D struct {
	points[float64]
}

// NewScalarField1D allocates a zero-initialized scalar field of n points.
// Errors: ErrNegativeLength when n < 0.
func NewScalarField1D(n int) (*ScalarField1D, error) {
	p, err := newPoints[float64]("ScalarField1D", n)
	if err != nil {
		return nil, err
	}

	return &ScalarField1D{points: p}, nil
}

// ScalarField1DFrom builds a field holding a copy of values.
func ScalarField1DFrom(values []float64) *ScalarField1D {
	f, _ := NewScalarField1D(len(values)) // len is never negative
	copy(f.data, values)

	return f
}

// Values returns a copy of all point values in index order.
func (f *ScalarField1D) Values() []float64 {
	out := make([]float64, len(f.data))
	copy(out, f.data)

	return out
}

// CopyFrom overwrites every point with src's values.
// Lengths must match and src must be non-nil; on ErrDimensionMismatch
// nothing is written.
func (f *ScalarField1D) CopyFrom(src *ScalarField1D) error {
	if src == nil {
		return nilOperandErrorf("ScalarField1D", "CopyFrom")
	}

	return f.copyFrom(&src.points)
}

// Clone returns an independent copy of the field.
func (f *ScalarField1D) Clone() *ScalarField1D {
	return &ScalarField1D{points: f.clone()}
}

// Equal reports exact point-wise equality (same length, same values).
func (f *ScalarField1D) Equal(other *ScalarField1D) bool {
	if other == nil {
		return false
	}

	return floats.Equal(f.data, other.data)
}

// Scale multiplies every point by c.
func (f *ScalarField1D) Scale(c float64) {
	floats.Scale(c, f.data)
}

// Div divides every point by c; c == 0 is rejected without mutation.
func (f *ScalarField1D) Div(c float64) error {
	if c == 0 {
		return fmt.Errorf("ScalarField1D.Div: %w", tensor.ErrDivisionByZero)
	}
	for i := range f.data {
		f.data[i] /= c
	}

	return nil
}

// AddConst adds c to every point.
func (f *ScalarField1D) AddConst(c float64) {
	floats.AddConst(c, f.data)
}

// SubConst subtracts c from every point.
func (f *ScalarField1D) SubConst(c float64) {
	floats.AddConst(-c, f.data)
}

// Add adds other point-wise. Lengths must match; nothing is written otherwise.
func (f *ScalarField1D) Add(other *ScalarField1D) error {
	if other == nil {
		return nilOperandErrorf("ScalarField1D", "Add")
	}
	if err := f.checkSameLen("Add", &other.points); err != nil {
		return err
	}
	floats.Add(f.data, other.data)

	return nil
}

// Sub subtracts other point-wise. Lengths must match.
func (f *ScalarField1D) Sub(other *ScalarField1D) error {
	if other == nil {
		return nilOperandErrorf("ScalarField1D", "Sub")
	}
	if err := f.checkSameLen("Sub", &other.points); err != nil {
		return err
	}
	floats.Sub(f.data, other.data)

	return nil
}
