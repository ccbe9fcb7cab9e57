// SPDX-License-Identifier: MIT

package adapter

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/field"
)

// std is the default-configured Adapter behind the package-level functions.
// Adapters are immutable, so sharing it is safe.
var std = New()

// ScalarToDense converts with the default configuration. See Adapter.ScalarToDense.
func ScalarToDense(f *field.ScalarField1D) (*dense.Array, error) { return std.ScalarToDense(f) }

// ScalarFromDense converts with the default configuration. See Adapter.ScalarFromDense.
func ScalarFromDense(a *dense.Array) (*field.ScalarField1D, error) { return std.ScalarFromDense(a) }

// VectorToDense converts with the default configuration. See Adapter.VectorToDense.
func VectorToDense(f *field.VectorField1D) (*dense.Array, error) { return std.VectorToDense(f) }

// VectorFromDense converts with the default configuration. See Adapter.VectorFromDense.
func VectorFromDense(a *dense.Array) (*field.VectorField1D, error) { return std.VectorFromDense(a) }

// TensorToDense converts with the default configuration. See Adapter.TensorToDense.
func TensorToDense(f *field.TensorField1D) (*dense.Array, error) { return std.TensorToDense(f) }

// TensorFromDense converts with the default configuration. See Adapter.TensorFromDense.
func TensorFromDense(a *dense.Array) (*field.TensorField1D, error) { return std.TensorFromDense(a) }

// ScalarIntoDense writes with the default configuration.
func ScalarIntoDense(f *field.ScalarField1D, dst *dense.Array) error {
	return std.ScalarIntoDense(f, dst)
}

// ScalarIntoField writes with the default configuration.
func ScalarIntoField(a *dense.Array, dst *field.ScalarField1D) error {
	return std.ScalarIntoField(a, dst)
}

// VectorIntoDense writes with the default configuration.
func VectorIntoDense(f *field.VectorField1D, dst *dense.Array) error {
	return std.VectorIntoDense(f, dst)
}

// VectorIntoField writes with the default configuration.
func VectorIntoField(a *dense.Array, dst *field.VectorField1D) error {
	return std.VectorIntoField(a, dst)
}

// TensorIntoDense writes with the default configuration.
func TensorIntoDense(f *field.TensorField1D, dst *dense.Array) error {
	return std.TensorIntoDense(f, dst)
}

// TensorIntoField writes with the default configuration.
func TensorIntoField(a *dense.Array, dst *field.TensorField1D) error {
	return std.TensorIntoField(a, dst)
}

// VectorToMat bridges with the default configuration. See Adapter.VectorToMat.
func VectorToMat(f *field.VectorField1D) (*mat.Dense, error) { return std.VectorToMat(f) }

// VectorFromMat bridges with the default configuration. See Adapter.VectorFromMat.
func VectorFromMat(m mat.Matrix) (*field.VectorField1D, error) { return std.VectorFromMat(m) }

// ScalarToVec bridges with the default configuration. See Adapter.ScalarToVec.
func ScalarToVec(f *field.ScalarField1D) (*mat.VecDense, error) { return std.ScalarToVec(f) }

// ScalarFromVec bridges with the default configuration. See Adapter.ScalarFromVec.
func ScalarFromVec(v mat.Vector) (*field.ScalarField1D, error) { return std.ScalarFromVec(v) }

// TensorAtMat bridges with the default configuration. See Adapter.TensorAtMat.
func TensorAtMat(f *field.TensorField1D, i int) (*r3.Mat, error) { return std.TensorAtMat(f, i) }
