// Package tensorfield moves physical fields sampled on 1-D point sets
// between typed tensor containers and dense, axis-ordered numeric arrays.
//
// What is tensorfield?
//
//	A small, deterministic library that brings together:
//		• Tensor values: R1 (vector) and R2 (second-order tensor) in R3,
//		  1-based components, kernels on top of gonum/spatial/r3
//		• Field containers: scalar, vector and tensor fields of N points
//		• Dense arrays: row-major float64 arrays of rank 1..3, with gonum/mat interop
//		• Adapter: the six field ↔ dense conversions and their write-into variants
//		• Codec: a binary array format with optional zstd byte-plane compression
//
// Under the hood, everything is organized under five subpackages:
//
//	tensor/   R1, R2, the 1-based ↔ 0-based axis mapping, kernels
//	field/    ScalarField1D, VectorField1D, TensorField1D
//	dense/    Array: shape, strides, safe accessors, gonum bridge
//	adapter/  Adapter with explicit numeric policy (functional options)
//	codec/    Encode / Decode
//
// Axis conventions (N = number of points, always the trailing axis):
//
//	ScalarField1D  ↔  (N)
//	VectorField1D  ↔  (3, N)       a[c, i]    = component c+1 of point i
//	TensorField1D  ↔  (3, 3, N)    a[r, c, i] = component (r+1, c+1) of point i
//
// Quick example:
//
//	f := field.VectorField1DFrom(tensor.NewR1(1, 2, 3), tensor.NewR1(4, 5, 6))
//	a, _ := adapter.VectorToDense(f)   // shape (3, 2): [[1 4] [2 5] [3 6]]
//	g, _ := adapter.VectorFromDense(a) // g.Equal(f) == true
//
// See examples/ for runnable programs.
package tensorfield
