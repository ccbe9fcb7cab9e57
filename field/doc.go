// Package field provides fixed-length 1-dimensional physical fields.
//
// ScalarField1D, VectorField1D and TensorField1D hold one float64, tensor.R1
// or tensor.R2 per point of a 1-D discretization. A field's length N is fixed
// by its constructor; there is no resize. Points are indexed 0..N-1.
//
// Element access is copy-on-read: At returns an independent value, so
// mutating it never touches the field until it is written back with Set.
// New fields are zero-initialized.
//
// Fields are not safe for concurrent mutation; callers sharing one field
// across goroutines must serialize access themselves.
package field
