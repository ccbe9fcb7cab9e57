// Package adapter converts 1-D physical fields to and from dense
// interchange arrays.
//
// What & Why:
//
//	External tooling works on dense, axis-ordered numeric arrays; field
//	containers work on point-indexed tensor values with 1-based components.
//	The Adapter is the only bridge between the two and owns the axis
//	conventions:
//
//		ScalarField1D  ↔  shape (N)        a[i]       = f[i]
//		VectorField1D  ↔  shape (3, N)     a[c, i]    = f[i] component c+1
//		TensorField1D  ↔  shape (3, 3, N)  a[r, c, i] = f[i] component (r+1, c+1)
//
//	Component translation always goes through tensor.R1Axis / tensor.R2Axes,
//	in both directions.
//
// Guarantees:
//
//   - Every conversion allocates its result; nothing aliases the input.
//   - Conversions are atomic: on error nothing is returned and no
//     caller-supplied destination is modified.
//   - Under the default configuration To*/From* are exact mutual inverses and
//     non-finite values pass through unchanged.
//
// Configuration:
//
//	Numeric policy is explicit: New(opts...) takes WithRejectNonFinite or
//	WithNaNReplacement instead of reading any global state. The package-level
//	functions use the default configuration.
//
// Complexity:
//
//	Every conversion is O(N) time and O(N) space.
package adapter
