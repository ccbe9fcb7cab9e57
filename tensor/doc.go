// Package tensor provides fixed-arity physical tensor values in R3.
//
// What & Why:
//
//	R1 is a rank-1 tensor (vector) with exactly 3 Cartesian components and R2
//	is a rank-2 tensor with exactly 9 components. Components are addressed the
//	way physics texts address them: 1-based, k ∈ {1,2,3} and (i,j) ∈ {1,2,3}².
//	Construction is strongly typed (3 or 9 explicit float64 parameters), so a
//	value can never carry the wrong number of components.
//
// Axis mapping:
//
//	R1Axis and R2Axes are the single place where a 1-based component index is
//	translated into a 0-based axis position. Storage inside this package and
//	every dense-array conversion go through them.
//
// Kernels:
//
//	Dot, Cross, Norm, Trace, Transpose, Dyad, Skew/Unskew, MulVec/VecMul and
//	Det are computed with gonum's spatial/r3 types (r3.Vec, r3.Mat);
//	ToR3/R1FromR3 and ToMat/R2FromMat bridge the two representations.
//
// Complexity:
//
//	Every operation is O(1); values are plain arrays copied by assignment.
package tensor
