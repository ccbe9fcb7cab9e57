// SPDX-License-Identifier: MIT

// Package tensor - arithmetic kernels over gonum spatial/r3.
//
// Purpose:
//   - Provide the tensor algebra the field containers rely on (dot, cross,
//     norm, trace, dyad, skew) without reimplementing r3.
//   - Keep every kernel pure: arguments are values, results are new values.
//
// Complexity quicksheet:
//   - All kernels O(1); the r3.Mat bridges allocate one 3×3 backing array.
package tensor

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Dot returns the scalar product u·v.
func Dot(u, v R1) float64 { return r3.Dot(u.ToR3(), v.ToR3()) }

// Cross returns the vector product u×v.
func Cross(u, v R1) R1 { return R1FromR3(r3.Cross(u.ToR3(), v.ToR3())) }

// Norm returns the Euclidean (L2) norm of u.
func Norm(u R1) float64 { return r3.Norm(u.ToR3()) }

// MulVec returns A·u (contraction over the second index of A).
func MulVec(a R2, u R1) R1 { return R1FromR3(a.ToMat().MulVec(u.ToR3())) }

// VecMul returns u·A (contraction over the first index of A).
func VecMul(u R1, a R2) R1 { return R1FromR3(a.ToMat().MulVecTrans(u.ToR3())) }

// VDotADotU returns v·A·u.
func VDotADotU(v R1, a R2, u R1) float64 { return Dot(v, MulVec(a, u)) }

// MatMul returns the single contraction A·B.
func MatMul(a, b R2) R2 {
	m := r3.NewMat(nil)
	m.Mul(a.ToMat(), b.ToMat())

	return R2FromMat(m)
}

// Trace returns A11 + A22 + A33.
func Trace(a R2) float64 { return mat.Trace(a.ToMat()) }

// Det returns the determinant of A.
func Det(a R2) float64 { return a.ToMat().Det() }

// Transpose returns Aᵀ.
func Transpose(a R2) R2 {
	var t R2
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			t.c[col][row] = a.c[row][col]
		}
	}

	return t
}

// Dyad returns the tensor product u⊗v, (u⊗v)ij = ui·vj.
func Dyad(u, v R1) R2 {
	m := r3.NewMat(nil)
	m.Outer(1, u.ToR3(), v.ToR3())

	return R2FromMat(m)
}

// Skew returns the skew-symmetric tensor U such that U·v = u×v:
//
//	[  0   -u3   u2 ]
//	[  u3   0   -u1 ]
//	[ -u2   u1   0  ]
func Skew(u R1) R2 {
	u1, u2, u3 := u.c[0], u.c[1], u.c[2]

	return NewR2(
		0, -u3, u2,
		u3, 0, -u1,
		-u2, u1, 0,
	)
}

// Unskew returns the vector (A32, A13, A21) associated with a skew-symmetric A.
// Symmetry is not checked; for a skew-symmetric A, Unskew(Skew(u)) == u.
func Unskew(a R2) R1 {
	return NewR1(a.c[2][1], a.c[0][2], a.c[1][0])
}
