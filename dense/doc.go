// Package dense provides the dense interchange array exchanged with external
// analysis tooling.
//
// What & Why:
//
//	Array is a row-major float64 buffer with a fixed shape of rank 1, 2 or 3.
//	It is deliberately small: construction from a shape, shape introspection,
//	and bounds-checked multi-index At/Set. Zero-length axes are legal so that
//	an empty field has a dense counterpart.
//
// Complexity:
//
//	New, Clone, Equal, String: O(len). At/Set/Shape: O(rank).
//
// Interop:
//
//	ToMat/FromMat and ToVec/FromVec copy to and from gonum's mat.Dense and
//	mat.VecDense for tooling already built on gonum.
package dense
