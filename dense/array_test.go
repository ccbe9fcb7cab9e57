// Package dense_test contains unit tests for the dense interchange array.
package dense_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorfield/dense"
)

// TestNewInvalidShapes ensures New rejects empty, too-deep and negative shapes.
func TestNewInvalidShapes(t *testing.T) {
	bad := [][]int{
		{},
		{1, 2, 3, 4},
		{-1},
		{3, -2},
		{3, 3, -1},
	}
	for _, shape := range bad {
		_, err := dense.New(shape...)
		require.ErrorIs(t, err, dense.ErrBadShape, "shape %v", shape)
	}
}

// TestNewZeroLengthAxes ensures zero-length axes are legal.
func TestNewZeroLengthAxes(t *testing.T) {
	for _, shape := range [][]int{{0}, {3, 0}, {3, 3, 0}} {
		a, err := dense.New(shape...)
		require.NoError(t, err)
		require.Equal(t, shape, a.Shape())
		require.Equal(t, 0, a.Len())
	}
}

// TestShapeIntrospection verifies Rank, Shape, Dim and Len.
func TestShapeIntrospection(t *testing.T) {
	a, err := dense.New(3, 3, 5)
	require.NoError(t, err)

	require.Equal(t, 3, a.Rank())
	require.Equal(t, []int{3, 3, 5}, a.Shape())
	require.Equal(t, 45, a.Len())

	d, err := a.Dim(2)
	require.NoError(t, err)
	require.Equal(t, 5, d)

	_, err = a.Dim(3)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	// Shape returns a copy.
	s := a.Shape()
	s[0] = 99
	require.Equal(t, []int{3, 3, 5}, a.Shape())
}

// TestAtSetRowMajor validates Set/At and the row-major layout.
func TestAtSetRowMajor(t *testing.T) {
	a, err := dense.New(2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, a.Set(7.5, 1, 2, 3))
	v, err := a.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	// Offset 1*12 + 2*4 + 3 = 23 is the last element.
	require.Equal(t, 7.5, a.Data()[23])
}

// TestAtSetErrors ensures wrong index counts and out-of-range indices fail without writes.
func TestAtSetErrors(t *testing.T) {
	a, err := dense.New(3, 2)
	require.NoError(t, err)

	_, err = a.At(0)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = a.At(0, 0, 0)
	require.ErrorIs(t, err, dense.ErrBadShape)
	_, err = a.At(3, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	_, err = a.At(0, -1)
	require.ErrorIs(t, err, dense.ErrOutOfRange)

	require.ErrorIs(t, a.Set(1, 0, 2), dense.ErrOutOfRange)
	require.ErrorIs(t, a.Set(1), dense.ErrBadShape)
	require.Equal(t, make([]float64, 6), a.Data())
}

// TestNonFiniteStored ensures NaN and ±Inf are stored as given.
func TestNonFiniteStored(t *testing.T) {
	a, _ := dense.New(3)
	require.NoError(t, a.Set(math.NaN(), 0))
	require.NoError(t, a.Set(math.Inf(1), 1))
	require.NoError(t, a.Set(math.Inf(-1), 2))

	v, _ := a.At(0)
	require.True(t, math.IsNaN(v))
	v, _ = a.At(1)
	require.True(t, math.IsInf(v, 1))
	v, _ = a.At(2)
	require.True(t, math.IsInf(v, -1))
}

// TestFromSlice checks copying construction and its length validation.
func TestFromSlice(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	a, err := dense.FromSlice(src, 2, 3)
	require.NoError(t, err)
	src[0] = 100 // must not alias

	v, _ := a.At(0, 0)
	require.Equal(t, 1.0, v)
	v, _ = a.At(1, 0)
	require.Equal(t, 4.0, v)

	_, err = dense.FromSlice(src, 4, 2)
	require.ErrorIs(t, err, dense.ErrDimensionMismatch)

	_, err = dense.FromSlice(src)
	require.ErrorIs(t, err, dense.ErrBadShape)
}

// TestCloneAndEqual ensures Clone is deep and Equal compares shape and values exactly.
func TestCloneAndEqual(t *testing.T) {
	a, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	b := a.Clone()
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set(9, 0, 0))
	require.False(t, a.Equal(b))

	c, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 4)
	require.False(t, a.Equal(c)) // same data, different rank

	d, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 1, 4)
	require.False(t, a.Equal(d)) // same rank, different shape

	a.Fill(0)
	require.Equal(t, []float64{0, 0, 0, 0}, a.Data())
}

// TestString checks the diagnostic rendering for each rank.
func TestString(t *testing.T) {
	a, _ := dense.FromSlice([]float64{1, 2, 3}, 3)
	require.Equal(t, "[1, 2, 3]\n", a.String())

	b, _ := dense.FromSlice([]float64{1, 4, 2, 5, 3, 6}, 3, 2)
	require.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", b.String())

	c, _ := dense.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2, 2, 2)
	require.Equal(t, "[1, 2]\n[3, 4]\n\n[5, 6]\n[7, 8]\n", c.String())

	e, _ := dense.New(2, 0)
	require.Equal(t, "[]\n[]\n", e.String())

	var zero dense.Array
	require.NotPanics(t, func() { _ = zero.String() })
	require.Equal(t, "", zero.String())
}

// TestCopyFrom ensures values are copied only between identical shapes.
func TestCopyFrom(t *testing.T) {
	dst, _ := dense.New(2, 2)
	src, _ := dense.FromSlice([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, dst.CopyFrom(src))
	require.True(t, dst.Equal(src))

	other, _ := dense.FromSlice([]float64{9, 9, 9, 9}, 4)
	require.ErrorIs(t, dst.CopyFrom(other), dense.ErrDimensionMismatch)
	require.True(t, dst.Equal(src)) // untouched

	require.ErrorIs(t, dst.CopyFrom(nil), dense.ErrNilArray)
}
