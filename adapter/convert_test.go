// Package adapter_test contains unit tests for the field ↔ dense conversions.
package adapter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorfield/adapter"
	"github.com/katalvlaran/tensorfield/dense"
	"github.com/katalvlaran/tensorfield/field"
	"github.com/katalvlaran/tensorfield/tensor"
)

// mustArray builds a dense array or fails the test.
func mustArray(t *testing.T, data []float64, shape ...int) *dense.Array {
	t.Helper()
	a, err := dense.FromSlice(data, shape...)
	require.NoError(t, err)

	return a
}

// sampleR2 returns a tensor whose component (i,j) is 10*i + j + offset.
func sampleR2(offset float64) tensor.R2 {
	return tensor.NewR2(
		11+offset, 12+offset, 13+offset,
		21+offset, 22+offset, 23+offset,
		31+offset, 32+offset, 33+offset,
	)
}

// TestScalarRoundTrip covers [1,2,3] ↔ (3) in both directions.
func TestScalarRoundTrip(t *testing.T) {
	f := field.ScalarField1DFrom([]float64{1, 2, 3})

	a, err := adapter.ScalarToDense(f)
	require.NoError(t, err)
	require.Equal(t, []int{3}, a.Shape())
	require.Equal(t, []float64{1, 2, 3}, a.Data())

	back, err := adapter.ScalarFromDense(a)
	require.NoError(t, err)
	require.True(t, back.Equal(f))
}

// TestVectorLayout pins the (3, N) layout: a[c, i] is component c+1 of point i.
func TestVectorLayout(t *testing.T) {
	f := field.VectorField1DFrom(tensor.NewR1(1, 2, 3), tensor.NewR1(4, 5, 6))

	a, err := adapter.VectorToDense(f)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, a.Shape())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.Data())

	x, err := a.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, x)

	back, err := adapter.VectorFromDense(a)
	require.NoError(t, err)
	require.Equal(t, 2, back.Len())
	require.True(t, back.Equal(f))
}

// TestVectorFromDenseExplicit reads a hand-built (3, 2) array.
func TestVectorFromDenseExplicit(t *testing.T) {
	a := mustArray(t, []float64{1, 4, 2, 5, 3, 6}, 3, 2)

	f, err := adapter.VectorFromDense(a)
	require.NoError(t, err)

	u, err := f.At(0)
	require.NoError(t, err)
	require.True(t, u.Equal(tensor.NewR1(1, 2, 3)))

	u, err = f.At(1)
	require.NoError(t, err)
	require.True(t, u.Equal(tensor.NewR1(4, 5, 6)))
}

// TestTensorIdentityFromDense reads a (3, 3, 1) identity into one R2.
func TestTensorIdentityFromDense(t *testing.T) {
	a := mustArray(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 3, 3, 1)

	f, err := adapter.TensorFromDense(a)
	require.NoError(t, err)
	require.Equal(t, 1, f.Len())

	got, err := f.At(0)
	require.NoError(t, err)
	require.True(t, got.Equal(tensor.Identity()))
}

// TestTensorRoundTrip checks every component of every point survives exactly.
func TestTensorRoundTrip(t *testing.T) {
	const n = 4
	f, err := field.NewTensorField1D(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, f.Set(i, sampleR2(float64(100*i))))
	}

	a, err := adapter.TensorToDense(f)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, n}, a.Shape())

	var r, c int
	for i := 0; i < n; i++ {
		for r = 0; r < tensor.Dim; r++ {
			for c = 0; c < tensor.Dim; c++ {
				got, err := a.At(r, c, i)
				require.NoError(t, err)
				require.Equal(t, float64(10*(r+1)+(c+1)+100*i), got)
			}
		}
	}

	back, err := adapter.TensorFromDense(a)
	require.NoError(t, err)
	require.True(t, back.Equal(f))
}

// TestEmptyFieldsRoundTrip covers N = 0 for all three kinds.
func TestEmptyFieldsRoundTrip(t *testing.T) {
	s, _ := field.NewScalarField1D(0)
	sa, err := adapter.ScalarToDense(s)
	require.NoError(t, err)
	require.Equal(t, []int{0}, sa.Shape())
	sb, err := adapter.ScalarFromDense(sa)
	require.NoError(t, err)
	require.Equal(t, 0, sb.Len())

	v, _ := field.NewVectorField1D(0)
	va, err := adapter.VectorToDense(v)
	require.NoError(t, err)
	require.Equal(t, []int{3, 0}, va.Shape())
	vb, err := adapter.VectorFromDense(va)
	require.NoError(t, err)
	require.Equal(t, 0, vb.Len())

	tf, _ := field.NewTensorField1D(0)
	ta, err := adapter.TensorToDense(tf)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 0}, ta.Shape())
	tb, err := adapter.TensorFromDense(ta)
	require.NoError(t, err)
	require.Equal(t, 0, tb.Len())
}

// TestConversionsDoNotAlias ensures outputs are independent of inputs.
func TestConversionsDoNotAlias(t *testing.T) {
	f := field.VectorField1DFrom(tensor.NewR1(1, 2, 3))
	a, err := adapter.VectorToDense(f)
	require.NoError(t, err)

	require.NoError(t, a.Set(99, 0, 0))
	u, _ := f.At(0)
	require.True(t, u.Equal(tensor.NewR1(1, 2, 3)))

	g, err := adapter.VectorFromDense(a)
	require.NoError(t, err)
	require.NoError(t, a.Set(-1, 1, 0))
	u, _ = g.At(0)
	require.True(t, u.Equal(tensor.NewR1(99, 2, 3)))
}

// TestFromDenseShapeErrors covers rank and leading-axis violations.
func TestFromDenseShapeErrors(t *testing.T) {
	rank1 := mustArray(t, []float64{1, 2, 3}, 3)
	rank2 := mustArray(t, []float64{1, 2, 3, 4}, 2, 2)
	wide := mustArray(t, make([]float64, 8), 4, 2)
	rank3bad := mustArray(t, make([]float64, 12), 3, 2, 2)

	tests := []struct {
		name string
		call func() error
	}{
		{"scalar from rank 2", func() error { _, err := adapter.ScalarFromDense(rank2); return err }},
		{"vector from rank 1", func() error { _, err := adapter.VectorFromDense(rank1); return err }},
		{"vector from (2,2)", func() error { _, err := adapter.VectorFromDense(rank2); return err }},
		{"vector from (4,2)", func() error { _, err := adapter.VectorFromDense(wide); return err }},
		{"tensor from (3,2,2)", func() error { _, err := adapter.TensorFromDense(rank3bad); return err }},
		{"tensor from rank 2", func() error { _, err := adapter.TensorFromDense(wide); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.ErrorIs(t, err, adapter.ErrShape)
			require.ErrorIs(t, err, dense.ErrBadShape)
		})
	}
}

// TestNilOperands ensures nil inputs fail with ErrNilOperand instead of panicking.
func TestNilOperands(t *testing.T) {
	_, err := adapter.ScalarToDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
	_, err = adapter.VectorToDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
	_, err = adapter.TensorToDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
	_, err = adapter.ScalarFromDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
	_, err = adapter.VectorFromDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
	_, err = adapter.TensorFromDense(nil)
	require.ErrorIs(t, err, adapter.ErrNilOperand)
}

// TestNonFinitePassThrough verifies the default policy copies NaN and ±Inf.
func TestNonFinitePassThrough(t *testing.T) {
	f := field.VectorField1DFrom(tensor.NewR1(math.NaN(), math.Inf(1), math.Inf(-1)))

	a, err := adapter.VectorToDense(f)
	require.NoError(t, err)
	x, _ := a.At(0, 0)
	require.True(t, math.IsNaN(x))
	y, _ := a.At(1, 0)
	require.True(t, math.IsInf(y, 1))
	z, _ := a.At(2, 0)
	require.True(t, math.IsInf(z, -1))

	back, err := adapter.VectorFromDense(a)
	require.NoError(t, err)
	u, _ := back.At(0)
	c1, _ := u.At(1)
	require.True(t, math.IsNaN(c1))
}

// TestRejectNonFinite verifies ErrNaNInf in both directions for all kinds.
func TestRejectNonFinite(t *testing.T) {
	ad := adapter.New(adapter.WithRejectNonFinite())

	_, err := ad.ScalarToDense(field.ScalarField1DFrom([]float64{1, math.NaN()}))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	_, err = ad.ScalarFromDense(mustArray(t, []float64{math.Inf(1)}, 1))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	_, err = ad.VectorToDense(field.VectorField1DFrom(tensor.NewR1(0, 0, math.Inf(-1))))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	_, err = ad.VectorFromDense(mustArray(t, []float64{0, math.NaN(), 0}, 3, 1))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	bad := tensor.Identity()
	require.NoError(t, bad.Set(2, 3, math.NaN()))
	_, err = ad.TensorToDense(field.TensorField1DFrom(bad))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	data := []float64{1, 0, 0, 0, 1, 0, 0, 0, math.Inf(1)}
	_, err = ad.TensorFromDense(mustArray(t, data, 3, 3, 1))
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	// finite data still converts
	a, err := ad.ScalarToDense(field.ScalarField1DFrom([]float64{1, 2}))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, a.Data())
}

// TestNaNReplacement verifies the null-value policy and its order with rejection.
func TestNaNReplacement(t *testing.T) {
	f := field.ScalarField1DFrom([]float64{math.NaN(), 2, math.Inf(1)})

	a, err := adapter.New(adapter.WithNaNReplacement(-1)).ScalarToDense(f)
	require.NoError(t, err)
	got := a.Data()
	require.Equal(t, -1.0, got[0])
	require.Equal(t, 2.0, got[1])
	require.True(t, math.IsInf(got[2], 1))

	strict := adapter.New(adapter.WithNaNReplacement(0), adapter.WithRejectNonFinite())
	_, err = strict.ScalarToDense(f)
	require.ErrorIs(t, err, adapter.ErrNaNInf)

	nanOnly := field.ScalarField1DFrom([]float64{math.NaN()})
	b, err := strict.ScalarToDense(nanOnly)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, b.Data())
}
