package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensorfield/field"
	"github.com/katalvlaran/tensorfield/tensor"
)

func TestScalarFieldArithmetic(t *testing.T) {
	s := field.ScalarField1DFrom([]float64{1, 2, 3})

	s.Scale(2)
	require.Equal(t, []float64{2, 4, 6}, s.Values())

	require.NoError(t, s.Div(2))
	require.Equal(t, []float64{1, 2, 3}, s.Values())

	s.AddConst(1)
	require.Equal(t, []float64{2, 3, 4}, s.Values())

	s.SubConst(2)
	require.Equal(t, []float64{0, 1, 2}, s.Values())

	require.NoError(t, s.Add(field.ScalarField1DFrom([]float64{1, 1, 1})))
	require.Equal(t, []float64{1, 2, 3}, s.Values())

	require.NoError(t, s.Sub(field.ScalarField1DFrom([]float64{1, 2, 3})))
	require.Equal(t, []float64{0, 0, 0}, s.Values())

	require.ErrorIs(t, s.Div(0), tensor.ErrDivisionByZero)
}

func TestScalarFieldMismatch(t *testing.T) {
	s := field.ScalarField1DFrom([]float64{1, 2, 3})

	err := s.Add(field.ScalarField1DFrom([]float64{1}))
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
	require.Equal(t, []float64{1, 2, 3}, s.Values()) // untouched

	err = s.Sub(field.ScalarField1DFrom(nil))
	require.ErrorIs(t, err, field.ErrDimensionMismatch)
}

func TestVectorFieldArithmetic(t *testing.T) {
	v := field.VectorField1DFrom(tensor.NewR1(1, 2, 3), tensor.NewR1(4, 5, 6))

	v.Scale(2)
	require.True(t, v.Equal(field.VectorField1DFrom(tensor.NewR1(2, 4, 6), tensor.NewR1(8, 10, 12))))

	require.NoError(t, v.Div(2))
	v.AddConst(tensor.NewR1(1, 1, 1))
	v.SubConst(tensor.NewR1(1, 1, 1))
	require.True(t, v.Equal(field.VectorField1DFrom(tensor.NewR1(1, 2, 3), tensor.NewR1(4, 5, 6))))

	require.NoError(t, v.Sub(v.Clone()))
	require.True(t, v.Equal(field.VectorField1DFrom(tensor.R1{}, tensor.R1{})))

	require.NoError(t, v.Add(field.VectorField1DFrom(tensor.NewR1(3, 4, 0), tensor.NewR1(0, 0, 2))))
	require.Equal(t, []float64{5, 2}, v.Norms().Values())

	require.ErrorIs(t, v.Add(field.VectorField1DFrom()), field.ErrDimensionMismatch)
	require.ErrorIs(t, v.Div(0), tensor.ErrDivisionByZero)
}

func TestTensorFieldArithmetic(t *testing.T) {
	tf := field.TensorField1DFrom(tensor.Identity(), tensor.Identity())

	tf.Scale(3)
	require.Equal(t, []float64{9, 9}, tf.Traces().Values())

	require.NoError(t, tf.Div(3))
	tf.AddConst(tensor.Identity())
	tf.SubConst(tensor.Identity())
	require.True(t, tf.Equal(field.TensorField1DFrom(tensor.Identity(), tensor.Identity())))

	require.NoError(t, tf.Add(tf.Clone()))
	require.Equal(t, []float64{6, 6}, tf.Traces().Values())

	require.NoError(t, tf.Sub(tf.Clone()))
	require.Equal(t, []float64{0, 0}, tf.Traces().Values())

	require.ErrorIs(t, tf.Sub(field.TensorField1DFrom(tensor.Identity())), field.ErrDimensionMismatch)
	require.ErrorIs(t, tf.Div(0), tensor.ErrDivisionByZero)
}
