package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	d, err := vector.New(1, 2, 3).Dot(vector.New(4, -5, 6))
	require.NoError(t, err)
	require.Equal(t, 12, d)

	_, err = vector.New(1, 2).Dot(vector.New(1))
	require.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = vector.New[float64]().Dot(vector.New[float64]())
	require.ErrorIs(t, err, shape.ErrEmptyOperand)
}

func TestReductions(t *testing.T) {
	v := vector.New(3., -4., 0.)

	s, err := v.Sum()
	require.NoError(t, err)
	require.Equal(t, -1.0, s)

	sq, err := v.SqSum()
	require.NoError(t, err)
	require.Equal(t, 25.0, sq)

	n1, err := v.Norm1()
	require.NoError(t, err)
	require.Equal(t, 7.0, n1)

	ninf, err := v.NormInf()
	require.NoError(t, err)
	require.Equal(t, 4.0, ninf)

	n, err := v.Norm()
	require.NoError(t, err)
	require.Equal(t, 5.0, n)
}

// TestReductions_EmptyPolicy pins the fail-fast empty-vector policy.
func TestReductions_EmptyPolicy(t *testing.T) {
	e := vector.New[float64]()
	for name, f := range map[string]func() (float64, error){
		"Sum":     e.Sum,
		"SqSum":   e.SqSum,
		"Norm1":   e.Norm1,
		"NormInf": e.NormInf,
		"Norm":    e.Norm,
	} {
		_, err := f()
		require.ErrorIs(t, err, shape.ErrEmptyOperand, name)
	}
}

func TestLinearCombination(t *testing.T) {
	e1 := vector.New(1., 0., 0.)
	e2 := vector.New(0., 1., 0.)
	e3 := vector.New(0., 0., 1.)

	got, err := vector.LinearCombination([]*vector.Vector[float64]{e1, e2, e3}, []float64{10, -2, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{10, -2, 0.5}, got.Values())
	require.Equal(t, []float64{1, 0, 0}, e1.Values(), "inputs must stay untouched")

	v1 := vector.New(1., 2., 3.)
	v2 := vector.New(0., 10., -100.)
	got, err = vector.LinearCombination([]*vector.Vector[float64]{v1, v2}, []float64{10, -2})
	require.NoError(t, err)
	require.Equal(t, []float64{10, 0, 230}, got.Values())
}

func TestLinearCombination_Errors(t *testing.T) {
	v := vector.New(1, 2)

	_, err := vector.LinearCombination([]*vector.Vector[int]{v}, []int{1, 2})
	require.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = vector.LinearCombination([]*vector.Vector[int]{}, []int{})
	require.ErrorIs(t, err, shape.ErrEmptyOperand)

	_, err = vector.LinearCombination([]*vector.Vector[int]{v, vector.New(1)}, []int{1, 1})
	require.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = vector.LinearCombination([]*vector.Vector[int]{v, nil}, []int{1, 1})
	require.ErrorIs(t, err, shape.ErrNilOperand)
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		u, v *vector.Vector[float64]
		t    float64
		want []float64
	}{
		{"start", vector.New(0.), vector.New(1.), 0, []float64{0}},
		{"end", vector.New(0.), vector.New(1.), 1, []float64{1}},
		{"half", vector.New(0.), vector.New(1.), 0.5, []float64{0.5}},
		{"pair", vector.New(2., 1.), vector.New(4., 2.), 0.3, []float64{2.6, 1.3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vector.Lerp(tc.u, tc.v, tc.t)
			require.NoError(t, err)
			require.True(t, got.EqualApprox(vector.New(tc.want...), 1e-12), got.String())
		})
	}

	_, err := vector.Lerp(vector.New(1.), vector.New(1., 2.), 0.5)
	require.ErrorIs(t, err, shape.ErrShapeMismatch)
}

func TestCrossProduct(t *testing.T) {
	got, err := vector.CrossProduct(vector.New(1, 2, 3), vector.New(4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, []int{-3, 6, -3}, got.Values())

	gotF, err := vector.CrossProduct(vector.New(0., 0., 1.), vector.New(1., 0., 0.))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0}, gotF.Values())

	_, err = vector.CrossProduct(vector.New(1, 2), vector.New(4, 5, 6))
	require.ErrorIs(t, err, shape.ErrDimension)
	_, err = vector.CrossProduct(vector.New(1, 2, 3), vector.New(4, 5, 6, 7))
	require.ErrorIs(t, err, shape.ErrDimension)
}

func TestAngleCos(t *testing.T) {
	c, err := vector.AngleCos(vector.New(1., 0.), vector.New(1., 0.))
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)

	c, err = vector.AngleCos(vector.New(1., 0.), vector.New(0., 1.))
	require.NoError(t, err)
	require.InDelta(t, 0.0, c, 1e-12)

	c, err = vector.AngleCos(vector.New(-1., 1.), vector.New(1., -1.))
	require.NoError(t, err)
	require.InDelta(t, -1.0, c, 1e-12)

	// integers are not truncated
	c, err = vector.AngleCos(vector.New(1, 2, 3), vector.New(4, 5, 6))
	require.NoError(t, err)
	require.InDelta(t, 32/(math.Sqrt(14)*math.Sqrt(77)), c, 1e-12)

	_, err = vector.AngleCos(vector.New(0., 0.), vector.New(1., 1.))
	require.ErrorIs(t, err, shape.ErrDomain)

	_, err = vector.AngleCos(vector.New(1.), vector.New(1., 1.))
	require.ErrorIs(t, err, shape.ErrShapeMismatch)

	_, err = vector.AngleCos(vector.New[int](), vector.New[int]())
	require.ErrorIs(t, err, shape.ErrEmptyOperand)
}

// TestAngleCos_NoIntegerOverflow uses int8 inputs whose squares and dot
// product do not fit in int8.
func TestAngleCos_NoIntegerOverflow(t *testing.T) {
	c, err := vector.AngleCos(vector.New[int8](100, 100), vector.New[int8](100, 100))
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)

	c, err = vector.AngleCos(vector.New[int8](100, 100), vector.New[int8](100, 0))
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt2, c, 1e-12)

	c, err = vector.AngleCos(vector.New[int8](-128, 0), vector.New[int8](127, 0))
	require.NoError(t, err)
	require.InDelta(t, -1.0, c, 1e-12)
}
