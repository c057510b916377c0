package gonumx_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/gonumx"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const oracleTol = 1e-6

// randomMatrix returns an r×c float64 matrix with integer entries in [-5,5].
func randomMatrix(t *testing.T, r, c int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(11) - 5)
		}
	}
	m, err := matrix.FromRowSlices(rows)
	require.NoError(t, err)

	return m
}

func TestToDense_Layout(t *testing.T) {
	m, err := matrix.FromRowSlices([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	d, err := gonumx.ToDense(m)
	require.NoError(t, err)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))
	require.Equal(t, 2.0, d.At(0, 1))
}

func TestDenseRoundTrip(t *testing.T) {
	m := randomMatrix(t, 3, 5, 1)
	d, err := gonumx.ToDense(m)
	require.NoError(t, err)

	back, err := gonumx.FromDense[float64](d)
	require.NoError(t, err)
	require.True(t, back.Equal(m))

	// copies: mutating the Dense leaves m alone
	d.Set(0, 0, 1000)
	require.True(t, back.Equal(m))
}

func TestFromDense_IntegerTruncation(t *testing.T) {
	d := mat.NewDense(1, 3, []float64{1.9, -1.9, 2})
	m, err := gonumx.FromDense[int](d)
	require.NoError(t, err)
	row, _ := m.Row(0)
	require.Equal(t, []int{1, -1, 2}, row.Values())
}

func TestVectorRoundTrip(t *testing.T) {
	v := vector.New(1.5, -2, 3)
	vd, err := gonumx.ToVecDense(v)
	require.NoError(t, err)
	require.Equal(t, 3, vd.Len())
	require.Equal(t, -2.0, vd.AtVec(1))

	back, err := gonumx.FromVector[float64](vd)
	require.NoError(t, err)
	require.True(t, back.Equal(v))
}

func TestConversions_Errors(t *testing.T) {
	_, err := gonumx.ToDense[float64](nil)
	require.ErrorIs(t, err, shape.ErrNilOperand)

	e, _ := matrix.Zeros[float64](0, 0)
	_, err = gonumx.ToDense(e)
	require.ErrorIs(t, err, shape.ErrEmptyOperand)

	_, err = gonumx.ToVecDense(vector.New[int]())
	require.ErrorIs(t, err, shape.ErrEmptyOperand)

	_, err = gonumx.FromDense[int](nil)
	require.ErrorIs(t, err, shape.ErrNilOperand)

	_, err = gonumx.FromVector[int](nil)
	require.ErrorIs(t, err, shape.ErrNilOperand)

	rect, _ := matrix.Zeros[float64](2, 3)
	_, err = gonumx.Det(rect)
	require.ErrorIs(t, err, shape.ErrNotSquare)
}

// TestDeterminant_AgainstGonum compares the cofactor expansion with gonum's LU.
func TestDeterminant_AgainstGonum(t *testing.T) {
	for n := 1; n <= 7; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := randomMatrix(t, n, n, int64(n))
			want, err := gonumx.Det(m)
			require.NoError(t, err)
			got, err := m.Determinant()
			require.NoError(t, err)
			require.InDelta(t, want, got, oracleTol*max(1, abs(want)))
		})
	}
}

func TestDet_KnownValue(t *testing.T) {
	m, _ := matrix.FromRowSlices([][]int{{1, 22, 3}, {30, 51, 16}, {7, -8, 5}})
	d, err := gonumx.Det(m)
	require.NoError(t, err)
	require.InDelta(t, -2244.0, d, oracleTol)
}

// TestMulMat_AgainstGonum compares the column-dot product with mat.Dense.Mul.
func TestMulMat_AgainstGonum(t *testing.T) {
	a := randomMatrix(t, 4, 6, 10)
	b := randomMatrix(t, 6, 3, 11)

	got, err := a.MulMat(b)
	require.NoError(t, err)

	da, _ := gonumx.ToDense(a)
	db, _ := gonumx.ToDense(b)
	var want mat.Dense
	want.Mul(da, db)

	dg, err := gonumx.ToDense(got)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(dg, &want, oracleTol))
}

func TestMulVec_AgainstGonum(t *testing.T) {
	a := randomMatrix(t, 5, 4, 20)
	x := vector.New(1.0, -2, 0.5, 3)

	got, err := a.MulVec(x)
	require.NoError(t, err)

	da, _ := gonumx.ToDense(a)
	dx, _ := gonumx.ToVecDense(x)
	var want mat.VecDense
	want.MulVec(da, dx)

	dg, _ := gonumx.ToVecDense(got)
	require.True(t, mat.EqualApprox(dg, &want, oracleTol))
}

// TestRank_AgainstGonum compares Rank with the number of non-negligible singular values.
func TestRank_AgainstGonum(t *testing.T) {
	singular, _ := matrix.FromRowSlices([][]float64{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}})
	for _, m := range []*matrix.Matrix[float64]{singular, randomMatrix(t, 4, 4, 3)} {
		d, _ := gonumx.ToDense(m)
		var svd mat.SVD
		require.True(t, svd.Factorize(d, mat.SVDNone))
		want := 0
		for _, s := range svd.Values(nil) {
			if s > 1e-9 {
				want++
			}
		}
		require.Equal(t, want, m.Rank())
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
