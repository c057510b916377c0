// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for RowEchelon and Rank.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/shape"
	"github.com/stretchr/testify/require"
)

const rrefTol = 1e-9

// TestRowEchelon_FullRank reduces a non-singular 3×3 literal (det -2244),
// so the reduced form is the identity.
func TestRowEchelon_FullRank(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 22, 3}, {30, 51, 16}, {7, -8, 5}})
	before := m.Clone()

	r, err := m.RowEchelon()
	require.NoError(t, err)
	RequireIsRREF(t, r, rrefTol)

	id, _ := matrix.Identity[float64](3)
	require.True(t, r.EqualApprox(id, rrefTol), "got\n%s", r)
	require.True(t, m.Equal(before), "input must not be mutated")
	require.Equal(t, 3, m.Rank())
}

func TestRowEchelon_Singular(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	r, err := m.RowEchelon()
	require.NoError(t, err)
	RequireIsRREF(t, r, rrefTol)

	want := MustRows(t, [][]float64{{1, 0, -1}, {0, 1, 2}, {0, 0, 0}})
	require.True(t, r.EqualApprox(want, rrefTol), "got\n%s", r)
	require.Equal(t, 2, m.Rank())
}

// TestRowEchelon_PivotSwap needs a row swap because the first column starts with zero.
func TestRowEchelon_PivotSwap(t *testing.T) {
	m := MustRows(t, [][]float64{{0, 2, 4}, {1, 1, 1}})

	r, err := m.RowEchelon()
	require.NoError(t, err)
	RequireIsRREF(t, r, rrefTol)
	require.Equal(t, [][]float64{{1, 0, -1}, {0, 1, 2}}, RowsOf(t, r))
}

// TestRowEchelon_WideSingleRow stops after the last row has a pivot.
func TestRowEchelon_WideSingleRow(t *testing.T) {
	m := MustRows(t, [][]float64{{2, 4, 6, 8}})

	r, err := m.RowEchelon()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3, 4}}, RowsOf(t, r))
	require.Equal(t, 1, m.Rank())
}

func TestRowEchelon_ZeroAndEmpty(t *testing.T) {
	z, _ := matrix.Zeros[float64](3, 2)
	r, err := z.RowEchelon()
	require.NoError(t, err)
	require.True(t, r.Equal(z))
	require.Equal(t, 0, z.Rank())

	e, _ := matrix.Zeros[float64](0, 0)
	r, err = e.RowEchelon()
	require.NoError(t, err)
	requireShape(t, r, 0, 0)
	require.Equal(t, 0, e.Rank())
}

// TestRowEchelon_ExactIntegers stays exact when every pivot divides its row.
func TestRowEchelon_ExactIntegers(t *testing.T) {
	m := MustRows(t, [][]int{{2, 4}, {1, 3}})

	r, err := m.RowEchelon()
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0}, {0, 1}}, RowsOf(t, r))
	require.Equal(t, 2, m.Rank())
}

// TestRank_WithEpsilon shows the tolerance deciding whether a tiny residue is a pivot.
func TestRank_WithEpsilon(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 1}, {1, 1 + 1e-12}})

	require.Equal(t, 1, m.Rank())
	require.Equal(t, 1, m.Rank(matrix.WithEpsilon(matrix.DefaultEpsilon)))
	require.Equal(t, 2, m.Rank(matrix.WithEpsilon(0)))

	r, err := m.RowEchelon(matrix.WithEpsilon(0))
	require.NoError(t, err)
	RequireIsRREF(t, r, 0)
}

// TestRowEchelon_RandomIsRREF checks the structural definition on seeded input.
func TestRowEchelon_RandomIsRREF(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := RandomSquare(t, 5, seed)
		r, err := m.RowEchelon()
		require.NoError(t, err)
		RequireIsRREF(t, r, 1e-8)
		require.LessOrEqual(t, m.Rank(), 5)
	}
}

// TestRowEchelon_MinIntPivot keeps the most negative int8 as a pivot.
func TestRowEchelon_MinIntPivot(t *testing.T) {
	m := MustRows(t, [][]int8{{-128, 1}, {0, 1}})

	require.Equal(t, 2, m.Rank())
	r, err := m.RowEchelon()
	require.NoError(t, err)
	require.Equal(t, [][]int8{{1, 0}, {0, 1}}, RowsOf(t, r))

	d, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, int8(-128), d)
}

func TestRowEchelon_NilReceiver(t *testing.T) {
	var m *matrix.Matrix[float64]

	r, err := m.RowEchelon()
	require.ErrorIs(t, err, shape.ErrNilOperand)
	require.Nil(t, r)
	require.Equal(t, 0, m.Rank())
}
