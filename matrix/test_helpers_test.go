// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and Must* wrappers for kernels.
//   • Keep fixtures integer-valued where possible so exact comparisons hold.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/shape"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// tb is the subset of testing.TB the helpers need (tests and benchmarks).
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// MustRows builds a matrix from a row-major literal or fails the test.
func MustRows[K field.Scalar](t tb, rows [][]K) *matrix.Matrix[K] {
	t.Helper()
	m, err := matrix.FromRowSlices(rows)
	if err != nil {
		t.Fatalf("FromRowSlices(%v): %v", rows, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[K field.Scalar](t *testing.T, m *matrix.Matrix[K], i, j int) K {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RowsOf dumps m as a row-major [][]K for readable require.Equal diffs.
func RowsOf[K field.Scalar](t *testing.T, m *matrix.Matrix[K]) [][]K {
	t.Helper()
	out := make([][]K, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row.Values()
	}

	return out
}

// RequireIsRREF checks the structural definition of reduced row-echelon form:
// leading entries are 1, move strictly right, are the only non-zero in their
// column, and zero rows sit at the bottom.
func RequireIsRREF(t *testing.T, m *matrix.Matrix[float64], eps float64) {
	t.Helper()
	lastLead := -1
	seenZeroRow := false
	for i := 0; i < m.Rows(); i++ {
		lead := -1
		for j := 0; j < m.Cols(); j++ {
			if v := MustAt(t, m, i, j); v > eps || v < -eps {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZeroRow = true
			continue
		}
		require.False(t, seenZeroRow, "non-zero row %d below a zero row", i)
		require.Greater(t, lead, lastLead, "leading entry of row %d does not move right", i)
		require.InDelta(t, 1.0, MustAt(t, m, i, lead), eps, "pivot of row %d", i)
		for r := 0; r < m.Rows(); r++ {
			if r != i {
				require.InDelta(t, 0.0, MustAt(t, m, r, lead), eps, "column %d row %d", lead, r)
			}
		}
		lastLead = lead
	}
}

// RandomSquare returns an n×n float64 matrix with entries in [-5,5) from a fixed seed.
func RandomSquare(t tb, n int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, n*n)
	for i := range flat {
		flat[i] = float64(rng.Intn(11) - 5)
	}
	m, err := matrix.FromSquare(flat)
	if err != nil {
		t.Fatalf("FromSquare: %v", err)
	}

	return m
}

// vec is a terse vector literal for table tests.
func vec[K field.Scalar](xs ...K) *vector.Vector[K] { return vector.New(xs...) }

// requireShape asserts m has shape r×c.
func requireShape[K field.Scalar](t *testing.T, m *matrix.Matrix[K], r, c int) {
	t.Helper()
	require.Equal(t, shape.TwoD(r, c), m.Shape())
}
