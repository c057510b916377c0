// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination to reduced row-echelon form.
//
// Algorithm (one pass, left to right over columns; i = current pivot row):
//  1. Pivot search: first row r >= i (top to bottom) with |m[r,j]| > eps.
//     None found → column j has no pivot; keep i and move on.
//  2. Swap rows i and r across ALL columns.
//  3. Normalize row i from column j rightward by the pivot (pivot becomes 1).
//  4. Eliminate column j in every row above i (reduced form, eager back-substitution).
//  5. Eliminate column j in every row below i.
//  6. Stop once i is the last row; otherwise i++.
//
// Policy:
//   - No partial pivoting by magnitude: the first non-zero entry wins. This is
//     a documented limitation on ill-conditioned floating input.
//   - Tolerance comes from WithEpsilon (DefaultEpsilon otherwise).

package matrix

import (
	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
)

const (
	opRowEchelon = "Matrix.RowEchelon"
	opRank       = "Matrix.Rank"
)

// RowEchelon returns the reduced row-echelon form of m as a fresh matrix.
// m is never mutated. An empty matrix reduces to an empty copy.
//
// Inputs:
//   - opts: WithEpsilon to change the near-zero tolerance used for pivots.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
//
// Errors:
//   - shape.ErrNilOperand for a nil receiver.
//
// AI-Hints:
//   - Use a floating element type; integer division truncates.
func (m *Matrix[K]) RowEchelon(opts ...Option) (*Matrix[K], error) {
	if m == nil {
		return nil, shape.Errorf(opRowEchelon, shape.ErrNilOperand)
	}
	o := gatherOptions(opts...)
	out, _ := m.reduce(o.eps)

	return out, nil
}

// Rank returns the number of pivots found by RowEchelon under the same tolerance.
// A nil matrix has rank 0.
func (m *Matrix[K]) Rank(opts ...Option) int {
	if m == nil {
		return 0
	}
	o := gatherOptions(opts...)
	_, pivots := m.reduce(o.eps)

	return len(pivots)
}

// reduce runs the elimination on a clone and returns it with the pivot columns in order.
func (m *Matrix[K]) reduce(eps float64) (*Matrix[K], []int) {
	out := m.Clone()
	rows, cols := out.r, len(out.cols)
	pivots := make([]int, 0, min(rows, cols))
	if rows == 0 || cols == 0 {
		return out, pivots
	}

	var (
		i, j, r, c int // pivot row, current column, row cursor, column cursor
		p          int // found pivot row
		pv, f      K   // pivot value, elimination factor
	)
	for j = 0; j < cols; j++ {
		// 1. pivot search
		p = -1
		for r = i; r < rows; r++ {
			if !field.IsZero(out.get(r, j), eps) {
				p = r
				break
			}
		}
		if p < 0 {
			continue
		}
		// 2. whole-row swap
		out.swapRows(i, p)

		// 3. normalize
		pv = out.get(i, j)
		for c = j; c < cols; c++ {
			out.put(i, c, out.get(i, c)/pv)
		}
		out.put(i, j, field.One[K]())

		// 4+5. eliminate above, then below
		for r = 0; r < rows; r++ {
			if r == i {
				continue
			}
			f = out.get(r, j)
			if f == 0 {
				continue
			}
			for c = j; c < cols; c++ {
				out.put(r, c, out.get(r, c)-f*out.get(i, c))
			}
		}
		pivots = append(pivots, j)

		// 6. early termination
		if i == rows-1 {
			break
		}
		i++
	}

	return out, pivots
}
