// SPDX-License-Identifier: MIT
// Package matrix - determinant by cofactor expansion.

package matrix

import "github.com/katalvlaran/linalg/shape"

const opDeterminant = "Matrix.Determinant"

// Determinant returns det(m) by recursive Laplace expansion along the first row.
//
// Implementation:
//   - 1×1: the sole entry. 2×2: ad − bc.
//   - n > 2: Σ_j (−1)^j · m[0,j] · det(minor(0, j)), each minor a fresh copy
//     with row 0 and column j discarded.
//
// Errors:
//   - shape.ErrEmptyOperand for 0×0, shape.ErrNotSquare otherwise non-square.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for small matrices.
//
// Notes:
//   - Exact for integer element types: no division is performed.
func (m *Matrix[K]) Determinant() (K, error) {
	if err := shape.SquareNonEmpty(opDeterminant, m.Shape()); err != nil {
		return 0, err
	}

	return m.det(), nil
}

// det assumes a non-empty square receiver.
func (m *Matrix[K]) det() K {
	switch m.r {
	case 1:
		return m.get(0, 0)
	case 2:
		return m.get(0, 0)*m.get(1, 1) - m.get(0, 1)*m.get(1, 0)
	}

	var acc K
	for j := 0; j < len(m.cols); j++ {
		a := m.get(0, j)
		if a == 0 {
			continue // cofactor contributes nothing
		}
		term := a * m.discard(0, j).det()
		if j%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}
