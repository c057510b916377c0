// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//   - Provide the canonical guards used by vector and matrix before mutation.
//   - Return *Error values so callers can inspect both shapes via errors.As,
//     while errors.Is keeps matching the sentinel.
//
// Note:
//   - Each validator describes what it checks and assumes nothing else
//     (e.g. SameDimension does not check emptiness).

package shape

import "fmt"

// SameDimension ensures got has exactly the shape want.
// Errors: ErrShapeMismatch.
// Complexity: O(1).
func SameDimension(op string, want, got Dimension) error {
	if !want.Equal(got) {
		return newError(op, want, got, ErrShapeMismatch)
	}

	return nil
}

// Square ensures d is a square TwoDim shape.
// Errors: ErrNotSquare.
// Complexity: O(1).
func Square(op string, d Dimension) error {
	if !d.IsSquare() {
		return newError(op, TwoD(d.Rows(), d.Rows()), d, ErrNotSquare)
	}

	return nil
}

// NonEmpty ensures d holds at least one scalar.
// Errors: ErrEmptyOperand.
// Complexity: O(1).
func NonEmpty(op string, d Dimension) error {
	if d.IsEmpty() {
		return newError(op, d, d, ErrEmptyOperand)
	}

	return nil
}

// SquareNonEmpty – Composite: NonEmpty → Square.
// Emptiness wins so a 0×0 input reports ErrEmptyOperand.
func SquareNonEmpty(op string, d Dimension) error {
	if err := NonEmpty(op, d); err != nil {
		return err
	}

	return Square(op, d)
}

// Arity ensures a vector shape has exactly n elements.
// Errors: ErrDimension.
// Complexity: O(1).
func Arity(op string, d Dimension, n int) error {
	if d.Kind() != OneDim || d.Len() != n {
		return newError(op, OneD(n), d, ErrDimension)
	}

	return nil
}

// InnerCompatible ensures a·b is defined: a.Cols == b.Rows.
// b may be OneDim (matrix–vector product), in which case its length is compared.
// Errors: ErrIncompatibleShape.
// Complexity: O(1).
func InnerCompatible(op string, a, b Dimension) error {
	if a.Cols() != b.Rows() {
		return newError(op, a, b, ErrIncompatibleShape)
	}

	return nil
}

// Index ensures 0 <= i < n.
// Errors: ErrOutOfRange (wrapped with the offending index).
// Complexity: O(1).
func Index(op string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%s: index %d of %d: %w", op, i, n, ErrOutOfRange)
	}

	return nil
}
