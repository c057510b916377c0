// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// Every vector/matrix failure resolves to exactly one sentinel below, and
// tests MUST check them via errors.Is. No exported operation panics on
// user-triggered conditions; Must is the single opt-in escape hatch.

package shape

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Messages are prefixed with "shape: " for grep-ability. Callers add an
// operation tag with fmt.Errorf("%s: %w", op, err); errors.Is still matches.

var (
	// ErrShapeMismatch reports two operands of differing size/shape passed
	// to an elementwise operation.
	ErrShapeMismatch = errors.New("shape: shape mismatch")

	// ErrIncompatibleShape reports a product whose inner dimensions disagree
	// (a.Cols != b.Rows, or vector length != matrix cols).
	ErrIncompatibleShape = errors.New("shape: incompatible shapes")

	// ErrNotSquare reports a square-only operation (trace, determinant) on a
	// non-square matrix.
	ErrNotSquare = errors.New("shape: matrix is not square")

	// ErrEmptyOperand reports an operation that needs at least one element.
	ErrEmptyOperand = errors.New("shape: empty operand")

	// ErrDimension reports a fixed-arity operation (cross product) on
	// wrong-length input.
	ErrDimension = errors.New("shape: wrong dimension")

	// ErrConstruction reports malformed initial data: a flat length that is
	// not a perfect square, or a non-rectangular row set.
	ErrConstruction = errors.New("shape: malformed construction data")

	// ErrOutOfRange reports an index outside [0, n).
	ErrOutOfRange = errors.New("shape: index out of range")

	// ErrDivideByZero reports an exact zero divisor in elementwise division.
	ErrDivideByZero = errors.New("shape: division by zero")

	// ErrDomain reports a mathematically undefined result (e.g. the angle
	// between a zero vector and anything).
	ErrDomain = errors.New("shape: result undefined for input")

	// ErrNilOperand reports a nil *Vector or *Matrix argument.
	ErrNilOperand = errors.New("shape: nil operand")
)

// Error is the structured form of a shape failure.
// Want/Got keep the conflicting shapes for diagnostics; Err is one of the
// sentinels above and is what errors.Is matches.
type Error struct {
	Op   string    // operation tag, e.g. "Vector.Add"
	Want Dimension // expected / receiver shape
	Got  Dimension // offending operand shape
	Err  error     // sentinel
}

// Error formats as "<op>: <sentinel>: want <shape>, got <shape>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: want %v, got %v", e.Op, e.Err, e.Want, e.Got)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error; kept unexported so every producer lives in validators.go.
func newError(op string, want, got Dimension, sentinel error) error {
	return &Error{Op: op, Want: want, Got: got, Err: sentinel}
}

// Errorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Must returns v, or panics with err when err != nil.
// It exists for callers that would rather abort than handle a shape failure
// (tests, literals known to be well-formed). The library never calls it.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
