// SPDX-License-Identifier: MIT
// Package vector - in-place elementwise arithmetic.
//
// Every method validates the operand first and only then walks the buffer,
// so a returned error guarantees the receiver is unchanged.

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/shape"
)

// Add performs v[i] += o[i].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
// Complexity: O(n).
func (v *Vector[K]) Add(o *Vector[K]) error {
	if err := v.checkOperand(opAdd, o); err != nil {
		return err
	}
	for i := range v.fields {
		v.fields[i] += o.fields[i]
	}

	return nil
}

// Sub performs v[i] -= o[i].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
// Complexity: O(n).
func (v *Vector[K]) Sub(o *Vector[K]) error {
	if err := v.checkOperand(opSub, o); err != nil {
		return err
	}
	for i := range v.fields {
		v.fields[i] -= o.fields[i]
	}

	return nil
}

// MulElem performs v[i] *= o[i] (Hadamard product in place).
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
func (v *Vector[K]) MulElem(o *Vector[K]) error {
	if err := v.checkOperand(opMulElem, o); err != nil {
		return err
	}
	for i := range v.fields {
		v.fields[i] *= o.fields[i]
	}

	return nil
}

// DivElem performs v[i] /= o[i].
//
// Implementation:
//   - Stage 1: shape guard.
//   - Stage 2: scan o for an exact zero.
//   - Stage 3: divide.
//
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch, shape.ErrDivideByZero.
// Complexity: O(n).
func (v *Vector[K]) DivElem(o *Vector[K]) error {
	if err := v.checkOperand(opDivElem, o); err != nil {
		return err
	}
	for i, d := range o.fields {
		if d == 0 {
			return fmt.Errorf("%s: divisor[%d]: %w", opDivElem, i, shape.ErrDivideByZero)
		}
	}
	for i := range v.fields {
		v.fields[i] /= o.fields[i]
	}

	return nil
}

// Scale multiplies every element by a. Total; never fails.
func (v *Vector[K]) Scale(a K) {
	for i := range v.fields {
		v.fields[i] *= a
	}
}
