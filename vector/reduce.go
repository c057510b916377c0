// SPDX-License-Identifier: MIT
// Package vector - reductions and norms.
//
// Folds are seeded with the first element (not with a zero literal), so every
// reduction requires a non-empty receiver and reports shape.ErrEmptyOperand
// otherwise.

package vector

import (
	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
)

// Dot returns Σ v[i]*o[i].
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch, shape.ErrEmptyOperand.
// Complexity: O(n).
func (v *Vector[K]) Dot(o *Vector[K]) (K, error) {
	if err := v.checkOperand(opDot, o); err != nil {
		return 0, err
	}
	if err := shape.NonEmpty(opDot, v.Shape()); err != nil {
		return 0, err
	}
	acc := v.fields[0] * o.fields[0]
	for i := 1; i < len(v.fields); i++ {
		acc += v.fields[i] * o.fields[i]
	}

	return acc, nil
}

// Sum returns Σ v[i].
func (v *Vector[K]) Sum() (K, error) {
	if err := shape.NonEmpty(opSum, v.Shape()); err != nil {
		return 0, err
	}
	acc := v.fields[0]
	for _, x := range v.fields[1:] {
		acc += x
	}

	return acc, nil
}

// SqSum returns Σ v[i]².
func (v *Vector[K]) SqSum() (K, error) {
	if err := shape.NonEmpty(opSqSum, v.Shape()); err != nil {
		return 0, err
	}
	acc := v.fields[0] * v.fields[0]
	for _, x := range v.fields[1:] {
		acc += x * x
	}

	return acc, nil
}

// Norm1 returns the Manhattan norm Σ |v[i]|.
func (v *Vector[K]) Norm1() (K, error) {
	if err := shape.NonEmpty(opNorm1, v.Shape()); err != nil {
		return 0, err
	}
	acc := field.Abs(v.fields[0])
	for _, x := range v.fields[1:] {
		acc += field.Abs(x)
	}

	return acc, nil
}

// NormInf returns the supremum norm max |v[i]|.
func (v *Vector[K]) NormInf() (K, error) {
	if err := shape.NonEmpty(opNormInf, v.Shape()); err != nil {
		return 0, err
	}
	best := field.Abs(v.fields[0])
	for _, x := range v.fields[1:] {
		if a := field.Abs(x); a > best {
			best = a
		}
	}

	return best, nil
}

// Norm returns the Euclidean norm √SqSum. Truncated for integer K.
func (v *Vector[K]) Norm() (K, error) {
	sq, err := v.SqSum()
	if err != nil {
		return 0, shape.Errorf(opNorm, err)
	}

	return field.Sqrt(sq), nil
}
