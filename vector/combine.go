// SPDX-License-Identifier: MIT
// Package vector - constructions over several vectors.
//
// All functions here allocate a fresh result and leave their inputs untouched.

package vector

import (
	"math"

	"github.com/katalvlaran/linalg/field"
	"github.com/katalvlaran/linalg/shape"
)

// LinearCombination returns Σ coefs[k]*vectors[k].
//
// Implementation:
//   - Stage 1: validate the two lists have equal, non-zero length and every
//     vector is non-nil and shaped like vectors[0].
//   - Stage 2: accumulate scaled copies into a clone of coefs[0]*vectors[0].
//
// Errors:
//   - shape.ErrEmptyOperand (no vectors), shape.ErrShapeMismatch (list lengths
//     or vector lengths disagree), shape.ErrNilOperand.
//
// Complexity:
//   - Time O(k*n), Space O(n).
func LinearCombination[K field.Scalar](vectors []*Vector[K], coefs []K) (*Vector[K], error) {
	if err := shape.SameDimension(opLinComb, shape.OneD(len(vectors)), shape.OneD(len(coefs))); err != nil {
		return nil, err
	}
	if err := shape.NonEmpty(opLinComb, shape.OneD(len(vectors))); err != nil {
		return nil, err
	}
	for _, u := range vectors {
		if u == nil {
			return nil, shape.Errorf(opLinComb, shape.ErrNilOperand)
		}
		if err := shape.SameDimension(opLinComb, vectors[0].Shape(), u.Shape()); err != nil {
			return nil, err
		}
	}

	out := vectors[0].Clone()
	out.Scale(coefs[0])
	for k := 1; k < len(vectors); k++ {
		for i, x := range vectors[k].fields {
			out.fields[i] += coefs[k] * x
		}
	}

	return out, nil
}

// Lerp returns u + t*(v-u); t=0 yields u and t=1 yields v.
// Errors: shape.ErrNilOperand, shape.ErrShapeMismatch.
// Complexity: O(n).
func Lerp[K field.Scalar](u, v *Vector[K], t K) (*Vector[K], error) {
	if u == nil {
		return nil, shape.Errorf(opLerp, shape.ErrNilOperand)
	}
	if err := u.checkOperand(opLerp, v); err != nil {
		return nil, err
	}
	diff := v.Clone()
	_ = diff.Sub(u) // shapes already validated
	diff.Scale(t)
	out := u.Clone()
	_ = out.Add(diff)

	return out, nil
}

// CrossProduct returns u × v for 3-vectors.
// Errors: shape.ErrNilOperand, shape.ErrDimension when either input is not length 3.
func CrossProduct[K field.Scalar](u, v *Vector[K]) (*Vector[K], error) {
	if u == nil || v == nil {
		return nil, shape.Errorf(opCross, shape.ErrNilOperand)
	}
	if err := shape.Arity(opCross, u.Shape(), 3); err != nil {
		return nil, err
	}
	if err := shape.Arity(opCross, v.Shape(), 3); err != nil {
		return nil, err
	}
	a, b := u.fields, v.fields

	return New(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}

// AngleCos returns cos θ = u·v / (‖u‖‖v‖).
// The dot product and both sums of squares accumulate in float64, so integer
// inputs are neither truncated nor overflowed in K.
//
// Errors:
//   - shape.ErrNilOperand, shape.ErrShapeMismatch, shape.ErrEmptyOperand.
//   - shape.ErrDomain when either vector has zero norm.
//
// Complexity: O(n).
func AngleCos[K field.Scalar](u, v *Vector[K]) (float64, error) {
	if u == nil {
		return 0, shape.Errorf(opAngleCos, shape.ErrNilOperand)
	}
	if err := u.checkOperand(opAngleCos, v); err != nil {
		return 0, err
	}
	if err := shape.NonEmpty(opAngleCos, u.Shape()); err != nil {
		return 0, err
	}
	var dot, uu, vv, a, b float64
	for i := range u.fields {
		a, b = float64(u.fields[i]), float64(v.fields[i])
		dot += a * b
		uu += a * a
		vv += b * b
	}
	den := math.Sqrt(uu) * math.Sqrt(vv)
	if den == 0 {
		return 0, shape.Errorf(opAngleCos, shape.ErrDomain)
	}

	return dot / den, nil
}
