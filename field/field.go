// SPDX-License-Identifier: MIT

// Package field defines the scalar capability set shared by vector and matrix.
//
// Purpose:
//   - Declare Scalar, the compile-time constraint every element type K satisfies.
//   - Provide the few operations Go operators do not cover: Abs, Sqrt and a
//     near-zero predicate driven by an explicit tolerance.
//
// Numeric policy:
//   - IsZero(x, eps) reports |x| <= eps. For floating K the package default is
//     DefaultEpsilon (1e-10). For integer K any eps < 1 degenerates to exact
//     equality with the additive identity.
//   - Sqrt is computed in float64 and converted back, so it truncates for
//     integer K.
//
// Complexity: every function here is O(1).
package field

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultEpsilon is the absolute tolerance below which a floating value is "zero".
const DefaultEpsilon = 1e-10

// ErrInvalidEpsilon is returned by ValidateEpsilon for negative, NaN or ±Inf tolerances.
var ErrInvalidEpsilon = errors.New("field: epsilon must be finite and non-negative")

// Scalar is the element constraint of Vector and Matrix.
// Signed integers and floats qualify; unsigned types do not, since the
// field must be closed under negation.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Zero returns the additive identity of K.
func Zero[K Scalar]() K { return 0 }

// One returns the multiplicative identity of K.
func One[K Scalar]() K { return 1 }

// Abs returns |x|.
// For integer K the most negative value has no positive counterpart and is
// returned unchanged (two's-complement wraparound).
func Abs[K Scalar](x K) K {
	if x < 0 {
		return -x
	}

	return x
}

// Sqrt returns the square root of x converted back to K.
// Negative input yields NaN for floating K; callers only pass sums of squares.
func Sqrt[K Scalar](x K) K {
	return K(math.Sqrt(float64(x)))
}

// IsZero reports whether |x| <= eps.
// The magnitude is taken in float64, so no value of K is negated.
// For integer K with eps < 1 the test is exact equality with zero.
func IsZero[K Scalar](x K, eps float64) bool {
	if isInteger[K]() && eps < 1 {
		return x == 0
	}

	return math.Abs(float64(x)) <= eps
}

// Equal reports whether |a-b| <= eps.
// The difference is taken in float64, so it cannot overflow K.
func Equal[K Scalar](a, b K, eps float64) bool {
	if a == b {
		return true
	}
	if isInteger[K]() && eps < 1 {
		return false
	}

	return math.Abs(float64(a)-float64(b)) <= eps
}

// isInteger reports whether K truncates fractions.
func isInteger[K Scalar]() bool {
	half := 0.5

	return K(half) == 0
}

// ValidateEpsilon checks that eps is finite and non-negative.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return ErrInvalidEpsilon
	}

	return nil
}
