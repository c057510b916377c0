// Package linalg is a small, generic dense linear-algebra library: vectors
// and matrices over any signed integer or floating-point element type.
//
// What is inside?
//
//	A pure-Go, exactness-first toolkit that brings together:
//		• Field helpers: zero/one, absolute value, square root, tolerance tests
//		• Vectors: elementwise arithmetic, dot product, norms, lerp, cross product
//		• Matrices: arithmetic, transpose, products, trace, minors
//		• Gaussian elimination: reduced row-echelon form and rank
//		• Determinants: exact cofactor expansion, or LU through gonum
//
// Why choose linalg?
//
//   - Generic - one implementation for int, int64, float32, float64…
//   - Exact on integers - no hidden float conversions in determinant or products
//   - Safe - every shape rule is checked before any operand is mutated, and
//     failures are typed errors rather than panics
//   - Interoperable - gonumx converts to and from gonum's mat package
//
// Packages:
//
//	field/     - the Scalar constraint and numeric helpers
//	shape/     - dimensions, sentinel errors and shape validators
//	vector/    - Vector[K] and its kernels
//	matrix/    - Matrix[K], elimination, determinant, formatting
//	gonumx/    - conversions and LU determinant via gonum
//	cmd/linalg - command-line front end over literal inputs
//
// Quick example:
//
//	m, _ := matrix.FromRowSlices([][]int{{2, 7}, {5, 9}})
//	d, _ := m.Determinant() // -17
//
//	a, _ := matrix.FromRowSlices([][]float64{{2, -2}, {-2, 2}})
//	y, _ := a.MulVec(vector.New(4.0, 2.0)) // [4, -4]
//
// Errors:
//
//	Every fallible operation returns an error wrapping one of the shape.Err*
//	sentinels; use errors.Is to branch. Callers that prefer to abort can wrap a
//	call in shape.Must.
package linalg
