// SPDX-License-Identifier: MIT

// Package matrix implements a dense, element-generic matrix stored as an
// ordered list of column vectors.
//
// The matrix package provides:
//
//   - Construction from a flat square-length sequence (row-major literal),
//     from equal-length row vectors, from column vectors, or filled/identity.
//   - In-place elementwise arithmetic (Add, Sub, MulElem, DivElem, Scale,
//     ScaleColumns) that validates before it mutates.
//   - Fresh-result algebra: Transposed, MulVec, MulMat, Trace, Minor.
//   - Gaussian elimination to reduced row-echelon form (RowEchelon, Rank)
//     with a configurable near-zero tolerance (WithEpsilon).
//   - Determinant by recursive cofactor expansion along the first row.
//
// Storage:
//
//	Columns are *vector.Vector values; Transpose is a real data reshuffle,
//	not a view. Every container owns its storage and Clone deep-copies.
//
// Limitations (documented, not bugs):
//
//   - Pivoting takes the first entry (top to bottom) outside the tolerance,
//     not the largest one, so RowEchelon is not numerically optimal on
//     ill-conditioned floating input.
//   - For integer element types RowEchelon divides with truncation; use a
//     floating type when the reduced form must be exact.
//   - Determinant is O(n!) and meant for small matrices; see package gonumx
//     for an LU-based float64 alternative.
//
// Errors are sentinels from package shape and are matched with errors.Is.
package matrix
