// SPDX-License-Identifier: MIT

// Package matrix provides Matrix, a dense row-major grid of float64 values
// with the standard linear-algebra operations.
//
// The package provides:
//
//   - Construction: New (zeros), NewWithValues (row-major fill with an exact
//     count check), NewIdentity, Copy.
//   - Element access with 1-based coordinates: At, Set, Update.
//   - In-place transforms that return the receiver: Identity, Transpose.
//   - Value-returning algebra that never writes its operands: Plus, Minus,
//     ScaleBy, MultiplyBy, Inverse (Gauss-Jordan, partial pivoting), Transposed.
//   - Enumerate (0-based, row-major) and Print for diagnostics.
//
// All contract violations are reported as wrapped sentinels (ErrInvalidDimension,
// ErrValueCountMismatch, ErrIndexOutOfRange, ErrDimensionMismatch, ErrNotSquare,
// ErrSingular, ErrNilMatrix); match them with errors.Is.
//
// A Matrix is not safe for concurrent mutation; see the type documentation.
package matrix
