// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Call sites wrap with matrixErrorf(op, ErrX) to add the operation tag;
// callers still match the sentinel with errors.Is.
//
// ERROR PRIORITY (checked in this order, see TestErrorPriority):
// nil operand -> shape -> count -> index -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimension is returned when a constructor receives rows<1 or cols<1,
	// or a shape whose element count rows*cols overflows int.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrValueCountMismatch is returned when the number of supplied values
	// differs from rows*cols (NewWithValues, Update).
	ErrValueCountMismatch = errors.New("matrix: value count does not match rows*cols")

	// ErrIndexOutOfRange indicates a 1-based (row, col) outside [1,rows]×[1,cols].
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Plus/Minus with different shapes, or MultiplyBy where a.cols != b.rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the largest available pivot
	// falls below the configured epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or operand) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
