// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/index/nil checks.
//  - Keep kernels minimal by delegating guards here.
//  - Return tagged sentinels so call sites can wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape ensures rows ≥ 1, cols ≥ 1 and that rows*cols fits in an int.
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return validatorErrorf(fmt.Sprintf("validateShape(%d,%d)", rows, cols), ErrInvalidDimension)
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf(fmt.Sprintf("validateShape(%d,%d): rows*cols overflows int", rows, cols), ErrInvalidDimension)
	}

	return nil
}

// validateValueCount ensures exactly rows*cols values were supplied.
func validateValueCount(rows, cols, n int) error {
	if n != rows*cols {
		return validatorErrorf(fmt.Sprintf("validateValueCount: want %d, got %d", rows*cols, n), ErrValueCountMismatch)
	}

	return nil
}

// validateNotNil ensures m is a usable receiver or operand.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateSameShape – Composite: NotNil(a) → NotNil(b) → equal rows and cols.
// Used by Plus/Minus and comparisons.
func validateSameShape(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf(
			fmt.Sprintf("validateSameShape: %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.cols == b.rows.
func validateMulCompatible(a, b *Matrix) error {
	if err := validateNotNil(a); err != nil {
		return err
	}
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return validatorErrorf(
			fmt.Sprintf("validateMulCompatible: %dx%d · %dx%d", a.rows, a.cols, b.rows, b.cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// validateSquare checks rows == cols. Assumes m is non-nil.
func validateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf(fmt.Sprintf("validateSquare: %dx%d", m.rows, m.cols), ErrNotSquare)
	}

	return nil
}
