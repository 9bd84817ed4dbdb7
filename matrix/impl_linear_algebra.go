// SPDX-License-Identifier: MIT
// Package matrix provides the algebra on Matrix values: element-wise
// addition and subtraction, scalar scaling, matrix multiplication,
// transpose and identity reset. All functions perform strict fail-fast
// validation and return tagged sentinels on contract violations.
//
// Disciplines:
//   - Plus/Minus/ScaleBy/MultiplyBy/Transposed allocate a fresh result and never write operands.
//   - Identity/Transpose mutate the receiver and return it.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opPlus       = "Plus"
	opMinus      = "Minus"
	opMultiplyBy = "MultiplyBy"
	opIdentity   = "Identity"
	opInverse    = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Plus computes the element-wise sum C = A + B.
// Returns new value; neither m nor other is mutated.
//
// Errors:
//   - ErrNilMatrix          (m or other is nil).
//   - ErrDimensionMismatch  (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Plus(other *Matrix) (*Matrix, error) {
	if err := validateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opPlus, err)
	}
	res := newUnchecked(m.rows, m.cols)
	floats.AddTo(res.data, m.data, other.data) // flat row-major pass

	return res, nil
}

// Minus computes the element-wise difference C = A - B.
// Returns new value; neither m nor other is mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix) Minus(other *Matrix) (*Matrix, error) {
	if err := validateSameShape(m, other); err != nil {
		return nil, matrixErrorf(opMinus, err)
	}
	res := newUnchecked(m.rows, m.cols)
	floats.SubTo(res.data, m.data, other.data)

	return res, nil
}

// ScaleBy returns B = A * s. Always defined; NaN/Inf in s propagate.
// Returns new value; m is not mutated. The name is not carried over.
// Complexity: O(r*c).
func (m *Matrix) ScaleBy(s float64) *Matrix {
	res := newUnchecked(m.rows, m.cols)
	floats.ScaleTo(res.data, s, m.data)

	return res
}

// MultiplyBy performs standard matrix multiplication C = A × B.
// Returns new value of shape m.Rows()×other.Cols().
//
// Implementation:
//   - Stage 1: validate m.Cols() == other.Rows().
//   - Stage 2: naive triple loop in i→k→j order over flat slices;
//     C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed loop order; every C[i,j] accumulates k ascending.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) MultiplyBy(other *Matrix) (*Matrix, error) {
	if err := validateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMultiplyBy, err)
	}
	aRows, aCols, bCols := m.rows, m.cols, other.cols
	res := newUnchecked(aRows, bCols)

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * other.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Identity resets the receiver to the identity pattern.
// Mutates receiver, returns receiver.
//
// Errors:
//   - ErrNotSquare; the receiver is left unchanged.
func (m *Matrix) Identity() (*Matrix, error) {
	if err := validateSquare(m); err != nil {
		return m, matrixErrorf(opIdentity, err)
	}
	m.fillIdentity()

	return m, nil
}

// Transpose replaces the receiver with its transpose in place.
// Mutates receiver, returns receiver.
//
// Behavior highlights:
//   - For non-square input rows and cols swap and the backing storage is
//     rebuilt as new[j][i] = old[i][j]. This is the only operation that
//     changes a Matrix's own dimensions after construction.
//   - Square input is transposed by swapping across the diagonal without
//     allocating.
//
// Complexity:
//   - Time O(r*c); Space O(1) when square, O(r*c) otherwise.
func (m *Matrix) Transpose() *Matrix {
	if m.rows == m.cols {
		n := m.rows
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				m.data[i*n+j], m.data[j*n+i] = m.data[j*n+i], m.data[i*n+j]
			}
		}

		return m
	}
	m.data = transposeData(m.data, m.rows, m.cols)
	m.rows, m.cols = m.cols, m.rows

	return m
}

// Transposed returns mᵀ as a new matrix; m is not mutated. The name is kept.
// Complexity: O(r*c).
func (m *Matrix) Transposed() *Matrix {
	return &Matrix{
		rows: m.cols,
		cols: m.rows,
		data: transposeData(m.data, m.rows, m.cols),
		name: m.name,
	}
}

// transposeData returns a fresh buffer holding the cols×rows transpose of src.
func transposeData(src []float64, rows, cols int) []float64 {
	dst := make([]float64, len(src))
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[baseSrc+j]
		}
	}

	return dst
}
