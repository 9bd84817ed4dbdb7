// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Update return errors instead of panicking.
//   - Keep the two mutation disciplines explicit on every method.
//
// Indexing:
//   - At/Set take 1-based (row, col): row ∈ [1,Rows()], col ∈ [1,Cols()].
//   - Storage is 0-based: data[(row-1)*cols + (col-1)].
//   - Enumerate reports 0-based coordinates (see impl_enumerate.go).
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Update/Copy: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxNewWith  = "NewWithValues"
	ctxIdentity = "NewIdentity"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxUpdate   = "Update"
)

// denseErrorf wraps a sentinel with a method tag and the 1-based coordinates
// of the offending call, e.g. "Matrix.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a dense, mutable rows×cols grid of float64 values.
//   - rows, cols are fixed at construction; only Transpose may swap them.
//   - data is a flat buffer of length rows*cols in row-major order.
//   - name is a display label used only by Print/String.
//
// Mutation disciplines:
//   - "mutates receiver": Set, Update, Identity, Transpose, SetName.
//     They return the receiver to allow chaining.
//   - "returns new value": Copy, Transposed, Plus, Minus, ScaleBy,
//     MultiplyBy, Inverse. Operands are never written.
//
// Concurrency: a Matrix carries no locks. Read-only methods may run
// concurrently on the same instance; any mutating method requires exclusive
// access for its duration.
type Matrix struct {
	rows, cols int       // row and column counts (≥1)
	data       []float64 // contiguous row-major storage (len == rows*cols)
	name       string    // optional display label
}

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1 and no rows*cols overflow; else ErrInvalidDimension.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimension (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newUnchecked(rows, cols), nil
}

// newUnchecked allocates without validation; callers guarantee rows,cols ≥ 1.
func newUnchecked(rows, cols int) *Matrix {
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewWithValues creates a rows×cols matrix filled from values in row-major
// order (first row left-to-right, then the next row).
//
// The length of values must equal rows*cols exactly; short or long input is
// rejected with ErrValueCountMismatch rather than truncated or zero-padded.
// values is copied, so later writes to the caller's slice are not observed.
//
// Errors:
//   - ErrInvalidDimension, ErrValueCountMismatch.
func NewWithValues(rows, cols int, values []float64) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNewWith, err)
	}
	if err := validateValueCount(rows, cols, len(values)); err != nil {
		return nil, matrixErrorf(ctxNewWith, err)
	}
	m := newUnchecked(rows, cols)
	copy(m.data, values)

	return m, nil
}

// NewIdentity returns I_n: 1.0 on the main diagonal, 0.0 elsewhere.
// Errors: ErrInvalidDimension when n < 1.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Matrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	m := newUnchecked(n, n)
	m.fillIdentity()

	return m, nil
}

// fillIdentity overwrites storage with the identity pattern. Assumes square.
func (m *Matrix) fillIdentity() {
	for i := range m.data {
		m.data[i] = 0
	}
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] = 1.0
	}
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// IsSquare reports rows == cols.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// Name returns the display label ("" when unset).
func (m *Matrix) Name() string { return m.name }

// SetName sets the display label. Mutates receiver, returns receiver.
func (m *Matrix) SetName(name string) *Matrix {
	m.name = name

	return m
}

// indexOf converts a 1-based (row, col) into a row-major offset.
// Returns ErrIndexOutOfRange without context; public methods wrap with
// their own tag and coordinates.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.rows {
		return 0, ErrIndexOutOfRange
	}
	if col < 1 || col > m.cols {
		return 0, ErrIndexOutOfRange
	}

	return (row-1)*m.cols + (col - 1), nil
}

// At returns the value at the 1-based position (row, col).
//
// Errors:
//   - ErrIndexOutOfRange when row ∉ [1,Rows()] or col ∉ [1,Cols()].
//
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at the 1-based position (row, col).
// Mutates receiver, returns receiver so writes can be chained:
//
//	m, err := m.Set(1, 1, 0.5)
//
// Errors:
//   - ErrIndexOutOfRange; the receiver is left unchanged.
func (m *Matrix) Set(row, col int, v float64) (*Matrix, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return m, denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return m, nil
}

// Update overwrites the whole storage from values in row-major order.
// Mutates receiver, returns receiver.
//
// Errors:
//   - ErrValueCountMismatch when len(values) != Rows()*Cols(); the receiver
//     is left unchanged.
func (m *Matrix) Update(values ...float64) (*Matrix, error) {
	if err := validateValueCount(m.rows, m.cols, len(values)); err != nil {
		return m, matrixErrorf(ctxUpdate, err)
	}
	copy(m.data, values)

	return m, nil
}

// Values returns a row-major copy of the storage.
// Complexity: O(r*c).
func (m *Matrix) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Copy returns an independent matrix with identical dimensions, data and name.
// Returns new value; no storage is shared with the source.
// Complexity: O(r*c).
func (m *Matrix) Copy() *Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: cp, name: m.name}
}
