// SPDX-License-Identifier: MIT

// Package matrix: callback types shared by traversal helpers.
package matrix

// ValueEnumerator receives one cell per call during Enumerate.
// row and col are 0-based: row ∈ [0,Rows()), col ∈ [0,Cols()).
type ValueEnumerator func(row, col int, value float64)
