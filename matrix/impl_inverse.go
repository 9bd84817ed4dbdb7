// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting.
// Returns new value; the receiver is never mutated.
//
// Implementation:
//   - Stage 1: validate non-nil and square; resolve options (pivot epsilon).
//   - Stage 2: build the n×2n augmented buffer [A | I] (row-major, stride 2n).
//   - Stage 3: for each pivot column k = 0..n-1:
//     select the row in [k,n) with the largest |value| in column k;
//     NaN entries never win over a number; fail with ErrSingular when the
//     magnitude is NaN or below eps (an exact zero always fails);
//     swap it into row k; divide row k by the pivot;
//     eliminate column k from every other row (row_r -= a[r,k] · row_k).
//   - Stage 4: the right half of the augmented buffer is A⁻¹.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrSingular.
//
// Determinism:
//   - Ties in pivot magnitude keep the lowest row index.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented buffer.
//
// Notes:
//   - The tolerance is absolute: DefaultEpsilon (1e-9) unless WithEpsilon is given.
//     Badly scaled but nonsingular input may need a smaller eps.
//   - A NaN that never lands in a pivot position is not detected; it spreads
//     through elimination and the result holds NaN with a nil error.
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	eps := gatherOptions(opts...).eps

	n := m.rows
	w := 2 * n
	aug := make([]float64, n*w)
	var i, j, k, r int
	for i = 0; i < n; i++ {
		copy(aug[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug[i*w+n+i] = 1.0
	}

	var (
		p              int
		maxAbs, abs, f float64
		pivot          float64
		pivotRow       []float64
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: largest |a[r,k]| for r ∈ [k,n).
		p = k
		maxAbs = math.Abs(aug[k*w+k])
		for r = k + 1; r < n; r++ {
			abs = math.Abs(aug[r*w+k])
			if abs > maxAbs || (math.IsNaN(maxAbs) && !math.IsNaN(abs)) {
				p, maxAbs = r, abs
			}
		}
		if math.IsNaN(maxAbs) || maxAbs < eps || maxAbs == 0 {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot column %d: |pivot|=%g: %w", k, maxAbs, ErrSingular))
		}
		if p != k {
			swapRows(aug, w, p, k)
		}

		// Normalize the pivot row.
		pivotRow = aug[k*w : (k+1)*w]
		pivot = pivotRow[k]
		for j = 0; j < w; j++ {
			pivotRow[j] /= pivot
		}

		// Eliminate column k from every other row.
		for r = 0; r < n; r++ {
			if r == k {
				continue
			}
			if f = aug[r*w+k]; f != 0 {
				floats.AddScaled(aug[r*w:(r+1)*w], -f, pivotRow)
			}
		}
	}

	inv := newUnchecked(n, n)
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug[i*w+n:(i+1)*w])
	}

	return inv, nil
}

// swapRows exchanges rows a and b of a row-major buffer with the given stride.
func swapRows(buf []float64, stride, a, b int) {
	ra := buf[a*stride : (a+1)*stride]
	rb := buf[b*stride : (b+1)*stride]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}
