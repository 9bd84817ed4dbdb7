// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/mrcrow/acmatrix/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"pgregory.net/rapid"
)

// inverseTol is the tolerance for A·A⁻¹ ≈ I style assertions.
const inverseTol = 1e-6

// MustNew allocates a rows×cols zero matrix or fails the test.
func MustNew(t testing.TB, rows, cols int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows, cols)
	require.NoError(t, err)

	return m
}

// MustFilled allocates a rows×cols matrix from row-major values or fails the test.
func MustFilled(t testing.TB, rows, cols int, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewWithValues(rows, cols, values)
	require.NoError(t, err)

	return m
}

// MustIdentity allocates I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads the 1-based (row, col) or fails the test.
func MustAt(t testing.TB, m *matrix.Matrix, row, col int) float64 {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}

// RequireMatrix asserts shape and exact row-major values.
func RequireMatrix(t testing.TB, m *matrix.Matrix, rows, cols int, want ...float64) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, rows, m.Rows(), "rows")
	require.Equal(t, cols, m.Cols(), "cols")
	require.Equal(t, want, m.Values())
}

// RequireMatrixInDelta asserts shape and row-major values within delta.
func RequireMatrixInDelta(t testing.TB, m *matrix.Matrix, rows, cols int, delta float64, want ...float64) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, rows, m.Rows(), "rows")
	require.Equal(t, cols, m.Cols(), "cols")
	require.InDeltaSlice(t, want, m.Values(), delta)
}

// RandomFill builds a rows×cols matrix with values in [-1,1) from a fixed seed.
func RandomFill(t testing.TB, rows, cols int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, rows*cols)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return MustFilled(t, rows, cols, vals...)
}

// DiagonallyDominant builds an n×n strictly diagonally dominant (hence
// invertible) matrix from a fixed seed.
func DiagonallyDominant(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	m := RandomFill(t, n, n, seed)
	for i := 1; i <= n; i++ {
		v := MustAt(t, m, i, i)
		_, err := m.Set(i, i, v+float64(n)+1)
		require.NoError(t, err)
	}

	return m
}

// toGonum copies m into a gonum Dense for oracle comparisons.
func toGonum(m *matrix.Matrix) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Values())
}

// gonumValues flattens any gonum matrix in row-major order.
func gonumValues(g mat.Matrix) []float64 {
	r, c := g.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, g.At(i, j))
		}
	}

	return out
}

// ---------- rapid generators ----------

// drawMatrix draws a rows×cols matrix with values in [-100,100].
func drawMatrix(rt *rapid.T, rows, cols int, label string) *matrix.Matrix {
	vals := rapid.SliceOfN(rapid.Float64Range(-100, 100), rows*cols, rows*cols).Draw(rt, label)
	m, err := matrix.NewWithValues(rows, cols, vals)
	require.NoError(rt, err)

	return m
}

// drawInvertible draws an n×n strictly diagonally dominant matrix.
func drawInvertible(rt *rapid.T, n int, label string) *matrix.Matrix {
	vals := rapid.SliceOfN(rapid.Float64Range(-1, 1), n*n, n*n).Draw(rt, label)
	for i := 0; i < n; i++ {
		vals[i*n+i] += float64(n) + 1
	}
	m, err := matrix.NewWithValues(n, n, vals)
	require.NoError(rt, err)

	return m
}
