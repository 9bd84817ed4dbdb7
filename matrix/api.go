// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points mirroring the method set.
//   - Avoid any logic duplication: each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the methods.
//   - Validation lives in the methods; facades only forward.

package matrix

// ---------- Constructors ----------

// Zeros returns a rows×cols zero matrix. Alias of New.
func Zeros(rows, cols int) (*Matrix, error) { return New(rows, cols) }

// Filled returns a rows×cols matrix filled row-major from values.
// Alias of NewWithValues with a variadic tail.
func Filled(rows, cols int, values ...float64) (*Matrix, error) {
	return NewWithValues(rows, cols, values)
}

// Eye returns the n×n identity. Alias of NewIdentity.
func Eye(n int) (*Matrix, error) { return NewIdentity(n) }

// ---------- Algebra (all return new values) ----------
// A nil a is reported as ErrNilMatrix by the method itself.

// Sum is an alias for a.Plus(b).
func Sum(a, b *Matrix) (*Matrix, error) { return a.Plus(b) }

// Diff is an alias for a.Minus(b).
func Diff(a, b *Matrix) (*Matrix, error) { return a.Minus(b) }

// Product is an alias for a.MultiplyBy(b).
func Product(a, b *Matrix) (*Matrix, error) { return a.MultiplyBy(b) }

// InverseOf is an alias for m.Inverse(opts...).
func InverseOf(m *Matrix, opts ...Option) (*Matrix, error) {
	return m.Inverse(opts...)
}

// T returns mᵀ without touching m. Alias of m.Transposed.
func T(m *Matrix) *Matrix { return m.Transposed() }
