// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/floats"

// Equal reports whether m and other have the same shape and bit-for-bit
// equal values (NaN never equals NaN). Names are ignored.
// A nil operand is never equal to anything.
func (m *Matrix) Equal(other *Matrix) bool {
	if validateSameShape(m, other) != nil {
		return false
	}

	return floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and every pair
// of values agrees within tol, absolutely or relatively
// (floats.EqualWithinAbsOrRel). Names are ignored.
//
// AI-Hints:
//   - Use with tol≈1e-6 to check A·A⁻¹ against the identity.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if validateSameShape(m, other) != nil {
		return false
	}

	return floats.EqualApprox(m.data, other.data, tol)
}
