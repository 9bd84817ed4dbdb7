// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtDefaultName = "Matrix"
	_fmtRowOpen     = "["
	_fmtRowClose    = "]\n"
	_fmtSep         = ", "

	// LowPrecisionDigits and HighPrecisionDigits are the fixed decimal counts used by Print.
	LowPrecisionDigits  = 2
	HighPrecisionDigits = 6
)

var _ fmt.Stringer = (*Matrix)(nil)

// Print renders the matrix for diagnostics.
//
// Layout:
//
//	<name or "Matrix"> (<rows>x<cols>)
//	[v11, v12, ...]
//	[v21, v22, ...]
//
// Values use fixed-point notation with HighPrecisionDigits decimals when
// highPrecision is true and LowPrecisionDigits otherwise. Formatting goes
// through strconv, so output never depends on locale.
//
// Complexity: O(r*c).
func (m *Matrix) Print(highPrecision bool) string {
	digits := LowPrecisionDigits
	if highPrecision {
		digits = HighPrecisionDigits
	}
	name := m.name
	if name == "" {
		name = _fmtDefaultName
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(m.rows))
	b.WriteByte('x')
	b.WriteString(strconv.Itoa(m.cols))
	b.WriteString(")\n")

	buf := make([]byte, 0, 32)
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			// +0 folds -0 into 0 so zero cells never print as "-0.00".
			buf = strconv.AppendFloat(buf[:0], m.data[base+j]+0, 'f', digits, 64)
			b.Write(buf)
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// String implements fmt.Stringer; equivalent to Print(false).
func (m *Matrix) String() string { return m.Print(false) }
