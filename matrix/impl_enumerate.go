// SPDX-License-Identifier: MIT

package matrix

// Enumerate visits every cell in row-major order, from (0,0) to
// (Rows()-1, Cols()-1), left to right, top to bottom, calling fn once per
// cell synchronously.
//
// Behavior highlights:
//   - Full traversal on every call; there is no early exit.
//   - Coordinates are 0-based, unlike At/Set.
//   - Purely observational. Mutating the matrix from fn (Set, Update,
//     Transpose, ...) is undefined behavior.
//   - A nil fn is a no-op.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Enumerate(fn ValueEnumerator) {
	if fn == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fn(i, j, m.data[base+j])
		}
	}
}
