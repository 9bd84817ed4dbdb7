// SPDX-License-Identifier: MIT

// Package acmatrix is a small dense-matrix toolkit for Go.
//
// What is inside?
//
//	matrix/   the Matrix value type: construction, 1-based element access,
//	          in-place transpose/identity, value-returning Plus/Minus/ScaleBy/
//	          MultiplyBy, Gauss-Jordan Inverse with partial pivoting,
//	          row-major enumeration and fixed-point printing.
//
// Quick example:
//
//	a, _ := matrix.Filled(2, 2, 1, 2, 3, 4)
//	inv, _ := a.Inverse()
//	fmt.Print(inv.Print(false))
//
//	go get github.com/mrcrow/acmatrix/matrix
package acmatrix
