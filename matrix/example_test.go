// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/mrcrow/acmatrix/matrix"
)

// ExampleMatrix_Inverse solves the classic 2×2 case with det = -2.
func ExampleMatrix_Inverse() {
	a, _ := matrix.Filled(2, 2,
		1, 2,
		3, 4,
	)
	inv, err := a.Inverse()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv.SetName("A^-1").Print(false))

	// Output:
	// A^-1 (2x2)
	// [-2.00, 1.00]
	// [1.50, -0.50]
}

// ExampleMatrix_MultiplyBy shows that algebra returns new values.
func ExampleMatrix_MultiplyBy() {
	a, _ := matrix.Filled(2, 2, 1, 2, 3, 4)
	b, _ := matrix.Filled(2, 2, 5, 6, 7, 8)

	sum, _ := a.Plus(b)
	prod, _ := a.MultiplyBy(b)
	fmt.Print(sum.SetName("A+B").Print(false))
	fmt.Print(prod.SetName("A*B").Print(false))
	fmt.Print(a.SetName("A").Print(false))

	// Output:
	// A+B (2x2)
	// [6.00, 8.00]
	// [10.00, 12.00]
	// A*B (2x2)
	// [19.00, 22.00]
	// [43.00, 50.00]
	// A (2x2)
	// [1.00, 2.00]
	// [3.00, 4.00]
}

// ExampleMatrix_Transpose shows the in-place form changing the receiver's shape.
func ExampleMatrix_Transpose() {
	m, _ := matrix.Filled(2, 3, 1, 2, 3, 4, 5, 6)
	m.Transpose()
	fmt.Println(m.Rows(), m.Cols())
	fmt.Print(m.Print(false))

	// Output:
	// 3 2
	// Matrix (3x2)
	// [1.00, 4.00]
	// [2.00, 5.00]
	// [3.00, 6.00]
}

func ExampleMatrix_Enumerate() {
	m, _ := matrix.Filled(2, 2, 1, 2, 3, 4)
	m.Enumerate(func(row, col int, v float64) {
		fmt.Printf("(%d,%d)=%g\n", row, col, v)
	})

	// Output:
	// (0,0)=1
	// (0,1)=2
	// (1,0)=3
	// (1,1)=4
}

func ExampleMatrix_Set() {
	m, _ := matrix.New(2, 2)
	if _, err := m.Set(3, 1, 1); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Matrix.Set(3,1): matrix: index out of range
}
