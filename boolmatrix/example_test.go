package boolmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/fourrussians/boolmatrix"
)

// ExampleBoolMatrix_ColumnBlock extracts a column block and ORs two rows.
func ExampleBoolMatrix_ColumnBlock() {
	m, _ := boolmatrix.NewFromData(3, 3, [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	})

	block, _ := m.ColumnBlock(1, 2)
	fmt.Print(block)

	row, _ := m.RowOr(0, m, 2)
	fmt.Println(row)

	// Output:
	// [0 0]
	// [1 0]
	// [0 1]
	// [true false true]
}

// ExampleOr merges two matrices element-wise.
func ExampleOr() {
	a, _ := boolmatrix.NewFromData(2, 2, [][]bool{{true, false}, {false, false}})
	b, _ := boolmatrix.NewFromData(2, 2, [][]bool{{false, false}, {false, true}})

	or, _ := boolmatrix.Or(a, b)
	fmt.Print(or)

	// Output:
	// [1 0]
	// [0 1]
}
