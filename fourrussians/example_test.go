package fourrussians_test

import (
	"fmt"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/katalvlaran/fourrussians/fourrussians"
)

// ExampleMultiply multiplies two 3×3 relations.
//
// Scenario:
//
//	A maps 0→1, 1→2, 2→0 (a cycle); B = A.
//	A·B maps every node two steps forward: 0→2, 1→0, 2→1.
func ExampleMultiply() {
	a, _ := boolmatrix.NewFromData(3, 3, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, false, false},
	})

	c, err := fourrussians.Multiply(a, a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [0 0 1]
	// [1 0 0]
	// [0 1 0]
}

// ExampleClosure computes reachability on a small directed graph.
func ExampleClosure() {
	m, _ := boolmatrix.NewFromData(4, 4, [][]bool{
		{false, true, false, false},
		{false, false, true, false},
		{false, false, false, false},
		{false, false, false, false},
	})

	c, _ := fourrussians.Closure(m)
	fmt.Print(c)

	// Output:
	// [1 1 1 0]
	// [0 1 1 0]
	// [0 0 1 0]
	// [0 0 0 1]
}
