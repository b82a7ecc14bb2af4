package fourrussians_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/stretchr/testify/require"
)

// randomMatrix returns an r×c matrix with cells set with probability density.
func randomMatrix(tb testing.TB, r, c int, density float64, seed int64) *boolmatrix.BoolMatrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]bool, r)
	for i := range grid {
		grid[i] = make([]bool, c)
		for j := range grid[i] {
			grid[i][j] = rng.Float64() < density
		}
	}

	return fromGrid(tb, grid)
}

// fromGrid builds a matrix with exactly the grid's shape.
func fromGrid(tb testing.TB, grid [][]bool) *boolmatrix.BoolMatrix {
	tb.Helper()
	m, err := boolmatrix.NewFromData(len(grid), len(grid[0]), grid)
	require.NoError(tb, err)

	return m
}

// identity returns the n×n identity relation.
func identity(tb testing.TB, n int) *boolmatrix.BoolMatrix {
	tb.Helper()
	m, err := boolmatrix.New(n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		require.NoError(tb, m.SetCell(i, i, true))
	}

	return m
}

// clampedIntProduct multiplies over the integers and maps every non-zero cell
// to true. It is an oracle independent of any Boolean code path.
func clampedIntProduct(a, b [][]bool) [][]bool {
	n, k, c := len(a), len(b), len(b[0])
	out := make([][]bool, n)
	for i := 0; i < n; i++ {
		out[i] = make([]bool, c)
		for j := 0; j < c; j++ {
			sum := 0
			for t := 0; t < k; t++ {
				if a[i][t] && b[t][j] {
					sum++
				}
			}
			out[i][j] = sum > 0
		}
	}

	return out
}
