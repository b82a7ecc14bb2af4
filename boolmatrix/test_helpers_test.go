package boolmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/stretchr/testify/require"
)

// randomGrid returns an r×c grid filled from a deterministic seed.
func randomGrid(r, c int, seed int64) [][]bool {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]bool, r)
	for i := range out {
		out[i] = make([]bool, c)
		for j := range out[i] {
			out[i][j] = rng.Intn(2) == 1
		}
	}

	return out
}

// mustFromGrid builds a matrix with exactly the grid's shape or fails the test.
func mustFromGrid(tb testing.TB, grid [][]bool) *boolmatrix.BoolMatrix {
	tb.Helper()
	m, err := boolmatrix.NewFromData(len(grid), len(grid[0]), grid)
	require.NoError(tb, err)

	return m
}

// shapes covers single cells, thin strips and a non-square block.
var shapes = []struct{ r, c int }{
	{1, 1}, {1, 4}, {4, 1}, {3, 5}, {7, 7},
}
