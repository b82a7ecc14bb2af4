package fourrussians_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/katalvlaran/fourrussians/fourrussians"
	"github.com/stretchr/testify/require"
)

// TestSumsTableSubsets checks that table row idx is the OR of exactly the rows
// selected by idx's bits, MSB selecting row 0.
func TestSumsTableSubsets(t *testing.T) {
	for k := 1; k <= 6; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			right := randomMatrix(t, k, 9, 0.3, int64(k))
			rows := right.RawData()

			table, err := fourrussians.ExportedBuildSumsTable(right)
			require.NoError(t, err)
			r, c := table.Shape()
			require.Equal(t, 1<<k, r)
			require.Equal(t, 9, c)

			for idx := 0; idx < 1<<k; idx++ {
				want := make([]bool, 9)
				for bit := 0; bit < k; bit++ {
					if idx&(1<<bit) == 0 {
						continue
					}
					for j, v := range rows[k-bit-1] {
						want[j] = want[j] || v
					}
				}
				got, err := table.RowAt(idx)
				require.NoError(t, err)
				require.Equal(t, want, got, "idx=%b", idx)
			}
		})
	}
}

// TestSumsTableBlockSize rejects blocks taller than MaxBlockSize.
func TestSumsTableBlockSize(t *testing.T) {
	tall, err := boolmatrix.New(fourrussians.MaxBlockSize+1, 1)
	require.NoError(t, err)

	_, err = fourrussians.ExportedBuildSumsTable(tall)
	require.ErrorIs(t, err, fourrussians.ErrBlockSize)
}

// TestMultiplyBlockMatchesProduct checks one block contribution against the
// plain product of the two blocks, including a narrow trailing block.
func TestMultiplyBlockMatchesProduct(t *testing.T) {
	for _, k := range []int{1, 2, 3} {
		left := randomMatrix(t, 7, k, 0.5, int64(10+k))
		right := randomMatrix(t, k, 7, 0.5, int64(20+k))

		got, err := fourrussians.ExportedMultiplyBlock(left, right)
		require.NoError(t, err)
		require.Equal(t, clampedIntProduct(left.RawData(), right.RawData()), got.RawData(), "k=%d", k)
	}
}

// TestMultiplyBlockShapeMismatch ensures block shapes are cross-checked.
func TestMultiplyBlockShapeMismatch(t *testing.T) {
	left, _ := boolmatrix.New(4, 2)
	right, _ := boolmatrix.New(3, 4)
	_, err := fourrussians.ExportedMultiplyBlock(left, right)
	require.ErrorIs(t, err, boolmatrix.ErrShapeMismatch)

	right, _ = boolmatrix.New(2, 5)
	_, err = fourrussians.ExportedMultiplyBlock(left, right)
	require.ErrorIs(t, err, boolmatrix.ErrShapeMismatch)
}
