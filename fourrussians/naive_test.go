package fourrussians_test

import (
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/katalvlaran/fourrussians/fourrussians"
	"github.com/stretchr/testify/require"
)

// TestNaiveRectangular checks the reference product on non-square operands.
func TestNaiveRectangular(t *testing.T) {
	a := randomMatrix(t, 3, 5, 0.5, 31)
	b := randomMatrix(t, 5, 2, 0.5, 32)

	got, err := fourrussians.Naive(a, b)
	require.NoError(t, err)
	require.Equal(t, clampedIntProduct(a.RawData(), b.RawData()), got.RawData())
}

// TestNaiveAgreesWithMultiply cross-checks both products on square inputs.
func TestNaiveAgreesWithMultiply(t *testing.T) {
	for _, n := range []int{2, 6, 17, 32} {
		a := randomMatrix(t, n, n, 0.2, int64(n))
		b := randomMatrix(t, n, n, 0.2, int64(n+1))

		want, err := fourrussians.Naive(a, b)
		require.NoError(t, err)
		got, err := fourrussians.Multiply(a, b)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "n=%d", n)
	}
}

// TestNaiveErrors covers nil and inner-dimension mismatches.
func TestNaiveErrors(t *testing.T) {
	a, _ := boolmatrix.New(2, 3)

	_, err := fourrussians.Naive(a, a)
	require.ErrorIs(t, err, boolmatrix.ErrShapeMismatch)
	_, err = fourrussians.Naive(nil, a)
	require.ErrorIs(t, err, boolmatrix.ErrNilMatrix)
	_, err = fourrussians.Naive(a, nil)
	require.ErrorIs(t, err, boolmatrix.ErrNilMatrix)
}
