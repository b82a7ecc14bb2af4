package boolmatrix_test

import (
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/stretchr/testify/require"
)

// TestValidators covers each validator and the composite ordering (nil before shape).
func TestValidators(t *testing.T) {
	sq, _ := boolmatrix.New(3, 3)
	sq2, _ := boolmatrix.New(3, 3)
	wide, _ := boolmatrix.New(3, 4)
	tall, _ := boolmatrix.New(4, 3)

	require.NoError(t, boolmatrix.ValidateNotNil(sq))
	require.ErrorIs(t, boolmatrix.ValidateNotNil(nil), boolmatrix.ErrNilMatrix)

	require.NoError(t, boolmatrix.ValidateSameShape(sq, sq2))
	require.ErrorIs(t, boolmatrix.ValidateSameShape(sq, wide), boolmatrix.ErrShapeMismatch)
	require.ErrorIs(t, boolmatrix.ValidateSameShape(sq, tall), boolmatrix.ErrShapeMismatch)

	require.NoError(t, boolmatrix.ValidateSquare(sq))
	require.ErrorIs(t, boolmatrix.ValidateSquare(wide), boolmatrix.ErrNotSquare)

	require.ErrorIs(t, boolmatrix.ValidateBinarySameShape(nil, wide), boolmatrix.ErrNilMatrix)
	require.ErrorIs(t, boolmatrix.ValidateBinarySameShape(sq, nil), boolmatrix.ErrNilMatrix)

	require.NoError(t, boolmatrix.ValidateSquarePair(sq, sq2))
	require.ErrorIs(t, boolmatrix.ValidateSquarePair(sq, wide), boolmatrix.ErrShapeMismatch)
	require.ErrorIs(t, boolmatrix.ValidateSquarePair(wide, wide), boolmatrix.ErrNotSquare)
	require.ErrorIs(t, boolmatrix.ValidateSquarePair(nil, sq), boolmatrix.ErrNilMatrix)
}
