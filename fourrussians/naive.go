// SPDX-License-Identifier: MIT

package fourrussians

import (
	"fmt"

	"github.com/katalvlaran/fourrussians/boolmatrix"
)

// Naive computes the Boolean product a·b with the textbook triple loop.
// Unlike Multiply it accepts any a (r×k) and b (k×c). It exists as the
// reference the block algorithm is checked against and as a baseline in
// benchmarks.
//
// Errors:
//   - boolmatrix.ErrNilMatrix, boolmatrix.ErrShapeMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Naive(a, b *boolmatrix.BoolMatrix) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("fourrussians.Naive: %w", err)
	}
	if err := boolmatrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("fourrussians.Naive: %w", err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("fourrussians.Naive(%dx%d, %dx%d): %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), boolmatrix.ErrShapeMismatch)
	}

	ad, bd := a.RawData(), b.RawData()
	out := make([][]bool, a.Rows())
	for i := range out {
		out[i] = make([]bool, b.Cols())
		for k, aik := range ad[i] {
			if !aik {
				continue
			}
			for j, bkj := range bd[k] {
				out[i][j] = out[i][j] || bkj
			}
		}
	}

	return boolmatrix.NewFromData(a.Rows(), b.Cols(), out)
}
