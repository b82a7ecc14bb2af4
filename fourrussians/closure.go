// SPDX-License-Identifier: MIT

package fourrussians

import (
	"fmt"

	"github.com/katalvlaran/fourrussians/boolmatrix"
)

// Closure returns the reflexive-transitive closure of a square relation m:
// cell (i, j) is true iff j is reachable from i in zero or more steps.
//
// Implementation:
//   - Stage 1: R = m OR I.
//   - Stage 2: square R with Multiply until it stops changing. R is reflexive,
//     so R ⊆ R·R and the sequence grows monotonically; it settles after at
//     most ceil(log2 n) + 1 products.
//
// Options are passed through to every Multiply call.
//
// Errors:
//   - boolmatrix.ErrNilMatrix, boolmatrix.ErrNotSquare.
//
// Complexity:
//   - Time O(n^3) (log n products of O(n^3 / log n)), Space O(n^2).
func Closure(m *boolmatrix.BoolMatrix, opts ...Option) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("fourrussians.Closure: %w", err)
	}
	if err := boolmatrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("fourrussians.Closure: %w", err)
	}

	r := m.Clone()
	for i := 0; i < r.Rows(); i++ {
		if err := r.SetCell(i, i, true); err != nil {
			return nil, err
		}
	}

	for {
		sq, err := Multiply(r, r, opts...)
		if err != nil {
			return nil, fmt.Errorf("fourrussians.Closure: %w", err)
		}
		if sq.Equal(r) {
			return r, nil
		}
		r = sq
	}
}
