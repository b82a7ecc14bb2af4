// SPDX-License-Identifier: MIT

// Package fourrussians - one block of the Four Russians product.
//
// Purpose:
//   - buildSumsTable: OR of every subset of a row block, 2^k rows.
//   - multiplyBlock: contribution of one (column block, row block) pair to
//     the full product, read row by row from the table.
//
// Complexity quicksheet (k = block height, n = dimension):
//   - buildSumsTable: O(2^k * n) time and space.
//   - multiplyBlock: O(2^k * n + n*k + n*n).

package fourrussians

import (
	"fmt"

	"github.com/katalvlaran/fourrussians/boolmatrix"
)

// MaxBlockSize bounds the table height 2^k so it stays allocatable.
const MaxBlockSize = 30

// buildSumsTable returns a (2^k)×n matrix whose row idx is the OR of the rows
// of right selected by the set bits of idx, with the most significant of the
// k bits selecting right's first row. k is right.Rows(); row 0 is all false.
//
// Implementation:
//   - Stage 1: allocate the table; row 0 (empty subset) stays false.
//   - Stage 2: for idx = 1..2^k-1 in increasing order, table[idx] =
//     table[idx - 2^bit] OR right[k-bit-1], where bit is the highest set bit
//     of idx. Every entry costs one row OR over an already computed entry.
//
// Bookkeeping:
//   - remaining counts down the entries left before idx reaches the next
//     power of two; when it hits 1 the highest bit moves up by one.
//   - Both counters are updated after an entry is written, so on entry to
//     iteration idx they already describe idx.
//
// Errors:
//   - ErrBlockSize when k is outside [1, MaxBlockSize].
func buildSumsTable(right *boolmatrix.BoolMatrix) (*boolmatrix.BoolMatrix, error) {
	k, n := right.Shape()
	if k < 1 || k > MaxBlockSize {
		return nil, fmt.Errorf("fourrussians.buildSumsTable(k=%d): %w", k, ErrBlockSize)
	}
	size := 1 << k

	table, err := boolmatrix.New(size, n)
	if err != nil {
		return nil, err
	}

	var (
		remaining = 1 // entries left before the highest bit advances
		bit       = 0 // highest set bit of idx
		row       []bool
	)
	for idx := 1; idx < size; idx++ {
		row, err = table.RowOr(idx-(1<<bit), right, k-bit-1)
		if err != nil {
			return nil, err
		}
		if err = table.SetRow(idx, row); err != nil {
			return nil, err
		}

		if remaining == 1 {
			remaining = idx + 1
			bit++
		} else {
			remaining--
		}
	}

	return table, nil
}

// multiplyBlock computes the n×n contribution left·right of one block pair:
// left is n×k (a column block of the left operand), right is k×n (the matching
// row block of the right operand). Row r of the result is
// table[bits(left[r])].
//
// Errors:
//   - boolmatrix.ErrShapeMismatch when left.Cols() != right.Rows() or the
//     outer dimensions differ.
//   - ErrBlockSize from buildSumsTable.
func multiplyBlock(left, right *boolmatrix.BoolMatrix) (*boolmatrix.BoolMatrix, error) {
	n, k := left.Shape()
	if k != right.Rows() || n != right.Cols() {
		return nil, fmt.Errorf("fourrussians.multiplyBlock(%dx%d, %dx%d): %w",
			n, k, right.Rows(), right.Cols(), boolmatrix.ErrShapeMismatch)
	}

	table, err := buildSumsTable(right)
	if err != nil {
		return nil, err
	}

	out, err := boolmatrix.New(n, n)
	if err != nil {
		return nil, err
	}
	var (
		idx uint64
		row []bool
	)
	for r := 0; r < n; r++ {
		if idx, err = left.RowBits(r); err != nil {
			return nil, err
		}
		if idx == 0 {
			continue // empty subset: row stays false
		}
		if row, err = table.RowAt(int(idx)); err != nil {
			return nil, err
		}
		if err = out.SetRow(r, row); err != nil {
			return nil, err
		}
	}

	return out, nil
}
