// SPDX-License-Identifier: MIT

// Package boolmatrix - element-wise OR primitives.
//
// Purpose:
//   - RowOr: OR of one row of the receiver with one row of another matrix.
//   - Or / OrInPlace: element-wise OR of two equal-shape matrices.
//
// Determinism & Performance:
//   - Fixed loop order; operate on the flat buffers directly.
//   - Shapes are checked once up front, never inside loops.

package boolmatrix

import "fmt"

// RowOr returns a new row equal to m[selfRow] OR other[otherRow].
//
// Errors:
//   - ErrNilMatrix when other is nil.
//   - ErrIndexOutOfRange for either row index.
//   - ErrShapeMismatch when the two matrices have different widths.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *BoolMatrix) RowOr(selfRow int, other *BoolMatrix, otherRow int) ([]bool, error) {
	if other == nil {
		return nil, boolErrorf(ctxRowOr, selfRow, otherRow, ErrNilMatrix)
	}
	if selfRow < 0 || selfRow >= m.r || otherRow < 0 || otherRow >= other.r {
		return nil, boolErrorf(ctxRowOr, selfRow, otherRow, ErrIndexOutOfRange)
	}
	if m.c != other.c {
		return nil, boolErrorf(ctxRowOr, m.c, other.c, ErrShapeMismatch)
	}

	out := make([]bool, m.c)
	orRows(out, m.row(selfRow), other.row(otherRow))

	return out, nil
}

// orRows writes a[j] || b[j] into dst[j]. All three slices have equal length.
// dst may alias a or b.
func orRows(dst, a, b []bool) {
	for j := range dst {
		dst[j] = a[j] || b[j]
	}
}

// Or returns a new matrix equal to a OR b, leaving both operands untouched.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (via ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Or(a, b *BoolMatrix) (*BoolMatrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, fmt.Errorf("boolmatrix.Or: %w", err)
	}
	out := newZero(a.r, a.c)
	orRows(out.data, a.data, b.data)

	return out, nil
}

// OrInPlace sets m = m OR other. Applying the same other twice yields the
// same matrix as applying it once.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *BoolMatrix) OrInPlace(other *BoolMatrix) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return fmt.Errorf("BoolMatrix.%s: %w", ctxOrInPlace, err)
	}
	orRows(m.data, m.data, other.data)

	return nil
}
