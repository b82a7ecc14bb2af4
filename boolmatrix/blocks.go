// SPDX-License-Identifier: MIT

package boolmatrix

// RowBlock materializes rows [start, start+min(size, Rows()-start)) as a new,
// independently owned matrix of full width.
//
// Implementation:
//   - Stage 1: validate 0 <= start < Rows() and size > 0.
//   - Stage 2: clamp size so the block never reads past the last row.
//   - Stage 3: copy the contiguous row range (rows are adjacent in row-major order).
//
// Errors:
//   - ErrIndexOutOfRange when start is outside [0, Rows()).
//   - ErrInvalidDimension when size <= 0.
//
// Complexity:
//   - Time O(size*c), Space O(size*c).
func (m *BoolMatrix) RowBlock(start, size int) (*BoolMatrix, error) {
	if start < 0 || start >= m.r {
		return nil, boolErrorf(ctxRowBlock, start, size, ErrIndexOutOfRange)
	}
	if size <= 0 {
		return nil, boolErrorf(ctxRowBlock, start, size, ErrInvalidDimension)
	}
	size = min(size, m.r-start)

	out := newZero(size, m.c)
	copy(out.data, m.data[start*m.c:(start+size)*m.c])

	return out, nil
}

// ColumnBlock materializes columns [start, start+min(size, Cols()-start)) as a
// new, independently owned matrix of full height.
//
// Errors:
//   - ErrIndexOutOfRange when start is outside [0, Cols()).
//   - ErrInvalidDimension when size <= 0.
//
// Complexity:
//   - Time O(r*size), Space O(r*size).
func (m *BoolMatrix) ColumnBlock(start, size int) (*BoolMatrix, error) {
	if start < 0 || start >= m.c {
		return nil, boolErrorf(ctxColumnBlock, start, size, ErrIndexOutOfRange)
	}
	if size <= 0 {
		return nil, boolErrorf(ctxColumnBlock, start, size, ErrInvalidDimension)
	}
	size = min(size, m.c-start)

	out := newZero(m.r, size)
	for i := 0; i < m.r; i++ { // one strided copy per row
		copy(out.data[i*size:(i+1)*size], m.data[i*m.c+start:i*m.c+start+size])
	}

	return out, nil
}
