// SPDX-License-Identifier: MIT

// Package boolmatrix - BoolMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Never alias storage: every export (RowAt, RawData, blocks, Clone) is a copy.
//
// Complexity quicksheet:
//   - New: O(r*c); NewFromData: O(r*c); CellAt/SetCell: O(1); RowAt/SetRow: O(c);
//     Clone/RawData: O(r*c).

package boolmatrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxCellAt      = "CellAt"
	ctxSetCell     = "SetCell"
	ctxRowAt       = "RowAt"
	ctxSetRow      = "SetRow"
	ctxRowOr       = "RowOr"
	ctxRowBits     = "RowBits"
	ctxRowBlock    = "RowBlock"
	ctxColumnBlock = "ColumnBlock"
	ctxOrInPlace   = "OrInPlace"
	ctxNewFromData = "NewFromData"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
	_fmtTrue     = "1"
	_fmtFalse    = "0"
)

// boolErrorf wraps an error with a uniform BoolMatrix context and callsite indices.
// Keeps the sentinel reachable through %w.
func boolErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("BoolMatrix.%s(%d,%d): %w", method, row, col, err)
}

// BoolMatrix is a fixed-shape, row-major matrix of booleans.
//   - r,c hold dimensions (height, width), both > 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//
// A BoolMatrix exclusively owns its buffer. It is not safe for concurrent
// mutation; concurrent reads are fine.
type BoolMatrix struct {
	r, c int    // row and column counts
	data []bool // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*BoolMatrix)(nil)

// New creates an h×w matrix filled with the value chosen by WithFill
// (false by default).
//
// Implementation:
//   - Stage 1: validate h>0 && w>0; else ErrInvalidDimension.
//   - Stage 2: allocate the flat buffer (make zero-fills to false).
//   - Stage 3: overwrite with true when WithFill(true) was given.
//
// Errors:
//   - ErrInvalidDimension.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New(h, w int, opts ...Option) (*BoolMatrix, error) {
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("boolmatrix.New(%d,%d): %w", h, w, ErrInvalidDimension)
	}
	o := gatherOptions(opts...)

	buf := make([]bool, h*w)
	if o.fill {
		for i := range buf {
			buf[i] = true
		}
	}

	return &BoolMatrix{r: h, c: w, data: buf}, nil
}

// newZero is the internal constructor for shapes already known to be valid.
func newZero(h, w int) *BoolMatrix {
	return &BoolMatrix{r: h, c: w, data: make([]bool, h*w)}
}

// NewFromData builds a matrix from caller-supplied rows.
//
// Implementation:
//   - Stage 1: validate requested h>0 && w>0 and that data has at least one row.
//   - Stage 2: clamp h to min(h, len(data)) and w to min(w, len(data[0])).
//   - Stage 3: deep-copy the clamped region; the result never aliases data.
//
// Behavior highlights:
//   - Truncation is silent by default (a V(1) observer message is emitted).
//   - WithStrictShape turns any truncation into ErrShapeMismatch.
//   - A row shorter than the clamped width is always ErrShapeMismatch; there is
//     no value to copy for the missing cells.
//
// Errors:
//   - ErrInvalidDimension (non-positive request, or empty data/first row).
//   - ErrShapeMismatch (short row; any mismatch in strict mode).
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func NewFromData(h, w int, data [][]bool, opts ...Option) (*BoolMatrix, error) {
	if h <= 0 || w <= 0 || len(data) == 0 || len(data[0]) == 0 {
		return nil, fmt.Errorf("boolmatrix.%s(%d,%d): %w", ctxNewFromData, h, w, ErrInvalidDimension)
	}
	o := gatherOptions(opts...)

	rows, cols := min(h, len(data)), min(w, len(data[0]))
	if o.strict && (rows != h || cols != w || len(data) != h) {
		return nil, fmt.Errorf("boolmatrix.%s(%d,%d): data is %dx%d: %w",
			ctxNewFromData, h, w, len(data), len(data[0]), ErrShapeMismatch)
	}
	if rows != h || cols != w {
		o.observer.V(1).Info("truncating matrix data",
			"requestedRows", h, "requestedCols", w, "rows", rows, "cols", cols)
	}

	m := newZero(rows, cols)
	for i := 0; i < rows; i++ {
		src := data[i]
		if len(src) < cols || (o.strict && len(src) != cols) {
			return nil, boolErrorf(ctxNewFromData, i, len(src), ErrShapeMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], src[:cols])
	}

	return m, nil
}

// Rows returns the matrix height.
func (m *BoolMatrix) Rows() int { return m.r }

// Cols returns the matrix width.
func (m *BoolMatrix) Cols() int { return m.c }

// Shape returns (height, width).
func (m *BoolMatrix) Shape() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfRange
// wrapped with the caller's method tag.
func (m *BoolMatrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, boolErrorf(method, row, col, ErrIndexOutOfRange)
	}

	return row*m.c + col, nil
}

// CellAt retrieves the element at (row, col).
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *BoolMatrix) CellAt(row, col int) (bool, error) {
	idx, err := m.indexOf(ctxCellAt, row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// SetCell assigns v at (row, col).
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *BoolMatrix) SetCell(row, col int, v bool) error {
	idx, err := m.indexOf(ctxSetCell, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RowAt returns a copy of row i.
// Errors: ErrIndexOutOfRange. Complexity: O(c).
func (m *BoolMatrix) RowAt(i int) ([]bool, error) {
	if i < 0 || i >= m.r {
		return nil, boolErrorf(ctxRowAt, i, 0, ErrIndexOutOfRange)
	}
	out := make([]bool, m.c)
	copy(out, m.row(i))

	return out, nil
}

// SetRow overwrites row i with a copy of row.
// Errors: ErrIndexOutOfRange, ErrShapeMismatch when len(row) != Cols().
// Complexity: O(c).
func (m *BoolMatrix) SetRow(i int, row []bool) error {
	if i < 0 || i >= m.r {
		return boolErrorf(ctxSetRow, i, 0, ErrIndexOutOfRange)
	}
	if len(row) != m.c {
		return boolErrorf(ctxSetRow, i, len(row), ErrShapeMismatch)
	}
	copy(m.row(i), row)

	return nil
}

// row returns the live slice of row i. Callers must have validated i.
func (m *BoolMatrix) row(i int) []bool {
	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *BoolMatrix) Clone() *BoolMatrix {
	cp := make([]bool, len(m.data))
	copy(cp, m.data)

	return &BoolMatrix{r: m.r, c: m.c, data: cp}
}

// RawData returns the content as an independent [][]bool.
// Complexity: O(r*c).
func (m *BoolMatrix) RawData() [][]bool {
	out := make([][]bool, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]bool, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Equal reports whether m and other have the same shape and cells.
// A nil matrix is only equal to another nil matrix.
func (m *BoolMatrix) Equal(other *BoolMatrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders rows as "[1 0 1]" lines. Intended for logs and debugging.
// Complexity: O(r*c).
func (m *BoolMatrix) String() string {
	var b strings.Builder
	b.Grow(m.r * (2*m.c + 2))
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j, v := range m.row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			if v {
				b.WriteString(_fmtTrue)
			} else {
				b.WriteString(_fmtFalse)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
