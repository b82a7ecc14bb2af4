// Package boolmatrix provides BoolMatrix, a fixed-shape row-major matrix of
// booleans with the primitives needed by block-based Boolean matrix products.
//
// The package provides:
//
//   - Construction filled with a uniform value (New) or copied from
//     caller-supplied rows (NewFromData), with an optional strict shape mode.
//   - Explicit accessors: CellAt/SetCell for cells, RowAt/SetRow for rows.
//   - Row OR (RowOr), matrix OR (Or, OrInPlace).
//   - Copying block extraction (RowBlock, ColumnBlock) and row packing (RowBits).
//
// Nothing returned by this package aliases a matrix's internal buffer.
//
//	m, _ := boolmatrix.New(3, 3)
//	_ = m.SetCell(0, 2, true)
//	block, _ := m.ColumnBlock(1, 2) // 3×2 copy of columns 1..2
package boolmatrix
