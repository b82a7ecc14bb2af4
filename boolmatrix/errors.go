// SPDX-License-Identifier: MIT
// Package boolmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// boolmatrix package. Public methods return these sentinels (wrapped with
// method context) and tests check them via errors.Is. No method panics on
// user-triggered error conditions.

package boolmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "boolmatrix: ..." so log lines are easy to
// grep. Call sites wrap with fmt.Errorf("BoolMatrix.<Method>(...): %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrInvalidDimension is returned when a requested height or width is non-positive,
	// or when clamping caller-supplied data leaves an empty shape.
	ErrInvalidDimension = errors.New("boolmatrix: dimensions must be > 0")

	// ErrIndexOutOfRange indicates that a row, column or block start index is
	// outside valid bounds. Public accessors return this, never panic.
	ErrIndexOutOfRange = errors.New("boolmatrix: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands, a row
	// of the wrong length, or (in strict mode) truncated/ragged input data.
	ErrShapeMismatch = errors.New("boolmatrix: shape mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("boolmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *BoolMatrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("boolmatrix: nil matrix")

	// ErrBlockTooWide is returned by RowBits when a row does not fit into a uint64.
	ErrBlockTooWide = errors.New("boolmatrix: row wider than 64 bits")
)
