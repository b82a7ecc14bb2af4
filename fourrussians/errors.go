// SPDX-License-Identifier: MIT
// Package fourrussians: sentinel error set.
// Shape and index failures surface the boolmatrix sentinels unchanged
// (ErrShapeMismatch, ErrNotSquare, ErrNilMatrix, ...); this file only adds
// conditions specific to the block algorithm.

package fourrussians

import "errors"

var (
	// ErrBlockSize is returned when a block size is < 1 or > MaxBlockSize,
	// i.e. when the 2^blockSize precomputed table cannot be built.
	ErrBlockSize = errors.New("fourrussians: invalid block size")
)
