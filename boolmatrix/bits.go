// SPDX-License-Identifier: MIT

package boolmatrix

// MaxRowBits is the widest row RowBits can pack into a uint64.
const MaxRowBits = 64

// BitsToInt interprets bits as a big-endian unsigned integer: the first
// element is the most significant bit. len(bits) must not exceed MaxRowBits;
// extra leading bits are shifted out.
//
// Complexity: O(len(bits)).
func BitsToInt(bits []bool) uint64 {
	var v uint64
	for _, b := range bits {
		v <<= 1
		if b {
			v |= 1
		}
	}

	return v
}

// RowBits packs row i into an integer with the first column as the most
// significant bit. This is the lookup index used against a precomputed table
// of row subsets.
//
// Errors:
//   - ErrIndexOutOfRange for a bad row.
//   - ErrBlockTooWide when Cols() > MaxRowBits.
//
// Complexity: O(c).
func (m *BoolMatrix) RowBits(i int) (uint64, error) {
	if i < 0 || i >= m.r {
		return 0, boolErrorf(ctxRowBits, i, 0, ErrIndexOutOfRange)
	}
	if m.c > MaxRowBits {
		return 0, boolErrorf(ctxRowBits, i, m.c, ErrBlockTooWide)
	}

	return BitsToInt(m.row(i)), nil
}
