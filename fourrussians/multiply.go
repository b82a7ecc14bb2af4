// SPDX-License-Identifier: MIT

package fourrussians

import (
	"fmt"
	"math/bits"
	"sync"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"golang.org/x/sync/errgroup"
)

// BlockSize returns max(floor(log2(n)), 1), the block width used for an n×n product.
func BlockSize(n int) int {
	if n < 4 {
		return 1
	}

	return bits.Len(uint(n)) - 1
}

// NumBlocks returns ceil(n / blockSize). The last block is narrower when
// blockSize does not divide n.
func NumBlocks(n, blockSize int) int {
	return (n + blockSize - 1) / blockSize
}

// Multiply computes the Boolean product left·right of two equal-shape square
// matrices with the Four Russians method:
// result[i][j] = OR over k of (left[i][k] AND right[k][j]).
//
// Implementation:
//   - Stage 1: validate NotNil → SameShape → Square.
//   - Stage 2: pick blockSize (BlockSize(n) unless WithBlockSize) and the
//     number of blocks ceil(n/blockSize).
//   - Stage 3: for every block i, take columns [i*bs, i*bs+bs) of left and the
//     same rows of right, compute their contribution and OR it into result.
//     With WithWorkers(w > 1) blocks run concurrently; merges are serialized.
//
// Behavior highlights:
//   - Inputs are never mutated.
//   - On any block failure the whole call fails and no partial result is returned.
//
// Errors:
//   - boolmatrix.ErrNilMatrix, boolmatrix.ErrShapeMismatch, boolmatrix.ErrNotSquare.
//   - ErrBlockSize (only reachable through internal misuse).
//
// Complexity:
//   - Time O(n^3 / log n), Space O(n^2).
func Multiply(left, right *boolmatrix.BoolMatrix, opts ...Option) (*boolmatrix.BoolMatrix, error) {
	if err := boolmatrix.ValidateSquarePair(left, right); err != nil {
		return nil, fmt.Errorf("fourrussians.Multiply: %w", err)
	}
	o := gatherOptions(opts...)

	n := left.Rows()
	bs := o.blockSize
	if bs == DefaultBlockSize {
		bs = BlockSize(n)
	}
	nb := NumBlocks(n, bs)

	result, err := boolmatrix.New(n, n)
	if err != nil {
		return nil, err
	}
	o.log.V(1).Info("multiplying", "dim", n, "blockSize", bs, "blocks", nb, "workers", o.workers)

	if o.workers > 1 && nb > 1 {
		err = multiplyParallel(left, right, result, bs, nb, o)
	} else {
		err = multiplySequential(left, right, result, bs, nb, o)
	}
	if err != nil {
		return nil, fmt.Errorf("fourrussians.Multiply: %w", err)
	}

	return result, nil
}

// blockContribution extracts block i from both operands and multiplies it.
func blockContribution(left, right *boolmatrix.BoolMatrix, i, bs int) (*boolmatrix.BoolMatrix, error) {
	lb, err := left.ColumnBlock(i*bs, bs)
	if err != nil {
		return nil, err
	}
	rb, err := right.RowBlock(i*bs, bs)
	if err != nil {
		return nil, err
	}

	return multiplyBlock(lb, rb)
}

func multiplySequential(left, right, result *boolmatrix.BoolMatrix, bs, nb int, o Options) error {
	for i := 0; i < nb; i++ {
		c, err := blockContribution(left, right, i, bs)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if err = result.OrInPlace(c); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		o.log.V(2).Info("block merged", "block", i)
	}

	return nil
}

// multiplyParallel runs up to o.workers blocks at once. Each block builds its
// own table and contribution; only the OR into result is under the mutex.
func multiplyParallel(left, right, result *boolmatrix.BoolMatrix, bs, nb int, o Options) error {
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(o.workers)

	for i := 0; i < nb; i++ {
		i := i
		g.Go(func() error {
			c, err := blockContribution(left, right, i, bs)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if err = result.OrInPlace(c); err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			o.log.V(2).Info("block merged", "block", i)

			return nil
		})
	}

	return g.Wait()
}
