// Package fourrussians multiplies square Boolean matrices with the
// Four Russians method.
//
// 🚀 What is the Four Russians method?
//
//	The Boolean product C = A·B sets C[i][j] = OR_k (A[i][k] AND B[k][j]).
//	Split the shared dimension into blocks of k = floor(log2 n) columns of A
//	(and the same rows of B). For each block, precompute the OR of every one
//	of the 2^k subsets of B's block rows; each row of A's block, read as a
//	k-bit number, then indexes its whole contribution in one lookup. The
//	per-block contributions are OR-merged into C.
//
// ✨ Key features:
//   - table built incrementally: one row OR per entry, O(2^k · n) per block
//   - optional parallel block loop (WithWorkers) on an errgroup
//   - pluggable logging through logr (WithLogger), silent by default
//   - Naive reference product and reachability Closure built on Multiply
//
// ⚙️ Usage:
//
//	a, _ := boolmatrix.NewFromData(n, n, gridA)
//	b, _ := boolmatrix.NewFromData(n, n, gridB)
//	c, err := fourrussians.Multiply(a, b, fourrussians.WithWorkers(4))
//
// Performance:
//
//   - Time:   O(n³ / log n)
//   - Memory: O(n²) plus one 2^k × n table (at most n² cells) per block in flight
package fourrussians
