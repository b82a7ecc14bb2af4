// SPDX-License-Identifier: MIT

// Package fourrussians: functional configuration for Multiply and Closure.
//
// Notes:
//   - Defaults reproduce the reference behavior: sequential block loop,
//     block size derived from n, no logging.
//   - WithX constructors panic on nonsensical values (programmer error);
//     user-data errors are always returned.
package fourrussians

import "github.com/go-logr/logr"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers runs the block loop on the calling goroutine.
	DefaultWorkers = 1

	// DefaultBlockSize (0) means "derive from n" via BlockSize(n).
	DefaultBlockSize = 0
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid   = "fourrussians: WithWorkers: n must be >= 1"
	panicBlockSizeInvalid = "fourrussians: WithBlockSize: k must be in [1, MaxBlockSize]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers   int         // DefaultWorkers
	blockSize int         // DefaultBlockSize (0 = derived)
	log       logr.Logger // logr.Discard() unless WithLogger
}

// WithWorkers processes up to n blocks concurrently. n == 1 keeps the
// sequential loop.
//
// Errors:
//   - Panics when n < 1.
//
// AI-Hints:
//   - runtime.GOMAXPROCS(0) is a sensible upper bound; blocks number only
//     ceil(n/log2 n), so very large worker counts do not help.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBlockSize overrides the derived block size. Any k in [1, MaxBlockSize]
// gives the same product; it only trades table size against block count.
func WithBlockSize(k int) Option {
	if k < 1 || k > MaxBlockSize {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = k }
}

// WithLogger injects a logger. Multiply logs one V(1) line per call and one
// V(2) line per block.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.log = l }
}

// gatherOptions resolves defaults and applies user setters in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		blockSize: DefaultBlockSize,
		log:       logr.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
