// Package fourrussians_test provides benchmarks comparing the block product
// with the naive triple loop, using deterministic random operands.
package fourrussians_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/fourrussians/boolmatrix"
	"github.com/katalvlaran/fourrussians/fourrussians"
)

// benchSizes are the matrix dimensions to benchmark.
var benchSizes = []int{64, 128, 256}

// sink defeats dead-code elimination.
var sink *boolmatrix.BoolMatrix

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomMatrix(b, n, n, 0.5, 1337)
			y := randomMatrix(b, n, n, 0.5, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := fourrussians.Multiply(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sink = m
			}
		})
	}
}

func BenchmarkMultiplyParallel(b *testing.B) {
	b.ReportAllocs()
	workers := runtime.GOMAXPROCS(0)
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d/w=%d", n, workers), func(b *testing.B) {
			x := randomMatrix(b, n, n, 0.5, 11)
			y := randomMatrix(b, n, n, 0.5, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := fourrussians.Multiply(x, y, fourrussians.WithWorkers(workers))
				if err != nil {
					b.Fatal(err)
				}
				sink = m
			}
		})
	}
}

func BenchmarkNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomMatrix(b, n, n, 0.5, 1)
			y := randomMatrix(b, n, n, 0.5, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := fourrussians.Naive(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sink = m
			}
		})
	}
}
