// Package matrix_test provides benchmarks for the Dense helpers,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dlops/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM  *matrix.Dense[float64]
	sinkMM []matrix.Mismatch[float64]
)

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense[float64](b, n, n)
			if err := A.FillRandom(matrix.WithSeed(1337)); err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense[float64](b, n, n)
			if err := A.FillRandom(matrix.WithSeed(4242)); err != nil {
				b.Fatal(err)
			}
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				mm, err := matrix.Compare(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkMM = mm
			}
		})
	}
}

func BenchmarkFillRandom(b *testing.B) {
	A := mustDense[float64](b, 256, 256)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := A.FillRandom(matrix.WithSeed(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
	sinkM = A
}
