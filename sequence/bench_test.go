// Package sequence_test provides benchmarks for the sequence kernels,
// using deterministic random fill.
package sequence_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dynvec/sequence"
)

// benchSizes are the sequence lengths to benchmark.
var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkS *sequence.Sequence[float64]
	sinkF float64
	sinkB bool
)

// fillRand fills s with values from a seeded source.
func fillRand(s *sequence.Sequence[float64], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range s.Data() {
		s.Set(i, rng.Float64())
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			y := mustNew[float64](b, n)
			fillRand(x, 1337)
			fillRand(y, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := sequence.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = s
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			y := mustNew[float64](b, n)
			fillRand(x, 11)
			fillRand(y, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := sequence.Dot(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			fillRand(x, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkS = x.Clone()
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			fillRand(x, 99)
			y := x.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = sequence.Equal(x, y)
			}
		})
	}
}
