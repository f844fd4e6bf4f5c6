// Package matrix_test provides benchmarks for Graph operations.
package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/grafo/matrix"
)

// benchSize is the capacity used across benchmarks.
const benchSize = 1000

// BenchmarkAddEdgeIdx measures raw index insertion on both backends.
func BenchmarkAddEdgeIdx(b *testing.B) {
	for _, be := range backends {
		b.Run(be.name, func(b *testing.B) {
			g := mustNew(b, benchSize, matrix.Symmetric, be.opts...)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.AddEdgeIdx(i%benchSize, (i*7)%benchSize, 1)
			}
		})
	}
}

// BenchmarkAddEdge_Labels measures insertion including label resolution.
func BenchmarkAddEdge_Labels(b *testing.B) {
	labels := make([]string, benchSize)
	for i := range labels {
		labels[i] = "n" + strconv.Itoa(i)
	}
	g := mustNew(b, benchSize, matrix.Directed)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(labels[0], labels[1+i%(benchSize-1)], 1)
	}
}

// BenchmarkNeighborsIdx compares a full-row scan on a sparse star: dense pays
// O(size) per call, sparse O(d log d).
func BenchmarkNeighborsIdx(b *testing.B) {
	for _, be := range backends {
		b.Run(be.name, func(b *testing.B) {
			g := mustNew(b, benchSize, matrix.Directed, be.opts...)
			for j := 1; j < 16; j++ {
				_ = g.AddEdgeIdx(0, j, float64(j))
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = g.NeighborsIdx(0)
			}
		})
	}
}
