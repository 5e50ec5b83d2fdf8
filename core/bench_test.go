// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/mincut/core"
)

// complete builds K_n over labels 0..n-1.
func complete(b *testing.B, n int) *core.Graph {
	b.Helper()
	g, vs := newLabeled(b, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(vs[i], vs[j]); err != nil {
				b.Fatal(err)
			}
		}
	}
	return g
}

// BenchmarkContract_K64 measures a full deterministic contraction of K_64 down to two vertices.
func BenchmarkContract_K64(b *testing.B) {
	base := complete(b, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := base.Clone()
		for g.VertexCount() > 2 {
			if _, err := g.Contract(g.EdgeAt(0)); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkRemoveEdge measures swap-remove on the live list.
func BenchmarkRemoveEdge(b *testing.B) {
	base := complete(b, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := base.Clone()
		b.StartTimer()
		for g.EdgeCount() > 0 {
			_ = g.RemoveEdge(g.EdgeAt(0))
		}
	}
}
