package bfs_test

import (
	"testing"

	"github.com/pelles/waymap/bfs"
	"github.com/pelles/waymap/core"
)

// BenchmarkSearch_Chain measures Search on a linear chain of size N.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	g, _ := core.New(N + 1)
	for i := core.Location(0); i < N; i++ {
		_ = g.AddConnection(i, i+1, 1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0)
	}
}

// BenchmarkSearch_BinaryTree runs Search on a complete binary tree of depth
// D (~2^D−1 locations).
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 locations
	nodeCount := (1 << depth) - 1

	g, _ := core.New(nodeCount)
	// connect parent → children, 0-indexed
	for i := 0; 2*i+1 < nodeCount; i++ {
		_ = g.AddConnection(core.Location(i), core.Location(2*i+1), 1)
		if 2*i+2 < nodeCount {
			_ = g.AddConnection(core.Location(i), core.Location(2*i+2), 1)
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*nodeCount - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(g, 0)
	}
}
