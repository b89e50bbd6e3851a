package bfs_test

import (
	"testing"

	"github.com/katalvlaran/advent/bfs"
)

// BenchmarkSearch_Chain measures BFS on a linear chain of N states.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	nb := chain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search([]int{0}, nb)
	}
}
