package centrality

import (
	"runtime"
	"sync"
)

// PageRankParallel is PageRank with the per-node updates row-partitioned
// across a worker pool, synchronized by an iteration barrier. Each slot sums
// its in-adjacency in the same order as the sequential kernel, so the output
// is numerically identical to PageRank.
func PageRankParallel(src, dst []int64, damping float64, maxIter int, directed bool) (*Result, error) {
	return pageRank("pagerank_parallel", src, dst, damping, maxIter, directed, parFill)
}

// parFill is the worker-pool fill strategy: contiguous chunks of slots, one
// goroutine each, joined before the caller proceeds.
func parFill(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
