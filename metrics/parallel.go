package metrics

import (
	"runtime"
	"sync"
)

// TriangleCountParallel is TriangleCount with the per-node counting
// partitioned across a worker pool. Each slot of the counts slice is owned by
// exactly one worker, so the result is identical to the sequential variant.
func TriangleCountParallel(src, dst []int64) (*TriangleResult, error) {
	g, err := build("triangle_count_parallel", src, dst)
	if err != nil {
		return nil, err
	}

	nbrs := neighborSets(g)
	counts := make([]int64, g.NodeCount())
	forEachNodeChunk(len(counts), func(lo, hi int) {
		for u := lo; u < hi; u++ {
			counts[u] = int64(closedPairs(nbrs, u))
		}
	})

	return &TriangleResult{NodeIDs: g.NodeIDs(), Triangles: counts}, nil
}

// AverageClusteringParallel is AverageClustering with the per-node
// coefficients computed in parallel and reduced after the barrier, so the
// floating-point summation order is fixed and the result matches the
// sequential variant exactly.
func AverageClusteringParallel(src, dst []int64) (float64, error) {
	g, err := build("average_clustering_parallel", src, dst)
	if err != nil {
		return 0, err
	}

	nbrs := neighborSets(g)
	coeffs := make([]float64, g.NodeCount())
	forEachNodeChunk(len(coeffs), func(lo, hi int) {
		for u := lo; u < hi; u++ {
			coeffs[u] = localClustering(nbrs, u)
		}
	})

	var sum float64
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(g.NodeCount()), nil
}

// forEachNodeChunk splits [0, n) into contiguous chunks, one goroutine each,
// and waits for all of them.
func forEachNodeChunk(n int, fn func(lo, hi int)) {
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
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
