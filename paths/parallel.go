package paths

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// DijkstraParallel is Dijkstra's contract computed by synchronous rounds
// of parallel edge relaxation (a Bellman-Ford schedule restricted to
// non-negative weights). Each round partitions the edge set across a worker
// pool; workers record per-chunk improvement candidates which are then merged
// sequentially, so the distances are identical to Dijkstra for any worker
// count. Converges in at most V-1 rounds.
func DijkstraParallel(src, dst []int64, weights []float64, source int64) (*DistanceResult, error) {
	g, start, err := buildFor("dijkstra_parallel", src, dst, weights, source)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("dijkstra_parallel: edge %d→%d weight %g: %w",
				g.IDOf(e.From), g.IDOf(e.To), e.Weight, ErrNegativeWeight)
		}
	}

	n := g.NodeCount()
	edges := g.Edges()
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(edges) + workers - 1) / workers

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	type improvement struct {
		node int
		dist float64
	}
	for round := 0; round < n-1; round++ {
		var wg sync.WaitGroup
		found := make([][]improvement, (len(edges)+chunk-1)/chunk)
		for w := 0; w < len(found); w++ {
			lo, hi := w*chunk, (w+1)*chunk
			if hi > len(edges) {
				hi = len(edges)
			}
			wg.Add(1)
			go func(w, lo, hi int) {
				defer wg.Done()
				for _, e := range edges[lo:hi] {
					if d := dist[e.From] + e.Weight; d < dist[e.To] {
						found[w] = append(found[w], improvement{e.To, d})
					}
					if d := dist[e.To] + e.Weight; d < dist[e.From] {
						found[w] = append(found[w], improvement{e.From, d})
					}
				}
			}(w, lo, hi)
		}
		wg.Wait()

		changed := false
		for _, fs := range found {
			for _, im := range fs {
				if im.dist < dist[im.node] {
					dist[im.node] = im.dist
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return resultFrom(g, dist), nil
}
