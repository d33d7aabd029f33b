package traverse

import (
	"runtime"
	"sync"
)

// BFSParallel is BFS with level-parallel frontier expansion. Each level's
// adjacency scans are partitioned across a worker pool; discoveries are then
// merged sequentially in frontier order so the visitation order is identical
// to BFS for any worker count.
// Complexity: O(V + E) work, O(V/P + diameter) span.
func BFSParallel(src, dst []int64, source int64) (*Result, error) {
	g, start, err := buildFor("bfs", src, dst, source)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	workers := runtime.GOMAXPROCS(0)
	visited := make([]bool, n)
	order := make([]int64, 0, n)

	frontier := []int{start}
	visited[start] = true
	// candidates[i] collects the unvisited-at-scan-time neighbors of
	// frontier[i]; the merge below re-checks visited, so a node seen from two
	// frontier parents is claimed exactly once, by the earlier parent.
	for len(frontier) > 0 {
		for _, u := range frontier {
			order = append(order, g.IDOf(u))
		}

		candidates := make([][]int, len(frontier))
		var wg sync.WaitGroup
		chunk := (len(frontier) + workers - 1) / workers
		for lo := 0; lo < len(frontier); lo += chunk {
			hi := lo + chunk
			if hi > len(frontier) {
				hi = len(frontier)
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					for _, a := range g.Adjacent(frontier[i]) {
						if !visited[a.To] {
							candidates[i] = append(candidates[i], a.To)
						}
					}
				}
			}(lo, hi)
		}
		wg.Wait()

		next := frontier[:0:0]
		for _, cs := range candidates {
			for _, v := range cs {
				if !visited[v] {
					visited[v] = true
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	return &Result{Order: order}, nil
}
