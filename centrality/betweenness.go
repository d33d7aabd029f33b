package centrality

// Betweenness returns shortest-path betweenness over the undirected
// unweighted interpretation, computed with Brandes' dependency accumulation.
// The undirected double-count is halved; with normalized true the scores are
// divided by (n-1)(n-2)/2.
// Complexity: O(V·E).
func Betweenness(src, dst []int64, normalized bool) (*Result, error) {
	g, err := build("betweenness", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	cb := make([]float64, n)
	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	preds := make([][]int, n)
	order := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		order = order[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
			preds[i] = preds[i][:0]
		}

		// 1. Forward BFS: path counts and predecessor DAG.
		sigma[s] = 1
		dist[s] = 0
		queue = append(queue, s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, a := range g.Adjacent(v) {
				w := a.To
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					preds[w] = append(preds[w], v)
				}
			}
		}

		// 2. Backward accumulation in reverse BFS order.
		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, v := range preds[w] {
				delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}
	}

	// Each undirected pair was counted from both endpoints.
	for i := range cb {
		cb[i] /= 2
	}
	if normalized && n > 2 {
		scale := 2 / (float64(n-1) * float64(n-2))
		for i := range cb {
			cb[i] *= scale
		}
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: cb}, nil
}
