package centrality

// Laplacian returns Laplacian centrality: the drop in Laplacian energy when
// the node is removed. Energy is computed on the simple structure (unique
// neighbors, self-loops ignored) as Σ degᵢ² + 2·edges.
// Complexity: O(V·E) in the worst case.
func Laplacian(src, dst []int64) (*Result, error) {
	g, err := build("laplacian", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	nbrs := make([][]int, n)
	seen := make([]map[int]struct{}, n)
	for u := 0; u < n; u++ {
		seen[u] = make(map[int]struct{})
		for _, a := range g.Adjacent(u) {
			if a.To == u {
				continue
			}
			if _, ok := seen[u][a.To]; !ok {
				seen[u][a.To] = struct{}{}
				nbrs[u] = append(nbrs[u], a.To)
			}
		}
	}

	edges := 0
	degSq := 0.0
	for u := 0; u < n; u++ {
		d := float64(len(nbrs[u]))
		degSq += d * d
		edges += len(nbrs[u])
	}
	edges /= 2
	energy := degSq + 2*float64(edges)

	scores := make([]float64, n)
	for v := 0; v < n; v++ {
		dv := float64(len(nbrs[v]))
		// Removing v: its own deg² term goes, each neighbor's degree drops by
		// one, and dv edges disappear.
		reducedDegSq := degSq - dv*dv
		for _, u := range nbrs[v] {
			du := float64(len(nbrs[u]))
			reducedDegSq += (du-1)*(du-1) - du*du
		}
		reducedEnergy := reducedDegSq + 2*(float64(edges)-dv)
		scores[v] = energy - reducedEnergy
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: scores}, nil
}
