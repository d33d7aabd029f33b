package community

// maxPropagationRounds caps synchronous label propagation, which can
// oscillate on bipartite structures.
const maxPropagationRounds = 100

// LabelPropagation detects communities by synchronous majority voting:
// labels start as node indices and every round each node adopts the most
// frequent label among its neighbors, smallest label winning ties. Stops at
// a fixpoint or after 100 rounds.
// Complexity: O(rounds · (V + E)).
func LabelPropagation(src, dst []int64) (*Result, error) {
	g, err := build("label_propagation", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	labels := make([]int, n)
	next := make([]int, n)
	for i := range labels {
		labels[i] = i
	}

	counts := make(map[int]int)
	for round := 0; round < maxPropagationRounds; round++ {
		changed := false
		for u := 0; u < n; u++ {
			adj := g.Adjacent(u)
			if len(adj) == 0 {
				next[u] = labels[u]
				continue
			}
			clear(counts)
			for _, a := range adj {
				counts[labels[a.To]]++
			}
			best, bestCount := labels[u], 0
			for l, c := range counts {
				if c > bestCount || (c == bestCount && l < best) {
					best, bestCount = l, c
				}
			}
			next[u] = best
			if best != labels[u] {
				changed = true
			}
		}
		labels, next = next, labels
		if !changed {
			break
		}
	}

	return densify(g, labels), nil
}
