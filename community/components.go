package community

// Components returns undirected connected components, labels dense in
// first-seen order.
// Complexity: O(V + E).
func Components(src, dst []int64) (*Result, error) {
	g, err := build("components", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	comp := 0
	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if labels[s] >= 0 {
			continue
		}
		labels[s] = comp
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, a := range g.Adjacent(u) {
				if labels[a.To] < 0 {
					labels[a.To] = comp
					queue = append(queue, a.To)
				}
			}
		}
		comp++
	}

	return densify(g, labels), nil
}
