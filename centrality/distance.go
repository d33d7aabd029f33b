package centrality

import "github.com/graphium/graphium/core"

// Closeness returns Wasserman-Faust closeness: the inverse average distance
// to reached nodes, scaled by the fraction of the graph that is reachable.
// Isolated nodes score 0.
// Complexity: O(V·(V + E)).
func Closeness(src, dst []int64) (*Result, error) {
	g, err := build("closeness", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	scores := make([]float64, n)
	for u := 0; u < n; u++ {
		var reached, sum float64
		for v, d := range bfsHops(g, u) {
			if v != u && d > 0 {
				reached++
				sum += float64(d)
			}
		}
		if sum > 0 && n > 1 {
			scores[u] = (reached / float64(n-1)) * (reached / sum)
		}
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: scores}, nil
}

// Harmonic returns harmonic centrality: the sum of reciprocal distances to
// every other reachable node (unreachable nodes contribute 0).
func Harmonic(src, dst []int64) (*Result, error) {
	g, err := build("harmonic", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	scores := make([]float64, n)
	for u := 0; u < n; u++ {
		for v, d := range bfsHops(g, u) {
			if v != u && d > 0 {
				scores[u] += 1 / float64(d)
			}
		}
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: scores}, nil
}

// LocalReaching returns, per node, the fraction of the other nodes reachable
// within the given hop bound. distance 0 always scores 0.
func LocalReaching(src, dst []int64, distance int) (*Result, error) {
	g, err := build("local_reaching", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	scores := make([]float64, n)
	if n < 2 || distance <= 0 {
		return &Result{NodeIDs: g.NodeIDs(), Scores: scores}, nil
	}
	for u := 0; u < n; u++ {
		reached := 0
		for v, d := range bfsHops(g, u) {
			if v != u && d > 0 && d <= distance {
				reached++
			}
		}
		scores[u] = float64(reached) / float64(n-1)
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: scores}, nil
}

// bfsHops returns hop distances from start, -1 for unreachable nodes.
func bfsHops(g *core.Graph, start int) []int {
	dist := make([]int, g.NodeCount())
	for i := range dist {
		dist[i] = -1
	}
	dist[start] = 0
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range g.Adjacent(u) {
			if dist[a.To] < 0 {
				dist[a.To] = dist[u] + 1
				queue = append(queue, a.To)
			}
		}
	}

	return dist
}
