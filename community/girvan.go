package community

import (
	"fmt"

	"github.com/graphium/graphium/core"
)

// GirvanNewman splits the graph by repeatedly removing the edge with the
// highest shortest-path betweenness until at least targetCommunities
// connected components remain (or no edges are left). Betweenness ties
// resolve to the lowest edge insertion index.
// Complexity: O(E²·V) in the worst case.
func GirvanNewman(src, dst []int64, targetCommunities int) (*Result, error) {
	if targetCommunities <= 0 {
		return nil, fmt.Errorf("girvan_newman: target %d: %w", targetCommunities, ErrBadTarget)
	}
	g, err := build("girvan_newman", src, dst)
	if err != nil {
		return nil, err
	}

	active := make([]bool, g.EdgeCount())
	for i := range active {
		active[i] = true
	}

	for {
		labels, count := componentLabels(g, active)
		if count >= targetCommunities {
			return densify(g, labels), nil
		}

		eb := edgeBetweenness(g, active)
		best, bestScore := -1, 0.0
		for e, score := range eb {
			if active[e] && score > bestScore {
				best, bestScore = e, score
			}
		}
		if best < 0 {
			// Only self-loops or nothing left to cut.
			return densify(g, labels), nil
		}
		active[best] = false
	}
}

// componentLabels is Components restricted to the active edge set.
func componentLabels(g *core.Graph, active []bool) ([]int, int) {
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
				if active[a.Edge] && labels[a.To] < 0 {
					labels[a.To] = comp
					queue = append(queue, a.To)
				}
			}
		}
		comp++
	}

	return labels, comp
}

// edgeBetweenness is Brandes' accumulation attributed to edges instead of
// nodes, over the active unweighted structure.
func edgeBetweenness(g *core.Graph, active []bool) []float64 {
	n := g.NodeCount()
	eb := make([]float64, g.EdgeCount())
	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	order := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		order = order[:0]
		queue = queue[:0]
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = -1
			delta[i] = 0
		}

		sigma[s] = 1
		dist[s] = 0
		queue = append(queue, s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			order = append(order, v)
			for _, a := range g.Adjacent(v) {
				if !active[a.Edge] {
					continue
				}
				w := a.To
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
				}
			}
		}

		for i := len(order) - 1; i >= 0; i-- {
			w := order[i]
			for _, a := range g.Adjacent(w) {
				if !active[a.Edge] {
					continue
				}
				v := a.To
				if dist[v] == dist[w]-1 {
					c := sigma[v] / sigma[w] * (1 + delta[w])
					delta[v] += c
					eb[a.Edge] += c
				}
			}
		}
	}

	// Undirected double count.
	for e := range eb {
		eb[e] /= 2
	}

	return eb
}
