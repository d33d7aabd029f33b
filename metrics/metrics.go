package metrics

import (
	"fmt"
	"math"

	"github.com/graphium/graphium/core"
)

// Diameter returns the largest eccentricity over all nodes in hops, or -1
// when the graph is disconnected.
// Complexity: O(V·(V + E)) — one BFS per node.
func Diameter(src, dst []int64) (int, error) {
	g, err := build("diameter", src, dst)
	if err != nil {
		return 0, err
	}
	_, diam, _, ok := eccentricities(g)
	if !ok {
		return -1, nil
	}
	return diam, nil
}

// Radius returns the smallest eccentricity over all nodes in hops, or -1 when
// the graph is disconnected.
func Radius(src, dst []int64) (int, error) {
	g, err := build("radius", src, dst)
	if err != nil {
		return 0, err
	}
	_, _, rad, ok := eccentricities(g)
	if !ok {
		return -1, nil
	}
	return rad, nil
}

// AveragePathLength returns the mean BFS distance over all ordered reachable
// pairs of distinct nodes. Pairs in different components simply do not
// contribute; a graph with no such pairs yields 0.
func AveragePathLength(src, dst []int64) (float64, error) {
	g, err := build("average_path_length", src, dst)
	if err != nil {
		return 0, err
	}

	var sum, pairs float64
	for u := 0; u < g.NodeCount(); u++ {
		for v, d := range bfsHops(g, u) {
			if v != u && d >= 0 {
				sum += float64(d)
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0, nil
	}
	return sum / pairs, nil
}

// Density returns m/(n(n-1)) for the directed interpretation and
// 2m/(n(n-1)) for the undirected one, where m counts the edge list as given.
// A single-node graph has density 0.
func Density(src, dst []int64, directed bool) (float64, error) {
	g, err := build("density", src, dst)
	if err != nil {
		return 0, err
	}

	n := float64(g.NodeCount())
	if n < 2 {
		return 0, nil
	}
	m := float64(g.EdgeCount())
	if directed {
		return m / (n * (n - 1)), nil
	}
	return 2 * m / (n * (n - 1)), nil
}

// TriangleCount returns the number of distinct triangles through each node.
func TriangleCount(src, dst []int64) (*TriangleResult, error) {
	g, err := build("triangle_count", src, dst)
	if err != nil {
		return nil, err
	}

	nbrs := neighborSets(g)
	counts := make([]int64, g.NodeCount())
	for u := range counts {
		counts[u] = int64(closedPairs(nbrs, u))
	}

	return &TriangleResult{NodeIDs: g.NodeIDs(), Triangles: counts}, nil
}

// AverageClustering returns the mean local clustering coefficient; nodes with
// fewer than two distinct neighbors contribute 0.
func AverageClustering(src, dst []int64) (float64, error) {
	g, err := build("average_clustering", src, dst)
	if err != nil {
		return 0, err
	}

	nbrs := neighborSets(g)
	var sum float64
	for u := 0; u < g.NodeCount(); u++ {
		sum += localClustering(nbrs, u)
	}
	return sum / float64(g.NodeCount()), nil
}

// Transitivity returns the global clustering coefficient: three times the
// triangle count over the number of connected triples (wedges). A graph with
// no wedges yields 0.
func Transitivity(src, dst []int64) (float64, error) {
	g, err := build("transitivity", src, dst)
	if err != nil {
		return 0, err
	}

	nbrs := neighborSets(g)
	var closed, wedges float64
	for u := range nbrs {
		d := float64(len(nbrs[u]))
		wedges += d * (d - 1) / 2
		closed += float64(closedPairs(nbrs, u))
	}
	if wedges == 0 {
		return 0, nil
	}
	return closed / wedges, nil
}

// Assortativity returns the degree Pearson correlation over edge endpoints.
// Both orientations of every edge enter the sums; self-loops are skipped.
// A degree-regular graph has no degree variance and yields 0.
func Assortativity(src, dst []int64) (float64, error) {
	g, err := build("assortativity", src, dst)
	if err != nil {
		return 0, err
	}

	nbrs := neighborSets(g)
	var m, sx, sxx, sxy float64
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		du := float64(len(nbrs[e.From]))
		dv := float64(len(nbrs[e.To]))
		// (du,dv) and (dv,du) both contribute, so the x and y moments agree.
		m += 2
		sx += du + dv
		sxx += du*du + dv*dv
		sxy += 2 * du * dv
	}
	if m == 0 {
		return 0, nil
	}
	mean := sx / m
	variance := sxx/m - mean*mean
	if variance <= 0 || math.IsNaN(variance) {
		return 0, nil
	}
	return (sxy/m - mean*mean) / variance, nil
}

// eccentricities runs BFS from every node; ok is false when any pair is
// mutually unreachable.
func eccentricities(g *core.Graph) (ecc []int, diam, rad int, ok bool) {
	n := g.NodeCount()
	ecc = make([]int, n)
	rad = math.MaxInt
	for u := 0; u < n; u++ {
		for _, d := range bfsHops(g, u) {
			if d < 0 {
				return nil, 0, 0, false
			}
			if d > ecc[u] {
				ecc[u] = d
			}
		}
		if ecc[u] > diam {
			diam = ecc[u]
		}
		if ecc[u] < rad {
			rad = ecc[u]
		}
	}
	return ecc, diam, rad, true
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

// neighborSets collapses the adjacency into unique neighbors per node,
// self-loops excluded.
func neighborSets(g *core.Graph) []map[int]struct{} {
	nbrs := make([]map[int]struct{}, g.NodeCount())
	for u := range nbrs {
		nbrs[u] = make(map[int]struct{})
		for _, a := range g.Adjacent(u) {
			if a.To != u {
				nbrs[u][a.To] = struct{}{}
			}
		}
	}
	return nbrs
}

// closedPairs counts adjacent pairs among u's neighbors, i.e. the triangles
// through u.
func closedPairs(nbrs []map[int]struct{}, u int) int {
	count := 0
	for v := range nbrs[u] {
		for w := range nbrs[u] {
			if v < w {
				if _, ok := nbrs[v][w]; ok {
					count++
				}
			}
		}
	}
	return count
}

// localClustering is 2·links/(k(k-1)) over u's unique neighbors.
func localClustering(nbrs []map[int]struct{}, u int) float64 {
	k := len(nbrs[u])
	if k < 2 {
		return 0
	}
	return 2 * float64(closedPairs(nbrs, u)) / float64(k*(k-1))
}

func build(op string, src, dst []int64) (*core.Graph, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return g, nil
}
