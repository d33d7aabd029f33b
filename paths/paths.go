package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/graphium/graphium/core"
)

// Dijkstra returns single-source shortest distances over the undirected edge
// list. A nil weights slice means unit weights; any negative weight is
// ErrNegativeWeight. The result covers every node, +Inf for unreachable ones.
// Complexity: O((V + E) log V).
func Dijkstra(src, dst []int64, weights []float64, source int64) (*DistanceResult, error) {
	g, start, err := buildFor("dijkstra", src, dst, weights, source)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("dijkstra: edge %d→%d weight %g: %w",
				g.IDOf(e.From), g.IDOf(e.To), e.Weight, ErrNegativeWeight)
		}
	}

	dist := relaxHeap(g, start)

	return resultFrom(g, dist), nil
}

// ShortestDistance returns the shortest distance between two nodes, with unit
// weights when weights is nil. An unreachable target yields math.Inf(1), not
// an error; an absent endpoint is core.ErrNodeNotFound.
func ShortestDistance(src, dst []int64, weights []float64, source, target int64) (float64, error) {
	g, start, err := buildFor("shortest_distance", src, dst, weights, source)
	if err != nil {
		return 0, err
	}
	goal, ok := g.IndexOf(target)
	if !ok {
		return 0, fmt.Errorf("shortest_distance: target %d: %w", target, core.ErrNodeNotFound)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return 0, fmt.Errorf("shortest_distance: edge %d→%d weight %g: %w",
				g.IDOf(e.From), g.IDOf(e.To), e.Weight, ErrNegativeWeight)
		}
	}

	return relaxHeap(g, start)[goal], nil
}

// BellmanFord returns single-source shortest distances without the
// non-negativity restriction. A negative cycle reachable from the source
// fails the whole call with ErrNegativeCycle and no partial distances; note
// that in the undirected model any reachable negative edge is itself a
// negative 2-cycle.
// Complexity: O(V·E).
func BellmanFord(src, dst []int64, weights []float64, source int64) (*DistanceResult, error) {
	g, start, err := buildFor("bellman_ford", src, dst, weights, source)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	// Undirected relaxation: each stored edge relaxes in both directions.
	relax := func() bool {
		changed := false
		for _, e := range g.Edges() {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
				changed = true
			}
			if d := dist[e.To] + e.Weight; d < dist[e.From] {
				dist[e.From] = d
				changed = true
			}
		}
		return changed
	}
	for i := 0; i < n-1; i++ {
		if !relax() {
			break
		}
	}
	// One extra pass: any remaining improvement means a reachable negative cycle.
	if relax() {
		return nil, fmt.Errorf("bellman_ford: %w", ErrNegativeCycle)
	}

	return resultFrom(g, dist), nil
}

// FloydWarshall returns all-pairs shortest distances, one entry per ordered
// pair of distinct nodes. Negative weights are allowed; a negative cycle
// anywhere is ErrNegativeCycle.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(src, dst []int64, weights []float64) (*AllPairsResult, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("floyd_warshall: %w", core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, weights)
	if err != nil {
		return nil, fmt.Errorf("floyd_warshall: %w", err)
	}

	n := g.NodeCount()
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
			d[e.To][e.From] = e.Weight
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(d[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := d[i][k] + d[k][j]; via < d[i][j] {
					d[i][j] = via
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		if d[i][i] < 0 {
			return nil, fmt.Errorf("floyd_warshall: %w", ErrNegativeCycle)
		}
	}

	out := &AllPairsResult{
		Src:       make([]int64, 0, n*(n-1)),
		Dst:       make([]int64, 0, n*(n-1)),
		Distances: make([]float64, 0, n*(n-1)),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out.Src = append(out.Src, g.IDOf(i))
			out.Dst = append(out.Dst, g.IDOf(j))
			out.Distances = append(out.Distances, d[i][j])
		}
	}

	return out, nil
}

// relaxHeap is the Dijkstra kernel: a binary min-heap with lazy decrease-key,
// stale entries skipped on pop.
func relaxHeap(g *core.Graph, start int) []float64 {
	dist := make([]float64, g.NodeCount())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[start] = 0

	pq := &minHeap{{node: start, dist: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(pq).(item)
		if it.dist > dist[it.node] {
			continue // stale entry, a shorter path already settled this node
		}
		for _, a := range g.Adjacent(it.node) {
			w := g.EdgeAt(a.Edge).Weight
			if d := it.dist + w; d < dist[a.To] {
				dist[a.To] = d
				heap.Push(pq, item{node: a.To, dist: d})
			}
		}
	}

	return dist
}

// buildFor validates the shared single-source preconditions and resolves the
// source id to its internal index.
func buildFor(op string, src, dst []int64, weights []float64, source int64) (*core.Graph, int, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, weights)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	start, ok := g.IndexOf(source)
	if !ok {
		return nil, 0, fmt.Errorf("%s: source %d: %w", op, source, core.ErrNodeNotFound)
	}

	return g, start, nil
}

func resultFrom(g *core.Graph, dist []float64) *DistanceResult {
	return &DistanceResult{NodeIDs: g.NodeIDs(), Distances: dist}
}

// item is one heap entry; node may appear several times with decreasing dist.
type item struct {
	node int
	dist float64
}

type minHeap []item

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(item)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
