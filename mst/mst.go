package mst

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/graphium/graphium/core"
)

// Result is the chosen tree (or forest) as an external-id edge list plus its
// total weight.
type Result struct {
	Src     []int64
	Dst     []int64
	Weights []float64
	Total   float64
}

// Prim grows the minimum spanning forest with a lazy binary heap, restarting
// from the lowest unvisited index for every component. Ties between equal
// weights resolve to the lower edge insertion index, so output is
// deterministic.
// Complexity: O(E log E).
func Prim(src, dst []int64, weights []float64) (*Result, error) {
	g, err := build("prim", src, dst, weights)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	visited := make([]bool, n)
	res := &Result{}

	pq := &arcHeap{}
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		*pq = (*pq)[:0]
		pushArcs(g, pq, s)

		for pq.Len() > 0 {
			c := heap.Pop(pq).(candidate)
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			e := g.EdgeAt(c.edge)
			res.append(g, e)
			pushArcs(g, pq, c.to)
		}
	}

	return res, nil
}

// Kruskal picks edges in ascending weight order (insertion index breaking
// ties) and joins components with a union-find, which yields the spanning
// forest on disconnected input for free.
// Complexity: O(E log E).
func Kruskal(src, dst []int64, weights []float64) (*Result, error) {
	g, err := build("kruskal", src, dst, weights)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return edges[order[a]].Weight < edges[order[b]].Weight
	})

	uf := newUnionFind(g.NodeCount())
	res := &Result{}
	for _, ei := range order {
		e := edges[ei]
		if e.From == e.To {
			continue
		}
		if uf.union(e.From, e.To) {
			res.append(g, e)
		}
	}

	return res, nil
}

func (r *Result) append(g *core.Graph, e core.Edge) {
	r.Src = append(r.Src, g.IDOf(e.From))
	r.Dst = append(r.Dst, g.IDOf(e.To))
	r.Weights = append(r.Weights, e.Weight)
	r.Total += e.Weight
}

// pushArcs feeds u's incident non-loop arcs to the frontier heap.
func pushArcs(g *core.Graph, pq *arcHeap, u int) {
	for _, a := range g.Adjacent(u) {
		if a.To != u {
			heap.Push(pq, candidate{
				weight: g.EdgeAt(a.Edge).Weight,
				edge:   a.Edge,
				to:     a.To,
			})
		}
	}
}

func build(op string, src, dst []int64, weights []float64) (*core.Graph, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, weights)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

type candidate struct {
	weight float64
	edge   int
	to     int
}

type arcHeap []candidate

func (h arcHeap) Len() int { return len(h) }
func (h arcHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}

	return h[i].edge < h[j].edge
}
func (h arcHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *arcHeap) Push(x any)   { *h = append(*h, x.(candidate)) }
func (h *arcHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// unionFind with path halving and union by size.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges the sets of a and b; false means they were already joined.
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]

	return true
}
