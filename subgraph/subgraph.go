// Package subgraph extracts node and edge subsets from an edge list: ego
// neighborhoods, k-hop node sets and induced edge lists.
package subgraph

import (
	"errors"
	"fmt"

	"github.com/graphium/graphium/core"
)

// ErrEmptySelection is returned when Induced is given no nodes to keep.
var ErrEmptySelection = errors.New("subgraph: node selection is empty")

// EdgeResult is an extracted edge list, in input insertion order.
type EdgeResult struct {
	Src []int64
	Dst []int64
}

// NodeResult is an extracted node set in breadth-first discovery order.
type NodeResult struct {
	Nodes []int64
}

// Ego returns the edges among nodes within the given hop radius of center.
// radius 0 keeps only the center, so no edges; an unknown center is
// core.ErrNodeNotFound.
// Complexity: O(V + E).
func Ego(src, dst []int64, center int64, radius int) (*EdgeResult, error) {
	g, err := build("ego", src, dst)
	if err != nil {
		return nil, err
	}
	c, ok := g.IndexOf(center)
	if !ok {
		return nil, fmt.Errorf("ego: center %d: %w", center, core.ErrNodeNotFound)
	}

	hops := bfsHops(g, c)
	keep := func(u int) bool { return hops[u] >= 0 && hops[u] <= radius }

	res := &EdgeResult{}
	for _, e := range g.Edges() {
		if keep(e.From) && keep(e.To) {
			res.Src = append(res.Src, g.IDOf(e.From))
			res.Dst = append(res.Dst, g.IDOf(e.To))
		}
	}

	return res, nil
}

// KHop returns the nodes within k hops of start, start included. k=0 yields
// exactly the start node; an unknown start is core.ErrNodeNotFound.
func KHop(src, dst []int64, start int64, k int) (*NodeResult, error) {
	g, err := build("k_hop", src, dst)
	if err != nil {
		return nil, err
	}
	s, ok := g.IndexOf(start)
	if !ok {
		return nil, fmt.Errorf("k_hop: start %d: %w", start, core.ErrNodeNotFound)
	}

	res := &NodeResult{Nodes: []int64{start}}
	if k <= 0 {
		return res, nil
	}

	hops := make([]int, g.NodeCount())
	for i := range hops {
		hops[i] = -1
	}
	hops[s] = 0
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if hops[u] == k {
			continue
		}
		for _, a := range g.Adjacent(u) {
			if hops[a.To] < 0 {
				hops[a.To] = hops[u] + 1
				res.Nodes = append(res.Nodes, g.IDOf(a.To))
				queue = append(queue, a.To)
			}
		}
	}

	return res, nil
}

// Induced returns the edges whose endpoints both lie in the given node set.
// Unknown ids in the set are ignored; an empty set is ErrEmptySelection.
func Induced(src, dst []int64, nodes []int64) (*EdgeResult, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("induced: %w", ErrEmptySelection)
	}
	g, err := build("induced", src, dst)
	if err != nil {
		return nil, err
	}

	keep := make(map[int]bool, len(nodes))
	for _, id := range nodes {
		if u, ok := g.IndexOf(id); ok {
			keep[u] = true
		}
	}

	res := &EdgeResult{}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			res.Src = append(res.Src, g.IDOf(e.From))
			res.Dst = append(res.Dst, g.IDOf(e.To))
		}
	}

	return res, nil
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
