package core

import "fmt"

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of stored edges (each undirected edge counts
// once). Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports the construction-time variant.
func (g *Graph) Directed() bool { return g.directed }

// IndexOf returns the internal index mapped to an external id.
func (g *Graph) IndexOf(id int64) (int, bool) {
	idx, ok := g.index[id]

	return idx, ok
}

// IDOf returns the external id stored at an internal index. The index must be
// in range; indices only ever come from this graph instance.
func (g *Graph) IDOf(idx int) int64 { return g.ids[idx] }

// NodeIDs returns all external ids in internal-index (insertion) order.
// The slice is a copy and safe to retain.
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, len(g.ids))
	copy(ids, g.ids)

	return ids
}

// Adjacent returns the adjacency of an internal index in edge insertion
// order: out-arcs for directed graphs, all incident arcs for undirected ones.
// The returned slice is the graph's own storage — callers must not mutate it.
// Complexity: O(1).
func (g *Graph) Adjacent(u int) []Arc { return g.out[u] }

// InAdjacent returns the in-arcs of an internal index. For undirected graphs
// incidence is symmetric so it is the same slice Adjacent returns.
// Complexity: O(1).
func (g *Graph) InAdjacent(u int) []Arc {
	if g.directed {
		return g.in[u]
	}

	return g.out[u]
}

// EdgeAt returns the stored edge at an arena index.
func (g *Graph) EdgeAt(e int) Edge { return g.edges[e] }

// Edges returns a copy of the edge arena in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	es := make([]Edge, len(g.edges))
	copy(es, g.edges)

	return es
}

// Degree returns the total degree of an external id: incident arc count for
// undirected graphs (self-loops count twice), in+out for directed ones.
// Returns ErrNodeNotFound for unmapped ids. Complexity: O(1).
func (g *Graph) Degree(id int64) (int, error) {
	u, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if g.directed {
		return len(g.out[u]) + len(g.in[u]), nil
	}

	return len(g.out[u]), nil
}

// OutDegree returns the out-degree of an external id. For undirected graphs
// this equals Degree, matching how degree queries behave on the undirected
// variant throughout the engine. Complexity: O(1).
func (g *Graph) OutDegree(id int64) (int, error) {
	u, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(g.out[u]), nil
}

// InDegree returns the in-degree of an external id; same undirected
// convention as OutDegree. Complexity: O(1).
func (g *Graph) InDegree(id int64) (int, error) {
	u, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if g.directed {
		return len(g.in[u]), nil
	}

	return len(g.out[u]), nil
}
