package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrNodeExists indicates AddNode was called with an already-mapped id.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced an unmapped external id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLengthMismatch indicates parallel edge arrays of unequal length.
	ErrLengthMismatch = errors.New("core: edge arrays must have same length")

	// ErrEmptyGraph is wrapped by algorithms that reject a graph with no nodes.
	ErrEmptyGraph = errors.New("core: empty graph")
)

// DefaultWeight is assigned to edges built from unweighted edge lists.
const DefaultWeight = 1.0

// Arc is one adjacency entry: the internal index of the neighbor plus the
// index of the underlying edge in the edge arena (so weight and multiplicity
// survive the trip through adjacency).
type Arc struct {
	To   int // internal index of the neighbor
	Edge int // index into the edge arena
}

// Edge is a stored edge between two internal indices. For undirected graphs
// From/To record insertion orientation only; adjacency exposes both ends.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Option configures a Graph before any node is inserted.
type Option func(*Graph)

// Directed makes the graph directed: edges run src→dst only and in/out
// degrees are tracked separately.
func Directed() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is the in-memory graph store.
//
// Node storage is a bidirectional arena: ids[i] holds the external id of
// internal index i, index maps the other way. Indices are dense, assigned in
// insertion order, and never reused (node deletion is not part of this
// workload). Adjacency preserves edge insertion order per node, which is what
// makes traversal order deterministic.
type Graph struct {
	directed bool

	ids   []int64       // internal index → external id
	index map[int64]int // external id → internal index

	edges []Edge  // edge arena, insertion order
	out   [][]Arc // out-adjacency; undirected graphs mirror each edge here
	in    [][]Arc // in-adjacency, directed graphs only
}

// New creates an empty Graph. Undirected unless the Directed option is given.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{index: make(map[int64]int)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddNode maps an external id to the next free internal index and returns it.
// Returns ErrNodeExists if the id is already mapped.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int64) (int, error) {
	if _, ok := g.index[id]; ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeExists, id)
	}
	idx := len(g.ids)
	g.ids = append(g.ids, id)
	g.index[id] = idx
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return idx, nil
}

// AddEdge inserts an edge between two already-mapped external ids. Unknown
// endpoints are ErrNodeNotFound — edges never create nodes implicitly; the
// edge-list builders scan and insert all ids up front instead.
// Self-loops and parallel edges are stored as given.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst int64, weight float64) error {
	u, ok := g.index[src]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, src)
	}
	v, ok := g.index[dst]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, dst)
	}

	e := len(g.edges)
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: weight})
	g.out[u] = append(g.out[u], Arc{To: v, Edge: e})
	if g.directed {
		g.in[v] = append(g.in[v], Arc{To: u, Edge: e})
	} else {
		// Mirror into the other endpoint so undirected traversal sees the
		// edge from both sides. A self-loop lands twice on purpose: its
		// degree contribution is 2.
		g.out[v] = append(g.out[v], Arc{To: u, Edge: e})
	}

	return nil
}

// FromEdgeList builds a Graph from parallel src/dst arrays, the contract every
// array-based operation shares. weights may be nil (all edges get
// DefaultWeight); when non-nil its length must match. All external ids seen in
// src or dst are inserted first, in first-appearance order, then edges are
// inserted positionally. An empty edge list yields a zero-node graph; whether
// that is acceptable is each algorithm's call, not this builder's.
// Complexity: O(V + E).
func FromEdgeList(src, dst []int64, weights []float64, opts ...Option) (*Graph, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%w: len(src)=%d len(dst)=%d", ErrLengthMismatch, len(src), len(dst))
	}
	if weights != nil && len(weights) != len(src) {
		return nil, fmt.Errorf("%w: len(weights)=%d len(src)=%d", ErrLengthMismatch, len(weights), len(src))
	}

	g := New(opts...)
	// First pass: map every id, src before dst per position, so that internal
	// indices (and therefore every node-aligned result) follow first
	// appearance in the caller's arrays.
	for i := range src {
		if _, ok := g.index[src[i]]; !ok {
			_, _ = g.AddNode(src[i])
		}
		if _, ok := g.index[dst[i]]; !ok {
			_, _ = g.AddNode(dst[i])
		}
	}
	// Second pass: edges, positionally.
	for i := range src {
		w := DefaultWeight
		if weights != nil {
			w = weights[i]
		}
		if err := g.AddEdge(src[i], dst[i], w); err != nil {
			return nil, err
		}
	}

	return g, nil
}
