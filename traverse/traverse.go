package traverse

import (
	"fmt"

	"github.com/graphium/graphium/core"
)

// Result holds a traversal outcome: external ids in visitation order.
type Result struct {
	Order []int64
}

// BFS returns breadth-first visitation order from source over the edge list.
// The source must appear somewhere in src/dst (core.ErrNodeNotFound
// otherwise); an empty edge list is core.ErrEmptyGraph.
// Complexity: O(V + E).
func BFS(src, dst []int64, source int64) (*Result, error) {
	g, start, err := buildFor("bfs", src, dst, source)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	visited := make([]bool, n)
	order := make([]int64, 0, n)
	queue := make([]int, 0, n)

	visited[start] = true
	queue = append(queue, start)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, g.IDOf(u))
		for _, a := range g.Adjacent(u) {
			if !visited[a.To] {
				visited[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return &Result{Order: order}, nil
}

// DFS returns depth-first visitation order from source; same contract as BFS.
// Neighbors are explored first-inserted first, which the iterative stack
// achieves by pushing each adjacency in reverse.
// Complexity: O(V + E).
func DFS(src, dst []int64, source int64) (*Result, error) {
	g, start, err := buildFor("dfs", src, dst, source)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	visited := make([]bool, n)
	order := make([]int64, 0, n)
	stack := make([]int, 0, n)

	stack = append(stack, start)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, g.IDOf(u))

		adj := g.Adjacent(u)
		for i := len(adj) - 1; i >= 0; i-- {
			if !visited[adj[i].To] {
				stack = append(stack, adj[i].To)
			}
		}
	}

	return &Result{Order: order}, nil
}

// buildFor validates the shared traversal preconditions and resolves the
// source id to its internal index.
func buildFor(op string, src, dst []int64, source int64) (*core.Graph, int, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	start, ok := g.IndexOf(source)
	if !ok {
		return nil, 0, fmt.Errorf("%s: source %d: %w", op, source, core.ErrNodeNotFound)
	}

	return g, start, nil
}
