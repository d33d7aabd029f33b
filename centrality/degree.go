package centrality

import (
	"fmt"

	"github.com/graphium/graphium/core"
)

// Degree returns in- and out-degree for every node. With directed false the
// edge list is an undirected structure and both slices carry the same
// incident-edge counts (self-loops count twice).
// Complexity: O(V + E).
func Degree(src, dst []int64, directed bool) (*DegreeResult, error) {
	var opts []core.Option
	if directed {
		opts = append(opts, core.Directed())
	}
	g, err := build("degree", src, dst, opts...)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	res := &DegreeResult{
		NodeIDs: g.NodeIDs(),
		In:      make([]int64, n),
		Out:     make([]int64, n),
	}
	for u := 0; u < n; u++ {
		res.Out[u] = int64(len(g.Adjacent(u)))
		res.In[u] = int64(len(g.InAdjacent(u)))
	}

	return res, nil
}

// NodeDegree returns the in/out degree pair of a single node in the directed
// interpretation of the edge list; unknown ids are core.ErrNodeNotFound.
func NodeDegree(src, dst []int64, node int64) (in, out int64, err error) {
	g, err := build("node_degree", src, dst, core.Directed())
	if err != nil {
		return 0, 0, err
	}
	u, ok := g.IndexOf(node)
	if !ok {
		return 0, 0, fmt.Errorf("node_degree: node %d: %w", node, core.ErrNodeNotFound)
	}

	return int64(len(g.InAdjacent(u))), int64(len(g.Adjacent(u))), nil
}
