package approx

import (
	"fmt"
	"sort"

	"github.com/graphium/graphium/core"
)

// SetResult is a node set as sorted external ids.
type SetResult struct {
	Nodes []int64
}

// MaxClique approximates a maximum clique: every node seeds a greedy
// expansion in descending degree order (lowest index first among equals), and
// the largest clique found wins.
// Complexity: O(V²·deg).
func MaxClique(src, dst []int64) (*SetResult, error) {
	g, nbrs, err := buildSimple("max_clique", src, dst)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &SetResult{Nodes: []int64{}}, nil
	}

	n := g.NodeCount()
	byDegree := make([]int, n)
	for i := range byDegree {
		byDegree[i] = i
	}
	sort.SliceStable(byDegree, func(a, b int) bool {
		return len(nbrs[byDegree[a]]) > len(nbrs[byDegree[b]])
	})

	var best []int
	for _, seed := range byDegree {
		clique := []int{seed}
		for _, cand := range byDegree {
			if cand == seed {
				continue
			}
			joins := true
			for _, member := range clique {
				if _, ok := nbrs[cand][member]; !ok {
					joins = false
					break
				}
			}
			if joins {
				clique = append(clique, cand)
			}
		}
		if len(clique) > len(best) {
			best = clique
		}
	}

	return setOf(g, best), nil
}

// IndependentSet approximates a maximum independent set by repeatedly taking
// the minimum-degree remaining node (lowest index on ties) and discarding its
// neighbors.
func IndependentSet(src, dst []int64) (*SetResult, error) {
	g, nbrs, err := buildSimple("independent_set", src, dst)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &SetResult{Nodes: []int64{}}, nil
	}

	n := g.NodeCount()
	removed := make([]bool, n)
	deg := make([]int, n)
	for u := range deg {
		deg[u] = len(nbrs[u])
	}

	var chosen []int
	for remaining := n; remaining > 0; {
		pick := -1
		for u := 0; u < n; u++ {
			if !removed[u] && (pick < 0 || deg[u] < deg[pick]) {
				pick = u
			}
		}
		chosen = append(chosen, pick)
		removed[pick] = true
		remaining--
		for v := range nbrs[pick] {
			if !removed[v] {
				removed[v] = true
				remaining--
				for w := range nbrs[v] {
					deg[w]--
				}
			}
		}
	}

	return setOf(g, chosen), nil
}

// VertexCover approximates a minimum vertex cover by a maximal matching
// (both endpoints of each matched edge), then drops cover members whose
// incident edges are all covered from the other side.
func VertexCover(src, dst []int64) (*SetResult, error) {
	g, nbrs, err := buildSimple("vertex_cover", src, dst)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return &SetResult{Nodes: []int64{}}, nil
	}

	n := g.NodeCount()
	inCover := make([]bool, n)
	for _, e := range g.Edges() {
		if e.From == e.To {
			// A self-loop is only coverable by its own node.
			inCover[e.From] = true
			continue
		}
		if !inCover[e.From] && !inCover[e.To] {
			inCover[e.From] = true
			inCover[e.To] = true
		}
	}

	// Refinement pass: a member whose neighbors are all in the cover (and
	// which has no self-loop) is redundant.
	loops := make([]bool, n)
	for _, e := range g.Edges() {
		if e.From == e.To {
			loops[e.From] = true
		}
	}
	for u := 0; u < n; u++ {
		if !inCover[u] || loops[u] {
			continue
		}
		redundant := true
		for v := range nbrs[u] {
			if !inCover[v] {
				redundant = false
				break
			}
		}
		if redundant {
			inCover[u] = false
		}
	}

	var chosen []int
	for u := 0; u < n; u++ {
		if inCover[u] {
			chosen = append(chosen, u)
		}
	}

	return setOf(g, chosen), nil
}

// buildSimple returns the graph plus unique-neighbor sets; a nil graph with a
// nil error signals the empty-input fast path.
func buildSimple(op string, src, dst []int64) (*core.Graph, []map[int]struct{}, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, nil, nil
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	nbrs := make([]map[int]struct{}, g.NodeCount())
	for u := range nbrs {
		nbrs[u] = make(map[int]struct{})
		for _, a := range g.Adjacent(u) {
			if a.To != u {
				nbrs[u][a.To] = struct{}{}
			}
		}
	}

	return g, nbrs, nil
}

func setOf(g *core.Graph, members []int) *SetResult {
	ids := make([]int64, len(members))
	for i, u := range members {
		ids[i] = g.IDOf(u)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	return &SetResult{Nodes: ids}
}
