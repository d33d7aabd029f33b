package links

import (
	"fmt"
	"math"

	"github.com/graphium/graphium/core"
)

// Result is pair-aligned: Scores[i] rates the candidate edge between
// Node1[i] and Node2[i].
type Result struct {
	Node1  []int64
	Node2  []int64
	Scores []float64
}

// Jaccard scores non-adjacent pairs by shared-neighborhood overlap,
// |Γ(u)∩Γ(v)| / |Γ(u)∪Γ(v)|, in [0,1].
// Complexity: O(V²·deg).
func Jaccard(src, dst []int64) (*Result, error) {
	return predict("jaccard", src, dst, false, func(p pairCtx) float64 {
		return float64(p.common) / float64(len(p.nbrs[p.u])+len(p.nbrs[p.v])-p.common)
	})
}

// AdamicAdar scores non-adjacent pairs by Σ 1/ln(deg(z)) over shared
// neighbors z. Shared neighbors always have degree at least two, so the
// logarithm never vanishes.
func AdamicAdar(src, dst []int64) (*Result, error) {
	return predict("adamic_adar", src, dst, false, func(p pairCtx) float64 {
		score := 0.0
		for z := range p.nbrs[p.u] {
			if _, ok := p.nbrs[p.v][z]; ok {
				score += 1 / math.Log(float64(len(p.nbrs[z])))
			}
		}

		return score
	})
}

// ResourceAllocation scores non-adjacent pairs by Σ 1/deg(z) over shared
// neighbors z.
func ResourceAllocation(src, dst []int64) (*Result, error) {
	return predict("resource_allocation", src, dst, false, func(p pairCtx) float64 {
		score := 0.0
		for z := range p.nbrs[p.u] {
			if _, ok := p.nbrs[p.v][z]; ok {
				score += 1 / float64(len(p.nbrs[z]))
			}
		}

		return score
	})
}

// CommonNeighbors scores non-adjacent pairs by the raw shared-neighbor count.
func CommonNeighbors(src, dst []int64) (*Result, error) {
	return predict("common_neighbors", src, dst, false, func(p pairCtx) float64 {
		return float64(p.common)
	})
}

// PreferentialAttachment scores every non-adjacent pair by deg(u)·deg(v),
// shared neighbors or not.
func PreferentialAttachment(src, dst []int64) (*Result, error) {
	return predict("preferential_attachment", src, dst, true, func(p pairCtx) float64 {
		return float64(len(p.nbrs[p.u]) * len(p.nbrs[p.v]))
	})
}

// pairCtx hands a scorer the candidate pair and the shared neighbor sets.
type pairCtx struct {
	u, v   int
	common int
	nbrs   []map[int]struct{}
}

// predict enumerates unordered non-adjacent pairs in ascending index order.
// With allPairs false, pairs without shared neighbors are skipped.
func predict(op string, src, dst []int64, allPairs bool, score func(pairCtx) float64) (*Result, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n := g.NodeCount()
	nbrs := make([]map[int]struct{}, n)
	for u := 0; u < n; u++ {
		nbrs[u] = make(map[int]struct{})
		for _, a := range g.Adjacent(u) {
			if a.To != u {
				nbrs[u][a.To] = struct{}{}
			}
		}
	}

	res := &Result{}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if _, adjacent := nbrs[u][v]; adjacent {
				continue
			}
			common := 0
			for z := range nbrs[u] {
				if _, ok := nbrs[v][z]; ok {
					common++
				}
			}
			if common == 0 && !allPairs {
				continue
			}
			res.Node1 = append(res.Node1, g.IDOf(u))
			res.Node2 = append(res.Node2, g.IDOf(v))
			res.Scores = append(res.Scores, score(pairCtx{u: u, v: v, common: common, nbrs: nbrs}))
		}
	}

	return res, nil
}
