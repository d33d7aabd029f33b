package community

import (
	"fmt"
	"math"
	"math/rand"
)

// Infomap detects communities by greedily minimizing the two-level map
// equation. Node visit rates are the exact stationary distribution of the
// undirected random walk (degree over total degree); each pass tries to
// relocate every node into a neighboring module, accepting the move with the
// largest description-length drop (lowest module label on ties). maxIter
// bounds the number of passes and must be positive; seed shuffles the visit
// order, negative meaning deterministic natural order.
// Complexity: O(maxIter · V · deg · modules) in the worst case.
func Infomap(src, dst []int64, maxIter int, seed int64) (*Result, error) {
	if maxIter <= 0 {
		return nil, fmt.Errorf("infomap: %w", ErrZeroIterations)
	}
	g, err := build("infomap", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	// Weighted degrees; self-loops count twice like everywhere else.
	deg := make([]float64, n)
	total := 0.0
	for u := 0; u < n; u++ {
		for _, a := range g.Adjacent(u) {
			deg[u] += g.EdgeAt(a.Edge).Weight
		}
		total += deg[u]
	}
	if total == 0 {
		// Nothing flows; every node is its own module.
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i
		}
		return densify(g, labels), nil
	}
	p := make([]float64, n)
	for u := range p {
		p[u] = deg[u] / total
	}

	st := &mapState{
		mod:  make([]int, n),
		pMod: make([]float64, n),
		cut:  make([]float64, n),
		p:    p,
	}
	for u := 0; u < n; u++ {
		st.mod[u] = u
		st.pMod[u] = p[u]
		for _, a := range g.Adjacent(u) {
			if a.To != u {
				st.cut[u] += g.EdgeAt(a.Edge).Weight / total
			}
		}
	}

	visit := make([]int, n)
	for i := range visit {
		visit[i] = i
	}
	if seed >= 0 {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(i, j int) { visit[i], visit[j] = visit[j], visit[i] })
	}

	weightTo := make(map[int]float64)
	for pass := 0; pass < maxIter; pass++ {
		moved := false
		for _, u := range visit {
			clear(weightTo)
			extDeg := 0.0
			for _, a := range g.Adjacent(u) {
				if a.To == u {
					continue
				}
				w := g.EdgeAt(a.Edge).Weight
				weightTo[st.mod[a.To]] += w / total
				extDeg += w / total
			}

			old := st.mod[u]
			best, bestLen := old, st.length()
			for cand := range weightTo {
				if cand == old {
					continue
				}
				st.move(u, old, cand, extDeg, weightTo)
				if l := st.length(); l < bestLen-1e-12 || (math.Abs(l-bestLen) <= 1e-12 && cand < best) {
					best, bestLen = cand, l
				}
				st.move(u, cand, old, extDeg, weightTo)
			}
			if best != old {
				st.move(u, old, best, extDeg, weightTo)
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	return densify(g, st.mod), nil
}

// mapState carries the per-module aggregates the map equation needs: total
// visit rate and boundary flow of each module.
type mapState struct {
	mod  []int
	pMod []float64
	cut  []float64 // flow across the module boundary
	p    []float64
}

// move relocates u between modules, updating the aggregates. weightTo holds
// u's flow toward each module under the CURRENT assignment of the others and
// stays valid because only u moves.
func (st *mapState) move(u, from, to int, extDeg float64, weightTo map[int]float64) {
	st.pMod[from] -= st.p[u]
	st.pMod[to] += st.p[u]
	// Leaving: u's external flow stops crossing from's boundary, while its
	// former internal links start to.
	st.cut[from] -= extDeg - weightTo[from]
	st.cut[from] += weightTo[from]
	// Joining: symmetric.
	st.cut[to] += extDeg - weightTo[to]
	st.cut[to] -= weightTo[to]
	st.mod[u] = to
}

// length is the two-level map equation over the current partition, without
// the partition-independent node-visit entropy term.
func (st *mapState) length() float64 {
	var q, sumQ, sumQP float64
	for m := range st.pMod {
		if st.pMod[m] == 0 {
			continue
		}
		q += st.cut[m]
		sumQ += plogp(st.cut[m])
		sumQP += plogp(st.cut[m] + st.pMod[m])
	}

	return plogp(q) - 2*sumQ + sumQP
}

func plogp(x float64) float64 {
	if x <= 0 {
		return 0
	}

	return x * math.Log2(x)
}
