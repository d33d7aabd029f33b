package community

import (
	"math/rand"
	"sort"

	"github.com/graphium/graphium/core"
)

// Louvain detects communities by two-phase greedy modularity optimization:
// local moving until no single-node relocation improves modularity, then
// coarsening communities into supernodes and repeating on the reduced graph.
// seed shuffles the node visit order; a negative seed keeps the deterministic
// natural order. Ties and equal gains always resolve to the lowest community
// label, so a given seed is fully reproducible.
// Complexity: O(E · log V) in practice.
func Louvain(src, dst []int64, seed int64) (*Result, error) {
	g, err := build("louvain", src, dst)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	lg := louvainFrom(g)
	// membership[u] is the final community of original node u, refined level
	// by level through the coarsening maps.
	membership := make([]int, g.NodeCount())
	for i := range membership {
		membership[i] = i
	}

	for {
		comm, moved := lg.localMove(rng)
		if !moved {
			break
		}
		// Renumber before touching membership: the next level indexes comm
		// by these values, so they must be dense 0..k-1 on both sides.
		k := renumber(comm)
		for u := range membership {
			membership[u] = comm[membership[u]]
		}
		lg = lg.coarsen(comm, k)
	}

	return densify(g, membership), nil
}

type louvArc struct {
	to int
	w  float64
}

// louvainGraph is the weighted multigraph the coarsening levels run on.
// self[u] holds self-loop weight, which counts twice toward the weighted
// degree, matching the usual modularity convention.
type louvainGraph struct {
	adj  [][]louvArc
	self []float64
	m    float64 // total edge weight, self-loops included
}

func louvainFrom(g *core.Graph) *louvainGraph {
	lg := &louvainGraph{
		adj:  make([][]louvArc, g.NodeCount()),
		self: make([]float64, g.NodeCount()),
	}
	for _, e := range g.Edges() {
		lg.m += e.Weight
		if e.From == e.To {
			lg.self[e.From] += e.Weight
			continue
		}
		lg.adj[e.From] = append(lg.adj[e.From], louvArc{e.To, e.Weight})
		lg.adj[e.To] = append(lg.adj[e.To], louvArc{e.From, e.Weight})
	}

	return lg
}

func (lg *louvainGraph) degree(u int) float64 {
	d := 2 * lg.self[u]
	for _, a := range lg.adj[u] {
		d += a.w
	}

	return d
}

// localMove runs passes of single-node relocations until a pass moves
// nothing. It returns the resulting community of every node (labels are
// arbitrary ints) and whether any node moved at all.
func (lg *louvainGraph) localMove(rng *rand.Rand) (comm []int, moved bool) {
	n := len(lg.adj)
	comm = make([]int, n)
	sigmaTot := make([]float64, n) // sum of weighted degrees per community
	deg := make([]float64, n)
	for u := 0; u < n; u++ {
		comm[u] = u
		deg[u] = lg.degree(u)
		sigmaTot[u] = deg[u]
	}

	visit := make([]int, n)
	for i := range visit {
		visit[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) { visit[i], visit[j] = visit[j], visit[i] })
	}

	twoM := 2 * lg.m
	weightTo := make(map[int]float64)
	for {
		movedInPass := false
		for _, u := range visit {
			clear(weightTo)
			for _, a := range lg.adj[u] {
				weightTo[comm[a.to]] += a.w
			}

			old := comm[u]
			sigmaTot[old] -= deg[u]

			// Gain of joining community c is k_in(c) - Σtot(c)·k_u / 2m;
			// staying put is a candidate like any other.
			best, bestGain := old, weightTo[old]-sigmaTot[old]*deg[u]/twoM
			for c, w := range weightTo {
				if c == old {
					continue
				}
				gain := w - sigmaTot[c]*deg[u]/twoM
				if gain > bestGain || (gain == bestGain && c < best) {
					best, bestGain = c, gain
				}
			}

			sigmaTot[best] += deg[u]
			if best != old {
				comm[u] = best
				movedInPass = true
				moved = true
			}
		}
		if !movedInPass {
			break
		}
	}

	return comm, moved
}

// renumber rewrites arbitrary community labels to 0..k-1 in first-seen
// node order, in place, and returns k.
func renumber(comm []int) int {
	dense := make(map[int]int)
	for u := range comm {
		if _, ok := dense[comm[u]]; !ok {
			dense[comm[u]] = len(dense)
		}
		comm[u] = dense[comm[u]]
	}

	return len(dense)
}

// coarsen collapses communities into supernodes; intra-community weight
// becomes self-loop weight. comm must already be dense over 0..k-1.
func (lg *louvainGraph) coarsen(comm []int, k int) *louvainGraph {
	next := &louvainGraph{
		adj:  make([][]louvArc, k),
		self: make([]float64, k),
		m:    lg.m,
	}
	agg := make([]map[int]float64, k)
	for i := range agg {
		agg[i] = make(map[int]float64)
	}
	for u := range lg.adj {
		cu := comm[u]
		next.self[cu] += lg.self[u]
		for _, a := range lg.adj[u] {
			cv := comm[a.to]
			if cu == cv {
				// Each undirected edge is seen from both ends; halve to
				// store the intra weight once.
				next.self[cu] += a.w / 2
				continue
			}
			agg[cu][cv] += a.w
		}
	}
	// Arc order is part of the floating-point summation order downstream,
	// so keep it sorted for reproducibility.
	for cu, row := range agg {
		keys := make([]int, 0, len(row))
		for cv := range row {
			keys = append(keys, cv)
		}
		sort.Ints(keys)
		for _, cv := range keys {
			next.adj[cu] = append(next.adj[cu], louvArc{cv, row[cv]})
		}
	}

	return next
}
