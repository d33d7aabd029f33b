package centrality

import (
	"fmt"
	"math"

	"github.com/graphium/graphium/core"
)

// pageRankTol is the fixed L1 convergence tolerance of the non-personalized
// variants.
const pageRankTol = 1e-6

// PageRank returns the stationary random-surfer distribution with uniform
// teleport. Dangling mass is redistributed uniformly every iteration, so the
// scores sum to 1. damping must lie in (0,1) and maxIter must be positive.
// Complexity: O(maxIter · (V + E)).
func PageRank(src, dst []int64, damping float64, maxIter int, directed bool) (*Result, error) {
	return pageRank("pagerank", src, dst, damping, maxIter, directed, seqFill)
}

// PageRankPersonalized is PageRank with the teleport distribution
// concentrated on the given seed nodes (weights normalized to sum 1). An
// empty seed list degenerates to uniform teleport. Unknown seed nodes are
// core.ErrNodeNotFound.
func PageRankPersonalized(src, dst []int64, seeds []Seed, damping float64, maxIter int, tol float64) (*Result, error) {
	if damping <= 0 || damping >= 1 {
		return nil, fmt.Errorf("pagerank_personalized: damping %g: %w", damping, ErrDampingOutOfRange)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("pagerank_personalized: %w", ErrZeroIterations)
	}
	g, err := build("pagerank_personalized", src, dst)
	if err != nil {
		return nil, err
	}

	teleport, err := teleportFrom(g, seeds)
	if err != nil {
		return nil, err
	}
	ranks := pageRankKernel(g, teleport, damping, maxIter, tol, seqFill)

	return &Result{NodeIDs: g.NodeIDs(), Scores: ranks}, nil
}

func pageRank(op string, src, dst []int64, damping float64, maxIter int, directed bool, fill fillFunc) (*Result, error) {
	if damping <= 0 || damping >= 1 {
		return nil, fmt.Errorf("%s: damping %g: %w", op, damping, ErrDampingOutOfRange)
	}
	if maxIter <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrZeroIterations)
	}
	var opts []core.Option
	if directed {
		opts = append(opts, core.Directed())
	}
	g, err := build(op, src, dst, opts...)
	if err != nil {
		return nil, err
	}

	teleport := uniform(g.NodeCount())
	ranks := pageRankKernel(g, teleport, damping, maxIter, pageRankTol, fill)

	return &Result{NodeIDs: g.NodeIDs(), Scores: ranks}, nil
}

// pageRankKernel runs power iteration until the L1 step shrinks below tol or
// maxIter is exhausted. The fill strategy decides how the per-node updates are
// scheduled; each slot is computed independently from the previous iterate in
// fixed in-adjacency order, so every strategy produces identical floats.
func pageRankKernel(g *core.Graph, teleport []float64, damping float64, maxIter int, tol float64, fill fillFunc) []float64 {
	n := g.NodeCount()
	rank := make([]float64, n)
	copy(rank, teleport)
	next := make([]float64, n)
	contrib := make([]float64, n)

	for iter := 0; iter < maxIter; iter++ {
		dangling := 0.0
		for j := 0; j < n; j++ {
			if out := len(g.Adjacent(j)); out > 0 {
				contrib[j] = rank[j] / float64(out)
			} else {
				contrib[j] = 0
				dangling += rank[j]
			}
		}

		fill(n, func(i int) {
			sum := 0.0
			for _, a := range g.InAdjacent(i) {
				sum += contrib[a.To]
			}
			next[i] = (1-damping)*teleport[i] + damping*(sum+dangling*teleport[i])
		})

		diff := 0.0
		for i := 0; i < n; i++ {
			diff += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank
		if diff < tol {
			break
		}
	}

	return rank
}

// teleportFrom normalizes the seed weights into a distribution over internal
// indices; an empty or zero-mass seed list is uniform.
func teleportFrom(g *core.Graph, seeds []Seed) ([]float64, error) {
	if len(seeds) == 0 {
		return uniform(g.NodeCount()), nil
	}

	teleport := make([]float64, g.NodeCount())
	total := 0.0
	for _, s := range seeds {
		u, ok := g.IndexOf(s.Node)
		if !ok {
			return nil, fmt.Errorf("pagerank_personalized: seed %d: %w", s.Node, core.ErrNodeNotFound)
		}
		teleport[u] += s.Weight
		total += s.Weight
	}
	if total <= 0 {
		return uniform(g.NodeCount()), nil
	}
	for i := range teleport {
		teleport[i] /= total
	}

	return teleport, nil
}

func uniform(n int) []float64 {
	u := make([]float64, n)
	for i := range u {
		u[i] = 1 / float64(n)
	}

	return u
}

// fillFunc schedules n independent slot computations.
type fillFunc func(n int, fn func(i int))

func seqFill(n int, fn func(i int)) {
	for i := 0; i < n; i++ {
		fn(i)
	}
}
