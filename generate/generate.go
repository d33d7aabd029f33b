package generate

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for generator parameters.
var (
	// ErrNodeCount is returned for a non-positive node count.
	ErrNodeCount = errors.New("generate: node count must be positive")

	// ErrProbability is returned when a probability lies outside [0, 1].
	ErrProbability = errors.New("generate: probability must lie in [0, 1]")

	// ErrAttachment is returned when the Barabási-Albert attachment count is
	// non-positive or exceeds the node count.
	ErrAttachment = errors.New("generate: attachment count must be in [1, n]")

	// ErrRingDegree is returned when the Watts-Strogatz ring degree is odd,
	// non-positive, or not below the node count.
	ErrRingDegree = errors.New("generate: ring degree must be positive, even and below n")
)

// Result is a generated edge list over node ids 0..n-1.
type Result struct {
	Src []int64
	Dst []int64
}

// ErdosRenyi samples G(n, p): every unordered pair i<j gets one Bernoulli
// draw in fixed (i, j) order. p=0 yields no edges, p=1 the complete graph.
// Complexity: O(n²).
func ErdosRenyi(n int, p float64, seed int64) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("erdos_renyi: n=%d: %w", n, ErrNodeCount)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("erdos_renyi: p=%g: %w", p, ErrProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	res := &Result{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				res.Src = append(res.Src, int64(i))
				res.Dst = append(res.Dst, int64(j))
			}
		}
	}

	return res, nil
}

// BarabasiAlbert grows a scale-free graph: an m-clique core, then each new
// node attaches to m distinct existing nodes sampled with probability
// proportional to degree (repeated-endpoint sampling). Produces
// m(m-1)/2 + (n-m)·m edges.
// Complexity: O(n·m) expected.
func BarabasiAlbert(n, m int, seed int64) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("barabasi_albert: n=%d: %w", n, ErrNodeCount)
	}
	if m <= 0 || m > n {
		return nil, fmt.Errorf("barabasi_albert: m=%d n=%d: %w", m, n, ErrAttachment)
	}

	rng := rand.New(rand.NewSource(seed))
	res := &Result{}
	// Every edge contributes both endpoints; sampling an entry uniformly is
	// sampling a node by degree.
	var endpoints []int64

	addEdge := func(u, v int64) {
		res.Src = append(res.Src, u)
		res.Dst = append(res.Dst, v)
		endpoints = append(endpoints, u, v)
	}

	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			addEdge(int64(i), int64(j))
		}
	}

	for v := m; v < n; v++ {
		chosen := make(map[int64]bool, m)
		targets := make([]int64, 0, m)
		for len(targets) < m {
			var t int64
			if len(endpoints) == 0 {
				// m=1 starts from a single bare node.
				t = int64(rng.Intn(v))
			} else {
				t = endpoints[rng.Intn(len(endpoints))]
			}
			if !chosen[t] {
				chosen[t] = true
				targets = append(targets, t)
			}
		}
		for _, t := range targets {
			addEdge(int64(v), t)
		}
	}

	return res, nil
}

// WattsStrogatz builds a ring lattice where every node links to its k/2
// nearest neighbors on each side, then rewires each edge's far endpoint with
// probability beta, visiting edges in fixed ring order. Produces n·k/2 edges
// with no duplicate pairs and no self-loops.
// Complexity: O(n·k) expected.
func WattsStrogatz(n, k int, beta float64, seed int64) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("watts_strogatz: n=%d: %w", n, ErrNodeCount)
	}
	if k <= 0 || k%2 != 0 || k >= n {
		return nil, fmt.Errorf("watts_strogatz: k=%d n=%d: %w", k, n, ErrRingDegree)
	}
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("watts_strogatz: beta=%g: %w", beta, ErrProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	linked := make(map[[2]int64]bool, n*k/2)
	key := func(u, v int64) [2]int64 {
		if u > v {
			u, v = v, u
		}
		return [2]int64{u, v}
	}

	// Lay down the full lattice before rewiring anything, so a rewire draw
	// sees every edge, the ones still ahead of it included, and can never
	// land on a lattice pair that has yet to be visited.
	res := &Result{
		Src: make([]int64, 0, n*k/2),
		Dst: make([]int64, 0, n*k/2),
	}
	for j := 1; j <= k/2; j++ {
		for i := 0; i < n; i++ {
			u := int64(i)
			v := int64((i + j) % n)
			res.Src = append(res.Src, u)
			res.Dst = append(res.Dst, v)
			linked[key(u, v)] = true
		}
	}

	for e := range res.Src {
		if rng.Float64() >= beta {
			continue
		}
		u, v := res.Src[e], res.Dst[e]
		// Rewire the far endpoint to a fresh uniform target; a saturated
		// node keeps its lattice edge.
		w := int64(rng.Intn(n))
		for tries := 0; (w == u || linked[key(u, w)]) && tries < 2*n; tries++ {
			w = int64(rng.Intn(n))
		}
		if w == u || linked[key(u, w)] {
			continue
		}
		delete(linked, key(u, v))
		linked[key(u, w)] = true
		res.Dst[e] = w
	}

	return res, nil
}
