package paths

import "errors"

// Sentinel errors for shortest-path computation.
var (
	// ErrNegativeWeight is returned when Dijkstra meets a negative edge.
	ErrNegativeWeight = errors.New("paths: negative edge weight")

	// ErrNegativeCycle is returned when Bellman-Ford or Floyd-Warshall
	// detects a reachable negative cycle; no partial distances are returned.
	ErrNegativeCycle = errors.New("paths: negative cycle detected")
)

// DistanceResult is a node-aligned single-source outcome: Distances[i] is the
// shortest distance from the source to NodeIDs[i], math.Inf(1) if unreachable.
type DistanceResult struct {
	NodeIDs   []int64
	Distances []float64
}

// AllPairsResult holds Floyd-Warshall output: one entry per ordered pair of
// distinct nodes, Distances[i] = d(Src[i] → Dst[i]), +Inf when unreachable.
type AllPairsResult struct {
	Src       []int64
	Dst       []int64
	Distances []float64
}
