package approx

import (
	"errors"
	"fmt"
	"math"

	"github.com/graphium/graphium/core"
)

// ErrNoTour is returned when the graph is disconnected and no closed tour
// can visit every node.
var ErrNoTour = errors.New("approx: no tour covers a disconnected graph")

// TourResult is a closed tour: Tour starts and ends at the same node and
// Cost sums the traversed leg costs.
type TourResult struct {
	Tour []int64
	Cost float64
}

// TSP approximates a travelling-salesman tour with the nearest-neighbor
// heuristic, starting at the first node of the input. Legs without a direct
// edge cost their shortest-path distance instead, so the tour exists whenever
// the graph is connected; a disconnected graph is ErrNoTour. Ties between
// equally near candidates resolve to the lower node index.
// Complexity: O(V³) for the all-pairs fallback costs.
func TSP(src, dst []int64, weights []float64) (*TourResult, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("tsp: %w", core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, weights)
	if err != nil {
		return nil, fmt.Errorf("tsp: %w", err)
	}

	n := g.NodeCount()
	cost := legCosts(g)

	visited := make([]bool, n)
	tour := make([]int64, 0, n+1)
	current := 0
	visited[current] = true
	tour = append(tour, g.IDOf(current))
	total := 0.0

	for len(tour) < n {
		next, nextCost := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !visited[v] && cost[current][v] < nextCost {
				next, nextCost = v, cost[current][v]
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("tsp: %w", ErrNoTour)
		}
		visited[next] = true
		tour = append(tour, g.IDOf(next))
		total += nextCost
		current = next
	}

	// Close the tour back to the start.
	back := cost[current][0]
	if math.IsInf(back, 1) {
		return nil, fmt.Errorf("tsp: %w", ErrNoTour)
	}
	tour = append(tour, g.IDOf(0))
	total += back

	return &TourResult{Tour: tour, Cost: total}, nil
}

// legCosts is Floyd-Warshall over the weighted structure: direct edges keep
// their minimum weight, everything else falls back to shortest-path cost.
func legCosts(g *core.Graph) [][]float64 {
	n := g.NodeCount()
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
			d[e.To][e.From] = e.Weight
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(d[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := d[i][k] + d[k][j]; via < d[i][j] {
					d[i][j] = via
				}
			}
		}
	}

	return d
}
