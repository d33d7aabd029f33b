// Package approx contains approximation heuristics for NP-hard problems:
// greedy maximum clique, minimum-degree independent set, matching-based
// vertex cover, and a nearest-neighbor travelling-salesman tour.
//
// The three set heuristics treat an empty edge list as an empty graph and
// return an empty set without error; TSP rejects it with core.ErrEmptyGraph.
// Set results are sorted by external id.
package approx
