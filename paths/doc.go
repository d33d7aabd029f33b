// Package paths computes shortest-path distances over an edge list.
//
// Dijkstra covers the non-negative-weight single-source case with a lazy
// decrease-key binary heap; Bellman-Ford admits negative weights and turns a
// reachable negative cycle into an error for the whole call; Floyd-Warshall
// produces all ordered pairs and is O(V³) by nature — it is meant for small
// graphs and gets no special relief. ShortestDistance is the point-to-point
// convenience: unreachable is +Inf, not an error.
//
// Every single-source result covers every node in the graph; unreachable
// nodes carry math.Inf(1) rather than being omitted.
package paths
