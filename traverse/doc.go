// Package traverse provides breadth-first and depth-first visitation order
// over an edge list, keyed by external node ids.
//
// Both searches treat the edge list as undirected incidence and visit
// neighbors in edge insertion order, so the returned order is fully
// deterministic for a given input. BFSParallel expands each frontier level
// across a worker pool and merges results back into the exact order BFS
// produces — parallelism changes latency, never the answer.
package traverse
