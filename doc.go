// Package graphium is an in-memory graph analytics engine.
//
// A caller describes a graph as parallel src/dst (and optionally weight)
// arrays; each algorithm entry point builds a core.Graph from them, runs, and
// returns node-aligned, pair-aligned, or edge-list result records keyed by the
// caller's external int64 node ids.
//
// Packages:
//
//	core       - graph store: external-id ↔ dense-index mapping, directed and
//	             undirected variants, weighted edges, edge-list construction
//	registry   - process-wide named-graph registry for interactive construction
//	traverse   - BFS and DFS visitation order
//	paths      - Dijkstra, Bellman-Ford, Floyd-Warshall, point-to-point distance
//	centrality - degree, PageRank (plain/parallel/personalized), betweenness,
//	             closeness, eigenvector, Katz, harmonic, local-reaching,
//	             Laplacian, VoteRank
//	community  - connected components, label propagation, Louvain,
//	             Girvan-Newman, spectral clustering, Infomap
//	mst        - Prim's and Kruskal's minimum spanning tree
//	links      - Jaccard, Adamic-Adar, preferential attachment, resource
//	             allocation, common-neighbor link prediction
//	approx     - max clique, max independent set, min vertex cover, TSP tour
//	generate   - Erdős–Rényi, Barabási–Albert, Watts–Strogatz generators
//	subgraph   - ego graph, k-hop neighborhood, induced subgraph
//	metrics    - diameter, radius, clustering, transitivity, path length,
//	             density, triangles, assortativity
//
// All operations are synchronous and CPU-bound. Parallel variants (PageRank,
// BFS, shortest paths, components, clustering, triangles) fan work across a
// goroutine pool but return byte-identical results to their sequential
// counterparts; thread count never changes an answer.
package graphium
