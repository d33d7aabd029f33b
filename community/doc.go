// Package community partitions nodes into densely connected groups.
//
// Detectors: connected components (plus a round-synchronous parallel
// variant), synchronous label propagation, two-phase Louvain modularity
// optimization with coarsening, Girvan-Newman edge-betweenness splitting,
// spectral clustering on the normalized Laplacian, and a greedy map-equation
// minimizer.
//
// All detectors take the shared (src, dst []int64) edge-list contract, reject
// an empty edge list with core.ErrEmptyGraph, and return node-aligned
// community labels made dense in first-seen order, so label values are
// reproducible across runs.
package community
