// Package generate produces random graphs as edge lists: Erdős-Rényi G(n,p),
// Barabási-Albert preferential attachment, and Watts-Strogatz small-world
// rings.
//
// Node ids are 0..n-1. Every generator draws from math/rand seeded with the
// caller's seed and visits candidate edges in a fixed order, so a given
// (parameters, seed) pair always yields the identical edge list.
package generate
