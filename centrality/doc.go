// Package centrality ranks nodes by structural importance.
//
// The suite covers degree counts, PageRank (uniform, personalized, and a
// row-partitioned parallel variant with numerically identical output),
// Brandes betweenness, distance-based measures (closeness, harmonic, local
// reaching), spectral measures (eigenvector, Katz), Laplacian energy drop,
// and VoteRank seed selection.
//
// Every function takes the shared (src, dst []int64) edge-list contract and
// returns node-aligned scores in first-appearance order. All measures reject
// an empty edge list with core.ErrEmptyGraph except VoteRank, which elects
// nobody and succeeds.
package centrality
