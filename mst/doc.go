// Package mst builds minimum spanning trees with Prim's and Kruskal's
// algorithms over the shared edge-list contract.
//
// Both accept a weights array (nil meaning unit weights), skip self-loops,
// and agree on the total weight of any input. A disconnected graph yields the
// minimum spanning forest, one tree per component, rather than an error.
package mst
