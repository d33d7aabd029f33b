// Package metrics computes whole-graph summary statistics over an edge list:
// eccentricity-based measures (diameter, radius), path-length and density
// summaries, triangle and clustering statistics, and degree assortativity.
//
// All measures treat the edge list as an undirected simple structure built on
// unique neighbors (parallel edges collapse, self-loops are ignored), except
// Density, which counts the edge list as given and supports a directed
// interpretation. Diameter and Radius return -1 on a disconnected graph
// instead of an error.
package metrics
