// Package core defines the Graph store every algorithm package operates on.
//
// A Graph maps caller-supplied external node ids (arbitrary int64 values,
// unique per graph) to dense internal indices assigned in insertion order and
// never reused within a graph's lifetime. Edges reference internal indices and
// carry a float64 weight (1.0 when the caller supplies none). Self-loops and
// parallel edges are stored as given; nothing is deduplicated.
//
// Directedness is a construction-time variant, not a runtime mode: an
// undirected Graph stores each edge once and mirrors it into both endpoints'
// adjacency, a directed Graph keeps separate out- and in-adjacency. There is
// no conversion between the two after construction.
//
// Graphs built per call via FromEdgeList carry no locks — each top-level
// operation builds a fresh instance, runs, and discards it. The long-lived
// named variant lives in package registry, which owns the locking.
//
// Errors:
//
//	ErrNodeExists     - AddNode called with an id already mapped.
//	ErrNodeNotFound   - an operation referenced an unmapped external id.
//	ErrLengthMismatch - parallel edge arrays of unequal length.
//	ErrEmptyGraph     - an algorithm that rejects the empty graph received one.
package core
