// Package registry holds the process-wide catalog of named graphs used for
// interactive construction: create a graph, grow it node by node and edge by
// edge, query it, drop it. Names are case-sensitive strings; entries live from
// Create until Drop.
//
// A single reader/writer lock guards the whole catalog: count and degree
// queries proceed concurrently with each other, insertion and lifecycle calls
// take the write side. Per-call graphs built from edge lists never touch this
// package and need no locking.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/graphium/graphium/core"
)

// Sentinel errors for registry lookups.
var (
	// ErrGraphNotFound is returned when no graph is registered under a name.
	ErrGraphNotFound = errors.New("registry: graph not found")

	// ErrGraphExists is returned on Create with an already-taken name.
	ErrGraphExists = errors.New("registry: graph already exists")
)

var (
	mu     sync.RWMutex
	graphs = make(map[string]*core.Graph)
)

// Create registers an empty graph under name.
// Returns ErrGraphExists if the name is taken.
func Create(name string, directed bool) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := graphs[name]; ok {
		return fmt.Errorf("%w: %q", ErrGraphExists, name)
	}
	var opts []core.Option
	if directed {
		opts = append(opts, core.Directed())
	}
	graphs[name] = core.New(opts...)

	return nil
}

// Drop removes the graph registered under name.
// Returns ErrGraphNotFound if there is none.
func Drop(name string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := graphs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	delete(graphs, name)

	return nil
}

// List returns the registered names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(graphs))
	for name := range graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// AddNode inserts an external id into the named graph.
func AddNode(name string, id int64) error {
	mu.Lock()
	defer mu.Unlock()

	g, ok := graphs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	_, err := g.AddNode(id)

	return err
}

// AddEdge inserts an edge between two already-added ids in the named graph.
func AddEdge(name string, src, dst int64, weight float64) error {
	mu.Lock()
	defer mu.Unlock()

	g, ok := graphs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return g.AddEdge(src, dst, weight)
}

// NodeCount returns the node count of the named graph.
func NodeCount(name string) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := graphs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return g.NodeCount(), nil
}

// EdgeCount returns the edge count of the named graph.
func EdgeCount(name string) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := graphs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return g.EdgeCount(), nil
}

// InDegree returns the in-degree of an id in the named graph. On an
// undirected graph this is the plain degree.
func InDegree(name string, id int64) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := graphs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return g.InDegree(id)
}

// OutDegree returns the out-degree of an id in the named graph; undirected
// convention as InDegree.
func OutDegree(name string, id int64) (int, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := graphs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}

	return g.OutDegree(id)
}
