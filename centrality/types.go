package centrality

import (
	"errors"
	"fmt"

	"github.com/graphium/graphium/core"
)

// Sentinel errors for centrality parameter validation.
var (
	// ErrDampingOutOfRange is returned when a PageRank damping factor lies
	// outside the open interval (0, 1).
	ErrDampingOutOfRange = errors.New("centrality: damping factor must lie in (0, 1)")

	// ErrZeroIterations is returned when an iterative measure is asked for
	// zero iterations.
	ErrZeroIterations = errors.New("centrality: max iterations must be positive")
)

// Result is node-aligned: Scores[i] belongs to NodeIDs[i], nodes in
// first-appearance order of the input arrays.
type Result struct {
	NodeIDs []int64
	Scores  []float64
}

// DegreeResult carries in- and out-degree per node. For the undirected
// interpretation both slices hold the same incident-edge counts.
type DegreeResult struct {
	NodeIDs []int64
	In      []int64
	Out     []int64
}

// Seed is one entry of a personalization vector: a restart node and its
// relative teleport weight.
type Seed struct {
	Node   int64
	Weight float64
}

// VoteRankResult lists elected seed nodes in election order.
type VoteRankResult struct {
	Seeds []int64
}

// build validates the shared edge-list preconditions.
func build(op string, src, dst []int64, opts ...core.Option) (*core.Graph, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}
