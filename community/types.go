package community

import (
	"errors"
	"fmt"

	"github.com/graphium/graphium/core"
)

// Sentinel errors for community detection parameters.
var (
	// ErrBadTarget is returned when Girvan-Newman is asked for a
	// non-positive number of communities.
	ErrBadTarget = errors.New("community: target community count must be positive")

	// ErrZeroClusters is returned when spectral clustering is asked for zero
	// clusters.
	ErrZeroClusters = errors.New("community: cluster count must be positive")

	// ErrZeroIterations is returned when an iterative detector is asked for
	// zero iterations.
	ErrZeroIterations = errors.New("community: max iterations must be positive")
)

// Result is node-aligned: Communities[i] is the dense community label of
// NodeIDs[i]. Labels are assigned in first-seen node order starting at 0.
type Result struct {
	NodeIDs     []int64
	Communities []int64
}

// build validates the shared edge-list preconditions.
func build(op string, src, dst []int64) (*core.Graph, error) {
	if len(src) == 0 && len(dst) == 0 {
		return nil, fmt.Errorf("%s: %w", op, core.ErrEmptyGraph)
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}

// densify remaps arbitrary labels to 0..k-1 in first-seen node order and
// wraps them in a Result.
func densify(g *core.Graph, labels []int) *Result {
	next := int64(0)
	dense := make(map[int]int64, len(labels))
	out := make([]int64, len(labels))
	for i, l := range labels {
		d, ok := dense[l]
		if !ok {
			d = next
			dense[l] = d
			next++
		}
		out[i] = d
	}

	return &Result{NodeIDs: g.NodeIDs(), Communities: out}
}
