package approx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/approx"
	"github.com/graphium/graphium/core"
)

// Triangle 1-2-3 with pendant 4 on node 3.
var (
	pendantSrc = []int64{1, 2, 1, 3}
	pendantDst = []int64{2, 3, 3, 4}
)

func TestMaxClique_FindsTriangle(t *testing.T) {
	res, err := approx.MaxClique(pendantSrc, pendantDst)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Nodes)
}

func TestMaxClique_EmptyInput(t *testing.T) {
	res, err := approx.MaxClique(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Nodes)
}

func TestIndependentSet_Star(t *testing.T) {
	// Leaves are pairwise non-adjacent; min-degree greedy picks them all.
	res, err := approx.IndependentSet([]int64{1, 1, 1}, []int64{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, res.Nodes)
}

func TestIndependentSet_IsIndependent(t *testing.T) {
	res, err := approx.IndependentSet(pendantSrc, pendantDst)
	require.NoError(t, err)

	in := make(map[int64]bool)
	for _, id := range res.Nodes {
		in[id] = true
	}
	for i := range pendantSrc {
		assert.False(t, in[pendantSrc[i]] && in[pendantDst[i]],
			"edge %d-%d inside the set", pendantSrc[i], pendantDst[i])
	}
}

func TestVertexCover_CoversEveryEdge(t *testing.T) {
	res, err := approx.VertexCover(pendantSrc, pendantDst)
	require.NoError(t, err)

	in := make(map[int64]bool)
	for _, id := range res.Nodes {
		in[id] = true
	}
	for i := range pendantSrc {
		assert.True(t, in[pendantSrc[i]] || in[pendantDst[i]],
			"edge %d-%d left uncovered", pendantSrc[i], pendantDst[i])
	}
}

func TestVertexCover_Star(t *testing.T) {
	// The center alone covers a star after refinement.
	res, err := approx.VertexCover([]int64{1, 1, 1}, []int64{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, res.Nodes)
}

func TestSetHeuristics_EmptyInput(t *testing.T) {
	is, err := approx.IndependentSet(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, is.Nodes)

	vc, err := approx.VertexCover(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, vc.Nodes)
}

func TestTSP_SquareTour(t *testing.T) {
	// Cycle 1-2-3-4-1, unit weights: the greedy tour is the cycle itself.
	res, err := approx.TSP(
		[]int64{1, 2, 3, 4},
		[]int64{2, 3, 4, 1},
		nil,
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 1}, res.Tour)
	assert.Equal(t, 4.0, res.Cost)
}

func TestTSP_FallsBackToShortestPath(t *testing.T) {
	// Path 1-2-3: the return leg 3→1 has no direct edge and costs 2 via 2.
	res, err := approx.TSP([]int64{1, 2}, []int64{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 1}, res.Tour)
	assert.Equal(t, 4.0, res.Cost)
}

func TestTSP_Validation(t *testing.T) {
	_, err := approx.TSP(nil, nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = approx.TSP([]int64{1, 3}, []int64{2, 4}, nil)
	assert.ErrorIs(t, err, approx.ErrNoTour)
}
