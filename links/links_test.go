package links_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/core"
	"github.com/graphium/graphium/links"
)

var (
	pathSrc = []int64{1, 2}
	pathDst = []int64{2, 3}

	starSrc = []int64{1, 1, 1}
	starDst = []int64{2, 3, 4}
)

func TestJaccard_Path(t *testing.T) {
	res, err := links.Jaccard(pathSrc, pathDst)
	require.NoError(t, err)
	require.Equal(t, []int64{1}, res.Node1)
	require.Equal(t, []int64{3}, res.Node2)
	assert.Equal(t, []float64{1}, res.Scores)
}

func TestJaccard_Bounds(t *testing.T) {
	res, err := links.Jaccard(starSrc, starDst)
	require.NoError(t, err)
	for _, s := range res.Scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

func TestAdamicAdar_Path(t *testing.T) {
	res, err := links.AdamicAdar(pathSrc, pathDst)
	require.NoError(t, err)
	require.Len(t, res.Scores, 1)
	assert.InDelta(t, 1/math.Log(2), res.Scores[0], 1e-12)
}

func TestResourceAllocation_Star(t *testing.T) {
	res, err := links.ResourceAllocation(starSrc, starDst)
	require.NoError(t, err)
	// Leaf pairs (2,3), (2,4), (3,4) share only the center of degree 3.
	require.Equal(t, []int64{2, 2, 3}, res.Node1)
	require.Equal(t, []int64{3, 4, 4}, res.Node2)
	for _, s := range res.Scores {
		assert.InDelta(t, 1.0/3.0, s, 1e-12)
	}
}

func TestCommonNeighbors_SkipsLonePairs(t *testing.T) {
	// 1-2, 3-4: the cross pairs share nothing and must not appear.
	res, err := links.CommonNeighbors([]int64{1, 3}, []int64{2, 4})
	require.NoError(t, err)
	assert.Empty(t, res.Node1)
}

func TestPreferentialAttachment_AllNonAdjacentPairs(t *testing.T) {
	// 1-2, 3-4: every cross pair scores deg·deg = 1 despite no shared
	// neighbors.
	res, err := links.PreferentialAttachment([]int64{1, 3}, []int64{2, 4})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 1, 2, 2}, res.Node1)
	require.Equal(t, []int64{3, 4, 3, 4}, res.Node2)
	assert.Equal(t, []float64{1, 1, 1, 1}, res.Scores)
}

func TestLinks_EmptyGraph(t *testing.T) {
	_, err := links.Jaccard(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = links.PreferentialAttachment(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}
