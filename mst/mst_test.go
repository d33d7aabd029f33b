package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/core"
	"github.com/graphium/graphium/mst"
)

// Diamond fixture: the cheapest spanning tree keeps 1-2, 2-3 and 3-4 for a
// total of 4.5, dropping the expensive 1-3 chord.
var (
	fixSrc = []int64{1, 2, 1, 3}
	fixDst = []int64{2, 3, 3, 4}
	fixW   = []float64{1, 2, 4, 1.5}
)

func TestPrimAndKruskal_AgreeOnTotal(t *testing.T) {
	p, err := mst.Prim(fixSrc, fixDst, fixW)
	require.NoError(t, err)
	k, err := mst.Kruskal(fixSrc, fixDst, fixW)
	require.NoError(t, err)

	assert.Equal(t, 4.5, p.Total)
	assert.Equal(t, 4.5, k.Total)
	assert.Len(t, p.Src, 3)
	assert.Len(t, k.Src, 3)
}

func TestKruskal_EdgeSelection(t *testing.T) {
	k, err := mst.Kruskal(fixSrc, fixDst, fixW)
	require.NoError(t, err)
	// Ascending weight order: 1-2 (1), 3-4 (1.5), 2-3 (2).
	assert.Equal(t, []int64{1, 3, 2}, k.Src)
	assert.Equal(t, []int64{2, 4, 3}, k.Dst)
	assert.Equal(t, []float64{1, 1.5, 2}, k.Weights)
}

func TestMST_SpanningForestOnDisconnected(t *testing.T) {
	src := []int64{1, 3}
	dst := []int64{2, 4}
	w := []float64{2, 5}

	p, err := mst.Prim(src, dst, w)
	require.NoError(t, err)
	assert.Equal(t, 7.0, p.Total)
	assert.Len(t, p.Src, 2)

	k, err := mst.Kruskal(src, dst, w)
	require.NoError(t, err)
	assert.Equal(t, 7.0, k.Total)
	assert.Len(t, k.Src, 2)
}

func TestMST_SelfLoopsSkipped(t *testing.T) {
	p, err := mst.Prim([]int64{1, 1}, []int64{1, 2}, []float64{0.5, 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Total)
	assert.Len(t, p.Src, 1)
}

func TestMST_UnitWeightsByDefault(t *testing.T) {
	k, err := mst.Kruskal([]int64{1, 2}, []int64{2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, k.Total)
}

func TestMST_Validation(t *testing.T) {
	_, err := mst.Prim(nil, nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = mst.Kruskal([]int64{1}, []int64{2}, []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}
