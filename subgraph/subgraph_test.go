package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/core"
	"github.com/graphium/graphium/subgraph"
)

// Path 1-2-3-4 with a chord 1-3.
var (
	chordSrc = []int64{1, 2, 3, 1}
	chordDst = []int64{2, 3, 4, 3}
)

func TestEgo_RadiusOne(t *testing.T) {
	res, err := subgraph.Ego(chordSrc, chordDst, 1, 1)
	require.NoError(t, err)
	// Nodes within 1 hop of 1: {1,2,3}; edge 3-4 falls outside.
	assert.Equal(t, []int64{1, 2, 1}, res.Src)
	assert.Equal(t, []int64{2, 3, 3}, res.Dst)
}

func TestEgo_RadiusZeroHasNoEdges(t *testing.T) {
	res, err := subgraph.Ego(chordSrc, chordDst, 1, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Src)
}

func TestEgo_UnknownCenter(t *testing.T) {
	_, err := subgraph.Ego(chordSrc, chordDst, 99, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestKHop(t *testing.T) {
	res, err := subgraph.KHop(chordSrc, chordDst, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Nodes)

	res, err = subgraph.KHop(chordSrc, chordDst, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, res.Nodes)
}

func TestKHop_ZeroIsJustTheStart(t *testing.T) {
	res, err := subgraph.KHop(chordSrc, chordDst, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, res.Nodes)
}

func TestKHop_UnknownStart(t *testing.T) {
	_, err := subgraph.KHop(chordSrc, chordDst, 42, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestInduced(t *testing.T) {
	res, err := subgraph.Induced(chordSrc, chordDst, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 1}, res.Src)
	assert.Equal(t, []int64{2, 3, 3}, res.Dst)
}

func TestInduced_UnknownIDsIgnored(t *testing.T) {
	res, err := subgraph.Induced(chordSrc, chordDst, []int64{3, 4, 77})
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, res.Src)
	assert.Equal(t, []int64{4}, res.Dst)
}

func TestInduced_Selection(t *testing.T) {
	_, err := subgraph.Induced(chordSrc, chordDst, nil)
	assert.ErrorIs(t, err, subgraph.ErrEmptySelection)

	// A singleton induces no edges.
	res, err := subgraph.Induced(chordSrc, chordDst, []int64{2})
	require.NoError(t, err)
	assert.Empty(t, res.Src)
}

func TestSubgraph_EmptyGraph(t *testing.T) {
	_, err := subgraph.Ego(nil, nil, 1, 1)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = subgraph.KHop(nil, nil, 1, 1)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = subgraph.Induced(nil, nil, []int64{1})
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}
