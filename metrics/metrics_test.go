package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/core"
	"github.com/graphium/graphium/metrics"
)

var (
	triangleSrc = []int64{1, 2, 1}
	triangleDst = []int64{2, 3, 3}

	pathSrc = []int64{1, 2}
	pathDst = []int64{2, 3}
)

func TestDiameterRadius_Triangle(t *testing.T) {
	d, err := metrics.Diameter(triangleSrc, triangleDst)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	r, err := metrics.Radius(triangleSrc, triangleDst)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}

func TestDiameterRadius_Path(t *testing.T) {
	d, err := metrics.Diameter(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	r, err := metrics.Radius(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}

func TestDiameterRadius_Disconnected(t *testing.T) {
	d, err := metrics.Diameter([]int64{1, 3}, []int64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, -1, d)

	r, err := metrics.Radius([]int64{1, 3}, []int64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, -1, r)
}

func TestAveragePathLength(t *testing.T) {
	// Path 1-2-3: ordered reachable pairs have distances 1,2,1,1,2,1.
	avg, err := metrics.AveragePathLength(pathSrc, pathDst)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/6.0, avg, 1e-12)

	// Disconnected pairs do not contribute.
	avg, err = metrics.AveragePathLength([]int64{1, 3}, []int64{2, 4})
	require.NoError(t, err)
	assert.Equal(t, 1.0, avg)
}

func TestDensity_CompleteEdgeSet(t *testing.T) {
	// Triangle listed once per unordered pair: undirected 1.0, directed 0.5.
	und, err := metrics.Density(triangleSrc, triangleDst, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, und)

	dir, err := metrics.Density(triangleSrc, triangleDst, true)
	require.NoError(t, err)
	assert.Equal(t, 0.5, dir)
}

func TestTriangleCount(t *testing.T) {
	res, err := metrics.TriangleCount(triangleSrc, triangleDst)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, res.NodeIDs)
	assert.Equal(t, []int64{1, 1, 1}, res.Triangles)

	res, err = metrics.TriangleCount(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Triangles)
}

func TestClusteringAndTransitivity(t *testing.T) {
	avg, err := metrics.AverageClustering(triangleSrc, triangleDst)
	require.NoError(t, err)
	assert.Equal(t, 1.0, avg)

	tr, err := metrics.Transitivity(triangleSrc, triangleDst)
	require.NoError(t, err)
	assert.Equal(t, 1.0, tr)

	avg, err = metrics.AverageClustering(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)

	tr, err = metrics.Transitivity(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tr)
}

func TestAssortativity(t *testing.T) {
	// A path is perfectly disassortative: endpoints of degree 1 attach to the
	// middle node of degree 2.
	r, err := metrics.Assortativity(pathSrc, pathDst)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)

	// A triangle is degree-regular: zero variance, zero by convention.
	r, err = metrics.Assortativity(triangleSrc, triangleDst)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestMetrics_EmptyGraph(t *testing.T) {
	_, err := metrics.Diameter(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = metrics.AverageClustering(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = metrics.Density(nil, nil, false)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = metrics.TriangleCountParallel(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestParallelVariants_MatchSequential(t *testing.T) {
	src := []int64{1, 2, 1, 3, 4, 5, 3}
	dst := []int64{2, 3, 3, 4, 5, 6, 6}

	wantTri, err := metrics.TriangleCount(src, dst)
	require.NoError(t, err)
	gotTri, err := metrics.TriangleCountParallel(src, dst)
	require.NoError(t, err)
	assert.Equal(t, wantTri, gotTri)

	wantAvg, err := metrics.AverageClustering(src, dst)
	require.NoError(t, err)
	gotAvg, err := metrics.AverageClusteringParallel(src, dst)
	require.NoError(t, err)
	assert.Equal(t, wantAvg, gotAvg)
}
