package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/centrality"
	"github.com/graphium/graphium/core"
)

var (
	// Star with center 1.
	starSrc = []int64{1, 1, 1}
	starDst = []int64{2, 3, 4}

	// Path 1-2-3.
	pathSrc = []int64{1, 2}
	pathDst = []int64{2, 3}

	triangleSrc = []int64{1, 2, 1}
	triangleDst = []int64{2, 3, 3}
)

func TestDegree_Undirected(t *testing.T) {
	res, err := centrality.Degree(starSrc, starDst, false)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4}, res.NodeIDs)
	assert.Equal(t, []int64{3, 1, 1, 1}, res.Out)
	assert.Equal(t, res.Out, res.In)
}

func TestDegree_Directed(t *testing.T) {
	res, err := centrality.Degree(starSrc, starDst, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 0, 0}, res.Out)
	assert.Equal(t, []int64{0, 1, 1, 1}, res.In)
}

func TestNodeDegree(t *testing.T) {
	in, out, err := centrality.NodeDegree(starSrc, starDst, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), in)
	assert.Equal(t, int64(3), out)

	_, _, err = centrality.NodeDegree(starSrc, starDst, 99)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestPageRank_StarCenterDominates(t *testing.T) {
	res, err := centrality.PageRank(starSrc, starDst, 0.85, 100, false)
	require.NoError(t, err)

	sum := 0.0
	for _, s := range res.Scores {
		sum += s
		assert.GreaterOrEqual(t, s, 0.0)
	}
	assert.InDelta(t, 1.0, sum, 0.01)
	assert.Greater(t, res.Scores[0], res.Scores[1], "center must outrank a leaf")
}

func TestPageRank_Validation(t *testing.T) {
	_, err := centrality.PageRank(starSrc, starDst, 1.5, 100, false)
	assert.ErrorIs(t, err, centrality.ErrDampingOutOfRange)

	_, err = centrality.PageRank(starSrc, starDst, 0.85, 0, false)
	assert.ErrorIs(t, err, centrality.ErrZeroIterations)

	_, err = centrality.PageRank(nil, nil, 0.85, 100, false)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestPageRankParallel_IdenticalToSequential(t *testing.T) {
	src := []int64{1, 1, 2, 3, 4, 5, 5, 6}
	dst := []int64{2, 3, 4, 5, 5, 6, 7, 7}

	want, err := centrality.PageRank(src, dst, 0.85, 100, true)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := centrality.PageRankParallel(src, dst, 0.85, 100, true)
		require.NoError(t, err)
		assert.Equal(t, want.Scores, got.Scores, "parallel kernel must be bit-identical")
	}
}

func TestPageRankPersonalized_EmptySeedsIsUniform(t *testing.T) {
	want, err := centrality.PageRank(starSrc, starDst, 0.85, 100, false)
	require.NoError(t, err)
	got, err := centrality.PageRankPersonalized(starSrc, starDst, nil, 0.85, 100, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, want.Scores, got.Scores)
}

func TestPageRankPersonalized_SeedPullsMass(t *testing.T) {
	seeds := []centrality.Seed{{Node: 4, Weight: 1}}
	res, err := centrality.PageRankPersonalized(starSrc, starDst, seeds, 0.85, 100, 1e-9)
	require.NoError(t, err)
	// Leaf 4 holds the whole teleport and must outrank the other leaves.
	assert.Greater(t, res.Scores[3], res.Scores[1])
	assert.Greater(t, res.Scores[3], res.Scores[2])
}

func TestPageRankPersonalized_Validation(t *testing.T) {
	_, err := centrality.PageRankPersonalized(starSrc, starDst, nil, 0, 100, 1e-6)
	assert.ErrorIs(t, err, centrality.ErrDampingOutOfRange)

	_, err = centrality.PageRankPersonalized(starSrc, starDst, nil, 0.85, 0, 1e-6)
	assert.ErrorIs(t, err, centrality.ErrZeroIterations)

	seeds := []centrality.Seed{{Node: 42, Weight: 1}}
	_, err = centrality.PageRankPersonalized(starSrc, starDst, seeds, 0.85, 100, 1e-6)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestBetweenness_PathMiddle(t *testing.T) {
	res, err := centrality.Betweenness(pathSrc, pathDst, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, res.Scores)

	// n=3 normalizes by exactly one possible pair.
	res, err = centrality.Betweenness(pathSrc, pathDst, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, res.Scores)
}

func TestCloseness_Path(t *testing.T) {
	res, err := centrality.Closeness(pathSrc, pathDst)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, res.Scores[0], 1e-12)
	assert.InDelta(t, 1.0, res.Scores[1], 1e-12)
	assert.InDelta(t, 2.0/3.0, res.Scores[2], 1e-12)
}

func TestHarmonic_Path(t *testing.T) {
	res, err := centrality.Harmonic(pathSrc, pathDst)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.Scores[0], 1e-12)
	assert.InDelta(t, 2.0, res.Scores[1], 1e-12)
}

func TestLocalReaching_Path(t *testing.T) {
	res, err := centrality.LocalReaching(pathSrc, pathDst, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 1, 0.5}, res.Scores)

	res, err = centrality.LocalReaching(pathSrc, pathDst, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, res.Scores)
}

func TestEigenvector_TriangleSymmetric(t *testing.T) {
	res, err := centrality.Eigenvector(triangleSrc, triangleDst, 100, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, res.Scores[0], res.Scores[1], 1e-6)
	assert.InDelta(t, res.Scores[1], res.Scores[2], 1e-6)
	assert.Greater(t, res.Scores[0], 0.0)
}

func TestKatz_PathMiddleHighest(t *testing.T) {
	res, err := centrality.Katz(pathSrc, pathDst, 0.1, 100, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, res.Scores[0], res.Scores[2], 1e-9)
	assert.Greater(t, res.Scores[1], res.Scores[0])
}

func TestLaplacian_Path(t *testing.T) {
	res, err := centrality.Laplacian(pathSrc, pathDst)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 10, 6}, res.Scores)
}

func TestVoteRank(t *testing.T) {
	// Star: the center wins round one; every remaining score is then 0, so
	// the election stops early.
	res, err := centrality.VoteRank(starSrc, starDst, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, res.Seeds)

	// Triangle: all tie at first, lowest index wins, then its dampened
	// neighbors tie again.
	res, err = centrality.VoteRank(triangleSrc, triangleDst, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, res.Seeds)
}

func TestVoteRank_EmptyInputElectsNobody(t *testing.T) {
	res, err := centrality.VoteRank(nil, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, res.Seeds)
}

func TestCentrality_EmptyGraph(t *testing.T) {
	_, err := centrality.Betweenness(nil, nil, false)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = centrality.Closeness(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = centrality.Eigenvector(nil, nil, 50, 1e-6)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, err = centrality.Laplacian(nil, nil)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}
