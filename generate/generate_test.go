package generate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphium/graphium/generate"
)

func TestErdosRenyi_ProbabilityExtremes(t *testing.T) {
	empty, err := generate.ErdosRenyi(10, 0, 1)
	require.NoError(t, err)
	assert.Empty(t, empty.Src)

	full, err := generate.ErdosRenyi(10, 1, 1)
	require.NoError(t, err)
	assert.Len(t, full.Src, 45)
}

func TestErdosRenyi_SeedReproducible(t *testing.T) {
	first, err := generate.ErdosRenyi(50, 0.3, 7)
	require.NoError(t, err)
	second, err := generate.ErdosRenyi(50, 0.3, 7)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErdosRenyi_Validation(t *testing.T) {
	_, err := generate.ErdosRenyi(0, 0.5, 1)
	assert.ErrorIs(t, err, generate.ErrNodeCount)

	_, err = generate.ErdosRenyi(5, 1.5, 1)
	assert.ErrorIs(t, err, generate.ErrProbability)
}

func TestBarabasiAlbert_EdgeCount(t *testing.T) {
	// m-clique core plus m edges per later node: 3 + 7·3 = 24.
	res, err := generate.BarabasiAlbert(10, 3, 11)
	require.NoError(t, err)
	assert.Len(t, res.Src, 24)

	// Past the clique core, attachment targets must predate the attaching
	// node.
	for i := 3; i < len(res.Src); i++ {
		assert.Less(t, res.Dst[i], res.Src[i])
	}
}

func TestBarabasiAlbert_SeedReproducible(t *testing.T) {
	first, err := generate.BarabasiAlbert(30, 2, 5)
	require.NoError(t, err)
	second, err := generate.BarabasiAlbert(30, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBarabasiAlbert_Validation(t *testing.T) {
	_, err := generate.BarabasiAlbert(0, 1, 1)
	assert.ErrorIs(t, err, generate.ErrNodeCount)

	_, err = generate.BarabasiAlbert(5, 0, 1)
	assert.ErrorIs(t, err, generate.ErrAttachment)

	_, err = generate.BarabasiAlbert(5, 6, 1)
	assert.ErrorIs(t, err, generate.ErrAttachment)
}

func TestWattsStrogatz_EdgeCount(t *testing.T) {
	res, err := generate.WattsStrogatz(20, 4, 0.2, 3)
	require.NoError(t, err)
	assert.Len(t, res.Src, 40)
}

func TestWattsStrogatz_BetaZeroIsTheLattice(t *testing.T) {
	res, err := generate.WattsStrogatz(6, 2, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, res.Src)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 0}, res.Dst)
}

func TestWattsStrogatz_NoDuplicatePairs(t *testing.T) {
	// Full rewiring pressure: a rewired edge must never coincide with a
	// lattice edge or another rewired edge, regardless of seed.
	for seed := int64(0); seed < 25; seed++ {
		res, err := generate.WattsStrogatz(12, 4, 1, seed)
		require.NoError(t, err)
		require.Len(t, res.Src, 24)

		seen := make(map[[2]int64]bool)
		for i := range res.Src {
			u, v := res.Src[i], res.Dst[i]
			require.NotEqual(t, u, v)
			if u > v {
				u, v = v, u
			}
			pair := [2]int64{u, v}
			assert.False(t, seen[pair], "seed %d repeats pair %v", seed, pair)
			seen[pair] = true
		}
	}
}

func TestWattsStrogatz_SeedReproducible(t *testing.T) {
	first, err := generate.WattsStrogatz(30, 4, 0.5, 13)
	require.NoError(t, err)
	second, err := generate.WattsStrogatz(30, 4, 0.5, 13)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWattsStrogatz_Validation(t *testing.T) {
	_, err := generate.WattsStrogatz(0, 2, 0.1, 1)
	assert.ErrorIs(t, err, generate.ErrNodeCount)

	_, err = generate.WattsStrogatz(10, 3, 0.1, 1)
	assert.ErrorIs(t, err, generate.ErrRingDegree)

	_, err = generate.WattsStrogatz(10, 10, 0.1, 1)
	assert.ErrorIs(t, err, generate.ErrRingDegree)

	_, err = generate.WattsStrogatz(10, 4, 1.2, 1)
	assert.ErrorIs(t, err, generate.ErrProbability)
}
