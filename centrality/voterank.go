package centrality

import "github.com/graphium/graphium/core"

// VoteRank elects up to numSeeds influential spreaders. Each round every node
// is scored by the voting ability of its neighbors; the highest-scored
// unelected node wins (ties go to the lower internal index), stops voting,
// and dampens its neighbors' ability by 1/⟨k⟩ with a floor at 0. The election
// ends early when no positive score remains.
//
// An empty edge list elects nobody and is not an error.
func VoteRank(src, dst []int64, numSeeds int) (*VoteRankResult, error) {
	if len(src) == 0 && len(dst) == 0 {
		return &VoteRankResult{Seeds: []int64{}}, nil
	}
	g, err := core.FromEdgeList(src, dst, nil)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	avgDeg := 2 * float64(g.EdgeCount()) / float64(n)
	decay := 0.0
	if avgDeg > 0 {
		decay = 1 / avgDeg
	}

	ability := make([]float64, n)
	for i := range ability {
		ability[i] = 1
	}
	elected := make([]bool, n)
	seeds := make([]int64, 0, numSeeds)

	for round := 0; round < numSeeds; round++ {
		best, bestScore := -1, 0.0
		for u := 0; u < n; u++ {
			if elected[u] {
				continue
			}
			score := 0.0
			for _, a := range g.Adjacent(u) {
				score += ability[a.To]
			}
			if score > bestScore {
				best, bestScore = u, score
			}
		}
		if best < 0 {
			break
		}

		elected[best] = true
		ability[best] = 0
		seeds = append(seeds, g.IDOf(best))
		for _, a := range g.Adjacent(best) {
			ability[a.To] -= decay
			if ability[a.To] < 0 {
				ability[a.To] = 0
			}
		}
	}

	return &VoteRankResult{Seeds: seeds}, nil
}
