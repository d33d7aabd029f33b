package centrality

import "math"

// Eigenvector returns eigenvector centrality by power iteration on the
// adjacency structure, L2-normalized each step. Iteration stops when the L1
// step shrinks below tol or maxIter is exhausted; the last iterate is
// returned either way, without a convergence error.
// Complexity: O(maxIter · (V + E)).
func Eigenvector(src, dst []int64, maxIter int, tol float64) (*Result, error) {
	g, err := build("eigenvector", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	x := uniform(n)
	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, a := range g.Adjacent(i) {
				sum += x[a.To]
			}
			next[i] = sum
		}
		norm := 0.0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			// No positive entries left, nothing to normalize.
			return &Result{NodeIDs: g.NodeIDs(), Scores: next}, nil
		}
		diff := 0.0
		for i := range next {
			next[i] /= norm
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if diff < tol {
			break
		}
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: x}, nil
}

// Katz returns Katz centrality: attenuated walk counts with attenuation
// alpha and constant bias 1, iterated until the L1 step shrinks below tol or
// maxIter is exhausted.
func Katz(src, dst []int64, alpha float64, maxIter int, tol float64) (*Result, error) {
	g, err := build("katz", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	x := make([]float64, n)
	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for _, a := range g.InAdjacent(i) {
				sum += x[a.To]
			}
			next[i] = 1 + alpha*sum
		}
		diff := 0.0
		for i := range next {
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x
		if diff < tol {
			break
		}
	}

	return &Result{NodeIDs: g.NodeIDs(), Scores: x}, nil
}
