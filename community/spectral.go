package community

import (
	"fmt"
	"math"
	"math/rand"
)

// Spectral clusters nodes by the normalized-Laplacian embedding: a Jacobi
// eigen-decomposition, the k smallest nontrivial eigenvectors as coordinates
// (rows L2-normalized), then k-means. A non-negative seed randomizes the
// k-means initialization; a negative seed uses the first k rows as centers.
// k must be positive (ErrZeroClusters) and is capped at the node count.
// Complexity: O(V³) for the eigen-decomposition.
func Spectral(src, dst []int64, k int, seed int64) (*Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("spectral: k=%d: %w", k, ErrZeroClusters)
	}
	g, err := build("spectral", src, dst)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	if k > n {
		k = n
	}

	// 1. Normalized Laplacian on the simple structure.
	deg := make([]float64, n)
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	for u := 0; u < n; u++ {
		for _, a := range g.Adjacent(u) {
			if a.To != u {
				adj[u][a.To] = 1
			}
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			deg[u] += adj[u][v]
		}
	}
	lap := make([][]float64, n)
	for i := range lap {
		lap[i] = make([]float64, n)
		if deg[i] > 0 {
			lap[i][i] = 1
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if adj[u][v] > 0 && deg[u] > 0 && deg[v] > 0 {
				lap[u][v] = -1 / math.Sqrt(deg[u]*deg[v])
			}
		}
	}

	// 2. Eigen-decomposition, eigenvalues ascending; drop the trivial first.
	vals, vecs := jacobiEigen(lap)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := 1; i < n; i++ { // insertion sort by eigenvalue, stable
		for j := i; j > 0 && vals[order[j]] < vals[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	dims := k
	if dims > n-1 {
		dims = n - 1
	}
	if dims == 0 {
		dims = 1
	}

	emb := make([][]float64, n)
	for u := 0; u < n; u++ {
		emb[u] = make([]float64, dims)
		for j := 0; j < dims; j++ {
			col := order[j+1] // skip the trivial eigenvector
			if j+1 >= n {
				col = order[n-1]
			}
			emb[u][j] = vecs[u][col]
		}
		norm := 0.0
		for _, x := range emb[u] {
			norm += x * x
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range emb[u] {
				emb[u][j] /= norm
			}
		}
	}

	labels := kMeans(emb, k, seed)

	return densify(g, labels), nil
}

// jacobiEigen diagonalizes a symmetric matrix by cyclic Jacobi rotations.
// vecs[i][j] is component i of the eigenvector for vals[j].
func jacobiEigen(a [][]float64) (vals []float64, vecs [][]float64) {
	n := len(a)
	m := make([][]float64, n)
	vecs = make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		copy(m[i], a[i])
		vecs[i] = make([]float64, n)
		vecs[i][i] = 1
	}

	const sweeps = 100
	for sweep := 0; sweep < sweeps; sweep++ {
		off := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				off += m[p][q] * m[p][q]
			}
		}
		if off < 1e-18 {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(m[p][q]) < 1e-15 {
					continue
				}
				theta := (m[q][q] - m[p][p]) / (2 * m[p][q])
				t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				if theta < 0 {
					t = -t
				}
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				for i := 0; i < n; i++ {
					mip, miq := m[i][p], m[i][q]
					m[i][p] = c*mip - s*miq
					m[i][q] = s*mip + c*miq
				}
				for i := 0; i < n; i++ {
					mpi, mqi := m[p][i], m[q][i]
					m[p][i] = c*mpi - s*mqi
					m[q][i] = s*mpi + c*mqi
				}
				for i := 0; i < n; i++ {
					vip, viq := vecs[i][p], vecs[i][q]
					vecs[i][p] = c*vip - s*viq
					vecs[i][q] = s*vip + c*viq
				}
			}
		}
	}

	vals = make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = m[i][i]
	}

	return vals, vecs
}

// kMeans assigns each embedded row to one of k centers, lowest-index wins on
// distance ties. Empty clusters keep their previous center.
func kMeans(emb [][]float64, k int, seed int64) []int {
	n := len(emb)
	dims := len(emb[0])
	centers := make([][]float64, k)

	if seed >= 0 {
		rng := rand.New(rand.NewSource(seed))
		perm := rng.Perm(n)
		for c := 0; c < k; c++ {
			centers[c] = append([]float64(nil), emb[perm[c%n]]...)
		}
	} else {
		for c := 0; c < k; c++ {
			centers[c] = append([]float64(nil), emb[c%n]...)
		}
	}

	labels := make([]int, n)
	const rounds = 100
	for round := 0; round < rounds; round++ {
		changed := false
		for u := 0; u < n; u++ {
			best, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				d := 0.0
				for j := 0; j < dims; j++ {
					diff := emb[u][j] - centers[c][j]
					d += diff * diff
				}
				if d < bestDist {
					best, bestDist = c, d
				}
			}
			if labels[u] != best {
				labels[u] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		counts := make([]int, k)
		sums := make([][]float64, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for u := 0; u < n; u++ {
			counts[labels[u]]++
			for j := 0; j < dims; j++ {
				sums[labels[u]][j] += emb[u][j]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue
			}
			for j := 0; j < dims; j++ {
				centers[c][j] = sums[c][j] / float64(counts[c])
			}
		}
	}

	return labels
}
