package docsim

import (
	"github.com/baditaflorin/go_document_similarity/internal/core/tfidf"
	"github.com/baditaflorin/go_document_similarity/internal/parallel"
)

// BuildMatrix computes the full NxN similarity matrix for N dense
// vectors, one row per worker-pool task. Rows are fully independent:
// each worker writes only its own row slice.
//
// The diagonal is set to exactly 1.0 by construction rather than
// measured, so floating-point drift in the self-similarity can never
// leak into the result. Both triangles are computed; symmetry follows
// from the commutativity of cosine similarity.
func BuildMatrix(vectors [][]float64, workers int) [][]float64 {
	n := len(vectors)
	if n == 0 {
		return [][]float64{}
	}

	matrix := make([][]float64, n)
	parallel.ForEach(n, workers, func(i int) {
		row := make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				row[j] = 1.0
			} else {
				row[j] = tfidf.CosineDense(vectors[i], vectors[j])
			}
		}
		matrix[i] = row
	})
	return matrix
}
