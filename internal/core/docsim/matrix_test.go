package docsim

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildMatrixEmpty(t *testing.T) {
	matrix := BuildMatrix(nil, 0)
	if len(matrix) != 0 {
		t.Errorf("expected empty matrix, got %v", matrix)
	}
}

func TestBuildMatrixSingleVector(t *testing.T) {
	matrix := BuildMatrix([][]float64{{1, 2, 3}}, 0)
	if len(matrix) != 1 || len(matrix[0]) != 1 {
		t.Fatalf("expected 1x1 matrix, got %v", matrix)
	}
	if matrix[0][0] != 1.0 {
		t.Errorf("diagonal = %v, want exactly 1.0", matrix[0][0])
	}
}

func TestBuildMatrixDiagonalIsExactlyOne(t *testing.T) {
	vectors := [][]float64{{1, 2}, {3, 4}, {0.1, 0.9}}
	matrix := BuildMatrix(vectors, 0)

	for i := range vectors {
		if matrix[i][i] != 1.0 {
			t.Errorf("matrix[%d][%d] = %v, want exactly 1.0", i, i, matrix[i][i])
		}
	}
}

func TestBuildMatrixSymmetry(t *testing.T) {
	vectors := [][]float64{{1, 0}, {1, 1}, {0, 1}, {0.5, 0.25}}
	matrix := BuildMatrix(vectors, 0)

	for i := range vectors {
		for j := range vectors {
			if !approxEqual(matrix[i][j], matrix[j][i]) {
				t.Errorf("matrix[%d][%d]=%f != matrix[%d][%d]=%f", i, j, matrix[i][j], j, i, matrix[j][i])
			}
		}
	}
}

func TestBuildMatrixKnownValues(t *testing.T) {
	vectors := [][]float64{
		{1, 0},
		{0, 1},
		{1, 0},
	}
	matrix := BuildMatrix(vectors, 0)

	if !approxEqual(matrix[0][1], 0.0) {
		t.Errorf("orthogonal similarity = %f, want 0.0", matrix[0][1])
	}
	if !approxEqual(matrix[0][2], 1.0) {
		t.Errorf("identical similarity = %f, want 1.0", matrix[0][2])
	}
}
