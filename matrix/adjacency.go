package matrix

import "math"

// WeightedPair is one undirected weighted connection between two indices.
// It mirrors core.Edge without importing core, keeping matrix a leaf package.
type WeightedPair struct {
	A, B   int
	Weight float64
}

// AdjacencyFromPairs builds an n×n symmetric adjacency matrix where every
// listed pair contributes its weight at [A][B] and [B][A] and every other
// entry (the diagonal included) is +Inf.
//
// Errors: ErrInvalidDimensions for n <= 0, ErrOutOfRange for a bad index.
// Complexity: O(n² + len(pairs)).
func AdjacencyFromPairs(n int, pairs []WeightedPair) (*Dense, error) {
	m, err := NewFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	for _, p := range pairs {
		if err = m.SetSym(p.A, p.B, p.Weight); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// FiniteCount returns how many entries of m are finite (not ±Inf).
func FiniteCount(m *Dense) int {
	if m == nil {
		return 0
	}
	cnt := 0
	for _, v := range m.data {
		if !math.IsInf(v, 0) {
			cnt++
		}
	}

	return cnt
}

// IsSymmetric reports whether m is square and m[i][j] == m[j][i] within eps.
// Infinite entries must match exactly.
func IsSymmetric(m *Dense, eps float64) (bool, error) {
	if m == nil {
		return false, ErrNilMatrix
	}
	if m.r != m.c {
		return false, ErrNonSquare
	}
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			a, b := m.data[i*m.c+j], m.data[j*m.c+i]
			if math.IsInf(a, 0) || math.IsInf(b, 0) {
				if a != b {
					return false, nil
				}
				continue
			}
			if math.Abs(a-b) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}

// FiniteNeighbors returns the column indices j != i with a finite entry in row i,
// ascending. It is the adjacency-list view of a +Inf-encoded matrix.
func FiniteNeighbors(m *Dense, i int) ([]int, error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(row))
	for j, v := range row {
		if j != i && !math.IsInf(v, 0) {
			out = append(out, j)
		}
	}

	return out, nil
}
