package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/treesvm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAdjacencyFromPairs_PathOfFour checks the +Inf encoding on a 4-vertex path.
func TestAdjacencyFromPairs_PathOfFour(t *testing.T) {
	pairs := []matrix.WeightedPair{{A: 0, B: 1, Weight: 0.1}, {A: 1, B: 2, Weight: 0.2}, {A: 3, B: 2, Weight: 0.3}}
	m, err := matrix.AdjacencyFromPairs(4, pairs)
	require.NoError(t, err)

	assert.Equal(t, 2*len(pairs), matrix.FiniteCount(m))
	sym, err := matrix.IsSymmetric(m, 0)
	require.NoError(t, err)
	assert.True(t, sym)

	d, _ := m.At(0, 0)
	assert.True(t, math.IsInf(d, 1), "diagonal must be +Inf")

	nbrs, err := matrix.FiniteNeighbors(m, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, nbrs)

	_, err = matrix.AdjacencyFromPairs(2, []matrix.WeightedPair{{A: 0, B: 5}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.AdjacencyFromPairs(0, nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestIsSymmetric(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_, err := matrix.IsSymmetric(m, 0)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.IsSymmetric(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	sq, _ := matrix.NewDense(2, 2)
	_ = sq.Set(0, 1, 1)
	_ = sq.Set(1, 0, 1+1e-12)
	ok, _ := matrix.IsSymmetric(sq, 1e-9)
	assert.True(t, ok)
	_ = sq.Set(1, 0, math.Inf(1))
	ok, _ = matrix.IsSymmetric(sq, 1e-9)
	assert.False(t, ok)

	assert.Zero(t, matrix.FiniteCount(nil))
}
