package svm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesvm/kernel"
	"github.com/katalvlaran/treesvm/svm"
)

// twoBlobs returns two well separated clusters: first half +1, second half −1.
func twoBlobs() ([][]float64, []int8) {
	vs := [][]float64{
		{0, 0}, {0.2, 0.1}, {-0.1, 0.3}, {0.3, -0.2}, {0.1, 0.2},
		{4, 4}, {4.2, 3.9}, {3.8, 4.1}, {4.1, 4.3}, {3.9, 3.7},
	}
	y := []int8{1, 1, 1, 1, 1, -1, -1, -1, -1, -1}

	return vs, y
}

func indices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return idx
}

func TestTrain_Separable(t *testing.T) {
	vs, y := twoBlobs()
	g, err := kernel.NewGram(vs, 0.5)
	require.NoError(t, err)

	p := svm.DefaultParams()
	p.C = 10
	m, err := svm.Train(g, indices(len(vs)), y, p)
	require.NoError(t, err)

	assert.True(t, m.Converged)
	assert.Greater(t, m.Iterations, 0)
	assert.NotEmpty(t, m.SupportVectors)
	assert.Len(t, m.Coef, len(m.SupportVectors))
	assert.InDelta(t, 0.5, m.Gamma(), 0)

	// yᵀα = 0 and 0 < α ≤ C
	sum := 0.0
	for _, c := range m.Coef {
		sum += c
		assert.LessOrEqual(t, math.Abs(c), p.C+1e-9)
	}
	assert.InDelta(t, 0, sum, 1e-9)

	for i, v := range vs {
		got, err := m.Predict(v)
		require.NoError(t, err)
		assert.Equal(t, y[i], got, "sample %d", i)

		f, err := m.Decision(v)
		require.NoError(t, err)
		assert.InDelta(t, f, m.DecisionIndex(g, i), 1e-9)
	}

	got, err := m.Predict([]float64{0.05, 0.05})
	require.NoError(t, err)
	assert.Equal(t, int8(1), got)
	got, err = m.Predict([]float64{4, 4.05})
	require.NoError(t, err)
	assert.Equal(t, int8(-1), got)
}

func TestTrain_IterationCap(t *testing.T) {
	vs, y := twoBlobs()
	g, err := kernel.NewGram(vs, 0.5)
	require.NoError(t, err)

	p := svm.DefaultParams()
	p.MaxIterations = 1
	m, err := svm.Train(g, indices(len(vs)), y, p)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Iterations)
	assert.False(t, m.Converged)
}

func TestTrain_Errors(t *testing.T) {
	vs, y := twoBlobs()
	g, err := kernel.NewGram(vs, 1)
	require.NoError(t, err)
	p := svm.DefaultParams()

	_, err = svm.Train(g, nil, nil, p)
	assert.ErrorIs(t, err, svm.ErrNoSamples)

	_, err = svm.Train(g, []int{0, 1}, []int8{1}, p)
	assert.ErrorIs(t, err, svm.ErrLengthMismatch)

	_, err = svm.Train(g, []int{0, 1}, []int8{1, 1}, p)
	assert.ErrorIs(t, err, svm.ErrOneClass)

	_, err = svm.Train(g, []int{0, 1}, []int8{1, 0}, p)
	assert.ErrorIs(t, err, svm.ErrLabel)

	_, err = svm.Train(g, indices(len(vs)), y, svm.Params{C: 0, Tolerance: 1e-3})
	assert.ErrorIs(t, err, svm.ErrInvalidParams)
}

func TestModel_DecisionRejectsBadInput(t *testing.T) {
	vs, y := twoBlobs()
	g, err := kernel.NewGram(vs, 1)
	require.NoError(t, err)
	m, err := svm.Train(g, indices(len(vs)), y, svm.DefaultParams())
	require.NoError(t, err)

	_, err = m.Decision([]float64{1, 2, 3})
	assert.ErrorIs(t, err, kernel.ErrDimensionMismatch)

	_, err = m.Decision([]float64{math.NaN(), 1})
	assert.ErrorIs(t, err, kernel.ErrNonFinite)
	_, err = m.Predict([]float64{0, math.Inf(-1)})
	assert.ErrorIs(t, err, kernel.ErrNonFinite)
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, svm.DefaultParams().Validate())
	assert.Error(t, svm.Params{C: 1, Tolerance: 0}.Validate())
	assert.Error(t, svm.Params{C: math.NaN(), Tolerance: 1}.Validate())
	assert.Error(t, svm.Params{C: 1, Tolerance: 1, MaxIterations: -1}.Validate())
}
