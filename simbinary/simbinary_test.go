package simbinary_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesvm/bfs"
	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/matrix"
	"github.com/katalvlaran/treesvm/prim_kruskal"
	"github.com/katalvlaran/treesvm/simbinary"
	"github.com/katalvlaran/treesvm/svm"
)

const (
	testGamma = 0.5
	testC     = 10
)

func TestFindSeparability_ShapeAndSymmetry(t *testing.T) {
	cs := blobs(t, 6, 8, 1)
	sep, err := simbinary.FindSeparability(cs, testGamma, testC)
	require.NoError(t, err)

	assert.Equal(t, 36, sep.Matrix.Size())
	ok, err := matrix.IsSymmetric(sep.Matrix, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	require.Equal(t, 6, sep.Index.Len())
	for i, l := range cs.Labels() {
		got, ok := sep.Index.Index(l)
		require.True(t, ok)
		assert.Equal(t, i, got)
		back, ok := sep.Index.Label(i)
		require.True(t, ok)
		assert.Equal(t, l, back)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v, err := sep.Matrix.At(i, j)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.False(t, math.IsNaN(v))
		}
	}
}

func TestFindSeparability_Errors(t *testing.T) {
	one := dataset.NewClassSet()
	require.NoError(t, one.Add("a", []float64{1}))
	_, err := simbinary.FindSeparability(one, testGamma, testC)
	assert.ErrorIs(t, err, simbinary.ErrTooFewClasses)
	assert.ErrorIs(t, err, simbinary.ErrData)

	_, err = simbinary.FindSeparability(nil, testGamma, testC)
	assert.ErrorIs(t, err, simbinary.ErrTooFewClasses)
}

func TestBuildMST_ShapeAndMethodsAgree(t *testing.T) {
	cs := blobs(t, 6, 8, 2)
	sep, err := simbinary.FindSeparability(cs, testGamma, testC)
	require.NoError(t, err)

	var totals []float64
	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, prim_kruskal.MethodDense} {
		mst, err := simbinary.BuildMST(sep, m)
		require.NoError(t, err, m)
		assert.Len(t, mst.Edges, 5, m)
		assert.Equal(t, 10, matrix.FiniteCount(mst.Adjacency), m)
		assert.Equal(t, 6, mst.Len())

		g, err := core.FromEdges(6, mst.Edges)
		require.NoError(t, err)
		res, err := bfs.BFS(g, 0)
		require.NoError(t, err)
		assert.Len(t, res.Order, 6, "connected via %s", m)
		totals = append(totals, mst.Total)
	}
	assert.InDelta(t, totals[0], totals[1], 1e-9)
	assert.InDelta(t, totals[0], totals[2], 1e-9)

	_, err = simbinary.BuildMST(sep, "boruvka")
	assert.ErrorIs(t, err, simbinary.ErrInvalidParams)
}

// pathMST builds an MST over n classes from explicit edges.
func pathMST(t *testing.T, n int, edges []core.Edge) *simbinary.MST {
	t.Helper()
	pairs := make([]matrix.WeightedPair, len(edges))
	for i, e := range edges {
		pairs[i] = matrix.WeightedPair{A: e.From, B: e.To, Weight: e.Weight}
	}
	adj, err := matrix.AdjacencyFromPairs(n, pairs)
	require.NoError(t, err)

	return &simbinary.MST{Edges: edges, Adjacency: adj}
}

func TestConstructTree_CutsHeaviestEdge(t *testing.T) {
	// 0 -1- 1 -5- 2 -2- 3
	mst := pathMST(t, 4, []core.Edge{
		{ID: 0, From: 0, To: 1, Weight: 1},
		{ID: 3, From: 1, To: 2, Weight: 5},
		{ID: 5, From: 2, To: 3, Weight: 2},
	})
	tree, err := simbinary.ConstructTree(mst)
	require.NoError(t, err)

	root, ok := tree.Node(tree.Root()).(*simbinary.Internal)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, root.Classes)
	assert.Equal(t, []int{0, 1}, tree.Classes(root.Left))
	assert.Equal(t, []int{2, 3}, tree.Classes(root.Right))
	assert.Equal(t, 7, tree.Len())
	assert.Equal(t, 2, tree.Depth())
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, tree.Leaves())
}

func TestConstructTree_TieTakesFirstEdge(t *testing.T) {
	mst := pathMST(t, 3, []core.Edge{
		{ID: 0, From: 0, To: 1, Weight: 3},
		{ID: 2, From: 1, To: 2, Weight: 3},
	})
	tree, err := simbinary.ConstructTree(mst)
	require.NoError(t, err)

	root := tree.Node(tree.Root()).(*simbinary.Internal)
	assert.Equal(t, []int{0}, tree.Classes(root.Left))
	assert.Equal(t, []int{1, 2}, tree.Classes(root.Right))
}

func TestConstructTree_LeftHoldsCutFrom(t *testing.T) {
	mst := pathMST(t, 3, []core.Edge{
		{ID: 0, From: 2, To: 0, Weight: 9},
		{ID: 1, From: 0, To: 1, Weight: 1},
	})
	tree, err := simbinary.ConstructTree(mst)
	require.NoError(t, err)

	root := tree.Node(tree.Root()).(*simbinary.Internal)
	assert.Equal(t, []int{2}, tree.Classes(root.Left))
	assert.Equal(t, []int{0, 1}, tree.Classes(root.Right))
}

func TestConstructTree_Disconnected(t *testing.T) {
	mst := pathMST(t, 3, []core.Edge{{ID: 0, From: 0, To: 1, Weight: 1}})
	_, err := simbinary.ConstructTree(mst)
	assert.ErrorIs(t, err, simbinary.ErrTreeStructure)
	assert.ErrorIs(t, err, simbinary.ErrTraining)
}

func TestTree_PredictUntrained(t *testing.T) {
	mst := pathMST(t, 2, []core.Edge{{ID: 0, From: 0, To: 1, Weight: 1}})
	tree, err := simbinary.ConstructTree(mst)
	require.NoError(t, err)

	_, _, err = tree.Predict([]float64{0})
	assert.ErrorIs(t, err, simbinary.ErrNotTrained)
	assert.ErrorIs(t, err, simbinary.ErrState)
}

func TestClassifier_SixClassScenario(t *testing.T) {
	cs := blobs(t, 6, 10, 3)
	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)
	require.NoError(t, clf.Train(cs))

	assert.Equal(t, 36, clf.Separability().Matrix.Size())
	assert.Equal(t, cs.Labels(), clf.Labels())
	assert.Len(t, clf.MST().Edges, 5)
	assert.Equal(t, 10, matrix.FiniteCount(clf.MST().Adjacency))

	tree := clf.Tree()
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, tree.Leaves())
	assert.Len(t, tree.Internals(), 5)
	for id := simbinary.NodeID(0); int(id) < tree.Len(); id++ {
		switch n := tree.Node(id).(type) {
		case *simbinary.Internal:
			require.NotNil(t, n.Model, "node %d", id)
			left, right := tree.Classes(n.Left), tree.Classes(n.Right)
			assert.Len(t, n.Classes, len(left)+len(right))
			assert.ElementsMatch(t, n.Classes, append(append([]int{}, left...), right...))
			for _, l := range left {
				assert.NotContains(t, right, l)
			}
		case *simbinary.Leaf:
			assert.GreaterOrEqual(t, n.Class, 0)
		default:
			t.Fatalf("node %d has unexpected type %T", id, n)
		}
	}

	for _, l := range cs.Labels() {
		for _, x := range cs.Samples(l) {
			got, err := clf.Predict(x)
			require.NoError(t, err)
			assert.Equal(t, l, got)
		}
	}

	r, err := clf.Test(cs)
	require.NoError(t, err)
	assert.Equal(t, 60, r.Total)
	assert.Zero(t, r.Errors)
	assert.InDelta(t, 1.0, r.Accuracy(), 0)
	assert.GreaterOrEqual(t, r.AvgIterations(), 1.0)
	assert.LessOrEqual(t, r.AvgIterations(), 5.0)
}

func TestClassifier_Deterministic(t *testing.T) {
	cs := blobs(t, 4, 6, 4)
	a, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)
	b, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)
	require.NoError(t, a.Train(cs))
	require.NoError(t, b.Train(cs))

	assert.Equal(t, a.MST().Edges, b.MST().Edges)
	assert.Equal(t, a.Tree().Leaves(), b.Tree().Leaves())
}

func TestClassifier_Errors(t *testing.T) {
	_, err := simbinary.New(0, testC)
	assert.ErrorIs(t, err, simbinary.ErrInvalidParams)
	_, err = simbinary.New(testGamma, -1)
	assert.ErrorIs(t, err, simbinary.ErrInvalidParams)
	_, err = simbinary.New(testGamma, testC, simbinary.WithMSTMethod("nope"))
	assert.ErrorIs(t, err, simbinary.ErrInvalidParams)

	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)

	_, err = clf.Predict([]float64{0, 0})
	assert.ErrorIs(t, err, simbinary.ErrNotTrained)
	assert.ErrorIs(t, err, simbinary.ErrState)
	_, err = clf.Test(blobs(t, 2, 2, 5))
	assert.ErrorIs(t, err, simbinary.ErrNotTrained)
	assert.Nil(t, clf.Labels())

	one := dataset.NewClassSet()
	require.NoError(t, one.Add("only", []float64{1, 2}))
	err = clf.Train(one)
	assert.ErrorIs(t, err, simbinary.ErrTooFewClasses)
	assert.ErrorIs(t, err, simbinary.ErrData)

	require.NoError(t, clf.Train(blobs(t, 3, 4, 6)))
	_, err = clf.Predict([]float64{1, 2, 3})
	assert.ErrorIs(t, err, simbinary.ErrDimensionMismatch)
}

func TestClassifier_NonFiniteFeatures(t *testing.T) {
	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)

	// samples are shared slices, so a value can turn non-finite after Add
	cs := blobs(t, 3, 4, 11)
	cs.Samples(cs.Labels()[0])[0][0] = math.NaN()
	err = clf.Train(cs)
	assert.ErrorIs(t, err, simbinary.ErrNonFinite)
	assert.ErrorIs(t, err, simbinary.ErrData)
	assert.Nil(t, clf.Tree())

	_, err = simbinary.FindSeparability(cs, testGamma, testC)
	assert.ErrorIs(t, err, simbinary.ErrNonFinite)

	require.NoError(t, clf.Train(blobs(t, 3, 4, 11)))
	for _, x := range [][]float64{
		{math.NaN(), 1},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
	} {
		_, err = clf.Predict(x)
		assert.ErrorIs(t, err, simbinary.ErrNonFinite, "x=%v", x)
		assert.ErrorIs(t, err, simbinary.ErrData)

		_, _, err = clf.Tree().Predict(x)
		assert.ErrorIs(t, err, simbinary.ErrNonFinite, "x=%v", x)
	}

	bad := dataset.NewClassSet()
	require.NoError(t, bad.Add("a", []float64{0, 0}))
	require.NoError(t, bad.Add("b", []float64{5, 5}))
	bad.Samples("b")[0][1] = math.Inf(1)
	_, err = clf.Test(bad)
	assert.ErrorIs(t, err, simbinary.ErrNonFinite)
}

func TestClassifier_TestCountsUnknownLabels(t *testing.T) {
	cs := blobs(t, 3, 5, 7)
	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)
	require.NoError(t, clf.Train(cs))

	other := dataset.NewClassSet()
	require.NoError(t, other.Add("stranger", []float64{10, 0}))
	r, err := clf.Test(other)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, 1, r.Errors)
	assert.Zero(t, r.Accuracy())
}

func TestClassifier_SolverIterationCapIsNotAnError(t *testing.T) {
	cs := blobs(t, 3, 5, 8)
	p := svm.DefaultParams()
	p.MaxIterations = 1
	clf, err := simbinary.New(testGamma, testC, simbinary.WithSolverParams(p), simbinary.WithQuickParams(p))
	require.NoError(t, err)
	require.NoError(t, clf.Train(cs))

	for _, id := range clf.Tree().Internals() {
		n := clf.Tree().Node(id).(*simbinary.Internal)
		assert.False(t, n.Model.Converged)
	}
	r, err := clf.Test(cs)
	require.NoError(t, err)
	assert.Equal(t, 15, r.Total)
}

func TestCrossValidate(t *testing.T) {
	cs := blobs(t, 4, 9, 9)
	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)

	acc, err := clf.CrossValidate(3, cs)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, acc, 0.0)
	assert.LessOrEqual(t, acc, 1.0)
	assert.Nil(t, clf.Tree(), "cross validation leaves the receiver untouched")

	_, err = clf.CrossValidate(1, cs)
	assert.ErrorIs(t, err, simbinary.ErrInvalidFolds)
	_, err = clf.CrossValidate(10, cs)
	assert.ErrorIs(t, err, simbinary.ErrInvalidFolds)
	assert.ErrorIs(t, err, simbinary.ErrData)
}

func TestClassifier_TrainContextCancelled(t *testing.T) {
	cs := blobs(t, 3, 5, 7)
	clf, err := simbinary.New(testGamma, testC)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = clf.TrainContext(ctx, cs)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, clf.Tree(), "failed training keeps the previous state")

	_, err = clf.CrossValidateContext(ctx, 2, cs)
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, clf.TrainContext(context.Background(), cs))
	assert.NotNil(t, clf.Tree())
}

func TestLabelIndex(t *testing.T) {
	li, err := simbinary.NewLabelIndex([]string{"x", "y"})
	require.NoError(t, err)
	i, ok := li.Index("y")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = li.Index("z")
	assert.False(t, ok)
	_, ok = li.Label(2)
	assert.False(t, ok)

	_, err = simbinary.NewLabelIndex([]string{"x", "x"})
	assert.ErrorIs(t, err, simbinary.ErrData)
}
