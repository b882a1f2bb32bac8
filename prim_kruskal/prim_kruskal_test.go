package prim_kruskal_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/treesvm/converters"
	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// buildTriangle constructs 0-1 (1), 1-2 (2), 0-2 (3); MST = {0-1, 1-2}, weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 3)

	return g
}

// buildRandomComplete creates a complete graph over n vertices with weights in
// [0,1) from a fixed seed, inserted in PairID order.
func buildRandomComplete(n int, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g, _ := prim_kruskal.BuildComplete(n, func(_, _ int) (float64, error) {
		return r.Float64(), nil
	})

	return g
}

func TestValidation_EmptyOrNil(t *testing.T) {
	g := core.NewGraph()

	_, _, err := prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(g, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, _, err = prim_kruskal.Dense(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, _, err = prim_kruskal.Compute(buildTriangle(), prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	assert.False(t, prim_kruskal.ValidMethod("boruvka"))
}

func TestPrim_MissingRoot(t *testing.T) {
	_, _, err := prim_kruskal.Prim(buildTriangle(), 7)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)
}

func TestSingleVertex(t *testing.T) {
	g := core.NewWithVertices(1)
	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, prim_kruskal.MethodDense} {
		edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
		require.NoError(t, err, m)
		assert.Empty(t, edges, m)
		assert.Zero(t, total, m)
	}
}

func TestDisconnected(t *testing.T) {
	g := core.NewWithVertices(4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(1, 2, math.Inf(1)) // absent

	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, prim_kruskal.MethodDense} {
		_, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(m))
		assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected, m)
	}
}

func TestTriangle_AllMethods(t *testing.T) {
	for _, m := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, prim_kruskal.MethodDense} {
		mst, total, err := prim_kruskal.Compute(buildTriangle(), prim_kruskal.WithMethod(m))
		require.NoError(t, err, m)
		assert.Equal(t, 3.0, total, m)
		require.Len(t, mst, 2, m)

		names := make(map[string]bool, 2)
		for _, e := range mst {
			u, v := e.From, e.To
			if u > v {
				u, v = v, u
			}
			names[fmt.Sprintf("%d-%d", u, v)] = true
		}
		assert.True(t, names["0-1"], m)
		assert.True(t, names["1-2"], m)
	}
}

// TestTies_InsertionOrderWins verifies that with all weights equal the MST
// keeps the first-inserted edges.
func TestTies_InsertionOrderWins(t *testing.T) {
	g, err := prim_kruskal.BuildComplete(4, func(_, _ int) (float64, error) { return 0.5, nil })
	require.NoError(t, err)

	mst, _, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	// (0,1), (0,2), (0,3) are IDs 0,1,2 and already span the graph
	ids := []int{mst[0].ID, mst[1].ID, mst[2].ID}
	assert.Equal(t, []int{0, 1, 2}, ids)

	mstP, _, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{mstP[0].ID, mstP[1].ID, mstP[2].ID})

	mstD, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodDense))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{mstD[0].ID, mstD[1].ID, mstD[2].ID})
}

// TestRandomComplete_MethodsAgree compares total weights across algorithms.
func TestRandomComplete_MethodsAgree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := buildRandomComplete(12, seed)

		_, tk, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		mp, tp, err := prim_kruskal.Prim(g, 5)
		require.NoError(t, err)
		md, td, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(prim_kruskal.MethodDense))
		require.NoError(t, err)

		assert.InDelta(t, tk, tp, 1e-12)
		assert.InDelta(t, tk, td, 1e-12)
		assert.Len(t, mp, 11)
		assert.Len(t, md, 11)

		// Dense IDs must refer to the same edges as the graph
		all := g.Edges()
		for _, e := range md {
			require.Less(t, e.ID, len(all))
			assert.Equal(t, all[e.ID].Weight, e.Weight)
		}
	}
}

func TestPairID(t *testing.T) {
	const n = 5
	want := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, want, prim_kruskal.PairID(i, j, n))
			assert.Equal(t, want, prim_kruskal.PairID(j, i, n))
			want++
		}
	}
}

// TestAgreesWithGonum checks totals against gonum's Kruskal on the same graph.
func TestAgreesWithGonum(t *testing.T) {
	for seed := int64(7); seed <= 9; seed++ {
		g := buildRandomComplete(9, seed)
		_, total, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		wg, err := converters.ToGonum(g, nil)
		require.NoError(t, err)
		dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
		want := path.Kruskal(dst, wg)
		assert.InDelta(t, want, total, 1e-12)
	}
}
