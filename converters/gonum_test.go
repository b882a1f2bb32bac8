package converters_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesvm/converters"
	"github.com/katalvlaran/treesvm/core"
)

func square() *core.Graph {
	g := core.NewWithVertices(4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)
	_, _ = g.AddEdge(3, 0, 4)

	return g
}

func TestToGonum(t *testing.T) {
	wg, err := converters.ToGonum(square(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, wg.Nodes().Len())

	w, ok := wg.Weight(0, 3)
	assert.True(t, ok)
	assert.Equal(t, 4.0, w)
	w, ok = wg.Weight(0, 2)
	assert.False(t, ok)
	assert.True(t, math.IsInf(w, 1))

	// either orientation reports the same weight
	e := wg.WeightedEdge(3, 0)
	require.NotNil(t, e)
	assert.Equal(t, 4.0, e.Weight())
	assert.Equal(t, int64(3), e.From().ID())
}

func TestDOT(t *testing.T) {
	g := core.NewWithVertices(3)
	_, _ = g.AddEdge(0, 1, 0.5)
	_, _ = g.AddEdge(1, 2, 0.25)

	out, err := converters.DOT(g, "mst", []string{"low", "mid", "high"})
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, "graph mst {")
	for _, want := range []string{"low", "mid", "high", "weight=0.5", "weight=0.25"} {
		assert.Contains(t, s, want)
	}
	assert.Equal(t, 2, strings.Count(s, "--"))
}

func TestErrors(t *testing.T) {
	loop := core.NewGraph(core.WithLoops())
	_, _ = loop.AddEdge(2, 2, 1)
	_, err := converters.ToGonum(loop, nil)
	assert.ErrorIs(t, err, converters.ErrSelfLoop)

	_, err = converters.ToGonum(nil, nil)
	assert.ErrorIs(t, err, converters.ErrNilGraph)

	_, err = converters.DOT(square(), "g", []string{"a", "b"})
	assert.ErrorIs(t, err, converters.ErrMissingLabel)
}
