package simbinary

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/dfs"
	"github.com/katalvlaran/treesvm/matrix"
	"github.com/katalvlaran/treesvm/prim_kruskal"
)

// MST is the spanning tree over class indices.
// Adjacency holds the tree weights at [a][b] and [b][a] and +Inf elsewhere,
// the diagonal included.
type MST struct {
	Edges     []core.Edge
	Adjacency *matrix.Dense
	Total     float64
}

// Len returns the number of classes the tree spans.
func (m *MST) Len() int { return m.Adjacency.Rows() }

// Graph returns the tree as a core.Graph over 0..Len()-1 with the original
// edge IDs.
func (m *MST) Graph() (*core.Graph, error) {
	return core.FromEdges(m.Len(), m.Edges)
}

// BuildMST reads sep as a complete graph (one edge per i<j, inserted in
// lexical pair order) and reduces it with the given prim_kruskal method.
// Ties resolve toward the earlier pair.
func BuildMST(sep *Separability, method string) (*MST, error) {
	return buildMST(context.Background(), sep, method)
}

func buildMST(ctx context.Context, sep *Separability, method string) (*MST, error) {
	if sep == nil || sep.Matrix == nil || sep.Index == nil {
		return nil, ErrTooFewClasses
	}
	if !prim_kruskal.ValidMethod(method) {
		return nil, fmt.Errorf("%w: mst method %q", ErrInvalidParams, method)
	}
	k := sep.Index.Len()
	if k < 1 {
		return nil, ErrTooFewClasses
	}

	g, err := prim_kruskal.BuildComplete(k, sep.Matrix.At)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTraining, err)
	}
	edges, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTreeStructure, err)
	}
	tg, err := core.FromEdges(k, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTreeStructure, err)
	}
	ok, err := dfs.IsTree(tg, dfs.WithContext(ctx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrTreeStructure, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %d edges for %d classes do not form a spanning tree", ErrTreeStructure, len(edges), k)
	}

	pairs := make([]matrix.WeightedPair, len(edges))
	for i, e := range edges {
		pairs[i] = matrix.WeightedPair{A: e.From, B: e.To, Weight: e.Weight}
	}
	adj, err := matrix.AdjacencyFromPairs(k, pairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTraining, err)
	}

	return &MST{Edges: edges, Adjacency: adj, Total: total}, nil
}
