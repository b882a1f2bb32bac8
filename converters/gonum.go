package converters

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/treesvm/core"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: nil graph")

	// ErrSelfLoop indicates a core self-loop, which gonum simple graphs reject.
	ErrSelfLoop = errors.New("converters: simple graphs cannot hold self-loops")

	// ErrMissingLabel indicates a vertex with no entry in the label list.
	ErrMissingLabel = errors.New("converters: vertex has no label")
)

// classNode is a gonum node that renders as its label in DOT output.
type classNode struct {
	id   int64
	name string
}

func (n classNode) ID() int64      { return n.id }
func (n classNode) DOTID() string  { return n.name }
func (n classNode) String() string { return n.name }

// weightedEdge carries its weight as a DOT attribute.
type weightedEdge struct {
	from, to classNode
	w        float64
}

func (e weightedEdge) From() graph.Node { return e.from }
func (e weightedEdge) To() graph.Node   { return e.to }
func (e weightedEdge) Weight() float64  { return e.w }

func (e weightedEdge) ReversedEdge() graph.Edge {
	return weightedEdge{from: e.to, to: e.from, w: e.w}
}

func (e weightedEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "weight", Value: strconv.FormatFloat(e.w, 'g', -1, 64)}}
}

// ToGonum copies g into a weighted undirected gonum graph. Absent edges
// report weight +Inf and self weight 0, matching matrix.AdjacencyFromPairs.
// labels, if non-nil, names vertex v as labels[v]; otherwise the decimal ID
// is used.
func ToGonum(g *core.Graph, labels []string) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	nodes := make(map[int]classNode, g.VertexCount())
	for _, v := range g.Vertices() {
		n := classNode{id: int64(v), name: strconv.Itoa(v)}
		if labels != nil {
			if v >= len(labels) {
				return nil, fmt.Errorf("%w: %d of %d labels", ErrMissingLabel, v, len(labels))
			}
			n.name = labels[v]
		}
		nodes[v] = n
		dst.AddNode(n)
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("%w: edge %d on %d", ErrSelfLoop, e.ID, e.From)
		}
		dst.SetWeightedEdge(weightedEdge{from: nodes[e.From], to: nodes[e.To], w: e.Weight})
	}

	return dst, nil
}

// DOT renders g as an undirected Graphviz graph called name, with vertices
// named by labels (see ToGonum) and a weight attribute on every edge.
func DOT(g *core.Graph, name string, labels []string) ([]byte, error) {
	wg, err := ToGonum(g, labels)
	if err != nil {
		return nil, err
	}

	return dot.Marshal(wg, name, "", "  ")
}
