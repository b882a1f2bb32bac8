package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/matrix"
)

// ErrInvalidGraph indicates a nil graph or an unknown MST method.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrRootNotFound indicates that Prim's root vertex is absent.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that no spanning tree covers all vertices.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrNonSquare indicates Dense got a non-square distance matrix.
var ErrNonSquare = errors.New("prim_kruskal: distance matrix is not square")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodDense selects the O(n²) matrix form of Prim.
const MethodDense = "dense"

// MSTOptions configures which MST algorithm to run.
type MSTOptions struct {
	// Method to use: MethodPrim, MethodKruskal or MethodDense.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused otherwise.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for Kruskal with root 0.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal, Root: 0}
}

// ValidMethod reports whether m names a supported algorithm.
func ValidMethod(m string) bool {
	switch m {
	case MethodKruskal, MethodPrim, MethodDense:
		return true
	default:
		return false
	}
}

// Compute selects and runs the MST algorithm based on opts.
// For MethodDense the graph is first projected onto an adjacency matrix;
// the graph's edge IDs must then follow PairID order (see BuildComplete).
func Compute(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	case MethodDense:
		if graph == nil {
			return nil, 0, ErrInvalidGraph
		}
		n := graph.VertexCount()
		if n == 0 {
			return nil, 0, ErrDisconnected
		}
		pairs := make([]matrix.WeightedPair, 0, graph.EdgeCount())
		for _, e := range graph.Edges() {
			pairs = append(pairs, matrix.WeightedPair{A: e.From, B: e.To, Weight: e.Weight})
		}
		dist, err := matrix.AdjacencyFromPairs(n, pairs)
		if err != nil {
			return nil, 0, err
		}
		return Dense(dist)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

// PairID returns the edge ID that BuildComplete assigns to the pair (i, j),
// i.e. the row-major position of min(i,j),max(i,j) in the strict upper
// triangle of an n×n matrix.
func PairID(i, j, n int) int {
	if i > j {
		i, j = j, i
	}
	// rows 0..i-1 contribute (n-1) + (n-2) + ... + (n-i) pairs
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// BuildComplete builds a complete graph over 0..n-1 from a symmetric weight
// function, inserting pairs in row-major upper-triangle order so that
// Edge.ID == PairID(i, j, n).
func BuildComplete(n int, weight func(i, j int) (float64, error)) (*core.Graph, error) {
	g := core.NewWithVertices(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w, err := weight(i, j)
			if err != nil {
				return nil, err
			}
			if _, err = g.AddEdge(i, j, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
