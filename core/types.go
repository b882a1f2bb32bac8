package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates a negative vertex ID.
	ErrInvalidVertex = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a NaN weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected weighted connection between two vertices.
//
// ID is assigned in insertion order, starting at 0. From/To keep the
// orientation the edge was inserted with; it carries no direction.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID int

	// From is the first endpoint as inserted.
	From int

	// To is the second endpoint as inserted.
	To int

	// Weight is the edge cost (separability score for class graphs).
	Weight float64
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected weighted graph over integer vertex IDs.
//
// muVert protects vertices; muEdgeAdj protects edges, adjacency and nextEdgeID.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID int              // next edge ID, monotonic
	vertices   map[int]struct{} // vertex set
	edges      map[int]*Edge    // edge ID → Edge

	// adjacencyList[from][to] = edge ID (mirrored for both endpoints)
	adjacencyList map[int]map[int]int
}

// NewGraph creates an empty undirected Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[int]struct{}),
		edges:         make(map[int]*Edge),
		adjacencyList: make(map[int]map[int]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewWithVertices returns a graph with vertices 0..n-1 and no edges yet.
// Callers add edges afterwards; the helper only fixes the vertex set.
func NewWithVertices(n int, opts ...GraphOption) *Graph {
	g := NewGraph(opts...)
	for v := 0; v < n; v++ {
		_ = g.AddVertex(v) // v >= 0, cannot fail
	}

	return g
}
