// Package core provides a small, thread-safe, undirected weighted Graph over
// integer vertex IDs.
//
// In treesvm the vertices are class indices (0..K-1) and edge weights are
// pairwise separability scores. The Graph is the working structure the MST
// builder and the tree constructor operate on.
//
// Guarantees:
//
//   - Deterministic iteration: Vertices() and NeighborIDs() return ascending IDs,
//     Edges() returns edges in insertion order (ascending Edge.ID).
//   - Edge IDs are assigned monotonically from 0, so "first inserted" is always
//     recoverable from the ID. MST and tree tie-breaking rely on this.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//     Lock order is always muVert -> muEdgeAdj.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id int) error                                  // O(1)
//	HasVertex(id int) bool                                   // O(1)
//	AddEdge(from, to int, weight float64) (int, error)       // O(1)
//	FromEdges(n int, edges []Edge) (*Graph, error)           // O(E)
//	Edges() []*Edge                                          // O(E log E)
//	NeighborIDs(id int) ([]int, error)                       // O(d log d)
//	InducedSubgraph(keep map[int]bool) *Graph                // O(V+E)
//
// Errors:
//
//	ErrInvalidVertex       - negative vertex ID.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - NaN weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - a second edge between the same endpoints.
package core
