// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc, i.e. insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
package core

import (
	"math"
	"sort"
)

// AddEdge creates a new undirected edge between from and to.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Assign the next edge ID, store the edge, mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	// 1) Input validation
	if from < 0 || to < 0 {
		return -1, ErrInvalidVertex
	}
	if math.IsNaN(weight) {
		return -1, ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return -1, ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return -1, err
	}
	if err := g.AddVertex(to); err != nil {
		return -1, err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, ok := g.adjacencyList[from][to]; ok {
		return -1, ErrMultiEdgeNotAllowed
	}

	// 4) Store and link adjacency
	eid := g.nextEdgeID
	g.nextEdgeID++
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacencyList[from][to] = eid
	g.adjacencyList[to][from] = eid

	return eid, nil
}

// insertEdge stores a copy of e keeping its ID. Caller holds muEdgeAdj and
// guarantees both endpoints are registered.
func (g *Graph) insertEdge(e Edge) {
	cp := e
	g.edges[e.ID] = &cp
	g.adjacencyList[e.From][e.To] = e.ID
	g.adjacencyList[e.To][e.From] = e.ID
	if e.ID >= g.nextEdgeID {
		g.nextEdgeID = e.ID + 1
	}
}

// Edges returns all edges sorted by Edge.ID asc (insertion order).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
