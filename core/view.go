package core

// InducedSubgraph returns a new graph containing only the vertices in keep and
// the edges whose both endpoints are kept. Edge IDs are preserved, so the
// insertion order of the parent graph still decides ties in the subgraph.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	sub := NewGraph()
	sub.allowLoops = g.allowLoops
	for _, v := range g.Vertices() {
		if keep[v] {
			_ = sub.AddVertex(v) // v came from g, already valid
		}
	}

	sub.muEdgeAdj.Lock()
	defer sub.muEdgeAdj.Unlock()
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			sub.insertEdge(*e)
		}
	}

	return sub
}

// FromEdges builds a graph over vertices 0..n-1 holding exactly the given edges,
// keeping their IDs. It fails if an edge references a vertex outside [0,n).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g := NewWithVertices(n)
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrVertexNotFound
		}
		if e.From == e.To {
			return nil, ErrLoopNotAllowed
		}
		if _, dup := g.adjacencyList[e.From][e.To]; dup {
			return nil, ErrMultiEdgeNotAllowed
		}
		g.insertEdge(e)
	}

	return g, nil
}
