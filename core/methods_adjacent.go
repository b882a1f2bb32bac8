// File: methods_adjacent.go
// Role: Neighborhood queries over the mirrored adjacency map.
package core

import "sort"

// Neighbors returns the edges incident to id, ordered by neighbor ID asc.
//
// Errors: ErrVertexNotFound if id is unknown.
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[id]
	out := make([]*Edge, 0, len(bucket))
	for _, eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := out[i].Other(id), out[j].Other(id)
		if oi != oj {
			return oi < oj
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id in ascending order.
//
// Errors: ErrVertexNotFound if id is unknown.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]int, 0, len(g.adjacencyList[id]))
	for nbr := range g.adjacencyList[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}
