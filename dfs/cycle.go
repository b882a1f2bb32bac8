package dfs

import (
	"fmt"

	"github.com/katalvlaran/treesvm/core"
)

// FindCycle returns one simple cycle of the undirected graph g as a vertex
// sequence (first vertex not repeated), or nil if g is a forest.
// The edge a vertex was entered through is never used to close a cycle, so
// a single edge is not a 2-cycle. Self-loops count as 1-cycles.
//
// Complexity: O(V + E).
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	state := make(map[int]int, g.VertexCount())
	var path []int
	for _, v := range g.Vertices() {
		if state[v] != White {
			continue
		}
		cycle, err := visit(g, v, -1, state, &path)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}
		if cycle != nil {
			return cycle, nil
		}
	}

	return nil, nil
}

// visit explores id, entered via edge viaEdge (-1 for roots).
func visit(g *core.Graph, id, viaEdge int, state map[int]int, path *[]int) ([]int, error) {
	state[id] = Gray
	*path = append(*path, id)

	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, err)
	}
	for _, e := range edges {
		if e.ID == viaEdge {
			continue
		}
		nbr := e.Other(id)
		switch state[nbr] {
		case White:
			cycle, err := visit(g, nbr, e.ID, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			// back edge: the cycle is the path suffix starting at nbr
			p := *path
			for i := len(p) - 1; i >= 0; i-- {
				if p[i] == nbr {
					return append([]int(nil), p[i:]...), nil
				}
			}
		}
	}

	state[id] = Black
	*path = (*path)[:len(*path)-1]

	return nil, nil
}

// IsTree reports whether g is connected, acyclic and non-empty. Options are
// forwarded to the connectivity DFS.
func IsTree(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 || g.EdgeCount() != n-1 {
		return false, nil
	}
	cycle, err := FindCycle(g)
	if err != nil {
		return false, err
	}
	if cycle != nil {
		return false, nil
	}
	res, err := DFS(g, g.Vertices()[0], opts...)
	if err != nil {
		return false, err
	}

	return len(res.Visited) == n, nil
}
