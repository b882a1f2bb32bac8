package dfs

import (
	"fmt"

	"github.com/katalvlaran/treesvm/core"
)

type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from startID. Neighbors are explored
// in ascending ID order, so the result is deterministic.
//
// Complexity: O(V + E) plus neighbor sorting in core.
func DFS(g *core.Graph, startID int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make(map[int]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if err := w.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

func (w *dfsWalker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	nbrs, err := w.graph.NeighborIDs(id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", id, err)
	}
	for _, nid := range nbrs {
		if nid == id || w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err = w.traverse(nid, depth+1); err != nil {
			return err
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
