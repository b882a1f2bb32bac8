package prim_kruskal

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/treesvm/core"
)

// Prim computes the MST of an undirected, weighted graph by growing outwards
// from root using a min-heap ordered by (Weight, ID).
//
// Steps:
//  1. Validate: graph != nil; |V|==0 → ErrDisconnected; root must exist.
//  2. Mark root visited, push its incident edges.
//  3. Pop the lightest edge; skip if its far end is visited; otherwise take it
//     and push the far end's edges.
//  4. Fewer than |V|-1 edges at the end → ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root int) ([]core.Edge, float64, error) {
	if graph == nil {
		return nil, 0, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if !graph.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[int]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(from int) error {
		nbrs, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.Other(from)] && !math.IsInf(e.Weight, 1) {
				heap.Push(pq, pqItem{edge: e, to: e.Other(from)})
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(pqItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		mst = append(mst, *it.edge)
		totalWeight += it.edge.Weight
		if err := push(it.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// pqItem is a candidate edge plus the endpoint it would add to the tree.
type pqItem struct {
	edge *core.Edge
	to   int
}

// edgePQ implements heap.Interface for a min-heap ordered by (Weight, ID).
type edgePQ []pqItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].edge.ID < pq[j].edge.ID
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
