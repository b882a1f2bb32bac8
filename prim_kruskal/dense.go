package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/matrix"
)

// Dense computes an MST on the complete graph given by the n×n matrix dist,
// where +Inf marks a missing edge. It grows from vertex 0 and, among equal
// candidates, keeps the first vertex in index order. Returned edges carry
// From = tree parent, To = newly attached vertex and ID = PairID(From, To, n).
//
// Time:  O(n²). Space: O(n).
func Dense(dist *matrix.Dense) ([]core.Edge, float64, error) {
	if dist == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := dist.Rows()
	if dist.Cols() != n {
		return nil, 0, ErrNonSquare
	}
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	inMST := make([]bool, n)
	bestCost := make([]float64, n)
	parents := make([]int, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parents[v] = -1
	}
	bestCost[0] = 0

	mst := make([]core.Edge, 0, n-1)
	var total float64
	for it := 0; it < n; it++ {
		// (a) vertex outside the tree with minimal bestCost
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			return nil, 0, ErrDisconnected
		}
		// (b) attach u
		inMST[u] = true
		if p := parents[u]; p >= 0 {
			mst = append(mst, core.Edge{ID: PairID(p, u, n), From: p, To: u, Weight: minW})
			total += minW
		}
		// (c) relax
		for v := 0; v < n; v++ {
			if inMST[v] {
				continue
			}
			w, _ := dist.At(u, v) // indices in range by construction
			if w < bestCost[v] {
				bestCost[v] = w
				parents[v] = u
			}
		}
	}

	return mst, total, nil
}
