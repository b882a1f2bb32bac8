// Package prim_kruskal computes Minimum Spanning Trees over an undirected,
// weighted *core.Graph (Kruskal, Prim) or over a dense distance matrix (Dense).
//
// What & Why
//
//   - An MST of a connected graph G = (V, E) is a subset T ⊆ E with |V|−1 edges
//     that spans V with minimum total weight.
//   - In treesvm the vertices are classes and weights are separability scores;
//     the MST is the skeleton that the decision tree is carved from by
//     repeatedly cutting its heaviest edge.
//
// Algorithms Provided
//
//   - Kruskal(g) - stable sort of all edges by weight, then union-find.
//     Time O(E log E), space O(V + E).
//   - Prim(g, root) - grow from root with a min-heap of candidate edges.
//     Time O(E log V), space O(V + E).
//   - Dense(dist) - O(n²) Prim over an n×n matrix; best for complete graphs.
//
// Determinism
//
//	Ties are always resolved by Edge.ID, i.e. by insertion order in core.Graph:
//	Kruskal through a stable sort over Edges() (already ID-ordered), Prim through
//	an explicit (weight, ID) heap ordering, Dense through first-seen index order
//	with IDs derived by PairID. Edges with +Inf weight count as absent.
//
// Error Conditions
//
//   - ErrInvalidGraph   : graph is nil, or unknown method in Compute.
//   - ErrRootNotFound   : Prim root not in the graph.
//   - ErrDisconnected   : |V| == 0, or the graph does not span all vertices.
//   - ErrNonSquare      : Dense got a non-square matrix.
package prim_kruskal
