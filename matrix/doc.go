// Package matrix provides the small dense-matrix toolkit treesvm needs for
// class-level structures: the K×K separability matrix and the K×K MST
// adjacency view.
//
// Dense is a row-major float64 matrix with bounds-checked At/Set. The
// adjacency helpers encode "no edge" as +Inf, so a spanning tree over K
// vertices shows up as exactly 2(K−1) finite off-diagonal entries.
//
// Kernel (Gram) matrices are sample-level and much larger; they live in the
// kernel package on top of gonum.
package matrix
