// Package treesvm builds hierarchical multi-class classifiers out of binary
// RBF-kernel SVMs: classes are arranged in a tree grown from the minimum
// spanning tree of pairwise class separability.
//
// What is inside?
//
//	• Kernels: RBF function plus a lazily filled, shared Gram matrix
//	• Solver: SMO binary SVM with second-order working-set selection
//	• Graph primitives: core graphs, BFS/DFS, Prim and Kruskal MSTs
//	• Classifier: separability matrix, class MST, binary tree, prediction
//	• Evaluation: accuracy, k-fold cross-validation, concurrent (γ, C) sweeps
//
// Layout:
//
//	builder/      - synthetic labeled datasets (circle, grid, clusters)
//	cmd/treesvm/  - command line: train, cv, sweep
//	config/       - viper-backed configuration and zerolog setup
//	converters/   - core.Graph <-> gonum graph adapters
//	core/         - thread-safe graph with integer vertices and stable edge IDs
//	bfs/, dfs/    - traversals, connected components, tree checks
//	dataset/      - CSV loading via gota, label adapters, class sets
//	kernel/       - RBF kernel and Gram cache
//	matrix/       - dense matrices for separability and MST adjacency
//	prim_kruskal/ - minimum spanning trees
//	simbinary/    - the hierarchical classifier
//	svm/          - binary SVM training and decision functions
//	sweep/        - grid search over (γ, C) with JSON reports
//
// Quick picture for four classes whose MST is a path a─b─c─d with the
// heaviest edge b─c:
//
//	        {a,b,c,d}
//	        /       \
//	     {a,b}     {c,d}
//	     /   \     /   \
//	    a     b   c     d
//
// Each internal node holds one SVM separating its left classes (+1) from
// its right classes (−1).
package treesvm
