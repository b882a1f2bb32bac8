// Package svm trains a binary soft-margin C-SVM with an RBF kernel.
//
// The solver is a sequential minimal optimization over the dual
//
//	min ½ αᵀQα − eᵀα   s.t. yᵀα = 0, 0 ≤ α_i ≤ C,   Q_ij = y_i y_j K(x_i, x_j)
//
// using maximal-violating-pair selection with second-order information for
// the second index. The gradient is maintained incrementally, so each step
// touches two kernel rows.
//
// Kernel rows are read through the Kernel interface; *kernel.Gram satisfies it
// and caches rows across every model trained on the same data.
package svm
