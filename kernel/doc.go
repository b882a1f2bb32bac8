// Package kernel implements the Gaussian RBF kernel and a lazily materialized
// Gram matrix over an ordered vector set.
//
// K(a, b) = exp(−γ‖a − b‖²)
//
// Gram rows are computed on first touch and cached in a gonum mat.SymDense,
// so a solver that only ever looks at a few rows pays for those rows only.
// Entries are symmetric, the diagonal is exactly 1, and every value lies in (0, 1]
// (underflow aside).
package kernel
