// SPDX-License-Identifier: MIT
// Package: treesvm/builder
//
// Package builder generates synthetic labeled datasets: Gaussian clusters
// placed on simple layouts, one cluster per class.
//
// Generators are deterministic for a fixed seed. Layouts keep clusters far
// apart relative to their spread by default, which makes the data separable
// by an RBF SVM; that is what the classifier tests rely on.
//
//	cs, err := builder.Circle(6, 10, builder.WithSeed(1))
//	cs, err := builder.Grid(2, 3, 10, builder.WithSpacing(5), builder.WithSpread(0.5))
package builder
