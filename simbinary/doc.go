// Package simbinary implements SimBinarySVM, a hierarchical multi-class SVM.
//
// Training runs four stages:
//
//  1. Separability: a quick binary SVM is trained for every pair of classes
//     and scored by its mean hinge loss on the pair. Lower means easier.
//  2. MST: the K×K separability matrix is read as a complete weighted graph
//     over class indices and reduced to a minimum spanning tree.
//  3. Tree: the MST is split at its heaviest edge, recursively, until every
//     part holds a single class. Each split becomes an internal node.
//  4. Train: every internal node gets a full binary SVM separating the
//     classes of its left subtree (+1) from those of its right subtree (−1).
//
// Prediction walks from the root, going left when the node's decision value
// is ≥ 0, until it reaches a leaf.
//
// Class indices are assigned in first-seen label order (see dataset.ClassSet),
// so equal input gives an identical tree.
//
// Errors are grouped under three roots, ErrData, ErrTraining and ErrState.
// Every specific sentinel wraps one of them:
//
//	errors.Is(err, ErrEmptyClass) // exact cause
//	errors.Is(err, ErrData)       // category
package simbinary
