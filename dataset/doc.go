// Package dataset loads labeled feature vectors and groups them by class.
//
// A Table is the flat row list produced by Load. A ClassSet groups the rows
// by label, keeping labels in first-seen order. That order is what the
// classifier uses to assign class indices, so two runs over the same file
// always number classes the same way.
package dataset
