package simbinary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treesvm/kernel"
)

// Predict walks from the root to a leaf and returns the leaf's class index
// together with the number of decision functions evaluated on the way.
func (t *Tree) Predict(x []float64) (int, int, error) {
	if t == nil || len(t.nodes) == 0 {
		return 0, 0, ErrNotTrained
	}

	id := t.Root()
	evals := 0
	for {
		switch n := t.nodes[id].(type) {
		case *Leaf:
			return n.Class, evals, nil
		case *Internal:
			if n.Model == nil {
				return 0, evals, fmt.Errorf("%w: node %d has no model", ErrNotTrained, id)
			}
			f, err := n.Model.Decision(x)
			if err != nil {
				switch {
				case errors.Is(err, kernel.ErrDimensionMismatch):
					return 0, evals, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
				case errors.Is(err, kernel.ErrNonFinite):
					return 0, evals, fmt.Errorf("%w: %v", ErrNonFinite, err)
				}
				return 0, evals, err
			}
			evals++
			if f >= 0 {
				id = n.Left
			} else {
				id = n.Right
			}
		default:
			return 0, evals, fmt.Errorf("%w: node %d is empty", ErrTreeStructure, id)
		}
	}
}
