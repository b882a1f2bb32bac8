package simbinary

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/treesvm/svm"
)

// train attaches a full SVM to every internal node, left classes as +1 and
// right classes as −1. Nodes are visited once, in arena order.
func (t *Tree) train(ctx context.Context, s *sampleSet, p svm.Params, logger zerolog.Logger) error {
	for _, id := range t.Internals() {
		if err := ctx.Err(); err != nil {
			return err
		}
		in := t.nodes[id].(*Internal)
		left, right := t.Classes(in.Left), t.Classes(in.Right)

		idx, y := s.binaryProblem(left, right)
		pos := len(idx) - countNeg(y)
		if pos == 0 || pos == len(idx) {
			return fmt.Errorf("%w: node %d (left %v, right %v)", ErrEmptySuperClass, id, left, right)
		}

		model, err := svm.Train(s.gram, idx, y, p)
		if err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrTraining, id, err)
		}
		if !model.Converged {
			logger.Warn().
				Int("node", int(id)).
				Int("iterations", model.Iterations).
				Msg("Solver hit iteration cap")
		}
		in.Model = model

		logger.Debug().
			Int("node", int(id)).
			Ints("left", left).
			Ints("right", right).
			Int("samples", len(idx)).
			Int("support_vectors", len(model.SupportVectors)).
			Int("iterations", model.Iterations).
			Msg("Node trained")
	}

	return nil
}

func countNeg(y []int8) int {
	n := 0
	for _, v := range y {
		if v < 0 {
			n++
		}
	}

	return n
}
