package simbinary

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/matrix"
	"github.com/katalvlaran/treesvm/svm"
)

// Separability is the K×K matrix of pairwise class scores together with the
// label numbering it was built under. Entry [i][j] == [j][i]; the diagonal
// is 0 and carries no meaning.
type Separability struct {
	Matrix *matrix.Dense
	Index  *LabelIndex
}

// FindSeparability scores every pair of classes in cs with a quick RBF SVM
// of width gamma and penalty c. Requires at least two non-empty classes.
func FindSeparability(cs *dataset.ClassSet, gamma, c float64, opts ...Option) (*Separability, error) {
	o := buildOptions(c, opts)
	if cs == nil || cs.NumClasses() < 2 {
		return nil, ErrTooFewClasses
	}
	s, err := newSampleSet(cs, gamma)
	if err != nil {
		return nil, err
	}
	defer s.gram.Release()

	return findSeparability(context.Background(), s, o.Quick, o.Logger)
}

func findSeparability(ctx context.Context, s *sampleSet, quick svm.Params, logger zerolog.Logger) (*Separability, error) {
	k := s.index.Len()
	m, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTooFewClasses, err)
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if err = ctx.Err(); err != nil {
				return nil, err
			}
			score, iters, err := pairScore(s, i, j, quick)
			if err != nil {
				return nil, err
			}
			if err = m.SetSym(i, j, score); err != nil {
				return nil, fmt.Errorf("%w: pair (%d,%d): %v", ErrTraining, i, j, err)
			}
			logger.Debug().
				Int("a", i).
				Int("b", j).
				Float64("score", score).
				Int("iterations", iters).
				Msg("Pair separability")
		}
	}

	logger.Info().Int("classes", k).Int("pairs", k*(k-1)/2).Msg("Separability matrix built")

	return &Separability{Matrix: m, Index: s.index}, nil
}

// pairScore trains classes a (+1) against b (−1) and returns the mean hinge
// loss on the pair's own samples.
func pairScore(s *sampleSet, a, b int, quick svm.Params) (float64, int, error) {
	idx, y := s.binaryProblem([]int{a}, []int{b})
	model, err := svm.Train(s.gram, idx, y, quick)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: pair (%d,%d): %v", ErrTraining, a, b, err)
	}

	loss := 0.0
	for t, i := range idx {
		f := model.DecisionIndex(s.gram, i)
		loss += math.Max(0, 1-float64(y[t])*f)
	}

	return loss / float64(len(idx)), model.Iterations, nil
}
