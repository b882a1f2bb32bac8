package simbinary

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/treesvm/dataset"
)

// CrossValidate runs stratified k-fold validation on cs and returns the mean
// held-out accuracy. Sample n of every class goes to fold n mod k, so every
// class needs at least k samples. Each fold trains a fresh classifier with
// c's configuration; c itself is not modified.
func (c *Classifier) CrossValidate(k int, cs *dataset.ClassSet) (float64, error) {
	return c.CrossValidateContext(context.Background(), k, cs)
}

// CrossValidateContext is CrossValidate with cancellation between and
// inside fold trainings.
func (c *Classifier) CrossValidateContext(ctx context.Context, k int, cs *dataset.ClassSet) (float64, error) {
	if k < 2 {
		return 0, fmt.Errorf("%w: k=%d", ErrInvalidFolds, k)
	}
	if cs == nil || cs.NumClasses() < 2 {
		return 0, ErrTooFewClasses
	}
	for _, l := range cs.Labels() {
		if n := len(cs.Samples(l)); n < k {
			return 0, fmt.Errorf("%w: class %q has %d samples for %d folds", ErrInvalidFolds, l, n, k)
		}
	}

	accs := make([]float64, k)
	for f := 0; f < k; f++ {
		train, test, err := foldSets(cs, k, f)
		if err != nil {
			return 0, err
		}
		fold, err := New(c.gamma, c.c, c.opts...)
		if err != nil {
			return 0, err
		}
		if err = fold.TrainContext(ctx, train); err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		r, err := fold.Test(test)
		if err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		accs[f] = r.Accuracy()
		c.o.Logger.Info().Int("fold", f).Float64("accuracy", accs[f]).Msg("Fold complete")
	}

	return stat.Mean(accs, nil), nil
}

// foldSets returns the training and held-out sets for fold f.
func foldSets(cs *dataset.ClassSet, k, f int) (*dataset.ClassSet, *dataset.ClassSet, error) {
	train, test := dataset.NewClassSet(), dataset.NewClassSet()
	for _, l := range cs.Labels() {
		for n, x := range cs.Samples(l) {
			dst := train
			if n%k == f {
				dst = test
			}
			if err := dst.Add(l, x); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrData, err)
			}
		}
	}

	return train, test, nil
}
