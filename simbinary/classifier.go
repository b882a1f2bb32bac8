package simbinary

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/kernel"
	"github.com/katalvlaran/treesvm/prim_kruskal"
)

// Classifier is a SimBinarySVM with fixed hyperparameters.
// It is not safe for concurrent Train calls; a trained Classifier may be
// used for concurrent Predict/Test calls.
type Classifier struct {
	gamma float64
	c     float64
	opts  []Option
	o     Options

	index *LabelIndex
	sep   *Separability
	mst   *MST
	tree  *Tree
	dim   int
}

// Result aggregates a Test run.
type Result struct {
	Total      int
	Errors     int
	Iterations int // decision functions evaluated over all samples
}

// Accuracy returns (Total − Errors) / Total, or 0 for an empty run.
func (r Result) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(r.Total-r.Errors) / float64(r.Total)
}

// AvgIterations returns Iterations / Total, or 0 for an empty run.
func (r Result) AvgIterations() float64 {
	if r.Total == 0 {
		return 0
	}

	return float64(r.Iterations) / float64(r.Total)
}

// New returns an untrained classifier with RBF width gamma and penalty c.
func New(gamma, c float64, opts ...Option) (*Classifier, error) {
	if err := kernel.ValidateGamma(gamma); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	o := buildOptions(c, opts)
	if err := o.Solver.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if err := o.Quick.Validate(); err != nil {
		return nil, fmt.Errorf("%w: quick: %v", ErrInvalidParams, err)
	}
	if !prim_kruskal.ValidMethod(o.MSTMethod) {
		return nil, fmt.Errorf("%w: mst method %q", ErrInvalidParams, o.MSTMethod)
	}

	return &Classifier{gamma: gamma, c: c, opts: opts, o: o}, nil
}

// Gamma returns the RBF width.
func (c *Classifier) Gamma() float64 { return c.gamma }

// C returns the soft-margin penalty.
func (c *Classifier) C() float64 { return c.c }

// Train builds the separability matrix, the MST and the tree, then trains
// every internal node. A previous model is discarded only on success.
func (c *Classifier) Train(cs *dataset.ClassSet) error {
	return c.TrainContext(context.Background(), cs)
}

// TrainContext is Train with cancellation. ctx is checked between pair
// scores, during tree splits and between node trainings; on cancellation
// the classifier keeps its previous state and ctx.Err() is returned.
func (c *Classifier) TrainContext(ctx context.Context, cs *dataset.ClassSet) error {
	if cs == nil || cs.NumClasses() < 2 {
		n := 0
		if cs != nil {
			n = cs.NumClasses()
		}
		return fmt.Errorf("%w: got %d", ErrTooFewClasses, n)
	}
	log := c.o.Logger
	start := time.Now()

	s, err := newSampleSet(cs, c.gamma)
	if err != nil {
		return err
	}
	defer s.gram.Release()

	sep, err := findSeparability(ctx, s, c.o.Quick, log)
	if err != nil {
		return err
	}
	mst, err := buildMST(ctx, sep, c.o.MSTMethod)
	if err != nil {
		return err
	}
	log.Info().
		Int("edges", len(mst.Edges)).
		Float64("total_weight", mst.Total).
		Str("method", c.o.MSTMethod).
		Msg("MST built")

	tree, err := constructTree(ctx, mst)
	if err != nil {
		return err
	}
	if err = tree.train(ctx, s, c.o.Solver, log); err != nil {
		return err
	}

	c.index, c.sep, c.mst, c.tree, c.dim = s.index, sep, mst, tree, s.dim
	log.Info().
		Int("classes", s.index.Len()).
		Int("samples", cs.Len()).
		Int("nodes", tree.Len()).
		Int("depth", tree.Depth()).
		Dur("elapsed", time.Since(start)).
		Msg("Training complete")

	return nil
}

// Predict returns the label for one feature vector.
func (c *Classifier) Predict(x []float64) (string, error) {
	l, _, err := c.predict(x)
	return l, err
}

func (c *Classifier) predict(x []float64) (string, int, error) {
	if c.tree == nil {
		return "", 0, ErrNotTrained
	}
	if len(x) != c.dim {
		return "", 0, fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, len(x), c.dim)
	}
	if err := kernel.CheckFinite(x); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrNonFinite, err)
	}
	class, evals, err := c.tree.Predict(x)
	if err != nil {
		return "", evals, err
	}
	label, ok := c.index.Label(class)
	if !ok {
		return "", evals, fmt.Errorf("%w: leaf class %d", ErrTreeStructure, class)
	}

	return label, evals, nil
}

// Test predicts every sample of cs and counts mistakes. Samples whose label
// the classifier never saw always count as errors.
func (c *Classifier) Test(cs *dataset.ClassSet) (Result, error) {
	var r Result
	if c.tree == nil {
		return r, ErrNotTrained
	}
	if cs == nil {
		return r, fmt.Errorf("%w: nil class set", ErrData)
	}
	for _, label := range cs.Labels() {
		for _, x := range cs.Samples(label) {
			got, evals, err := c.predict(x)
			if err != nil {
				return r, err
			}
			r.Total++
			r.Iterations += evals
			if got != label {
				r.Errors++
			}
		}
	}
	c.o.Logger.Info().
		Int("total", r.Total).
		Int("errors", r.Errors).
		Float64("accuracy", r.Accuracy()).
		Msg("Test complete")

	return r, nil
}

// Labels returns the class labels ordered by class index, or nil before
// training.
func (c *Classifier) Labels() []string {
	if c.index == nil {
		return nil
	}

	return c.index.Labels()
}

// Separability returns the matrix of the last successful Train.
func (c *Classifier) Separability() *Separability { return c.sep }

// MST returns the spanning tree of the last successful Train.
func (c *Classifier) MST() *MST { return c.mst }

// Tree returns the decision tree of the last successful Train.
func (c *Classifier) Tree() *Tree { return c.tree }
