package simbinary

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/treesvm/prim_kruskal"
	"github.com/katalvlaran/treesvm/svm"
)

// Options configures a Classifier.
type Options struct {
	// Logger receives stage summaries (info), per-node details (debug) and
	// solver non-convergence (warn). Defaults to zerolog.Nop().
	Logger zerolog.Logger

	// Solver configures the per-node SVMs. C is always overwritten by the
	// value passed to New.
	Solver svm.Params

	// Quick configures the throwaway pairwise SVMs used for separability.
	// C is overwritten like Solver.C.
	Quick svm.Params

	// MSTMethod is one of prim_kruskal.MethodKruskal (default), MethodPrim
	// or MethodDense.
	MSTMethod string
}

// Option mutates Options.
type Option func(*Options)

// DefaultQuickIterations caps the separability solver.
const DefaultQuickIterations = 1000

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	quick := svm.DefaultParams()
	quick.Tolerance = 1e-2
	quick.MaxIterations = DefaultQuickIterations

	return Options{
		Logger:    zerolog.Nop(),
		Solver:    svm.DefaultParams(),
		Quick:     quick,
		MSTMethod: prim_kruskal.MethodKruskal,
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithSolverParams sets the per-node solver parameters.
func WithSolverParams(p svm.Params) Option {
	return func(o *Options) { o.Solver = p }
}

// WithQuickParams sets the separability solver parameters.
func WithQuickParams(p svm.Params) Option {
	return func(o *Options) { o.Quick = p }
}

// WithMSTMethod selects the spanning tree algorithm.
func WithMSTMethod(m string) Option {
	return func(o *Options) { o.MSTMethod = m }
}

func buildOptions(c float64, opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Solver.C = c
	o.Quick.C = c

	return o
}
