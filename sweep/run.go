package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/simbinary"
)

// Options configures Run.
type Options struct {
	Workers    int
	Logger     zerolog.Logger
	Classifier []simbinary.Option
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the pool size (default runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger for task progress.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithClassifierOptions forwards options to every classifier.
func WithClassifierOptions(opts ...simbinary.Option) Option {
	return func(o *Options) { o.Classifier = append(o.Classifier, opts...) }
}

// Outcome is the result of one (gamma, C) task.
type Outcome struct {
	Gamma         float64       `json:"gamma"`
	C             float64       `json:"c"`
	Accuracy      float64       `json:"accuracy"`
	Total         int           `json:"total"`
	Errors        int           `json:"errors"`
	AvgIterations float64       `json:"avg_iterations"`
	Elapsed       time.Duration `json:"elapsed_ns"`
	Err           error         `json:"-"`
}

// Report collects every outcome of a run.
type Report struct {
	RunID    string
	Outcomes []Outcome // successful tasks, ordered by (gamma, C)
	Failures []Outcome // failed tasks, ordered by (gamma, C)
	Best     *Outcome  // highest accuracy; ties go to the earlier grid pair
	Elapsed  time.Duration
}

type task struct {
	gamma, c float64
}

// Run trains on train and evaluates on test for every grid pair.
// Cancelling ctx stops dispatching new tasks and aborts running trainings,
// which land in Failures. The returned report holds whatever completed,
// together with ctx.Err().
func Run(ctx context.Context, grid Grid, train, test *dataset.ClassSet, opts ...Option) (*Report, error) {
	if grid.Size() == 0 {
		return nil, ErrEmptyGrid
	}
	o := Options{Workers: runtime.NumCPU(), Logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	rep := &Report{RunID: uuid.New().String()}
	log := o.Logger.With().Str("run_id", rep.RunID).Logger()
	log.Info().
		Int("tasks", grid.Size()).
		Int("workers", o.Workers).
		Msg("Sweep started")
	start := time.Now()

	tasks := make(chan task)
	results := make(chan Outcome)
	var wg sync.WaitGroup
	wg.Add(o.Workers)
	for w := 0; w < o.Workers; w++ {
		go func() {
			defer wg.Done()
			for t := range tasks {
				results <- runTask(ctx, t, train, test, o.Classifier)
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, g := range grid.Gammas {
			for _, c := range grid.Cs {
				select {
				case <-ctx.Done():
					return
				case tasks <- task{gamma: g, c: c}:
				}
			}
		}
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if r.Err != nil {
			rep.Failures = append(rep.Failures, r)
			log.Warn().Err(r.Err).
				Float64("gamma", r.Gamma).
				Float64("c", r.C).
				Msg("Task failed")
			continue
		}
		rep.Outcomes = append(rep.Outcomes, r)
		log.Info().
			Float64("gamma", r.Gamma).
			Float64("c", r.C).
			Float64("accuracy", r.Accuracy).
			Dur("elapsed", r.Elapsed).
			Msg("Task finished")
	}

	sortOutcomes(rep.Outcomes)
	sortOutcomes(rep.Failures)
	for i := range rep.Outcomes {
		if rep.Best == nil || rep.Outcomes[i].Accuracy > rep.Best.Accuracy {
			rep.Best = &rep.Outcomes[i]
		}
	}
	rep.Elapsed = time.Since(start)

	ev := log.Info().
		Int("succeeded", len(rep.Outcomes)).
		Int("failed", len(rep.Failures)).
		Dur("elapsed", rep.Elapsed)
	if rep.Best != nil {
		ev = ev.Float64("best_gamma", rep.Best.Gamma).
			Float64("best_c", rep.Best.C).
			Float64("best_accuracy", rep.Best.Accuracy)
	}
	ev.Msg("Sweep finished")

	return rep, ctx.Err()
}

func runTask(ctx context.Context, t task, train, test *dataset.ClassSet, opts []simbinary.Option) (out Outcome) {
	out = Outcome{Gamma: t.gamma, C: t.c}
	start := time.Now()
	defer func() { out.Elapsed = time.Since(start) }()

	clf, err := simbinary.New(t.gamma, t.c, opts...)
	if err != nil {
		out.Err = err
		return out
	}
	if err = clf.TrainContext(ctx, train); err != nil {
		out.Err = err
		return out
	}
	r, err := clf.Test(test)
	if err != nil {
		out.Err = err
		return out
	}
	out.Accuracy = r.Accuracy()
	out.Total = r.Total
	out.Errors = r.Errors
	out.AvgIterations = r.AvgIterations()

	return out
}

func sortOutcomes(outs []Outcome) {
	sort.SliceStable(outs, func(i, j int) bool {
		if outs[i].Gamma != outs[j].Gamma {
			return outs[i].Gamma < outs[j].Gamma
		}
		return outs[i].C < outs[j].C
	})
}
