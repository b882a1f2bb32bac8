package bfs

import (
	"context"
	"errors"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal.
type Option func(*BFSOptions)

// BFSOptions controls a traversal.
type BFSOptions struct {
	Ctx context.Context

	// FilterNeighbor reports whether the step curr→neighbor may be taken.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns options for an unrestricted search.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false. Filters compose:
// a step is taken only if every registered filter allows it.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn == nil {
			return
		}
		prev := o.FilterNeighbor
		o.FilterNeighbor = func(curr, nbr int) bool {
			return prev(curr, nbr) && fn(curr, nbr)
		}
	}
}

// WithoutEdge hides the undirected edge a–b, as if it had been removed.
func WithoutEdge(a, b int) Option {
	return WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == a && nbr == b) && !(curr == b && nbr == a)
	})
}

// BFSResult is the outcome of a traversal. Depth counts edges from the
// start; Parent has no entry for the start vertex.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}
