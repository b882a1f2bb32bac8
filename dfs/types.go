// Package dfs provides depth-first search over a core.Graph together with
// undirected cycle detection and the spanning-tree check used to validate
// class MSTs.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DFSResult holds the outcome of a traversal.
type DFSResult struct {
	// Order lists vertices in post-order (finish order).
	Order []int

	// Depth maps each visited vertex to its depth in the DFS tree.
	Depth map[int]int

	// Parent maps each visited vertex except the start to its DFS parent.
	Parent map[int]int

	// Visited marks every vertex reached.
	Visited map[int]bool
}
