// SPDX-License-Identifier: MIT
// Package: treesvm/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs.
// Generators themselves never panic; they return sentinel errors.

package builder

import (
	"math/rand"
	"strconv"
)

const (
	defaultSpread  = 0.3
	defaultSpacing = 10.0
	defaultSeed    = 1
)

// BuilderOption customizes a generator by mutating its builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng     *rand.Rand
	spread  float64 // per-axis standard deviation around a center
	spacing float64 // circle radius or grid pitch
	labelFn func(int) string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     rand.New(rand.NewSource(defaultSeed)),
		spread:  defaultSpread,
		spacing: defaultSpacing,
		labelFn: DefaultLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DefaultLabel names class i "c<i>".
func DefaultLabel(i int) string { return "c" + strconv.Itoa(i) }

// WithSeed uses a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSpread sets the cluster standard deviation (>= 0). Panics if negative.
func WithSpread(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithSpread(sigma<0)")
	}
	return func(c *builderConfig) {
		c.spread = sigma
	}
}

// WithSpacing sets the circle radius or grid pitch (> 0). Panics otherwise.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSpacing(d<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = d
	}
}

// WithLabelScheme sets the class index → label mapping. Panics on nil.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
