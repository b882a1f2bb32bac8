// SPDX-License-Identifier: MIT
// Package: treesvm/builder
//
// impl.go: Circle, Grid and Clusters generators.
//
// Determinism: classes are emitted in index order and samples in draw order,
// so a ClassSet built with the same seed has the same label order and values.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/treesvm/dataset"
)

// Circle places k 2-D clusters evenly on a circle of radius spacing,
// perClass samples each.
func Circle(k, perClass int, opts ...BuilderOption) (*dataset.ClassSet, error) {
	if k < 1 {
		return nil, fmt.Errorf("Circle: k=%d: %w", k, ErrTooFewClasses)
	}
	cfg := newBuilderConfig(opts...)
	centers := make([][]float64, k)
	for c := range centers {
		angle := 2 * math.Pi * float64(c) / float64(k)
		centers[c] = []float64{cfg.spacing * math.Cos(angle), cfg.spacing * math.Sin(angle)}
	}

	return clusters(centers, perClass, cfg)
}

// Grid places rows×cols 2-D clusters on a square lattice with pitch spacing.
// Class index runs row-major.
func Grid(rows, cols, perClass int, opts ...BuilderOption) (*dataset.ClassSet, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewClasses)
	}
	cfg := newBuilderConfig(opts...)
	centers := make([][]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			centers = append(centers, []float64{cfg.spacing * float64(c), cfg.spacing * float64(r)})
		}
	}

	return clusters(centers, perClass, cfg)
}

// Clusters draws perClass samples around each given center. Centers may have
// any (shared) dimensionality.
func Clusters(centers [][]float64, perClass int, opts ...BuilderOption) (*dataset.ClassSet, error) {
	if len(centers) < 1 {
		return nil, fmt.Errorf("Clusters: %w", ErrTooFewClasses)
	}

	return clusters(centers, perClass, newBuilderConfig(opts...))
}

func clusters(centers [][]float64, perClass int, cfg builderConfig) (*dataset.ClassSet, error) {
	if perClass < 1 {
		return nil, fmt.Errorf("perClass=%d: %w", perClass, ErrTooFewSamples)
	}

	cs := dataset.NewClassSet()
	for c, center := range centers {
		label := cfg.labelFn(c)
		for n := 0; n < perClass; n++ {
			x := make([]float64, len(center))
			for d, v := range center {
				x[d] = v
				if cfg.spread > 0 {
					x[d] += cfg.spread * cfg.rng.NormFloat64()
				}
			}
			if err := cs.Add(label, x); err != nil {
				return nil, fmt.Errorf("class %d: %w", c, err)
			}
		}
	}

	return cs, nil
}
