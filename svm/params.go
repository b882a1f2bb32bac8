package svm

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoSamples indicates an empty training problem.
	ErrNoSamples = errors.New("svm: no training samples")

	// ErrOneClass indicates that only one of the two labels is present.
	ErrOneClass = errors.New("svm: both +1 and -1 labels are required")

	// ErrLabel indicates a label other than +1 or -1.
	ErrLabel = errors.New("svm: labels must be +1 or -1")

	// ErrLengthMismatch indicates len(indices) != len(labels).
	ErrLengthMismatch = errors.New("svm: indices and labels differ in length")

	// ErrInvalidParams indicates a bad C, tolerance or iteration cap.
	ErrInvalidParams = errors.New("svm: invalid parameters")
)

// Params controls the solver.
type Params struct {
	// C is the box constraint (soft-margin penalty), > 0.
	C float64

	// Tolerance is the stopping threshold on the maximal KKT violation.
	Tolerance float64

	// MaxIterations caps the number of pair updates. Zero selects
	// max(10⁷, 100·n).
	MaxIterations int
}

// DefaultParams returns C=1, Tolerance=1e-3 and the default cap.
func DefaultParams() Params {
	return Params{C: 1, Tolerance: 1e-3}
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.C <= 0 || math.IsNaN(p.C) || math.IsInf(p.C, 0) {
		return fmt.Errorf("%w: C=%v", ErrInvalidParams, p.C)
	}
	if p.Tolerance <= 0 || math.IsNaN(p.Tolerance) {
		return fmt.Errorf("%w: tolerance=%v", ErrInvalidParams, p.Tolerance)
	}
	if p.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations=%d", ErrInvalidParams, p.MaxIterations)
	}

	return nil
}

func (p Params) iterationCap(n int) int {
	if p.MaxIterations > 0 {
		return p.MaxIterations
	}
	if n > math.MaxInt32/100 {
		return math.MaxInt32
	}
	if c := 100 * n; c > 10_000_000 {
		return c
	}

	return 10_000_000
}
