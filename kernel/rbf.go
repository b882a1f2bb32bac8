package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidGamma indicates gamma <= 0, NaN or Inf.
	ErrInvalidGamma = errors.New("kernel: gamma must be finite and > 0")

	// ErrDimensionMismatch indicates vectors of different lengths.
	ErrDimensionMismatch = errors.New("kernel: vector dimensionality mismatch")

	// ErrNonFinite indicates a NaN or ±Inf vector component.
	ErrNonFinite = errors.New("kernel: vector component is not finite")

	// ErrIndexOutOfRange indicates a Gram index outside [0, N).
	ErrIndexOutOfRange = errors.New("kernel: index out of range")

	// ErrEmpty indicates a Gram matrix over zero vectors.
	ErrEmpty = errors.New("kernel: empty vector set")
)

// Func evaluates a kernel on two vectors.
type Func func(a, b []float64) (float64, error)

// ValidateGamma checks the RBF width parameter.
func ValidateGamma(gamma float64) error {
	if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGamma, gamma)
	}

	return nil
}

// RBF returns the Gaussian kernel with width gamma.
func RBF(gamma float64) (Func, error) {
	if err := ValidateGamma(gamma); err != nil {
		return nil, err
	}

	return func(a, b []float64) (float64, error) {
		if len(a) != len(b) {
			return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
		}

		if err := CheckFinite(a); err != nil {
			return 0, err
		}
		if err := CheckFinite(b); err != nil {
			return 0, err
		}

		return rbf(gamma, a, b), nil
	}, nil
}

// CheckFinite returns ErrNonFinite for the first NaN or ±Inf in v.
func CheckFinite(v []float64) error {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: component %d is %v", ErrNonFinite, i, x)
		}
	}

	return nil
}

// rbf assumes len(a) == len(b).
func rbf(gamma float64, a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return math.Exp(-gamma * d * d)
}
