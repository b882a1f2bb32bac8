package svm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/treesvm/kernel"
)

// Model is a trained binary classifier:
//
//	f(x) = Σ Coef_i · K(SV_i, x) − Rho
//
// f(x) ≥ 0 is the positive side.
type Model struct {
	SupportIndices []int       // positions of the support vectors in the training kernel
	SupportVectors [][]float64 // shared with the kernel's vector set
	Coef           []float64   // α_i·y_i
	Rho            float64
	Iterations     int
	Converged      bool

	gamma float64
}

// Gamma returns the RBF width the model was trained with.
func (m *Model) Gamma() float64 { return m.gamma }

// Decision evaluates f(x). It fails on a dimensionality mismatch or a
// non-finite component in x.
func (m *Model) Decision(x []float64) (float64, error) {
	if err := kernel.CheckFinite(x); err != nil {
		return 0, err
	}
	sum := 0.0
	for i, sv := range m.SupportVectors {
		if len(sv) != len(x) {
			return 0, fmt.Errorf("%w: model has %d features, input has %d", kernel.ErrDimensionMismatch, len(sv), len(x))
		}
		d := floats.Distance(sv, x, 2)
		sum += m.Coef[i] * math.Exp(-m.gamma*d*d)
	}

	return sum - m.Rho, nil
}

// DecisionIndex evaluates f on sample j of kern, the kernel the model was
// trained on (or one sharing its index space).
func (m *Model) DecisionIndex(kern Kernel, j int) float64 {
	sum := 0.0
	for i, si := range m.SupportIndices {
		sum += m.Coef[i] * kern.Index(si, j)
	}

	return sum - m.Rho
}

// Predict returns +1 when f(x) ≥ 0 and −1 otherwise.
func (m *Model) Predict(x []float64) (int8, error) {
	f, err := m.Decision(x)
	if err != nil {
		return 0, err
	}
	if f >= 0 {
		return 1, nil
	}

	return -1, nil
}
