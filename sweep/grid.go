package sweep

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyGrid indicates a grid with no gamma or no C values.
var ErrEmptyGrid = errors.New("sweep: empty grid")

// Grid is the Cartesian product Gammas × Cs.
type Grid struct {
	Gammas []float64
	Cs     []float64
}

// Size returns the number of (gamma, C) pairs.
func (g Grid) Size() int { return len(g.Gammas) * len(g.Cs) }

// LogGrid returns n values evenly spaced in log10 between 10^minExp and
// 10^maxExp, both inclusive.
func LogGrid(minExp, maxExp float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d steps", ErrEmptyGrid, n)
	}
	if n == 1 {
		return []float64{math.Pow(10, minExp)}, nil
	}

	return floats.LogSpan(make([]float64, n), math.Pow(10, minExp), math.Pow(10, maxExp)), nil
}

// NewLogGrid builds a grid from log10 exponent ranges, n values per axis.
func NewLogGrid(gammaMinExp, gammaMaxExp, cMinExp, cMaxExp float64, n int) (Grid, error) {
	gammas, err := LogGrid(gammaMinExp, gammaMaxExp, n)
	if err != nil {
		return Grid{}, err
	}
	cs, err := LogGrid(cMinExp, cMaxExp, n)
	if err != nil {
		return Grid{}, err
	}

	return Grid{Gammas: gammas, Cs: cs}, nil
}
