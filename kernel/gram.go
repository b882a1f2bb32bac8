package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gram is an N×N RBF kernel matrix over a fixed vector set.
// Kernel evaluations are lazy: a row is computed on its first access and
// Materialize forces all of them. Storage is not lazy. The first access
// allocates the whole N×N mat.SymDense, so memory is O(N²) from then
// until Release.
// A Gram is not safe for concurrent use.
type Gram struct {
	vectors [][]float64
	gamma   float64

	sym  *mat.SymDense // cached values, valid where done[i] || done[j]
	done []bool        // row i fully computed
}

// NewGram validates the vector set and returns a lazy Gram matrix.
// Errors: ErrEmpty, ErrInvalidGamma, ErrDimensionMismatch, ErrNonFinite.
func NewGram(vectors [][]float64, gamma float64) (*Gram, error) {
	if len(vectors) == 0 {
		return nil, ErrEmpty
	}
	if err := ValidateGamma(gamma); err != nil {
		return nil, err
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d features, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
		if err := CheckFinite(v); err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
	}

	return &Gram{vectors: vectors, gamma: gamma}, nil
}

// Len returns N.
func (g *Gram) Len() int { return len(g.vectors) }

// Gamma returns the kernel width.
func (g *Gram) Gamma() float64 { return g.gamma }

// Vector returns the i-th vector (shared, do not modify).
func (g *Gram) Vector(i int) []float64 { return g.vectors[i] }

// At returns K(v_i, v_j), computing row i on first access.
func (g *Gram) At(i, j int) (float64, error) {
	n := len(g.vectors)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("%w: (%d,%d) for N=%d", ErrIndexOutOfRange, i, j, n)
	}

	return g.at(i, j), nil
}

// at is At without bounds checks; used on the solver hot path.
func (g *Gram) at(i, j int) float64 {
	if g.sym == nil {
		g.sym = mat.NewSymDense(len(g.vectors), nil)
		g.done = make([]bool, len(g.vectors))
	}
	if !g.done[i] && !g.done[j] {
		g.fillRow(i)
	}

	return g.sym.At(i, j)
}

// Index returns K(v_i, v_j) assuming valid indices. It is the lookup the
// solver uses; it panics on out-of-range indices like a slice would.
func (g *Gram) Index(i, j int) float64 { return g.at(i, j) }

// fillRow computes every entry of row i (and, by symmetry, column i).
func (g *Gram) fillRow(i int) {
	vi := g.vectors[i]
	for j := range g.vectors {
		if g.done[j] {
			continue
		}
		if j == i {
			g.sym.SetSym(i, i, 1)
			continue
		}
		g.sym.SetSym(i, j, rbf(g.gamma, vi, g.vectors[j]))
	}
	g.done[i] = true
}

// Lookup evaluates the kernel on index-prefixed vectors: a[0] and b[0] hold
// sample indices into the Gram set, the remaining entries are ignored.
// This keeps the call shape of Func while hitting the cache.
func (g *Gram) Lookup(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("%w: empty index vector", ErrIndexOutOfRange)
	}

	return g.At(int(a[0]), int(b[0]))
}

// Materialize computes all rows and returns the full symmetric matrix.
// The returned matrix is owned by g until Release.
func (g *Gram) Materialize() *mat.SymDense {
	for i := range g.vectors {
		_ = g.at(i, i)
	}

	return g.sym
}

// Release drops the cached matrix so the memory can be reclaimed. The Gram
// stays usable and recomputes rows on demand.
func (g *Gram) Release() {
	g.sym = nil
	g.done = nil
}
