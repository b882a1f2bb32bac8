package svm

import (
	"fmt"
	"math"
)

const tau = 1e-12

// Kernel gives solver access to a precomputed (or lazily computed) kernel
// over a sample set addressed by index.
type Kernel interface {
	Index(i, j int) float64
	Vector(i int) []float64
	Gamma() float64
}

type alphaStatus uint8

const (
	lowerBound alphaStatus = iota
	upperBound
	free
)

type solver struct {
	k   Kernel
	idx []int
	y   []float64
	c   float64
	eps float64

	alpha  []float64
	status []alphaStatus
	grad   []float64
	qd     []float64
}

// q returns Q_ij for local indices.
func (s *solver) q(i, j int) float64 {
	return s.y[i] * s.y[j] * s.k.Index(s.idx[i], s.idx[j])
}

func (s *solver) updateStatus(i int) {
	switch {
	case s.alpha[i] >= s.c:
		s.status[i] = upperBound
	case s.alpha[i] <= 0:
		s.status[i] = lowerBound
	default:
		s.status[i] = free
	}
}

// Train fits a binary model on the samples idx (indices into k) with labels
// y ∈ {+1, −1}. Hitting the iteration cap is not an error; the returned model
// reports Converged=false.
func Train(k Kernel, idx []int, y []int8, p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := len(idx)
	if n == 0 {
		return nil, ErrNoSamples
	}
	if len(y) != n {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(y))
	}
	var pos, neg int
	for i, l := range y {
		switch l {
		case 1:
			pos++
		case -1:
			neg++
		default:
			return nil, fmt.Errorf("%w: sample %d has %d", ErrLabel, i, l)
		}
	}
	if pos == 0 || neg == 0 {
		return nil, ErrOneClass
	}

	s := &solver{
		k:      k,
		idx:    idx,
		y:      make([]float64, n),
		c:      p.C,
		eps:    p.Tolerance,
		alpha:  make([]float64, n),
		status: make([]alphaStatus, n),
		grad:   make([]float64, n),
		qd:     make([]float64, n),
	}
	for i := range idx {
		s.y[i] = float64(y[i])
		s.qd[i] = k.Index(idx[i], idx[i])
		// α = 0, so ∇f = Qα − e = −e.
		s.grad[i] = -1
	}

	maxIter := p.iterationCap(n)
	iter := 0
	converged := false
	for iter < maxIter {
		i, j, ok := s.selectWorkingSet()
		if !ok {
			converged = true
			break
		}
		iter++
		s.step(i, j)
	}

	return s.model(iter, converged), nil
}

// selectWorkingSet returns the maximal violating pair using second-order
// gain for j. ok is false once the violation drops below eps.
func (s *solver) selectWorkingSet() (int, int, bool) {
	gmax, gmax2 := math.Inf(-1), math.Inf(-1)
	gmaxIdx, gminIdx := -1, -1
	objDiffMin := math.Inf(1)

	for t := range s.y {
		if s.y[t] > 0 {
			if s.status[t] != upperBound && -s.grad[t] >= gmax {
				gmax = -s.grad[t]
				gmaxIdx = t
			}
		} else if s.status[t] != lowerBound && s.grad[t] >= gmax {
			gmax = s.grad[t]
			gmaxIdx = t
		}
	}
	if gmaxIdx == -1 {
		return 0, 0, false
	}
	i := gmaxIdx

	for j := range s.y {
		var gradDiff float64
		if s.y[j] > 0 {
			if s.status[j] == lowerBound {
				continue
			}
			gradDiff = gmax + s.grad[j]
			if s.grad[j] >= gmax2 {
				gmax2 = s.grad[j]
			}
		} else {
			if s.status[j] == upperBound {
				continue
			}
			gradDiff = gmax - s.grad[j]
			if -s.grad[j] >= gmax2 {
				gmax2 = -s.grad[j]
			}
		}
		if gradDiff <= 0 {
			continue
		}
		// ‖φ(x_i) − φ(x_j)‖²
		quad := s.qd[i] + s.qd[j] - 2*s.k.Index(s.idx[i], s.idx[j])
		if quad <= 0 {
			quad = tau
		}
		objDiff := -(gradDiff * gradDiff) / quad
		if objDiff <= objDiffMin {
			gminIdx = j
			objDiffMin = objDiff
		}
	}

	if gmax+gmax2 < s.eps || gminIdx == -1 {
		return 0, 0, false
	}

	return i, gminIdx, true
}

// step solves the two-variable subproblem for (i, j) analytically, clips to
// the box and updates the gradient.
func (s *solver) step(i, j int) {
	c := s.c
	qij := s.q(i, j)
	oldI, oldJ := s.alpha[i], s.alpha[j]

	if s.y[i] != s.y[j] {
		quad := s.qd[i] + s.qd[j] + 2*qij
		if quad <= 0 {
			quad = tau
		}
		delta := (-s.grad[i] - s.grad[j]) / quad
		diff := s.alpha[i] - s.alpha[j]
		s.alpha[i] += delta
		s.alpha[j] += delta

		if diff > 0 {
			if s.alpha[j] < 0 {
				s.alpha[j] = 0
				s.alpha[i] = diff
			}
		} else if s.alpha[i] < 0 {
			s.alpha[i] = 0
			s.alpha[j] = -diff
		}
		if diff > 0 {
			if s.alpha[i] > c {
				s.alpha[i] = c
				s.alpha[j] = c - diff
			}
		} else if s.alpha[j] > c {
			s.alpha[j] = c
			s.alpha[i] = c + diff
		}
	} else {
		quad := s.qd[i] + s.qd[j] - 2*qij
		if quad <= 0 {
			quad = tau
		}
		delta := (s.grad[i] - s.grad[j]) / quad
		sum := s.alpha[i] + s.alpha[j]
		s.alpha[i] -= delta
		s.alpha[j] += delta

		if sum > c {
			if s.alpha[i] > c {
				s.alpha[i] = c
				s.alpha[j] = sum - c
			}
			if s.alpha[j] > c {
				s.alpha[j] = c
				s.alpha[i] = sum - c
			}
		} else {
			if s.alpha[j] < 0 {
				s.alpha[j] = 0
				s.alpha[i] = sum
			}
			if s.alpha[i] < 0 {
				s.alpha[i] = 0
				s.alpha[j] = sum
			}
		}
	}

	dI := s.alpha[i] - oldI
	dJ := s.alpha[j] - oldJ
	for t := range s.grad {
		s.grad[t] += s.q(i, t)*dI + s.q(j, t)*dJ
	}
	s.updateStatus(i)
	s.updateStatus(j)
}

// rho is the mean y·∇f over free vectors, or the midpoint of the feasible
// interval when none are free.
func (s *solver) rho() float64 {
	ub, lb := math.Inf(1), math.Inf(-1)
	var sumFree float64
	nFree := 0
	for i := range s.y {
		yG := s.y[i] * s.grad[i]
		switch s.status[i] {
		case lowerBound:
			if s.y[i] > 0 {
				ub = math.Min(ub, yG)
			} else {
				lb = math.Max(lb, yG)
			}
		case upperBound:
			if s.y[i] < 0 {
				ub = math.Min(ub, yG)
			} else {
				lb = math.Max(lb, yG)
			}
		default:
			nFree++
			sumFree += yG
		}
	}
	if nFree > 0 {
		return sumFree / float64(nFree)
	}

	return (ub + lb) / 2
}

func (s *solver) model(iter int, converged bool) *Model {
	m := &Model{
		Iterations: iter,
		Converged:  converged,
		Rho:        s.rho(),
		gamma:      s.k.Gamma(),
	}
	for i, a := range s.alpha {
		if a <= 0 {
			continue
		}
		m.SupportIndices = append(m.SupportIndices, s.idx[i])
		m.SupportVectors = append(m.SupportVectors, s.k.Vector(s.idx[i]))
		m.Coef = append(m.Coef, a*s.y[i])
	}

	return m
}
