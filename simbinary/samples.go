package simbinary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/kernel"
)

// sampleSet flattens a ClassSet into one indexed vector list so that every
// solver in a training run shares a single lazily filled Gram matrix.
type sampleSet struct {
	index   *LabelIndex
	gram    *kernel.Gram
	members [][]int // members[c] lists the Gram indices of class c
	dim     int
}

func newSampleSet(cs *dataset.ClassSet, gamma float64) (*sampleSet, error) {
	if cs == nil {
		return nil, fmt.Errorf("%w: nil class set", ErrData)
	}
	labels := cs.Labels()
	index, err := NewLabelIndex(labels)
	if err != nil {
		return nil, err
	}

	var vectors [][]float64
	members := make([][]int, len(labels))
	for c, l := range labels {
		s := cs.Samples(l)
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyClass, l)
		}
		for _, v := range s {
			members[c] = append(members[c], len(vectors))
			vectors = append(vectors, v)
		}
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrEmptyClass)
	}

	gram, err := kernel.NewGram(vectors, gamma)
	if err != nil {
		switch {
		case errors.Is(err, kernel.ErrDimensionMismatch):
			return nil, fmt.Errorf("%w: %v", ErrDimensionMismatch, err)
		case errors.Is(err, kernel.ErrNonFinite):
			return nil, fmt.Errorf("%w: %v", ErrNonFinite, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return &sampleSet{index: index, gram: gram, members: members, dim: len(vectors[0])}, nil
}

// binaryProblem collects the samples of pos (+1) and neg (−1).
func (s *sampleSet) binaryProblem(pos, neg []int) ([]int, []int8) {
	var idx []int
	var y []int8
	for _, c := range pos {
		for _, i := range s.members[c] {
			idx = append(idx, i)
			y = append(y, 1)
		}
	}
	for _, c := range neg {
		for _, i := range s.members[c] {
			idx = append(idx, i)
			y = append(y, -1)
		}
	}

	return idx, y
}
