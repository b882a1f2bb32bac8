package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sample is one labeled feature vector.
type Sample struct {
	Features []float64
	Label    string
}

// Table is an ordered list of samples as read from a file.
type Table []Sample

// Adapter turns one raw row into features and a label.
type Adapter func(row []string) ([]float64, string, error)

// LastColumnLabel treats the final column as the label.
func LastColumnLabel(row []string) ([]float64, string, error) {
	if len(row) < 2 {
		return nil, "", fmt.Errorf("%w: %d columns", ErrNoFeatures, len(row))
	}
	feats, err := parseFloats(row[:len(row)-1])
	if err != nil {
		return nil, "", err
	}

	return feats, strings.TrimSpace(row[len(row)-1]), nil
}

// FirstColumnLabel treats the first column as the label.
func FirstColumnLabel(row []string) ([]float64, string, error) {
	if len(row) < 2 {
		return nil, "", fmt.Errorf("%w: %d columns", ErrNoFeatures, len(row))
	}
	feats, err := parseFloats(row[1:])
	if err != nil {
		return nil, "", err
	}

	return feats, strings.TrimSpace(row[0]), nil
}

// AdapterByName maps "last" and "first" to the built-in adapters.
func AdapterByName(name string) (Adapter, error) {
	switch name {
	case "", "last":
		return LastColumnLabel, nil
	case "first":
		return FirstColumnLabel, nil
	default:
		return nil, fmt.Errorf("dataset: unknown adapter %q", name)
	}
}

func parseFloats(cols []string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, c := range cols {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d %q", ErrBadValue, i, c)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: column %d %q", ErrNonFinite, i, c)
		}
		out[i] = v
	}

	return out, nil
}

// ClassSet groups samples by label. Labels are unique and kept in the order
// they were first added; all samples share one dimensionality.
type ClassSet struct {
	order   []string
	samples map[string][][]float64
	dim     int
}

// NewClassSet returns an empty set.
func NewClassSet() *ClassSet {
	return &ClassSet{samples: make(map[string][][]float64), dim: -1}
}

// Add appends a feature vector under label. Every feature must be finite.
func (cs *ClassSet) Add(label string, features []float64) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if len(features) == 0 {
		return ErrNoFeatures
	}
	for i, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: label %q feature %d is %v", ErrNonFinite, label, i, v)
		}
	}
	if cs.dim == -1 {
		cs.dim = len(features)
	} else if len(features) != cs.dim {
		return fmt.Errorf("%w: label %q has %d features, want %d", ErrDimensionMismatch, label, len(features), cs.dim)
	}
	if _, ok := cs.samples[label]; !ok {
		cs.order = append(cs.order, label)
	}
	cs.samples[label] = append(cs.samples[label], features)

	return nil
}

// Labels returns the labels in first-seen order.
func (cs *ClassSet) Labels() []string {
	out := make([]string, len(cs.order))
	copy(out, cs.order)

	return out
}

// Samples returns the vectors stored under label (nil when absent).
// The slice is shared with the set.
func (cs *ClassSet) Samples(label string) [][]float64 { return cs.samples[label] }

// NumClasses returns the number of distinct labels.
func (cs *ClassSet) NumClasses() int { return len(cs.order) }

// Len returns the total number of samples.
func (cs *ClassSet) Len() int {
	n := 0
	for _, s := range cs.samples {
		n += len(s)
	}

	return n
}

// Dim returns the feature dimensionality, or 0 for an empty set.
func (cs *ClassSet) Dim() int {
	if cs.dim < 0 {
		return 0
	}

	return cs.dim
}

// Subset returns a new set holding only the given labels, in the given order.
// Sample slices are shared.
func (cs *ClassSet) Subset(labels []string) (*ClassSet, error) {
	out := NewClassSet()
	out.dim = cs.dim
	for _, l := range labels {
		s, ok := cs.samples[l]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, l)
		}
		if _, dup := out.samples[l]; !dup {
			out.order = append(out.order, l)
		}
		out.samples[l] = s
	}

	return out, nil
}

// Split groups a table into a ClassSet.
func Split(t Table) (*ClassSet, error) {
	cs := NewClassSet()
	for i, s := range t {
		if err := cs.Add(s.Label, s.Features); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}

	return cs, nil
}
