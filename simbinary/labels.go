package simbinary

import "fmt"

// LabelIndex is a bijection between class labels and indices 0..K-1.
// It is immutable once built.
type LabelIndex struct {
	labels []string
	index  map[string]int
}

// NewLabelIndex numbers labels in the given order. Duplicates and empty
// labels are rejected.
func NewLabelIndex(labels []string) (*LabelIndex, error) {
	li := &LabelIndex{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label at %d", ErrData, i)
		}
		if _, dup := li.index[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrData, l)
		}
		li.labels[i] = l
		li.index[l] = i
	}

	return li, nil
}

// Index returns the index of label.
func (li *LabelIndex) Index(label string) (int, bool) {
	i, ok := li.index[label]
	return i, ok
}

// Label returns the label with index i.
func (li *LabelIndex) Label(i int) (string, bool) {
	if i < 0 || i >= len(li.labels) {
		return "", false
	}

	return li.labels[i], true
}

// Labels returns all labels ordered by index.
func (li *LabelIndex) Labels() []string {
	out := make([]string, len(li.labels))
	copy(out, li.labels)

	return out
}

// Len returns K.
func (li *LabelIndex) Len() int { return len(li.labels) }
