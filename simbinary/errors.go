package simbinary

import (
	"errors"
	"fmt"
)

var (
	// ErrData groups malformed or insufficient input.
	ErrData = errors.New("simbinary: data error")

	// ErrTraining groups failures while building or training the tree.
	ErrTraining = errors.New("simbinary: training error")

	// ErrState groups calls made in the wrong lifecycle state.
	ErrState = errors.New("simbinary: state error")
)

var (
	ErrEmptyClass        = fmt.Errorf("%w: class has no samples", ErrData)
	ErrTooFewClasses     = fmt.Errorf("%w: at least two classes are required", ErrData)
	ErrDimensionMismatch = fmt.Errorf("%w: feature dimensionality mismatch", ErrData)
	ErrInvalidFolds      = fmt.Errorf("%w: invalid fold count", ErrData)
	ErrInvalidParams     = fmt.Errorf("%w: invalid hyperparameters", ErrData)
	ErrNonFinite         = fmt.Errorf("%w: feature is NaN or infinite", ErrData)

	ErrEmptySuperClass = fmt.Errorf("%w: empty super-class", ErrTraining)
	ErrTreeStructure   = fmt.Errorf("%w: split did not yield two components", ErrTraining)

	ErrNotTrained = fmt.Errorf("%w: classifier is not trained", ErrState)
)
