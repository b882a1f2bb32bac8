package dataset

import "errors"

var (
	// ErrEmptyLabel indicates a row whose label is the empty string.
	ErrEmptyLabel = errors.New("dataset: empty label")

	// ErrDimensionMismatch indicates a sample whose feature count differs from
	// the first sample added.
	ErrDimensionMismatch = errors.New("dataset: feature dimensionality mismatch")

	// ErrNoFeatures indicates a row with a label but no feature columns.
	ErrNoFeatures = errors.New("dataset: row has no features")

	// ErrBadValue indicates a feature column that does not parse as float64.
	ErrBadValue = errors.New("dataset: feature is not a number")

	// ErrNonFinite indicates a NaN or ±Inf feature.
	ErrNonFinite = errors.New("dataset: feature is not finite")

	// ErrUnknownLabel indicates a Subset request for a label not in the set.
	ErrUnknownLabel = errors.New("dataset: unknown label")
)
