// SPDX-License-Identifier: MIT
// Package: treesvm/builder
//
// errors.go: sentinel errors returned by generators.

package builder

import "errors"

var (
	// ErrTooFewClasses indicates a layout with fewer than one class.
	ErrTooFewClasses = errors.New("builder: at least one class is required")

	// ErrTooFewSamples indicates perClass < 1.
	ErrTooFewSamples = errors.New("builder: at least one sample per class is required")
)
