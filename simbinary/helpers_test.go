package simbinary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesvm/builder"
	"github.com/katalvlaran/treesvm/dataset"
)

// blobs returns k well separated 2-D clusters on a circle of radius 10,
// perClass points each, labels "c0".."c{k-1}".
func blobs(t testing.TB, k, perClass int, seed int64) *dataset.ClassSet {
	t.Helper()
	cs, err := builder.Circle(k, perClass, builder.WithSeed(seed))
	require.NoError(t, err)

	return cs
}
