package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treesvm/dataset"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoad_LastColumn(t *testing.T) {
	p := writeFile(t, "1,2,b\n3,4,a\n5,6,b\n7,8,c\n")

	tbl, err := dataset.Load(p, nil)
	require.NoError(t, err)
	require.Len(t, tbl, 4)
	assert.Equal(t, []float64{1, 2}, tbl[0].Features)
	assert.Equal(t, "b", tbl[0].Label)

	cs, err := dataset.Split(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, cs.Labels())
	assert.Equal(t, 3, cs.NumClasses())
	assert.Equal(t, 4, cs.Len())
	assert.Equal(t, 2, cs.Dim())
	assert.Equal(t, [][]float64{{1, 2}, {5, 6}}, cs.Samples("b"))
}

func TestLoad_FirstColumnAndDelimiter(t *testing.T) {
	p := writeFile(t, "x;0.5;1\ny;1.5;2\n")

	tbl, err := dataset.Load(p, dataset.FirstColumnLabel, dataset.WithDelimiter(';'))
	require.NoError(t, err)
	require.Len(t, tbl, 2)
	assert.Equal(t, "y", tbl[1].Label)
	assert.Equal(t, []float64{1.5, 2}, tbl[1].Features)
}

func TestRead_BadValue(t *testing.T) {
	_, err := dataset.Read(strings.NewReader("1,zz,a\n"), nil)
	assert.ErrorIs(t, err, dataset.ErrBadValue)
}

func TestRead_NonFinite(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"nan", "1,NaN,a\n"},
		{"inf", "Inf,2,a\n"},
		{"negative inf", "1,2,a\n-Inf,2,b\n"},
		{"spelled out", "1,+infinity,a\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.Read(strings.NewReader(tc.body), nil)
			assert.ErrorIs(t, err, dataset.ErrNonFinite)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "nope.csv"), nil)
	assert.Error(t, err)
}

func TestSplit_DimensionMismatch(t *testing.T) {
	_, err := dataset.Split(dataset.Table{
		{Features: []float64{1, 2}, Label: "a"},
		{Features: []float64{1}, Label: "b"},
	})
	assert.ErrorIs(t, err, dataset.ErrDimensionMismatch)
}

func TestClassSet_AddErrors(t *testing.T) {
	cs := dataset.NewClassSet()
	assert.ErrorIs(t, cs.Add("", []float64{1}), dataset.ErrEmptyLabel)
	assert.ErrorIs(t, cs.Add("a", nil), dataset.ErrNoFeatures)
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, cs.Add("a", []float64{0, bad}), dataset.ErrNonFinite, "value=%v", bad)
	}
	assert.Equal(t, 0, cs.Dim())
	assert.Zero(t, cs.NumClasses())
}

func TestClassSet_Subset(t *testing.T) {
	cs := dataset.NewClassSet()
	require.NoError(t, cs.Add("a", []float64{1}))
	require.NoError(t, cs.Add("b", []float64{2}))
	require.NoError(t, cs.Add("c", []float64{3}))

	sub, err := cs.Subset([]string{"c", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Labels())
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, 1, sub.Dim())

	_, err = cs.Subset([]string{"zz"})
	assert.ErrorIs(t, err, dataset.ErrUnknownLabel)
}

func TestAdapterByName(t *testing.T) {
	a, err := dataset.AdapterByName("first")
	require.NoError(t, err)
	f, l, err := a([]string{"k", "3"})
	require.NoError(t, err)
	assert.Equal(t, "k", l)
	assert.Equal(t, []float64{3}, f)

	_, err = dataset.AdapterByName("middle")
	assert.Error(t, err)

	_, _, err = dataset.LastColumnLabel([]string{"only"})
	assert.ErrorIs(t, err, dataset.ErrNoFeatures)
}
