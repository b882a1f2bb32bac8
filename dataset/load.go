package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// LoadOptions configures Load.
type LoadOptions struct {
	Delimiter rune
}

// LoadOption mutates LoadOptions.
type LoadOption func(*LoadOptions)

// WithDelimiter sets the column separator (default ',').
func WithDelimiter(d rune) LoadOption {
	return func(o *LoadOptions) { o.Delimiter = d }
}

// Load reads a headerless delimited file and converts each row with adapter.
// A nil adapter selects LastColumnLabel.
func Load(path string, adapter Adapter, opts ...LoadOption) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f, adapter, opts...)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return t, nil
}

// Read is Load over an io.Reader.
func Read(r io.Reader, adapter Adapter, opts ...LoadOption) (Table, error) {
	o := LoadOptions{Delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}
	if adapter == nil {
		adapter = LastColumnLabel
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(o.Delimiter),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	// Records()[0] holds the generated column names.
	records := df.Records()
	t := make(Table, 0, len(records)-1)
	for i, row := range records[1:] {
		feats, label, err := adapter(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if label == "" {
			return nil, fmt.Errorf("row %d: %w", i, ErrEmptyLabel)
		}
		t = append(t, Sample{Features: feats, Label: label})
	}

	return t, nil
}
