package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/treesvm/config"
	"github.com/katalvlaran/treesvm/converters"
	"github.com/katalvlaran/treesvm/dataset"
	"github.com/katalvlaran/treesvm/simbinary"
)

// flagKeys maps command-line flags onto config keys. A flag given on the
// command line overrides the config file.
var flagKeys = map[string]string{
	"gamma":     "svm.gamma",
	"C":         "svm.c",
	"mst":       "mst.method",
	"k":         "cv.folds",
	"workers":   "sweep.workers",
	"delimiter": "dataset.delimiter",
	"adapter":   "dataset.adapter",
	"log":       "logging.level",
}

// modelFlags registers the flags shared by every subcommand.
func modelFlags(fs *flag.FlagSet, configFile, trainFile *string) {
	def := config.NewConfig()
	fs.StringVar(configFile, "config", "", "Config file (yaml, json or toml)")
	fs.StringVar(trainFile, "train", "", "Training data file")
	fs.Float64("gamma", def.Gamma(), "RBF kernel width")
	fs.Float64("C", def.C(), "Soft-margin penalty")
	fs.String("mst", def.MSTMethod(), "MST algorithm: kruskal, prim or dense")
	fs.String("delimiter", ",", "Column delimiter (\"tab\" for tabs)")
	fs.String("adapter", def.DatasetAdapter(), "Label column: last or first")
	fs.String("log", def.LogLevel(), "Log level")
}

func loadConfig(cmd *commander.Command, path string) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cmd.Flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Set(key, f.Value.String())
		}
	})

	return cfg, nil
}

func loadClassSet(path string, cfg *config.Config) (*dataset.ClassSet, error) {
	if path == "" {
		return nil, fmt.Errorf("missing data file")
	}
	adapter, err := dataset.AdapterByName(cfg.DatasetAdapter())
	if err != nil {
		return nil, err
	}
	delim, err := cfg.Delimiter()
	if err != nil {
		return nil, err
	}
	tbl, err := dataset.Load(path, adapter, dataset.WithDelimiter(delim))
	if err != nil {
		return nil, err
	}

	return dataset.Split(tbl)
}

// writeMSTDot saves the spanning tree of a trained classifier, vertices
// named by class label.
func writeMSTDot(path string, clf *simbinary.Classifier) error {
	mst := clf.MST()
	if mst == nil {
		return fmt.Errorf("classifier is not trained")
	}
	g, err := mst.Graph()
	if err != nil {
		return err
	}
	out, err := converters.DOT(g, "mst", clf.Labels())
	if err != nil {
		return err
	}

	return os.WriteFile(path, out, 0o644)
}
