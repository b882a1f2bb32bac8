// Package config holds treesvm settings backed by Viper and builds the
// zerolog logger used across the tool.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/treesvm/prim_kruskal"
	"github.com/katalvlaran/treesvm/simbinary"
	"github.com/katalvlaran/treesvm/svm"
	"github.com/katalvlaran/treesvm/sweep"
)

// Config manages classifier, solver and sweep configuration using Viper
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	v := viper.New()

	// Classifier
	v.SetDefault("svm.gamma", 0.1)
	v.SetDefault("svm.c", 1.0)
	v.SetDefault("mst.method", prim_kruskal.MethodKruskal)
	v.SetDefault("cv.folds", 10)

	// Solver
	v.SetDefault("solver.tolerance", 1e-3)
	v.SetDefault("solver.max_iterations", 0)
	v.SetDefault("separability.tolerance", 1e-2)
	v.SetDefault("separability.max_iterations", simbinary.DefaultQuickIterations)

	// Sweep, exponents are log10
	v.SetDefault("sweep.workers", runtime.NumCPU())
	v.SetDefault("sweep.gamma_min_exp", -6.0)
	v.SetDefault("sweep.gamma_max_exp", 0.0)
	v.SetDefault("sweep.c_min_exp", -2.0)
	v.SetDefault("sweep.c_max_exp", 4.0)
	v.SetDefault("sweep.steps", 7)

	// Dataset
	v.SetDefault("dataset.delimiter", ",")
	v.SetDefault("dataset.adapter", "last")

	// Logging
	v.SetDefault("logging.level", "info")

	return &Config{v: v}
}

// LoadFromFile loads configuration from file
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

func (c *Config) Gamma() float64 { return c.v.GetFloat64("svm.gamma") }
func (c *Config) C() float64 { return c.v.GetFloat64("svm.c") }
func (c *Config) MSTMethod() string { return c.v.GetString("mst.method") }
func (c *Config) Folds() int { return c.v.GetInt("cv.folds") }
func (c *Config) Tolerance() float64 { return c.v.GetFloat64("solver.tolerance") }
func (c *Config) MaxIterations() int { return c.v.GetInt("solver.max_iterations") }

func (c *Config) QuickTolerance() float64 { return c.v.GetFloat64("separability.tolerance") }
func (c *Config) QuickMaxIterations() int { return c.v.GetInt("separability.max_iterations") }

func (c *Config) Workers() int { return c.v.GetInt("sweep.workers") }
func (c *Config) GammaMinExp() float64 { return c.v.GetFloat64("sweep.gamma_min_exp") }
func (c *Config) GammaMaxExp() float64 { return c.v.GetFloat64("sweep.gamma_max_exp") }
func (c *Config) CMinExp() float64 { return c.v.GetFloat64("sweep.c_min_exp") }
func (c *Config) CMaxExp() float64 { return c.v.GetFloat64("sweep.c_max_exp") }
func (c *Config) Steps() int { return c.v.GetInt("sweep.steps") }
func (c *Config) DatasetAdapter() string { return c.v.GetString("dataset.adapter") }

func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }

// Delimiter returns the first rune of dataset.delimiter ("\t" and "tab"
// both mean a tab).
func (c *Config) Delimiter() (rune, error) {
	s := c.v.GetString("dataset.delimiter")
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("config: dataset.delimiter must be one character, got %q", s)
	}

	return r[0], nil
}

// Set allows dynamic configuration changes
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// SolverParams returns the per-node solver settings. C comes from svm.c.
func (c *Config) SolverParams() svm.Params {
	return svm.Params{C: c.C(), Tolerance: c.Tolerance(), MaxIterations: c.MaxIterations()}
}

// QuickParams returns the separability solver settings.
func (c *Config) QuickParams() svm.Params {
	return svm.Params{C: c.C(), Tolerance: c.QuickTolerance(), MaxIterations: c.QuickMaxIterations()}
}

// ClassifierOptions returns the simbinary options implied by the config.
func (c *Config) ClassifierOptions(logger zerolog.Logger) []simbinary.Option {
	return []simbinary.Option{
		simbinary.WithLogger(logger),
		simbinary.WithSolverParams(c.SolverParams()),
		simbinary.WithQuickParams(c.QuickParams()),
		simbinary.WithMSTMethod(c.MSTMethod()),
	}
}

// Grid returns the sweep grid from the sweep.* exponent ranges.
func (c *Config) Grid() (sweep.Grid, error) {
	return sweep.NewLogGrid(c.GammaMinExp(), c.GammaMaxExp(), c.CMinExp(), c.CMaxExp(), c.Steps())
}

// CreateLogger creates a zerolog logger based on config
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "treesvm").Logger()
}
