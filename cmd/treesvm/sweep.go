package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/treesvm/sweep"
)

var (
	sweepConfigFile string
	sweepDataFile   string
	sweepTestFile   string
	sweepProject    string
	sweepOutDir     string
)

func sweepCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSweep,
		UsageLine: "sweep <options>",
		Short:     "grid-searches gamma and C",
		Long: `
grid-searches gamma and C over log10 ranges (see sweep.* config keys)

	$ treesvm sweep -train <file> -test <file> -project <name> [-out results] [-workers n]

Writes <project>-simbinary.json, <project>-best.json and <project>-time.json.
`,
		Flag: *flag.NewFlagSet("sweep", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag, &sweepConfigFile, &sweepDataFile)
	cmd.Flag.StringVar(&sweepTestFile, "test", "", "Test data file")
	cmd.Flag.StringVar(&sweepProject, "project", "dataset", "Project name used in result file names")
	cmd.Flag.StringVar(&sweepOutDir, "out", "results", "Output directory")
	cmd.Flag.Int("workers", 2, "Worker count")

	return cmd
}

func runSweep(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig(cmd, sweepConfigFile)
	if err != nil {
		return err
	}
	log := cfg.CreateLogger()

	train, err := loadClassSet(sweepDataFile, cfg)
	if err != nil {
		return fmt.Errorf("train data: %w", err)
	}
	test := train
	if sweepTestFile != "" {
		if test, err = loadClassSet(sweepTestFile, cfg); err != nil {
			return fmt.Errorf("test data: %w", err)
		}
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep, err := sweep.Run(ctx, grid, train, test,
		sweep.WithWorkers(cfg.Workers()),
		sweep.WithLogger(log),
		// per-task classifiers stay quiet; the sweep logs each task
		sweep.WithClassifierOptions(cfg.ClassifierOptions(log.Level(zerolog.WarnLevel))...),
	)
	if rep != nil {
		if werr := rep.WriteJSON(sweepOutDir, sweepProject, "simbinary"); werr != nil {
			return werr
		}
		if rep.Best != nil {
			fmt.Printf("best gamma=%g C=%g accuracy=%.4f (%d ok, %d failed)\n",
				rep.Best.Gamma, rep.Best.C, rep.Best.Accuracy, len(rep.Outcomes), len(rep.Failures))
		}
	}

	return err
}
