package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/treesvm/simbinary"
)

var (
	cvConfigFile string
	cvDataFile   string
)

func cvCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runCV,
		UsageLine: "cv <options>",
		Short:     "runs stratified k-fold cross-validation",
		Long: `
runs stratified k-fold cross-validation

	$ treesvm cv -train <file> [-k 10] [-gamma g] [-C c] [options]

`,
		Flag: *flag.NewFlagSet("cv", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag, &cvConfigFile, &cvDataFile)
	cmd.Flag.Int("k", 10, "Number of folds")

	return cmd
}

func runCV(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig(cmd, cvConfigFile)
	if err != nil {
		return err
	}
	log := cfg.CreateLogger()

	cs, err := loadClassSet(cvDataFile, cfg)
	if err != nil {
		return err
	}
	clf, err := simbinary.New(cfg.Gamma(), cfg.C(), cfg.ClassifierOptions(log)...)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	acc, err := clf.CrossValidateContext(ctx, cfg.Folds(), cs)
	if err != nil {
		return err
	}

	fmt.Printf("folds=%d accuracy=%.4f\n", cfg.Folds(), acc)

	return nil
}
