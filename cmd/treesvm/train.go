package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/treesvm/simbinary"
)

var (
	trainConfigFile string
	trainDataFile   string
	trainTestFile   string
	trainDotFile    string
)

func trainCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runTrain,
		UsageLine: "train <options>",
		Short:     "trains a classifier and reports test accuracy",
		Long: `
trains a classifier and reports test accuracy

	$ treesvm train -train <file> [-test <file>] [-gamma g] [-C c] [-dot mst.dot] [options]

Without -test the training file is evaluated. -dot writes the class
spanning tree in Graphviz format.
`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	modelFlags(&cmd.Flag, &trainConfigFile, &trainDataFile)
	cmd.Flag.StringVar(&trainTestFile, "test", "", "Test data file")
	cmd.Flag.StringVar(&trainDotFile, "dot", "", "Write the class MST as Graphviz DOT")

	return cmd
}

func runTrain(cmd *commander.Command, args []string) error {
	cfg, err := loadConfig(cmd, trainConfigFile)
	if err != nil {
		return err
	}
	log := cfg.CreateLogger()

	train, err := loadClassSet(trainDataFile, cfg)
	if err != nil {
		return fmt.Errorf("train data: %w", err)
	}
	test := train
	if trainTestFile != "" {
		if test, err = loadClassSet(trainTestFile, cfg); err != nil {
			return fmt.Errorf("test data: %w", err)
		}
	}

	clf, err := simbinary.New(cfg.Gamma(), cfg.C(), cfg.ClassifierOptions(log)...)
	if err != nil {
		return err
	}
	if err = clf.Train(train); err != nil {
		return err
	}
	if trainDotFile != "" {
		if err = writeMSTDot(trainDotFile, clf); err != nil {
			return fmt.Errorf("dot: %w", err)
		}
	}
	r, err := clf.Test(test)
	if err != nil {
		return err
	}

	fmt.Printf("total=%d errors=%d accuracy=%.4f avg_iterations=%.3f\n",
		r.Total, r.Errors, r.Accuracy(), r.AvgIterations())

	return nil
}
