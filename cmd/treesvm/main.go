// Command treesvm trains, cross-validates and grid-searches SimBinarySVM
// classifiers on delimited text datasets.
//
//	$ treesvm train -train iris.data -test iris.test -gamma 0.1 -C 10
//	$ treesvm cv -train iris.data -k 10
//	$ treesvm sweep -train iris.data -test iris.test -project iris -out results
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func main() {
	cmd := &commander.Command{
		UsageLine: "treesvm <command> [options]",
		Short:     "hierarchical multi-class SVM over class separability",
		Subcommands: []*commander.Command{
			trainCmd(),
			cvCmd(),
			sweepCmd(),
		},
		Flag: *flag.NewFlagSet("treesvm", flag.ExitOnError),
	}

	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
