// Package sweep trains and tests one classifier per (gamma, C) pair of a
// grid, spreading the pairs over a fixed number of workers.
//
// Tasks share nothing mutable: every task builds its own classifier, and the
// training and test sets are only read. A failing task is recorded in
// Report.Failures and the rest of the grid still runs.
package sweep
