// Package cli wires the pcpsolve cobra command tree and translates solver
// outcomes into the exit codes spec.md's CLI surface promises.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes per the CLI surface: 0 optimal, 1 feasible-but-not-optimal,
// 2 no solution within time, 3 input error, 4 solver error.
const (
	ExitOptimal     = 0
	ExitFeasible    = 1
	ExitNoSolution  = 2
	ExitInputError  = 3
	ExitSolverError = 4
)

// exitError carries the process exit code alongside an optional
// human-readable cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func newExitError(code int, err error) error { return &exitError{code: code, err: err} }

// NewRootCommand builds the pcpsolve command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pcpsolve",
		Short:         "Branch-and-price solver for the Partition Coloring Problem",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand())
	return root
}

// Execute runs the command tree and returns the process exit code,
// printing any human-readable cause to stderr.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return ExitSolverError
	}
	return ExitOptimal
}
