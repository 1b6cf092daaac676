package bnp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pcpbnp/solver/pcperr"
)

func TestClassifyColgenError_TimeoutAlwaysRequeues(t *testing.T) {
	err := pcperr.Timeout("colgen.Run", errors.New("deadline"))
	require.Equal(t, actionRequeue, classifyColgenError(err, 0))
	require.Equal(t, actionRequeue, classifyColgenError(err, 7))
}

func TestClassifyColgenError_RootSolverFailureIsFatal(t *testing.T) {
	err := pcperr.Solver("RMP.Solve", errors.New("infeasible"))
	require.Equal(t, actionFatal, classifyColgenError(err, 0))
}

func TestClassifyColgenError_NonRootSolverFailurePrunesSubtree(t *testing.T) {
	err := pcperr.Solver("RMP.Solve", errors.New("infeasible"))
	require.Equal(t, actionPruneSubtree, classifyColgenError(err, 3))
}

func TestClassifyColgenError_NonRootInvariantFailurePrunesSubtree(t *testing.T) {
	err := pcperr.Invariant("pricing.Solve", errors.New("reduced cost mismatch"))
	require.Equal(t, actionPruneSubtree, classifyColgenError(err, 5))
}
