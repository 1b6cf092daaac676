package colgen

import (
	"math"
	"time"

	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/master"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
	"github.com/pcpbnp/solver/pricing"
)

// Epsilon is the shared convergence / dominance tolerance for the loop's
// two termination checks.
const Epsilon = 1e-9

// Runner drives column generation for one B&P node against a shared base
// graph, pricing solver, and column-id counter.
type Runner struct {
	base    *pcpgraph.Graph
	pricer  *pricing.Solver
	counter *column.Counter
}

// New returns a Runner. counter must be shared across the whole solve so
// column ids stay process-unique.
func New(base *pcpgraph.Graph, pricer *pricing.Solver, counter *column.Counter) *Runner {
	return &Runner{base: base, pricer: pricer, counter: counter}
}

// Result is the converged (or deadline-truncated) state of one node's
// column generation.
type Result struct {
	Solution   master.Solution
	Iterations int
	// ObjectiveHistory records the master objective at the end of every
	// iteration, in order, for callers that need to verify convergence
	// behavior (monotone non-increase, iteration bound) rather than just the
	// final value.
	ObjectiveHistory []float64
}

// Run seeds a fresh RMP from pool, then alternates master and pricing
// solves until one of the two termination conditions fires or pricing
// returns no improving column. upperBound is the controller's current best
// integer objective (+Inf if none yet).
func (r *Runner) Run(ag *auxgraph.AuxiliaryGraph, pool *column.Pool, upperBound float64, deadline time.Time) (Result, error) {
	rmp := master.New(r.base)
	for _, c := range pool.All() {
		rmp.AddColumn(c)
	}

	// lowerBound is intentionally never tightened from pricing duals: this
	// mirrors the original solver's conservative initialization, which
	// leaves termination 2 almost never the trigger in practice (real
	// objectives stay well above 0). Termination in the common case comes
	// from termination 1 or an empty pricing return.
	const lowerBound = 0.0
	iterations := 0
	var history []float64

	for {
		sol, err := rmp.Solve(deadline)
		if err != nil {
			return Result{}, err
		}
		iterations++
		z := sol.Objective
		history = append(history, z)

		// Termination 1: the LP bound already dominates the incumbent.
		if math.Ceil(z-Epsilon) >= upperBound {
			return Result{Solution: sol, Iterations: iterations, ObjectiveHistory: history}, nil
		}
		// Termination 2: the relaxation has stopped moving.
		if math.Abs(z-lowerBound) < Epsilon {
			return Result{Solution: sol, Iterations: iterations, ObjectiveHistory: history}, nil
		}

		newCols, err := r.pricer.Solve(r.base, ag, sol.Duals, r.counter, deadline)
		if err != nil && !pcperr.Is(err, pcperr.KindTimeout) {
			return Result{}, err
		}
		for _, c := range newCols {
			pool.Add(c)
			rmp.AddColumn(c)
		}
		if err != nil {
			// Pricing hit its deadline mid-search; whatever columns it found
			// are already in the pool, so the node can be rescheduled rather
			// than losing that partial work.
			return Result{Solution: sol, Iterations: iterations, ObjectiveHistory: history}, err
		}
		if len(newCols) == 0 {
			return Result{Solution: sol, Iterations: iterations, ObjectiveHistory: history}, nil
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			return Result{Solution: sol, Iterations: iterations, ObjectiveHistory: history}, pcperr.Timeout("colgen.Run", errDeadlineDuringLoop)
		}
	}
}
