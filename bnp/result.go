package bnp

import "github.com/pcpbnp/solver/column"

// Status is the final outcome of a Solve call.
type Status int

const (
	StatusNoSolution Status = iota
	StatusOptimal
	StatusFeasible
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusNoSolution:
		return "no_solution"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the structured, always-populated outcome of Solve: even on
// error or a reached deadline, callers get the best-known objective and
// solution found so far.
type Result struct {
	Status           Status
	Objective        float64 // best integer objective found (+Inf if none)
	GlobalLowerBound float64
	Solution         map[column.ID]float64 // column id -> fraction, at the incumbent
	Columns          []*column.Column       // the columns referenced by Solution, for vertex lookup
	Statistics       Statistics
	RunID            string
	Err              error
}
