package branch

import (
	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
)

// Decision is one child of a branching split: an auxiliary graph and
// column pool already mutated to reflect that child's constraint.
type Decision struct {
	Label string
	Graph *auxgraph.AuxiliaryGraph
	Pool  *column.Pool
}

// Pair is the two children produced by a single branching split. Coverage
// is preserved across the pair: every active column in the parent survives
// in at least one child (spec's "no cluster-coverage is lost" property).
type Pair struct {
	First  Decision
	Second Decision
}
