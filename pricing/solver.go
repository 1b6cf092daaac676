package pricing

import (
	"os"
	"time"

	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
)

// deadlineCheckInterval bounds how often branch() calls time.Now(): checking
// on every recursive call would dominate the search's own cost at the node
// sizes this solver targets.
const deadlineCheckInterval = 2048

// Debug gates the reduced-cost assertion on every column Solve returns.
// Read once at process start from PCP_DEBUG, mirroring the original
// Python solver's BPC_DEBUG environment gate.
var Debug = os.Getenv("PCP_DEBUG") != ""

// DefaultPoolSize is K, the number of distinct solutions the exact solver
// keeps when the caller does not specify one.
const DefaultPoolSize = 10

// Epsilon is the reduced-cost / dual-feasibility tolerance used throughout
// pricing: a column is returned only if its weight exceeds 1+Epsilon, and
// the debug assertion allows a discrepancy of up to 1e-5.
const Epsilon = 1e-6

const reducedCostAssertionTolerance = 1e-5

// Solver is the exact MWIS pricing solver for one auxiliary graph.
type Solver struct {
	poolSize int
}

// New returns a Solver that keeps up to poolSize distinct solutions.
// poolSize <= 0 falls back to DefaultPoolSize.
func New(poolSize int) *Solver {
	if poolSize <= 0 {
		poolSize = DefaultPoolSize
	}
	return &Solver{poolSize: poolSize}
}

// searchState threads the deadline (and a cheap call counter, so branch
// does not call time.Now() on every recursive step) through the
// include/exclude recursion.
type searchState struct {
	deadline time.Time
	calls    int
	expired  bool
}

func (s *searchState) checkDeadline() bool {
	if s.expired {
		return true
	}
	if s.deadline.IsZero() {
		return false
	}
	first := s.calls == 0
	s.calls++
	if !first && s.calls%deadlineCheckInterval != 0 {
		return false
	}
	if time.Now().After(s.deadline) {
		s.expired = true
	}
	return s.expired
}

// Solve updates ag's weights from duals, then returns up to the solver's K
// highest-weight independent sets with weight > 1+Epsilon as columns,
// ordered by descending weight. counter mints the returned columns' IDs.
//
// If deadline is reached before the search completes, Solve returns
// whatever columns the pool already holds alongside a pcperr.Timeout, so
// the caller can reschedule the node rather than lose the partial work.
func (s *Solver) Solve(base *pcpgraph.Graph, ag *auxgraph.AuxiliaryGraph, duals []float64, counter *column.Counter, deadline time.Time) ([]*column.Column, error) {
	if len(duals) != base.NumClusters() {
		return nil, pcperr.Invariant("pricing.Solve", errDualsDimensionMismatch)
	}
	ag.UpdateWeights(duals)

	vertices := ag.Vertices()
	n := len(vertices)
	if n == 0 {
		return nil, nil
	}

	weights := make([]float64, n)
	for i, v := range vertices {
		weights[i] = ag.Weight(v)
	}

	index := make(map[pcpgraph.VertexID]int, n)
	for i, v := range vertices {
		index[v] = i
	}
	adjacent := make([][]bool, n)
	for i := range adjacent {
		adjacent[i] = make([]bool, n)
	}
	for _, e := range ag.Edges() {
		i, j := index[e.U], index[e.V]
		adjacent[i][j] = true
		adjacent[j][i] = true
	}

	pool := newSolutionPool(s.poolSize, 1+Epsilon)
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	state := &searchState{deadline: deadline}
	branch(adjacent, weights, remaining, nil, 0, pool, state)

	results := pool.sorted()
	cols := make([]*column.Column, 0, len(results))
	for _, cand := range results {
		auxVerts := make([]pcpgraph.VertexID, len(cand.indices))
		for i, idx := range cand.indices {
			auxVerts[i] = vertices[idx]
		}
		original := expand(ag, auxVerts)
		col := column.New(counter.Next(), original, "pricing")

		if Debug {
			if err := assertReducedCost(base, col, duals, cand.weight); err != nil {
				return nil, pcperr.Invariant("pricing.Solve", err)
			}
		}
		cols = append(cols, col)
	}

	if state.expired {
		return cols, pcperr.Timeout("pricing.Solve", errDeadlineExceeded)
	}
	return cols, nil
}

// branch performs the binary include/exclude split over `remaining`
// (indices not yet decided), pruning via the pool's current threshold. The
// exclude branch always runs first so the pool fills with the
// lexicographically-first maximal sets on ties, keeping output
// deterministic. Once state's deadline has passed, every open branch
// returns immediately, leaving the pool exactly as far as the search got.
func branch(adjacent [][]bool, weights []float64, remaining, chosen []int, curWeight float64, pool *solutionPool, state *searchState) {
	if state.checkDeadline() {
		return
	}

	if len(remaining) == 0 {
		pool.offer(chosen, curWeight)
		return
	}

	ub := curWeight
	for _, idx := range remaining {
		if weights[idx] > 0 {
			ub += weights[idx]
		}
	}
	if !pool.canImprove(ub) {
		return
	}

	pivot := remaining[0]
	rest := remaining[1:]

	branch(adjacent, weights, rest, chosen, curWeight, pool, state)

	restAfterInclude := make([]int, 0, len(rest))
	for _, idx := range rest {
		if !adjacent[pivot][idx] {
			restAfterInclude = append(restAfterInclude, idx)
		}
	}
	chosenWithPivot := append(append([]int(nil), chosen...), pivot)
	branch(adjacent, weights, restAfterInclude, chosenWithPivot, curWeight+weights[pivot], pool, state)
}

// expand replaces every synthetic vertex in verts with its original
// constituents, so the resulting column never references a merged id.
func expand(ag *auxgraph.AuxiliaryGraph, verts []pcpgraph.VertexID) []pcpgraph.VertexID {
	out := make([]pcpgraph.VertexID, 0, len(verts))
	for _, v := range verts {
		if ag.IsSynthetic(v) {
			out = append(out, ag.Constituents(v)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}

// assertReducedCost checks the invariant that a column's pricing weight
// equals the sum of duals over the clusters it covers, to within
// reducedCostAssertionTolerance.
func assertReducedCost(base *pcpgraph.Graph, col *column.Column, duals []float64, weight float64) error {
	sum := 0.0
	for _, cid := range col.Clusters(base) {
		sum += duals[cid]
	}
	if diff := sum - weight; diff > reducedCostAssertionTolerance || diff < -reducedCostAssertionTolerance {
		return errReducedCostInvariant
	}
	return nil
}
