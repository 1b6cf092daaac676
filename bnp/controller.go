package bnp

import (
	"container/heap"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/branch"
	"github.com/pcpbnp/solver/colgen"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/metrics"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
	"github.com/pcpbnp/solver/pricing"
)

const integralityTolerance = 1e-6

// Controller runs the best-first branch-and-price search over one PCP
// instance.
type Controller struct {
	base          *pcpgraph.Graph
	colgenRunner  *colgen.Runner
	columnCounter *column.Counter
	nextNodeID    uint64
	queue         nodeQueue

	Logger  *log.Logger
	Debug   bool
	Metrics *metrics.Collector // optional; nil disables metrics updates
}

// New returns a Controller for base, with a pricing solver keeping up to
// poolSize solutions per pricing call.
func New(base *pcpgraph.Graph, poolSize int) *Controller {
	counter := &column.Counter{}
	return &Controller{
		base:          base,
		colgenRunner:  colgen.New(base, pricing.New(poolSize), counter),
		columnCounter: counter,
		Logger:        log.Default(),
	}
}

// Solve runs the search to completion, to an integer optimum, or until
// deadline, whichever comes first. A zero deadline means no time limit.
func (c *Controller) Solve(deadline time.Time) Result {
	runID := uuid.New().String()

	root := c.buildRoot()
	c.queue = nodeQueue{root}
	heap.Init(&c.queue)
	c.nextNodeID = 1

	bestObjective := math.Inf(1)
	var bestPrimal map[column.ID]float64
	var bestColumns []*column.Column
	var stats Statistics
	stats.NodesCreated = 1
	if c.Metrics != nil {
		c.Metrics.NodesCreated.Inc()
	}

	timedOut := false

	for c.queue.Len() > 0 {
		if !deadline.IsZero() && time.Now().After(deadline) {
			timedOut = true
			break
		}

		n := heap.Pop(&c.queue).(*Node)

		if math.Ceil(n.Objective-1e-9) >= bestObjective {
			stats.NodesPruned++
			c.recordPruned()
			continue
		}

		result, err := c.colgenRunner.Run(n.Graph, n.Pool, bestObjective, deadline)
		if err != nil {
			action := classifyColgenError(err, n.ID)
			if action == actionFatal {
				return Result{Status: StatusError, Objective: bestObjective, RunID: runID, Statistics: stats, Err: err}
			}
			if action == actionPruneSubtree {
				stats.NodesPruned++
				c.recordPruned()
				continue
			}
			// actionRequeue: the deadline hit mid-node; reschedule it and
			// stop the search, per the documented "reschedule the node"
			// behavior.
			heap.Push(&c.queue, n)
			timedOut = true
			break
		}
		stats.NodesProcessed++
		stats.ColumnGenIters += result.Iterations
		n.Objective = result.Solution.Objective
		if c.Metrics != nil {
			c.Metrics.NodesProcessed.Inc()
			c.Metrics.ColumnGenIters.Add(float64(result.Iterations))
			c.Metrics.LPObjective.Set(n.Objective)
		}

		if c.Debug && stats.NodesProcessed%10 == 0 {
			c.Logger.Printf("pcpsolve: processed=%d created=%d pruned=%d best=%v node_obj=%.4f",
				stats.NodesProcessed, stats.NodesCreated, stats.NodesPruned, bestObjective, n.Objective)
		}

		if math.Ceil(n.Objective-1e-9) >= bestObjective {
			stats.NodesPruned++
			c.recordPruned()
			continue
		}

		if hasActiveArtificial(n.Pool, result.Solution.Primal) {
			stats.NodesPruned++
			c.recordPruned()
			continue
		}

		if isIntegral(result.Solution.Primal) {
			if n.Objective < bestObjective {
				bestObjective = n.Objective
				bestPrimal = result.Solution.Primal
				bestColumns = selectColumns(n.Pool, bestPrimal)
				pruned := c.pruneQueue(bestObjective)
				stats.NodesPruned += pruned
				if c.Metrics != nil {
					c.Metrics.BestObjective.Set(bestObjective)
					c.Metrics.NodesPruned.Add(float64(pruned))
				}
			}
			continue
		}

		pair, err := branch.Branch(c.base, n.Graph, n.Pool, result.Solution.Primal)
		if err != nil {
			stats.NodesPruned++
			c.recordPruned()
			continue
		}
		for _, d := range []branch.Decision{pair.First, pair.Second} {
			child := &Node{
				ID:        NodeID(c.nextNodeID),
				Parent:    n.ID,
				Graph:     d.Graph,
				Pool:      d.Pool,
				Objective: n.Objective,
			}
			c.nextNodeID++
			stats.NodesCreated++
			if c.Metrics != nil {
				c.Metrics.NodesCreated.Inc()
			}
			heap.Push(&c.queue, child)
		}
	}

	return c.finalResult(runID, timedOut, bestObjective, bestPrimal, bestColumns, stats)
}

func (c *Controller) recordPruned() {
	if c.Metrics != nil {
		c.Metrics.NodesPruned.Inc()
	}
}

func (c *Controller) buildRoot() *Node {
	ag := auxgraph.New(c.base)
	pool := column.NewPool()
	for _, cl := range c.base.Clusters() {
		pool.Add(column.NewArtificial(c.columnCounter.Next(), cl.Members[0], column.ArtificialPenalty))
	}
	return &Node{ID: 0, Objective: math.Inf(-1), Graph: ag, Pool: pool}
}

// pruneQueue drops every queued node whose bound already dominates
// objective, the eager re-scan the original solver performs after each
// incumbent update (spec's literal minimum only prunes newly popped
// nodes).
func (c *Controller) pruneQueue(objective float64) int {
	kept := c.queue[:0]
	dropped := 0
	for _, n := range c.queue {
		if math.Ceil(n.Objective-1e-9) >= objective {
			dropped++
			continue
		}
		kept = append(kept, n)
	}
	c.queue = kept
	heap.Init(&c.queue)
	return dropped
}

// colgenErrorAction is what Solve does in response to a colgen.Runner.Run
// error, per-kind: a timeout is recoverable (reschedule the node and stop
// the search for this deadline), a root-level solver/invariant failure is
// fatal (the instance itself could not be relaxed), and any other
// solver/invariant failure only invalidates the subtree it occurred in.
type colgenErrorAction int

const (
	actionRequeue colgenErrorAction = iota
	actionFatal
	actionPruneSubtree
)

func classifyColgenError(err error, nodeID NodeID) colgenErrorAction {
	if pcperr.Is(err, pcperr.KindTimeout) {
		return actionRequeue
	}
	if nodeID == 0 {
		return actionFatal
	}
	return actionPruneSubtree
}

func hasActiveArtificial(pool *column.Pool, primal map[column.ID]float64) bool {
	for _, col := range pool.All() {
		if col.Artificial && primal[col.ID] > 1e-9 {
			return true
		}
	}
	return false
}

func isIntegral(primal map[column.ID]float64) bool {
	for _, v := range primal {
		if math.Abs(v-math.Round(v)) > integralityTolerance {
			return false
		}
	}
	return true
}

func selectColumns(pool *column.Pool, primal map[column.ID]float64) []*column.Column {
	var out []*column.Column
	for id := range primal {
		if c := pool.Get(id); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (c *Controller) finalResult(runID string, timedOut bool, bestObjective float64, bestPrimal map[column.ID]float64, bestColumns []*column.Column, stats Statistics) Result {
	if timedOut {
		lowerBound := bestObjective
		if c.queue.Len() > 0 {
			lowerBound = c.queue[0].Objective
			for _, n := range c.queue {
				if n.Objective < lowerBound {
					lowerBound = n.Objective
				}
			}
		}
		status := StatusNoSolution
		if bestPrimal != nil {
			status = StatusFeasible
		}
		return Result{
			Status:           status,
			Objective:        bestObjective,
			GlobalLowerBound: lowerBound,
			Solution:         bestPrimal,
			Columns:          bestColumns,
			Statistics:       stats,
			RunID:            runID,
		}
	}

	if bestPrimal == nil {
		return Result{
			Status:           StatusNoSolution,
			Objective:        math.Inf(1),
			GlobalLowerBound: math.Inf(1),
			Statistics:       stats,
			RunID:            runID,
		}
	}
	return Result{
		Status:           StatusOptimal,
		Objective:        bestObjective,
		GlobalLowerBound: bestObjective,
		Solution:         bestPrimal,
		Columns:          bestColumns,
		Statistics:       stats,
		RunID:            runID,
	}
}
