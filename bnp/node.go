package bnp

import (
	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
)

// NodeID identifies a B&P node within one Controller.Solve call: the root
// is 0 and children are numbered upward from 1, restarting on every Solve.
type NodeID uint64

// Node is one entry in the branch-and-price search tree: an owned
// auxiliary graph, an owned column pool, and the LP bound this subtree
// inherited (or, once processed, produced).
type Node struct {
	ID        NodeID
	Parent    NodeID
	Graph     *auxgraph.AuxiliaryGraph
	Pool      *column.Pool
	Objective float64 // lower bound for this subtree
}

// nodeQueue is a min-heap of *Node ordered by Objective ascending, ties
// broken by ascending ID (insertion order), following lvlath/dijkstra's
// nodePQ shape.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].Objective != q[j].Objective {
		return q[i].Objective < q[j].Objective
	}
	return q[i].ID < q[j].ID
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*Node)) }

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
