package branch

import (
	"github.com/pcpbnp/solver/auxgraph"
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
)

const activeTolerance = 1e-9

// Branch picks the first rule that fires (A, then B) against the node's
// current fractional solution and returns the resulting two-child split.
// Both children own independent deep copies of ag and pool.
func Branch(base *pcpgraph.Graph, ag *auxgraph.AuxiliaryGraph, pool *column.Pool, primal map[column.ID]float64) (*Pair, error) {
	active := activeColumns(pool, primal, activeTolerance)

	if vStar, qStar, ok := tryRuleA(base, active); ok {
		return imposeForbid(base, ag, pool, vStar, qStar), nil
	}
	if u, w, ok := tryRuleB(base, active); ok {
		return sameDifferent(ag, pool, u, w), nil
	}
	return nil, pcperr.Invariant("branch.Branch", errNoFractionalCandidate)
}

func imposeForbid(base *pcpgraph.Graph, ag *auxgraph.AuxiliaryGraph, pool *column.Pool, vStar pcpgraph.VertexID, qStar pcpgraph.ClusterID) *Pair {
	imposeGraph := ag.Copy()
	imposeGraph.RemoveOtherVerticesInCluster(vStar)
	imposePool := pool.Copy()
	imposePool.Filter(func(c *column.Column) bool {
		if c.Artificial {
			return true
		}
		return !containsOtherVertexInCluster(base, c, qStar, vStar)
	})

	forbidGraph := ag.Copy()
	forbidGraph.RemoveVertex(vStar)
	forbidPool := pool.Copy()
	forbidPool.Filter(func(c *column.Column) bool {
		return c.Artificial || !c.Contains(vStar)
	})

	return &Pair{
		First:  Decision{Label: "impose-representative", Graph: imposeGraph, Pool: imposePool},
		Second: Decision{Label: "forbid-representative", Graph: forbidGraph, Pool: forbidPool},
	}
}

func containsOtherVertexInCluster(base *pcpgraph.Graph, c *column.Column, cid pcpgraph.ClusterID, exclude pcpgraph.VertexID) bool {
	for _, v := range c.Vertices {
		if v == exclude {
			continue
		}
		if vx := base.Vertex(v); vx != nil && vx.Cluster == cid {
			return true
		}
	}
	return false
}

func sameDifferent(ag *auxgraph.AuxiliaryGraph, pool *column.Pool, u, w pcpgraph.VertexID) *Pair {
	sameGraph := ag.Copy()
	sameGraph.SameColor(u, w)
	samePool := pool.Copy()
	samePool.Filter(func(c *column.Column) bool {
		if c.Artificial {
			return true
		}
		return c.Contains(u) == c.Contains(w)
	})

	diffGraph := ag.Copy()
	diffGraph.DifferentColor(u, w)
	diffPool := pool.Copy()
	diffPool.Filter(func(c *column.Column) bool {
		if c.Artificial {
			return true
		}
		return !(c.Contains(u) && c.Contains(w))
	})

	return &Pair{
		First:  Decision{Label: "same-color", Graph: sameGraph, Pool: samePool},
		Second: Decision{Label: "different-color", Graph: diffGraph, Pool: diffPool},
	}
}
