package branch

import (
	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcpgraph"
)

// activeColumns returns the pool's columns whose primal value clears the
// tolerance, paired with that value.
func activeColumns(pool *column.Pool, primal map[column.ID]float64, tol float64) []activeColumn {
	var out []activeColumn
	for _, c := range pool.All() {
		if v := primal[c.ID]; v > tol {
			out = append(out, activeColumn{col: c, value: v})
		}
	}
	return out
}

type activeColumn struct {
	col   *column.Column
	value float64
}

// tryRuleA looks for a cluster with more than one vertex represented by
// positive-value columns, and if found returns the max-weight vertex in that
// cluster and the cluster itself; Branch builds the impose/forbid pair.
func tryRuleA(base *pcpgraph.Graph, active []activeColumn) (pcpgraph.VertexID, pcpgraph.ClusterID, bool) {
	representedIn := make(map[pcpgraph.ClusterID]map[pcpgraph.VertexID]float64)
	for _, ac := range active {
		for _, v := range ac.col.Vertices {
			vx := base.Vertex(v)
			if vx == nil {
				continue
			}
			m, ok := representedIn[vx.Cluster]
			if !ok {
				m = make(map[pcpgraph.VertexID]float64)
				representedIn[vx.Cluster] = m
			}
			m[v] += ac.value
		}
	}

	bestSize := 0
	var qStar pcpgraph.ClusterID
	for _, cl := range base.Clusters() {
		m := representedIn[cl.ID]
		if len(m) > bestSize {
			bestSize = len(m)
			qStar = cl.ID
		}
	}
	if bestSize <= 1 {
		return 0, 0, false
	}

	scores := representedIn[qStar]
	var vStar pcpgraph.VertexID
	found := false
	var bestScore float64
	for v, score := range scores {
		if !found || score > bestScore || (score == bestScore && v < vStar) {
			vStar = v
			bestScore = score
			found = true
		}
	}
	return vStar, qStar, true
}
