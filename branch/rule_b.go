package branch

import (
	"math"

	"github.com/pcpbnp/solver/pcpgraph"
)

const fractionalTolerance = 1e-9

// tryRuleB scans ordered pairs of distinct-cluster vertices appearing in
// active columns, returning the pair with the largest fractional combined
// column weight. Ties are broken by ascending (u,w).
func tryRuleB(base *pcpgraph.Graph, active []activeColumn) (pcpgraph.VertexID, pcpgraph.VertexID, bool) {
	clusterOf := make(map[pcpgraph.VertexID]pcpgraph.ClusterID)
	pairWeight := make(map[[2]pcpgraph.VertexID]float64)

	for _, ac := range active {
		for i := 0; i < len(ac.col.Vertices); i++ {
			u := ac.col.Vertices[i]
			if vx := base.Vertex(u); vx != nil {
				clusterOf[u] = vx.Cluster
			}
			for j := i + 1; j < len(ac.col.Vertices); j++ {
				w := ac.col.Vertices[j]
				key := pairKey(u, w)
				pairWeight[key] += ac.value
			}
		}
	}

	bestFound := false
	var bestU, bestW pcpgraph.VertexID
	var bestGamma float64
	for pair, gamma := range pairWeight {
		u, w := pair[0], pair[1]
		cu, okU := clusterOf[u]
		cw, okW := clusterOf[w]
		if !okU || !okW || cu == cw {
			continue
		}
		if gamma <= 0 || math.Abs(gamma-math.Round(gamma)) < fractionalTolerance {
			continue
		}
		if !bestFound || gamma > bestGamma || (gamma == bestGamma && pairLess(u, w, bestU, bestW)) {
			bestFound = true
			bestU, bestW, bestGamma = u, w, gamma
		}
	}
	return bestU, bestW, bestFound
}

func pairKey(a, b pcpgraph.VertexID) [2]pcpgraph.VertexID {
	if a < b {
		return [2]pcpgraph.VertexID{a, b}
	}
	return [2]pcpgraph.VertexID{b, a}
}

func pairLess(u1, w1, u2, w2 pcpgraph.VertexID) bool {
	if u1 != u2 {
		return u1 < u2
	}
	return w1 < w2
}
