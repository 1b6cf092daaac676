// File: methods.go
// Role: Mutating operations on AuxiliaryGraph — weight refresh and the
//       branching primitives (remove_vertex, remove_other_vertices_in_cluster,
//       same_color, different_color) from spec §4.1.
package auxgraph

import "github.com/pcpbnp/solver/pcpgraph"

// UpdateWeights refreshes every live vertex's pricing weight from the
// master's dual vector, indexed by cluster id: an original vertex takes its
// owning cluster's dual directly; a synthetic vertex takes the sum of its
// constituents' duals. Called once per pricing invocation, before Solve.
func (ag *AuxiliaryGraph) UpdateWeights(duals []float64) {
	for v := range ag.vertices {
		if cs, ok := ag.merged[v]; ok {
			var sum float64
			for _, c := range cs {
				sum += dualOf(ag.base, duals, c)
			}
			ag.weight[v] = sum
			continue
		}
		ag.weight[v] = dualOf(ag.base, duals, v)
	}
}

func dualOf(base *pcpgraph.Graph, duals []float64, v VertexID) float64 {
	vx := base.Vertex(v)
	if vx == nil || int(vx.Cluster) >= len(duals) {
		return 0
	}
	return duals[vx.Cluster]
}

// RemoveVertex drops v from the vertex index, its weight entry, and every
// edge incident on it. If v is a synthetic vertex, its constituents are
// removed too (and the merged-vertex bookkeeping for v is discarded).
// Removing an absent vertex is a silent no-op.
func (ag *AuxiliaryGraph) RemoveVertex(v VertexID) {
	if !ag.HasVertex(v) {
		return
	}
	constituents, synthetic := ag.merged[v]
	ag.dropVertexAndIncidentEdges(v)
	if synthetic {
		delete(ag.merged, v)
		for _, c := range constituents {
			ag.dropVertexAndIncidentEdges(c)
		}
	}
}

// dropVertexAndIncidentEdges removes v (if present) from the vertex and
// weight maps and every edge touching it, without touching merged
// bookkeeping — the caller decides whether v's synthetic record should
// also be discarded.
func (ag *AuxiliaryGraph) dropVertexAndIncidentEdges(v VertexID) {
	if !ag.HasVertex(v) {
		return
	}
	delete(ag.vertices, v)
	delete(ag.weight, v)
	for e := range ag.edges {
		if e.U == v || e.V == v {
			delete(ag.edges, e)
		}
	}
}

// RemoveOtherVerticesInCluster removes every vertex that shares a cluster
// with v but is not v itself (nor, if v is synthetic, one of its
// constituents). Used by Rule A's "impose v" branch.
func (ag *AuxiliaryGraph) RemoveOtherVerticesInCluster(v VertexID) {
	excluded := make(map[VertexID]struct{})
	for _, c := range ag.Constituents(v) {
		excluded[c] = struct{}{}
	}
	for _, cid := range ag.ClustersOf(v) {
		cluster := ag.base.Cluster(cid)
		if cluster == nil {
			continue
		}
		for _, u := range cluster.Members {
			if _, skip := excluded[u]; skip {
				continue
			}
			ag.RemoveVertex(u)
		}
	}
}

// SameColor merges u and w into a fresh synthetic vertex z: every edge
// incident on u or w is redirected to z (deduplicated), u and w are
// removed, and merged[z] records the flattened list of original
// constituents. Any independent set later found containing z represents
// both u and w being jointly selected with the same color.
//
// Acting on an absent u or w is undefined behavior per spec §4.1; callers
// (the branching module) must only invoke SameColor on vertices currently
// present in the graph.
func (ag *AuxiliaryGraph) SameColor(u, w VertexID) VertexID {
	z := ag.allocSynthetic()

	constituents := append(ag.Constituents(u), ag.Constituents(w)...)
	weight := ag.weight[u] + ag.weight[w]

	redirected := make(map[pcpgraph.Edge]struct{})
	for e := range ag.edges {
		var other VertexID
		switch {
		case e.U == u || e.U == w:
			other = e.V
		case e.V == u || e.V == w:
			other = e.U
		default:
			continue
		}
		if other == u || other == w || other == z {
			continue // the (u,w) edge itself, if present, collapses to a self-loop and is dropped
		}
		redirected[pcpgraph.Edge{U: z, V: other}.Normalized()] = struct{}{}
	}

	ag.RemoveVertex(u)
	ag.RemoveVertex(w)

	for e := range redirected {
		ag.edges[e] = struct{}{}
	}
	ag.vertices[z] = struct{}{}
	ag.weight[z] = weight
	ag.merged[z] = constituents

	return z
}

// DifferentColor adds the conflict edge (u,w) if it is not already present.
// Commutative: DifferentColor(u,w) and DifferentColor(w,u) have the same
// effect. A no-op if u==w.
func (ag *AuxiliaryGraph) DifferentColor(u, w VertexID) {
	if u == w {
		return
	}
	ag.edges[pcpgraph.Edge{U: u, V: w}.Normalized()] = struct{}{}
}
