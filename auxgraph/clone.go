// File: clone.go
// Role: Deep copy of AuxiliaryGraph for child B&P nodes.
// Determinism:
//   - nextSynthetic is carried so clones never reuse an id issued by an
//     ancestor, mirroring lvlath/core's CloneEmpty carrying nextEdgeID.
package auxgraph

import "github.com/pcpbnp/solver/pcpgraph"

// Copy returns an independent deep copy: vertices, edges, merged
// bookkeeping, and weights are all cloned, and the synthetic-id counter is
// carried so future SameColor calls on the copy never collide with ids the
// original had issued before the copy was made. Two copies taken from the
// same original continue from the same counter value, so each may issue
// the same new ids in its own graph. The base graph pointer is shared,
// since it is immutable.
func (ag *AuxiliaryGraph) Copy() *AuxiliaryGraph {
	clone := &AuxiliaryGraph{
		base:          ag.base,
		vertices:      make(map[VertexID]struct{}, len(ag.vertices)),
		edges:         make(map[pcpgraph.Edge]struct{}, len(ag.edges)),
		merged:        make(map[VertexID][]VertexID, len(ag.merged)),
		weight:        make(map[VertexID]float64, len(ag.weight)),
		nextSynthetic: ag.nextSynthetic,
	}
	for v := range ag.vertices {
		clone.vertices[v] = struct{}{}
	}
	for e := range ag.edges {
		clone.edges[e] = struct{}{}
	}
	for z, cs := range ag.merged {
		dup := make([]VertexID, len(cs))
		copy(dup, cs)
		clone.merged[z] = dup
	}
	for v, w := range ag.weight {
		clone.weight[v] = w
	}
	return clone
}
