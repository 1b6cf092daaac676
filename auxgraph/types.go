package auxgraph

import (
	"sort"
	"sync/atomic"

	"github.com/pcpbnp/solver/pcpgraph"
)

// VertexID reuses pcpgraph's vertex id space; synthetic (merged) vertices
// are allocated ids strictly above every original vertex id, so a single
// id space can address both original and synthetic vertices without a
// union type.
type VertexID = pcpgraph.VertexID

// AuxiliaryGraph is the mutable pricing domain for one Branch-and-Price
// node: the base graph's edges plus intra-cluster conflict edges, subject
// to branching mutations (vertex removal, added edges, same-color merges).
//
// Concurrency: AuxiliaryGraph is owned by exactly one B&P node at a time
// and is never shared between goroutines; no internal locking is needed.
// nextSynthetic is an atomic counter purely so Copy() can hand the clone an
// independent value without racing a concurrent pricing call elsewhere —
// mirroring lvlath/core's nextEdgeID carried-counter pattern.
type AuxiliaryGraph struct {
	base *pcpgraph.Graph

	vertices map[VertexID]struct{}
	edges    map[pcpgraph.Edge]struct{}
	merged   map[VertexID][]VertexID // synthetic id -> flattened original constituents
	weight   map[VertexID]float64

	nextSynthetic int64
}

// New builds the auxiliary graph for a fresh Branch-and-Price node: a copy
// of the base graph's vertex and edge sets, plus the complete intra-cluster
// edge set (so that any independent set in the result selects at most one
// representative per cluster).
func New(base *pcpgraph.Graph) *AuxiliaryGraph {
	ag := &AuxiliaryGraph{
		base:          base,
		vertices:      make(map[VertexID]struct{}, base.NumVertices()),
		edges:         make(map[pcpgraph.Edge]struct{}),
		merged:        make(map[VertexID][]VertexID),
		weight:        make(map[VertexID]float64, base.NumVertices()),
		nextSynthetic: int64(base.NumVertices()),
	}
	for _, v := range base.Vertices() {
		ag.vertices[v.ID] = struct{}{}
	}
	for _, e := range base.Edges() {
		ag.edges[e] = struct{}{}
	}
	for _, c := range base.Clusters() {
		for i := 0; i < len(c.Members); i++ {
			for j := i + 1; j < len(c.Members); j++ {
				ag.edges[pcpgraph.Edge{U: c.Members[i], V: c.Members[j]}.Normalized()] = struct{}{}
			}
		}
	}
	return ag
}

// Base returns the immutable graph this auxiliary graph was derived from.
func (ag *AuxiliaryGraph) Base() *pcpgraph.Graph { return ag.base }

// HasVertex reports whether v is currently present.
func (ag *AuxiliaryGraph) HasVertex(v VertexID) bool {
	_, ok := ag.vertices[v]
	return ok
}

// HasEdge reports whether u and v are adjacent in the current auxiliary graph.
func (ag *AuxiliaryGraph) HasEdge(u, v VertexID) bool {
	_, ok := ag.edges[pcpgraph.Edge{U: u, V: v}.Normalized()]
	return ok
}

// Vertices returns every live vertex id, ascending.
func (ag *AuxiliaryGraph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(ag.vertices))
	for v := range ag.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NumVertices returns the live vertex count.
func (ag *AuxiliaryGraph) NumVertices() int { return len(ag.vertices) }

// Edges returns every live edge, normalized, ascending by (U,V).
func (ag *AuxiliaryGraph) Edges() []pcpgraph.Edge {
	out := make([]pcpgraph.Edge, 0, len(ag.edges))
	for e := range ag.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})
	return out
}

// IsSynthetic reports whether v is a merged (same-color) synthetic vertex.
func (ag *AuxiliaryGraph) IsSynthetic(v VertexID) bool {
	_, ok := ag.merged[v]
	return ok
}

// Constituents returns the original vertices v stands for: v itself if v is
// original, or its flattened constituent list if v is synthetic.
func (ag *AuxiliaryGraph) Constituents(v VertexID) []VertexID {
	if cs, ok := ag.merged[v]; ok {
		out := make([]VertexID, len(cs))
		copy(out, cs)
		return out
	}
	return []VertexID{v}
}

// Weight returns the current pricing weight of v (0 if absent or never set).
func (ag *AuxiliaryGraph) Weight(v VertexID) float64 { return ag.weight[v] }

// ClustersOf returns the distinct clusters covered by v: a single-element
// slice for an original vertex, or the union of its constituents' clusters
// for a synthetic vertex.
func (ag *AuxiliaryGraph) ClustersOf(v VertexID) []pcpgraph.ClusterID {
	seen := make(map[pcpgraph.ClusterID]struct{})
	for _, c := range ag.Constituents(v) {
		if vx := ag.base.Vertex(c); vx != nil {
			seen[vx.Cluster] = struct{}{}
		}
	}
	out := make([]pcpgraph.ClusterID, 0, len(seen))
	for cid := range seen {
		out = append(out, cid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// allocSynthetic hands out the next fresh synthetic vertex id, strictly
// above every id ever issued by this auxiliary graph (original or
// synthetic), so merges never collide.
func (ag *AuxiliaryGraph) allocSynthetic() VertexID {
	id := atomic.AddInt64(&ag.nextSynthetic, 1) - 1
	return VertexID(id)
}
