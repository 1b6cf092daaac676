// Package pcpgraph defines the immutable input model for the Partition
// Coloring Problem: vertices, undirected edges, and the disjoint clusters
// (partitions) that group them. A Graph is built once from an instance file
// and shared read-only across every node of the branch-and-price tree.
//
// Determinism:
//   - Vertices() and Edges() return slices ordered by ascending ID.
//
// Concurrency:
//   - Graph is immutable after NewGraph returns; safe for concurrent readers
//     without locking.
package pcpgraph

import (
	"errors"
	"sort"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrDuplicateVertexID indicates two vertices were given the same id.
	ErrDuplicateVertexID = errors.New("pcpgraph: duplicate vertex id")
	// ErrUnassignedVertex indicates a vertex id was never assigned to a cluster.
	ErrUnassignedVertex = errors.New("pcpgraph: vertex not assigned to any cluster")
	// ErrClusterOverlap indicates a vertex id appears in more than one cluster.
	ErrClusterOverlap = errors.New("pcpgraph: vertex assigned to more than one cluster")
	// ErrEmptyCluster indicates a cluster was declared with zero members.
	ErrEmptyCluster = errors.New("pcpgraph: cluster has no members")
	// ErrClusterRange indicates an edge or vertex referenced a cluster id outside [0,k).
	ErrClusterRange = errors.New("pcpgraph: cluster id out of range")
	// ErrVertexRange indicates an edge referenced a vertex id outside [0,n).
	ErrVertexRange = errors.New("pcpgraph: vertex id out of range")
	// ErrNoVertices indicates the instance declared zero vertices.
	ErrNoVertices = errors.New("pcpgraph: graph has no vertices")
)

// VertexID uniquely identifies a Vertex within a Graph.
type VertexID int

// ClusterID uniquely identifies a Cluster within a Graph.
type ClusterID int

// Vertex is a single representative candidate. Two vertices are equal iff
// their IDs match; Cluster names the owning partition.
type Vertex struct {
	ID      VertexID
	Cluster ClusterID
}

// Edge is an unordered pair of distinct vertices; equality is order-insensitive.
type Edge struct {
	U, V VertexID
}

// Normalized returns the edge with the smaller endpoint first, so that
// (u,v) and (v,u) compare equal.
func (e Edge) Normalized() Edge {
	if e.U <= e.V {
		return e
	}
	return Edge{U: e.V, V: e.U}
}

// Cluster is a non-empty, ordered, disjoint subset of V; PCP chooses exactly
// one representative vertex per cluster.
type Cluster struct {
	ID      ClusterID
	Members []VertexID
}

// Graph is the immutable input instance: vertex set, edge set, the cluster
// partition, and an id→Vertex index. Construct via NewGraph; never mutated
// afterward.
type Graph struct {
	vertices map[VertexID]*Vertex
	edges    map[Edge]struct{}
	clusters []*Cluster
}

// NewGraph validates and assembles a Graph from raw vertex-to-cluster
// assignments and an edge list. vertexClusters[i] gives the cluster id for
// vertex id VertexID(i); clusters must partition [0,len(vertexClusters)).
//
// Validation (in order): no vertices (ErrNoVertices), cluster id out of
// range (ErrClusterRange) for any assignment, a cluster with no members
// (ErrEmptyCluster), edge endpoints out of range (ErrVertexRange).
// Duplicate edges (in either orientation) are silently deduplicated here.
// Self-loop edges are dropped by the caller-facing parsers (see package
// instance); NewGraph itself treats a self-loop edge as a validation error
// since it can never arise from a well-formed partition-coloring instance
// at this layer.
func NewGraph(vertexClusters []ClusterID, numClusters int, edges []Edge) (*Graph, error) {
	if len(vertexClusters) == 0 {
		return nil, ErrNoVertices
	}

	vertices := make(map[VertexID]*Vertex, len(vertexClusters))
	memberLists := make([][]VertexID, numClusters)
	for i, cid := range vertexClusters {
		if cid < 0 || int(cid) >= numClusters {
			return nil, ErrClusterRange
		}
		vid := VertexID(i)
		vertices[vid] = &Vertex{ID: vid, Cluster: cid}
		memberLists[cid] = append(memberLists[cid], vid)
	}

	clusters := make([]*Cluster, 0, numClusters)
	for cid := 0; cid < numClusters; cid++ {
		if len(memberLists[cid]) == 0 {
			return nil, ErrEmptyCluster
		}
		clusters = append(clusters, &Cluster{ID: ClusterID(cid), Members: memberLists[cid]})
	}

	edgeSet := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if _, ok := vertices[e.U]; !ok {
			return nil, ErrVertexRange
		}
		if _, ok := vertices[e.V]; !ok {
			return nil, ErrVertexRange
		}
		if e.U == e.V {
			return nil, errors.New("pcpgraph: self-loop edge")
		}
		edgeSet[e.Normalized()] = struct{}{}
	}

	return &Graph{vertices: vertices, edges: edgeSet, clusters: clusters}, nil
}

// Vertex returns the vertex with the given id, or nil if absent.
func (g *Graph) Vertex(id VertexID) *Vertex { return g.vertices[id] }

// Vertices returns every vertex, ordered by ascending id.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// HasEdge reports whether u and v are adjacent in the original graph
// (before any auxiliary intra-cluster edges are added).
func (g *Graph) HasEdge(u, v VertexID) bool {
	_, ok := g.edges[Edge{U: u, V: v}.Normalized()]
	return ok
}

// Edges returns every original edge, each normalized (U<=V), ascending by (U,V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
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

// Clusters returns every cluster, ordered by ascending id.
func (g *Graph) Clusters() []*Cluster { return g.clusters }

// NumClusters returns |Q|.
func (g *Graph) NumClusters() int { return len(g.clusters) }

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// Cluster returns the cluster with the given id, or nil if out of range.
func (g *Graph) Cluster(id ClusterID) *Cluster {
	if id < 0 || int(id) >= len(g.clusters) {
		return nil
	}
	return g.clusters[id]
}
