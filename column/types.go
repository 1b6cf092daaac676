// Package column defines the Column (independent-set master variable) and
// the ColumnPool that collects a node's current columns.
//
// A Column is immutable once created: equality and hashing are by ID alone
// (content-based equality would be semantically correct but needlessly
// expensive, since columns are never mutated after construction — spec §9).
package column

import (
	"sort"
	"sync/atomic"

	"github.com/pcpbnp/solver/pcpgraph"
)

// ArtificialPenalty is the objective coefficient of an artificial column:
// large enough that the master never prefers it once a real column can
// cover the same cluster. Matches the original Python source's literal
// 1000.0 (spec §9's Open Question on scaling M is addressed by
// RecommendedPenalty for larger instances).
const ArtificialPenalty = 1000.0

// RecommendedPenalty scales the artificial-column penalty with instance
// size, so it remains safely above any plausible integer-optimal objective
// (which is bounded by the number of clusters). Offered as an alternative
// to ArtificialPenalty for large instances; not required by any test.
func RecommendedPenalty(numClusters int) float64 {
	if numClusters < 1 {
		numClusters = 1
	}
	return 10.0 * float64(numClusters)
}

// ID uniquely identifies a Column; monotonically increasing within one
// solver run, minted by a Counter.
type ID uint64

// Counter mints process-wide-unique, monotonically increasing Column IDs
// for one solver invocation. Per spec §9 ("Global counters"), production
// code should use one Counter per solver instance (so concurrent solves
// never collide); tests use Reset to get deterministic IDs.
type Counter struct{ next uint64 }

// Next returns the next unused ID.
func (c *Counter) Next() ID { return ID(atomic.AddUint64(&c.next, 1) - 1) }

// Reset rewinds the counter to 0. Intended for test determinism only.
func (c *Counter) Reset() { atomic.StoreUint64(&c.next, 0) }

// Column is a master-problem variable: an identified independent set of
// original vertices (never merged synthetics — those are expanded into
// constituents at construction time).
type Column struct {
	ID         ID
	Vertices   []pcpgraph.VertexID // original vertices covered, never synthetic
	Artificial bool
	Creator    string  // textual creation tag, e.g. "pricing", "artificial-init"
	Value      float64 // intrinsic objective coefficient (1 for real columns, ArtificialPenalty for artificial)
	Dual       float64 // not written by the master solve; LP values are reported in master.Solution.Primal
}

// New builds a real (non-artificial) column from a vertex set, sorted
// ascending. It does not expand synthetic ids: callers pass original
// vertices only (pricing expands merged vertices via
// auxgraph.AuxiliaryGraph.Constituents before calling New).
func New(id ID, vertices []pcpgraph.VertexID, creator string) *Column {
	sorted := append([]pcpgraph.VertexID(nil), vertices...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &Column{ID: id, Vertices: sorted, Artificial: false, Creator: creator, Value: 1}
}

// NewArtificial builds a single-vertex artificial column ensuring RMP
// feasibility for one cluster.
func NewArtificial(id ID, v pcpgraph.VertexID, penalty float64) *Column {
	return &Column{ID: id, Vertices: []pcpgraph.VertexID{v}, Artificial: true, Creator: "artificial-init", Value: penalty}
}

// Clusters returns the distinct clusters this column's vertices belong to,
// ascending.
func (c *Column) Clusters(base *pcpgraph.Graph) []pcpgraph.ClusterID {
	seen := make(map[pcpgraph.ClusterID]struct{}, len(c.Vertices))
	for _, v := range c.Vertices {
		if vx := base.Vertex(v); vx != nil {
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

// Covers reports whether this column has a representative in cluster cid.
func (c *Column) Covers(base *pcpgraph.Graph, cid pcpgraph.ClusterID) bool {
	for _, v := range c.Vertices {
		if vx := base.Vertex(v); vx != nil && vx.Cluster == cid {
			return true
		}
	}
	return false
}

// Contains reports whether v is among this column's vertices.
func (c *Column) Contains(v pcpgraph.VertexID) bool {
	for _, u := range c.Vertices {
		if u == v {
			return true
		}
	}
	return false
}
