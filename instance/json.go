package instance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
)

type jsonVertex struct {
	ID          int             `json:"id"`
	PartitionID int             `json:"partition_id"`
	Data        json.RawMessage `json:"data,omitempty"`
}

type jsonEdge struct {
	Source int      `json:"source"`
	Target int      `json:"target"`
	Weight *float64 `json:"weight,omitempty"`
}

type jsonPartition struct {
	ID        int   `json:"id"`
	VertexIDs []int `json:"vertex_ids"`
}

type jsonInstance struct {
	NumVertices   int             `json:"num_vertices"`
	NumPartitions int             `json:"num_partitions"`
	Vertices      []jsonVertex    `json:"vertices"`
	Edges         []jsonEdge      `json:"edges"`
	Partitions    []jsonPartition `json:"partitions"`
	OptimalColors *int            `json:"optimal_colors,omitempty"`
	Name          string          `json:"name,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// ParseJSON reads the JSON instance format. Edge weights and the optional
// optimal_colors/name/description fields are accepted but not used by the
// solver; partitions are cross-checked against vertices' partition_id for
// consistency, not used as the primary source of cluster assignment.
func ParseJSON(r io.Reader) (*pcpgraph.Graph, error) {
	var doc jsonInstance
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, pcperr.Input("instance.ParseJSON", err)
	}

	if len(doc.Vertices) != doc.NumVertices {
		return nil, pcperr.Input("instance.ParseJSON", fmt.Errorf("num_vertices=%d but %d vertex entries given", doc.NumVertices, len(doc.Vertices)))
	}

	assign := make([]pcpgraph.ClusterID, doc.NumVertices)
	seen := make([]bool, doc.NumVertices)
	for _, v := range doc.Vertices {
		if v.ID < 0 || v.ID >= doc.NumVertices {
			return nil, pcperr.Input("instance.ParseJSON", fmt.Errorf("vertex id %d out of range [0,%d)", v.ID, doc.NumVertices))
		}
		if seen[v.ID] {
			return nil, pcperr.Input("instance.ParseJSON", fmt.Errorf("duplicate vertex id %d", v.ID))
		}
		seen[v.ID] = true
		assign[v.ID] = pcpgraph.ClusterID(v.PartitionID)
	}

	for _, p := range doc.Partitions {
		for _, vid := range p.VertexIDs {
			if vid < 0 || vid >= doc.NumVertices || int(assign[vid]) != p.ID {
				return nil, pcperr.Input("instance.ParseJSON", fmt.Errorf("partition %d lists vertex %d, which is not assigned to it", p.ID, vid))
			}
		}
	}

	edges := make([]pcpgraph.Edge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		if e.Source == e.Target {
			continue
		}
		edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(e.Source), V: pcpgraph.VertexID(e.Target)})
	}

	g, err := pcpgraph.NewGraph(assign, doc.NumPartitions, edges)
	if err != nil {
		return nil, pcperr.Input("instance.ParseJSON", err)
	}
	return g, nil
}
