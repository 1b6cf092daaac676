package genbuilder

import "github.com/pcpbnp/solver/pcpgraph"

// Complete builds numClusters clusters of config.clusterSize vertices each,
// with every inter-cluster vertex pair adjacent (spec scenario 2: complete
// multipartite conflict structure, one color per cluster required).
func Complete(numClusters int, opts ...Option) (*pcpgraph.Graph, error) {
	cfg := newConfig(opts...)
	assign := assignClusters(numClusters, cfg.clusterSize)

	var edges []pcpgraph.Edge
	n := len(assign)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if assign[u] != assign[v] {
				edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(u), V: pcpgraph.VertexID(v)})
			}
		}
	}
	return pcpgraph.NewGraph(assign, numClusters, edges)
}

// Empty builds numClusters clusters of config.clusterSize vertices each
// with no conflict edges at all (spec scenario 3: a single representative
// set covers every cluster at objective 1).
func Empty(numClusters int, opts ...Option) (*pcpgraph.Graph, error) {
	cfg := newConfig(opts...)
	assign := assignClusters(numClusters, cfg.clusterSize)
	return pcpgraph.NewGraph(assign, numClusters, nil)
}

// Grid builds a rows x cols grid graph with 4-neighbor adjacency, one
// cluster per row (spec scenario 4: bipartite grid conflicts admit a
// 2-coloring).
func Grid(rows, cols int, opts ...Option) (*pcpgraph.Graph, error) {
	_ = newConfig(opts...) // clusterSize/density are not meaningful for Grid; keep the uniform constructor signature
	if rows <= 0 || cols <= 0 {
		return nil, errInvalidGridDims
	}

	n := rows * cols
	assign := make([]pcpgraph.ClusterID, n)
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assign[idx(r, c)] = pcpgraph.ClusterID(r)
		}
	}

	var edges []pcpgraph.Edge
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(idx(r, c)), V: pcpgraph.VertexID(idx(r, c+1))})
			}
			if r+1 < rows {
				edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(idx(r, c)), V: pcpgraph.VertexID(idx(r+1, c))})
			}
		}
	}
	return pcpgraph.NewGraph(assign, rows, edges)
}

// RandomSparse builds numClusters clusters of config.clusterSize vertices
// each, sampling every inter-cluster pair as an independent edge with
// probability config.density. Deterministic under WithSeed.
func RandomSparse(numClusters int, opts ...Option) (*pcpgraph.Graph, error) {
	cfg := newConfig(opts...)
	assign := assignClusters(numClusters, cfg.clusterSize)

	var edges []pcpgraph.Edge
	n := len(assign)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if assign[u] == assign[v] {
				continue
			}
			if cfg.rng.Float64() < cfg.density {
				edges = append(edges, pcpgraph.Edge{U: pcpgraph.VertexID(u), V: pcpgraph.VertexID(v)})
			}
		}
	}
	return pcpgraph.NewGraph(assign, numClusters, edges)
}

func assignClusters(numClusters, clusterSize int) []pcpgraph.ClusterID {
	assign := make([]pcpgraph.ClusterID, 0, numClusters*clusterSize)
	for q := 0; q < numClusters; q++ {
		for i := 0; i < clusterSize; i++ {
			assign = append(assign, pcpgraph.ClusterID(q))
		}
	}
	return assign
}
