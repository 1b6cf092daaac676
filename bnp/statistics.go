package bnp

// Statistics accumulates counters over one Solve call.
type Statistics struct {
	NodesCreated   int
	NodesProcessed int
	NodesPruned    int
	ColumnGenIters int
}
