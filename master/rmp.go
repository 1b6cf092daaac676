package master

import (
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/pcpbnp/solver/column"
	"github.com/pcpbnp/solver/pcperr"
	"github.com/pcpbnp/solver/pcpgraph"
)

// tolerance is the shared feasibility/optimality tolerance for both simplex
// solves, matching spec's "tight tolerances (≈1e-9)".
const tolerance = 1e-9

// RMP is the Restricted Master Problem for one B&P node: a minimization LP
// over the node's current column pool, one ≥1 set-covering row per cluster.
// An RMP is cheap to rebuild from scratch (New plus AddColumn per pool
// column) rather than warm-started,
// since gonum's lp.Simplex offers no warm-start entry point.
type RMP struct {
	base     *pcpgraph.Graph
	columns  []*column.Column
	byID     map[column.ID]int // column ID -> index into columns
	solution Solution
}

// Solution is the outcome of one Solve call.
type Solution struct {
	Primal    map[column.ID]float64 // column ID -> value, for value > tolerance only
	Duals     []float64              // shadow price per cluster, indexed by cluster id
	Objective float64
}

// New returns an empty RMP bound to base. Columns must be added with
// AddColumn before Solve.
func New(base *pcpgraph.Graph) *RMP {
	return &RMP{base: base, byID: make(map[column.ID]int)}
}

// AddColumn registers c as an RMP variable. Adding the same column ID twice
// replaces the earlier entry, mirroring column.Pool's Add semantics.
func (m *RMP) AddColumn(c *column.Column) {
	if idx, exists := m.byID[c.ID]; exists {
		m.columns[idx] = c
		return
	}
	m.byID[c.ID] = len(m.columns)
	m.columns = append(m.columns, c)
}

// NumColumns reports the number of variables currently in the RMP.
func (m *RMP) NumColumns() int { return len(m.columns) }

// coverage builds the cluster x column 0/1 coverage matrix, B[q][j] = 1 iff
// columns[j] covers cluster q (expanding any constituents transparently,
// since Column.Clusters already walks base.Vertex lookups).
func (m *RMP) coverage() *mat.Dense {
	k := m.base.NumClusters()
	n := len(m.columns)
	data := make([]float64, k*n)
	for j, c := range m.columns {
		for _, cid := range c.Clusters(m.base) {
			data[int(cid)*n+j] = 1
		}
	}
	return mat.NewDense(k, n, data)
}

// Solve solves the current RMP, honoring deadline on a best-effort basis:
// gonum's lp.Simplex offers no interruption hook, so a deadline already in
// the past is reported as pcperr.Timeout before any work is done, and an
// in-progress solve is allowed to run to completion (expected to be fast at
// the node sizes this solver targets).
func (m *RMP) Solve(deadline time.Time) (Solution, error) {
	if len(m.columns) == 0 {
		return Solution{}, pcperr.Solver("RMP.Solve", errNoColumns)
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return Solution{}, pcperr.Timeout("RMP.Solve", errDeadlineExceeded)
	}

	primalObj, primalX, err := m.solvePrimal()
	if err != nil {
		return Solution{}, pcperr.Solver("RMP.Solve", err)
	}
	duals, err := m.solveDual()
	if err != nil {
		return Solution{}, pcperr.Solver("RMP.Solve", err)
	}

	primal := make(map[column.ID]float64, len(m.columns))
	for j, c := range m.columns {
		if v := primalX[j]; v > tolerance {
			primal[c.ID] = v
		}
	}

	sol := Solution{Primal: primal, Duals: duals, Objective: primalObj}
	m.solution = sol
	return sol, nil
}

// Duals returns the shadow prices from the most recent Solve, ordered by
// cluster id. Callers must Solve before calling this.
func (m *RMP) Duals() []float64 { return m.solution.Duals }

// solvePrimal solves: minimize sum(c_j x_j) s.t. B x >= 1, x >= 0, by
// converting the >= row to a <= row (negate) and augmenting with surplus
// slacks into standard equality form, exactly as GoMILP's
// convertToEqualities augments inequalities for lp.Simplex.
func (m *RMP) solvePrimal() (float64, []float64, error) {
	k := m.base.NumClusters()
	n := len(m.columns)
	b := m.coverage()

	obj := make([]float64, n)
	for j, c := range m.columns {
		obj[j] = c.Value
	}

	// G x <= h  with  G = -B, h = -1  (equivalent to B x >= 1)
	g := mat.NewDense(k, n, nil)
	g.Scale(-1, b)
	h := make([]float64, k)
	for i := range h {
		h[i] = -1
	}

	cNew, aNew, bNew := augmentWithSlacks(obj, g, h)
	z, x, err := lp.Simplex(cNew, aNew, bNew, tolerance, nil)
	if err != nil {
		return 0, nil, err
	}
	return z, x[:n], nil
}

// solveDual solves the LP dual of solvePrimal's problem:
// maximize sum(y_q) s.t. B^T y <= c, y >= 0
// recast as a minimization: minimize -sum(y_q) s.t. B^T y <= c, y >= 0.
// The optimal y is the vector of cluster duals the pricing problem needs.
func (m *RMP) solveDual() ([]float64, error) {
	k := m.base.NumClusters()
	n := len(m.columns)
	b := m.coverage()

	bt := mat.NewDense(n, k, nil)
	bt.CloneFrom(b.T())

	h := make([]float64, n)
	for j, c := range m.columns {
		h[j] = c.Value
	}
	obj := make([]float64, k)
	for i := range obj {
		obj[i] = -1
	}

	cNew, aNew, bNew := augmentWithSlacks(obj, bt, h)
	_, y, err := lp.Simplex(cNew, aNew, bNew, tolerance, nil)
	if err != nil {
		return nil, err
	}
	duals := append([]float64(nil), y[:k]...)
	return duals, nil
}

// augmentWithSlacks converts "minimize c^T x s.t. G x <= h, x >= 0" into
// standard equality form "minimize cNew^T z s.t. aNew z = bNew, z >= 0" by
// appending one surplus slack per row, the way jjhbw/GoMILP's
// convertToEqualities does for its branch-and-bound subproblems.
func augmentWithSlacks(c []float64, g *mat.Dense, h []float64) (cNew []float64, aNew *mat.Dense, bNew []float64) {
	rows, cols := g.Dims()
	cNew = make([]float64, cols+rows)
	copy(cNew, c)

	aNew = mat.NewDense(rows, cols+rows, nil)
	aNew.Slice(0, rows, 0, cols).(*mat.Dense).Copy(g)
	slackBlock := aNew.Slice(0, rows, cols, cols+rows).(*mat.Dense)
	for i := 0; i < rows; i++ {
		slackBlock.Set(i, i, 1)
	}

	bNew = append([]float64(nil), h...)
	return cNew, aNew, bNew
}
