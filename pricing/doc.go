// Package pricing solves the exact Maximum-Weight Independent Set (MWIS)
// problem over a B&P node's auxiliary graph, returning up to K distinct
// independent sets whose weight exceeds the reduced-cost threshold.
//
// The branching discipline (copy-free binary split per vertex, explicit
// upper-bound pruning before descending into either child) follows
// jjhbw/GoMILP's subProblem two-child branch-and-bound shape, but the bound
// itself is the sum of remaining positive vertex weights rather than an LP
// relaxation: the cost of fixing already-decided binary variables correctly
// inside a general-purpose LP at every node outweighs the bound's accuracy
// for a problem this structurally simple, and the weight-sum bound is still
// admissible (it never underestimates the true optimum of the remaining
// subproblem), which is all branch-and-bound correctness requires.
package pricing
