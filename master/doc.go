// Package master implements the Restricted Master Problem (RMP): a
// minimization LP over the columns currently in a node's pool, one
// set-covering constraint per cluster.
//
// gonum's lp.Simplex solves a primal LP but does not expose dual (shadow
// price) values, so Solve runs two independent simplex calls: one on the
// primal in standard equality form (coverage rows plus surplus slacks), one
// on the LP dual of the same problem, whose optimal solution's first
// numClusters entries are the shadow prices the pricing problem needs.
// Both follow the slack-augmentation pattern of jjhbw/GoMILP's
// convertToEqualities: inequalities become equalities by adding one slack
// variable per row.
package master
