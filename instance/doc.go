// Package instance parses PCP problem instances from the DIMACS-style
// text format and from JSON into a *pcpgraph.Graph, per the external
// interfaces defined for this solver.
package instance
