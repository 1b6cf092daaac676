// Package branch selects a branching decision for a fractional LP solution
// and produces the two child graph/pool mutations.
//
// Rule A (representative branching) is tried first; it fires only when some
// cluster has more than one vertex with positive weight spread across
// active columns. Rule B (same/different-color branching) is the fallback,
// chosen over the fractional pair with the largest combined column weight.
// Tie-breaking throughout is by ascending vertex id — deterministic, and
// faithful to the "max-value" reading of the source's ambiguous ranking
// loop rather than its apparent first-seen behavior.
package branch
