// Package bnp implements the Branch-and-Price controller: a best-first
// search over B&P nodes, each processed by one column-generation run and
// either pruned, accepted as a new integer incumbent, or split in two by
// branch.Branch.
package bnp
