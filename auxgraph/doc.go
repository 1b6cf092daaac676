// Package auxgraph implements the per-node Auxiliary Graph: the mutable
// pricing domain derived from an immutable pcpgraph.Graph by adding
// intra-cluster conflict edges, and subsequently reshaped in place by
// branching decisions (vertex removal, edge addition, same-color merges).
//
// Every Branch-and-Price node owns exactly one *AuxiliaryGraph. Children
// receive an independent Copy() before any mutation, so a parent's fields
// are never observed to change once a node has spawned children.
//
// Mutation policy: every exported mutator in this package is total. Acting
// on an absent vertex, an already-present edge, or re-removing a vertex is
// a silent no-op — mirroring lvlath/core's idempotent AddVertex/RemoveEdge
// style, except auxgraph never returns an error from a mutator because
// spec §4.1 defines these operations as unconditionally total.
package auxgraph
