// File: pool.go
// Role: ColumnPool — the ordered collection of columns owned by one B&P
//       node, with add/remove/iterate/copy per spec §4.2.
package column

import "github.com/pcpbnp/solver/pcpgraph"

// Pool is an ordered collection of columns. It imposes no uniqueness —
// callers (pricing, branching) are responsible for not adding duplicates.
// Insertion order is preserved so iteration is deterministic across a
// Copy().
type Pool struct {
	order []ID
	byID  map[ID]*Column
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{byID: make(map[ID]*Column)}
}

// Add appends col to the pool. Adding a column whose ID is already present
// replaces it in place without disturbing order — callers never legitimately
// do this, but it keeps Add total rather than panicking.
func (p *Pool) Add(col *Column) {
	if _, exists := p.byID[col.ID]; !exists {
		p.order = append(p.order, col.ID)
	}
	p.byID[col.ID] = col
}

// Remove deletes the column with the given ID, by identity. A no-op if absent.
func (p *Pool) Remove(id ID) {
	if _, ok := p.byID[id]; !ok {
		return
	}
	delete(p.byID, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Get returns the column with the given ID, or nil if absent.
func (p *Pool) Get(id ID) *Column { return p.byID[id] }

// Len returns the number of columns currently in the pool.
func (p *Pool) Len() int { return len(p.order) }

// All returns the pool's columns in insertion order. The returned slice is
// owned by the caller; mutating it does not affect the pool.
func (p *Pool) All() []*Column {
	out := make([]*Column, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.byID[id])
	}
	return out
}

// Filter removes every column for which keep returns false. Artificial
// columns should be preserved by the caller's keep function — branching
// filters always do (spec §4.6).
func (p *Pool) Filter(keep func(*Column) bool) {
	var newOrder []ID
	for _, id := range p.order {
		c := p.byID[id]
		if keep(c) {
			newOrder = append(newOrder, id)
		} else {
			delete(p.byID, id)
		}
	}
	p.order = newOrder
}

// Copy returns a deep copy: a fresh Pool and a fresh *Column for every
// entry, so that mutating the copy's column objects (which never happens in
// practice, since Column is immutable) could never affect the original.
func (p *Pool) Copy() *Pool {
	clone := NewPool()
	for _, id := range p.order {
		src := p.byID[id]
		dup := *src
		dup.Vertices = append([]pcpgraph.VertexID(nil), src.Vertices...)
		clone.Add(&dup)
	}
	return clone
}
