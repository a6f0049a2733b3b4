package changelist

import (
	"github.com/willf/bitset"

	"github.com/pgavlin/domvm/dom"
)

// temporaries is the sparse, integer-indexed slot array opcode 18
// (saveChildrenToTemporaries) writes into and opcode 20 (pushTemporary)
// reads from. occupied tracks which slots hold a live node so that a
// never-written slot can be distinguished from one explicitly holding nil,
// which a plain slice with a nil sentinel could not do for a non-pointer
// node representation.
type temporaries struct {
	slots    []*dom.Node
	occupied *bitset.BitSet
}

func newTemporaries() *temporaries {
	return &temporaries{occupied: bitset.New(0)}
}

func (t *temporaries) set(i uint32, n *dom.Node) {
	idx := uint(i)
	if idx >= uint(len(t.slots)) {
		grown := make([]*dom.Node, idx+1)
		copy(grown, t.slots)
		t.slots = grown
	}
	t.slots[idx] = n
	t.occupied.Set(idx)
}

func (t *temporaries) get(i uint32) (*dom.Node, bool) {
	idx := uint(i)
	if !t.occupied.Test(idx) {
		return nil, false
	}
	return t.slots[idx], true
}

func (t *temporaries) reset() {
	t.slots = t.slots[:0]
	t.occupied = bitset.New(0)
}
