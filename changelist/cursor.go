package changelist

import "github.com/pgavlin/domvm/dom"

// cursorEntry is one record in the traversal cursor. The cursor and its
// sibling-index side-stack are two parallel sequences with the same length
// invariant, and are modeled here as a single sequence of records instead.
type cursorEntry struct {
	node         *dom.Node
	siblingIndex int32
}

// cursor is the "current node" stack most opcodes read and mutate the top
// of. siblingIndex is -1 when the entry's position among its siblings is not
// known; popPushNextSibling is the only opcode that relies on it.
type cursor struct {
	entries []cursorEntry
}

func (c *cursor) push(n *dom.Node, siblingIndex int32) {
	c.entries = append(c.entries, cursorEntry{node: n, siblingIndex: siblingIndex})
}

func (c *cursor) pop() (*dom.Node, error) {
	if len(c.entries) == 0 {
		return nil, ErrStackUnderflow
	}
	top := c.entries[len(c.entries)-1]
	c.entries = c.entries[:len(c.entries)-1]
	return top.node, nil
}

func (c *cursor) top() (*dom.Node, error) {
	if len(c.entries) == 0 {
		return nil, ErrStackUnderflow
	}
	return c.entries[len(c.entries)-1].node, nil
}

// popFull pops and returns the whole top entry, including its sibling index.
// Used by popPushNextSibling, the only opcode that consumes the side-stack's
// index rather than just the node.
func (c *cursor) popFull() (cursorEntry, error) {
	if len(c.entries) == 0 {
		return cursorEntry{}, ErrStackUnderflow
	}
	top := c.entries[len(c.entries)-1]
	c.entries = c.entries[:len(c.entries)-1]
	return top, nil
}

func (c *cursor) len() int { return len(c.entries) }

func (c *cursor) reset() {
	c.entries = c.entries[:0]
}
