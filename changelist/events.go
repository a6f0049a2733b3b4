package changelist

import "github.com/pgavlin/domvm/dom"

// annotation is the pair of opaque payloads the guest associates with one
// (element, event type) registration — typically a function identifier and
// a closure index into the guest's own memory.
type annotation struct {
	a, b uint32
}

// eventTable holds event annotations out-of-band from the DOM tree itself,
// keyed by element pointer: a per-element side table keyed by the element
// reference, standing in for a weak mapping. Go has no ergonomic weak map,
// so this table uses ordinary pointer keys with explicit invalidation on
// element removal (releaseNode) rather than relying on garbage collection to
// drop stale entries.
type eventTable struct {
	byNode map[*dom.Node]map[string]annotation
}

func newEventTable() *eventTable {
	return &eventTable{byNode: make(map[*dom.Node]map[string]annotation)}
}

func (t *eventTable) set(n *dom.Node, eventType string, a, b uint32) {
	m := t.byNode[n]
	if m == nil {
		m = make(map[string]annotation)
		t.byNode[n] = m
	}
	m[eventType] = annotation{a: a, b: b}
}

func (t *eventTable) get(n *dom.Node, eventType string) (annotation, bool) {
	m, ok := t.byNode[n]
	if !ok {
		return annotation{}, false
	}
	ann, ok := m[eventType]
	return ann, ok
}

func (t *eventTable) remove(n *dom.Node, eventType string) {
	m := t.byNode[n]
	if m == nil {
		return
	}
	delete(m, eventType)
	if len(m) == 0 {
		delete(t.byNode, n)
	}
}

// releaseNode frees every annotation held for n and, recursively, for its
// descendants. Opcodes that remove an element from the tree call this so
// that annotations are freed with the element, without waiting on the
// garbage collector.
func (t *eventTable) releaseNode(n *dom.Node) {
	if n == nil {
		return
	}
	delete(t.byNode, n)
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t.releaseNode(c)
	}
}
