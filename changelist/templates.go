package changelist

import "github.com/pgavlin/domvm/dom"

// templateCache holds the detached node subtrees saveTemplate/pushTemplate
// clone in and out of. Unlike the cursor and temporaries table, it persists
// across frames and is never implicitly evicted — the guest owns template
// ids.
type templateCache struct {
	templates map[uint32]*dom.Node
}

func newTemplateCache() *templateCache {
	return &templateCache{templates: make(map[uint32]*dom.Node)}
}

// save deep-clones n and stores the clone under id, so that later mutations
// to the live n do not mutate the saved template.
func (t *templateCache) save(id uint32, n *dom.Node) {
	t.templates[id] = n.CloneNode(true)
}

// get returns the template stored under id and whether it was found. Callers
// must deep-clone the result before pushing it onto the cursor so that
// mutations to the pushed node do not mutate the stored template.
func (t *templateCache) get(id uint32) (*dom.Node, bool) {
	n, ok := t.templates[id]
	return n, ok
}
